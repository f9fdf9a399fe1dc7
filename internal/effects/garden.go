package effects

import (
	"image/color"

	"github.com/iburimskiy/love-bloom/internal/anim"
	"github.com/iburimskiy/love-bloom/internal/config"
	"github.com/tanema/gween/ease"
)

// Flower is one fixed flower in the garden. Position is a percentage of the
// garden width.
type Flower struct {
	Color       color.RGBA
	CenterColor color.RGBA
	Position    float64
	Delay       float64
	Scale       float64
}

// Butterfly roams a fixed looping path anchored at (Left%, Top px).
type Butterfly struct {
	Left     float64
	Top      float64
	Duration float64
	Delay    float64
	PathX    anim.Track
	PathY    anim.Track
}

// Garden is the declarative revealed content.
var Garden = []Flower{
	{Color: rgb(0xf8b4c8), CenterColor: rgb(0xf7dc6f), Position: 15, Delay: 0.2, Scale: 0.9},
	{Color: rgb(0xd7a0e0), CenterColor: rgb(0xf0e68c), Position: 32, Delay: 0.4, Scale: 1.05},
	{Color: rgb(0xf4978e), CenterColor: rgb(0xffd700), Position: 50, Delay: 0.1, Scale: 1.15},
	{Color: rgb(0xfbc4ab), CenterColor: rgb(0xf5deb3), Position: 68, Delay: 0.5, Scale: 1},
	{Color: rgb(0xa8d8ea), CenterColor: rgb(0xfffacd), Position: 85, Delay: 0.3, Scale: 0.95},
}

// Butterflies flutter over the garden.
var Butterflies = []Butterfly{newButterfly(0), newButterfly(1)}

func newButterfly(i int) Butterfly {
	left := 20.0
	if i == 1 {
		left = 70
	}
	return Butterfly{
		Left:     left,
		Top:      10 + float64(i)*30,
		Duration: 8 + float64(i)*2,
		Delay:    1 + float64(i)*1.5,
		PathX:    anim.Track{Keys: []float64{0, 30, -20, 40, 0}, Ease: ease.InOutSine},
		PathY:    anim.Track{Keys: []float64{0, -20, 10, -30, 0}, Ease: ease.InOutSine},
	}
}

// FlowerPose is the growth state of a flower t seconds after the reveal. All
// fields run from 0 to 1 except HeadRotation, which settles at 0 degrees.
type FlowerPose struct {
	Rise         float64
	Stem         float64
	Head         float64
	HeadRotation float64
	LeftLeaf     float64
	RightLeaf    float64
}

// Sample returns the flower's growth state at t.
func (f Flower) Sample(t float64) FlowerPose {
	return FlowerPose{
		Rise:         stage(t, f.Delay, config.FlowerDuration, ease.OutBack),
		Stem:         stage(t, f.Delay+0.2, 0.8, ease.OutQuad),
		Head:         stage(t, f.Delay+0.5, 0.8, ease.OutBack),
		HeadRotation: -180 * (1 - stage(t, f.Delay+0.5, 0.8, ease.OutQuad)),
		LeftLeaf:     stage(t, f.Delay+0.6, 0.5, ease.OutQuad),
		RightLeaf:    stage(t, f.Delay+0.8, 0.5, ease.OutQuad),
	}
}

// Offset returns the butterfly's displacement from its anchor at t.
func (b Butterfly) Offset(t float64) (dx, dy float64) {
	p, started := anim.LoopProgress(t, b.Delay, b.Duration)
	if !started {
		return 0, 0
	}
	return b.PathX.At(p), b.PathY.At(p)
}

func stage(t, delay, duration float64, fn ease.TweenFunc) float64 {
	p, started, _ := anim.Progress(t, delay, duration)
	if !started {
		return 0
	}
	return anim.Ease(fn, 0, 1, p)
}

func rgb(hex uint32) color.RGBA {
	return color.RGBA{R: uint8(hex >> 16), G: uint8(hex >> 8), B: uint8(hex), A: 0xff}
}
