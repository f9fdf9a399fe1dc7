package effects

import (
	"image/color"
	"math/rand/v2"

	"github.com/iburimskiy/love-bloom/internal/anim"
	"github.com/iburimskiy/love-bloom/internal/config"
	"github.com/tanema/gween/ease"
)

// Shape is the outline a confetti piece is drawn with.
type Shape int

const (
	ShapeCircle Shape = iota
	ShapeRounded
	ShapeSquare
)

// Shapes is indexed by particle index modulo its length.
var Shapes = []Shape{ShapeCircle, ShapeRounded, ShapeSquare}

func (s Shape) String() string {
	switch s {
	case ShapeCircle:
		return "circle"
	case ShapeRounded:
		return "rounded"
	case ShapeSquare:
		return "square"
	}
	return "unknown"
}

var (
	confettiSize     = Range{config.ConfettiMinSize, config.ConfettiMaxSize}
	confettiSpread   = Range{-config.ConfettiSpread, config.ConfettiSpread}
	confettiDuration = Range{config.ConfettiMinDuration, config.ConfettiMaxDuration}
	confettiDelay    = Range{0, config.ConfettiMaxDelay}
	confettiRotation = Range{-config.ConfettiMaxRotation, config.ConfettiMaxRotation}

	confettiFade = anim.Keys(1, 1, 0.8, 0)
)

// Confetti is one falling piece.
type Confetti struct {
	ID       int
	StartX   float64
	EndX     float64
	Size     float64
	Color    color.RGBA
	Shape    Shape
	Rotation float64
	Duration float64
	Delay    float64
}

// Height is Size for circles and half of it for the strip shapes.
func (c Confetti) Height() float64 {
	if c.Shape == ShapeCircle {
		return c.Size
	}
	return c.Size * 0.5
}

// NewConfetti builds count pieces spread over vp. Color and shape depend only
// on the index.
func NewConfetti(rng *rand.Rand, count int, vp Viewport) []Confetti {
	out := make([]Confetti, count)
	for i := range out {
		startX := rng.Float64() * vp.Width
		out[i] = Confetti{
			ID:       i,
			StartX:   startX,
			EndX:     startX + confettiSpread.Random(rng),
			Size:     confettiSize.Random(rng),
			Duration: confettiDuration.Random(rng),
			Delay:    confettiDelay.Random(rng),
			Rotation: confettiRotation.Random(rng),
			Color:    config.ConfettiPalette[i%len(config.ConfettiPalette)],
			Shape:    Shapes[i%len(Shapes)],
		}
	}
	return out
}

// Sample returns the piece's pose t seconds after the batch was triggered.
// The piece falls from just above the top edge to below the bottom edge of
// vp and is hidden before its delay and after it lands.
func (c Confetti) Sample(t float64, vp Viewport) Pose {
	p, started, done := anim.Progress(t, c.Delay, c.Duration)
	if !started || done {
		return Pose{}
	}
	return Pose{
		X:        anim.Ease(ease.InQuad, c.StartX, c.EndX, p),
		Y:        anim.Ease(ease.InQuad, config.ConfettiStartY, vp.Height+config.ConfettiOvershoot, p),
		Rotation: anim.Ease(ease.InQuad, 0, c.Rotation, p),
		Scale:    1,
		Alpha:    confettiFade.At(p),
		Visible:  true,
	}
}
