package effects

import (
	"math/rand/v2"

	"github.com/iburimskiy/love-bloom/internal/anim"
	"github.com/iburimskiy/love-bloom/internal/config"
)

var (
	heartX        = Range{config.HeartMinX, config.HeartMaxX}
	heartSize     = Range{config.HeartMinSize, config.HeartMaxSize}
	heartDuration = Range{config.HeartMinDuration, config.HeartMaxDuration}
	heartOpacity  = Range{config.HeartMinOpacity, config.HeartMaxOpacity}

	heartTilt = anim.Keys(0, config.HeartTilt, -config.HeartTilt, 0)
	heartSway = anim.Keys(0, config.HeartSway, -config.HeartSway, 0)
)

// Heart is one ambient background heart. XPercent is a share of the viewport
// width so hearts follow resizes.
type Heart struct {
	ID       int
	XPercent float64
	Size     float64
	Duration float64
	Delay    float64
	Opacity  float64
}

// NewHearts builds the ambient batch. It is called once per scene.
func NewHearts(rng *rand.Rand, count int) []Heart {
	out := make([]Heart, count)
	for i := range out {
		out[i] = Heart{
			ID:       i,
			XPercent: heartX.Random(rng),
			Size:     heartSize.Random(rng),
			Duration: heartDuration.Random(rng),
			Delay:    float64(i) * config.HeartStagger,
			Opacity:  heartOpacity.Random(rng),
		}
	}
	return out
}

// Sample returns the heart's pose t seconds after the scene started. Each
// loop rises from below the viewport to above it.
func (h Heart) Sample(t float64, vp Viewport) Pose {
	p, started := anim.LoopProgress(t, h.Delay, h.Duration)
	if !started {
		return Pose{}
	}
	fade := anim.Keys(0, h.Opacity, h.Opacity, 0)
	return Pose{
		X:        vp.Width*h.XPercent/100 + heartSway.At(p),
		Y:        anim.Ease(nil, vp.Height+config.HeartBelow, config.HeartAbove, p),
		Rotation: heartTilt.At(p),
		Scale:    1,
		Alpha:    fade.At(p),
		Visible:  true,
	}
}
