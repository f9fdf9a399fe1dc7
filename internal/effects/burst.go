package effects

import (
	"math"
	"math/rand/v2"

	"github.com/iburimskiy/love-bloom/internal/anim"
	"github.com/iburimskiy/love-bloom/internal/config"
)

var (
	burstDistance = Range{config.BurstMinDistance, config.BurstMaxDistance}

	sparkleScale = anim.Keys(0, config.BurstPeakScale, 0)
	sparkleFade  = anim.Keys(1, 1, 0)
)

// BurstPoint is the origin of one sparkle ring.
type BurstPoint struct {
	ID   int
	X, Y float64
}

// Sparkle is one particle of a ring, derived from its index.
type Sparkle struct {
	Index    int
	Angle    float64
	Distance float64
	Delay    float64
}

// Burst is a BurstPoint together with its ring.
type Burst struct {
	Origin   BurstPoint
	Sparkles []Sparkle
}

// NewBurst creates a ring of config.BurstCount sparkles around (x, y).
func NewBurst(rng *rand.Rand, id int, x, y float64) Burst {
	b := Burst{
		Origin:   BurstPoint{ID: id, X: x, Y: y},
		Sparkles: make([]Sparkle, config.BurstCount),
	}
	for i := range b.Sparkles {
		b.Sparkles[i] = Sparkle{
			Index:    i,
			Angle:    float64(i) / float64(config.BurstCount) * 2 * math.Pi,
			Distance: burstDistance.Random(rng),
			Delay:    float64(i) * config.BurstStagger,
		}
	}
	return b
}

// Sample returns the sparkle's pose t seconds after the burst, relative to
// origin o.
func (s Sparkle) Sample(t float64, o BurstPoint) Pose {
	p, started, done := anim.Progress(t, s.Delay, config.BurstDuration)
	if done {
		return Pose{}
	}
	if !started {
		// Waiting at the origin with zero scale.
		return Pose{X: o.X, Y: o.Y, Alpha: 1}
	}
	return Pose{
		X:       o.X + math.Cos(s.Angle)*s.Distance*p,
		Y:       o.Y + math.Sin(s.Angle)*s.Distance*p,
		Scale:   sparkleScale.At(p),
		Alpha:   sparkleFade.At(p),
		Visible: true,
	}
}

// Finished reports whether every sparkle has played out at time t.
func (b Burst) Finished(t float64) bool {
	last := float64(len(b.Sparkles)-1)*config.BurstStagger + config.BurstDuration
	return t >= last
}
