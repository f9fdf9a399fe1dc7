// Package effects generates the scene's particle batches. Every generator is
// a pure function of its random source and inputs: batches are built once and
// never mutated, and Sample methods compute a particle's pose at a given
// clock reading.
package effects

import (
	"math/rand/v2"
)

// Range is an inclusive interval sampled uniformly.
type Range struct {
	Min, Max float64
}

// Random returns a random float64 in [Min, Max].
func (r Range) Random(rng *rand.Rand) float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// Contains reports whether v lies in [Min, Max].
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Viewport is the visible area particles travel across.
type Viewport struct {
	Width, Height float64
}

// Pose is the drawable state of one particle at one instant. Rotation is in
// degrees.
type Pose struct {
	X, Y     float64
	Rotation float64
	Scale    float64
	Alpha    float64
	Visible  bool
}

// NewRand returns a PCG source seeded with seed, or from the runtime's
// entropy when seed is zero.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
