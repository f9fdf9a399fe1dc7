// Package anim evaluates the scene's animations. Tracks are pure functions of
// progress so immutable particle descriptors can be sampled at any time;
// Groups are stateful tweens advanced every tick.
package anim

import (
	"math"

	"github.com/tanema/gween/ease"
)

// Track is a list of evenly spaced keyframes. Each segment between two keys
// is interpolated with Ease (linear when nil).
type Track struct {
	Keys []float64
	Ease ease.TweenFunc
}

// Keys builds a linear Track.
func Keys(keys ...float64) Track {
	return Track{Keys: keys}
}

// At samples the track at progress p. p is clamped to [0,1].
func (tr Track) At(p float64) float64 {
	switch len(tr.Keys) {
	case 0:
		return 0
	case 1:
		return tr.Keys[0]
	}

	p = clamp01(p)
	segments := len(tr.Keys) - 1
	pos := p * float64(segments)
	i := int(pos)
	if i >= segments {
		return tr.Keys[segments]
	}
	return Ease(tr.Ease, tr.Keys[i], tr.Keys[i+1], pos-float64(i))
}

// Ease interpolates from..to at progress p with fn.
func Ease(fn ease.TweenFunc, from, to, p float64) float64 {
	if fn == nil {
		fn = ease.Linear
	}
	return float64(fn(float32(clamp01(p)), float32(from), float32(to-from), 1))
}

// Progress maps a clock reading onto a one-shot animation that starts after
// delay and lasts duration. started is false before the delay; done is true
// once the animation has fully played.
func Progress(t, delay, duration float64) (p float64, started, done bool) {
	if t < delay {
		return 0, false, false
	}
	if duration <= 0 {
		return 1, true, true
	}
	p = (t - delay) / duration
	if p >= 1 {
		return 1, true, true
	}
	return p, true, false
}

// LoopProgress is Progress for an animation that repeats forever after its
// delay.
func LoopProgress(t, delay, duration float64) (p float64, started bool) {
	if t < delay || duration <= 0 {
		return 0, false
	}
	return math.Mod(t-delay, duration) / duration, true
}

// Pulse returns a 0..1..0 wave with the given period, used for breathing
// glows and heartbeats.
func Pulse(t, period float64) float64 {
	if period <= 0 {
		return 0
	}
	return 0.5 - 0.5*math.Cos(2*math.Pi*math.Mod(t, period)/period)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
