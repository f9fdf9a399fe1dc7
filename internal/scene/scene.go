// Package scene holds the greeting's state: the reveal machine, the particle
// batches and the clock that drives them. It has no rendering dependency;
// internal/game draws whatever the scene exposes.
package scene

import (
	"log"
	"math/rand/v2"

	"github.com/iburimskiy/love-bloom/internal/config"
	"github.com/iburimskiy/love-bloom/internal/effects"
	"github.com/iburimskiy/love-bloom/internal/event"
)

// Rect is an on-screen rectangle, used for the activation control.
type Rect struct {
	X, Y, W, H float64
}

// Center returns the midpoint of r.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Scene is the whole animated greeting. Construct it with New and release it
// with Close.
type Scene struct {
	rng      *rand.Rand
	events   *event.Dispatcher
	viewport *Viewport
	timers   Timers
	reveal   Reveal

	hearts   []effects.Heart
	confetti []effects.Confetti
	bursts   []effects.Burst

	triggeredAt float64
	nextBurstID int
	closed      bool
}

// New builds a scene for a width x height surface, generates the ambient
// hearts and subscribes to resize events on events.
func New(rng *rand.Rand, events *event.Dispatcher, width, height int) *Scene {
	s := &Scene{
		rng:      rng,
		events:   events,
		viewport: NewViewport(width, height),
	}
	s.hearts = effects.NewHearts(rng, config.HeartCount)
	events.Subscribe(event.Resized, s.viewport)
	return s
}

// Trigger fires the reveal from the activation control's rectangle. The
// burst starts at the rectangle's centre. It returns false when the scene
// was already revealed or closed.
func (s *Scene) Trigger(control Rect) bool {
	if s.closed || !s.reveal.Begin() {
		return false
	}

	x, y := control.Center()
	s.triggeredAt = s.timers.Now()
	s.nextBurstID++
	s.bursts = append(s.bursts, effects.NewBurst(s.rng, s.nextBurstID, x, y))
	s.confetti = effects.NewConfetti(s.rng, config.ConfettiCount, s.viewport.Size())
	s.timers.AfterFunc(config.ConfettiLifetime, s.settle)

	log.Printf("[Scene] Bloom at (%.0f, %.0f)", x, y)
	s.events.Dispatch(event.Event{Type: event.Bloomed, Data: event.Point{X: x, Y: y}})
	return true
}

func (s *Scene) settle() {
	if !s.reveal.Settle() {
		return
	}
	s.confetti = nil
	s.events.Dispatch(event.Event{Type: event.Settled})
}

// Update advances the scene clock by dt seconds.
func (s *Scene) Update(dt float64) {
	if s.closed {
		return
	}
	s.timers.Advance(dt)

	// Bursts stay in the render set only while a sparkle is still flying.
	t := s.timers.Now() - s.triggeredAt
	live := s.bursts[:0]
	for _, b := range s.bursts {
		if !b.Finished(t) {
			live = append(live, b)
		}
	}
	s.bursts = live
}

// Close cancels the pending settle callback and stops listening for resizes.
// The scene ignores Update and Trigger afterwards.
func (s *Scene) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.timers.StopAll()
	s.events.Unsubscribe(event.Resized, s.viewport)
}

// Phase returns the reveal state.
func (s *Scene) Phase() Phase {
	return s.reveal.Phase()
}

// Clock returns seconds since the scene was created.
func (s *Scene) Clock() float64 {
	return s.timers.Now()
}

// SinceTrigger returns seconds since the reveal, or 0 while idle.
func (s *Scene) SinceTrigger() float64 {
	if !s.reveal.Phase().Revealed() {
		return 0
	}
	return s.timers.Now() - s.triggeredAt
}

// Viewport returns the tracked surface size.
func (s *Scene) Viewport() effects.Viewport {
	return s.viewport.Size()
}

// Hearts returns the ambient batch.
func (s *Scene) Hearts() []effects.Heart {
	return s.hearts
}

// Confetti returns the live confetti batch; it is empty unless the effect is
// active.
func (s *Scene) Confetti() []effects.Confetti {
	return s.confetti
}

// Bursts returns the sparkle rings still in flight.
func (s *Scene) Bursts() []effects.Burst {
	return s.bursts
}

// Closed reports whether Close has been called.
func (s *Scene) Closed() bool {
	return s.closed
}
