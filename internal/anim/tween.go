package anim

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Group animates several float64 fields at once after an optional delay.
// Create one with NewGroup, attach fields with Add and call Update(dt) each
// tick. Values are written straight into the fields.
//
// There is no global animation manager; owners call Update themselves.
type Group struct {
	tweens []*gween.Tween
	fields []*float64
	delay  float32
	Done   bool
}

// NewGroup returns an empty group that starts animating after delay seconds.
func NewGroup(delay float32) *Group {
	return &Group{delay: delay}
}

// Add tweens *field between from and to over duration using fn. The field is
// set to from immediately so it holds the start value during the delay.
func (g *Group) Add(field *float64, from, to float64, duration float32, fn ease.TweenFunc) *Group {
	if fn == nil {
		fn = ease.Linear
	}
	*field = from
	g.tweens = append(g.tweens, gween.New(float32(from), float32(to), duration, fn))
	g.fields = append(g.fields, field)
	return g
}

// Update advances all tweens by dt seconds.
func (g *Group) Update(dt float32) {
	if g.Done {
		return
	}

	if g.delay > 0 {
		g.delay -= dt
		if g.delay > 0 {
			return
		}
		// Carry the overshoot into the tweens.
		dt = -g.delay
		g.delay = 0
	}

	allDone := true
	for i, tw := range g.tweens {
		val, finished := tw.Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// Timeline is a set of groups updated together.
type Timeline struct {
	groups []*Group
}

// Add registers g and returns it for chaining.
func (tl *Timeline) Add(g *Group) *Group {
	tl.groups = append(tl.groups, g)
	return g
}

// Update advances every unfinished group.
func (tl *Timeline) Update(dt float32) {
	for _, g := range tl.groups {
		g.Update(dt)
	}
}

// Done reports whether every group has finished.
func (tl *Timeline) Done() bool {
	for _, g := range tl.groups {
		if !g.Done {
			return false
		}
	}
	return true
}
