package game

import (
	"github.com/iburimskiy/love-bloom/internal/config"
	"github.com/iburimskiy/love-bloom/internal/scene"
)

// button is the bloom control. A click counts when the mouse is pressed and
// released inside it.
type button struct {
	rect    scene.Rect
	hovered bool
	pressed bool
}

// layout centres the button in a width x height surface.
func (b *button) layout(width, height int) {
	b.rect = scene.Rect{
		X: (float64(width) - config.ButtonWidth) / 2,
		Y: float64(height)*config.ButtonCenterY - config.ButtonHeight/2,
		W: config.ButtonWidth,
		H: config.ButtonHeight,
	}
}

// update feeds one tick of pointer state and reports whether the button was
// clicked.
func (b *button) update(x, y float64, justPressed, justReleased bool) bool {
	b.hovered = b.rect.Contains(x, y)

	if b.hovered && justPressed {
		b.pressed = true
	}
	clicked := false
	if justReleased {
		clicked = b.pressed && b.hovered
		b.pressed = false
	}
	return clicked
}

// scale is the visual zoom for the current interaction.
func (b *button) scale() float64 {
	switch {
	case b.pressed:
		return config.ButtonPress
	case b.hovered:
		return config.ButtonHover
	}
	return 1
}
