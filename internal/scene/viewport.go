package scene

import (
	"github.com/iburimskiy/love-bloom/internal/effects"
	"github.com/iburimskiy/love-bloom/internal/event"
)

// Viewport tracks the host surface size from Resized events.
type Viewport struct {
	size effects.Viewport
}

// NewViewport starts at width x height.
func NewViewport(width, height int) *Viewport {
	return &Viewport{size: effects.Viewport{Width: float64(width), Height: float64(height)}}
}

// OnEvent implements event.Listener. Sizes are taken as reported.
func (v *Viewport) OnEvent(e event.Event) {
	if e.Type != event.Resized {
		return
	}
	if sz, ok := e.Data.(event.Size); ok {
		v.size = effects.Viewport{Width: float64(sz.Width), Height: float64(sz.Height)}
	}
}

// Size returns the current bounds.
func (v *Viewport) Size() effects.Viewport {
	return v.size
}
