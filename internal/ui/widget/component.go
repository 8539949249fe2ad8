package widget

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"blockdrop/internal/graphics/renderables/ui"
)

// Component is a retained overlay widget.
type Component interface {
	Render(u *ui.UI, window *glfw.Window)
	// HandleInput returns true if the widget consumed the click.
	HandleInput(window *glfw.Window, justPressedLeft bool) bool
}

// BaseComponent carries the shared rectangle geometry.
type BaseComponent struct {
	X, Y, W, H float32
}

// Contains reports whether the point lies inside the widget rectangle.
func (b *BaseComponent) Contains(x, y float32) bool {
	return x >= b.X && x <= b.X+b.W && y >= b.Y && y <= b.Y+b.H
}
