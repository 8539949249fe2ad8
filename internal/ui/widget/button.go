package widget

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"blockdrop/internal/graphics/renderables/ui"
)

// Button is a clickable labeled rectangle.
type Button struct {
	BaseComponent
	Text      string
	OnClick   func()
	IsHovered bool

	NormalColor mgl32.Vec3
	HoverColor  mgl32.Vec3
	TextColor   mgl32.Vec3
}

// NewButton creates a button with the default color scheme.
func NewButton(text string, x, y, w, h float32, onClick func()) *Button {
	return &Button{
		BaseComponent: BaseComponent{X: x, Y: y, W: w, H: h},
		Text:          text,
		OnClick:       onClick,
		NormalColor:   mgl32.Vec3{0.22, 0.22, 0.22},
		HoverColor:    mgl32.Vec3{0.35, 0.35, 0.35},
		TextColor:     mgl32.Vec3{1, 1, 1},
	}
}

// Render draws the button and refreshes its hover state from the cursor.
func (b *Button) Render(u *ui.UI, window *glfw.Window) {
	mx, my := window.GetCursorPos()
	b.IsHovered = b.Contains(float32(mx), float32(my))

	color := b.NormalColor
	if b.IsHovered {
		color = b.HoverColor
	}
	u.DrawFilledRect(b.X, b.Y, b.W, b.H, color, 0.85)

	// Scale the label to ~40% of button height, clamped to 90% width.
	_, rawH := u.MeasureText(b.Text, 1.0)
	scale := b.H * 0.4 / rawH
	textW, textH := u.MeasureText(b.Text, scale)
	if maxW := b.W * 0.9; textW > maxW {
		scale *= maxW / textW
		textW, textH = u.MeasureText(b.Text, scale)
	}

	tx := b.X + (b.W-textW)/2
	ty := b.Y + (b.H-textH)/2
	u.DrawText(b.Text, tx, ty, scale, b.TextColor)
}

// HandleInput fires OnClick when the button is clicked; returns true if the
// click was consumed.
func (b *Button) HandleInput(window *glfw.Window, justPressedLeft bool) bool {
	if b.IsHovered && justPressedLeft {
		if b.OnClick != nil {
			b.OnClick()
		}
		return true
	}
	return false
}
