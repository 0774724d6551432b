package ui

import (
	"github.com/OpticalFlyer/tabmenu/geom"
	"github.com/OpticalFlyer/tabmenu/render"
)

var (
	_ Element      = (*Button)(nil)
	_ InputHandler = (*Button)(nil)
)

// ButtonState is the visual state a Button is drawn in.
type ButtonState int

const (
	ButtonIdle ButtonState = iota
	ButtonHovered
	ButtonPressed
)

// ButtonContext configures a Button.
type ButtonContext struct {
	Text               string
	FillColor          geom.Color
	FillColorMouseOver geom.Color
	FillColorMouseDown geom.Color
	TextColor          geom.Color
	Size               geom.Vector2f
	Position           geom.Vector2f
}

// NewButtonContext returns a context with black text and the default fills.
func NewButtonContext() ButtonContext {
	return ButtonContext{
		FillColor:          geom.RGBA(150, 150, 150, 255),
		FillColorMouseOver: geom.RGBA(180, 180, 180, 255),
		FillColorMouseDown: geom.RGBA(100, 100, 100, 255),
		TextColor:          geom.Black(),
		Size:               geom.Vec(100, 30),
	}
}

// textInset is the padding between a button's edge and its label.
var textInset = geom.Vec(4, 4)

type Button struct {
	base
	ctx ButtonContext

	// State
	isHovered bool
	isPressed bool
}

func NewButton(ctx ButtonContext) *Button {
	return &Button{
		base: newBase(ctx.Position, ctx.Size),
		ctx:  ctx,
	}
}

func (b *Button) Type() ElementType { return TypeButton }

func (b *Button) Text() string { return b.ctx.Text }

func (b *Button) State() ButtonState {
	if b.isPressed {
		return ButtonPressed
	}
	if b.isHovered {
		return ButtonHovered
	}
	return ButtonIdle
}

// FillColor returns the fill used for the current state.
func (b *Button) FillColor() geom.Color {
	switch b.State() {
	case ButtonPressed:
		return b.ctx.FillColorMouseDown
	case ButtonHovered:
		return b.ctx.FillColorMouseOver
	}
	return b.ctx.FillColor
}

func (b *Button) Draw(r render.Renderer) {
	r.DrawFilledBox(b.position, b.size, b.FillColor())
	r.DrawLineBox(b.position, b.size, geom.Black())
	r.RenderText(b.position.Add(textInset), b.ctx.TextColor, "%s", b.ctx.Text)
}

// HandleInput updates hover and pressed state and reports whether the
// pointer is over the button.
func (b *Button) HandleInput(x, y float32, pressed bool) bool {
	over, _ := b.Track(x, y, pressed)
	return over
}

// Track updates hover and pressed state from a pointer sample. A press
// followed by a release inside the button reports clicked.
func (b *Button) Track(x, y float32, pressed bool) (over, clicked bool) {
	if !b.Bounds().Contains(geom.Vec(x, y)) {
		b.isHovered = false
		b.isPressed = false
		return false, false
	}

	b.isHovered = true
	if pressed {
		b.isPressed = true
	} else if b.isPressed {
		b.isPressed = false
		clicked = true
	}
	return true, clicked
}

func (b *Button) Dispose() {
	b.release()
}
