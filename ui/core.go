package ui

import (
	"fmt"
	"sync/atomic"

	"github.com/OpticalFlyer/tabmenu/geom"
	"github.com/OpticalFlyer/tabmenu/render"
)

// ElementType tags the concrete kind of an Element.
type ElementType int

const (
	TypeWindow ElementType = iota
	TypeTabbedWindow
	TypeTabbedWindowPage
	TypeButton
)

func (t ElementType) String() string {
	switch t {
	case TypeWindow:
		return "Window"
	case TypeTabbedWindow:
		return "TabbedWindow"
	case TypeTabbedWindowPage:
		return "TabbedWindowPage"
	case TypeButton:
		return "Button"
	}
	return fmt.Sprintf("ElementType(%d)", int(t))
}

// WindowLike reports whether elements of this type may own other elements.
func (t ElementType) WindowLike() bool {
	switch t {
	case TypeWindow, TypeTabbedWindow, TypeTabbedWindowPage:
		return true
	}
	return false
}

// Element represents the basic building block of the menu tree.
// All menu elements must implement this interface.
type Element interface {
	ID() uint32
	Type() ElementType
	Draw(r render.Renderer)

	Position() geom.Vector2f
	Size() geom.Vector2f
	SetPosition(p geom.Vector2f)
	SetSize(s geom.Vector2f)
	AddPosition(offset geom.Vector2f)
	Bounds() Rectangle

	Dispose()
	Disposed() bool
}

// Container represents an Element that owns and draws other Elements.
type Container interface {
	Element
	Children() []Element
}

// Rectangle represents the bounds of an Element
type Rectangle struct {
	X, Y          float32
	Width, Height float32
}

// Contains reports whether p lies inside r, edges included.
func (r Rectangle) Contains(p geom.Vector2f) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

var lastID atomic.Uint32

// NextID hands out element identifiers. Zero is never returned.
func NextID() uint32 {
	return lastID.Add(1)
}

// base carries the state shared by every element. Concrete elements embed it.
type base struct {
	id       uint32
	position geom.Vector2f
	size     geom.Vector2f
	disposed bool
}

func newBase(position, size geom.Vector2f) base {
	b := base{id: NextID(), position: position}
	b.SetSize(size)
	return b
}

func (b *base) ID() uint32 { return b.id }

func (b *base) Position() geom.Vector2f { return b.position }

func (b *base) Size() geom.Vector2f { return b.size }

func (b *base) SetPosition(p geom.Vector2f) { b.position = p }

// SetSize clamps negative components to zero.
func (b *base) SetSize(s geom.Vector2f) {
	b.size = geom.Vector2f{X: max(s.X, 0), Y: max(s.Y, 0)}
}

// AddPosition translates the element by offset.
func (b *base) AddPosition(offset geom.Vector2f) {
	b.position = b.position.Add(offset)
}

func (b *base) Bounds() Rectangle {
	return Rectangle{
		X:      b.position.X,
		Y:      b.position.Y,
		Width:  b.size.X,
		Height: b.size.Y,
	}
}

func (b *base) Disposed() bool { return b.disposed }

// release marks the element disposed and reports whether this call did it.
func (b *base) release() bool {
	if b.disposed {
		return false
	}
	b.disposed = true
	return true
}
