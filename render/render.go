// Package render defines the drawing contract that menu elements draw through.
// Concrete backends live in the sub-packages.
package render

import (
	"errors"
	"fmt"

	"github.com/OpticalFlyer/tabmenu/geom"
)

// ErrInvalidCorner is returned by RectPoint for an unknown Corner.
var ErrInvalidCorner = errors.New("invalid rect corner")

// Renderer is the set of primitives an element may issue while drawing.
type Renderer interface {
	DrawLineBox(pos, size geom.Vector2f, clr geom.Color)
	DrawFilledBox(pos, size geom.Vector2f, clr geom.Color)
	DrawLineCircle(center geom.Vector2f, radius float32, clr geom.Color)
	DrawFilledCircle(center geom.Vector2f, radius float32, clr geom.Color)
	DrawLine(p1, p2 geom.Vector2f, clr geom.Color)
	RenderText(pos geom.Vector2f, clr geom.Color, format string, args ...any)
}

// Backend is a Renderer that also owns a window or surface. The host drives
// it once per frame: PreFrame, draw the element tree, Present.
type Backend interface {
	Renderer
	InitWindow(name string, size geom.Vector2f) error
	Init() error
	PreFrame()
	Present()
}

// Corner selects one of the four corners of a box.
type Corner int

const (
	TopLeft Corner = iota
	TopRight
	BottomLeft
	BottomRight
)

func (c Corner) String() string {
	switch c {
	case TopLeft:
		return "top-left"
	case TopRight:
		return "top-right"
	case BottomLeft:
		return "bottom-left"
	case BottomRight:
		return "bottom-right"
	}
	return fmt.Sprintf("Corner(%d)", int(c))
}

// RectPoint returns the requested corner of the box at pos with the given size.
//
//	TopLeft-----TopRight
//	|                  |
//	BottomLeft--BottomRight
func RectPoint(pos, size geom.Vector2f, corner Corner) (geom.Vector2f, error) {
	switch corner {
	case TopLeft:
		return pos, nil
	case TopRight:
		return geom.Vector2f{X: pos.X + size.X, Y: pos.Y}, nil
	case BottomLeft:
		return geom.Vector2f{X: pos.X, Y: pos.Y + size.Y}, nil
	case BottomRight:
		return pos.Add(size), nil
	}
	return geom.Vector2f{}, fmt.Errorf("%w: %d", ErrInvalidCorner, int(corner))
}
