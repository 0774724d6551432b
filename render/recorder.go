package render

import (
	"fmt"

	"github.com/OpticalFlyer/tabmenu/geom"
)

// Op names a drawing primitive.
type Op string

const (
	OpLineBox      Op = "LineBox"
	OpFilledBox    Op = "FilledBox"
	OpLineCircle   Op = "LineCircle"
	OpFilledCircle Op = "FilledCircle"
	OpLine         Op = "Line"
	OpText         Op = "Text"
)

// Call is one recorded primitive. Fields that do not apply to Op are zero.
// For lines, Pos is the first point and Size holds the second.
type Call struct {
	Op     Op
	Pos    geom.Vector2f
	Size   geom.Vector2f
	Radius float32
	Color  geom.Color
	Text   string
}

var _ Backend = (*Recorder)(nil)

// Recorder is a headless Backend that keeps the primitives of the current
// frame. PreFrame discards the previous frame.
type Recorder struct {
	Name   string
	Size   geom.Vector2f
	Calls  []Call
	Frames int
}

func (r *Recorder) InitWindow(name string, size geom.Vector2f) error {
	r.Name = name
	r.Size = size
	return nil
}

func (r *Recorder) Init() error { return nil }

func (r *Recorder) PreFrame() { r.Calls = r.Calls[:0] }

func (r *Recorder) Present() { r.Frames++ }

func (r *Recorder) DrawLineBox(pos, size geom.Vector2f, clr geom.Color) {
	r.Calls = append(r.Calls, Call{Op: OpLineBox, Pos: pos, Size: size, Color: clr})
}

func (r *Recorder) DrawFilledBox(pos, size geom.Vector2f, clr geom.Color) {
	r.Calls = append(r.Calls, Call{Op: OpFilledBox, Pos: pos, Size: size, Color: clr})
}

func (r *Recorder) DrawLineCircle(center geom.Vector2f, radius float32, clr geom.Color) {
	r.Calls = append(r.Calls, Call{Op: OpLineCircle, Pos: center, Radius: radius, Color: clr})
}

func (r *Recorder) DrawFilledCircle(center geom.Vector2f, radius float32, clr geom.Color) {
	r.Calls = append(r.Calls, Call{Op: OpFilledCircle, Pos: center, Radius: radius, Color: clr})
}

func (r *Recorder) DrawLine(p1, p2 geom.Vector2f, clr geom.Color) {
	r.Calls = append(r.Calls, Call{Op: OpLine, Pos: p1, Size: p2, Color: clr})
}

func (r *Recorder) RenderText(pos geom.Vector2f, clr geom.Color, format string, args ...any) {
	r.Calls = append(r.Calls, Call{Op: OpText, Pos: pos, Color: clr, Text: fmt.Sprintf(format, args...)})
}

// Count returns how many calls of op were recorded.
func (r *Recorder) Count(op Op) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Texts returns the rendered strings in draw order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, c := range r.Calls {
		if c.Op == OpText {
			out = append(out, c.Text)
		}
	}
	return out
}
