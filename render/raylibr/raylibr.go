//go:build raylib

// Package raylibr draws menu elements through raylib. It needs cgo and is
// only built with the raylib build tag.
package raylibr

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/OpticalFlyer/tabmenu/geom"
	"github.com/OpticalFlyer/tabmenu/render"
)

var _ render.Backend = (*Backend)(nil)

const (
	fontSize  = 13
	targetFPS = 60
)

// Backend implements render.Backend with raylib owning the window.
type Backend struct {
	clear  rl.Color
	opened bool
}

func New(clearColor geom.Color) *Backend {
	return &Backend{clear: toRL(clearColor)}
}

func (b *Backend) InitWindow(name string, size geom.Vector2f) error {
	if size.X <= 0 || size.Y <= 0 {
		return fmt.Errorf("window size %vx%v must be positive", size.X, size.Y)
	}
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagVsyncHint)
	rl.InitWindow(int32(size.X), int32(size.Y), name)
	b.opened = true
	return nil
}

func (b *Backend) Init() error {
	if !b.opened || !rl.IsWindowReady() {
		return fmt.Errorf("raylib window is not ready")
	}
	rl.SetTargetFPS(targetFPS)
	return nil
}

// ShouldClose reports whether the user asked to close the window.
func (b *Backend) ShouldClose() bool { return rl.WindowShouldClose() }

// Close releases the window.
func (b *Backend) Close() {
	if b.opened {
		rl.CloseWindow()
		b.opened = false
	}
}

func (b *Backend) PreFrame() {
	rl.BeginDrawing()
	rl.ClearBackground(b.clear)
}

func (b *Backend) Present() {
	rl.EndDrawing()
}

func (b *Backend) DrawLineBox(pos, size geom.Vector2f, clr geom.Color) {
	rl.DrawRectangleLinesEx(rl.NewRectangle(pos.X, pos.Y, size.X, size.Y), 1, toRL(clr))
}

func (b *Backend) DrawFilledBox(pos, size geom.Vector2f, clr geom.Color) {
	rl.DrawRectangleV(toVec(pos), toVec(size), toRL(clr))
}

func (b *Backend) DrawLineCircle(center geom.Vector2f, radius float32, clr geom.Color) {
	rl.DrawCircleLines(int32(center.X), int32(center.Y), radius, toRL(clr))
}

func (b *Backend) DrawFilledCircle(center geom.Vector2f, radius float32, clr geom.Color) {
	rl.DrawCircleV(toVec(center), radius, toRL(clr))
}

func (b *Backend) DrawLine(p1, p2 geom.Vector2f, clr geom.Color) {
	rl.DrawLineV(toVec(p1), toVec(p2), toRL(clr))
}

func (b *Backend) RenderText(pos geom.Vector2f, clr geom.Color, format string, args ...any) {
	rl.DrawText(fmt.Sprintf(format, args...), int32(pos.X), int32(pos.Y), fontSize, toRL(clr))
}

// MousePosition returns the cursor in menu units.
func MousePosition() geom.Vector2f {
	p := rl.GetMousePosition()
	return geom.Vec(p.X, p.Y)
}

// FPS returns the measured frame rate.
func FPS() float64 { return float64(rl.GetFPS()) }

// MouseDown reports whether the left button is held.
func MouseDown() bool { return rl.IsMouseButtonDown(rl.MouseButtonLeft) }

func toRL(c geom.Color) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

func toVec(v geom.Vector2f) rl.Vector2 {
	return rl.NewVector2(v.X, v.Y)
}
