// Package ebitenr draws menu elements onto an ebiten screen image.
package ebitenr

import (
	"fmt"
	"image"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/OpticalFlyer/tabmenu/geom"
	"github.com/OpticalFlyer/tabmenu/render"
)

var _ render.Backend = (*Backend)(nil)

const strokeWidth = 1.0

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Backend implements render.Backend on top of ebiten. ebiten owns the main
// loop, so the host calls Begin with the frame's screen from its Draw method
// before PreFrame.
type Backend struct {
	screen     *ebiten.Image
	face       text.Face
	clear      color.Color
	antialias  bool
	vsync      bool
	frameCount uint64
}

// New returns a backend that clears each frame to clearColor.
func New(clearColor geom.Color, vsync bool) *Backend {
	return &Backend{
		face:      text.NewGoXFace(basicfont.Face7x13),
		clear:     clearColor,
		antialias: true,
		vsync:     vsync,
	}
}

func (b *Backend) InitWindow(name string, size geom.Vector2f) error {
	if size.X <= 0 || size.Y <= 0 {
		return fmt.Errorf("window size %vx%v must be positive", size.X, size.Y)
	}
	ebiten.SetWindowSize(int(size.X), int(size.Y))
	ebiten.SetWindowTitle(name)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return nil
}

func (b *Backend) Init() error {
	ebiten.SetVsyncEnabled(b.vsync)
	return nil
}

// Begin sets the image the following primitives draw to.
func (b *Backend) Begin(screen *ebiten.Image) {
	b.screen = screen
}

func (b *Backend) PreFrame() {
	if b.screen == nil {
		return
	}
	b.screen.Fill(b.clear)
}

// Present ends the frame. ebiten swaps buffers after Draw returns.
func (b *Backend) Present() {
	b.frameCount++
	b.screen = nil
}

func (b *Backend) FrameCount() uint64 { return b.frameCount }

func (b *Backend) DrawLineBox(pos, size geom.Vector2f, clr geom.Color) {
	if b.screen == nil {
		return
	}
	vector.StrokeRect(b.screen, pos.X, pos.Y, size.X, size.Y, strokeWidth, clr, b.antialias)
}

func (b *Backend) DrawFilledBox(pos, size geom.Vector2f, clr geom.Color) {
	if b.screen == nil {
		return
	}
	vector.DrawFilledRect(b.screen, pos.X, pos.Y, size.X, size.Y, clr, b.antialias)
}

func (b *Backend) DrawLineCircle(center geom.Vector2f, radius float32, clr geom.Color) {
	if b.screen == nil {
		return
	}
	vector.StrokeCircle(b.screen, center.X, center.Y, radius, strokeWidth, clr, b.antialias)
}

// DrawFilledCircle fills the same polygon other backends outline, so fill and
// outline line up at any radius.
func (b *Backend) DrawFilledCircle(center geom.Vector2f, radius float32, clr geom.Color) {
	if b.screen == nil {
		return
	}
	pts := geom.CirclePolygon(center, radius, geom.SegmentsForRadius(radius))
	indices, err := geom.Triangulate(pts)
	if err != nil {
		log.Printf("Error filling circle at %v: %v", center, err)
		return
	}

	r, g, bl, a := clr.RGBA()
	vertices := make([]ebiten.Vertex, len(pts))
	for i, p := range pts {
		vertices[i] = ebiten.Vertex{
			DstX:   p.X,
			DstY:   p.Y,
			SrcX:   1,
			SrcY:   1,
			ColorR: float32(r) / 0xffff,
			ColorG: float32(g) / 0xffff,
			ColorB: float32(bl) / 0xffff,
			ColorA: float32(a) / 0xffff,
		}
	}

	op := &ebiten.DrawTrianglesOptions{AntiAlias: b.antialias}
	b.screen.DrawTriangles(vertices, indices, whiteSubImage, op)
}

func (b *Backend) DrawLine(p1, p2 geom.Vector2f, clr geom.Color) {
	if b.screen == nil {
		return
	}
	vector.StrokeLine(b.screen, p1.X, p1.Y, p2.X, p2.Y, strokeWidth, clr, b.antialias)
}

func (b *Backend) RenderText(pos geom.Vector2f, clr geom.Color, format string, args ...any) {
	if b.screen == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(pos.X), float64(pos.Y))
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(b.screen, fmt.Sprintf(format, args...), b.face, op)
}
