package ui

import (
	"github.com/OpticalFlyer/tabmenu/geom"
	"github.com/OpticalFlyer/tabmenu/render"
)

var (
	_ Container    = (*TabbedWindowPage)(nil)
	_ InputHandler = (*TabbedWindowPage)(nil)
)

// TabbedWindowPageContext configures a TabbedWindowPage.
type TabbedWindowPageContext struct {
	WindowName     string
	FillColor      geom.Color
	TitleFillColor geom.Color
	TitleBarHeight float32
	TextColor      geom.Color
	Size           geom.Vector2f
	Position       geom.Vector2f
}

// TabbedWindowPage is the content area shown while its tab is focused.
type TabbedWindowPage struct {
	base
	ctx      TabbedWindowPageContext
	children []Element
}

func NewTabbedWindowPage(ctx TabbedWindowPageContext) *TabbedWindowPage {
	return &TabbedWindowPage{
		base: newBase(ctx.Position, ctx.Size),
		ctx:  ctx,
	}
}

func (p *TabbedWindowPage) Type() ElementType { return TypeTabbedWindowPage }

func (p *TabbedWindowPage) Name() string { return p.ctx.WindowName }

func (p *TabbedWindowPage) TitleBarHeight() float32 { return p.ctx.TitleBarHeight }

// Add transfers ownership of child to the page. Its position is taken as
// relative to the page's content area, below the title bar.
func (p *TabbedWindowPage) Add(child Element) {
	child.AddPosition(p.ContentOrigin())
	p.children = append(p.children, child)
}

// ContentOrigin is the absolute top-left of the area under the title bar.
func (p *TabbedWindowPage) ContentOrigin() geom.Vector2f {
	return p.position.Add(geom.Vec(0, p.ctx.TitleBarHeight))
}

func (p *TabbedWindowPage) Children() []Element { return p.children }

func (p *TabbedWindowPage) Draw(r render.Renderer) {
	// Draw page background
	r.DrawFilledBox(p.position, p.size, p.ctx.FillColor)

	// Draw title bar
	titleSize := geom.Vec(p.size.X, min(p.ctx.TitleBarHeight, p.size.Y))
	r.DrawFilledBox(p.position, titleSize, p.ctx.TitleFillColor)
	r.DrawLineBox(p.position, p.size, geom.Black())
	r.RenderText(p.position.Add(textInset), p.ctx.TextColor, "%s", p.ctx.WindowName)

	for _, child := range p.children {
		child.Draw(r)
	}
}

// HandleInput forwards a pointer sample to every child that tracks pointer
// state. Children see every sample so they can drop hover when it leaves.
func (p *TabbedWindowPage) HandleInput(x, y float32, pressed bool) bool {
	hit := false
	for _, child := range p.children {
		if h, ok := child.(InputHandler); ok && h.HandleInput(x, y, pressed) {
			hit = true
		}
	}
	return hit
}

func (p *TabbedWindowPage) Dispose() {
	if !p.release() {
		return
	}
	for _, child := range p.children {
		child.Dispose()
	}
	p.children = nil
}
