package ui

import (
	"github.com/OpticalFlyer/tabmenu/geom"
	"github.com/OpticalFlyer/tabmenu/render"
)

var (
	_ Container    = (*TabbedWindow)(nil)
	_ InputHandler = (*TabbedWindow)(nil)
)

const (
	DefaultTabBarHeight = 25.0
	DefaultBorderWidth  = 5.0
)

// TabbedWindowContext configures a TabbedWindow. It is copied at construction.
type TabbedWindowContext struct {
	WindowName        string
	TitleFillColor    geom.Color
	TabFillColor      geom.Color
	TabTitleFillColor geom.Color
	Size              geom.Vector2f
	Position          geom.Vector2f

	// Optional, see NewTabbedWindowContext for defaults.
	DefaultTabFocusIndex uint32
	TabBarHeight         float32
	BorderWidth          float32
	TabTextColor         geom.Color
}

// NewTabbedWindowContext returns a context with the optional fields set to
// their defaults.
func NewTabbedWindowContext() TabbedWindowContext {
	return TabbedWindowContext{
		DefaultTabFocusIndex: 0,
		TabBarHeight:         DefaultTabBarHeight,
		BorderWidth:          DefaultBorderWidth,
		TabTextColor:         geom.Black(),
	}
}

// TabbedWindow owns one page and one selector button per tab and draws only
// the focused page.
type TabbedWindow struct {
	base
	ctx     TabbedWindowContext
	pages   []*TabbedWindowPage
	buttons []*Button
	focus   uint32
}

func NewTabbedWindow(ctx TabbedWindowContext) *TabbedWindow {
	return &TabbedWindow{
		base:  newBase(ctx.Position, ctx.Size),
		ctx:   ctx,
		focus: ctx.DefaultTabFocusIndex,
	}
}

func (w *TabbedWindow) Type() ElementType { return TypeTabbedWindow }

func (w *TabbedWindow) Name() string { return w.ctx.WindowName }

// AddTabPage appends a page and its selector button and returns the page id.
// Page geometry is fixed from the window geometry at the time of the call.
func (w *TabbedWindow) AddTabPage(name string) uint32 {
	border := w.ctx.BorderWidth
	barHeight := w.ctx.TabBarHeight

	page := NewTabbedWindowPage(TabbedWindowPageContext{
		WindowName:     name,
		FillColor:      w.ctx.TabFillColor,
		TitleFillColor: w.ctx.TabTitleFillColor,
		TitleBarHeight: barHeight,
		TextColor:      w.ctx.TabTextColor,
		Position:       w.position.Add(geom.Vec(border, barHeight*2)),
		Size:           w.size.Sub(geom.Vec(border*2, barHeight*2+border)),
	})
	w.pages = append(w.pages, page)

	// One slot for the button being added and one held back for the next tab.
	widthPerButton := (w.size.X - border*2) / float32(len(w.buttons)+2)
	for i, btn := range w.buttons {
		btn.SetSize(geom.Vec(widthPerButton, barHeight))
		btn.SetPosition(geom.Vec(widthPerButton*float32(i)+w.position.X+border, btn.Position().Y))
	}

	btn := NewButton(ButtonContext{
		Text:               name,
		FillColor:          w.ctx.TabFillColor,
		FillColorMouseDown: geom.White(),
		FillColorMouseOver: geom.Black(),
		TextColor:          w.ctx.TabTextColor,
		Size:               geom.Vec(widthPerButton, barHeight),
		Position:           geom.Vec(widthPerButton*float32(len(w.buttons))+border, barHeight),
	})
	btn.AddPosition(w.position)
	w.buttons = append(w.buttons, btn)

	return page.ID()
}

func (w *TabbedWindow) Draw(r render.Renderer) {
	r.DrawFilledBox(w.position, w.size, w.ctx.TitleFillColor)
	r.DrawLineBox(w.position, w.size, geom.Black())
	r.RenderText(w.position.Add(textInset), w.ctx.TabTextColor, "%s", w.ctx.WindowName)

	for _, btn := range w.buttons {
		btn.Draw(r)
	}

	if !w.HasValidFocus() {
		return
	}
	w.pages[w.focus].Draw(r)
}

func (w *TabbedWindow) FocusedIndex() uint32 { return w.focus }

// SetFocusedIndex selects the visible tab. The index is not checked against
// the tab count; see HasValidFocus.
func (w *TabbedWindow) SetFocusedIndex(i uint32) { w.focus = i }

// HasValidFocus reports whether the focused index names an existing page.
func (w *TabbedWindow) HasValidFocus() bool {
	return uint64(w.focus) < uint64(len(w.pages))
}

// FocusedPage returns the visible page, or nil when focus is out of range.
func (w *TabbedWindow) FocusedPage() *TabbedWindowPage {
	if !w.HasValidFocus() {
		return nil
	}
	return w.pages[w.focus]
}

func (w *TabbedWindow) TabCount() int { return len(w.pages) }

// Page returns the page for tab i, or nil.
func (w *TabbedWindow) Page(i int) *TabbedWindowPage {
	if i < 0 || i >= len(w.pages) {
		return nil
	}
	return w.pages[i]
}

// Button returns the selector button for tab i, or nil.
func (w *TabbedWindow) Button(i int) *Button {
	if i < 0 || i >= len(w.buttons) {
		return nil
	}
	return w.buttons[i]
}

// TabAt returns the index of the tab button under p.
func (w *TabbedWindow) TabAt(p geom.Vector2f) (int, bool) {
	for i, btn := range w.buttons {
		if btn.Bounds().Contains(p) {
			return i, true
		}
	}
	return -1, false
}

// Children returns the pages; buttons are not searchable by id.
func (w *TabbedWindow) Children() []Element {
	out := make([]Element, len(w.pages))
	for i, p := range w.pages {
		out[i] = p
	}
	return out
}

// ElementByID finds any element with id among the pages and their contents.
func (w *TabbedWindow) ElementByID(id uint32) (Element, bool) {
	return FindElement[Element](w, id)
}

// HandleInput forwards a pointer sample to the tab buttons, focusing a tab
// when its button is clicked, and then to the contents of the focused page.
func (w *TabbedWindow) HandleInput(x, y float32, pressed bool) bool {
	handled := false
	for i, btn := range w.buttons {
		over, clicked := btn.Track(x, y, pressed)
		if clicked {
			w.focus = uint32(i)
		}
		handled = handled || over
	}
	if page := w.FocusedPage(); page != nil && page.HandleInput(x, y, pressed) {
		handled = true
	}
	return handled || w.Bounds().Contains(geom.Vec(x, y))
}

func (w *TabbedWindow) Dispose() {
	if !w.release() {
		return
	}
	for _, p := range w.pages {
		p.Dispose()
	}
	for _, b := range w.buttons {
		b.Dispose()
	}
	w.pages = nil
	w.buttons = nil
}
