package main

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/OpticalFlyer/tabmenu/config"
	"github.com/OpticalFlyer/tabmenu/geom"
	"github.com/OpticalFlyer/tabmenu/render/termr"
	"github.com/OpticalFlyer/tabmenu/ui"
)

type model struct {
	ui      *ui.Controller
	canvas  *termr.Canvas
	windows []*ui.TabbedWindow
	active  int
}

func newModel(c *ui.Controller, canvas *termr.Canvas, windows []*ui.TabbedWindow) model {
	return model{ui: c, canvas: canvas, windows: windows}
}

func windowSize(cfg config.Config) geom.Vector2f {
	return geom.Vec(float32(cfg.Window.Width), float32(cfg.Window.Height))
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.canvas.Resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "d":
			m.ui.Debug = !m.ui.Debug
		case "w":
			if len(m.windows) > 0 {
				m.active = (m.active + 1) % len(m.windows)
			}
		case "tab", "right", "l":
			m.cycle(1)
		case "shift+tab", "left", "h":
			m.cycle(-1)
		case "1", "2", "3", "4", "5", "6", "7", "8", "9":
			m.focus(int(msg.String()[0] - '1'))
		}
	case tea.MouseMsg:
		p := m.canvas.PointAt(msg.X, msg.Y)
		switch msg.Action {
		case tea.MouseActionPress:
			if msg.Button == tea.MouseButtonLeft {
				m.ui.HandleInput(p.X, p.Y, true)
			}
		case tea.MouseActionRelease:
			m.ui.HandleInput(p.X, p.Y, false)
		case tea.MouseActionMotion:
			m.ui.HandleInput(p.X, p.Y, msg.Button == tea.MouseButtonLeft)
		}
	}
	return m, nil
}

// cycle moves focus in the active window by delta tabs, wrapping around.
func (m model) cycle(delta int) {
	w := m.activeWindow()
	if w == nil || w.TabCount() == 0 {
		return
	}
	n := w.TabCount()
	next := (int(w.FocusedIndex()) + delta%n + n) % n
	w.SetFocusedIndex(uint32(next))
}

func (m model) focus(i int) {
	w := m.activeWindow()
	if w == nil {
		return
	}
	if i >= w.TabCount() {
		log.Printf("Tab %d out of range for %q", i+1, w.Name())
		return
	}
	w.SetFocusedIndex(uint32(i))
}

func (m model) activeWindow() *ui.TabbedWindow {
	if m.active < 0 || m.active >= len(m.windows) {
		return nil
	}
	return m.windows[m.active]
}

func (m model) View() string {
	m.canvas.PreFrame()
	m.ui.Draw(m.canvas)
	m.canvas.Present()
	return m.canvas.Frame()
}
