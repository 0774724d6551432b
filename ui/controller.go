package ui

import (
	"github.com/OpticalFlyer/tabmenu/geom"
	"github.com/OpticalFlyer/tabmenu/render"
)

// InputHandler is implemented by elements that track pointer state.
type InputHandler interface {
	HandleInput(x, y float32, pressed bool) bool
}

// Controller owns the top-level elements of an overlay
type Controller struct {
	elements []Element

	// Debug draws an element count and frame rate line each frame.
	Debug bool
	FPS   float64
}

// NewController creates a new UI controller
func NewController() *Controller {
	return &Controller{
		elements: make([]Element, 0),
	}
}

// Add hands ownership of a top-level element to the controller
func (c *Controller) Add(e Element) {
	c.elements = append(c.elements, e)
}

func (c *Controller) Elements() []Element {
	return c.elements
}

// Draw draws all elements in insertion order
func (c *Controller) Draw(r render.Renderer) {
	for _, e := range c.elements {
		e.Draw(r)
	}
	if c.Debug {
		c.ShowDebugInfo(r)
	}
}

// ShowDebugInfo draws debug information
func (c *Controller) ShowDebugInfo(r render.Renderer) {
	r.RenderText(geom.Vec(0, 0), geom.White(), "FPS: %.2f Elements: %d", c.FPS, c.Count())
}

// Count returns the number of elements reachable from the controller,
// tab buttons excluded.
func (c *Controller) Count() int {
	return countIn(c.elements)
}

func countIn(elements []Element) int {
	n := len(elements)
	for _, e := range elements {
		if sub, ok := e.(Container); ok {
			n += countIn(sub.Children())
		}
	}
	return n
}

// HandleInput forwards a pointer sample to every top-level element that
// tracks pointer state and reports whether any of them was hit.
func (c *Controller) HandleInput(x, y float32, pressed bool) bool {
	hit := false
	for _, e := range c.elements {
		if h, ok := e.(InputHandler); ok && h.HandleInput(x, y, pressed) {
			hit = true
		}
	}
	return hit
}

// Find looks up an element by id across every top-level element.
func Find[T Element](c *Controller, id uint32) (T, bool) {
	return findIn[T](c.elements, id)
}

// Dispose releases every element the controller owns.
func (c *Controller) Dispose() {
	for _, e := range c.elements {
		e.Dispose()
	}
	c.elements = nil
}
