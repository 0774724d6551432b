package main

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// touchTracker follows one primary touch. Further fingers are ignored until
// the primary lifts, so they cannot reset its pressed state mid-gesture.
type touchTracker struct {
	id     ebiten.TouchID
	x, y   float32
	active bool
}

// update turns the current touch set into at most one pointer sample. A
// primary touch that lifts off is reported as a release at its last position,
// which is what clicks a tab button.
func (t *touchTracker) update(touches []ebiten.TouchID, position func(ebiten.TouchID) (int, int)) (x, y float32, pressed, ok bool) {
	if t.active && !containsTouchID(touches, t.id) {
		t.active = false
		return t.x, t.y, false, true
	}
	if !t.active {
		if len(touches) == 0 {
			return 0, 0, false, false
		}
		t.id = touches[0]
		t.active = true
	}
	px, py := position(t.id)
	t.x, t.y = float32(px), float32(py)
	return t.x, t.y, true, true
}

// handleTouchEvents feeds the primary touch to the UI as a pointer sample and
// reports whether touch input owns the pointer this frame.
func (o *Overlay) handleTouchEvents() bool {
	touches := ebiten.AppendTouchIDs(make([]ebiten.TouchID, 0, 8))
	x, y, pressed, ok := o.touch.update(touches, ebiten.TouchPosition)
	if !ok {
		return false
	}
	o.ui.HandleInput(x, y, pressed)
	return true
}

// Helper function to check if a TouchID is in a slice
func containsTouchID(ids []ebiten.TouchID, id ebiten.TouchID) bool {
	for _, tid := range ids {
		if tid == id {
			return true
		}
	}
	return false
}
