package main

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/require"
)

func TestTouchTrackerFollowsPrimaryTouch(t *testing.T) {
	positions := map[ebiten.TouchID][2]int{
		1: {10, 20},
		2: {300, 400},
	}
	position := func(id ebiten.TouchID) (int, int) {
		p := positions[id]
		return p[0], p[1]
	}
	var tr touchTracker

	_, _, _, ok := tr.update(nil, position)
	require.False(t, ok)

	x, y, pressed, ok := tr.update([]ebiten.TouchID{1}, position)
	require.True(t, ok)
	require.True(t, pressed)
	require.Equal(t, float32(10), x)
	require.Equal(t, float32(20), y)

	// A second finger does not produce a sample of its own.
	positions[1] = [2]int{12, 22}
	x, y, pressed, ok = tr.update([]ebiten.TouchID{2, 1}, position)
	require.True(t, ok)
	require.True(t, pressed)
	require.Equal(t, float32(12), x)
	require.Equal(t, float32(22), y)

	// The second finger lifting leaves the primary pressed.
	_, _, pressed, _ = tr.update([]ebiten.TouchID{1}, position)
	require.True(t, pressed)

	// The primary lifting releases at its last position.
	x, y, pressed, ok = tr.update([]ebiten.TouchID{2}, position)
	require.True(t, ok)
	require.False(t, pressed)
	require.Equal(t, float32(12), x)
	require.Equal(t, float32(22), y)

	// A finger still down becomes the next primary.
	x, _, pressed, ok = tr.update([]ebiten.TouchID{2}, position)
	require.True(t, ok)
	require.True(t, pressed)
	require.Equal(t, float32(300), x)

	_, _, _, ok = tr.update(nil, position)
	require.True(t, ok)
	_, _, _, ok = tr.update(nil, position)
	require.False(t, ok)
}
