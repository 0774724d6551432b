package ui

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/OpticalFlyer/tabmenu/geom"
	"github.com/OpticalFlyer/tabmenu/render"
)

func TestController(t *testing.T) {
	c := NewController()
	w := newTestWindow(geom.Vec(0, 0), geom.Vec(300, 200))
	pageID := w.AddTabPage("General")
	w.AddTabPage("Audio")
	c.Add(w)

	standalone := NewButton(NewButtonContext())
	standalone.SetPosition(geom.Vec(400, 0))
	c.Add(standalone)

	require.Len(t, c.Elements(), 2)
	require.Equal(t, 4, c.Count())

	p, ok := Find[*TabbedWindowPage](c, pageID)
	require.True(t, ok)
	require.Equal(t, "General", p.Name())

	b, ok := Find[*Button](c, standalone.ID())
	require.True(t, ok)
	require.Same(t, standalone, b)

	require.True(t, c.HandleInput(410, 10, false))
	require.Equal(t, ButtonHovered, standalone.State())
	require.False(t, c.HandleInput(1000, 1000, false))

	var rec render.Recorder
	c.Debug = true
	c.FPS = 60
	c.Draw(&rec)
	texts := rec.Texts()
	require.Equal(t, "FPS: 60.00 Elements: 4", texts[len(texts)-1])

	c.Dispose()
	require.True(t, w.Disposed())
	require.True(t, standalone.Disposed())
	require.Empty(t, c.Elements())
}
