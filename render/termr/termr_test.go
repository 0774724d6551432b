package termr

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/OpticalFlyer/tabmenu/geom"
	"github.com/OpticalFlyer/tabmenu/ui"
)

func newCanvas(t *testing.T, size geom.Vector2f) *Canvas {
	t.Helper()
	c := New()
	require.NoError(t, c.InitWindow("test", size))
	require.NoError(t, c.Init())
	c.PreFrame()
	return c
}

func TestInitRequiresSize(t *testing.T) {
	c := New()
	require.ErrorIs(t, c.Init(), ErrNotInitialized)
	require.Error(t, c.InitWindow("x", geom.Vec(0, 10)))

	require.NoError(t, c.InitWindow("x", geom.Vec(300, 200)))
	require.Equal(t, 38, c.Cols())
	require.Equal(t, 13, c.Rows())
}

func TestLineBoxAndText(t *testing.T) {
	c := newCanvas(t, geom.Vec(80, 48))
	c.DrawLineBox(geom.Vec(0, 0), geom.Vec(80, 48), geom.Black())
	c.RenderText(geom.Vec(8, 16), geom.White(), "%s", "hi")
	c.Present()

	want := strings.Join([]string{
		"┌────────┐",
		"│hi      │",
		"└────────┘",
	}, "\n")
	require.Equal(t, want, c.PlainText())
	require.Equal(t, 1, c.Frames())
	require.NotEmpty(t, c.Frame())

	cell, ok := c.At(1, 1)
	require.True(t, ok)
	require.Equal(t, 'h', cell.Rune)
	require.Equal(t, geom.White(), cell.FG)
}

func TestFilledBox(t *testing.T) {
	c := newCanvas(t, geom.Vec(80, 48))
	red := geom.RGBA(255, 0, 0, 255)
	c.DrawFilledBox(geom.Vec(0, 0), geom.Vec(16, 16), red)

	for x := 0; x < c.Cols(); x++ {
		cell, _ := c.At(x, 0)
		require.Equal(t, x < 2, cell.HasBG, "cell %d", x)
	}
	cell, _ := c.At(0, 0)
	require.Equal(t, red, cell.BG)

	c.DrawFilledBox(geom.Vec(0, 0), geom.Vec(-5, 10), red)
	_, ok := c.At(-1, 0)
	require.False(t, ok)
}

func TestCirclesAndLines(t *testing.T) {
	c := newCanvas(t, geom.Vec(80, 80))
	c.DrawFilledCircle(geom.Vec(40, 40), 20, geom.White())

	center, _ := c.At(4, 2)
	require.True(t, center.HasBG)
	corner, _ := c.At(0, 0)
	require.False(t, corner.HasBG)

	c.PreFrame()
	c.DrawLineCircle(geom.Vec(40, 40), 30, geom.White())
	ring, _ := c.At(4, 2)
	require.Zero(t, ring.Rune)

	c.PreFrame()
	c.DrawLine(geom.Vec(0, 8), geom.Vec(72, 8), geom.White())
	require.Equal(t, "──────────", strings.Split(c.PlainText(), "\n")[0])
}

func TestDrawTabbedWindow(t *testing.T) {
	c := newCanvas(t, geom.Vec(300, 200))

	ctx := ui.NewTabbedWindowContext()
	ctx.WindowName = "Settings"
	ctx.TitleFillColor = geom.RGBA(60, 60, 60, 255)
	ctx.TabFillColor = geom.RGBA(100, 100, 100, 255)
	ctx.TabTitleFillColor = geom.RGBA(33, 150, 243, 255)
	ctx.Size = geom.Vec(300, 200)
	w := ui.NewTabbedWindow(ctx)
	w.AddTabPage("General")

	require.NotPanics(t, func() {
		w.Draw(c)
		c.Present()
	})
	require.Contains(t, c.PlainText(), "General")
	require.NotEmpty(t, c.Frame())
}

func TestCellMapping(t *testing.T) {
	c := New()
	x, y := c.CellAt(geom.Vec(17, 33))
	require.Equal(t, 2, x)
	require.Equal(t, 2, y)
	require.Equal(t, geom.Vec(20, 40), c.PointAt(2, 2))

	x, y = c.CellAt(geom.Vec(-1, -1))
	require.Equal(t, -1, x)
	require.Equal(t, -1, y)
}

func TestOversizedShapesAreClipped(t *testing.T) {
	c := newCanvas(t, geom.Vec(80, 48))
	huge := float32(1e7)

	require.NotPanics(t, func() {
		c.DrawFilledBox(geom.Vec(-huge, -huge), geom.Vec(2*huge, 2*huge), geom.White())
		c.DrawLineBox(geom.Vec(-huge, -huge), geom.Vec(2*huge, 2*huge), geom.Black())
		c.DrawFilledCircle(geom.Vec(0, 0), huge, geom.White())
		c.DrawLineCircle(geom.Vec(0, 0), huge, geom.White())
		c.DrawLine(geom.Vec(-huge, 8), geom.Vec(huge, 8), geom.Black())
	})
	for y := 0; y < c.Rows(); y++ {
		for x := 0; x < c.Cols(); x++ {
			cell, _ := c.At(x, y)
			require.True(t, cell.HasBG, "cell %d,%d", x, y)
		}
	}
	require.Equal(t, "──────────", strings.Split(c.PlainText(), "\n")[0])

	// A box whose right edge lies on the grid keeps that edge.
	c.PreFrame()
	c.DrawLineBox(geom.Vec(-huge, 0), geom.Vec(huge+80, 48), geom.Black())
	require.Equal(t, "─────────┐", strings.Split(c.PlainText(), "\n")[0])
}

func TestNonFiniteCoordinates(t *testing.T) {
	c := newCanvas(t, geom.Vec(80, 48))
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))

	x, y := c.CellAt(geom.Vec(nan, inf))
	require.Equal(t, -maxCellIndex, x)
	require.Equal(t, maxCellIndex, y)

	require.NotPanics(t, func() {
		c.DrawFilledBox(geom.Vec(nan, nan), geom.Vec(10, 10), geom.White())
		c.DrawLineBox(geom.Vec(0, 0), geom.Vec(inf, inf), geom.Black())
		c.DrawFilledCircle(geom.Vec(nan, 0), inf, geom.White())
		c.DrawLine(geom.Vec(-inf, -inf), geom.Vec(inf, inf), geom.Black())
		c.RenderText(geom.Vec(nan, nan), geom.White(), "%s", "lost")
	})
	require.NotContains(t, c.PlainText(), "lost")
}
