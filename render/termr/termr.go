// Package termr rasterizes menu elements onto a grid of terminal cells and
// styles the result with lipgloss.
package termr

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/OpticalFlyer/tabmenu/geom"
	"github.com/OpticalFlyer/tabmenu/render"
)

var _ render.Backend = (*Canvas)(nil)

// ErrNotInitialized is returned by Init when InitWindow has not set a size.
var ErrNotInitialized = errors.New("canvas has no size")

// Default cell size in menu units. Terminal cells are about twice as tall as
// they are wide.
const (
	DefaultCellWidth  = 8
	DefaultCellHeight = 16
)

// Cell is one character position.
type Cell struct {
	Rune rune
	FG   geom.Color
	BG   geom.Color
	// HasBG is false for cells nothing has been filled into.
	HasBG bool
}

// Canvas is a render.Backend over a cols x rows cell grid.
type Canvas struct {
	Title      string
	CellWidth  float32
	CellHeight float32

	cols, rows int
	cells      []Cell
	frame      string
	frames     int
}

// New returns a canvas with the default cell size.
func New() *Canvas {
	return &Canvas{CellWidth: DefaultCellWidth, CellHeight: DefaultCellHeight}
}

// InitWindow sizes the grid so that size menu units fit.
func (c *Canvas) InitWindow(name string, size geom.Vector2f) error {
	if size.X <= 0 || size.Y <= 0 {
		return fmt.Errorf("window size %vx%v must be positive", size.X, size.Y)
	}
	c.Title = name
	c.cols = int(math.Ceil(float64(size.X / c.CellWidth)))
	c.rows = int(math.Ceil(float64(size.Y / c.CellHeight)))
	return nil
}

// Resize sets the grid to cols x rows cells directly.
func (c *Canvas) Resize(cols, rows int) {
	c.cols = max(cols, 0)
	c.rows = max(rows, 0)
	c.cells = make([]Cell, c.cols*c.rows)
}

func (c *Canvas) Init() error {
	if c.cols == 0 || c.rows == 0 {
		return ErrNotInitialized
	}
	c.cells = make([]Cell, c.cols*c.rows)
	return nil
}

func (c *Canvas) Cols() int { return c.cols }

func (c *Canvas) Rows() int { return c.rows }

func (c *Canvas) PreFrame() {
	for i := range c.cells {
		c.cells[i] = Cell{}
	}
}

// Present composes the grid into a styled string available from Frame.
func (c *Canvas) Present() {
	c.frame = c.compose()
	c.frames++
}

// Frame returns the last presented frame.
func (c *Canvas) Frame() string { return c.frame }

// Frames returns how many frames have been presented.
func (c *Canvas) Frames() int { return c.frames }

// At returns the cell at column x, row y.
func (c *Canvas) At(x, y int) (Cell, bool) {
	cl := c.cell(x, y)
	if cl == nil {
		return Cell{}, false
	}
	return *cl, true
}

// PlainText returns the grid runes without styling, one line per row.
func (c *Canvas) PlainText() string {
	if len(c.cells) < c.cols*c.rows {
		return ""
	}
	var sb strings.Builder
	for y := 0; y < c.rows; y++ {
		for x := 0; x < c.cols; x++ {
			sb.WriteRune(runeOrSpace(c.cells[y*c.cols+x].Rune))
		}
		if y < c.rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// maxCellIndex bounds cell coordinates so that arithmetic on them cannot
// overflow an int on 32-bit targets.
const maxCellIndex = 1 << 29

// CellAt maps a point in menu units to the cell that contains it. Results
// are clamped to ±maxCellIndex; NaN maps to -maxCellIndex, off the grid.
func (c *Canvas) CellAt(p geom.Vector2f) (int, int) {
	return toCell(float64(p.X / c.CellWidth)), toCell(float64(p.Y / c.CellHeight))
}

func toCell(v float64) int {
	switch {
	case math.IsNaN(v), v <= -maxCellIndex:
		return -maxCellIndex
	case v >= maxCellIndex:
		return maxCellIndex
	}
	return int(math.Floor(v))
}

// clip intersects the inclusive range [lo, hi] with [0, n-1].
func clip(lo, hi, n int) (int, int, bool) {
	lo = max(lo, 0)
	hi = min(hi, n-1)
	return lo, hi, lo <= hi
}

// PointAt maps a cell to the menu-unit point at its center.
func (c *Canvas) PointAt(x, y int) geom.Vector2f {
	return geom.Vec((float32(x)+0.5)*c.CellWidth, (float32(y)+0.5)*c.CellHeight)
}

func (c *Canvas) cell(x, y int) *Cell {
	if x < 0 || y < 0 || x >= c.cols || y >= c.rows || len(c.cells) == 0 {
		return nil
	}
	return &c.cells[y*c.cols+x]
}

func (c *Canvas) fill(x, y int, clr geom.Color) {
	if cl := c.cell(x, y); cl != nil {
		cl.BG = clr
		cl.HasBG = true
		cl.Rune = 0
	}
}

func (c *Canvas) stroke(x, y int, r rune, clr geom.Color) {
	if cl := c.cell(x, y); cl != nil {
		cl.Rune = r
		cl.FG = clr
	}
}

// cellRect returns the inclusive cell range covered by a box.
func (c *Canvas) cellRect(pos, size geom.Vector2f) (x0, y0, x1, y1 int) {
	topLeft, _ := render.RectPoint(pos, size, render.TopLeft)
	bottomRight, _ := render.RectPoint(pos, size, render.BottomRight)
	x0, y0 = c.CellAt(topLeft)
	x1, y1 = c.CellAt(bottomRight)
	if size.X > 0 && float32(x1)*c.CellWidth == pos.X+size.X {
		x1--
	}
	if size.Y > 0 && float32(y1)*c.CellHeight == pos.Y+size.Y {
		y1--
	}
	return x0, y0, x1, y1
}

func (c *Canvas) DrawFilledBox(pos, size geom.Vector2f, clr geom.Color) {
	if size.X <= 0 || size.Y <= 0 {
		return
	}
	x0, y0, x1, y1 := c.cellRect(pos, size)
	x0, x1, okX := clip(x0, x1, c.cols)
	y0, y1, okY := clip(y0, y1, c.rows)
	if !okX || !okY {
		return
	}
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			c.fill(x, y, clr)
		}
	}
}

func (c *Canvas) DrawLineBox(pos, size geom.Vector2f, clr geom.Color) {
	x0, y0, x1, y1 := c.cellRect(pos, size)
	if x1 <= x0 || y1 <= y0 {
		cx0, cx1, okX := clip(x0, x1, c.cols)
		cy0, cy1, okY := clip(y0, y1, c.rows)
		if !okX || !okY {
			return
		}
		for y := cy0; y <= cy1; y++ {
			for x := cx0; x <= cx1; x++ {
				c.stroke(x, y, '□', clr)
			}
		}
		return
	}
	// Edges off the grid are dropped by stroke; only the spans are clipped.
	if lo, hi, ok := clip(x0+1, x1-1, c.cols); ok {
		for x := lo; x <= hi; x++ {
			c.stroke(x, y0, '─', clr)
			c.stroke(x, y1, '─', clr)
		}
	}
	if lo, hi, ok := clip(y0+1, y1-1, c.rows); ok {
		for y := lo; y <= hi; y++ {
			c.stroke(x0, y, '│', clr)
			c.stroke(x1, y, '│', clr)
		}
	}
	c.stroke(x0, y0, '┌', clr)
	c.stroke(x1, y0, '┐', clr)
	c.stroke(x0, y1, '└', clr)
	c.stroke(x1, y1, '┘', clr)
}

func (c *Canvas) circleCells(center geom.Vector2f, radius float32, visit func(x, y int, d float64)) {
	x0, y0 := c.CellAt(center.Sub(geom.Vec(radius, radius)))
	x1, y1 := c.CellAt(center.Add(geom.Vec(radius, radius)))
	x0, x1, okX := clip(x0, x1, c.cols)
	y0, y1, okY := clip(y0, y1, c.rows)
	if !okX || !okY {
		return
	}
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			p := c.PointAt(x, y)
			d := math.Hypot(float64(p.X-center.X), float64(p.Y-center.Y))
			visit(x, y, d)
		}
	}
}

func (c *Canvas) DrawFilledCircle(center geom.Vector2f, radius float32, clr geom.Color) {
	c.circleCells(center, radius, func(x, y int, d float64) {
		if d <= float64(radius) {
			c.fill(x, y, clr)
		}
	})
}

func (c *Canvas) DrawLineCircle(center geom.Vector2f, radius float32, clr geom.Color) {
	band := float64(max(c.CellWidth, c.CellHeight)) / 2
	c.circleCells(center, radius, func(x, y int, d float64) {
		if math.Abs(d-float64(radius)) <= band {
			c.stroke(x, y, '•', clr)
		}
	})
}

// DrawLine walks the part of the segment that lies on the grid, in cell space.
func (c *Canvas) DrawLine(p1, p2 geom.Vector2f, clr geom.Color) {
	x0, y0 := c.CellAt(p1)
	x1, y1 := c.CellAt(p2)
	r := lineRune(x1-x0, y1-y0)

	t0, t1, ok := c.clipSegment(x0, y0, x1, y1)
	if !ok {
		return
	}
	dx, dy := float64(x1-x0), float64(y1-y0)
	sx, sy := float64(x0)+t0*dx, float64(y0)+t0*dy
	ex, ey := float64(x0)+t1*dx, float64(y0)+t1*dy

	steps := int(math.Ceil(math.Max(math.Abs(ex-sx), math.Abs(ey-sy))))
	if steps == 0 {
		c.stroke(int(math.Round(sx)), int(math.Round(sy)), r, clr)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		c.stroke(int(math.Round(sx+t*(ex-sx))), int(math.Round(sy+t*(ey-sy))), r, clr)
	}
}

// clipSegment returns the parameter range of the segment (x0,y0)-(x1,y1)
// that lies inside the grid (Liang-Barsky).
func (c *Canvas) clipSegment(x0, y0, x1, y1 int) (t0, t1 float64, ok bool) {
	if c.cols == 0 || c.rows == 0 {
		return 0, 0, false
	}
	dx, dy := float64(x1-x0), float64(y1-y0)
	t0, t1 = 0, 1
	edges := [4][2]float64{
		{-dx, float64(x0)},
		{dx, float64(c.cols-1) - float64(x0)},
		{-dy, float64(y0)},
		{dy, float64(c.rows-1) - float64(y0)},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			t0 = math.Max(t0, t)
		} else {
			t1 = math.Min(t1, t)
		}
	}
	return t0, t1, t0 <= t1
}

func (c *Canvas) RenderText(pos geom.Vector2f, clr geom.Color, format string, args ...any) {
	x, y := c.CellAt(pos)
	for i, r := range []rune(fmt.Sprintf(format, args...)) {
		if r == '\n' {
			continue
		}
		c.stroke(x+i, y, r, clr)
	}
}

func (c *Canvas) compose() string {
	if len(c.cells) < c.cols*c.rows {
		return ""
	}
	var sb strings.Builder
	for y := 0; y < c.rows; y++ {
		row := c.cells[y*c.cols : (y+1)*c.cols]
		start := 0
		for x := 1; x <= len(row); x++ {
			if x < len(row) && sameStyle(row[x], row[start]) {
				continue
			}
			var run strings.Builder
			for _, cl := range row[start:x] {
				run.WriteRune(runeOrSpace(cl.Rune))
			}
			sb.WriteString(style(row[start]).Render(run.String()))
			start = x
		}
		if y < c.rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func style(cl Cell) lipgloss.Style {
	s := lipgloss.NewStyle()
	if cl.Rune != 0 {
		s = s.Foreground(lipgloss.Color(cl.FG.Hex()[:7]))
	}
	if cl.HasBG {
		s = s.Background(lipgloss.Color(cl.BG.Hex()[:7]))
	}
	return s
}

func sameStyle(a, b Cell) bool {
	if a.HasBG != b.HasBG || (a.HasBG && a.BG != b.BG) {
		return false
	}
	if (a.Rune != 0) != (b.Rune != 0) {
		return false
	}
	return a.Rune == 0 || a.FG == b.FG
}

func lineRune(dx, dy int) rune {
	switch {
	case dy == 0:
		return '─'
	case dx == 0:
		return '│'
	case (dx > 0) == (dy > 0):
		return '╲'
	}
	return '╱'
}

func runeOrSpace(r rune) rune {
	if r == 0 {
		return ' '
	}
	return r
}
