package treelist

import (
	"fmt"
	"slices"

	"github.com/gdamore/tcell/v2"
	"github.com/pstuifzand/tui-treelist/internal/ui"
)

// Row lays its cells out left to right
type Row struct {
	cells   []Cell
	desired ui.Size
	bounds  ui.Rect
}

func (r *Row) Len() int {
	return len(r.cells)
}

func (r *Row) At(i int) Cell {
	return r.cells[i]
}

// Cells returns a copy of the cells in display order
func (r *Row) Cells() []Cell {
	return slices.Clone(r.cells)
}

// IndexOf returns the position of c, or -1
func (r *Row) IndexOf(c Cell) int {
	return slices.Index(r.cells, c)
}

// Add appends c and tells it its index
func (r *Row) Add(c Cell) {
	c.SetIndex(len(r.cells))
	r.cells = append(r.cells, c)
}

func (r *Row) Clear() {
	r.cells = nil
}

// Swap exchanges two cells in place
func (r *Row) Swap(i, j int) {
	if i < 0 || j < 0 || i >= len(r.cells) || j >= len(r.cells) {
		panic(fmt.Sprintf("treelist: swap %d and %d in a row of %d cells", i, j, len(r.cells)))
	}
	if i == j {
		return
	}
	r.cells[i], r.cells[j] = r.cells[j], r.cells[i]
	r.cells[i].SetIndex(i)
	r.cells[j].SetIndex(j)
}

// Measure measures every cell with unbounded width. The row is as wide as
// its cells together and as high as the tallest.
func (r *Row) Measure(avail ui.Size) ui.Size {
	constraint := ui.Size{W: ui.Unbounded, H: avail.H}
	var size ui.Size
	for _, c := range r.cells {
		d := c.Measure(constraint)
		size.W += d.W
		size.H = max(size.H, d.H)
	}
	r.desired = size
	return size
}

func (r *Row) DesiredSize() ui.Size {
	return r.desired
}

// Arrange places the cells at their cumulative x offsets
func (r *Row) Arrange(rect ui.Rect) {
	r.bounds = rect
	x := rect.X
	height := rect.H
	for _, c := range r.cells {
		d := c.DesiredSize()
		height = max(height, d.H)
		c.Arrange(ui.Rect{X: x, Y: rect.Y, W: d.W, H: height})
		x += d.W
	}
}

func (r *Row) Bounds() ui.Rect {
	return r.bounds
}

// Render fills the row background and draws every cell over it
func (r *Row) Render(s ui.Surface, style tcell.Style, st *Styles) {
	ui.Fill(s, r.bounds, ' ', style)
	for _, c := range r.cells {
		c.Render(s, style, st)
	}
}
