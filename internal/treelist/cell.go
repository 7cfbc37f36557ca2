package treelist

import (
	"github.com/gdamore/tcell/v2"
	"github.com/pstuifzand/tui-treelist/internal/ui"
)

const (
	// borderWidth is the separator drawn in the last column of every cell
	borderWidth = 1
	borderRune  = '│'
)

// Cell is one bordered slot of a Row
type Cell interface {
	Measure(avail ui.Size) ui.Size
	Arrange(r ui.Rect)
	Render(s ui.Surface, rowStyle tcell.Style, st *Styles)
	Bounds() ui.Rect
	DesiredSize() ui.Size
	Content() ui.Content
	Index() int
	SetIndex(i int)
}

// cell is the part shared by header and body cells
type cell struct {
	content ui.Content
	index   int
	desired ui.Size
	bounds  ui.Rect
}

func (c *cell) measureContent(padding int) ui.Size {
	size := ui.Size{W: padding + borderWidth, H: 1}
	if c.content != nil {
		cs := c.content.Size()
		size.W += cs.W
		size.H = max(size.H, cs.H)
	}
	return size
}

func (c *cell) Arrange(r ui.Rect) {
	c.bounds = r
}

func (c *cell) Bounds() ui.Rect {
	return c.bounds
}

func (c *cell) DesiredSize() ui.Size {
	return c.desired
}

func (c *cell) Content() ui.Content {
	return c.content
}

func (c *cell) Index() int {
	return c.index
}

// renderContent draws the content after padding columns and the border
func (c *cell) renderContent(s ui.Surface, padding int, rowStyle tcell.Style, st *Styles) {
	b := c.bounds
	if b.Empty() {
		return
	}
	if c.content != nil {
		area := ui.Rect{X: b.X + padding, Y: b.Y, W: b.W - padding - borderWidth, H: b.H}
		if !area.Empty() {
			c.content.Draw(ui.Clip(s, area), area, rowStyle)
		}
	}

	border := over(st.Border, rowStyle)
	for y := b.Y; y < b.Bottom(); y++ {
		s.SetCell(b.Right()-1, y, borderRune, border)
	}
}
