package treelist

import (
	"github.com/gdamore/tcell/v2"
	"github.com/pstuifzand/tui-treelist/internal/ui"
)

const (
	indentWidth = 2
	glyphWidth  = 2

	glyphCollapsed = '▶'
	glyphExpanded  = '▼'
)

// columnHeader is what a body cell needs from the header of its column
type columnHeader interface {
	DesiredSize() ui.Size
	AutoWidth() bool
	SetChildColumnWidth(w int)
}

// expandable is the node state the first cell of a row reflects
type expandable interface {
	Level() int
	HasChildren() bool
	Expanded() bool
}

// ExpanderCell is a body cell. Whichever cell sits at index 0 carries the
// level indentation and, when the node has children, the expand glyph.
type ExpanderCell struct {
	cell
	header columnHeader
	owner  expandable
}

func newExpanderCell(header columnHeader, owner expandable, content ui.Content) *ExpanderCell {
	return &ExpanderCell{
		cell:   cell{content: content},
		header: header,
		owner:  owner,
	}
}

func (c *ExpanderCell) SetIndex(i int) {
	c.index = i
}

// HasGlyph reports whether the cell draws the expand/collapse glyph
func (c *ExpanderCell) HasGlyph() bool {
	return c.index == 0 && c.owner.HasChildren()
}

// padding is the number of columns in front of the content
func (c *ExpanderCell) padding() int {
	if c.index != 0 {
		return headerPadding
	}
	return headerPadding + c.owner.Level()*indentWidth + glyphWidth
}

// glyphRect is where the glyph is drawn, valid after Arrange
func (c *ExpanderCell) glyphRect() ui.Rect {
	return ui.Rect{
		X: c.bounds.X + headerPadding + c.owner.Level()*indentWidth,
		Y: c.bounds.Y,
		W: glyphWidth,
		H: 1,
	}
}

// GlyphContains reports whether p falls on the expand/collapse glyph
func (c *ExpanderCell) GlyphContains(p ui.Point) bool {
	return c.HasGlyph() && c.glyphRect().Contains(p)
}

func (c *ExpanderCell) Measure(avail ui.Size) ui.Size {
	size := c.measureContent(c.padding())
	hw := c.header.DesiredSize().W
	if !c.header.AutoWidth() || hw >= size.W {
		size.W = hw
	} else {
		c.header.SetChildColumnWidth(size.W)
	}
	c.desired = size
	return size
}

func (c *ExpanderCell) Render(s ui.Surface, rowStyle tcell.Style, st *Styles) {
	if c.HasGlyph() {
		g := c.glyphRect()
		glyph := glyphCollapsed
		if c.owner.Expanded() {
			glyph = glyphExpanded
		}
		if g.X < c.bounds.Right()-borderWidth {
			s.SetCell(g.X, g.Y, glyph, over(st.Glyph, rowStyle))
		}
	}
	c.renderContent(s, c.padding(), rowStyle, st)
}
