package treelist

import (
	"github.com/gdamore/tcell/v2"
	"github.com/pstuifzand/tui-treelist/internal/ui"
)

// maxMeasurePasses bounds how often auto widths are allowed to grow
// before arranging
const maxMeasurePasses = 4

// Layout measures the header and the visible rows and arranges them inside
// bounds, shifted by the scroll offsets.
func (t *Tree[T]) Layout(bounds ui.Rect) {
	t.bounds = bounds
	rows := t.rows.Rows()

	avail := ui.Size{W: ui.Unbounded, H: ui.Unbounded}
	for pass := 0; pass < maxMeasurePasses; pass++ {
		t.columns.row.Measure(avail)
		for _, n := range rows {
			n.row.Measure(avail)
		}
		if !t.columns.needsMeasure() {
			break
		}
	}

	header := t.columns.row.DesiredSize()
	headerH := max(header.H, 1)
	width := header.W
	height := 0
	revealY := -1
	for _, n := range rows {
		if n == t.reveal {
			revealY = height
		}
		d := n.row.DesiredSize()
		width = max(width, d.W)
		height += max(d.H, 1)
	}
	t.content = ui.Size{W: width, H: height}

	body := t.bodyBounds()
	if revealY >= 0 {
		if revealY < t.scrollY {
			t.scrollY = revealY
		} else if revealY >= t.scrollY+body.H {
			t.scrollY = revealY - body.H + 1
		}
	}
	t.reveal = nil
	t.scrollX = clamp(t.scrollX, 0, max(width-bounds.W, 0))
	t.scrollY = clamp(t.scrollY, 0, max(height-body.H, 0))

	x := bounds.X - t.scrollX
	t.columns.row.Arrange(ui.Rect{X: x, Y: bounds.Y, W: width, H: headerH})
	y := body.Y - t.scrollY
	for _, n := range rows {
		h := max(n.row.DesiredSize().H, 1)
		n.row.Arrange(ui.Rect{X: x, Y: y, W: width, H: h})
		y += h
	}
}

// Bounds returns the area given to the last Layout
func (t *Tree[T]) Bounds() ui.Rect {
	return t.bounds
}

// ContentSize is the size of all visible rows together
func (t *Tree[T]) ContentSize() ui.Size {
	return t.content
}

func (t *Tree[T]) headerBounds() ui.Rect {
	h := max(t.columns.row.DesiredSize().H, 1)
	return ui.Rect{X: t.bounds.X, Y: t.bounds.Y, W: t.bounds.W, H: min(h, t.bounds.H)}
}

func (t *Tree[T]) bodyBounds() ui.Rect {
	hb := t.headerBounds()
	return ui.Rect{X: t.bounds.X, Y: hb.Bottom(), W: t.bounds.W, H: t.bounds.H - hb.H}
}

// ScrollBy moves the viewport; the next Layout clamps it
func (t *Tree[T]) ScrollBy(dx, dy int) {
	t.scrollX = max(t.scrollX+dx, 0)
	t.scrollY = max(t.scrollY+dy, 0)
}

// ScrollOffset returns the horizontal and vertical scroll offsets
func (t *Tree[T]) ScrollOffset() (int, int) {
	return t.scrollX, t.scrollY
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

// Render draws the tree into s, clipped to the bounds of the last Layout
func (t *Tree[T]) Render(s ui.Surface) {
	area := ui.Clip(s, t.bounds)
	ui.Fill(area, t.bounds, ' ', t.styles.Row)

	body := t.bodyBounds()
	rowSurface := ui.Clip(area, body)
	for _, n := range t.rows.Rows() {
		r := n.row.Bounds()
		if r.Bottom() <= body.Y || r.Y >= body.Bottom() {
			continue
		}
		n.row.Render(rowSurface, t.rowStyle(n), &t.styles)
	}

	hb := t.headerBounds()
	headerSurface := ui.Clip(area, hb)
	ui.Fill(headerSurface, hb, ' ', t.styles.Header)
	t.columns.row.Render(headerSurface, t.styles.Header, &t.styles)
	t.renderResizeIndicator(headerSurface)
	t.renderDragGhost(headerSurface)
}

func (t *Tree[T]) rowStyle(n *Node[T]) tcell.Style {
	switch {
	case n.selected:
		return t.styles.Selected
	case n == t.hover:
		return t.styles.Hover
	}
	return t.styles.Row
}
