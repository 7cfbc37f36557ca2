package treelist

import (
	"github.com/gdamore/tcell/v2"
	"github.com/pstuifzand/tui-treelist/internal/observable"
	"github.com/pstuifzand/tui-treelist/internal/ui"
)

// Cursor is the pointer shape the host should show
type Cursor int

const (
	CursorArrow Cursor = iota
	CursorResize
)

func (c Cursor) String() string {
	if c == CursorResize {
		return "resize"
	}
	return "arrow"
}

type pointerMode int

const (
	pointerIdle pointerMode = iota
	pointerResizing
	pointerDragging
)

// pointerState is the column resize and reorder state machine
type pointerState[T any] struct {
	mode       pointerMode
	buttonDown bool

	cursor        Cursor
	savedCursor   Cursor
	cursorChanged observable.Signal[Cursor]

	// hot is the header whose right edge the pointer is on
	hot      *HeaderCell[T]
	resizing *HeaderCell[T]

	dragging   *HeaderCell[T]
	ghostX     int
	grabOffset int
}

// Cursor returns the current pointer shape
func (t *Tree[T]) Cursor() Cursor {
	return t.pointer.cursor
}

// SubscribeCursor calls fn whenever the pointer shape changes
func (t *Tree[T]) SubscribeCursor(fn func(Cursor)) *observable.Subscription {
	return t.pointer.cursorChanged.Subscribe(fn)
}

func (t *Tree[T]) setCursor(c Cursor) {
	if t.pointer.cursor == c {
		return
	}
	t.pointer.cursor = c
	t.pointer.cursorChanged.Emit(c)
}

// Resizing reports whether a column resize is in progress
func (t *Tree[T]) Resizing() bool {
	return t.pointer.mode == pointerResizing
}

// Dragging reports whether a header is being dragged
func (t *Tree[T]) Dragging() bool {
	return t.pointer.mode == pointerDragging
}

// Hovered returns the node under the pointer
func (t *Tree[T]) Hovered() *Node[T] {
	return t.hover
}

// headerCellAt returns the header cell under p
func (t *Tree[T]) headerCellAt(p ui.Point) *HeaderCell[T] {
	if !t.headerBounds().Contains(p) {
		return nil
	}
	for i := 0; i < t.columns.len(); i++ {
		if h := t.columns.header(i); h.Bounds().Contains(p) {
			return h
		}
	}
	return nil
}

// resizeCellAt returns the header whose right edge is within the resize
// margin of p. Near the left edge of a cell that is the previous cell.
func (t *Tree[T]) resizeCellAt(p ui.Point) *HeaderCell[T] {
	hit := t.headerCellAt(p)
	if hit == nil {
		return nil
	}
	b := hit.Bounds()
	local := p.X - b.X
	if local < t.resizeMargin {
		if i := hit.Index(); i > 0 {
			return t.columns.header(i - 1)
		}
		return nil
	}
	if b.W-1-local < t.resizeMargin {
		return hit
	}
	return nil
}

// nodeAt returns the node whose row is under p
func (t *Tree[T]) nodeAt(p ui.Point) *Node[T] {
	if !t.bodyBounds().Contains(p) {
		return nil
	}
	for _, n := range t.rows.Rows() {
		if n.row.Bounds().Contains(p) {
			return n
		}
	}
	return nil
}

// PointerPressed starts a resize when the resize cursor is showing, or a
// header drag when p is on a header cell.
func (t *Tree[T]) PointerPressed(p ui.Point) {
	ps := &t.pointer
	if ps.mode == pointerDragging {
		t.stopDrag()
	}
	if ps.cursor == CursorResize {
		if ps.resizing = t.resizeCellAt(p); ps.resizing != nil {
			ps.mode = pointerResizing
		}
		return
	}
	hit := t.headerCellAt(p)
	if hit == nil {
		return
	}
	ps.mode = pointerDragging
	ps.dragging = hit
	ps.grabOffset = p.X - hit.Bounds().X
	ps.ghostX = hit.Bounds().X
}

// PointerMoved resizes, moves the drag ghost, or updates the cursor and the
// hovered row.
func (t *Tree[T]) PointerMoved(p ui.Point) {
	ps := &t.pointer
	switch ps.mode {
	case pointerDragging:
		ps.ghostX = p.X - ps.grabOffset
		return
	case pointerResizing:
		b := ps.resizing.Bounds()
		delta := b.Right() - 1 - p.X
		ps.resizing.SetWidth(max(b.W-delta, ps.resizing.MinWidth()))
		return
	}

	if hot := t.resizeCellAt(p); hot != nil {
		if ps.cursor != CursorResize {
			ps.savedCursor = ps.cursor
			t.setCursor(CursorResize)
		}
		ps.hot = hot
	} else if ps.cursor == CursorResize {
		t.setCursor(ps.savedCursor)
		ps.hot = nil
	}
	t.hover = t.nodeAt(p)
}

// PointerReleased commits a resize or a drag. A drag released over another
// header cell swaps the two columns; anywhere else it is cancelled. A
// release over a row selects it and toggles it when on the glyph.
func (t *Tree[T]) PointerReleased(p ui.Point) {
	ps := &t.pointer
	switch ps.mode {
	case pointerResizing:
		debugLog.Printf("column %d resized to %d", ps.resizing.Index(), ps.resizing.Width())
		ps.resizing = nil
		ps.mode = pointerIdle
		return
	case pointerDragging:
		dragged := ps.dragging
		t.stopDrag()
		target := t.headerCellAt(ui.Point{X: p.X, Y: t.headerBounds().Y})
		if target == nil || target == dragged {
			return
		}
		t.SwapColumns(dragged.Index(), target.Index())
		return
	}

	n := t.nodeAt(p)
	if n == nil {
		return
	}
	if c := n.cellAt(p); c != nil && c.GlyphContains(p) {
		n.Toggle()
	}
	n.SetSelected(true)
}

func (t *Tree[T]) stopDrag() {
	t.pointer.dragging = nil
	t.pointer.mode = pointerIdle
}

// cancelPointer drops any resize or drag, for when the header is replaced
func (t *Tree[T]) cancelPointer() {
	ps := &t.pointer
	ps.mode = pointerIdle
	ps.resizing = nil
	ps.dragging = nil
	ps.hot = nil
	if ps.cursor == CursorResize {
		t.setCursor(ps.savedCursor)
	}
}

// HandleMouse feeds a tcell mouse event to the tree. It reports whether the
// event was used.
func (t *Tree[T]) HandleMouse(ev *tcell.EventMouse) bool {
	x, y := ev.Position()
	p := ui.Point{X: x, Y: y}
	buttons := ev.Buttons()

	if buttons&(tcell.WheelUp|tcell.WheelDown|tcell.WheelLeft|tcell.WheelRight) != 0 {
		if !t.bounds.Contains(p) {
			return false
		}
		switch {
		case buttons&tcell.WheelUp != 0:
			t.ScrollBy(0, -1)
		case buttons&tcell.WheelDown != 0:
			t.ScrollBy(0, 1)
		case buttons&tcell.WheelLeft != 0:
			t.ScrollBy(-1, 0)
		case buttons&tcell.WheelRight != 0:
			t.ScrollBy(1, 0)
		}
		return true
	}

	primary := buttons&tcell.Button1 != 0
	switch {
	case primary && !t.pointer.buttonDown:
		if !t.bounds.Contains(p) {
			return false
		}
		t.pointer.buttonDown = true
		t.PointerPressed(p)
	case !primary && t.pointer.buttonDown:
		t.pointer.buttonDown = false
		t.PointerReleased(p)
	default:
		t.PointerMoved(p)
	}
	return true
}

func (t *Tree[T]) renderResizeIndicator(s ui.Surface) {
	h := t.pointer.resizing
	if h == nil {
		h = t.pointer.hot
	}
	if h == nil || (t.pointer.cursor != CursorResize && t.pointer.mode != pointerResizing) {
		return
	}
	b := h.Bounds()
	for y := b.Y; y < b.Bottom(); y++ {
		s.SetCell(b.Right()-1, y, '┃', over(t.styles.Resize, t.styles.Header))
	}
}

func (t *Tree[T]) renderDragGhost(s ui.Surface) {
	h := t.pointer.dragging
	if h == nil || t.pointer.mode != pointerDragging {
		return
	}
	b := h.Bounds()
	ghost := ui.Rect{X: t.pointer.ghostX, Y: b.Y, W: b.W, H: b.H}
	ui.Fill(s, ghost, ' ', t.styles.Ghost)
	if h.content != nil {
		area := ui.Rect{X: ghost.X + headerPadding, Y: ghost.Y, W: ghost.W - headerPadding - borderWidth, H: ghost.H}
		h.content.Draw(ui.Clip(s, area), area, t.styles.Ghost)
	}
	for y := ghost.Y; y < ghost.Bottom(); y++ {
		s.SetCell(ghost.Right()-1, y, borderRune, t.styles.Ghost)
	}
}
