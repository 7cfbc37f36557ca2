package treelist

import (
	"github.com/gdamore/tcell/v2"
	"github.com/pstuifzand/tui-treelist/internal/ui"
)

// headerPadding is the blank column in front of header and body content
const headerPadding = 1

// HeaderCell is the header of one column. It owns the column width: a fixed
// width once set, otherwise the widest of its own content and every body
// cell measured against it.
type HeaderCell[T any] struct {
	cell
	column     Column[T]
	width      int
	minWidth   int
	childWidth int
	invalid    bool
}

func newHeaderCell[T any](col Column[T], minWidth int) *HeaderCell[T] {
	if col.MinWidth > 0 {
		minWidth = col.MinWidth
	}
	return &HeaderCell[T]{
		cell:     cell{content: col.Header},
		column:   col,
		width:    max(col.Width, 0),
		minWidth: max(minWidth, headerPadding+borderWidth),
		invalid:  true,
	}
}

// Column returns the column this header was built from
func (h *HeaderCell[T]) Column() Column[T] {
	return h.column
}

// Width returns the fixed width, or 0 when the column sizes to its content
func (h *HeaderCell[T]) Width() int {
	return h.width
}

// SetWidth fixes the column width, never below the minimum width
func (h *HeaderCell[T]) SetWidth(w int) {
	w = max(w, h.minWidth)
	if w == h.width {
		return
	}
	h.width = w
	h.invalid = true
}

func (h *HeaderCell[T]) MinWidth() int {
	return h.minWidth
}

// AutoWidth reports whether the column sizes to its content
func (h *HeaderCell[T]) AutoWidth() bool {
	return h.width == 0
}

// ChildColumnWidth is the widest body cell seen so far
func (h *HeaderCell[T]) ChildColumnWidth() int {
	return h.childWidth
}

// SetChildColumnWidth records a body cell width. Only growth is recorded;
// it marks the header for another measure pass.
func (h *HeaderCell[T]) SetChildColumnWidth(w int) {
	if w <= h.childWidth {
		return
	}
	h.childWidth = w
	h.invalid = true
}

// NeedsMeasure reports whether the header changed since it was last measured
func (h *HeaderCell[T]) NeedsMeasure() bool {
	return h.invalid
}

func (h *HeaderCell[T]) SetIndex(i int) {
	h.index = i
}

func (h *HeaderCell[T]) Measure(avail ui.Size) ui.Size {
	size := h.measureContent(headerPadding)
	if h.width > 0 {
		size.W = h.width
	} else {
		size.W = max(size.W, h.childWidth)
	}
	size.W = max(size.W, h.minWidth)
	h.desired = size
	h.invalid = false
	return size
}

func (h *HeaderCell[T]) Render(s ui.Surface, rowStyle tcell.Style, st *Styles) {
	h.renderContent(s, headerPadding, rowStyle, st)
}
