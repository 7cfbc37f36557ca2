package treelist

import "github.com/pstuifzand/tui-treelist/internal/ui"

// Column describes one column of the list
type Column[T any] struct {
	Header ui.Content
	// Width is the fixed width in cells; 0 sizes the column to its content
	Width int
	// MinWidth overrides the tree default minimum width when positive
	MinWidth int
	// Cell builds the content shown for an item
	Cell func(item T) ui.Content
}

// columnSet is one assignment of columns. Nodes compare sets by identity so
// assigning the set a node already uses is a no-op.
type columnSet[T any] struct {
	row Row
}

func newColumnSet[T any](cols []Column[T], minWidth int) *columnSet[T] {
	cs := &columnSet[T]{}
	for _, col := range cols {
		cs.row.Add(newHeaderCell(col, minWidth))
	}
	return cs
}

func (cs *columnSet[T]) len() int {
	return cs.row.Len()
}

func (cs *columnSet[T]) header(i int) *HeaderCell[T] {
	return cs.row.At(i).(*HeaderCell[T])
}

func (cs *columnSet[T]) needsMeasure() bool {
	for i := 0; i < cs.len(); i++ {
		if cs.header(i).NeedsMeasure() {
			return true
		}
	}
	return false
}
