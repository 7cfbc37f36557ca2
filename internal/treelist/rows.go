package treelist

import (
	"fmt"
	"slices"
	"strings"
)

// RowStorage selects how the list keeps its visible rows
type RowStorage int

const (
	// FlatRows keeps one physically flattened slice that is spliced on
	// every expand, collapse, insert and remove
	FlatRows RowStorage = iota
	// NestedRows derives the rows from a pre-order walk of the nodes gated
	// by expansion
	NestedRows
)

func (s RowStorage) String() string {
	switch s {
	case FlatRows:
		return "flat"
	case NestedRows:
		return "nested"
	}
	return fmt.Sprintf("RowStorage(%d)", int(s))
}

// ParseRowStorage parses "flat" or "nested"
func ParseRowStorage(s string) (RowStorage, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "flat":
		return FlatRows, nil
	case "nested":
		return NestedRows, nil
	}
	return FlatRows, fmt.Errorf("unknown row storage %q", s)
}

// rowStore holds the visible rows in display order
type rowStore[T comparable] interface {
	Rows() []*Node[T]
	Len() int
	IndexOf(n *Node[T]) int
	// Splice removes remove rows at at and inserts rows in their place
	Splice(at, remove int, rows []*Node[T])
	Reset()
}

func newRowStore[T comparable](t *Tree[T], s RowStorage) rowStore[T] {
	if s == NestedRows {
		return &nestedRows[T]{tree: t}
	}
	return &flatRows[T]{}
}

type flatRows[T comparable] struct {
	rows []*Node[T]
}

func (f *flatRows[T]) Rows() []*Node[T] {
	return f.rows
}

func (f *flatRows[T]) Len() int {
	return len(f.rows)
}

func (f *flatRows[T]) IndexOf(n *Node[T]) int {
	return slices.Index(f.rows, n)
}

func (f *flatRows[T]) Splice(at, remove int, rows []*Node[T]) {
	if at < 0 || remove < 0 || at+remove > len(f.rows) {
		panic(fmt.Sprintf("treelist: splice of %d rows at %d outside %d visible rows", remove, at, len(f.rows)))
	}
	f.rows = slices.Replace(f.rows, at, at+remove, rows...)
}

func (f *flatRows[T]) Reset() {
	f.rows = nil
}

// nestedRows rebuilds the walk lazily after a change
type nestedRows[T comparable] struct {
	tree  *Tree[T]
	cache []*Node[T]
	dirty bool
}

func (r *nestedRows[T]) Rows() []*Node[T] {
	if r.dirty {
		r.cache = r.cache[:0]
		for _, n := range r.tree.topLevel {
			r.cache = n.appendVisible(r.cache)
		}
		r.dirty = false
	}
	return r.cache
}

func (r *nestedRows[T]) Len() int {
	return len(r.Rows())
}

func (r *nestedRows[T]) IndexOf(n *Node[T]) int {
	return slices.Index(r.Rows(), n)
}

func (r *nestedRows[T]) Splice(at, remove int, rows []*Node[T]) {
	if at < 0 || remove < 0 {
		panic(fmt.Sprintf("treelist: splice of %d rows at %d", remove, at))
	}
	r.dirty = true
}

func (r *nestedRows[T]) Reset() {
	r.cache = nil
	r.dirty = true
}
