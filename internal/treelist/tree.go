// Package treelist implements a hierarchical list with shared, resizable and
// reorderable columns, bound to an observable data source.
//
// Every data item is shown by a Node. The rows of all visible nodes form one
// flat list under a header row. Each row holds one body cell per column; a
// body cell takes its width from the header of its column, and in turn
// reports its own width to that header so auto-sized columns line up.
package treelist

import (
	"fmt"
	"slices"

	"github.com/pstuifzand/tui-treelist/internal/observable"
	"github.com/pstuifzand/tui-treelist/internal/ui"
)

const (
	DefaultMinColumnWidth = 4
	DefaultResizeMargin   = 1
	DefaultChildProperty  = "children"
)

// ChildrenFunc resolves the child collection of item through the named
// property. A nil result means the item has no children.
type ChildrenFunc[T any] func(item T, property string) observable.Source[T]

// Selection is the payload of the selection-changed event
type Selection[T any] struct {
	Item T
	OK   bool
}

// Options configure a new Tree
type Options struct {
	ChildProperty  string
	RowStorage     RowStorage
	MinColumnWidth int
	ResizeMargin   int
	Styles         *Styles
}

// Tree is the list control
type Tree[T comparable] struct {
	columns  *columnSet[T]
	topLevel []*Node[T]
	rows     rowStore[T]

	source    observable.Source[T]
	sourceSub *observable.Subscription

	childProperty string
	childrenFunc  ChildrenFunc[T]

	selected         *Node[T]
	selectionChanged observable.Signal[Selection[T]]

	minColumnWidth int
	resizeMargin   int
	styles         Styles

	bounds  ui.Rect
	scrollX int
	scrollY int
	content ui.Size
	reveal  *Node[T]

	pointer pointerState[T]
	hover   *Node[T]
}

// New creates an empty tree without columns
func New[T comparable](opts Options) *Tree[T] {
	t := &Tree[T]{
		childProperty:  opts.ChildProperty,
		minColumnWidth: opts.MinColumnWidth,
		resizeMargin:   opts.ResizeMargin,
		styles:         DefaultStyles(),
	}
	if t.minColumnWidth <= 0 {
		t.minColumnWidth = DefaultMinColumnWidth
	}
	if t.resizeMargin <= 0 {
		t.resizeMargin = DefaultResizeMargin
	}
	if opts.Styles != nil {
		t.styles = *opts.Styles
	}
	t.columns = newColumnSet[T](nil, t.minColumnWidth)
	t.rows = newRowStore(t, opts.RowStorage)
	return t
}

// SetStyles replaces the styles used by Render
func (t *Tree[T]) SetStyles(s Styles) {
	t.styles = s
}

// SetDataSource binds the top level to src, replacing the previous source.
// The old source is unsubscribed and all of its nodes are discarded.
func (t *Tree[T]) SetDataSource(src observable.Source[T]) {
	t.sourceSub.Unsubscribe()
	t.sourceSub = nil
	t.clearTopLevel()

	t.source = src
	if src == nil {
		return
	}
	if notifier, ok := src.(observable.Notifier[T]); ok {
		t.sourceSub = notifier.Subscribe(t.onSourceChanged)
	}
	if src.Len() > 0 {
		t.insertTopLevel(0, observable.Items(src))
	}
	debugLog.Printf("data source bound, %d top-level items", len(t.topLevel))
}

// DataSource returns the bound source
func (t *Tree[T]) DataSource() observable.Source[T] {
	return t.source
}

func (t *Tree[T]) onSourceChanged(c observable.Change[T]) {
	switch c.Action {
	case observable.ActionAdd:
		t.insertTopLevel(c.Index, c.Items)
	case observable.ActionRemove:
		t.removeTopLevel(c.Index, len(c.Items))
	case observable.ActionReset:
		t.clearTopLevel()
		if t.source != nil && t.source.Len() > 0 {
			t.insertTopLevel(0, observable.Items(t.source))
		}
	}
}

func (t *Tree[T]) insertTopLevel(index int, items []T) {
	if index < 0 {
		index = len(t.topLevel)
	}
	if index > len(t.topLevel) {
		panic(fmt.Sprintf("treelist: insert at %d into %d top-level nodes", index, len(t.topLevel)))
	}
	if len(items) == 0 {
		return
	}
	nodes := make([]*Node[T], len(items))
	for i, item := range items {
		nodes[i] = newNode(t, nil, 0, item)
	}
	t.topLevel = slices.Insert(t.topLevel, index, nodes...)
	t.onChildRowsInserted(nil, index, nodes)
}

func (t *Tree[T]) removeTopLevel(index, count int) {
	if index < 0 || count < 0 || index+count > len(t.topLevel) {
		panic(fmt.Sprintf("treelist: remove %d top-level nodes at %d from %d", count, index, len(t.topLevel)))
	}
	if count == 0 {
		return
	}
	removed := slices.Clone(t.topLevel[index : index+count])
	t.topLevel = slices.Delete(t.topLevel, index, index+count)
	t.onChildRowsRemoved(nil, index, removed)
	for _, n := range removed {
		n.detach()
	}
}

func (t *Tree[T]) clearTopLevel() {
	removed := t.topLevel
	t.topLevel = nil
	t.rows.Reset()
	for _, n := range removed {
		n.detach()
	}
}

// TopLevelNodes returns the nodes of the bound source
func (t *Tree[T]) TopLevelNodes() []*Node[T] {
	return slices.Clone(t.topLevel)
}

// VisibleRows returns the nodes that currently have a row, in display order
func (t *Tree[T]) VisibleRows() []*Node[T] {
	return slices.Clone(t.rows.Rows())
}

// Walk visits every created node in pre-order until fn returns false
func (t *Tree[T]) Walk(fn func(n *Node[T]) bool) {
	for _, n := range t.topLevel {
		if !n.walk(fn) {
			return
		}
	}
}

// FindNode returns the created node showing item
func (t *Tree[T]) FindNode(item T) *Node[T] {
	var found *Node[T]
	t.Walk(func(n *Node[T]) bool {
		if n.item == item {
			found = n
			return false
		}
		return true
	})
	return found
}

// Reveal expands the nodes along path, a chain of items from the top level
// down, and returns the node of the last item. It stops at the first item
// it cannot find.
func (t *Tree[T]) Reveal(path ...T) *Node[T] {
	siblings := t.topLevel
	var node *Node[T]
	for i, item := range path {
		idx := slices.IndexFunc(siblings, func(n *Node[T]) bool { return n.item == item })
		if idx < 0 {
			return nil
		}
		node = siblings[idx]
		if i < len(path)-1 {
			node.SetExpanded(true)
			siblings = node.children
		}
	}
	if node != nil {
		t.reveal = node
	}
	return node
}

// SetColumns replaces the columns. Every node rebuilds its cells.
func (t *Tree[T]) SetColumns(cols []Column[T]) {
	t.cancelPointer()
	t.columns = newColumnSet(cols, t.minColumnWidth)
	for _, n := range t.topLevel {
		n.updateColumns(t.columns)
	}
	debugLog.Printf("columns set, %d columns", len(cols))
}

// Columns returns the columns in display order
func (t *Tree[T]) Columns() []Column[T] {
	cols := make([]Column[T], t.columns.len())
	for i := range cols {
		cols[i] = t.columns.header(i).column
	}
	return cols
}

// HeaderCells returns the header cells in display order
func (t *Tree[T]) HeaderCells() []*HeaderCell[T] {
	cells := make([]*HeaderCell[T], t.columns.len())
	for i := range cells {
		cells[i] = t.columns.header(i)
	}
	return cells
}

// Header returns the header row
func (t *Tree[T]) Header() *Row {
	return &t.columns.row
}

// SwapColumns exchanges two columns in the header and in every created
// node, visible or not. Out of range indexes are ignored.
func (t *Tree[T]) SwapColumns(i, j int) bool {
	n := t.columns.len()
	if i < 0 || j < 0 || i >= n || j >= n || i == j {
		return false
	}
	t.columns.row.Swap(i, j)
	for _, node := range t.topLevel {
		node.swapCells(i, j)
	}
	debugLog.Printf("swapped columns %d and %d", i, j)
	return true
}

// SetChildPropertyName rebinds the children of every node through name
func (t *Tree[T]) SetChildPropertyName(name string) {
	t.childProperty = name
	t.rebindChildren()
}

func (t *Tree[T]) ChildPropertyName() string {
	return t.childProperty
}

// SetChildrenFunc sets how children are resolved and rebinds every node
func (t *Tree[T]) SetChildrenFunc(fn ChildrenFunc[T]) {
	t.childrenFunc = fn
	t.rebindChildren()
}

func (t *Tree[T]) rebindChildren() {
	for _, n := range t.topLevel {
		n.bindChildren(t.childProperty)
	}
	debugLog.Printf("children rebound through %q", t.childProperty)
}

// SelectedItem returns the item of the selected node
func (t *Tree[T]) SelectedItem() (T, bool) {
	if t.selected == nil {
		var zero T
		return zero, false
	}
	return t.selected.item, true
}

func (t *Tree[T]) SelectedNode() *Node[T] {
	return t.selected
}

// SetSelectedItem selects the node showing item. When no created node shows
// it the selection is cleared.
func (t *Tree[T]) SetSelectedItem(item T) {
	if n := t.FindNode(item); n != nil {
		n.SetSelected(true)
		return
	}
	t.ClearSelection()
}

func (t *Tree[T]) ClearSelection() {
	if t.selected != nil {
		t.selected.SetSelected(false)
	}
}

// SubscribeSelection calls fn whenever the selected item changes
func (t *Tree[T]) SubscribeSelection(fn func(item T, ok bool)) *observable.Subscription {
	return t.selectionChanged.Subscribe(func(s Selection[T]) {
		fn(s.Item, s.OK)
	})
}

func (t *Tree[T]) onNodeSelected(n *Node[T], selected bool) {
	if selected {
		if prev := t.selected; prev != nil && prev != n {
			prev.selected = false
		}
		t.selected = n
		t.selectionChanged.Emit(Selection[T]{Item: n.item, OK: true})
		return
	}
	if t.selected == n {
		t.selected = nil
		t.selectionChanged.Emit(Selection[T]{})
	}
}

// ExpandAll expands every top-level node
func (t *Tree[T]) ExpandAll() {
	for _, n := range slices.Clone(t.topLevel) {
		n.SetExpanded(true)
	}
}

// CollapseAll collapses every top-level node and with it all descendants
func (t *Tree[T]) CollapseAll() {
	for _, n := range slices.Clone(t.topLevel) {
		n.SetExpanded(false)
	}
}

// onChildRowsInserted inserts the rows of nodes, just added at index among
// the children of parent (nil for the top level).
func (t *Tree[T]) onChildRowsInserted(parent *Node[T], index int, nodes []*Node[T]) {
	if parent != nil && (!parent.expanded || !parent.Visible()) {
		return
	}
	var rows []*Node[T]
	for _, n := range nodes {
		rows = n.appendVisible(rows)
	}
	t.rows.Splice(t.rowOffset(parent, index), 0, rows)
}

// onChildRowsRemoved removes the rows of nodes, just removed at index from
// the children of parent (nil for the top level).
func (t *Tree[T]) onChildRowsRemoved(parent *Node[T], index int, nodes []*Node[T]) {
	if parent != nil && (!parent.expanded || !parent.Visible()) {
		return
	}
	count := 0
	for _, n := range nodes {
		count += n.visibleSize()
	}
	t.rows.Splice(t.rowOffset(parent, index), count, nil)
}

func (t *Tree[T]) onExpanded(n *Node[T]) {
	if !n.Visible() {
		return
	}
	rows := n.appendVisibleDescendants(nil)
	if len(rows) > 0 {
		t.rows.Splice(t.rows.IndexOf(n)+1, 0, rows)
	}
}

func (t *Tree[T]) onCollapsing(n *Node[T]) {
	if !n.Visible() {
		return
	}
	if count := n.visibleSize() - 1; count > 0 {
		t.rows.Splice(t.rows.IndexOf(n)+1, count, nil)
	}
}

// rowOffset translates the child position index of parent into an
// absolute row index
func (t *Tree[T]) rowOffset(parent *Node[T], index int) int {
	siblings := t.topLevel
	offset := 0
	if parent != nil {
		siblings = parent.children
		offset = t.rows.IndexOf(parent) + 1
	}
	for _, s := range siblings[:index] {
		offset += s.visibleSize()
	}
	return offset
}
