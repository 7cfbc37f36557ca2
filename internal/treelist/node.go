package treelist

import (
	"fmt"
	"slices"

	"github.com/pstuifzand/tui-treelist/internal/observable"
	"github.com/pstuifzand/tui-treelist/internal/ui"
)

// Node is the presence of one data item in the tree. Its children are
// resolved from the item through the tree's ChildrenFunc and kept
// index-aligned with that collection. Child nodes are created on first
// expansion or on the first call to Children.
type Node[T comparable] struct {
	tree     *Tree[T]
	parent   *Node[T]
	level    int
	item     T
	expanded bool
	selected bool
	row      Row
	columns  *columnSet[T]

	property     string
	source       observable.Source[T]
	sourceSub    *observable.Subscription
	propertySub  *observable.Subscription
	hasChildren  bool
	materialized bool
	children     []*Node[T]
	detached     bool
}

func newNode[T comparable](t *Tree[T], parent *Node[T], level int, item T) *Node[T] {
	n := &Node[T]{
		tree:   t,
		parent: parent,
		level:  level,
		item:   item,
	}
	n.updateColumns(t.columns)
	n.bindChildren(t.childProperty)
	return n
}

func (n *Node[T]) Item() T {
	return n.item
}

func (n *Node[T]) Level() int {
	return n.level
}

// Parent returns nil for top-level nodes
func (n *Node[T]) Parent() *Node[T] {
	return n.parent
}

func (n *Node[T]) Expanded() bool {
	return n.expanded
}

func (n *Node[T]) Selected() bool {
	return n.selected
}

// HasChildren reports whether the resolved child collection is non-empty
func (n *Node[T]) HasChildren() bool {
	return n.hasChildren
}

// Detached reports whether the node was removed from the tree
func (n *Node[T]) Detached() bool {
	return n.detached
}

// Row returns the row of cells shown for the node
func (n *Node[T]) Row() *Row {
	return &n.row
}

// Cells returns the body cells in display order
func (n *Node[T]) Cells() []*ExpanderCell {
	cells := make([]*ExpanderCell, n.row.Len())
	for i := range cells {
		cells[i] = n.row.At(i).(*ExpanderCell)
	}
	return cells
}

// Children returns the child nodes, creating them if needed
func (n *Node[T]) Children() []*Node[T] {
	n.materialize()
	return slices.Clone(n.children)
}

// Visible reports whether the node has a row: it is attached and every
// ancestor is expanded.
func (n *Node[T]) Visible() bool {
	if n.detached {
		return false
	}
	for p := n.parent; p != nil; p = p.parent {
		if !p.expanded || p.detached {
			return false
		}
	}
	return true
}

// SetExpanded shows or hides the children. Collapsing also collapses every
// descendant.
func (n *Node[T]) SetExpanded(expanded bool) {
	if n.expanded == expanded {
		return
	}
	if expanded {
		if n.detached {
			return
		}
		n.materialize()
		n.expanded = true
		n.tree.onExpanded(n)
		return
	}
	n.tree.onCollapsing(n)
	n.expanded = false
	for _, c := range n.children {
		c.SetExpanded(false)
	}
}

func (n *Node[T]) Toggle() {
	n.SetExpanded(!n.expanded)
}

// SetSelected selects or deselects the node. Selecting deselects whichever
// node was selected before.
func (n *Node[T]) SetSelected(selected bool) {
	if n.selected == selected || (selected && n.detached) {
		return
	}
	n.selected = selected
	n.tree.onNodeSelected(n, selected)
}

// cellAt returns the body cell under p
func (n *Node[T]) cellAt(p ui.Point) *ExpanderCell {
	for _, c := range n.Cells() {
		if c.Bounds().Contains(p) {
			return c
		}
	}
	return nil
}

// visibleSize is the number of rows the node occupies while visible
func (n *Node[T]) visibleSize() int {
	size := 1
	if n.expanded {
		for _, c := range n.children {
			size += c.visibleSize()
		}
	}
	return size
}

// appendVisible appends the node and its visible descendants in pre-order
func (n *Node[T]) appendVisible(rows []*Node[T]) []*Node[T] {
	rows = append(rows, n)
	return n.appendVisibleDescendants(rows)
}

func (n *Node[T]) appendVisibleDescendants(rows []*Node[T]) []*Node[T] {
	if !n.expanded {
		return rows
	}
	for _, c := range n.children {
		rows = c.appendVisible(rows)
	}
	return rows
}

// walk visits the node and every created descendant in pre-order
func (n *Node[T]) walk(fn func(*Node[T]) bool) bool {
	if !fn(n) {
		return false
	}
	for _, c := range n.children {
		if !c.walk(fn) {
			return false
		}
	}
	return true
}

// updateColumns rebuilds the cells for a new column set
func (n *Node[T]) updateColumns(cs *columnSet[T]) {
	if n.columns == cs {
		return
	}
	n.columns = cs
	n.row.Clear()
	for i := 0; i < cs.len(); i++ {
		h := cs.header(i)
		var content ui.Content
		if h.column.Cell != nil {
			content = h.column.Cell(n.item)
		}
		n.row.Add(newExpanderCell(h, n, content))
	}
	for _, c := range n.children {
		c.updateColumns(cs)
	}
}

// swapCells mirrors a header swap on the node and its created descendants
func (n *Node[T]) swapCells(i, j int) {
	n.row.Swap(i, j)
	for _, c := range n.children {
		c.swapCells(i, j)
	}
}

// bindChildren resolves the children through property and follows the
// item's property changes. The previous binding is always torn down first.
func (n *Node[T]) bindChildren(property string) {
	n.property = property
	n.propertySub.Unsubscribe()
	n.propertySub = nil
	if pn, ok := any(n.item).(observable.PropertyNotifier); ok {
		n.propertySub = pn.SubscribeProperty(n.onItemPropertyChanged)
	}
	n.resolveChildren()
}

func (n *Node[T]) onItemPropertyChanged(name string) {
	if name == "" || name == n.property {
		debugLog.Printf("property %q changed on level %d node, resolving children", name, n.level)
		n.resolveChildren()
	}
}

func (n *Node[T]) resolveChildren() {
	n.sourceSub.Unsubscribe()
	n.sourceSub = nil
	n.clearChildren()

	n.source = nil
	if n.property != "" && n.tree.childrenFunc != nil {
		n.source = n.tree.childrenFunc(n.item, n.property)
	}
	if n.source == nil {
		return
	}
	if notifier, ok := n.source.(observable.Notifier[T]); ok {
		n.sourceSub = notifier.Subscribe(n.onChildrenChanged)
	}
	n.insertChildren(0, observable.Items(n.source))
}

func (n *Node[T]) onChildrenChanged(c observable.Change[T]) {
	switch c.Action {
	case observable.ActionAdd:
		n.insertChildren(c.Index, c.Items)
	case observable.ActionRemove:
		n.removeChildren(c.Index, len(c.Items))
	case observable.ActionReset:
		n.clearChildren()
		if n.source != nil {
			n.insertChildren(0, observable.Items(n.source))
		}
	}
}

// materialize creates the child nodes. Nothing is visible yet because an
// expanded node is always materialized.
func (n *Node[T]) materialize() {
	if n.materialized || n.detached {
		return
	}
	n.materialized = true
	if n.source == nil {
		return
	}
	for _, item := range observable.Items(n.source) {
		n.children = append(n.children, newNode(n.tree, n, n.level+1, item))
	}
	n.updateHasChildren()
}

func (n *Node[T]) insertChildren(index int, items []T) {
	if !n.materialized {
		n.updateHasChildren()
		return
	}
	if index < 0 {
		index = len(n.children)
	}
	if index > len(n.children) {
		panic(fmt.Sprintf("treelist: insert at %d into %d children", index, len(n.children)))
	}
	if len(items) == 0 {
		return
	}
	nodes := make([]*Node[T], len(items))
	for i, item := range items {
		nodes[i] = newNode(n.tree, n, n.level+1, item)
	}
	n.children = slices.Insert(n.children, index, nodes...)
	n.updateHasChildren()
	n.tree.onChildRowsInserted(n, index, nodes)
}

func (n *Node[T]) removeChildren(index, count int) {
	if !n.materialized {
		n.updateHasChildren()
		return
	}
	if index < 0 || count < 0 || index+count > len(n.children) {
		panic(fmt.Sprintf("treelist: remove %d children at %d from %d", count, index, len(n.children)))
	}
	if count == 0 {
		return
	}
	removed := slices.Clone(n.children[index : index+count])
	n.children = slices.Delete(n.children, index, index+count)
	n.tree.onChildRowsRemoved(n, index, removed)
	for _, c := range removed {
		c.detach()
	}
	n.updateHasChildren()
}

func (n *Node[T]) clearChildren() {
	if n.materialized && len(n.children) > 0 {
		n.removeChildren(0, len(n.children))
	}
	n.hasChildren = false
}

func (n *Node[T]) updateHasChildren() {
	if n.materialized {
		n.hasChildren = len(n.children) > 0
		return
	}
	n.hasChildren = n.source != nil && n.source.Len() > 0
}

// detach releases every subscription of the node and its descendants. The
// caller has already removed their rows.
func (n *Node[T]) detach() {
	if n.detached {
		return
	}
	n.detached = true
	n.SetExpanded(false)
	n.SetSelected(false)
	if n.tree.hover == n {
		n.tree.hover = nil
	}
	n.propertySub.Unsubscribe()
	n.propertySub = nil
	n.sourceSub.Unsubscribe()
	n.sourceSub = nil
	for _, c := range n.children {
		c.detach()
	}
}
