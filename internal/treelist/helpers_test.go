package treelist

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/pstuifzand/tui-treelist/internal/observable"
	"github.com/pstuifzand/tui-treelist/internal/ui"
)

type testItem struct {
	name     string
	age      string
	city     string
	children *observable.List[*testItem]
	props    observable.Signal[string]
}

func item(name string, children ...*testItem) *testItem {
	return &testItem{name: name, children: observable.NewList(children...)}
}

func person(name, age, city string) *testItem {
	it := item(name)
	it.age, it.city = age, city
	return it
}

func (i *testItem) SubscribeProperty(fn func(string)) *observable.Subscription {
	return i.props.Subscribe(fn)
}

func (i *testItem) setChildren(l *observable.List[*testItem]) {
	i.children = l
	i.props.Emit("children")
}

func childrenOf(it *testItem, property string) observable.Source[*testItem] {
	if property != "children" || it.children == nil {
		return nil
	}
	return it.children
}

func textColumn(title string, width int, get func(*testItem) string) Column[*testItem] {
	return Column[*testItem]{
		Header: ui.Text(title),
		Width:  width,
		Cell:   func(it *testItem) ui.Content { return ui.Text(get(it)) },
	}
}

func nameColumn() Column[*testItem] {
	return textColumn("Name", 0, func(it *testItem) string { return it.name })
}

func peopleColumns() []Column[*testItem] {
	return []Column[*testItem]{
		textColumn("Name", 10, func(it *testItem) string { return it.name }),
		textColumn("Age", 6, func(it *testItem) string { return it.age }),
		textColumn("City", 8, func(it *testItem) string { return it.city }),
	}
}

func newTestTree(storage RowStorage, items ...*testItem) (*Tree[*testItem], *observable.List[*testItem]) {
	tree := New[*testItem](Options{ChildProperty: DefaultChildProperty, RowStorage: storage})
	tree.SetChildrenFunc(childrenOf)
	tree.SetColumns([]Column[*testItem]{nameColumn()})
	src := observable.NewList(items...)
	tree.SetDataSource(src)
	return tree, src
}

var storages = []RowStorage{FlatRows, NestedRows}

func names(nodes []*Node[*testItem]) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Item().name
	}
	return out
}

func rowNames(tree *Tree[*testItem]) []string {
	return names(tree.VisibleRows())
}

func node(tree *Tree[*testItem], name string) *Node[*testItem] {
	var found *Node[*testItem]
	tree.Walk(func(n *Node[*testItem]) bool {
		if n.Item().name == name {
			found = n
			return false
		}
		return true
	})
	return found
}

// grid is a surface that remembers the runes written to it
type grid struct {
	w, h  int
	cells map[ui.Point]rune
}

func newGrid(w, h int) *grid {
	return &grid{w: w, h: h, cells: make(map[ui.Point]rune)}
}

func (g *grid) SetCell(x, y int, r rune, _ tcell.Style) {
	g.cells[ui.Point{X: x, Y: y}] = r
}

func (g *grid) line(y int) string {
	var b strings.Builder
	for x := 0; x < g.w; x++ {
		r, ok := g.cells[ui.Point{X: x, Y: y}]
		if !ok {
			r = ' '
		}
		b.WriteRune(r)
	}
	return strings.TrimRight(b.String(), " ")
}
