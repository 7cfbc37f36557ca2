package treelist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pstuifzand/tui-treelist/internal/observable"
	"github.com/pstuifzand/tui-treelist/internal/ui"
)

func TestExpandAndCollapse(t *testing.T) {
	for _, storage := range storages {
		t.Run(storage.String(), func(t *testing.T) {
			tree, _ := newTestTree(storage,
				item("A", item("A1", item("A1a")), item("A2")),
				item("B"),
			)
			assert.Equal(t, []string{"A", "B"}, rowNames(tree))

			a := node(tree, "A")
			require.NotNil(t, a)
			assert.True(t, a.HasChildren())
			a.SetExpanded(true)
			assert.Equal(t, []string{"A", "A1", "A2", "B"}, rowNames(tree))

			node(tree, "A1").SetExpanded(true)
			assert.Equal(t, []string{"A", "A1", "A1a", "A2", "B"}, rowNames(tree))

			a.SetExpanded(false)
			assert.Equal(t, []string{"A", "B"}, rowNames(tree))

			a.SetExpanded(true)
			assert.Equal(t, []string{"A", "A1", "A2", "B"}, rowNames(tree), "collapse discards descendant expansion")
			assert.False(t, node(tree, "A1").Expanded())
		})
	}
}

func TestAddAndRemoveChildren(t *testing.T) {
	for _, storage := range storages {
		t.Run(storage.String(), func(t *testing.T) {
			x := item("X", item("X1"), item("X2"))
			y := item("Y")
			tree, _ := newTestTree(storage, x, y)

			node(tree, "X").SetExpanded(true)
			assert.Equal(t, []string{"X", "X1", "X2", "Y"}, rowNames(tree))

			x.children.RemoveAt(1)
			assert.Equal(t, []string{"X", "X1", "Y"}, rowNames(tree))

			yNode := node(tree, "Y")
			assert.False(t, yNode.HasChildren())
			y.children.Append(item("X3"))
			assert.True(t, yNode.HasChildren())
			assert.Equal(t, []string{"X", "X1", "Y"}, rowNames(tree), "collapsed parent adds no rows")

			yNode.SetExpanded(true)
			assert.Equal(t, []string{"X", "X1", "Y", "X3"}, rowNames(tree))
		})
	}
}

func TestInsertBetweenExpandedSiblings(t *testing.T) {
	for _, storage := range storages {
		t.Run(storage.String(), func(t *testing.T) {
			p := item("P", item("C1", item("C1a"), item("C1b")), item("C2"))
			tree, src := newTestTree(storage, p, item("Q"))

			node(tree, "P").SetExpanded(true)
			node(tree, "C1").SetExpanded(true)
			p.children.Insert(1, item("N"))
			assert.Equal(t, []string{"P", "C1", "C1a", "C1b", "N", "C2", "Q"}, rowNames(tree))

			src.Insert(1, item("T"))
			assert.Equal(t, []string{"P", "C1", "C1a", "C1b", "N", "C2", "T", "Q"}, rowNames(tree))

			src.RemoveAt(0)
			assert.Equal(t, []string{"T", "Q"}, rowNames(tree))
		})
	}
}

func TestRemovedNodesAreDetached(t *testing.T) {
	p := item("P", item("C", item("G")))
	tree, src := newTestTree(FlatRows, p)
	node(tree, "P").SetExpanded(true)
	c := node(tree, "C")
	c.SetExpanded(true)
	c.SetSelected(true)

	var events []bool
	tree.SubscribeSelection(func(_ *testItem, ok bool) { events = append(events, ok) })

	p.children.RemoveAt(0)
	assert.True(t, c.Detached())
	assert.False(t, c.Visible())
	assert.False(t, c.Expanded())
	assert.False(t, c.Selected())
	assert.Equal(t, []bool{false}, events)
	_, ok := tree.SelectedItem()
	assert.False(t, ok)
	assert.Equal(t, []string{"P"}, rowNames(tree))

	src.Clear()
	assert.Empty(t, tree.VisibleRows())
	assert.Empty(t, tree.TopLevelNodes())
}

func TestSingleSelection(t *testing.T) {
	tree, _ := newTestTree(FlatRows, item("A", item("A1")), item("B"))
	var got []string
	tree.SubscribeSelection(func(it *testItem, ok bool) {
		if ok {
			got = append(got, it.name)
		} else {
			got = append(got, "-")
		}
	})

	a, b := node(tree, "A"), node(tree, "B")
	a.SetSelected(true)
	b.SetSelected(true)
	assert.False(t, a.Selected())
	assert.True(t, b.Selected())

	sel, ok := tree.SelectedItem()
	require.True(t, ok)
	assert.Equal(t, "B", sel.name)

	tree.SetSelectedItem(a.Item())
	assert.True(t, a.Selected())
	assert.False(t, b.Selected())

	tree.SetSelectedItem(item("unknown"))
	_, ok = tree.SelectedItem()
	assert.False(t, ok)
	assert.False(t, a.Selected())

	assert.Equal(t, []string{"A", "B", "A", "-"}, got)
}

func TestSwapColumnsKeepsCellIdentity(t *testing.T) {
	tree := New[*testItem](Options{ChildProperty: DefaultChildProperty})
	tree.SetChildrenFunc(childrenOf)
	tree.SetColumns(peopleColumns())
	tree.SetDataSource(observable.NewList(person("Ann", "34", "Oslo")))

	n := node(tree, "Ann")
	before := n.Cells()
	headers := tree.HeaderCells()

	require.True(t, tree.SwapColumns(1, 2))
	after := n.Cells()
	assert.Same(t, before[0], after[0])
	assert.Same(t, before[2], after[1])
	assert.Same(t, before[1], after[2])
	assert.Equal(t, 1, after[1].Index())
	assert.Equal(t, 2, after[2].Index())

	cols := tree.Columns()
	assert.Equal(t, ui.Text("City"), cols[1].Header)
	assert.Same(t, headers[2], tree.HeaderCells()[1])

	assert.False(t, tree.SwapColumns(0, 5))
	assert.False(t, tree.SwapColumns(1, 1))
}

func TestSwapColumnsReachesHiddenNodes(t *testing.T) {
	tree := New[*testItem](Options{ChildProperty: DefaultChildProperty})
	tree.SetChildrenFunc(childrenOf)
	tree.SetColumns(peopleColumns())
	parent := person("P", "60", "Rome")
	parent.children.Append(person("K", "30", "Bern"))
	tree.SetDataSource(observable.NewList(parent))

	p := node(tree, "P")
	p.SetExpanded(true)
	p.SetExpanded(false)
	k := node(tree, "K")
	require.NotNil(t, k)
	require.False(t, k.Visible())

	tree.SwapColumns(0, 2)
	p.SetExpanded(true)
	for i, h := range tree.HeaderCells() {
		assert.Same(t, h, k.Cells()[i].header, "cell %d follows its header", i)
	}
}

func TestGlyphFollowsFirstColumn(t *testing.T) {
	tree := New[*testItem](Options{ChildProperty: DefaultChildProperty})
	tree.SetChildrenFunc(childrenOf)
	tree.SetColumns(peopleColumns())
	parent := person("P", "60", "Rome")
	parent.children.Append(item("K"))
	tree.SetDataSource(observable.NewList(parent))

	cells := node(tree, "P").Cells()
	assert.True(t, cells[0].HasGlyph())
	assert.False(t, cells[1].HasGlyph())

	tree.SwapColumns(0, 1)
	assert.False(t, cells[0].HasGlyph())
	assert.True(t, cells[1].HasGlyph())
}

func TestSetDataSourceUnsubscribes(t *testing.T) {
	child := item("C")
	tree, first := newTestTree(FlatRows, item("A", child))
	a := node(tree, "A")
	assert.Equal(t, 1, first.Subscribers())
	assert.Equal(t, 1, a.Item().children.Subscribers())
	assert.Equal(t, 1, a.Item().props.Len())

	second := observable.NewList(item("B"))
	tree.SetDataSource(second)
	assert.Equal(t, 0, first.Subscribers())
	assert.Equal(t, 0, a.Item().children.Subscribers())
	assert.Equal(t, 0, a.Item().props.Len())
	assert.Equal(t, 1, second.Subscribers())
	assert.True(t, a.Detached())
	assert.Equal(t, []string{"B"}, rowNames(tree))

	first.Append(item("late"))
	assert.Equal(t, []string{"B"}, rowNames(tree))

	tree.SetDataSource(nil)
	assert.Equal(t, 0, second.Subscribers())
	assert.Empty(t, tree.VisibleRows())
}

func TestChildPropertyRebinding(t *testing.T) {
	a := item("A", item("A1"))
	tree, _ := newTestTree(FlatRows, a)
	n := node(tree, "A")
	n.SetExpanded(true)
	assert.Equal(t, []string{"A", "A1"}, rowNames(tree))

	tree.SetChildPropertyName("missing")
	assert.False(t, n.HasChildren())
	assert.Equal(t, []string{"A"}, rowNames(tree))
	assert.Equal(t, 0, a.children.Subscribers())

	tree.SetChildPropertyName("children")
	assert.True(t, n.HasChildren())
	assert.True(t, n.Expanded(), "expansion survives a rebind")
	assert.Equal(t, []string{"A", "A1"}, rowNames(tree))
	assert.Equal(t, 1, a.children.Subscribers())
	assert.Equal(t, 1, a.props.Len())
}

func TestItemPropertyChangeResolvesChildren(t *testing.T) {
	a := item("A", item("old"))
	tree, _ := newTestTree(FlatRows, a)
	node(tree, "A").SetExpanded(true)
	old := a.children

	a.setChildren(observable.NewList(item("new1"), item("new2")))
	assert.Equal(t, 0, old.Subscribers())
	assert.Equal(t, 1, a.children.Subscribers())
	assert.Equal(t, []string{"A", "new1", "new2"}, rowNames(tree))

	a.props.Emit("name")
	assert.Equal(t, 1, a.children.Subscribers(), "unrelated property is ignored")

	a.setChildren(nil)
	assert.False(t, node(tree, "A").HasChildren())
	assert.Equal(t, []string{"A"}, rowNames(tree))
}

func TestChildrenAreCreatedLazily(t *testing.T) {
	depth := 0
	infinite := func(it *testItem, property string) observable.Source[*testItem] {
		depth++
		return observable.Slice([]*testItem{item(it.name + "/a"), item(it.name + "/b")})
	}
	tree := New[*testItem](Options{ChildProperty: DefaultChildProperty})
	tree.SetChildrenFunc(infinite)
	tree.SetColumns([]Column[*testItem]{nameColumn()})
	tree.SetDataSource(observable.NewList(item("root")))

	root := node(tree, "root")
	assert.True(t, root.HasChildren())
	assert.Equal(t, 1, depth)

	root.SetExpanded(true)
	assert.Equal(t, []string{"root", "root/a", "root/b"}, rowNames(tree))
	assert.Equal(t, 3, depth)

	grand := root.Children()[0].Children()
	assert.Len(t, grand, 2)
	assert.Equal(t, "root/a/a", grand[0].Item().name)
	assert.Equal(t, []string{"root", "root/a", "root/b"}, rowNames(tree))
}

func TestSetColumnsRebuildsCells(t *testing.T) {
	tree, _ := newTestTree(FlatRows, item("A", item("A1")))
	a := node(tree, "A")
	a.SetExpanded(true)
	assert.Len(t, a.Cells(), 1)

	cols := peopleColumns()
	tree.SetColumns(cols)
	assert.Len(t, a.Cells(), 3)
	assert.Len(t, node(tree, "A1").Cells(), 3)

	a.Item().children.Append(item("A2"))
	assert.Len(t, node(tree, "A2").Cells(), 3)

	first := a.Cells()[0]
	a.updateColumns(tree.columns)
	assert.Same(t, first, a.Cells()[0], "same column set is a no-op")
}

func TestRevealExpandsPath(t *testing.T) {
	leaf := item("leaf")
	mid := item("mid", leaf)
	top := item("top", mid)
	tree, _ := newTestTree(NestedRows, item("other"), top)

	n := tree.Reveal(top, mid, leaf)
	require.NotNil(t, n)
	assert.Same(t, leaf, n.Item())
	assert.Equal(t, []string{"other", "top", "mid", "leaf"}, rowNames(tree))
	assert.Nil(t, tree.Reveal(item("nope")))
}

func TestStructuralViolationPanics(t *testing.T) {
	f := &flatRows[*testItem]{}
	assert.Panics(t, func() { f.Splice(1, 0, nil) })
	assert.Panics(t, func() { f.Splice(0, 1, nil) })

	var r Row
	assert.Panics(t, func() { r.Swap(0, 1) })
}

func TestParseRowStorage(t *testing.T) {
	s, err := ParseRowStorage("Nested")
	require.NoError(t, err)
	assert.Equal(t, NestedRows, s)

	s, err = ParseRowStorage("")
	require.NoError(t, err)
	assert.Equal(t, FlatRows, s)

	_, err = ParseRowStorage("tiled")
	assert.Error(t, err)
}
