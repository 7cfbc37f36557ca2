package treelist

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/pstuifzand/tui-treelist/internal/observable"
)

// TestRowsMatchVisibleNodes drives a flat and a nested tree bound to the
// same data through random mutations and checks that both always show
// exactly the visible nodes in pre-order.
func TestRowsMatchVisibleNodes(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		counter := 0
		newItem := func() *testItem {
			counter++
			return person(fmt.Sprintf("n%d", counter), fmt.Sprint(counter), "x")
		}

		src := observable.NewList[*testItem]()
		var pool []*testItem
		flat := New[*testItem](Options{ChildProperty: DefaultChildProperty, RowStorage: FlatRows})
		nested := New[*testItem](Options{ChildProperty: DefaultChildProperty, RowStorage: NestedRows})
		for _, tree := range []*Tree[*testItem]{flat, nested} {
			tree.SetChildrenFunc(childrenOf)
			tree.SetColumns(peopleColumns())
			tree.SetDataSource(src)
		}

		steps := rapid.IntRange(1, 60).Draw(rt, "steps")
		for i := 0; i < steps; i++ {
			switch rapid.IntRange(0, 6).Draw(rt, "op") {
			case 0:
				it := newItem()
				pool = append(pool, it)
				src.Insert(rapid.IntRange(0, src.Len()).Draw(rt, "at"), it)
			case 1:
				if src.Len() > 0 {
					src.RemoveAt(rapid.IntRange(0, src.Len()-1).Draw(rt, "at"))
				}
			case 2:
				if len(pool) > 0 {
					parent := pool[rapid.IntRange(0, len(pool)-1).Draw(rt, "parent")]
					it := newItem()
					pool = append(pool, it)
					parent.children.Insert(rapid.IntRange(0, parent.children.Len()).Draw(rt, "at"), it)
				}
			case 3:
				if len(pool) > 0 {
					parent := pool[rapid.IntRange(0, len(pool)-1).Draw(rt, "parent")]
					if parent.children.Len() > 0 {
						parent.children.RemoveAt(rapid.IntRange(0, parent.children.Len()-1).Draw(rt, "at"))
					}
				}
			case 4, 5:
				rows := flat.VisibleRows()
				if len(rows) > 0 {
					it := rows[rapid.IntRange(0, len(rows)-1).Draw(rt, "row")].Item()
					flat.FindNode(it).Toggle()
					nested.FindNode(it).Toggle()
				}
			case 6:
				rows := flat.VisibleRows()
				if len(rows) > 0 {
					it := rows[rapid.IntRange(0, len(rows)-1).Draw(rt, "row")].Item()
					flat.SetSelectedItem(it)
					nested.SetSelectedItem(it)
				}
			}
			if i%5 == 0 {
				flat.SwapColumns(0, 2)
				nested.SwapColumns(0, 2)
			}

			require.Equal(rt, rowNames(nested), rowNames(flat))
			for _, tree := range []*Tree[*testItem]{flat, nested} {
				checkTree(rt, tree)
			}
		}
	})
}

func checkTree(rt *rapid.T, tree *Tree[*testItem]) {
	var expected []*Node[*testItem]
	for _, n := range tree.TopLevelNodes() {
		expected = n.appendVisible(expected)
	}
	require.Equal(rt, names(expected), rowNames(tree))

	visible := make(map[*Node[*testItem]]bool)
	for _, n := range tree.VisibleRows() {
		visible[n] = true
	}
	headers := tree.HeaderCells()
	selected := 0
	tree.Walk(func(n *Node[*testItem]) bool {
		require.Equal(rt, visible[n], n.Visible(), "visibility of %s", n.Item().name)
		require.Len(rt, n.Cells(), len(headers))
		for i, c := range n.Cells() {
			require.Equal(rt, i, c.Index())
			require.Same(rt, headers[i], c.header)
		}
		if n.Selected() {
			selected++
		}
		return true
	})
	require.LessOrEqual(rt, selected, 1)
}
