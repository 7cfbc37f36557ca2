package treelist

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pstuifzand/tui-treelist/internal/ui"
)

var treeBounds = ui.Rect{W: 40, H: 10}

func pt(x, y int) ui.Point {
	return ui.Point{X: x, Y: y}
}

func laidOutPeople() *Tree[*testItem] {
	tree := peopleTree()
	tree.Layout(treeBounds)
	return tree
}

func TestResizeCursorNearBoundaries(t *testing.T) {
	tree := laidOutPeople()
	var changes []Cursor
	tree.SubscribeCursor(func(c Cursor) { changes = append(changes, c) })

	tree.PointerMoved(pt(9, 0))
	assert.Equal(t, CursorResize, tree.Cursor())
	assert.Same(t, tree.HeaderCells()[0], tree.pointer.hot)

	tree.PointerMoved(pt(10, 0))
	assert.Equal(t, CursorResize, tree.Cursor(), "left edge of Age resizes Name")
	assert.Same(t, tree.HeaderCells()[0], tree.pointer.hot)

	tree.PointerMoved(pt(0, 0))
	assert.Equal(t, CursorArrow, tree.Cursor(), "left edge of the first column has no boundary")

	tree.PointerMoved(pt(9, 3))
	assert.Equal(t, CursorArrow, tree.Cursor(), "only the header resizes")

	assert.Equal(t, []Cursor{CursorResize, CursorArrow}, changes)
}

func TestResizeColumn(t *testing.T) {
	tree := laidOutPeople()
	name := tree.HeaderCells()[0]

	tree.PointerMoved(pt(9, 0))
	tree.PointerPressed(pt(9, 0))
	require.True(t, tree.Resizing())

	tree.PointerMoved(pt(14, 0))
	assert.Equal(t, 15, name.Width())
	tree.PointerReleased(pt(14, 0))
	assert.False(t, tree.Resizing())

	tree.Layout(treeBounds)
	assert.Equal(t, 15, tree.HeaderCells()[1].Bounds().X)
	for _, n := range tree.VisibleRows() {
		assert.Equal(t, 15, n.Cells()[0].Bounds().W)
		assert.Equal(t, 15, n.Cells()[1].Bounds().X)
	}
}

func TestResizeStopsAtMinimumWidth(t *testing.T) {
	col := textColumn("Wide", 30, func(it *testItem) string { return it.name })
	col.MinWidth = 25
	tree, _ := newTestTree(FlatRows, item("a"))
	tree.SetColumns([]Column[*testItem]{col})
	tree.Layout(treeBounds)

	tree.PointerMoved(pt(29, 0))
	tree.PointerPressed(pt(29, 0))
	tree.PointerMoved(pt(3, 0))
	tree.PointerReleased(pt(3, 0))
	assert.Equal(t, 25, tree.HeaderCells()[0].Width())
}

func TestPressWithoutResizeCursorStartsDrag(t *testing.T) {
	tree := laidOutPeople()
	tree.PointerMoved(pt(3, 0))
	tree.PointerPressed(pt(3, 0))
	assert.False(t, tree.Resizing())
	assert.True(t, tree.Dragging())
}

func TestDragReordersColumns(t *testing.T) {
	tree := laidOutPeople()
	ann := node(tree, "Ann")
	before := ann.Cells()

	tree.PointerMoved(pt(12, 0))
	tree.PointerPressed(pt(12, 0))
	require.True(t, tree.Dragging())

	tree.PointerMoved(pt(18, 0))
	g := newGrid(40, 10)
	tree.Render(g)
	assert.Equal(t, 'A', g.cells[pt(17, 0)], "ghost follows the pointer")

	tree.PointerReleased(pt(18, 0))
	assert.False(t, tree.Dragging())

	var titles []ui.Content
	for _, c := range tree.Columns() {
		titles = append(titles, c.Header)
	}
	assert.Equal(t, []ui.Content{ui.Text("Name"), ui.Text("City"), ui.Text("Age")}, titles)

	after := ann.Cells()
	assert.Same(t, before[0], after[0])
	assert.Same(t, before[2], after[1])
	assert.Same(t, before[1], after[2])
}

func TestDragReleaseIgnoresVerticalPosition(t *testing.T) {
	tree := laidOutPeople()
	tree.PointerPressed(pt(12, 0))
	tree.PointerReleased(pt(18, 6))
	assert.Equal(t, ui.Text("City"), tree.Columns()[1].Header)
}

func TestDragCancelled(t *testing.T) {
	tree := laidOutPeople()

	tree.PointerPressed(pt(12, 0))
	tree.PointerReleased(pt(13, 0))
	assert.Equal(t, ui.Text("Age"), tree.Columns()[1].Header, "same cell")

	tree.PointerPressed(pt(12, 0))
	tree.PointerReleased(pt(35, 0))
	assert.Equal(t, ui.Text("Age"), tree.Columns()[1].Header, "no cell")
	assert.False(t, tree.Dragging())
}

func TestBodyReleaseSelectsAndToggles(t *testing.T) {
	tree := laidOutPeople()
	ann := node(tree, "Ann")

	tree.PointerReleased(pt(12, 1))
	assert.True(t, ann.Selected())
	assert.False(t, ann.Expanded())

	tree.PointerReleased(pt(1, 1))
	assert.True(t, ann.Expanded())
	assert.Equal(t, []string{"Ann", "Kid", "Bob"}, rowNames(tree))

	tree.Layout(treeBounds)
	tree.PointerReleased(pt(5, 3))
	assert.True(t, node(tree, "Bob").Selected())
	assert.False(t, ann.Selected())

	tree.PointerMoved(pt(5, 2))
	assert.Same(t, node(tree, "Kid"), tree.Hovered())
	tree.PointerMoved(pt(5, 0))
	assert.Nil(t, tree.Hovered())
}

func TestHandleMouse(t *testing.T) {
	tree := laidOutPeople()

	assert.True(t, tree.HandleMouse(tcell.NewEventMouse(12, 0, tcell.Button1, tcell.ModNone)))
	assert.True(t, tree.Dragging())
	tree.HandleMouse(tcell.NewEventMouse(18, 0, tcell.Button1, tcell.ModNone))
	tree.HandleMouse(tcell.NewEventMouse(18, 0, tcell.ButtonNone, tcell.ModNone))
	assert.False(t, tree.Dragging())
	assert.Equal(t, ui.Text("City"), tree.Columns()[1].Header)

	tree.HandleMouse(tcell.NewEventMouse(9, 0, tcell.ButtonNone, tcell.ModNone))
	assert.Equal(t, CursorResize, tree.Cursor())
	tree.HandleMouse(tcell.NewEventMouse(9, 0, tcell.Button1, tcell.ModNone))
	tree.HandleMouse(tcell.NewEventMouse(11, 0, tcell.Button1, tcell.ModNone))
	tree.HandleMouse(tcell.NewEventMouse(11, 0, tcell.ButtonNone, tcell.ModNone))
	assert.Equal(t, 12, tree.HeaderCells()[0].Width())

	assert.True(t, tree.HandleMouse(tcell.NewEventMouse(5, 3, tcell.WheelDown, tcell.ModNone)))
	_, y := tree.ScrollOffset()
	assert.Equal(t, 1, y)

	assert.False(t, tree.HandleMouse(tcell.NewEventMouse(50, 3, tcell.Button1, tcell.ModNone)))
	assert.False(t, tree.HandleMouse(tcell.NewEventMouse(50, 3, tcell.WheelUp, tcell.ModNone)))
}

func TestResizeIndicator(t *testing.T) {
	tree := laidOutPeople()
	tree.PointerMoved(pt(9, 0))
	g := newGrid(40, 10)
	tree.Render(g)
	assert.Equal(t, '┃', g.cells[pt(9, 0)])

	tree.PointerMoved(pt(3, 0))
	g = newGrid(40, 10)
	tree.Render(g)
	assert.Equal(t, '│', g.cells[pt(9, 0)])
}

func TestSetColumnsCancelsDrag(t *testing.T) {
	tree := laidOutPeople()
	tree.PointerPressed(pt(12, 0))
	require.True(t, tree.Dragging())
	tree.SetColumns(peopleColumns())
	assert.False(t, tree.Dragging())
}
