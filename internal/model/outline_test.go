package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pstuifzand/tui-treelist/internal/observable"
)

func TestChildrenOf(t *testing.T) {
	parent := NewItem("parent")
	child := NewItem("child")
	parent.AddChild(child)

	src := ChildrenOf(parent, PropertyChildren)
	require.NotNil(t, src)
	assert.Equal(t, 1, src.Len())
	assert.Same(t, child, src.At(0))
	assert.Same(t, parent, child.Parent)

	assert.Nil(t, ChildrenOf(parent, "text"))
	assert.Nil(t, ChildrenOf(&Item{}, PropertyChildren))
}

func TestPropertyNotifications(t *testing.T) {
	it := NewItem("a")
	var names []string
	sub := it.SubscribeProperty(func(name string) { names = append(names, name) })

	it.SetText("b")
	it.SetText("b")
	it.SetAttribute("status", "done")
	it.SetChildren(observable.NewList(NewItem("c")))
	assert.Equal(t, []string{PropertyText, PropertyMetadata, PropertyChildren}, names)
	assert.Equal(t, "done", it.Attribute("status"))
	assert.Same(t, it, it.Children.At(0).Parent)

	sub.Unsubscribe()
	assert.Equal(t, 0, it.PropertySubscribers())
}

func TestOutlineRemove(t *testing.T) {
	top := NewItem("top")
	mid := NewItem("mid")
	leaf := NewItem("leaf")
	top.AddChild(mid)
	mid.AddChild(leaf)
	o := NewOutline(top, NewItem("other"))

	assert.Len(t, o.GetAllItems(), 4)
	assert.Same(t, leaf, o.FindItemByID(leaf.ID))
	assert.Equal(t, []*Item{top, mid, leaf}, leaf.Path())

	require.True(t, o.Remove(mid.ID))
	assert.Equal(t, 0, top.Children.Len())
	assert.Nil(t, o.FindItemByID(leaf.ID))

	require.True(t, o.Remove(top.ID))
	assert.Equal(t, 1, o.Items.Len())
	assert.False(t, o.Remove("missing"))
}

func TestInsertChildClampsIndex(t *testing.T) {
	p := NewItem("p")
	a, b := NewItem("a"), NewItem("b")
	p.InsertChild(5, a)
	p.InsertChild(0, b)
	assert.Equal(t, []*Item{b, a}, p.Children.Items())
	assert.True(t, p.RemoveChild(a))
	assert.False(t, p.RemoveChild(a))
	assert.Nil(t, a.Parent)
}
