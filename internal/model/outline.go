// Package model contains the outline shown by the tree list: items whose
// children are observable lists and which report their property changes.
package model

import (
	"math/rand/v2"
	"time"

	"github.com/pstuifzand/tui-treelist/internal/observable"
)

// Property names reported by Item
const (
	PropertyText     = "text"
	PropertyChildren = "children"
	PropertyMetadata = "metadata"
)

// Item represents a single node in the outline tree
type Item struct {
	ID       string
	Text     string
	Metadata *Metadata
	Parent   *Item
	Children *observable.List[*Item]

	props observable.Signal[string]
}

// Metadata holds rich information about an item
type Metadata struct {
	Tags       []string
	Notes      string
	Attributes map[string]string
	Created    time.Time
	Modified   time.Time
}

// Outline represents the entire outline document
type Outline struct {
	Items *observable.List[*Item]
}

// NewItem creates a new outline item with a generated ID
func NewItem(text string) *Item {
	now := time.Now()
	return &Item{
		ID:       generateID(),
		Text:     text,
		Children: observable.NewList[*Item](),
		Metadata: &Metadata{
			Attributes: make(map[string]string),
			Created:    now,
			Modified:   now,
		},
	}
}

// NewOutline creates an empty outline
func NewOutline(items ...*Item) *Outline {
	return &Outline{Items: observable.NewList(items...)}
}

// SubscribeProperty calls fn with the name of every property that changes
func (i *Item) SubscribeProperty(fn func(name string)) *observable.Subscription {
	return i.props.Subscribe(fn)
}

// PropertySubscribers returns the number of attached property handlers
func (i *Item) PropertySubscribers() int {
	return i.props.Len()
}

func (i *Item) touch(property string) {
	if i.Metadata != nil {
		i.Metadata.Modified = time.Now()
	}
	i.props.Emit(property)
}

// SetText changes the text
func (i *Item) SetText(text string) {
	if i.Text == text {
		return
	}
	i.Text = text
	i.touch(PropertyText)
}

// SetAttribute sets a metadata attribute
func (i *Item) SetAttribute(name, value string) {
	if i.Metadata == nil {
		i.Metadata = &Metadata{}
	}
	if i.Metadata.Attributes == nil {
		i.Metadata.Attributes = make(map[string]string)
	}
	i.Metadata.Attributes[name] = value
	i.touch(PropertyMetadata)
}

// Attribute returns a metadata attribute
func (i *Item) Attribute(name string) string {
	if i.Metadata == nil {
		return ""
	}
	return i.Metadata.Attributes[name]
}

// Tags returns the tags of the item
func (i *Item) Tags() []string {
	if i.Metadata == nil {
		return nil
	}
	return i.Metadata.Tags
}

// SetChildren replaces the whole child list
func (i *Item) SetChildren(children *observable.List[*Item]) {
	if children != nil {
		for _, c := range children.Items() {
			c.Parent = i
		}
	}
	i.Children = children
	i.touch(PropertyChildren)
}

// AddChild adds a child item to this item
func (i *Item) AddChild(child *Item) {
	i.InsertChild(-1, child)
}

// InsertChild inserts child at index; a negative index appends
func (i *Item) InsertChild(index int, child *Item) {
	if i.Children == nil {
		i.Children = observable.NewList[*Item]()
	}
	if index < 0 || index > i.Children.Len() {
		index = i.Children.Len()
	}
	child.Parent = i
	i.Children.Insert(index, child)
}

// RemoveChild removes a child item from this item
func (i *Item) RemoveChild(child *Item) bool {
	if i.Children == nil {
		return false
	}
	idx := i.Children.IndexFunc(func(c *Item) bool { return c.ID == child.ID })
	if idx < 0 {
		return false
	}
	i.Children.RemoveAt(idx)
	child.Parent = nil
	return true
}

// Path returns the items from the top level down to this item
func (i *Item) Path() []*Item {
	var path []*Item
	for it := i; it != nil; it = it.Parent {
		path = append([]*Item{it}, path...)
	}
	return path
}

// ChildrenOf resolves the child collection of item through property. Only
// "children" is a child property; any other name has no children.
func ChildrenOf(item *Item, property string) observable.Source[*Item] {
	if item == nil || property != PropertyChildren || item.Children == nil {
		return nil
	}
	return item.Children
}

// Add appends an item to the top level
func (o *Outline) Add(item *Item) {
	item.Parent = nil
	o.Items.Append(item)
}

// Remove removes the item with the given id wherever it is
func (o *Outline) Remove(id string) bool {
	item := o.FindItemByID(id)
	if item == nil {
		return false
	}
	if item.Parent != nil {
		return item.Parent.RemoveChild(item)
	}
	idx := o.Items.IndexFunc(func(it *Item) bool { return it.ID == id })
	if idx < 0 {
		return false
	}
	o.Items.RemoveAt(idx)
	return true
}

// GetAllItems returns all items in the outline (depth-first)
func (o *Outline) GetAllItems() []*Item {
	var items []*Item
	for _, item := range o.Items.Items() {
		items = appendAll(items, item)
	}
	return items
}

func appendAll(items []*Item, item *Item) []*Item {
	items = append(items, item)
	if item.Children == nil {
		return items
	}
	for _, child := range item.Children.Items() {
		items = appendAll(items, child)
	}
	return items
}

// FindItemByID finds an item by its ID in the outline
func (o *Outline) FindItemByID(id string) *Item {
	for _, item := range o.GetAllItems() {
		if item.ID == id {
			return item
		}
	}
	return nil
}

func generateID() string {
	return "item_" + time.Now().Format("20060102150405") + "_" + randomString(8)
}

func randomString(length int) string {
	const chars = "abcdefghijklmnopqrstuvwxyz0123456789"
	result := make([]byte, length)
	for i := range result {
		result[i] = chars[rand.IntN(len(chars))]
	}
	return string(result)
}
