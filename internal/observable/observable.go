// Package observable contains the change notification contracts used to bind
// live data to the tree list: ordered sources, collection changes, property
// changes and the subscriptions that tie them together.
package observable

// Action is the kind of a collection change
type Action int

const (
	// ActionAdd means Items were inserted starting at Index
	ActionAdd Action = iota
	// ActionRemove means Items were removed starting at Index
	ActionRemove
	// ActionReset means the contents were replaced wholesale; listeners
	// re-read the source
	ActionReset
)

func (a Action) String() string {
	switch a {
	case ActionAdd:
		return "add"
	case ActionRemove:
		return "remove"
	case ActionReset:
		return "reset"
	}
	return "unknown"
}

// Change describes one mutation of a collection
type Change[T any] struct {
	Action Action
	Index  int // start index, -1 appends for ActionAdd
	Items  []T
}

// Source is an ordered collection that can be read by index
type Source[T any] interface {
	Len() int
	At(i int) T
}

// Notifier is implemented by sources that report their changes
type Notifier[T any] interface {
	Subscribe(fn func(Change[T])) *Subscription
}

// PropertyNotifier is implemented by items that report property changes.
// An empty name means every property may have changed.
type PropertyNotifier interface {
	SubscribeProperty(fn func(name string)) *Subscription
}

// Items copies the contents of a source into a slice
func Items[T any](src Source[T]) []T {
	if src == nil {
		return nil
	}
	items := make([]T, src.Len())
	for i := range items {
		items[i] = src.At(i)
	}
	return items
}

// Slice wraps a plain slice as a Source that never changes
func Slice[T any](items []T) Source[T] {
	return staticSource[T](items)
}

type staticSource[T any] []T

func (s staticSource[T]) Len() int { return len(s) }
func (s staticSource[T]) At(i int) T { return s[i] }
