package observable

import "fmt"

// List is an observable slice. Every mutation emits a Change to subscribers.
type List[T any] struct {
	items   []T
	changes Signal[Change[T]]
}

// NewList creates a list holding items
func NewList[T any](items ...T) *List[T] {
	l := &List[T]{}
	l.items = append(l.items, items...)
	return l
}

// Len returns the number of items
func (l *List[T]) Len() int {
	return len(l.items)
}

// At returns the item at index i
func (l *List[T]) At(i int) T {
	return l.items[i]
}

// Items returns a copy of the items
func (l *List[T]) Items() []T {
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

// Subscribe registers fn for every change of the list
func (l *List[T]) Subscribe(fn func(Change[T])) *Subscription {
	return l.changes.Subscribe(fn)
}

// Subscribers returns the number of attached change handlers
func (l *List[T]) Subscribers() int {
	return l.changes.Len()
}

// Append adds items at the end
func (l *List[T]) Append(items ...T) {
	l.Insert(len(l.items), items...)
}

// Insert adds items starting at index
func (l *List[T]) Insert(index int, items ...T) {
	if index < 0 || index > len(l.items) {
		panic(fmt.Sprintf("observable: insert index %d out of range [0,%d]", index, len(l.items)))
	}
	if len(items) == 0 {
		return
	}
	added := make([]T, len(items))
	copy(added, items)

	l.items = append(l.items[:index], append(added, l.items[index:]...)...)
	l.changes.Emit(Change[T]{Action: ActionAdd, Index: index, Items: added})
}

// RemoveAt removes the item at index
func (l *List[T]) RemoveAt(index int) {
	l.RemoveRange(index, 1)
}

// RemoveRange removes count items starting at index
func (l *List[T]) RemoveRange(index, count int) {
	if index < 0 || count < 0 || index+count > len(l.items) {
		panic(fmt.Sprintf("observable: remove range [%d,%d) out of range [0,%d)", index, index+count, len(l.items)))
	}
	if count == 0 {
		return
	}
	removed := make([]T, count)
	copy(removed, l.items[index:index+count])

	l.items = append(l.items[:index], l.items[index+count:]...)
	l.changes.Emit(Change[T]{Action: ActionRemove, Index: index, Items: removed})
}

// IndexFunc returns the index of the first item matching fn, or -1
func (l *List[T]) IndexFunc(fn func(T) bool) int {
	for i, item := range l.items {
		if fn(item) {
			return i
		}
	}
	return -1
}

// Clear removes every item
func (l *List[T]) Clear() {
	l.Reset(nil)
}

// Reset replaces the contents with items
func (l *List[T]) Reset(items []T) {
	l.items = append([]T(nil), items...)
	l.changes.Emit(Change[T]{Action: ActionReset, Index: 0})
}
