package layerkit

import "slices"

// List is an observable ordered collection. Every change installs a new
// backing slice, so a slice returned by Items is never modified afterwards
// and can be read while the list is being edited.
type List[T any] struct {
	state *State[[]T]
}

// NewList returns a list holding a copy of items.
func NewList[T any](items []T) *List[T] {
	return &List[T]{state: NewState(slices.Clone(nonNil(items)))}
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

// Items returns the current snapshot. Callers must not modify it.
func (l *List[T]) Items() []T {
	return l.state.Get()
}

// Len returns the number of items in the current snapshot.
func (l *List[T]) Len() int {
	return len(l.state.Get())
}

// Update replaces the contents with fn applied to a copy of the current
// snapshot.
func (l *List[T]) Update(fn func([]T) []T) {
	next := fn(slices.Clone(l.state.Get()))
	l.state.Set(nonNil(next))
}

// Replace sets the contents to a copy of items.
func (l *List[T]) Replace(items []T) {
	l.state.Set(slices.Clone(nonNil(items)))
}

// Append adds items at the end.
func (l *List[T]) Append(items ...T) {
	if len(items) == 0 {
		return
	}
	l.Update(func(cur []T) []T { return append(cur, items...) })
}

// Prepend adds items at the front, keeping their order.
func (l *List[T]) Prepend(items ...T) {
	if len(items) == 0 {
		return
	}
	l.Update(func(cur []T) []T { return append(slices.Clone(items), cur...) })
}

// RemoveFunc drops every item for which del returns true and reports how
// many were removed. The list is left untouched when nothing matches.
func (l *List[T]) RemoveFunc(del func(T) bool) int {
	cur := l.state.Get()
	next := make([]T, 0, len(cur))
	for _, v := range cur {
		if !del(v) {
			next = append(next, v)
		}
	}
	removed := len(cur) - len(next)
	if removed > 0 {
		l.state.Set(next)
	}
	return removed
}

// Move relocates the item at from to index to. It reports false when
// either index is out of range.
func (l *List[T]) Move(from, to int) bool {
	n := l.Len()
	if from < 0 || from >= n || to < 0 || to >= n {
		return false
	}
	if from == to {
		return true
	}
	l.Update(func(cur []T) []T {
		v := cur[from]
		cur = slices.Delete(cur, from, from+1)
		return slices.Insert(cur, to, v)
	})
	return true
}

// Bind registers fn to receive every new snapshot.
func (l *List[T]) Bind(fn func([]T)) Unbind {
	return l.state.Bind(fn)
}
