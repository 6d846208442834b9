package collections

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/hasbyte1/go-collection-utils/arr"
	"github.com/hasbyte1/go-collection-utils/iterators"
)

// List is an ordered, slice-backed [Collection] that permits duplicates.
//
// Unlike the algebra helpers, which always return a fresh List, a List is
// mutated in place by Add, Remove and friends. It is not safe for concurrent
// use; wrap it with decorators.NewSynchronized when it is shared.
//
// # Creating a list
//
//	l := collections.New(1, 2, 3)
//	l := collections.From([]string{"a", "b"})
//	l := collections.Empty[int]()
//
// Element equality is Go's ==, so two nil pointers (or two nil interface
// values) are the same element.
type List[T comparable] struct {
	items []T
}

var _ Collection[int] = (*List[int])(nil)

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a List from a variadic list of items (copied).
func New[T comparable](items ...T) *List[T] {
	return From(items)
}

// From creates a List from a slice (the slice is copied).
func From[T comparable](items []T) *List[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &List[T]{items: dst}
}

// Empty creates an empty List of type T.
func Empty[T comparable]() *List[T] {
	return &List[T]{items: []T{}}
}

// CollectList drains it into a new List.
func CollectList[T comparable](it iterators.Iterator[T]) *List[T] {
	l := Empty[T]()
	l.items = append(l.items, iterators.Drain(it)...)
	return l
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// All returns a copy of the underlying slice.
func (l *List[T]) All() []T {
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

// ToSlice is an alias for [List.All].
func (l *List[T]) ToSlice() []T { return l.All() }

// ToJSON serialises the items to a JSON array.
func (l *List[T]) ToJSON() ([]byte, error) {
	return json.Marshal(l.items)
}

// ToYAML serialises the items to a YAML sequence.
func (l *List[T]) ToYAML() ([]byte, error) {
	return yaml.Marshal(l.items)
}

// Size returns the number of items, counting duplicates.
func (l *List[T]) Size() int { return len(l.items) }

// Count is an alias for [List.Size].
func (l *List[T]) Count() int { return len(l.items) }

// IsEmpty reports whether the list contains no items.
func (l *List[T]) IsEmpty() bool { return len(l.items) == 0 }

// IsNotEmpty reports whether the list has at least one item.
func (l *List[T]) IsNotEmpty() bool { return len(l.items) > 0 }

// Get returns the item at index together with a presence flag.
// Returns the zero value and false when index is out of range.
func (l *List[T]) Get(index int) (T, bool) {
	var zero T
	if index < 0 || index >= len(l.items) {
		return zero, false
	}
	return l.items[index], true
}

// Set replaces the item at index and returns the previous value.
func (l *List[T]) Set(index int, item T) (T, error) {
	old, ok := l.Get(index)
	if !ok {
		return old, fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	l.items[index] = item
	return old, nil
}

// IndexOf returns the position of the first occurrence of item, or -1.
func (l *List[T]) IndexOf(item T) int { return arr.IndexOf(l.items, item) }

// Contains reports whether item occurs at least once.
func (l *List[T]) Contains(item T) bool { return arr.ContainsValue(l.items, item) }

// ContainsAll reports whether every one of items occurs at least once.
func (l *List[T]) ContainsAll(items ...T) bool {
	return !arr.Contains(items, func(item T) bool { return !l.Contains(item) })
}

// String returns a JSON representation of the list.
// It implements [fmt.Stringer].
func (l *List[T]) String() string {
	b, err := l.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", l.items)
	}
	return string(b)
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration & search
// ─────────────────────────────────────────────────────────────────────────────

// Each calls fn(item, index) for every item.
func (l *List[T]) Each(fn func(T, int)) {
	for i, item := range l.items {
		fn(item, i)
	}
}

// First returns the first item, optionally matching fns[0].
// Returns the zero value and false when the list is empty or no item
// satisfies the predicate.
func (l *List[T]) First(fns ...func(T) bool) (T, bool) {
	return arr.First(l.items, fns...)
}

// Filter returns a new List with only the items for which fn(item, index)
// returns true.
func (l *List[T]) Filter(fn func(T, int) bool) *List[T] {
	return &List[T]{items: arr.Filter(l.items, fn)}
}

// Reject is the complement of [List.Filter].
func (l *List[T]) Reject(fn func(T, int) bool) *List[T] {
	return &List[T]{items: arr.Reject(l.items, fn)}
}

// Reverse returns a new List with items in reversed order.
func (l *List[T]) Reverse() *List[T] {
	return &List[T]{items: arr.Reverse(l.items)}
}

// Iterator returns a live iterator over the list. Its Remove deletes from the
// list.
func (l *List[T]) Iterator() iterators.Iterator[T] { return l.ListIterator() }

// ListIterator returns a live bidirectional iterator positioned before the
// first item.
func (l *List[T]) ListIterator() iterators.ListIterator[T] {
	return &listIterator[T]{list: l, lastRet: -1}
}

// ─────────────────────────────────────────────────────────────────────────────
// Mutation
// ─────────────────────────────────────────────────────────────────────────────

// Add appends item. It always succeeds.
func (l *List[T]) Add(item T) (bool, error) {
	l.items = append(l.items, item)
	return true, nil
}

// AddAll appends items in order.
func (l *List[T]) AddAll(items ...T) (bool, error) {
	l.items = append(l.items, items...)
	return len(items) > 0, nil
}

// Remove deletes the first occurrence of item.
func (l *List[T]) Remove(item T) (bool, error) {
	i := l.IndexOf(item)
	if i < 0 {
		return false, nil
	}
	l.removeAt(i)
	return true, nil
}

// RemoveAll deletes every occurrence of each of items.
func (l *List[T]) RemoveAll(items ...T) (bool, error) {
	return l.keep(func(item T) bool { return !arr.ContainsValue(items, item) }), nil
}

// RetainAll deletes every item that is not one of items.
func (l *List[T]) RetainAll(items ...T) (bool, error) {
	return l.keep(func(item T) bool { return arr.ContainsValue(items, item) }), nil
}

// Clear deletes every item.
func (l *List[T]) Clear() error {
	clear(l.items)
	l.items = l.items[:0]
	return nil
}

func (l *List[T]) keep(fn func(T) bool) bool {
	before := len(l.items)
	kept := l.items[:0]
	for _, item := range l.items {
		if fn(item) {
			kept = append(kept, item)
		}
	}
	clear(l.items[len(kept):])
	l.items = kept
	return len(kept) != before
}

func (l *List[T]) removeAt(i int) {
	copy(l.items[i:], l.items[i+1:])
	var zero T
	l.items[len(l.items)-1] = zero
	l.items = l.items[:len(l.items)-1]
}

func (l *List[T]) insertAt(i int, item T) {
	var zero T
	l.items = append(l.items, zero)
	copy(l.items[i+1:], l.items[i:])
	l.items[i] = item
}
