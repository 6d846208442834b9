package collections

import "github.com/hasbyte1/go-collection-utils/iterators"

// Iterable is anything that can hand out a fresh forward iterator.
// The traversal helpers in this package accept it.
type Iterable[T any] interface {
	Iterator() iterators.Iterator[T]
}

// Enumerable is the read half of [Collection].
//
// Accept Enumerable in your own functions when you only need to inspect a
// collection, so that read-only wrappers can be passed in as well.
type Enumerable[T comparable] interface {
	Iterable[T]

	// Size returns the number of elements, counting duplicates.
	Size() int

	// IsEmpty reports whether Size is 0.
	IsEmpty() bool

	// Contains reports whether at least one element == item.
	Contains(item T) bool

	// ContainsAll reports whether every one of items is contained.
	ContainsAll(items ...T) bool

	// ToSlice returns the elements in iteration order as a new slice.
	ToSlice() []T
}

// Collection is the mutable multiset contract shared by [List] and every
// decorator in the decorators package.
//
// Mutators report whether the collection changed. A non-nil error means
// nothing was changed by that call.
//
// The algebra helpers count elements in a map. When T is an interface type
// the dynamic type of every element must be hashable as well.
type Collection[T comparable] interface {
	Enumerable[T]

	// Add inserts item.
	Add(item T) (bool, error)

	// AddAll inserts items in order.
	AddAll(items ...T) (bool, error)

	// Remove deletes one occurrence of item.
	Remove(item T) (bool, error)

	// RemoveAll deletes every occurrence of each of items.
	RemoveAll(items ...T) (bool, error)

	// RetainAll deletes every element that is not one of items.
	RetainAll(items ...T) (bool, error)

	// Clear deletes every element.
	Clear() error
}

// Sink receives elements produced by the traversal helpers.
// Every [Collection] is a Sink.
type Sink[T any] interface {
	Add(item T) (bool, error)
}
