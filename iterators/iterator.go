package iterators

import "iter"

// Iterator is a forward cursor over a sequence of T.
type Iterator[T any] interface {
	// HasNext reports whether Next would return an element.
	HasNext() bool

	// Next returns the next element, or ErrNoSuchElement when exhausted.
	Next() (T, error)

	// Remove deletes the element last returned by Next from the underlying
	// source. Implementations that cannot do this return
	// ErrUnsupportedOperation.
	Remove() error
}

// ListIterator is an [Iterator] that can also move backwards.
type ListIterator[T any] interface {
	Iterator[T]

	// HasPrevious reports whether Previous would return an element.
	HasPrevious() bool

	// Previous returns the previous element, or ErrNoSuchElement at the start.
	Previous() (T, error)

	// NextIndex is the index of the element Next would return.
	NextIndex() int

	// PreviousIndex is the index of the element Previous would return,
	// or -1 at the start.
	PreviousIndex() int

	// Set replaces the element last returned by Next or Previous.
	Set(item T) error

	// Add inserts item immediately before the element Next would return.
	Add(item T) error
}

// Enumeration is a forward-only cursor without removal.
type Enumeration[T any] interface {
	HasMoreElements() bool
	NextElement() (T, error)
}

// Seq adapts it to a range-over-func sequence. The sequence consumes it.
func Seq[T any](it Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		if it == nil {
			return
		}
		for it.HasNext() {
			v, err := it.Next()
			if err != nil || !yield(v) {
				return
			}
		}
	}
}

// Drain consumes it and returns every remaining element in order.
func Drain[T any](it Iterator[T]) []T {
	var out []T
	for v := range Seq(it) {
		out = append(out, v)
	}
	return out
}
