package iterators

// ListIteratorWrapper gives a forward-only [Iterator] a [ListIterator] face
// by remembering every element it has pulled from the source.
//
// Memory grows with the number of elements consumed. The wrapper is
// read-only: Remove, Set and Add return ErrUnsupportedOperation.
type ListIteratorWrapper[T any] struct {
	it     Iterator[T]
	cache  []T
	cursor int
}

// NewListIteratorWrapper wraps it. A nil it behaves like [Empty].
func NewListIteratorWrapper[T any](it Iterator[T]) *ListIteratorWrapper[T] {
	if it == nil {
		it = Empty[T]()
	}
	return &ListIteratorWrapper[T]{it: it}
}

// HasNext reports whether a cached or source element is still ahead.
func (w *ListIteratorWrapper[T]) HasNext() bool {
	return w.cursor < len(w.cache) || w.it.HasNext()
}

// Next returns the element ahead of the cursor, pulling from the source once
// the cache is exhausted.
func (w *ListIteratorWrapper[T]) Next() (T, error) {
	if w.cursor < len(w.cache) {
		v := w.cache[w.cursor]
		w.cursor++
		return v, nil
	}
	v, err := w.it.Next()
	if err != nil {
		return v, err
	}
	w.cache = append(w.cache, v)
	w.cursor++
	return v, nil
}

func (w *ListIteratorWrapper[T]) HasPrevious() bool { return w.cursor > 0 }

// Previous steps back over the cache.
func (w *ListIteratorWrapper[T]) Previous() (T, error) {
	if w.cursor == 0 {
		var zero T
		return zero, ErrNoSuchElement
	}
	w.cursor--
	return w.cache[w.cursor], nil
}

func (w *ListIteratorWrapper[T]) NextIndex() int { return w.cursor }

func (w *ListIteratorWrapper[T]) PreviousIndex() int { return w.cursor - 1 }

func (w *ListIteratorWrapper[T]) Remove() error { return ErrUnsupportedOperation }

func (w *ListIteratorWrapper[T]) Set(T) error { return ErrUnsupportedOperation }

func (w *ListIteratorWrapper[T]) Add(T) error { return ErrUnsupportedOperation }

var _ ListIterator[int] = (*ListIteratorWrapper[int])(nil)
