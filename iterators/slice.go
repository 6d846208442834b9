package iterators

// sliceIterator walks a slice without copying it.
type sliceIterator[T any] struct {
	items []T
	pos   int
}

// FromSlice returns a read-only [Iterator] over items. Remove always returns
// ErrUnsupportedOperation since a slice cannot shrink in place.
func FromSlice[T any](items []T) Iterator[T] {
	return &sliceIterator[T]{items: items}
}

func (s *sliceIterator[T]) HasNext() bool { return s.pos < len(s.items) }

func (s *sliceIterator[T]) Next() (T, error) {
	if s.pos >= len(s.items) {
		var zero T
		return zero, ErrNoSuchElement
	}
	v := s.items[s.pos]
	s.pos++
	return v, nil
}

func (s *sliceIterator[T]) Remove() error { return ErrUnsupportedOperation }

type emptyIterator[T any] struct{}

// Empty returns an exhausted iterator.
func Empty[T any]() Iterator[T] { return emptyIterator[T]{} }

func (emptyIterator[T]) HasNext() bool { return false }

func (emptyIterator[T]) Next() (T, error) {
	var zero T
	return zero, ErrNoSuchElement
}

func (emptyIterator[T]) Remove() error { return ErrUnsupportedOperation }
