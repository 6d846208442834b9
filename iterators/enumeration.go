package iterators

type enumerationIterator[T any] struct {
	e Enumeration[T]
}

// FromEnumeration adapts e to an [Iterator]. Remove is unsupported.
func FromEnumeration[T any](e Enumeration[T]) Iterator[T] {
	return &enumerationIterator[T]{e: e}
}

func (it *enumerationIterator[T]) HasNext() bool { return it.e.HasMoreElements() }

func (it *enumerationIterator[T]) Next() (T, error) { return it.e.NextElement() }

func (it *enumerationIterator[T]) Remove() error { return ErrUnsupportedOperation }

type sliceEnumeration[T any] struct {
	items []T
	pos   int
}

// EnumerationOf returns an [Enumeration] over items.
func EnumerationOf[T any](items ...T) Enumeration[T] {
	return &sliceEnumeration[T]{items: items}
}

func (s *sliceEnumeration[T]) HasMoreElements() bool { return s.pos < len(s.items) }

func (s *sliceEnumeration[T]) NextElement() (T, error) {
	if s.pos >= len(s.items) {
		var zero T
		return zero, ErrNoSuchElement
	}
	v := s.items[s.pos]
	s.pos++
	return v, nil
}
