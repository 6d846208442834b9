package iterators

type unmodifiableIterator[T any] struct {
	it Iterator[T]
}

// Unmodifiable wraps it so that Remove always returns
// ErrUnsupportedOperation. Traversal passes through unchanged.
func Unmodifiable[T any](it Iterator[T]) Iterator[T] {
	if u, ok := it.(*unmodifiableIterator[T]); ok {
		return u
	}
	return &unmodifiableIterator[T]{it: it}
}

func (u *unmodifiableIterator[T]) HasNext() bool { return u.it.HasNext() }

func (u *unmodifiableIterator[T]) Next() (T, error) { return u.it.Next() }

func (u *unmodifiableIterator[T]) Remove() error { return ErrUnsupportedOperation }
