package decorators

import (
	"github.com/hasbyte1/go-collection-utils/collections"
	"github.com/hasbyte1/go-collection-utils/iterators"
)

// Unmodifiable is a read-only view. Every mutator, including Remove on its
// iterator, fails with ErrUnsupportedOperation; reads pass through.
type Unmodifiable[T comparable] struct {
	Wrapper[T]
}

var _ collections.Collection[int] = (*Unmodifiable[int])(nil)

// NewUnmodifiable wraps c. It fails with ErrInvalidArgument when c is nil.
// An Unmodifiable is returned as is.
func NewUnmodifiable[T comparable](c collections.Collection[T]) (*Unmodifiable[T], error) {
	if u, ok := c.(*Unmodifiable[T]); ok && u != nil {
		return u, nil
	}
	w, err := wrap(c)
	if err != nil {
		return nil, err
	}
	return &Unmodifiable[T]{Wrapper: w}, nil
}

// Iterator returns an iterator whose Remove always fails.
func (u *Unmodifiable[T]) Iterator() iterators.Iterator[T] {
	return iterators.Unmodifiable(u.collection.Iterator())
}

func (u *Unmodifiable[T]) Add(T) (bool, error) { return false, collections.ErrUnsupportedOperation }

func (u *Unmodifiable[T]) AddAll(...T) (bool, error) {
	return false, collections.ErrUnsupportedOperation
}

func (u *Unmodifiable[T]) Remove(T) (bool, error) { return false, collections.ErrUnsupportedOperation }

func (u *Unmodifiable[T]) RemoveAll(...T) (bool, error) {
	return false, collections.ErrUnsupportedOperation
}

func (u *Unmodifiable[T]) RetainAll(...T) (bool, error) {
	return false, collections.ErrUnsupportedOperation
}

func (u *Unmodifiable[T]) Clear() error { return collections.ErrUnsupportedOperation }
