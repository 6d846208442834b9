package decorators

import (
	"fmt"

	"github.com/hasbyte1/go-collection-utils/collections"
)

// Bounded refuses insertions that would take the wrapped collection past a
// fixed number of elements.
//
// Only elements not yet contained count towards the bound, so adding an
// element that is already present always passes the check. Over a bag such
// as collections.List the duplicate is still stored, so the bound limits
// distinct additions rather than Size.
type Bounded[T comparable] struct {
	Wrapper[T]
	maxSize int
}

var _ collections.Collection[int] = (*Bounded[int])(nil)

// NewBounded wraps c with a bound of maxSize elements. It fails with
// ErrInvalidArgument when c is nil or maxSize is negative. A collection that
// is already larger than maxSize is accepted but rejects every new element.
func NewBounded[T comparable](c collections.Collection[T], maxSize int) (*Bounded[T], error) {
	w, err := wrap(c)
	if err != nil {
		return nil, err
	}
	if maxSize < 0 {
		return nil, fmt.Errorf("%w: negative maximum size %d", collections.ErrInvalidArgument, maxSize)
	}
	return &Bounded[T]{Wrapper: w, maxSize: maxSize}, nil
}

// MaxSize returns the bound.
func (b *Bounded[T]) MaxSize() int { return b.maxSize }

// IsFull reports whether no new element can be added.
func (b *Bounded[T]) IsFull() bool { return b.collection.Size() >= b.maxSize }

// Add adds item, failing with ErrCapacityExceeded when item is new and the
// collection is full.
func (b *Bounded[T]) Add(item T) (bool, error) {
	if !b.collection.Contains(item) {
		if err := b.validate(1); err != nil {
			return false, err
		}
	}
	return b.collection.Add(item)
}

// AddAll counts the items not yet contained and fails with
// ErrCapacityExceeded, adding nothing, when that many new elements would not
// fit.
func (b *Bounded[T]) AddAll(items ...T) (bool, error) {
	delta := 0
	for _, item := range items {
		if !b.collection.Contains(item) {
			delta++
		}
	}
	if err := b.validate(delta); err != nil {
		return false, err
	}
	return b.collection.AddAll(items...)
}

func (b *Bounded[T]) validate(delta int) error {
	if size := b.collection.Size(); size+delta > b.maxSize {
		return fmt.Errorf("%w: %d + %d > %d", collections.ErrCapacityExceeded, size, delta, b.maxSize)
	}
	return nil
}
