package decorators

import (
	"fmt"

	"github.com/hasbyte1/go-collection-utils/collections"
)

// Predicated admits only elements for which its predicate returns true.
//
// The elements already in the wrapped collection are checked once, when the
// decorator is built; after that every Add and AddAll candidate is checked
// before it reaches the wrapped collection.
type Predicated[T comparable] struct {
	Wrapper[T]
	predicate func(T) bool
}

var _ collections.Collection[int] = (*Predicated[int])(nil)

// NewPredicated wraps c so that every element satisfies pred.
//
// It fails with ErrInvalidArgument when c or pred is nil, or when an element
// already in c fails pred; in the last case the error also matches
// ErrPredicateRejected.
//
//	_, err := decorators.NewPredicated(collections.New("a", "bb", "ccc"),
//	    func(s string) bool { return len(s) <= 2 })
//	errors.Is(err, collections.ErrPredicateRejected) // → true
func NewPredicated[T comparable](c collections.Collection[T], pred func(T) bool) (*Predicated[T], error) {
	w, err := wrap(c)
	if err != nil {
		return nil, err
	}
	if pred == nil {
		return nil, fmt.Errorf("%w: predicate must not be nil", collections.ErrInvalidArgument)
	}
	p := &Predicated[T]{Wrapper: w, predicate: pred}
	for _, item := range c.ToSlice() {
		if err := p.validate(item); err != nil {
			return nil, fmt.Errorf("%w: existing element: %w", collections.ErrInvalidArgument, err)
		}
	}
	return p, nil
}

// Add checks item and then adds it.
func (p *Predicated[T]) Add(item T) (bool, error) {
	if err := p.validate(item); err != nil {
		return false, err
	}
	return p.collection.Add(item)
}

// AddAll checks every one of items and adds them only if all pass.
func (p *Predicated[T]) AddAll(items ...T) (bool, error) {
	for _, item := range items {
		if err := p.validate(item); err != nil {
			return false, err
		}
	}
	return p.collection.AddAll(items...)
}

func (p *Predicated[T]) validate(item T) error {
	if !p.predicate(item) {
		return fmt.Errorf("%w: %v", collections.ErrPredicateRejected, item)
	}
	return nil
}
