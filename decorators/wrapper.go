package decorators

import (
	"fmt"
	"reflect"

	"github.com/hasbyte1/go-collection-utils/collections"
	"github.com/hasbyte1/go-collection-utils/iterators"
)

// Wrapper forwards every call to the collection it wraps. The other
// decorators embed it and override the calls they guard.
type Wrapper[T comparable] struct {
	collection collections.Collection[T]
}

var _ collections.Collection[int] = (*Wrapper[int])(nil)

// NewWrapper wraps c. It fails with ErrInvalidArgument when c is nil.
func NewWrapper[T comparable](c collections.Collection[T]) (*Wrapper[T], error) {
	w, err := wrap(c)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func wrap[T comparable](c collections.Collection[T]) (Wrapper[T], error) {
	if isNil(c) {
		return Wrapper[T]{}, fmt.Errorf("%w: collection must not be nil", collections.ErrInvalidArgument)
	}
	return Wrapper[T]{collection: c}, nil
}

// isNil also catches a nil pointer stored in a non-nil interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

func (w *Wrapper[T]) Size() int { return w.collection.Size() }

func (w *Wrapper[T]) IsEmpty() bool { return w.collection.IsEmpty() }

func (w *Wrapper[T]) Contains(item T) bool { return w.collection.Contains(item) }

func (w *Wrapper[T]) ContainsAll(items ...T) bool { return w.collection.ContainsAll(items...) }

func (w *Wrapper[T]) ToSlice() []T { return w.collection.ToSlice() }

func (w *Wrapper[T]) Iterator() iterators.Iterator[T] { return w.collection.Iterator() }

func (w *Wrapper[T]) Add(item T) (bool, error) { return w.collection.Add(item) }

func (w *Wrapper[T]) AddAll(items ...T) (bool, error) { return w.collection.AddAll(items...) }

func (w *Wrapper[T]) Remove(item T) (bool, error) { return w.collection.Remove(item) }

func (w *Wrapper[T]) RemoveAll(items ...T) (bool, error) { return w.collection.RemoveAll(items...) }

func (w *Wrapper[T]) RetainAll(items ...T) (bool, error) { return w.collection.RetainAll(items...) }

func (w *Wrapper[T]) Clear() error { return w.collection.Clear() }

// String formats the wrapped collection.
func (w *Wrapper[T]) String() string { return fmt.Sprint(w.collection) }
