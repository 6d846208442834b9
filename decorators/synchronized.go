package decorators

import (
	"fmt"
	"sync"

	"github.com/hasbyte1/go-collection-utils/collections"
	"github.com/hasbyte1/go-collection-utils/iterators"
)

// Synchronized serialises access to the wrapped collection with a single
// mutex. Each call is atomic with respect to other calls through the same
// Synchronized; a sequence of calls is not.
//
// Iterator is the one exception: it is not guarded, and the iterator it
// returns is the wrapped collection's own. To iterate while other goroutines
// may write, hold the lock from [Synchronized.Locker] for the whole traversal,
// or use [Synchronized.Do]:
//
//	s.Do(func(c collections.Collection[string]) error {
//	    for v := range iterators.Seq(c.Iterator()) {
//	        …
//	    }
//	    return nil
//	})
//
// The mutex is not reentrant: while holding Locker, call only Iterator.
// Errors from the wrapped collection are returned unchanged.
type Synchronized[T comparable] struct {
	mu         sync.Mutex
	collection collections.Collection[T]
}

var _ collections.Collection[int] = (*Synchronized[int])(nil)

// NewSynchronized wraps c. It fails with ErrInvalidArgument when c is nil.
func NewSynchronized[T comparable](c collections.Collection[T]) (*Synchronized[T], error) {
	if isNil(c) {
		return nil, fmt.Errorf("%w: collection must not be nil", collections.ErrInvalidArgument)
	}
	return &Synchronized[T]{collection: c}, nil
}

// Locker returns the mutex guarding every call but Iterator.
func (s *Synchronized[T]) Locker() sync.Locker { return &s.mu }

// Do runs fn with the lock held, handing it the wrapped collection.
// fn must not call back into s.
func (s *Synchronized[T]) Do(fn func(c collections.Collection[T]) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.collection)
}

// Iterator returns the wrapped collection's iterator without locking.
func (s *Synchronized[T]) Iterator() iterators.Iterator[T] { return s.collection.Iterator() }

func (s *Synchronized[T]) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.collection.Size()
}

func (s *Synchronized[T]) IsEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.collection.IsEmpty()
}

func (s *Synchronized[T]) Contains(item T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.collection.Contains(item)
}

func (s *Synchronized[T]) ContainsAll(items ...T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.collection.ContainsAll(items...)
}

func (s *Synchronized[T]) ToSlice() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.collection.ToSlice()
}

func (s *Synchronized[T]) Add(item T) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.collection.Add(item)
}

func (s *Synchronized[T]) AddAll(items ...T) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.collection.AddAll(items...)
}

func (s *Synchronized[T]) Remove(item T) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.collection.Remove(item)
}

func (s *Synchronized[T]) RemoveAll(items ...T) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.collection.RemoveAll(items...)
}

func (s *Synchronized[T]) RetainAll(items ...T) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.collection.RetainAll(items...)
}

func (s *Synchronized[T]) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.collection.Clear()
}

func (s *Synchronized[T]) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fmt.Sprint(s.collection)
}
