package collections

import (
	"fmt"

	"github.com/hasbyte1/go-collection-utils/arr"
	"github.com/hasbyte1/go-collection-utils/iterators"
)

// This file contains traversal helpers that work on any Iterable, including
// ones whose element type is not comparable. Helpers that produce a new
// element type are package-level functions because Go methods cannot
// introduce type parameters:
//
//	names := collections.Collect(users, func(u User) string { return u.Name })

// Find returns the first element of col, in iteration order, that satisfies
// pred. It returns false when col or pred is nil or nothing matches.
func Find[T any](col Iterable[T], pred func(T) bool) (T, bool) {
	var zero T
	if col == nil || pred == nil {
		return zero, false
	}
	for item := range iterators.Seq(col.Iterator()) {
		if pred(item) {
			return item, true
		}
	}
	return zero, false
}

// Exists reports whether any element of col satisfies pred.
func Exists[T any](col Iterable[T], pred func(T) bool) bool {
	_, ok := Find(col, pred)
	return ok
}

// CountMatches returns the number of elements of col satisfying pred.
func CountMatches[T any](col Iterable[T], pred func(T) bool) int {
	if pred == nil {
		return 0
	}
	n := 0
	each(col, func(item T) {
		if pred(item) {
			n++
		}
	})
	return n
}

// ForAllDo calls action once for every element of col, in iteration order.
// A nil col is a no-op.
func ForAllDo[T any](col Iterable[T], action func(T)) {
	if action == nil {
		return
	}
	each(col, action)
}

// Select returns every element of col satisfying pred, in iteration order.
func Select[T any](col Iterable[T], pred func(T) bool) []T {
	out := make([]T, 0)
	if pred == nil {
		return out
	}
	each(col, func(item T) {
		if pred(item) {
			out = append(out, item)
		}
	})
	return out
}

// SelectRejected returns every element of col that does not satisfy pred.
func SelectRejected[T any](col Iterable[T], pred func(T) bool) []T {
	if pred == nil {
		return toSliceNonNil(col)
	}
	return Select(col, func(item T) bool { return !pred(item) })
}

// SelectInto adds every element of col satisfying pred to out, in iteration
// order. The first error returned by out stops the traversal and is
// returned; elements added before it stay added.
func SelectInto[T any](col Iterable[T], pred func(T) bool, out Sink[T]) error {
	if out == nil {
		return fmt.Errorf("%w: nil destination", ErrInvalidArgument)
	}
	if col == nil || pred == nil {
		return nil
	}
	return drainInto(col.Iterator(), out, func(item T) (T, bool) { return item, pred(item) })
}

// Collect applies fn to every element of col and returns the results in
// order.
func Collect[T, U any](col Iterable[T], fn func(T) U) []U {
	if col == nil {
		return make([]U, 0)
	}
	return CollectIterator(col.Iterator(), fn)
}

// CollectIterator is [Collect] over an iterator. It consumes it.
func CollectIterator[T, U any](it iterators.Iterator[T], fn func(T) U) []U {
	if it == nil || fn == nil {
		return make([]U, 0)
	}
	return arr.Map(iterators.Drain(it), func(item T, _ int) U { return fn(item) })
}

// CollectInto applies fn to every element of col and adds the results to out.
func CollectInto[T, U any](col Iterable[T], fn func(T) U, out Sink[U]) error {
	if col == nil {
		if out == nil {
			return fmt.Errorf("%w: nil destination", ErrInvalidArgument)
		}
		return nil
	}
	return CollectIteratorInto(col.Iterator(), fn, out)
}

// CollectIteratorInto is [CollectInto] over an iterator. It consumes it.
func CollectIteratorInto[T, U any](it iterators.Iterator[T], fn func(T) U, out Sink[U]) error {
	if out == nil {
		return fmt.Errorf("%w: nil destination", ErrInvalidArgument)
	}
	if it == nil || fn == nil {
		return nil
	}
	return drainInto(it, out, func(item T) (U, bool) { return fn(item), true })
}

// AddAllFromIterator adds every remaining element of it to target, in order.
func AddAllFromIterator[T any](target Sink[T], it iterators.Iterator[T]) error {
	if target == nil {
		return fmt.Errorf("%w: nil target", ErrInvalidArgument)
	}
	if it == nil {
		return nil
	}
	return drainInto(it, target, func(item T) (T, bool) { return item, true })
}

// AddAllFromEnumeration adds every remaining element of e to target, in order.
func AddAllFromEnumeration[T any](target Sink[T], e iterators.Enumeration[T]) error {
	if e == nil {
		return AddAllFromIterator[T](target, nil)
	}
	return AddAllFromIterator(target, iterators.FromEnumeration(e))
}

// AddAllFromSlice adds items to target one by one, in order.
func AddAllFromSlice[T any](target Sink[T], items ...T) error {
	return AddAllFromIterator(target, iterators.FromSlice(items))
}

// drainInto walks it and adds the mapped elements that fn keeps to out.
func drainInto[T, U any](it iterators.Iterator[T], out Sink[U], fn func(T) (U, bool)) error {
	for it.HasNext() {
		item, err := it.Next()
		if err != nil {
			return err
		}
		if v, ok := fn(item); ok {
			if _, err := out.Add(v); err != nil {
				return err
			}
		}
	}
	return nil
}

func toSliceNonNil[T any](col Iterable[T]) []T {
	out := toSlice(col)
	if out == nil {
		return make([]T, 0)
	}
	return out
}
