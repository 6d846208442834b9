package collections

import (
	"github.com/hasbyte1/go-collection-utils/arr"
	"github.com/hasbyte1/go-collection-utils/iterators"
)

// This file holds the multiset (bag) algebra. Every function treats its
// arguments as bags: order is ignored, duplicates count. A nil Iterable is an
// empty bag.
//
// Results of Union, Intersection and Disjunction list the distinct elements in
// the order they are first met scanning a and then b, each repeated
// contiguously as many times as its computed count:
//
//	a := collections.New(1, 1, 2, 3)
//	b := collections.New(2, 2, 3, 3, 3)
//	collections.Union(a, b).All()        // → [1 1 2 2 3 3 3]
//	collections.Intersection(a, b).All() // → [2 3]
//	collections.Disjunction(a, b).All()  // → [1 1 2 3 3]
//	collections.Subtract(a, b).All()     // → [1 1]

// CardinalityMap maps each distinct element to its number of occurrences.
// A missing key means 0 occurrences, which is what indexing a Go map yields.
type CardinalityMap[T comparable] map[T]int

// Frequency returns the count recorded for item, or 0.
func (m CardinalityMap[T]) Frequency(item T) int { return m[item] }

// Total returns the sum of all counts, i.e. the size of the counted bag.
func (m CardinalityMap[T]) Total() int {
	n := 0
	for _, c := range m {
		n += c
	}
	return n
}

// Cardinalities counts every element of col.
//
// The counts live in a map, so every element must be hashable at run time.
// With T = any an element whose dynamic type is a slice, map or func
// panics; [Cardinality] compares with == and has no such limit.
func Cardinalities[T comparable](col Iterable[T]) CardinalityMap[T] {
	return countSlice(toSlice(col))
}

// Frequency returns the count of item in m, or 0 when m has no entry for it.
func Frequency[T comparable](item T, m CardinalityMap[T]) int {
	return m.Frequency(item)
}

// Cardinality returns the number of occurrences of item in col by a linear
// scan.
func Cardinality[T comparable](item T, col Iterable[T]) int {
	n := 0
	each(col, func(elt T) {
		if elt == item {
			n++
		}
	})
	return n
}

// Union returns a bag in which every element occurs max(count in a,
// count in b) times.
//
// Union, Intersection, Disjunction and the Is*Collection checks count
// through [Cardinalities] and share its hashability requirement.
func Union[T comparable](a, b Iterable[T]) *List[T] {
	return combine(a, b, func(x, y int) int { return max(x, y) })
}

// Intersection returns a bag in which every element occurs min(count in a,
// count in b) times.
func Intersection[T comparable](a, b Iterable[T]) *List[T] {
	return combine(a, b, func(x, y int) int { return min(x, y) })
}

// Disjunction returns the symmetric difference of a and b: every element
// occurs max(count in a, count in b) - min(count in a, count in b) times.
//
// It equals Subtract(Union(a, b), Intersection(a, b)) and
// Union(Subtract(a, b), Subtract(b, a)) as bags.
func Disjunction[T comparable](a, b Iterable[T]) *List[T] {
	return combine(a, b, func(x, y int) int { return max(x, y) - min(x, y) })
}

// Subtract returns a copy of a from which, for every element of b in turn,
// the first remaining equal element is removed. The net count of every
// element is max(count in a - count in b, 0).
func Subtract[T comparable](a, b Iterable[T]) *List[T] {
	out := From(toSlice(a))
	each(b, func(item T) {
		if i := out.IndexOf(item); i >= 0 {
			out.removeAt(i)
		}
	})
	return out
}

// IsSubCollection reports whether every element occurs in a at most as often
// as it occurs in b.
func IsSubCollection[T comparable](a, b Iterable[T]) bool {
	ma, mb := Cardinalities(a), Cardinalities(b)
	for item, n := range ma {
		if n > mb.Frequency(item) {
			return false
		}
	}
	return true
}

// IsProperSubCollection reports whether a is a sub-collection of b and the
// two are not equal.
func IsProperSubCollection[T comparable](a, b Iterable[T]) bool {
	return IsSubCollection(a, b) && !IsEqualCollection(a, b)
}

// IsEqualCollection reports whether a and b have the same size and the same
// count for every distinct element.
func IsEqualCollection[T comparable](a, b Iterable[T]) bool {
	ma, mb := Cardinalities(a), Cardinalities(b)
	if ma.Total() != mb.Total() || len(ma) != len(mb) {
		return false
	}
	for item, n := range ma {
		if mb.Frequency(item) != n {
			return false
		}
	}
	return true
}

// combine emits each distinct element of a then b, count(x, y) times.
func combine[T comparable](a, b Iterable[T], count func(x, y int) int) *List[T] {
	sa, sb := toSlice(a), toSlice(b)
	ma, mb := countSlice(sa), countSlice(sb)

	out := Empty[T]()
	for _, item := range arr.Unique(append(sa, sb...)) {
		for n := count(ma.Frequency(item), mb.Frequency(item)); n > 0; n-- {
			out.items = append(out.items, item)
		}
	}
	return out
}

func countSlice[T comparable](items []T) CardinalityMap[T] {
	counts := make(CardinalityMap[T], len(items))
	for _, item := range items {
		counts[item]++
	}
	return counts
}

func each[T any](col Iterable[T], fn func(T)) {
	if col == nil {
		return
	}
	for item := range iterators.Seq(col.Iterator()) {
		fn(item)
	}
}

func toSlice[T any](col Iterable[T]) []T {
	var out []T
	each(col, func(item T) { out = append(out, item) })
	return out
}
