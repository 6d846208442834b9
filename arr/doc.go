// Package arr provides standalone helper functions for Go slices and a small
// set of shape-agnostic accessors for arbitrary sources.
//
// # Slice helpers
//
// The slice helpers are generic and operate on plain []T values; no wrapper
// type is required:
//
//	evens := arr.Filter([]int{1, 2, 3, 4, 5}, func(n, _ int) bool { return n%2 == 0 })
//	i     := arr.IndexOf([]string{"a", "b"}, "b") // → 1
//	arr.ReverseInPlace(items)                    // no allocation
//
// # Polymorphic access
//
// [Index] and [Iterator] accept any of a closed set of source shapes: maps,
// slices, arrays (or pointers to arrays), enumerations, iterators and
// anything with an Iterator method, such as a collections.List.
//
//	arr.Index(map[string]int{"a": 1}, "a") // → 1 (literal key)
//	arr.Index([]string{"x", "y"}, 1)       // → "y"
//	arr.Index(list, 7)                     // → list (nothing at 7)
//
// When a key addresses nothing, Index returns the source unchanged; use
// [Lookup] to tell the two cases apart. Positional access to a map walks its
// keys in sorted order so the result is deterministic.
package arr
