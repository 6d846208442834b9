// Package collections provides a generic multiset toolkit: a mutable
// slice-backed [List], the [Collection] contract that the decorators package
// wraps, bag algebra over any [Iterable], and traversal helpers.
//
// # Bag algebra
//
// Every algebra function counts occurrences rather than testing membership:
//
//	a := collections.New("x", "x", "y")
//	b := collections.New("x", "z")
//
//	collections.Union(a, b)            // x x y z   (max of counts)
//	collections.Intersection(a, b)     // x         (min of counts)
//	collections.Disjunction(a, b)      // x y z     (max - min)
//	collections.Subtract(a, b)         // x y       (a minus b, floored at 0)
//	collections.IsSubCollection(b, a)  // false: z is missing from a
//
// Results are new Lists; inputs are never modified. Counting is done on a
// [CardinalityMap] built per call and then dropped.
//
// # Traversal
//
// [Find], [ForAllDo], [Select], [Collect] and the AddAllFrom* helpers accept
// any Iterable (or an iterator / enumeration) and plain Go functions as
// predicates, actions and transformers:
//
//	long := collections.Select(words, func(s string) bool { return len(s) > 3 })
//	lens := collections.Collect(words, func(s string) int { return len(s) })
//
// The *Into variants write into a [Sink], which may be any Collection
// including a decorated one, and stop at the first error it returns.
//
// # Errors
//
// All failures are reported with the sentinel errors in errors.go and can be
// matched with errors.Is.
package collections
