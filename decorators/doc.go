// Package decorators wraps a [collections.Collection] to add one behaviour
// without copying it:
//
//   - [Predicated] admits only elements that satisfy a predicate.
//   - [Bounded] never grows past a fixed number of elements.
//   - [Unmodifiable] rejects every mutation.
//   - [Synchronized] serialises every call behind one mutex.
//
// Each decorator implements collections.Collection itself, so they nest:
//
//	base := collections.Empty[string]()
//	short, _ := decorators.NewPredicated(base, func(s string) bool { return len(s) <= 8 })
//	capped, _ := decorators.NewBounded(short, 100)
//	shared, _ := decorators.NewSynchronized(capped)
//
// # Ownership
//
// A decorator keeps a reference to the collection it wraps. Once wrapped,
// stop using the original handle: writes made through it bypass the
// decorator's checks and its lock.
//
// # Errors
//
// Constructors fail with collections.ErrInvalidArgument when the collection
// or a required parameter is missing. Rejected mutations fail with
// collections.ErrPredicateRejected, collections.ErrCapacityExceeded or
// collections.ErrUnsupportedOperation and leave the collection unchanged.
package decorators
