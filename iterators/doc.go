// Package iterators defines the cursor contracts shared by the rest of this
// module and a handful of small adapters built on them.
//
// # Contracts
//
//   - [Iterator] is a forward cursor with optional removal.
//   - [ListIterator] adds backwards traversal and positional mutation.
//   - [Enumeration] is a forward-only cursor without removal.
//
// Exhausted cursors return [ErrNoSuchElement]; cursors that do not support a
// mutation return [ErrUnsupportedOperation]. Neither is retryable.
//
// # Adapters
//
//	it := iterators.FromSlice([]string{"a", "b"})        // array iterator
//	it  = iterators.FromEnumeration(enum)                // enumeration → iterator
//	it  = iterators.Unmodifiable(it)                     // Remove always fails
//	li := iterators.NewListIteratorWrapper(it)           // adds Previous
//
//	for v := range iterators.Seq(it) { … }               // range-over-func
package iterators
