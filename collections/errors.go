package collections

import (
	"errors"

	"github.com/hasbyte1/go-collection-utils/iterators"
)

// Sentinel errors returned by collections, the algebra helpers and the
// decorators built on them. All of them are local and non-retryable: repeat
// the call only with different input.
var (
	// ErrInvalidArgument is returned when a required collection, predicate or
	// destination is missing, or a parameter is out of its domain.
	ErrInvalidArgument = errors.New("collections: invalid argument")

	// ErrIndexOutOfRange is returned when an index is outside [0, Size()-1].
	ErrIndexOutOfRange = errors.New("collections: index out of range")

	// ErrPredicateRejected is returned when an element fails the predicate of
	// a validating collection.
	ErrPredicateRejected = errors.New("collections: element rejected by predicate")

	// ErrCapacityExceeded is returned when an insertion would grow a bounded
	// collection past its maximum size.
	ErrCapacityExceeded = errors.New("collections: maximum size reached")

	// ErrUnsupportedOperation is returned by read-only collections and
	// iterators for every mutating call.
	ErrUnsupportedOperation = iterators.ErrUnsupportedOperation

	// ErrNoSuchElement is returned when an iterator is advanced past its end.
	ErrNoSuchElement = iterators.ErrNoSuchElement
)
