package iterators

import "errors"

// Sentinel errors returned by cursors in this package.
var (
	// ErrNoSuchElement is returned when a cursor is advanced past its end.
	ErrNoSuchElement = errors.New("iterators: no such element")

	// ErrUnsupportedOperation is returned by cursors that do not support the
	// requested mutation.
	ErrUnsupportedOperation = errors.New("iterators: operation not supported")

	// ErrIllegalState is returned by Remove or Set when no element has been
	// returned since the last structural change.
	ErrIllegalState = errors.New("iterators: no current element")
)
