package collections

import "fmt"

// StatusCode reports the outcome of a mutating container operation.
// Zero means success; nonzero codes identify the failure.
type StatusCode uint16

const (
	// StatusOK indicates the operation completed normally.
	StatusOK StatusCode = 0
	// ErrOutOfMemory indicates an allocation could not be satisfied.
	// The Go runtime does not surface recoverable allocation failure,
	// so the core never produces this code itself; it is kept so the
	// status protocol matches callers that integrate a real allocator.
	ErrOutOfMemory StatusCode = 10
	// ErrBadArgument indicates a caller-supplied argument was invalid,
	// such as requesting a container with zero capacity.
	ErrBadArgument StatusCode = 20
)

// OK reports whether the code is StatusOK.
func (c StatusCode) OK() bool { return c == StatusOK }

// String returns a human-readable description of the code.
func (c StatusCode) String() string {
	switch c {
	case StatusOK:
		return "OK"
	case ErrOutOfMemory:
		return "Out of memory"
	case ErrBadArgument:
		return "Bad argument"
	default:
		return fmt.Sprintf("Unrecognized error code: %d", uint16(c))
	}
}
