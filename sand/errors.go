package sand

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds is returned when a placement targets a cell outside the grid.
	ErrOutOfBounds = errors.New("out of bounds")

	// ErrPlatform is wrapped by every PlatformError.
	ErrPlatform = errors.New("platform failure")

	// ErrInvalidConfig is returned for unusable grid or window dimensions.
	ErrInvalidConfig = errors.New("invalid config")
)

// PlatformError reports a failure of the windowing or rendering layer.
// No simulation can continue without a surface, so callers treat it as fatal.
type PlatformError struct {
	Op  string
	Err error
}

func (e *PlatformError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", ErrPlatform, e.Op)
	}
	return fmt.Sprintf("%s: %s: %v", ErrPlatform, e.Op, e.Err)
}

func (e *PlatformError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrPlatform}
	}
	return []error{ErrPlatform, e.Err}
}

// NewPlatformError wraps err as a PlatformError for the named operation.
func NewPlatformError(op string, err error) error {
	return &PlatformError{Op: op, Err: err}
}
