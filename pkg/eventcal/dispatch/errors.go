package dispatch

import (
	"errors"
	"fmt"
)

// UnknownOpError indicates a dispatched operation name that is not in
// the registry. It is raised before any store or network access.
type UnknownOpError struct {
	Op string
}

// Error implements the error interface.
func (e *UnknownOpError) Error() string {
	return fmt.Sprintf("unknown operation: %s", e.Op)
}

// IsUnknownOp reports whether err is (or wraps) an UnknownOpError.
func IsUnknownOp(err error) bool {
	var u *UnknownOpError
	return errors.As(err, &u)
}

// ErrNoRemote is returned when a remote call is requested but the
// dispatcher was built without a remote caller.
var ErrNoRemote = errors.New("dispatch: no remote endpoint configured")
