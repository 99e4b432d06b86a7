package domain

import (
	"errors"
	"fmt"
)

// Entity names used in NotFoundError.
const (
	EntityEvent  = "event"
	EntityVenue  = "venue"
	EntityPerson = "person"
)

// ValidationError indicates that a proposed field value was rejected.
// The entity it was aimed at is left unchanged.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error on %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// NotFoundError indicates that an operation targeted an identifier
// that does not resolve to a stored entity.
type NotFoundError struct {
	Entity string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no such %s", e.Entity)
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var n *NotFoundError
	return errors.As(err, &n)
}
