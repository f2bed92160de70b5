package model

import (
	"errors"
	"fmt"
)

// ErrDuplicateRegistration indicates that the lead email is already registered.
var ErrDuplicateRegistration = errors.New("lead email already registered")

// ValidationError describes a rejected payload with a client-facing reason.
// It never wraps storage or transport faults.
type ValidationError struct {
	Reason string
}

// Error returns the client-facing reason.
func (e *ValidationError) Error() string {
	return e.Reason
}

// NewValidationError builds a ValidationError with a formatted reason.
func NewValidationError(format string, args ...interface{}) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// AsValidationError extracts a ValidationError from an error chain.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}
