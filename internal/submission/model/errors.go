package model

import (
	"errors"
	"fmt"
)

var (
	// ErrRegistrationNotFound indicates the lead email has no registration.
	ErrRegistrationNotFound = errors.New("lead email not found in registrations")
	// ErrCodeNotAssigned indicates no access code exists for the team.
	ErrCodeNotAssigned = errors.New("no access code assigned for this team")
	// ErrCodeInvalid indicates the supplied credential does not match.
	ErrCodeInvalid = errors.New("access code invalid for this team")
)

// ValidationError describes a rejected payload with a client-facing reason.
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
