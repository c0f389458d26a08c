package model

import (
	"errors"
	"fmt"
)

// Common errors used across the application
var (
	// Profile errors
	ErrProfileNotFound = errors.New("profile not found")
	ErrProfileExists   = errors.New("profile already exists")

	// Request validation errors
	ErrMissingField       = errors.New("missing required field")
	ErrInvalidRace        = errors.New("invalid race")
	ErrInvalidAllocation  = errors.New("invalid point allocation")
	ErrAllocationMismatch = errors.New("allocation does not match available points")
	ErrNotEnoughPoints    = errors.New("not enough extra points")
	ErrInvalidBodyPart    = errors.New("invalid body part")
)

// ValidationError pairs a sentinel error with a message meant for the player.
// errors.Is matches against the sentinel.
type ValidationError struct {
	Err     error
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError wraps a sentinel with a formatted message
func NewValidationError(err error, format string, args ...any) error {
	return &ValidationError{Err: err, Message: fmt.Sprintf(format, args...)}
}
