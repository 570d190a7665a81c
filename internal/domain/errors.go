package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound signals a missing venue.
	ErrNotFound = errors.New("not found")
	// ErrValidation signals a malformed caller-supplied value.
	ErrValidation = errors.New("validation failed")
	// ErrParserUnavailable signals that the language-model parser could not
	// produce a usable result. Recovered internally by falling back to the
	// rule-based parser; never surfaced to callers.
	ErrParserUnavailable = errors.New("query parser unavailable")
)

// ValidationError wraps ErrValidation with the offending field name.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: field %q %s", ErrValidation.Error(), e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a validation error for a named field.
func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
