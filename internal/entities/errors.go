package entities

import (
	"errors"
	"fmt"
)

// Validation failure kinds. Every constructor in this package reports one of
// these wrapped in a *ValidationError.
var (
	ErrTooLong        = errors.New("value exceeds maximum length")
	ErrWrongSize      = errors.New("value has the wrong size")
	ErrInvalidCharset = errors.New("value contains characters outside the allowed set")
	ErrInvalidDate    = errors.New("value is not a valid calendar date")

	// ErrCorruptValue marks a persisted value that no longer passes validation
	// when it is read back from the store.
	ErrCorruptValue = errors.New("persisted value failed validation")
)

// ValidationError reports which field of an untrusted payload was rejected.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// withField re-labels a value-type error with the payload field it came from.
func withField(field string, err error) error {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return &ValidationError{Field: field, Err: verr.Err}
	}
	return &ValidationError{Field: field, Err: err}
}

func corrupt(field string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrCorruptValue, field, err)
}
