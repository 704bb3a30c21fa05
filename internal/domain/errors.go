package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrConflict      = errors.New("conflict")
	ErrInvalidState  = errors.New("invalid state")
	ErrTransport     = errors.New("persistence unavailable")
)

// Work card state errors. All of them match ErrInvalidState via errors.Is.
var (
	ErrNoActiveCard      = fmt.Errorf("%w: no active work card", ErrInvalidState)
	ErrCardAlreadyActive = fmt.Errorf("%w: worker already has an active work card", ErrInvalidState)
	ErrCardCompleted     = fmt.Errorf("%w: work card is completed", ErrInvalidState)
	ErrModeLocked        = fmt.Errorf("%w: mode cannot change while a work card is active", ErrInvalidState)
)

// ErrNoUpdatableFields is returned when an accumulator update carries none
// of the mutable fields. It matches ErrValidation.
var ErrNoUpdatableFields = fmt.Errorf("%w: no updatable fields", ErrValidation)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// HasField reports whether the error mentions the given field.
func (e *ValidationError) HasField(field string) bool {
	for _, fe := range e.Errors {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// TransportError reports that the persistence gateway could not be reached
// or failed while serving Op. The prior state is unchanged; callers may retry.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Is makes errors.Is(err, ErrTransport) hold while Unwrap exposes the cause.
func (e *TransportError) Is(target error) bool { return target == ErrTransport }

func (e *TransportError) Unwrap() error { return e.Err }
