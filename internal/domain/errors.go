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
	ErrConflict      = errors.New("conflict")
	ErrNotReady      = errors.New("not ready")
)

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

// NotReadyError is returned when a corpus resource is requested before the
// corpus has finished loading.
type NotReadyError struct {
	Resource string
}

func (e *NotReadyError) Error() string {
	return fmt.Sprintf("data not loaded, cannot get resource %s", e.Resource)
}

func (e *NotReadyError) Unwrap() error { return ErrNotReady }

// NewNotReadyError creates a NotReadyError naming the requested resource.
func NewNotReadyError(resource string) *NotReadyError {
	return &NotReadyError{Resource: resource}
}
