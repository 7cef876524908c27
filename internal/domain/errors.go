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
	ErrForbidden     = errors.New("forbidden")
	ErrFinalized     = errors.New("itinerary is finalized")
	ErrAiService     = errors.New("ai service error")
	ErrAiUnavailable = errors.New("ai provider unavailable")
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

// AiServiceError carries the normalized message extracted from a provider
// refusal. The raw provider text never ends up here; callers only ever see
// Message.
type AiServiceError struct {
	Message string
}

func (e *AiServiceError) Error() string { return "ai service: " + e.Message }

func (e *AiServiceError) Unwrap() error { return ErrAiService }

// NewAiServiceError creates an AiServiceError with the given message.
func NewAiServiceError(message string) *AiServiceError {
	return &AiServiceError{Message: message}
}
