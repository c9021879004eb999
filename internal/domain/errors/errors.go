// Package errors defines domain-specific error types.
// Using typed errors (instead of strings) allows clients to handle specific cases.
//
// Pattern: Sentinel Errors + Custom Error Types
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Common sentinel errors for domain validation
var (
	// Entity errors
	ErrInvalidEntityID     = errors.New("invalid entity ID")
	ErrEntityNotFound      = errors.New("entity not found")
	ErrEntityAlreadyExists = errors.New("entity already exists")

	// Person errors
	ErrCPFAlreadyRegistered = errors.New("CPF já cadastrado para outra pessoa")
	ErrInvalidCPF           = errors.New("O CPF informado não é válido")

	// User / auth errors
	ErrEmailAlreadyRegistered = errors.New("E-mail já cadastrado para outro usuário")
	ErrInvalidCredentials     = errors.New("invalid credentials")
)

// DomainError wraps an error with a machine-readable code and context.
//
// Pattern: Error Wrapping with Context
type DomainError struct {
	Code    string // Machine-readable error code (e.g., "CPF_ALREADY_EXISTS")
	Message string // Human-readable message
	Err     error  // Underlying error (for error chains)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements error unwrapping for errors.Is and errors.As.
func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError creates a new domain error.
func NewDomainError(code, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// ValidationError represents a single field-level validation failure.
type ValidationError struct {
	Field   string // Field name that failed validation
	Message string // What went wrong
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
// Validators accumulate every broken rule before reporting, so callers
// receive the full list in one response.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	msgs := make([]string, len(e))
	for i, ve := range e {
		msgs[i] = ve.Error()
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Add appends a validation error.
func (e *ValidationErrors) Add(field, message string) {
	*e = append(*e, ValidationError{Field: field, Message: message})
}

// HasErrors returns true if there are any validation errors.
func (e ValidationErrors) HasErrors() bool {
	return len(e) > 0
}

// NewValidationError builds a single-message ValidationErrors value.
// Used for business-rule conflicts (duplicate CPF, "address required in v2")
// which the API reports through the same 400 channel as field errors.
func NewValidationError(field, message string) ValidationErrors {
	return ValidationErrors{{Field: field, Message: message}}
}

// Helper functions for common error checking

// IsNotFound checks if an error is an "entity not found" error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrEntityNotFound)
}

// IsValidation checks if an error is a validation error.
func IsValidation(err error) bool {
	var valErr ValidationError
	var valErrs ValidationErrors
	return errors.As(err, &valErr) || errors.As(err, &valErrs)
}

// AsValidationErrors extracts the field error list from an error chain.
// Returns nil when the error is not validation-related.
func AsValidationErrors(err error) ValidationErrors {
	var valErrs ValidationErrors
	if errors.As(err, &valErrs) {
		return valErrs
	}
	var valErr ValidationError
	if errors.As(err, &valErr) {
		return ValidationErrors{valErr}
	}
	return nil
}
