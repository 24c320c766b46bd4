package domain

import (
	"errors"
	"fmt"
)

// Common domain errors that can occur while generating a dataset.
var (
	// ErrInvalidIdentifier indicates that a NIF is malformed or carries the
	// wrong control letter.
	ErrInvalidIdentifier = errors.New("invalid identifier")

	// ErrIdentifierSpaceExhausted indicates that no unused identifier could be
	// drawn within the allowed number of attempts.
	ErrIdentifierSpaceExhausted = errors.New("identifier space exhausted")

	// ErrNotEnoughOptionalSubjects indicates a request for more distinct
	// optional subjects than the catalog holds.
	ErrNotEnoughOptionalSubjects = errors.New("not enough optional subjects")

	// ErrSelectionExhausted indicates that rejection sampling hit its attempt
	// cap before collecting enough distinct subjects.
	ErrSelectionExhausted = errors.New("subject selection exhausted")

	// ErrInvalidConfiguration indicates that configuration is invalid or incomplete.
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

// GenerationError represents a failure while generating the records of a
// single student. It records which step failed so the caller can log it.
type GenerationError struct {
	// Student is the zero-based index of the student being generated.
	Student int

	// Step names the generation step that failed (e.g. "identifier").
	Step string

	// Err is the underlying error.
	Err error
}

// Error implements the error interface for GenerationError.
func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation error: student=%d, step=%s, err=%v", e.Student, e.Step, e.Err)
}

// Unwrap returns the underlying error.
func (e *GenerationError) Unwrap() error { return e.Err }

// NewGenerationError creates a new GenerationError with the given details.
func NewGenerationError(student int, step string, err error) *GenerationError {
	return &GenerationError{
		Student: student,
		Step:    step,
		Err:     err,
	}
}

// ValidationError represents an error that occurred during validation.
// It can contain multiple validation failures.
type ValidationError struct {
	// Entity is the name of the entity that failed validation.
	Entity string

	// Errors contains the list of validation error messages.
	Errors []string
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation error for %s: %s", e.Entity, e.Errors[0])
	}
	return fmt.Sprintf("validation errors for %s: %v", e.Entity, e.Errors)
}

// AddError adds a new error message to the validation error.
func (e *ValidationError) AddError(msg string) { e.Errors = append(e.Errors, msg) }

// AddErrorf formats and adds a new error message.
func (e *ValidationError) AddErrorf(format string, args ...any) {
	e.AddError(fmt.Sprintf(format, args...))
}

// HasErrors returns true if there are any validation errors.
func (e *ValidationError) HasErrors() bool { return len(e.Errors) > 0 }

// ErrOrNil returns e when it holds at least one failure and nil otherwise.
func (e *ValidationError) ErrOrNil() error {
	if e.HasErrors() {
		return e
	}
	return nil
}

// NewValidationError creates a new ValidationError for the given entity.
func NewValidationError(entity string) *ValidationError {
	return &ValidationError{
		Entity: entity,
		Errors: make([]string, 0),
	}
}
