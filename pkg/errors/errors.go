// Package errors defines the error taxonomy shared by services and handlers.
// Service sentinels wrap one of these so the HTTP layer can map a whole class of
// failures with a single errors.Is check.
package errors

import "errors"

var (
	// ErrNotFound a referenced entity id does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput a required field is missing, empty or malformed.
	ErrInvalidInput = errors.New("invalid input")
	// ErrStoreUnavailable the relational store cannot be reached or initialised.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// Issue describes one rejected field of a request.
type Issue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// ValidationError carries per-field issues and unwraps to ErrInvalidInput.
type ValidationError struct {
	Issues []Issue
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return ErrInvalidInput.Error()
	}
	return ErrInvalidInput.Error() + ": " + e.Issues[0].Path + ": " + e.Issues[0].Message
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(path, message string) *ValidationError {
	return &ValidationError{Issues: []Issue{{Path: path, Message: message}}}
}

// Error a user-facing message classified by one of the sentinels above.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

// NotFound builds an ErrNotFound-class error with a user-facing message.
func NotFound(message string) error {
	return &Error{Kind: ErrNotFound, Message: message}
}

// InvalidInput builds an ErrInvalidInput-class error with a user-facing message.
func InvalidInput(message string) error {
	return &Error{Kind: ErrInvalidInput, Message: message}
}
