package errors

import (
	"fmt"
)

// ConError is the structured error type for constream.
// Errors are never retried; they are reported at the host boundary.
type ConError struct {
	// Code is the unique error code (e.g., "ERR_201_SINK_WRITE").
	Code string

	// Message is the human-readable error message.
	Message string

	// Category is the error category (Config, IO, Validation, Internal).
	Category Category

	// Severity is the error severity level.
	Severity Severity

	// Details contains additional context as key-value pairs.
	Details map[string]string

	// Cause is the underlying error that caused this error.
	Cause error

	// Suggestion is an actionable suggestion for the user.
	Suggestion string
}

// Error implements the error interface.
func (e *ConError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for error chain support.
func (e *ConError) Unwrap() error {
	return e.Cause
}

// Is matches another *ConError by code, so errors.Is works with sentinels
// built by New.
func (e *ConError) Is(target error) bool {
	if t, ok := target.(*ConError); ok {
		return e.Code == t.Code
	}
	return false
}

// WithDetail adds a key-value detail to the error.
// Returns the error for method chaining.
func (e *ConError) WithDetail(key, value string) *ConError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// WithSuggestion adds an actionable suggestion for the user.
func (e *ConError) WithSuggestion(suggestion string) *ConError {
	e.Suggestion = suggestion
	return e
}

// New creates a new ConError with the given code and message.
// Category and severity are derived from the code.
func New(code string, message string, cause error) *ConError {
	return &ConError{
		Code:     code,
		Message:  message,
		Category: categoryFromCode(code),
		Severity: severityFromCode(code),
		Cause:    cause,
	}
}

// Wrap creates a ConError from an existing error.
// The error's message becomes the ConError message. Wrap(code, nil) is nil.
func Wrap(code string, err error) *ConError {
	if err == nil {
		return nil
	}
	return New(code, err.Error(), err)
}

// ConfigError creates a configuration-related error.
func ConfigError(message string, cause error) *ConError {
	return New(ErrCodeConfigInvalid, message, cause)
}

// SinkError creates an error for a failed write to the console sink.
func SinkError(message string, cause error) *ConError {
	return New(ErrCodeSinkWrite, message, cause)
}

// ValidationError creates a validation-related error.
func ValidationError(message string, cause error) *ConError {
	return New(ErrCodeInvalidInput, message, cause)
}

// InternalError creates an internal error.
func InternalError(message string, cause error) *ConError {
	return New(ErrCodeInternal, message, cause)
}

// IsFatal checks if an error has fatal severity.
func IsFatal(err error) bool {
	if ce, ok := err.(*ConError); ok {
		return ce.Severity == SeverityFatal
	}
	return false
}

// GetCode extracts the error code from a ConError.
// Returns empty string if not a ConError.
func GetCode(err error) string {
	if ce, ok := err.(*ConError); ok {
		return ce.Code
	}
	return ""
}

// GetCategory extracts the category from a ConError.
func GetCategory(err error) Category {
	if ce, ok := err.(*ConError); ok {
		return ce.Category
	}
	return ""
}
