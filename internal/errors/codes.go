// Package errors provides structured error handling for constream.
//
// Error codes follow the pattern ERR_XXX_DESCRIPTION where:
//   - 1XX: Configuration errors
//   - 2XX: Sink (console) I/O errors
//   - 4XX: Validation errors
//   - 5XX: Internal errors
package errors

// Category defines error categories for classification.
type Category string

const (
	// CategoryConfig indicates configuration-related errors.
	CategoryConfig Category = "CONFIG"
	// CategoryIO indicates failures of the underlying sink.
	CategoryIO Category = "IO"
	// CategoryValidation indicates input validation errors.
	CategoryValidation Category = "VALIDATION"
	// CategoryInternal indicates unexpected internal errors.
	CategoryInternal Category = "INTERNAL"
)

// Severity defines error severity levels.
type Severity string

const (
	// SeverityFatal indicates unrecoverable error, must abort.
	SeverityFatal Severity = "FATAL"
	// SeverityError indicates operation failed but can continue.
	SeverityError Severity = "ERROR"
	// SeverityWarning indicates degraded operation, continuing.
	SeverityWarning Severity = "WARNING"
)

// Error codes organized by category.
const (
	// Config errors (100-199)
	ErrCodeConfigNotFound   = "ERR_101_CONFIG_NOT_FOUND"
	ErrCodeConfigInvalid    = "ERR_102_CONFIG_INVALID"
	ErrCodeConfigPermission = "ERR_103_CONFIG_PERMISSION"
	ErrCodeConfigWatch      = "ERR_104_CONFIG_WATCH"

	// Sink errors (200-299)
	ErrCodeSinkWrite = "ERR_201_SINK_WRITE"
	ErrCodeSinkFlush = "ERR_202_SINK_FLUSH"
	ErrCodeSinkInput = "ERR_203_SINK_INPUT"

	// Validation errors (400-499)
	ErrCodeInvalidLevel  = "ERR_401_INVALID_LEVEL"
	ErrCodeUnknownStream = "ERR_402_UNKNOWN_STREAM"
	ErrCodeInvalidInput  = "ERR_403_INVALID_INPUT"

	// Internal errors (500-599)
	ErrCodeInternal = "ERR_501_INTERNAL"
)

// categoryFromCode extracts category from error code.
func categoryFromCode(code string) Category {
	if len(code) < 7 {
		return CategoryInternal
	}

	// Numeric portion, e.g. "201" from "ERR_201_SINK_WRITE"
	switch code[4] {
	case '1':
		return CategoryConfig
	case '2':
		return CategoryIO
	case '4':
		return CategoryValidation
	default:
		return CategoryInternal
	}
}

// severityFromCode determines severity based on error code.
func severityFromCode(code string) Severity {
	switch code {
	case ErrCodeSinkWrite, ErrCodeSinkFlush:
		// A broken console cannot be recovered locally.
		return SeverityFatal
	case ErrCodeConfigWatch:
		return SeverityWarning
	}
	return SeverityError
}
