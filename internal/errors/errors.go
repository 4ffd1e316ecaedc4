package errors

import (
	"errors"
	"fmt"
)

// AppError represents a structured application error
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError
func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	if appErr, ok := err.(*AppError); ok {
		return &AppError{
			Code:    appErr.Code,
			Message: message,
			Cause:   appErr,
		}
	}
	return &AppError{
		Code:    CodeInternalError,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted additional context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// GetCode returns the error code if it's an AppError, otherwise returns "UNKNOWN"
func GetCode(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return "UNKNOWN"
}

// Predefined error codes
const (
	CodeConfigInvalid   = "CONFIG_INVALID"
	CodeInvalidInput    = "INVALID_INPUT"
	CodeDegenerateInput = "DEGENERATE_INPUT"
	CodeInternalError   = "INTERNAL_ERROR"
)

// Common error constructors

// ConfigInvalid reports a configuration value that failed validation.
func ConfigInvalid(message string) *AppError {
	return New(CodeConfigInvalid, message)
}

// InvalidInput reports malformed input: a sample too short, mismatched
// lengths, or non-finite values.
func InvalidInput(message string) *AppError {
	return New(CodeInvalidInput, message)
}

// InvalidInputf is InvalidInput with formatting.
func InvalidInputf(format string, args ...interface{}) *AppError {
	return New(CodeInvalidInput, fmt.Sprintf(format, args...))
}

// DegenerateInput reports input that is well-formed but numerically
// degenerate: a zero denominator arising from a constant sample.
func DegenerateInput(message string) *AppError {
	return New(CodeDegenerateInput, message)
}

// DegenerateInputf is DegenerateInput with formatting.
func DegenerateInputf(format string, args ...interface{}) *AppError {
	return New(CodeDegenerateInput, fmt.Sprintf(format, args...))
}

// Error checking helpers

func hasCode(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// IsInvalidInput checks whether err is an INVALID_INPUT error.
func IsInvalidInput(err error) bool {
	return hasCode(err, CodeInvalidInput)
}

// IsDegenerateInput checks whether err is a DEGENERATE_INPUT error.
func IsDegenerateInput(err error) bool {
	return hasCode(err, CodeDegenerateInput)
}
