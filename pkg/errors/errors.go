package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrCanceled     ErrorCode = "CANCELED"

	// Pattern errors
	ErrPatternSyntax   ErrorCode = "PATTERN_SYNTAX"
	ErrUnsupportedRoot ErrorCode = "UNSUPPORTED_ROOT"

	// Traversal errors
	ErrWorkingDirectory ErrorCode = "WORKING_DIRECTORY"
	ErrNoMatch          ErrorCode = "NO_MATCH"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Output errors
	ErrOutput ErrorCode = "OUTPUT"
)

// GlobError represents a structured error with code and details
type GlobError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *GlobError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *GlobError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *GlobError) Is(target error) bool {
	var targetErr *GlobError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new GlobError with the given code and message
func New(code ErrorCode, message string) *GlobError {
	return &GlobError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new GlobError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *GlobError {
	return &GlobError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a GlobError
func Wrap(err error, code ErrorCode, message string) *GlobError {
	if err == nil {
		return nil
	}
	return &GlobError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *GlobError {
	if err == nil {
		return nil
	}
	return &GlobError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *GlobError) WithDetail(key string, value interface{}) *GlobError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *GlobError) WithDetails(details map[string]interface{}) *GlobError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var globErr *GlobError
	if errors.As(err, &globErr) {
		return globErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a GlobError
func GetErrorCode(err error) ErrorCode {
	var globErr *GlobError
	if errors.As(err, &globErr) {
		return globErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a GlobError
func GetErrorDetails(err error) map[string]interface{} {
	var globErr *GlobError
	if errors.As(err, &globErr) {
		return globErr.Details
	}
	return nil
}
