// Package errors provides structured, coded errors for herfiles.
// Codes are stable so that callers and tests can branch on failure
// category rather than message text.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

const (
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// ErrNotFound marks an expected source or destination that is missing.
	// Depending on context this is "nothing to do" rather than a failure.
	ErrNotFound ErrorCode = "NOT_FOUND"

	// ErrParse marks malformed JSON/TOML/manifest content. Features degrade
	// gracefully on parse errors; the run continues.
	ErrParse ErrorCode = "PARSE"

	// ErrIO marks a read/write/copy failure, reported per file.
	ErrIO ErrorCode = "IO"

	// ErrUserDeclined marks an operator "no" at a confirmation prompt.
	// It maps to a skipped outcome, never a failed one.
	ErrUserDeclined ErrorCode = "USER_DECLINED"

	// ErrExternalTool marks a non-zero exit from an external command
	// (package manager, editor CLI, font cache).
	ErrExternalTool ErrorCode = "EXTERNAL_TOOL"

	// ErrHomeResolve marks a failure to resolve the home or managed
	// directory. This is the only fatal startup condition.
	ErrHomeResolve ErrorCode = "HOME_RESOLVE"

	ErrModuleFailed ErrorCode = "MODULE_FAILED"
	ErrNoModules    ErrorCode = "NO_MODULES"
	ErrConfigLoad   ErrorCode = "CONFIG_LOAD"
)

// HerfilesError represents a structured error with code and details
type HerfilesError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *HerfilesError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *HerfilesError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *HerfilesError) Is(target error) bool {
	var targetErr *HerfilesError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new HerfilesError with the given code and message
func New(code ErrorCode, message string) *HerfilesError {
	return &HerfilesError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new HerfilesError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *HerfilesError {
	return &HerfilesError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a HerfilesError
func Wrap(err error, code ErrorCode, message string) *HerfilesError {
	if err == nil {
		return nil
	}
	return &HerfilesError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *HerfilesError {
	if err == nil {
		return nil
	}
	return &HerfilesError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *HerfilesError) WithDetail(key string, value interface{}) *HerfilesError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var herr *HerfilesError
	if errors.As(err, &herr) {
		return herr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a HerfilesError
func GetErrorCode(err error) ErrorCode {
	var herr *HerfilesError
	if errors.As(err, &herr) {
		return herr.Code
	}
	return ErrUnknown
}
