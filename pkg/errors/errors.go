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
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Rendering errors
	ErrNoRenderer  ErrorCode = "NO_RENDERER"
	ErrInvalidNode ErrorCode = "INVALID_NODE"
	ErrRender      ErrorCode = "RENDER"

	// Document decoding errors
	ErrDecode       ErrorCode = "DECODE"
	ErrAssetResolve ErrorCode = "ASSET_RESOLVE"
)

// RenderError represents a structured error with code and details
type RenderError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *RenderError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *RenderError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *RenderError) Is(target error) bool {
	var targetErr *RenderError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new RenderError with the given code and message
func New(code ErrorCode, message string) *RenderError {
	return &RenderError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new RenderError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *RenderError {
	return &RenderError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a RenderError
func Wrap(err error, code ErrorCode, message string) *RenderError {
	if err == nil {
		return nil
	}
	return &RenderError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *RenderError {
	if err == nil {
		return nil
	}
	return &RenderError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *RenderError) WithDetail(key string, value interface{}) *RenderError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var renderErr *RenderError
	if errors.As(err, &renderErr) {
		return renderErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a RenderError
func GetErrorCode(err error) ErrorCode {
	var renderErr *RenderError
	if errors.As(err, &renderErr) {
		return renderErr.Code
	}
	return ErrUnknown
}
