// Package errors provides coded errors for the demo command.
package errors

import (
	"errors"
	"fmt"
)

// Error codes.
const (
	CodeInvalidConfig = "INVALID_CONFIG"
	CodeRenderFailed  = "RENDER_FAILED"
)

// Error is a coded error with optional details and cause.
type Error struct {
	Code    string
	Message string
	Details map[string]interface{}
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithDetail adds a detail to the error.
func (e *Error) WithDetail(key string, value interface{}) *Error {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// New creates a new coded error.
func New(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap wraps err with a code and message.
func Wrap(err error, code, message string) *Error {
	return &Error{Code: code, Message: message, Cause: err}
}

// InvalidConfig creates an invalid configuration error.
func InvalidConfig(err error, message string) *Error {
	return Wrap(err, CodeInvalidConfig, message)
}

// RenderFailed creates a rendering error.
func RenderFailed(err error, sample string) *Error {
	return Wrap(err, CodeRenderFailed, "failed to render sample").WithDetail("sample", sample)
}

// CodeOf returns the code of the first *Error in err's chain, or "".
func CodeOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// Is reports whether err carries the given code.
func Is(err error, code string) bool {
	return CodeOf(err) == code
}
