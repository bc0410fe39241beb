// Package errors provides structured error types for lockgraph.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the parser, the graph core and the CLI
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// The codes mirror the failure taxonomy of the tool:
//   - INPUT_NOT_FOUND: a declared input path does not exist
//   - MALFORMED_GRAPH: a dependency edge references an unknown identifier
//   - NOT_FOUND: a name or identifier query matched nothing
//   - INVALID_*: input validation failures
//
// None of these are retryable: every operation is a deterministic function of
// already-loaded data.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeNotFound, "no component named %q", name)
//	if errors.Is(err, errors.ErrCodeNotFound) {
//	    // Handle resolution failure
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidManifest, origErr, "decode %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input errors
	ErrCodeInputNotFound   Code = "INPUT_NOT_FOUND"
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidManifest Code = "INVALID_MANIFEST"
	ErrCodeInvalidFormat   Code = "INVALID_FORMAT"

	// Graph errors
	ErrCodeMalformedGraph Code = "MALFORMED_GRAPH"
	ErrCodeNotFound       Code = "NOT_FOUND"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// InputNotFound reports a declared input path that does not exist.
func InputNotFound(path string, cause error) *Error {
	return Wrap(ErrCodeInputNotFound, cause, "input not found: %s", path)
}

// MalformedGraph reports a reference to an identifier missing from the
// component table. Missing is the identifier that could not be resolved.
func MalformedGraph(missing, where string) *Error {
	return New(ErrCodeMalformedGraph, "%s references unknown identifier %q", where, missing)
}

// NotFound reports a failed name or identifier query. Query is echoed back
// verbatim so the user can see what was asked for.
func NotFound(kind, query string) *Error {
	return New(ErrCodeNotFound, "no component with %s %q", kind, query)
}
