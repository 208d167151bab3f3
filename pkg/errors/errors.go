// Package errors provides structured error types for the orgchart application.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI and library surface
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Each code corresponds to one failure class of the chart pipeline:
//   - PARSE_ERROR: the source file is not well-formed YAML
//   - VALIDATION_ERROR: well-formed input with invalid semantics
//   - GRAPH_BUILD_ERROR: a graph invariant violated at build time
//   - RENDER_ERROR: the layout engine failed or a layout parameter is invalid
//   - IO_ERROR: a destination file could not be written
//
// # Usage
//
//	err := errors.New(errors.ErrCodeValidation, "edge references unknown node %q", id)
//	if errors.Is(err, errors.ErrCodeValidation) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeIO, origErr, "write %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for the failure classes of the chart pipeline.
const (
	// ErrCodeParse indicates the source file is not well-formed structured text.
	ErrCodeParse Code = "PARSE_ERROR"

	// ErrCodeValidation indicates structurally well-formed input with invalid
	// semantics: a missing id, a duplicate id, or a dangling edge reference.
	ErrCodeValidation Code = "VALIDATION_ERROR"

	// ErrCodeGraphBuild indicates a referential invariant violation that
	// survived loading and was caught while assembling the graph.
	ErrCodeGraphBuild Code = "GRAPH_BUILD_ERROR"

	// ErrCodeRender indicates the layout engine failed or a layout parameter
	// is outside its valid range.
	ErrCodeRender Code = "RENDER_ERROR"

	// ErrCodeIO indicates an output destination could not be written.
	ErrCodeIO Code = "IO_ERROR"

	// ErrCodeInvalidConfig indicates a malformed defaults file or CLI flag value.
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
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
