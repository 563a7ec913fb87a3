// Package errors provides structured error types for eulerpath.
//
// Every failure that crosses a package boundary carries a machine-readable
// [Code] so the CLI can tell malformed input apart from misuse of the solver
// API and from I/O problems:
//   - INVALID_*: Input validation failures
//   - *_NOT_FOUND: Missing files
//   - GRAPH_*, ALREADY_*, PATH_*: Solver state-machine misuse
//   - INTERNAL_*: Unexpected internal errors
//
// A level graph that has no Eulerian path is NOT an error. Solvers report it
// through their result value.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidEdge, "edge %d: level %d out of range", i, id)
//	if errors.Is(err, errors.ErrCodeInvalidEdge) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeFileNotFound, origErr, "open %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput      Code = "INVALID_INPUT"
	ErrCodeInvalidEdge       Code = "INVALID_EDGE"
	ErrCodeInvalidLevelCount Code = "INVALID_LEVEL_COUNT"
	ErrCodeInvalidOrder      Code = "INVALID_ORDER"
	ErrCodeInvalidFormat     Code = "INVALID_FORMAT"

	// Resource not found errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"
	ErrCodeCaseNotFound Code = "CASE_NOT_FOUND"

	// Solver usage errors
	ErrCodeGraphNotBuilt   Code = "GRAPH_NOT_BUILT"
	ErrCodeAlreadyBuilt    Code = "ALREADY_BUILT"
	ErrCodePathNotComputed Code = "PATH_NOT_COMPUTED"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
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
		if e.Cause != nil {
			return e.Message + ": " + UserMessage(e.Cause)
		}
		return e.Message
	}
	return err.Error()
}
