// Package errors provides structured error types for labelsheet.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI and the HTTP form endpoint
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures
//   - MISSING_*: Incomplete label records
//   - *_NOT_FOUND: Resource not found
//   - OUTPUT_*: Destination failures
//   - INTERNAL_*: Unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidLayout, "unknown layout %q", s)
//	if errors.Is(err, errors.ErrCodeInvalidLayout) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInternal, origErr, "failed to encode %s", format)
//
// Three typed errors carry extra context and still report a [Code]:
// [MissingFieldError], [LayoutError] and [OutputError].
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
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidLayout Code = "INVALID_LAYOUT"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidPath   Code = "INVALID_PATH"

	// Record errors
	ErrCodeMissingField Code = "MISSING_FIELD"

	// Geometry errors
	ErrCodeInvalidGeometry Code = "INVALID_GEOMETRY"

	// Resource not found errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Output errors
	ErrCodeOutput Code = "OUTPUT_FAILED"

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

// coder is implemented by the typed errors in this package.
type coder interface {
	Code() Code
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error or typed error with a matching code.
func Is(err error, code Code) bool {
	return GetCode(err) == code
}

// As is [errors.As] from the standard library, re-exported so callers that
// import this package under the name errors can still reach typed errors.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if no coded error is found in the chain.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	var c coder
	if errors.As(err, &c) {
		return c.Code()
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

// MissingFieldError reports a label record without one of its ten keys.
type MissingFieldError struct {
	Field string
}

// Error implements the error interface.
func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing label field %q", e.Field)
}

// Code returns the error code for this error type.
func (e *MissingFieldError) Code() Code {
	return ErrCodeMissingField
}

// LayoutError reports a grid whose cells would have no positive area.
type LayoutError struct {
	Option     string
	Columns    int
	Rows       int
	CellWidth  float64
	CellHeight float64
}

// Error implements the error interface.
func (e *LayoutError) Error() string {
	return fmt.Sprintf("layout %s: %dx%d grid gives degenerate cells (%.2fmm x %.2fmm)",
		e.Option, e.Columns, e.Rows, e.CellWidth, e.CellHeight)
}

// Code returns the error code for this error type.
func (e *LayoutError) Code() Code {
	return ErrCodeInvalidGeometry
}

// OutputError reports a document that could not be written to its destination.
type OutputError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *OutputError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("write output: %v", e.Err)
	}
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying I/O error.
func (e *OutputError) Unwrap() error { return e.Err }

// Code returns the error code for this error type.
func (e *OutputError) Code() Code {
	return ErrCodeOutput
}
