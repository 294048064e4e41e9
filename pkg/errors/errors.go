// Package errors defines the coded errors shared by the wireframe parser,
// layout engine, pipeline and CLI.
//
// Codes fall into two groups. Document codes describe problems in wireframe
// source text; only [ErrCodeMalformedHeader] is fatal by default, the others
// are recovered and surface as diagnostics unless strict parsing is enabled.
// Ambient codes cover command-line input, configuration and I/O.
//
//	err := errors.AtLine(errors.ErrCodeUnrecognizedToken, 4, "unknown modifier %q", tok)
//	if errors.Is(err, errors.ErrCodeUnrecognizedToken) {
//	    // strict-mode failure
//	}
//
// The CLI prints [UserMessage] and logs [GetCode] next to it.
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

const (
	// Document codes. Lines are 1-based.
	ErrCodeMalformedHeader    Code = "MALFORMED_HEADER"
	ErrCodeUnrecognizedToken  Code = "UNRECOGNIZED_TOKEN"
	ErrCodeIndentJump         Code = "INDENT_JUMP"
	ErrCodeEmptyGridChild     Code = "EMPTY_GRID_CHILD"
	ErrCodeZeroChildContainer Code = "ZERO_CHILD_CONTAINER"
	ErrCodeLeafChildren       Code = "LEAF_CHILDREN"

	// Option and input validation
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidFormat   Code = "INVALID_FORMAT"
	ErrCodeInvalidStyle    Code = "INVALID_STYLE"
	ErrCodeInvalidViewport Code = "INVALID_VIEWPORT"
	ErrCodeInvalidConfig   Code = "INVALID_CONFIG"

	// Resources
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"
	ErrCodeNoDocument   Code = "NO_DOCUMENT"

	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error carries a code, a message and, for document problems, the source
// line it was found on.
type Error struct {
	Code    Code
	Message string
	Line    int // 0 when not tied to a line
	Cause   error
}

// Error renders "CODE: line N: message: cause", omitting absent parts.
func (e *Error) Error() string {
	msg := e.Message
	if e.Line > 0 {
		msg = fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, msg, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, msg)
}

func (e *Error) Unwrap() error { return e.Cause }

// New returns an Error with a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// AtLine returns an Error attributed to a source line.
func AtLine(code Code, line int, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Line:    line,
	}
}

// Wrap returns an Error around cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether the first *Error in err's chain has code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode returns the code of the first *Error in err's chain, or "".
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// GetLine returns the source line err is attributed to, or 0.
func GetLine(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Line
	}
	return 0
}

// UserMessage is the error text without the code prefix. Errors that are
// not an *Error are returned as is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Line > 0 {
			return fmt.Sprintf("line %d: %s", e.Line, e.Message)
		}
		return e.Message
	}
	return err.Error()
}

// Fatal reports whether a document code aborts parsing in lenient mode.
func (c Code) Fatal() bool {
	return c == ErrCodeMalformedHeader
}
