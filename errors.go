package tycon

import (
	"errors"
	"fmt"
)

// ErrorCode represents a machine-readable error code.
type ErrorCode string

const (
	// CodeInvalidInteger reports an integer that matches no declared constant.
	CodeInvalidInteger ErrorCode = "invalid_integer"

	// CodeInvalidName reports a string that matches no declared constant name.
	CodeInvalidName ErrorCode = "invalid_name"

	// CodeDomain reports a set member holding an out-of-table value.
	// Only reachable through unchecked construction.
	CodeDomain ErrorCode = "domain"

	// CodeEmptySet reports a set defined with zero declarations.
	CodeEmptySet ErrorCode = "empty_set"
)

// Error is the standard error envelope for set operations.
type Error struct {
	Code    ErrorCode
	Set     string // name of the constant set, e.g. "Color"
	Message string
}

func (e *Error) Error() string {
	if e.Set == "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", e.Set, e.Code, e.Message)
}

// NewError creates a new set error.
func NewError(code ErrorCode, set, message string) *Error {
	return &Error{
		Code:    code,
		Set:     set,
		Message: message,
	}
}

// Errorf creates a new set error with a formatted message.
func Errorf(code ErrorCode, set, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Set:     set,
		Message: fmt.Sprintf(format, args...),
	}
}

// CodeOf returns the ErrorCode carried by err, or "" if err does not wrap
// an *Error.
func CodeOf(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
