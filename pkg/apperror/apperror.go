package apperror

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError collects schema problems. It is reported, never fatal:
// callers inspect Errors and decide what to surface.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "validation failed"
	}
	return "validation failed: " + strings.Join(e.Errors, "; ")
}

// NetworkError marks a collaborator that could not be reached or answered
// with a non-2xx status. Previous state must be preserved by callers.
type NetworkError struct {
	Op  string // what we were doing, e.g. "search documents"
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: service unavailable: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// FormatError marks a collaborator that answered, but with a shape we do not
// understand. Kept distinct from NetworkError so users can tell a misbehaving
// service from a dead one.
type FormatError struct {
	Op  string
	Err error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s: unexpected response format: %v", e.Op, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// Network wraps err as a NetworkError.
func Network(op string, err error) error {
	return &NetworkError{Op: op, Err: err}
}

// Format wraps err as a FormatError.
func Format(op string, err error) error {
	return &FormatError{Op: op, Err: err}
}

// IsNetwork reports whether err is (or wraps) a NetworkError.
func IsNetwork(err error) bool {
	var ne *NetworkError
	return errors.As(err, &ne)
}

// IsFormat reports whether err is (or wraps) a FormatError.
func IsFormat(err error) bool {
	var fe *FormatError
	return errors.As(err, &fe)
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
