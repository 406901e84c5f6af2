package seq

import (
	"errors"
	"fmt"
)

// OpError represents a failure detected by a sequence operation.
//
// Failures include:
//   - Invalid argument: non-positive window size or step, bad permutation index
//   - Empty input: extremum selection over an empty sequence
//   - Empty fold: no-seed fold over an empty sequence with no fallback
//
// All failures are deterministic given the same input and are reported
// synchronously to the immediate caller.
type OpError struct {
	// Code identifies the error category.
	Code ErrorCode

	// Op names the operation that failed, e.g. "Window".
	Op string

	// Message is a human-readable description.
	Message string
}

// ErrorCode categorizes operation errors.
type ErrorCode string

const (
	// ErrCodeInvalidArgument indicates a structurally invalid parameter,
	// such as a window step below 1.
	ErrCodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"

	// ErrCodeEmptyInput indicates an operation that requires at least one
	// element was given none.
	ErrCodeEmptyInput ErrorCode = "EMPTY_INPUT"

	// ErrCodeEmptyFold indicates a no-seed fold over an empty sequence
	// with no fallback supplied.
	ErrCodeEmptyFold ErrorCode = "EMPTY_FOLD"
)

// Error implements the error interface.
func (e *OpError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s: %s: %s", e.Code, e.Op, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsInvalidArgument reports whether err is an OpError with
// ErrCodeInvalidArgument. Uses errors.As to handle wrapped errors.
func IsInvalidArgument(err error) bool {
	var oe *OpError
	return errors.As(err, &oe) && oe.Code == ErrCodeInvalidArgument
}

// IsEmptyInput reports whether err is an OpError with ErrCodeEmptyInput.
func IsEmptyInput(err error) bool {
	var oe *OpError
	return errors.As(err, &oe) && oe.Code == ErrCodeEmptyInput
}

// IsEmptyFold reports whether err is an OpError with ErrCodeEmptyFold.
func IsEmptyFold(err error) bool {
	var oe *OpError
	return errors.As(err, &oe) && oe.Code == ErrCodeEmptyFold
}

func newInvalidArgument(op, format string, args ...any) *OpError {
	return &OpError{Code: ErrCodeInvalidArgument, Op: op, Message: fmt.Sprintf(format, args...)}
}

func newEmptyInput(op string) *OpError {
	return &OpError{Code: ErrCodeEmptyInput, Op: op, Message: "empty sequence"}
}

func newEmptyFold(op string) *OpError {
	return &OpError{Code: ErrCodeEmptyFold, Op: op, Message: "no-seed fold over empty sequence with no fallback"}
}
