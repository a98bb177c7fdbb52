package pkg

// Sentinel errors shared by the spent packages.
// All of them can be tested with errors.Is.

import (
	"fmt"
	"strings"
)

// Error represents a chain of errors, innermost first.
type Error []error

// ErrParse is returned when deserializing haversine input fails.
//
// Wrap it with the position and byte context of the failure.
var ErrParse = MakeErrorf("parse error")

// ErrReadInput is returned when reading an input file fails.
var ErrReadInput = MakeErrorf("failed to read input")

// ErrWriteOutput is returned when writing a generated data or answer file
// fails.
var ErrWriteOutput = MakeErrorf("failed to write output")

// ErrAnswersExhausted is returned when the validation answer stream runs out
// before every computed distance has been checked.
var ErrAnswersExhausted = MakeErrorf("validation input exhausted")

// ErrValidation is returned when a computed distance disagrees with its
// reference answer beyond the accepted error margin.
var ErrValidation = MakeErrorf("failed validation")

// ErrFilter is returned when a report filter expression does not compile or
// does not evaluate to a boolean.
var ErrFilter = MakeErrorf("invalid report filter")

// MakeError constructs an Error from the given errors.
// The errors are stored in the order they are provided:
// the first argument is the innermost error in the chain.
func MakeError(errs ...error) Error {
	var e Error

	for _, err := range errs {
		if err != nil {
			e = append(e, UnwrapErrors(err)...)
		}
	}

	return e
}

// MakeErrorf constructs an Error from a formatted error message.
func MakeErrorf(format string, args ...any) Error {
	return MakeError(fmt.Errorf(format, args...))
}

// Error returns all errors in the chain joined with ": ",
// from innermost to outermost.
func (e Error) Error() string {
	var sb strings.Builder

	for i, err := range e {
		if i > 0 {
			sb.WriteString(": ")
		}

		sb.WriteString(err.Error())
	}

	return sb.String()
}

// Wrap appends one or more errors to the receiver and returns the result.
func (e Error) Wrap(err ...error) Error {
	return append(e, err...)
}

// Wrapf appends a formatted error to the receiver and returns the result.
func (e Error) Wrapf(format string, args ...any) Error {
	return append(e, fmt.Errorf(format, args...))
}

// Unwrap returns the slice of errors contained in the receiver.
func (e Error) Unwrap() []error {
	return e
}

// UnwrapErrors recursively unwraps an error chain and returns a slice
// containing all errors in the chain, starting from the innermost error.
func UnwrapErrors(err error) Error {
	if err == nil {
		return nil
	}

	chain := Error{}

	if e, ok := err.(interface{ Unwrap() []error }); ok {
		for _, wrapped := range e.Unwrap() {
			chain = append(chain, UnwrapErrors(wrapped)...)
		}
	} else if e, ok := err.(interface{ Unwrap() error }); ok {
		chain = append(chain, UnwrapErrors(e.Unwrap())...)
	}

	return append(chain, err)
}
