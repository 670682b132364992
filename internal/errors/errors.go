// Package errors provides sentinel errors and error types for the rules engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed position string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidMove indicates a malformed UCI move string.
	ErrInvalidMove = errors.New("invalid move string")

	// ErrInvalidSquare indicates a malformed square name.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrIllegalMove indicates a well-formed move absent from the legal set.
	ErrIllegalMove = errors.New("illegal move")

	// ErrGameOver indicates a move was submitted after the result was decided.
	ErrGameOver = errors.New("game is over")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// ParseError describes rejected textual input. It names the offending
// token so the caller can report it, and unwraps to one of the sentinels.
type ParseError struct {
	Err    error  // The underlying sentinel
	Input  string // The full input being parsed (if known)
	Token  string // The offending token or character
	Reason string // What was wrong with it
}

// Error returns a formatted error message with the input and token.
func (e *ParseError) Error() string {
	var parts []string

	if e.Input != "" {
		parts = append(parts, fmt.Sprintf("%q", e.Input))
	}

	switch {
	case e.Reason != "" && e.Token != "":
		parts = append(parts, fmt.Sprintf("%s (token %q)", e.Reason, e.Token))
	case e.Reason != "":
		parts = append(parts, e.Reason)
	case e.Token != "":
		parts = append(parts, fmt.Sprintf("unexpected %q", e.Token))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// WithInput returns err with the full input attached when it is a
// *ParseError that does not carry one yet. Other errors are returned as is.
func WithInput(err error, input string) error {
	var pe *ParseError
	if errors.As(err, &pe) && pe.Input == "" {
		cp := *pe
		cp.Input = input
		return &cp
	}
	return err
}

// InvariantError reports a broken engine precondition, such as a missing
// king or a reserve count driven negative. It is raised with panic, never
// returned: it means the caller skipped legality validation.
type InvariantError struct {
	What string
}

// Error returns the violated invariant.
func (e *InvariantError) Error() string {
	return "invariant violation: " + e.What
}

// Invariant panics with an *InvariantError.
func Invariant(format string, args ...interface{}) {
	panic(&InvariantError{What: fmt.Sprintf(format, args...)})
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
