// Package errors provides sentinel errors and error types for the chess rules engine.
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
	// ErrIllegalMove indicates a move rejected by a piece's rules.
	// The engine reports illegality as an outcome; this sentinel is for
	// callers that choose to treat a rejection as a failure.
	ErrIllegalMove = errors.New("illegal move")

	// ErrNoPieceAtOrigin indicates a move whose origin square is empty.
	ErrNoPieceAtOrigin = errors.New("no piece at origin")

	// ErrOutOfRange indicates a coordinate outside the 8x8 grid.
	ErrOutOfRange = errors.New("coordinate out of range")

	// ErrInvalidCoordinate indicates a malformed square string.
	ErrInvalidCoordinate = errors.New("invalid coordinate")

	// ErrInvalidMove indicates a malformed move string.
	ErrInvalidMove = errors.New("invalid move string")

	// ErrInvalidSquare indicates a piece/colour combination that cannot
	// occupy a square (a piece without a colour, or a colour without a piece).
	ErrInvalidSquare = errors.New("invalid square contents")

	// ErrNoRuleManager indicates a piece kind with no movement rules.
	ErrNoRuleManager = errors.New("no rule manager for piece")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// CoordinateError wraps a coordinate decoding failure with the offending input.
type CoordinateError struct {
	Err   error  // The underlying error
	Input string // The text that failed to decode
}

// Error returns the input followed by the underlying error.
func (e *CoordinateError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("coordinate %q", e.Input)
	}
	return fmt.Sprintf("%q: %v", e.Input, e.Err)
}

// Unwrap returns the underlying error.
func (e *CoordinateError) Unwrap() error {
	return e.Err
}

// MoveError wraps errors with move script context, including script name,
// line, ply position, and move text. It implements the error interface
// and supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err      error  // The underlying error
	Script   string // Script name (if known)
	Line     int    // Line number in the script (if known)
	PlyNum   int    // 1-based ply number (0 if not applicable)
	MoveText string // The move text that caused the error (if applicable)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Script != "" {
		if e.Line > 0 {
			parts = append(parts, fmt.Sprintf("%s:%d", e.Script, e.Line))
		} else {
			parts = append(parts, e.Script)
		}
	} else if e.Line > 0 {
		parts = append(parts, fmt.Sprintf("line %d", e.Line))
	}

	if e.PlyNum > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.PlyNum))
	}

	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	if context == "" {
		return "move error"
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
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
