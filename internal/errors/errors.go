// Package errors provides sentinel errors and error types for the variant
// board engine. Context-carrying types unwrap to the sentinels so callers
// can inspect failures with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
var (
	// ErrInvalidFEN indicates a malformed FEN string or an illegal position.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrIllegalMove indicates a well-formed move that the rules forbid.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidMove indicates move text that cannot be decoded.
	ErrInvalidMove = errors.New("invalid move notation")

	// ErrAmbiguousMove indicates SAN text matching more than one legal move.
	ErrAmbiguousMove = errors.New("ambiguous move")

	// ErrUnknownVariant indicates a variant name that is not registered.
	ErrUnknownVariant = errors.New("unknown variant")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// FENError reports which part of a FEN string was rejected.
type FENError struct {
	Err   error  // The underlying error
	FEN   string // The full FEN string (if known)
	Field string // Name of the offending field, e.g. "castling"
	Value string // The offending text
}

// Error returns a formatted message naming the field and value.
func (e *FENError) Error() string {
	var parts []string

	if e.Field != "" {
		if e.Value != "" {
			parts = append(parts, fmt.Sprintf("%s %q", e.Field, e.Value))
		} else {
			parts = append(parts, e.Field)
		}
	}
	if e.FEN != "" {
		parts = append(parts, fmt.Sprintf("in %q", e.FEN))
	}

	context := strings.Join(parts, " ")
	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	if context == "" {
		return "FEN error"
	}
	return context
}

// Unwrap returns the underlying error.
func (e *FENError) Unwrap() error {
	return e.Err
}

// MoveError wraps a move failure with the notation and position context.
type MoveError struct {
	Err      error  // The underlying error
	Notation string // The move text that caused the error (if applicable)
	Ply      int    // 1-based ply at which the move was attempted (0 if unknown)
	Variant  string // Variant name (if known)
}

// Error returns a formatted message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Variant != "" {
		parts = append(parts, e.Variant)
	}
	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}
	if e.Notation != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.Notation))
	}

	context := strings.Join(parts, ", ")
	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error.
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

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
