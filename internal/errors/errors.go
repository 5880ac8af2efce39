// Package errors provides sentinel errors and error types for the rules engine.
// Each failure kind is a sentinel usable with errors.Is(); the category
// wrappers ParseError, MoveError and IntegrityError carry context and are
// recovered with errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for SAN parsing.
var (
	// ErrMalformedMove indicates text that is not a SAN move.
	ErrMalformedMove = errors.New("malformed move")

	// ErrTargetOffBoard indicates a destination outside a1-h8.
	ErrTargetOffBoard = errors.New("target square off board")
)

// Sentinel errors for move verification.
var (
	ErrNoLegalOrigin         = errors.New("no piece can make that move")
	ErrAmbiguousOrigin       = errors.New("ambiguous move")
	ErrIllegalForPieceKind   = errors.New("illegal move for that piece")
	ErrWouldLeaveKingInCheck = errors.New("move would leave own king in check")
	ErrCastlingNotAvailable  = errors.New("castling not available")
	ErrCastlingPathBlocked   = errors.New("castling path blocked")
	ErrCastlingThroughCheck  = errors.New("cannot castle out of, through or into check")

	// ErrPromotionRequired signals that the move reaches the last rank and
	// the caller must supply a promotion piece before verifying again.
	ErrPromotionRequired = errors.New("promotion piece required")

	// ErrPromotionNotAllowed indicates a promotion piece on a move that
	// cannot promote, or an unsupported promotion piece.
	ErrPromotionNotAllowed = errors.New("promotion not allowed")
)

// Other sentinel errors.
var (
	// ErrIntegrity indicates the engine state would become inconsistent.
	// It is never caused by user input.
	ErrIntegrity = errors.New("engine integrity violation")

	// ErrInvalidFEN indicates a malformed or unplayable FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// ParseError reports a SAN string that could not be tokenized.
type ParseError struct {
	Err    error  // ErrMalformedMove or ErrTargetOffBoard
	Input  string // The text as given
	Column int    // 1-based position of the offending character (0 if unknown)
}

// Error returns a formatted error message with the input and position.
func (e *ParseError) Error() string {
	var parts []string
	if e.Input != "" {
		parts = append(parts, fmt.Sprintf("%q", e.Input))
	}
	if e.Column > 0 {
		parts = append(parts, fmt.Sprintf("column %d", e.Column))
	}
	msg := "parse error"
	if e.Err != nil {
		msg = e.Err.Error()
	}
	if len(parts) == 0 {
		return msg
	}
	return fmt.Sprintf("%s: %s", strings.Join(parts, ", "), msg)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// MoveError reports a well-formed move that is not legal in the position.
type MoveError struct {
	Err        error    // One of the verification sentinels
	MoveText   string   // The move text (if known)
	Side       string   // Side to move
	Candidates []string // Origin squares considered, for ambiguity reports
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string
	if e.Side != "" {
		parts = append(parts, e.Side)
	}
	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}
	msg := "illegal move"
	if e.Err != nil {
		msg = e.Err.Error()
	}
	if len(e.Candidates) > 0 {
		msg = fmt.Sprintf("%s (candidates %s)", msg, strings.Join(e.Candidates, ", "))
	}
	if len(parts) == 0 {
		return msg
	}
	return fmt.Sprintf("%s: %s", strings.Join(parts, ", "), msg)
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// IntegrityError reports an engine bug: a registry or state mutation that
// would break an invariant. The game state must be presumed corrupt.
type IntegrityError struct {
	Op     string // Operation that failed, e.g. "move_piece"
	Square string // Square involved (if any)
	Detail string
}

// Error returns a formatted error message.
func (e *IntegrityError) Error() string {
	var sb strings.Builder
	sb.WriteString(ErrIntegrity.Error())
	if e.Op != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Op)
	}
	if e.Square != "" {
		sb.WriteString(" at ")
		sb.WriteString(e.Square)
	}
	if e.Detail != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Detail)
	}
	return sb.String()
}

// Unwrap returns ErrIntegrity.
func (e *IntegrityError) Unwrap() error {
	return ErrIntegrity
}

// IsRecoverable reports whether err came from bad user input (parse or
// verification) rather than from corrupted engine state.
func IsRecoverable(err error) bool {
	if err == nil {
		return true
	}
	var pe *ParseError
	var me *MoveError
	return (errors.As(err, &pe) || errors.As(err, &me)) && !errors.Is(err, ErrIntegrity)
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
