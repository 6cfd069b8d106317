// Package errors provides sentinel errors and error types for termchess.
// It defines common failure conditions and structured error types that keep
// the offending input while allowing inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidPosition indicates a malformed position string.
	ErrInvalidPosition = errors.New("invalid position string")

	// ErrIllegalMove indicates a move rejected by the rules engine.
	ErrIllegalMove = errors.New("illegal move")

	// ErrKingNotFound indicates the board holds no king of the requested colour.
	ErrKingNotFound = errors.New("king not found")

	// ErrSquareOutOfRange indicates board coordinates outside [0,8).
	ErrSquareOutOfRange = errors.New("square out of range")

	// ErrGameOver indicates a move was submitted after the game ended.
	ErrGameOver = errors.New("game is over")

	// ErrGameNotFound indicates an unknown game id.
	ErrGameNotFound = errors.New("game not found")

	// ErrGameFull indicates both colours are already taken.
	ErrGameFull = errors.New("game is full")

	// ErrNotYourTurn indicates a player tried to move for the other side.
	ErrNotYourTurn = errors.New("not your turn")

	// ErrNotSeated indicates a player without a seat tried to manage a game.
	ErrNotSeated = errors.New("player is not seated")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// FormatError reports a position string that could not be loaded.
type FormatError struct {
	Char   rune   // Offending character (0 if not applicable)
	Offset int    // 0-based byte offset in the position string
	Reason string // Short description, e.g. "unknown character"
}

// Error returns a message naming the offending character and its offset.
func (e *FormatError) Error() string {
	var parts []string
	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}
	if e.Char != 0 {
		parts = append(parts, fmt.Sprintf("%q at offset %d", e.Char, e.Offset))
	} else {
		parts = append(parts, fmt.Sprintf("at offset %d", e.Offset))
	}
	return fmt.Sprintf("%v: %s", ErrInvalidPosition, strings.Join(parts, " "))
}

// Unwrap returns ErrInvalidPosition so callers can match with errors.Is().
func (e *FormatError) Unwrap() error {
	return ErrInvalidPosition
}

// MoveRejection classifies why a move was rejected.
type MoveRejection int

const (
	InvalidSquare MoveRejection = iota // Label outside the A-H / 1-8 alphabet
	OutOfRange                         // Coordinates outside the board
	EmptyOrigin                        // No piece on the origin square
	WrongColour                        // Piece belongs to the other side
	IllegalMove                        // Piece cannot move that way
	SelfCheck                          // Move leaves the mover's king attacked
	NoKing                             // Mover has no king on the board
)

// String returns a human readable rejection cause.
func (r MoveRejection) String() string {
	switch r {
	case InvalidSquare:
		return "invalid square"
	case OutOfRange:
		return "square out of range"
	case EmptyOrigin:
		return "no piece on origin square"
	case WrongColour:
		return "wrong colour"
	case IllegalMove:
		return "piece cannot move there"
	case SelfCheck:
		return "king would be attacked"
	case NoKing:
		return "no king on board"
	}
	return "unknown"
}

// MoveError wraps a rejected move with its labels and cause.
// It implements the error interface and unwraps to ErrIllegalMove
// (and, for NoKing, to ErrKingNotFound as well).
type MoveError struct {
	From   string        // Origin label as supplied
	To     string        // Destination label as supplied
	Reason MoveRejection // Why the move was rejected
	Detail string        // Optional extra context
	Err    error         // Optional underlying cause
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var sb strings.Builder
	sb.WriteString(ErrIllegalMove.Error())
	if e.From != "" || e.To != "" {
		fmt.Fprintf(&sb, " %s -> %s", e.From, e.To)
	}
	sb.WriteString(": ")
	sb.WriteString(e.Reason.String())
	if e.Detail != "" {
		sb.WriteString(" (")
		sb.WriteString(e.Detail)
		sb.WriteString(")")
	}
	if e.Err != nil {
		fmt.Fprintf(&sb, ": %v", e.Err)
	}
	return sb.String()
}

// Unwrap exposes ErrIllegalMove and the underlying cause.
func (e *MoveError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrIllegalMove, e.Err}
	}
	return []error{ErrIllegalMove}
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
