package game

import "github.com/lgbarn/termchess-go/internal/chess"

// Outcome is the status of a session after the last ply.
type Outcome int

const (
	InProgress Outcome = iota
	Checkmate
	Stalemate
)

// String returns the lowercase outcome name used in logs and JSON.
func (o Outcome) String() string {
	switch o {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	}
	return "in progress"
}

// IsOver reports whether no further plies may be played.
func (o Outcome) IsOver() bool {
	return o != InProgress
}

// Result formats the outcome as a game result string: "1-0", "0-1",
// "1/2-1/2", or "*" while the game is still running.
func Result(o Outcome, winner chess.Colour) string {
	switch o {
	case Checkmate:
		if winner == chess.White {
			return "1-0"
		}
		return "0-1"
	case Stalemate:
		return "1/2-1/2"
	}
	return "*"
}
