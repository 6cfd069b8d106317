package testutil

import (
	"strings"
	"testing"

	"github.com/lgbarn/termchess-go/internal/chess"
	"github.com/lgbarn/termchess-go/internal/engine"
)

// MustLoad builds a board from a position string, failing the test on error.
func MustLoad(t testing.TB, position string) *chess.Board {
	t.Helper()
	board, err := engine.NewBoardFromPosition(position)
	if err != nil {
		t.Fatalf("load %q: %v", position, err)
	}
	return board
}

// MustSquare parses a label such as "E2", failing the test if it is invalid.
func MustSquare(t testing.TB, label string) chess.Square {
	t.Helper()
	sq, ok := chess.ParseSquare(label)
	if !ok {
		t.Fatalf("invalid square label %q", label)
	}
	return sq
}

// PlayMoves applies space-separated moves written as "E2E4", alternating
// colours starting with first, and returns the side to move afterwards.
func PlayMoves(t testing.TB, board *chess.Board, first chess.Colour, moves string) chess.Colour {
	t.Helper()
	colour := first
	for _, m := range strings.Fields(moves) {
		if len(m) != 4 {
			t.Fatalf("move %q is not four characters", m)
		}
		if err := engine.Move(board, m[:2], m[2:], colour); err != nil {
			t.Fatalf("move %s for %v: %v", m, colour, err)
		}
		colour = colour.Opposite()
	}
	return colour
}
