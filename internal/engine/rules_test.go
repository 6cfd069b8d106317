package engine

import (
	"testing"

	"github.com/lgbarn/termchess-go/internal/chess"
)

func mustBoard(t *testing.T, position string) *chess.Board {
	t.Helper()
	board, err := NewBoardFromPosition(position)
	if err != nil {
		t.Fatalf("NewBoardFromPosition(%q) error: %v", position, err)
	}
	return board
}

// TestCanMove_Rules checks each kind's movement predicate.
func TestCanMove_Rules(t *testing.T) {
	tests := []struct {
		name     string
		position string
		from, to string
		want     bool
	}{
		// Pawns
		{"white pawn single push", InitialPosition, "E2", "E3", true},
		{"white pawn double push", InitialPosition, "E2", "E4", true},
		{"white pawn triple push", InitialPosition, "E2", "E5", false},
		{"black pawn single push", InitialPosition, "E7", "E6", true},
		{"black pawn double push", InitialPosition, "E7", "E5", true},
		{"pawn cannot move backwards", "8/8/8/8/4P3/8/8/8", "E4", "E3", false},
		{"pawn cannot move sideways", "8/8/8/8/4P3/8/8/8", "E4", "D4", false},
		{"double push only from start row", "8/8/8/8/8/4P3/8/8", "E3", "E5", false},
		{"push blocked by enemy", "8/8/8/8/8/4p3/4P3/8", "E2", "E3", false},
		{"double push blocked at target", "8/8/8/8/4p3/8/4P3/8", "E2", "E4", false},
		{"double push cannot jump", "8/8/8/8/8/4n3/4P3/8", "E2", "E4", false},
		{"black double push cannot jump", "8/4p3/4N3/8/8/8/8/8", "E7", "E5", false},
		{"pawn captures diagonally", "8/8/8/3p4/4P3/8/8/8", "E4", "D5", true},
		{"black pawn captures diagonally", "8/8/8/3p4/4P3/8/8/8", "D5", "E4", true},
		{"pawn cannot capture forward", "8/8/8/4p3/4P3/8/8/8", "E4", "E5", false},
		{"pawn diagonal needs a target", "8/8/8/8/4P3/8/8/8", "E4", "F5", false},
		{"pawn cannot capture own piece", "8/8/8/3P4/4P3/8/8/8", "E4", "D5", false},
		{"pawn cannot capture backwards", "8/8/8/8/4P3/3p4/8/8", "E4", "D3", false},

		// Knights
		{"knight L shape", InitialPosition, "G1", "F3", true},
		{"knight other L shape", InitialPosition, "G1", "H3", true},
		{"knight jumps pieces", InitialPosition, "B1", "C3", true},
		{"knight onto own piece", InitialPosition, "G1", "E2", false},
		{"knight straight three", "8/8/8/8/3N4/8/8/8", "D4", "D7", false},
		{"knight diagonal", "8/8/8/8/3N4/8/8/8", "D4", "E5", false},
		{"knight captures", "8/8/8/4p3/8/3N4/8/8", "D3", "E5", true},

		// Bishops
		{"bishop diagonal", "8/8/8/8/3B4/8/8/8", "D4", "H8", true},
		{"bishop long diagonal down", "8/8/8/8/3B4/8/8/8", "D4", "A1", true},
		{"bishop not straight", "8/8/8/8/3B4/8/8/8", "D4", "D8", false},
		{"bishop blocked", "8/8/8/8/3B4/8/1p6/8", "D4", "A1", false},
		{"bishop captures blocker", "8/8/8/8/3B4/8/1p6/8", "D4", "B2", true},
		{"bishop blocked at start", InitialPosition, "C1", "E3", false},

		// Rooks
		{"rook along rank", "8/8/8/8/8/8/R7/8", "A2", "H2", true},
		{"rook along file", "8/8/8/8/8/8/R7/8", "A2", "A8", true},
		{"rook not diagonal", "8/8/8/8/8/8/R7/8", "A2", "B3", false},
		{"rook blocked by own pawn", "8/8/8/8/8/8/R2P4/8", "A2", "H2", false},
		{"rook up to own pawn", "8/8/8/8/8/8/R2P4/8", "A2", "C2", true},
		{"rook onto own pawn", "8/8/8/8/8/8/R2P4/8", "A2", "D2", false},
		{"rook blocked by enemy", "8/8/8/8/8/8/R2p4/8", "A2", "H2", false},
		{"rook captures enemy", "8/8/8/8/8/8/R2p4/8", "A2", "D2", true},

		// Queens
		{"queen straight", "8/8/8/8/3Q4/8/8/8", "D4", "D8", true},
		{"queen diagonal", "8/8/8/8/3Q4/8/8/8", "D4", "G7", true},
		{"queen knight jump", "8/8/8/8/3Q4/8/8/8", "D4", "E6", false},
		{"queen blocked", InitialPosition, "D1", "D4", false},

		// Kings
		{"king one step", "8/8/8/8/3K4/8/8/8", "D4", "D5", true},
		{"king diagonal step", "8/8/8/8/3K4/8/8/8", "D4", "C3", true},
		{"king two steps", "8/8/8/8/3K4/8/8/8", "D4", "D6", false},
		{"king no castling", "8/8/8/8/8/8/8/4K2R", "E1", "G1", false},
		{"king onto own piece", InitialPosition, "E1", "E2", false},
		{"king captures", "8/8/8/8/3K4/3p4/8/8", "D4", "D3", true},

		// Null moves and empty squares
		{"null move", "8/8/8/8/3K4/8/8/8", "D4", "D4", false},
		{"empty origin", "8/8/8/8/3K4/8/8/8", "A1", "A2", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustBoard(t, tt.position)
			before := BoardToPosition(board)
			if got := CanMove(board, sq(tt.from), sq(tt.to)); got != tt.want {
				t.Errorf("CanMove(%s, %s) = %v; want %v", tt.from, tt.to, got, tt.want)
			}
			if after := BoardToPosition(board); after != before {
				t.Errorf("predicate mutated the board: %q -> %q", before, after)
			}
		})
	}
}

func TestCanPieceMove_OffBoard(t *testing.T) {
	board := chess.NewBoard()
	piece := chess.W(chess.Queen)
	from := chess.Square{Row: 3, Col: 3}
	for _, to := range []chess.Square{{Row: -1, Col: 3}, {Row: 3, Col: 8}, {Row: 8, Col: 8}} {
		if CanPieceMove(board, piece, from, to) {
			t.Errorf("CanPieceMove(%v -> %+v) = true; want false", from, to)
		}
	}
	if CanPieceMove(board, chess.NoPiece, from, chess.Square{Row: 3, Col: 4}) {
		t.Error("empty piece should never move")
	}
}

func TestMaterial(t *testing.T) {
	tests := []struct {
		name         string
		position     string
		white, black int
	}{
		{"initial", InitialPosition, 39, 39},
		{"kings only", "4k3/8/8/8/8/8/8/4K3", 0, 0},
		{"rook up", "4k3/8/8/8/8/8/8/R3K3", 5, 0},
		{"queen vs minor pieces", "2bnk3/8/8/8/8/8/8/3QK3", 9, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustBoard(t, tt.position)
			if got := Material(board, chess.White); got != tt.white {
				t.Errorf("Material(White) = %d; want %d", got, tt.white)
			}
			if got := Material(board, chess.Black); got != tt.black {
				t.Errorf("Material(Black) = %d; want %d", got, tt.black)
			}
			if got := MaterialBalance(board); got != tt.white-tt.black {
				t.Errorf("MaterialBalance() = %d; want %d", got, tt.white-tt.black)
			}
		})
	}
}
