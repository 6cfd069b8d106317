package engine

import (
	"github.com/lgbarn/termchess-go/internal/chess"
	"github.com/lgbarn/termchess-go/internal/errors"
)

// FindKing returns the first square holding a king of the given colour,
// scanning row 0..7 and column 0..7. ok is false when there is none.
func FindKing(board *chess.Board, colour chess.Colour) (sq chess.Square, ok bool) {
	king := chess.Piece{Kind: chess.King, Colour: colour}
	board.ForEachPiece(func(at chess.Square, piece chess.Piece) bool {
		if piece == king {
			sq, ok = at, true
			return false
		}
		return true
	})
	return sq, ok
}

// IsAttacked reports whether any piece not of colour can move onto sq.
// Pawns only attack occupied squares, so for an empty sq their diagonal
// reach is not counted.
func IsAttacked(board *chess.Board, sq chess.Square, colour chess.Colour) (bool, error) {
	if !sq.InBounds() {
		return false, errors.Wrapf(errors.ErrSquareOutOfRange, "row %d col %d", sq.Row, sq.Col)
	}

	attacked := false
	board.ForEachPiece(func(from chess.Square, piece chess.Piece) bool {
		if piece.Colour != colour && CanPieceMove(board, piece, from, sq) {
			attacked = true
			return false
		}
		return true
	})
	return attacked, nil
}

// IsInCheck returns true if the given colour's king is attacked.
// It fails with ErrKingNotFound when the colour has no king.
func IsInCheck(board *chess.Board, colour chess.Colour) (bool, error) {
	kingSq, ok := FindKing(board, colour)
	if !ok {
		return false, errors.Wrapf(errors.ErrKingNotFound, "%v", colour)
	}
	return IsAttacked(board, kingSq, colour)
}
