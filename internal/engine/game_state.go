package engine

import (
	"github.com/lgbarn/termchess-go/internal/chess"
	"github.com/lgbarn/termchess-go/internal/errors"
)

// FindLegalMove searches colour's pieces in row-major order, and for each
// piece every destination in row-major order, for the first move that does
// not leave colour's king attacked. found is false when no such move exists.
// It fails with ErrKingNotFound when colour has no king.
func FindLegalMove(board *chess.Board, colour chess.Colour) (move chess.MovePair, found bool, err error) {
	if _, ok := FindKing(board, colour); !ok {
		return chess.MovePair{}, false, errors.Wrapf(errors.ErrKingNotFound, "%v", colour)
	}
	board.ForEachPiece(func(from chess.Square, piece chess.Piece) bool {
		if piece.Colour != colour {
			return true
		}
		move, found, err = firstLegalFrom(board, piece, from)
		return !found && err == nil
	})
	return move, found, err
}

// firstLegalFrom returns the first legal destination for the piece on from.
func firstLegalFrom(board *chess.Board, piece chess.Piece, from chess.Square) (move chess.MovePair, found bool, err error) {
	err = eachLegalMove(board, piece, from, func(m chess.MovePair) bool {
		move, found = m, true
		return false
	})
	return move, found, err
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(board *chess.Board, colour chess.Colour) (bool, error) {
	_, found, err := FindLegalMove(board, colour)
	return found, err
}

// IsCheckmate returns true when colour has no move that leaves its king
// unattacked. A position where the king is not attacked but no legal move
// exists (stalemate) also reports true; use IsStalemate to tell them apart.
func IsCheckmate(board *chess.Board, colour chess.Colour) (bool, error) {
	found, err := HasLegalMoves(board, colour)
	if err != nil {
		return false, err
	}
	return !found, nil
}

// IsStalemate returns true if colour has no legal move and is not in check.
func IsStalemate(board *chess.Board, colour chess.Colour) (bool, error) {
	inCheck, err := IsInCheck(board, colour)
	if err != nil {
		return false, err
	}
	if inCheck {
		return false, nil
	}
	found, err := HasLegalMoves(board, colour)
	if err != nil {
		return false, err
	}
	return !found, nil
}
