package engine

import (
	"github.com/lgbarn/termchess-go/internal/chess"
	"github.com/lgbarn/termchess-go/internal/errors"
)

// LegalMoves lists every move available to colour, in row-major order of
// origin then destination.
func LegalMoves(board *chess.Board, colour chess.Colour) ([]chess.MovePair, error) {
	var moves []chess.MovePair
	var err error
	board.ForEachPiece(func(from chess.Square, piece chess.Piece) bool {
		if piece.Colour != colour {
			return true
		}
		var fromMoves []chess.MovePair
		fromMoves, err = legalMovesFor(board, piece, from)
		moves = append(moves, fromMoves...)
		return err == nil
	})
	if err != nil {
		return nil, err
	}
	return moves, nil
}

// LegalMovesFrom lists the legal moves of the piece on from. An empty
// square yields no moves.
func LegalMovesFrom(board *chess.Board, from chess.Square) ([]chess.MovePair, error) {
	if !from.InBounds() {
		return nil, errors.Wrapf(errors.ErrSquareOutOfRange, "row %d col %d", from.Row, from.Col)
	}
	piece := board.Get(from)
	if piece.IsEmpty() {
		return nil, nil
	}
	return legalMovesFor(board, piece, from)
}

// legalMovesFor tries all 64 destinations for one piece.
func legalMovesFor(board *chess.Board, piece chess.Piece, from chess.Square) ([]chess.MovePair, error) {
	var moves []chess.MovePair
	err := eachLegalMove(board, piece, from, func(m chess.MovePair) bool {
		moves = append(moves, m)
		return true
	})
	if err != nil {
		return nil, err
	}
	return moves, nil
}

// eachLegalMove calls fn for every destination, in row-major order, that the
// piece on from can reach without leaving its king attacked. It stops as
// soon as fn returns false.
func eachLegalMove(board *chess.Board, piece chess.Piece, from chess.Square, fn func(chess.MovePair) bool) error {
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			to := chess.Square{Row: row, Col: col}
			if !CanPieceMove(board, piece, from, to) {
				continue
			}
			safe, err := leavesKingSafe(board, from, to, piece.Colour)
			if err != nil {
				return err
			}
			if safe && !fn(chess.MovePair{From: from, To: to}) {
				return nil
			}
		}
	}
	return nil
}
