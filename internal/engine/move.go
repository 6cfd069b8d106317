package engine

import (
	stderrors "errors"
	"fmt"

	"github.com/lgbarn/termchess-go/internal/chess"
	"github.com/lgbarn/termchess-go/internal/errors"
)

// Move plays fromLabel -> toLabel for colour. On any failure it returns a
// *errors.MoveError and the board is left exactly as it was.
func Move(board *chess.Board, fromLabel, toLabel string, colour chess.Colour) error {
	reject := func(reason errors.MoveRejection, detail string, cause error) error {
		return &errors.MoveError{From: fromLabel, To: toLabel, Reason: reason, Detail: detail, Err: cause}
	}

	from, ok := chess.ParseSquare(fromLabel)
	if !ok {
		return reject(errors.InvalidSquare, fmt.Sprintf("%q", fromLabel), nil)
	}
	to, ok := chess.ParseSquare(toLabel)
	if !ok {
		return reject(errors.InvalidSquare, fmt.Sprintf("%q", toLabel), nil)
	}
	if !from.InBounds() || !to.InBounds() {
		return reject(errors.OutOfRange, "", errors.ErrSquareOutOfRange)
	}

	piece := board.Get(from)
	if piece.IsEmpty() {
		return reject(errors.EmptyOrigin, "", nil)
	}
	if piece.Colour != colour {
		return reject(errors.WrongColour, fmt.Sprintf("%v, %v to move", piece, colour), nil)
	}
	if !CanPieceMove(board, piece, from, to) {
		return reject(errors.IllegalMove, piece.String(), nil)
	}

	safe, err := leavesKingSafe(board, from, to, colour)
	if err != nil {
		if stderrors.Is(err, errors.ErrKingNotFound) {
			return reject(errors.NoKing, "", err)
		}
		return reject(errors.OutOfRange, "", err)
	}
	if !safe {
		return reject(errors.SelfCheck, "", nil)
	}

	board.Set(from, chess.NoPiece)
	board.Set(to, piece)
	return nil
}
