package engine

import "github.com/lgbarn/termchess-go/internal/chess"

// Starting rows for the two-square advance.
const (
	blackPawnRow = 1
	whitePawnRow = 6
)

// pawnDirection returns the row delta of a forward step: Black moves down
// the grid (increasing row), White moves up.
func pawnDirection(colour chess.Colour) int {
	if colour == chess.Black {
		return 1
	}
	return -1
}

// canPawnMove checks pawn pushes and captures. Same-colour destinations are
// already rejected by the caller.
func canPawnMove(board *chess.Board, colour chess.Colour, from, to chess.Square) bool {
	dir := pawnDirection(colour)
	forward := (to.Row - from.Row) * dir
	colDiff := abs(to.Col - from.Col)
	targetEmpty := board.IsEmptyAt(to)

	switch {
	case forward == 1 && colDiff == 0:
		return targetEmpty

	case forward == 2 && colDiff == 0:
		startRow := whitePawnRow
		if colour == chess.Black {
			startRow = blackPawnRow
		}
		if from.Row != startRow || !targetEmpty {
			return false
		}
		// No jumping over a piece on the intermediate square.
		return board.IsEmptyAt(chess.Square{Row: from.Row + dir, Col: from.Col})

	case forward == 1 && colDiff == 1:
		return !targetEmpty
	}

	return false
}
