package engine

import "github.com/lgbarn/termchess-go/internal/chess"

// withTrialMove moves the piece on from to to, evaluates fn against the
// resulting board, then restores both squares whatever fn returns.
func withTrialMove[T any](board *chess.Board, from, to chess.Square, fn func() (T, error)) (T, error) {
	piece := board.Get(from)
	captured := board.Get(to)

	board.Set(from, chess.NoPiece)
	board.Set(to, piece)
	defer func() {
		board.Set(to, captured)
		board.Set(from, piece)
	}()

	return fn()
}

// leavesKingSafe reports whether moving from -> to leaves colour's king unattacked.
func leavesKingSafe(board *chess.Board, from, to chess.Square, colour chess.Colour) (bool, error) {
	return withTrialMove(board, from, to, func() (bool, error) {
		inCheck, err := IsInCheck(board, colour)
		if err != nil {
			return false, err
		}
		return !inCheck, nil
	})
}
