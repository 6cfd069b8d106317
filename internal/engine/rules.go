package engine

import "github.com/lgbarn/termchess-go/internal/chess"

// Material sums the point values of colour's pieces. Kings count zero.
func Material(board *chess.Board, colour chess.Colour) int {
	total := 0
	board.ForEachPiece(func(_ chess.Square, piece chess.Piece) bool {
		if piece.Colour == colour {
			total += piece.Value()
		}
		return true
	})
	return total
}

// MaterialBalance returns White's material minus Black's.
func MaterialBalance(board *chess.Board) int {
	return Material(board, chess.White) - Material(board, chess.Black)
}
