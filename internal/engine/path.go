// Package engine provides chess move validation and board manipulation.
package engine

import "github.com/lgbarn/termchess-go/internal/chess"

// CanPieceMove reports whether piece may move from one square to another
// under its movement rules. It ignores whose turn it is and whether the move
// leaves the mover's king attacked, and never mutates the board.
func CanPieceMove(board *chess.Board, piece chess.Piece, from, to chess.Square) bool {
	if !from.InBounds() || !to.InBounds() || from == to {
		return false
	}
	target := board.Get(to)
	if !target.IsEmpty() && target.Colour == piece.Colour {
		return false
	}

	rowDiff := abs(to.Row - from.Row)
	colDiff := abs(to.Col - from.Col)

	switch piece.Kind {
	case chess.Pawn:
		return canPawnMove(board, piece.Colour, from, to)

	case chess.Knight:
		return rowDiff+colDiff == 3 && rowDiff != 0 && colDiff != 0

	case chess.Bishop:
		return canBishopMove(board, from, to)

	case chess.Rook:
		return canRookMove(board, from, to)

	case chess.Queen:
		return canRookMove(board, from, to) || canBishopMove(board, from, to)

	case chess.King:
		return rowDiff <= 1 && colDiff <= 1

	case chess.Empty:
		return false
	}

	return false
}

// CanMove applies CanPieceMove to whatever occupies from.
func CanMove(board *chess.Board, from, to chess.Square) bool {
	piece := board.Get(from)
	if piece.IsEmpty() {
		return false
	}
	return CanPieceMove(board, piece, from, to)
}

// canBishopMove checks for a shared diagonal with a clear path.
func canBishopMove(board *chess.Board, from, to chess.Square) bool {
	if abs(to.Row-from.Row) != abs(to.Col-from.Col) {
		return false
	}
	return isPathClear(board, from, to)
}

// canRookMove checks for a shared row or column with a clear path.
func canRookMove(board *chess.Board, from, to chess.Square) bool {
	if from.Row != to.Row && from.Col != to.Col {
		return false
	}
	return isPathClear(board, from, to)
}

// isPathClear checks that every square strictly between from and to is empty.
// from and to must share a row, column or diagonal.
func isPathClear(board *chess.Board, from, to chess.Square) bool {
	rowDir := sign(to.Row - from.Row)
	colDir := sign(to.Col - from.Col)

	sq := chess.Square{Row: from.Row + rowDir, Col: from.Col + colDir}
	for sq != to {
		if !board.IsEmptyAt(sq) {
			return false
		}
		sq = chess.Square{Row: sq.Row + rowDir, Col: sq.Col + colDir}
	}

	return true
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns the sign of x: -1, 0, or 1.
func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
