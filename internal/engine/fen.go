package engine

import (
	"strings"

	"github.com/lgbarn/termchess-go/internal/chess"
	"github.com/lgbarn/termchess-go/internal/errors"
)

// InitialPosition is the position string for the standard starting position.
const InitialPosition = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

// RankSeparator separates ranks in a position string.
const RankSeparator = '/'

// NewBoardFromPosition creates a board from a position string.
func NewBoardFromPosition(position string) (*chess.Board, error) {
	board := chess.NewBoard()
	if err := LoadPosition(board, position); err != nil {
		return nil, err
	}
	return board, nil
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *chess.Board {
	board, _ := NewBoardFromPosition(InitialPosition)
	return board
}

// LoadPosition replaces the contents of board with the given position
// string: ranks top to bottom separated by '/', each rank a run of piece
// letters and digits counting empty squares. Piece counts and king
// uniqueness are not validated. On error the board is left unchanged.
func LoadPosition(board *chess.Board, position string) error {
	parsed := chess.NewBoard()
	row, col := 0, 0

	for offset, c := range position {
		switch {
		case c == RankSeparator:
			row++
			col = 0
			if row >= chess.BoardSize {
				return &errors.FormatError{Char: c, Offset: offset, Reason: "too many ranks"}
			}
		case c >= '1' && c <= '8':
			col += int(c - '0')
			if col > chess.BoardSize {
				return &errors.FormatError{Char: c, Offset: offset, Reason: "rank overflows the board"}
			}
		default:
			piece, ok := chess.PieceFromSymbol(c)
			if !ok {
				return &errors.FormatError{Char: c, Offset: offset, Reason: "unknown character"}
			}
			if col >= chess.BoardSize {
				return &errors.FormatError{Char: c, Offset: offset, Reason: "rank overflows the board"}
			}
			parsed.Set(chess.Square{Row: row, Col: col}, piece)
			col++
		}
	}

	*board = *parsed
	return nil
}

// BoardToPosition serialises the board into the format LoadPosition reads.
func BoardToPosition(board *chess.Board) string {
	var sb strings.Builder

	for row := 0; row < chess.BoardSize; row++ {
		emptyCount := 0
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Get(chess.Square{Row: row, Col: col})
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Symbol())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row != chess.BoardSize-1 {
			sb.WriteByte(RankSeparator)
		}
	}

	return sb.String()
}

// TranslateSquareToLabel formats board coordinates as a label such as "E2".
func TranslateSquareToLabel(sq chess.Square) string {
	return sq.Label()
}
