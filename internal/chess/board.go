package chess

// Board is an 8x8 grid of optional pieces, indexed [row][col].
// Row 0 is the top rank as rendered (rank 8).
type Board struct {
	Squares [BoardSize][BoardSize]Piece
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// Get returns the piece at sq, or NoPiece if sq is empty or off the board.
func (b *Board) Get(sq Square) Piece {
	if !sq.InBounds() {
		return NoPiece
	}
	return b.Squares[sq.Row][sq.Col]
}

// Set places a piece at sq. Off-board squares are ignored.
func (b *Board) Set(sq Square, piece Piece) {
	if sq.InBounds() {
		b.Squares[sq.Row][sq.Col] = piece
	}
}

// Clear empties every square.
func (b *Board) Clear() {
	b.Squares = [BoardSize][BoardSize]Piece{}
}

// IsEmptyAt reports whether sq holds no piece.
func (b *Board) IsEmptyAt(sq Square) bool {
	return b.Get(sq).IsEmpty()
}

// Grid returns a snapshot of every square's occupant. Mutating the result
// does not affect the board.
func (b *Board) Grid() [BoardSize][BoardSize]Piece {
	return b.Squares
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// ForEachPiece calls fn for every occupied square in row-major order
// (row 0..7, column 0..7). Iteration stops when fn returns false.
func (b *Board) ForEachPiece(fn func(sq Square, piece Piece) bool) {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			piece := b.Squares[row][col]
			if piece.IsEmpty() {
				continue
			}
			if !fn(Square{Row: row, Col: col}, piece) {
				return
			}
		}
	}
}
