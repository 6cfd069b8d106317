// Package chess provides core chess types: colours, pieces, squares and the board grid.
package chess

import "unicode"

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// ParseColour accepts "white"/"black" in any case, or "w"/"b".
func ParseColour(s string) (Colour, bool) {
	switch s {
	case "White", "white", "WHITE", "w", "W":
		return White, true
	case "Black", "black", "BLACK", "b", "B":
		return Black, true
	}
	return White, false
}

// PieceKind represents a chess piece type.
type PieceKind int

const (
	Empty PieceKind = iota // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece kind.
func (k PieceKind) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the lowercase position-string letter of a kind.
func (k PieceKind) Letter() byte {
	letters := []byte{' ', 'p', 'n', 'b', 'r', 'q', 'k'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// Material values by kind. Kings carry no material value.
var pieceValues = [...]int{
	Empty:  0,
	Pawn:   1,
	Knight: 3,
	Bishop: 3,
	Rook:   5,
	Queen:  9,
	King:   0,
}

var pieceGlyphs = [...]string{
	Empty:  " ",
	Pawn:   "♟",
	Knight: "♞",
	Bishop: "♝",
	Rook:   "♜",
	Queen:  "♛",
	King:   "♚",
}

// Piece is an immutable coloured piece. The zero value is an empty square.
type Piece struct {
	Kind   PieceKind
	Colour Colour
}

// NoPiece is the empty square.
var NoPiece = Piece{}

// W creates a white piece.
func W(kind PieceKind) Piece {
	return Piece{Kind: kind, Colour: White}
}

// B creates a black piece.
func B(kind PieceKind) Piece {
	return Piece{Kind: kind, Colour: Black}
}

// IsEmpty reports whether p marks an unoccupied square.
func (p Piece) IsEmpty() bool {
	return p.Kind == Empty
}

// Symbol returns the position-string letter: uppercase for White, lowercase for Black.
func (p Piece) Symbol() byte {
	if p.IsEmpty() {
		return ' '
	}
	letter := p.Kind.Letter()
	if p.Colour == White {
		return byte(unicode.ToUpper(rune(letter)))
	}
	return letter
}

// Value returns the material point value of the piece.
func (p Piece) Value() int {
	if p.Kind < 0 || int(p.Kind) >= len(pieceValues) {
		return 0
	}
	return pieceValues[p.Kind]
}

// Glyph returns the display glyph for the piece kind; colour is applied by the renderer.
func (p Piece) Glyph() string {
	if p.Kind < 0 || int(p.Kind) >= len(pieceGlyphs) {
		return "?"
	}
	return pieceGlyphs[p.Kind]
}

// String returns e.g. "White Knight".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return p.Colour.String() + " " + p.Kind.String()
}

// PieceFromSymbol converts a position-string letter into a piece.
func PieceFromSymbol(c rune) (Piece, bool) {
	var kind PieceKind
	switch unicode.ToLower(c) {
	case 'p':
		kind = Pawn
	case 'n':
		kind = Knight
	case 'b':
		kind = Bishop
	case 'r':
		kind = Rook
	case 'q':
		kind = Queen
	case 'k':
		kind = King
	default:
		return NoPiece, false
	}
	// unicode.ToLower maps some non-ASCII runes onto ASCII letters (e.g. the Kelvin sign).
	if c > unicode.MaxASCII {
		return NoPiece, false
	}
	if unicode.IsUpper(c) {
		return W(kind), true
	}
	return B(kind), true
}
