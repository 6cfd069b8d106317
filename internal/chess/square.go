package chess

import "strings"

// Constants for board dimensions and square labels.
const (
	BoardSize = 8

	// Files lists file letters left to right; Ranks lists rank digits top to bottom.
	Files = "ABCDEFGH"
	Ranks = "87654321"
)

// Square is a (row, column) pair. Row 0 is rank 8, column 0 is file A.
type Square struct {
	Row int
	Col int
}

// InBounds reports whether both coordinates lie in [0,8).
func (s Square) InBounds() bool {
	return s.Row >= 0 && s.Row < BoardSize && s.Col >= 0 && s.Col < BoardSize
}

// Label formats the square as a file letter followed by a rank digit, e.g. "E2".
// Out-of-range squares format as "??".
func (s Square) Label() string {
	if !s.InBounds() {
		return "??"
	}
	return string([]byte{Files[s.Col], Ranks[s.Row]})
}

// String implements fmt.Stringer.
func (s Square) String() string {
	return s.Label()
}

// ParseSquare translates a label such as "E2" into board coordinates.
// It accepts exactly two characters: an uppercase file A-H and a rank 1-8.
func ParseSquare(label string) (Square, bool) {
	if len(label) != 2 {
		return Square{}, false
	}
	col := strings.IndexByte(Files, label[0])
	row := strings.IndexByte(Ranks, label[1])
	if col < 0 || row < 0 {
		return Square{}, false
	}
	return Square{Row: row, Col: col}, true
}

// MovePair represents a source-destination square pair.
type MovePair struct {
	From Square
	To   Square
}

// String returns e.g. "E2-E4".
func (m MovePair) String() string {
	return m.From.Label() + "-" + m.To.Label()
}
