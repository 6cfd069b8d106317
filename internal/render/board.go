// Package render draws a board for a terminal.
package render

import (
	"bufio"
	"io"

	"github.com/fatih/color"

	"github.com/lgbarn/termchess-go/internal/chess"
)

// ClearSequence moves the cursor home and clears the screen.
const ClearSequence = "\033[H\033[2J"

// Options controls board rendering.
type Options struct {
	// NoColor disables ANSI styling. Pieces are then drawn as their
	// position-string letters so the two sides stay distinguishable.
	NoColor bool
}

// palette holds one style per (square shade, piece colour) pair.
type palette struct {
	light, dark               *color.Color
	whiteOnLight, whiteOnDark *color.Color
	blackOnLight, blackOnDark *color.Color
}

func newPalette(noColor bool) *palette {
	p := &palette{
		light:        color.New(color.BgWhite),
		dark:         color.New(color.BgBlack),
		whiteOnLight: color.New(color.BgWhite, color.FgHiWhite, color.Bold),
		whiteOnDark:  color.New(color.BgBlack, color.FgHiWhite, color.Bold),
		blackOnLight: color.New(color.BgWhite, color.FgHiBlack, color.Bold),
		blackOnDark:  color.New(color.BgBlack, color.FgHiBlack, color.Bold),
	}
	for _, c := range []*color.Color{p.light, p.dark, p.whiteOnLight, p.whiteOnDark, p.blackOnLight, p.blackOnDark} {
		if noColor {
			c.DisableColor()
		} else {
			c.EnableColor()
		}
	}
	return p
}

func (p *palette) square(light bool, piece chess.Piece) *color.Color {
	switch {
	case piece.IsEmpty() && light:
		return p.light
	case piece.IsEmpty():
		return p.dark
	case piece.Colour == chess.White && light:
		return p.whiteOnLight
	case piece.Colour == chess.White:
		return p.whiteOnDark
	case light:
		return p.blackOnLight
	default:
		return p.blackOnDark
	}
}

// Board writes the board with a header of file letters and one line per
// rank, each cell three characters wide. A square is light when row+col is
// even, so A8 is light.
func Board(w io.Writer, board *chess.Board, opts Options) error {
	p := newPalette(opts.NoColor)
	bw := bufio.NewWriter(w)

	bw.WriteString("\n  ")
	for col := 0; col < chess.BoardSize; col++ {
		bw.WriteString(" " + string(chess.Files[col]) + " ")
	}
	bw.WriteString("\n")

	for row := 0; row < chess.BoardSize; row++ {
		bw.WriteString(string(chess.Ranks[row]) + " ")
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Get(chess.Square{Row: row, Col: col})
			style := p.square((row+col)%2 == 0, piece)
			bw.WriteString(style.Sprint(" " + cellText(piece, opts) + " "))
		}
		bw.WriteString("\n")
	}

	return bw.Flush()
}

func cellText(piece chess.Piece, opts Options) string {
	switch {
	case piece.IsEmpty():
		return " "
	case opts.NoColor:
		return string(piece.Symbol())
	default:
		return piece.Glyph()
	}
}

// ClearScreen writes the terminal clear sequence.
func ClearScreen(w io.Writer) error {
	_, err := io.WriteString(w, ClearSequence)
	return err
}
