// Package output writes game records and position reports.
package output

import (
	"fmt"
	"io"

	"github.com/lgbarn/termchess-go/internal/chess"
	"github.com/lgbarn/termchess-go/internal/game"
)

// DefaultLineLength is the wrap column for game records.
const DefaultLineLength = 80

// LineWriter writes space-separated tokens, wrapping before maxLineLength.
type LineWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
	err           error
}

// NewLineWriter creates a LineWriter. A non-positive maxLineLength means
// DefaultLineLength.
func NewLineWriter(w io.Writer, maxLineLength int) *LineWriter {
	if maxLineLength <= 0 {
		maxLineLength = DefaultLineLength
	}
	return &LineWriter{w: w, maxLineLength: maxLineLength}
}

// Write writes a token, preceded by a space or a line break.
func (o *LineWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			o.print("\n")
			o.lineLength = 0
		} else {
			o.print(" ")
			o.lineLength++
		}
	}

	o.print(s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine ends the current line.
func (o *LineWriter) NewLine() {
	o.print("\n")
	o.lineLength = 0
	o.needsSpace = false
}

// Err returns the first write error.
func (o *LineWriter) Err() error {
	return o.err
}

func (o *LineWriter) print(s string) {
	if o.err != nil {
		return
	}
	_, o.err = fmt.Fprint(o.w, s)
}

// WriteGameRecord writes the plies as numbered move text followed by the
// result, e.g. "1. E2-E4 E7-E5 2. G1-F3 *". A record whose first ply is
// Black's starts with "1...".
func WriteGameRecord(w io.Writer, history []game.Ply, result string, maxLineLength int) error {
	lw := NewLineWriter(w, maxLineLength)

	moveNumber := 1
	for i, ply := range history {
		switch {
		case ply.Colour == chess.White:
			lw.Write(fmt.Sprintf("%d.", moveNumber))
		case i == 0:
			lw.Write(fmt.Sprintf("%d...", moveNumber))
		}
		lw.Write(ply.String())
		if ply.Colour == chess.Black {
			moveNumber++
		}
	}

	lw.Write(result)
	lw.NewLine()
	return lw.Err()
}

// WriteSessionRecord writes the record of s with its current result.
func WriteSessionRecord(w io.Writer, s *game.Session) error {
	winner, _ := s.Winner()
	return WriteGameRecord(w, s.History(), game.Result(s.Outcome(), winner), DefaultLineLength)
}
