package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lgbarn/termchess-go/internal/chess"
	"github.com/lgbarn/termchess-go/internal/game"
	"github.com/lgbarn/termchess-go/internal/testutil"
)

func TestLineWriter_Wraps(t *testing.T) {
	var buf bytes.Buffer
	lw := NewLineWriter(&buf, 10)
	for _, s := range []string{"1.", "E2-E4", "E7-E5", "2.", "G1-F3"} {
		lw.Write(s)
	}
	lw.NewLine()

	testutil.AssertNoError(t, lw.Err())
	testutil.AssertEqual(t, buf.String(), "1. E2-E4\nE7-E5 2.\nG1-F3\n")
}

func TestWriteGameRecord(t *testing.T) {
	tests := []struct {
		name    string
		history []game.Ply
		result  string
		want    string
	}{
		{
			name:   "empty",
			result: "*",
			want:   "*\n",
		},
		{
			name: "white first",
			history: []game.Ply{
				{Colour: chess.White, From: "E2", To: "E4", Piece: chess.W(chess.Pawn)},
				{Colour: chess.Black, From: "D7", To: "D5", Piece: chess.B(chess.Pawn)},
				{Colour: chess.White, From: "E4", To: "D5", Piece: chess.W(chess.Pawn), Captured: chess.B(chess.Pawn)},
			},
			result: "*",
			want:   "1. E2-E4 D7-D5 2. E4xD5 *\n",
		},
		{
			name: "black first",
			history: []game.Ply{
				{Colour: chess.Black, From: "E7", To: "E5", Piece: chess.B(chess.Pawn)},
				{Colour: chess.White, From: "E2", To: "E4", Piece: chess.W(chess.Pawn)},
			},
			result: "*",
			want:   "1... E7-E5 2. E2-E4 *\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			testutil.AssertNoError(t, WriteGameRecord(&buf, tt.history, tt.result, 0))
			testutil.AssertEqual(t, buf.String(), tt.want)
		})
	}
}

func TestWriteSessionRecord_FoolsMate(t *testing.T) {
	s, err := game.NewSession("")
	testutil.AssertNoError(t, err)
	for _, mv := range [][2]string{{"F2", "F3"}, {"E7", "E5"}, {"G2", "G4"}, {"D8", "H4"}} {
		_, err := s.Play(mv[0], mv[1])
		testutil.AssertNoError(t, err)
	}

	var buf bytes.Buffer
	testutil.AssertNoError(t, WriteSessionRecord(&buf, s))
	testutil.AssertEqual(t, strings.TrimSpace(buf.String()), "1. F2-F3 E7-E5 2. G2-G4 D8-H4 0-1")
}
