package testutil

import (
	"testing"

	"github.com/lgbarn/termchess-go/internal/chess"
	"github.com/lgbarn/termchess-go/internal/engine"
)

func TestMustLoad(t *testing.T) {
	board := MustLoad(t, "4k3/8/8/8/8/8/8/4K3")
	AssertEqual(t, board.Get(MustSquare(t, "E1")), chess.W(chess.King))
	AssertEqual(t, board.Get(MustSquare(t, "E8")), chess.B(chess.King))
}

func TestPlayMoves(t *testing.T) {
	board := MustLoad(t, engine.InitialPosition)
	next := PlayMoves(t, board, chess.White, "E2E4 E7E5 G1F3")

	AssertEqual(t, next, chess.Black)
	AssertEqual(t, engine.BoardToPosition(board), "rnbqkbnr/pppp1ppp/8/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R")
}
