package hashing

import (
	"testing"

	"github.com/lgbarn/termchess-go/internal/chess"
	"github.com/lgbarn/termchess-go/internal/engine"
	"github.com/lgbarn/termchess-go/internal/testutil"
)

func TestPositionHashConsistency(t *testing.T) {
	board1 := testutil.MustLoad(t, engine.InitialPosition)
	board2 := engine.NewInitialBoard()

	if h1, h2 := PositionHash(board1, chess.White), PositionHash(board2, chess.White); h1 != h2 {
		t.Errorf("Identical boards produced different hashes: %x != %x", h1, h2)
	}
}

func TestPositionHashDifferentPositions(t *testing.T) {
	initial := testutil.MustLoad(t, engine.InitialPosition)
	moved := testutil.MustLoad(t, engine.InitialPosition)
	testutil.PlayMoves(t, moved, chess.White, "E2E4")

	if PositionHash(initial, chess.White) == PositionHash(moved, chess.White) {
		t.Error("Different positions produced the same hash")
	}
}

func TestPositionHashSideToMove(t *testing.T) {
	board := testutil.MustLoad(t, engine.InitialPosition)
	if PositionHash(board, chess.White) == PositionHash(board, chess.Black) {
		t.Error("Side to move should change the hash")
	}
}

func TestPositionHashTransposition(t *testing.T) {
	a := testutil.MustLoad(t, engine.InitialPosition)
	testutil.PlayMoves(t, a, chess.White, "G1F3 G8F6 B1C3")
	b := testutil.MustLoad(t, engine.InitialPosition)
	testutil.PlayMoves(t, b, chess.White, "B1C3 G8F6 G1F3")

	testutil.AssertEqual(t, PositionHash(a, chess.Black), PositionHash(b, chess.Black))
}

func TestDuplicateDetector(t *testing.T) {
	d := NewDuplicateDetector(0)

	testutil.AssertFalse(t, d.Add(1, 5), "first sighting")
	testutil.AssertTrue(t, d.Add(1, 9), "second sighting")
	testutil.AssertTrue(t, d.Add(1, 2), "earlier line is still a repeat")
	testutil.AssertFalse(t, d.Add(2, 3), "different hash")

	line, ok := d.FirstLine(1)
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, line, 2)
	testutil.AssertEqual(t, d.UniqueCount(), 2)

	_, ok = d.FirstLine(7)
	testutil.AssertFalse(t, ok, "unseen hash")
}

func TestDuplicateDetector_Capacity(t *testing.T) {
	d := NewDuplicateDetector(2)
	d.Add(1, 1)
	d.Add(2, 2)
	testutil.AssertTrue(t, d.IsFull())

	testutil.AssertFalse(t, d.Add(3, 3), "new hash past capacity")
	_, ok := d.FirstLine(3)
	testutil.AssertFalse(t, ok, "hash past capacity should not be recorded")
	testutil.AssertTrue(t, d.Add(1, 4), "known hashes are still detected when full")
}
