package game

import (
	"encoding/json"
	"testing"

	"github.com/lgbarn/termchess-go/internal/testutil"
)

func TestSnapshot(t *testing.T) {
	s := mustSession(t, "")
	playAll(t, s, [2]string{"E2", "E4"}, [2]string{"D7", "D5"}, [2]string{"E4", "D5"})

	state := s.Snapshot()

	testutil.AssertEqual(t, state.Position, "rnbqkbnr/ppp1pppp/8/3P4/8/8/PPPP1PPP/RNBQKBNR")
	testutil.AssertEqual(t, state.ToMove, "black")
	testutil.AssertEqual(t, state.Outcome, "in progress")
	testutil.AssertEqual(t, state.Result, "*")
	testutil.AssertEqual(t, state.Winner, "")
	testutil.AssertEqual(t, state.Grid[0], []string{"r", "n", "b", "q", "k", "b", "n", "r"})
	testutil.AssertEqual(t, state.Grid[3], []string{"", "", "", "P", "", "", "", ""})
	testutil.AssertEqual(t, state.Captured, CapturedState{White: []string{"p"}, Black: []string{}})
	want := PlyState{Number: 3, Colour: "white", From: "E4", To: "D5", Piece: "P", Captured: "p"}
	testutil.AssertEqual(t, state.History[2], want)
	testutil.AssertEqual(t, state.LastMove, &want)
	testutil.AssertEqual(t, state.Material, MaterialState{White: 39, Black: 38, Balance: 1})
}

func TestSnapshot_BeforeFirstMove(t *testing.T) {
	state := mustSession(t, "").Snapshot()

	testutil.AssertNil(t, state.LastMove)
	testutil.AssertEqual(t, state.Material, MaterialState{White: 39, Black: 39})
	testutil.AssertEqual(t, len(state.History), 0)
}

func TestSnapshot_JSON(t *testing.T) {
	s := mustSession(t, "")
	playAll(t, s,
		[2]string{"F2", "F3"}, [2]string{"E7", "E5"},
		[2]string{"G2", "G4"}, [2]string{"D8", "H4"},
	)

	data, err := json.Marshal(s.Snapshot())
	testutil.AssertNoError(t, err)

	var decoded map[string]interface{}
	testutil.AssertNoError(t, json.Unmarshal(data, &decoded))
	testutil.AssertEqual(t, decoded["outcome"], "checkmate")
	testutil.AssertEqual(t, decoded["winner"], "black")
	testutil.AssertEqual(t, decoded["result"], "0-1")
	testutil.AssertEqual(t, decoded["inCheck"], true)
	testutil.AssertEqual(t, decoded["toMove"], "white")
	testutil.AssertEqual(t, decoded["lastMove"].(map[string]interface{})["to"], "H4")
	testutil.AssertEqual(t, decoded["material"], map[string]interface{}{"white": 39.0, "black": 39.0, "balance": 0.0})
}
