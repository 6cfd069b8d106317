package game

import (
	"strings"

	"github.com/lgbarn/termchess-go/internal/chess"
	"github.com/lgbarn/termchess-go/internal/engine"
)

// State is the JSON view of a session sent to clients.
type State struct {
	Position string                    `json:"position"`
	Grid     [chess.BoardSize][]string `json:"grid"`
	ToMove   string                    `json:"toMove"`
	History  []PlyState                `json:"history"`
	Captured CapturedState             `json:"captured"`
	Material MaterialState             `json:"material"`
	LastMove *PlyState                 `json:"lastMove,omitempty"`
	InCheck  bool                      `json:"inCheck"`
	Outcome  string                    `json:"outcome"`
	Winner   string                    `json:"winner,omitempty"`
	Result   string                    `json:"result"`
}

// PlyState is the JSON view of a Ply.
type PlyState struct {
	Number   int    `json:"number"`
	Colour   string `json:"colour"`
	From     string `json:"from"`
	To       string `json:"to"`
	Piece    string `json:"piece"`
	Captured string `json:"captured,omitempty"`
}

// CapturedState lists captured piece symbols by the side that took them.
type CapturedState struct {
	White []string `json:"white"`
	Black []string `json:"black"`
}

// MaterialState holds each side's material and White's lead.
type MaterialState struct {
	White   int `json:"white"`
	Black   int `json:"black"`
	Balance int `json:"balance"`
}

// Snapshot builds the client view of the session. Grid cells hold the
// position-string letter of the occupant, or "" for an empty square.
func (s *Session) Snapshot() State {
	state := State{
		Position: s.Position(),
		ToMove:   colourName(s.toMove),
		History:  make([]PlyState, 0, len(s.history)),
		Captured: CapturedState{
			White: symbols(s.Captured(chess.White)),
			Black: symbols(s.Captured(chess.Black)),
		},
		Material: MaterialState{
			White:   engine.Material(s.board, chess.White),
			Black:   engine.Material(s.board, chess.Black),
			Balance: engine.MaterialBalance(s.board),
		},
		InCheck: s.InCheck(),
		Outcome: s.outcome.String(),
		Result:  Result(s.outcome, s.winner),
	}

	grid := s.board.Grid()
	for row := range grid {
		state.Grid[row] = make([]string, chess.BoardSize)
		for col, piece := range grid[row] {
			if !piece.IsEmpty() {
				state.Grid[row][col] = string(piece.Symbol())
			}
		}
	}

	for _, p := range s.history {
		state.History = append(state.History, plyState(p))
	}
	if last, ok := s.LastPly(); ok {
		ps := plyState(last)
		state.LastMove = &ps
	}

	if winner, ok := s.Winner(); ok {
		state.Winner = colourName(winner)
	}
	return state
}

func plyState(p Ply) PlyState {
	ps := PlyState{
		Number: p.Number,
		Colour: colourName(p.Colour),
		From:   p.From,
		To:     p.To,
		Piece:  string(p.Piece.Symbol()),
	}
	if p.IsCapture() {
		ps.Captured = string(p.Captured.Symbol())
	}
	return ps
}

func colourName(c chess.Colour) string {
	return strings.ToLower(c.String())
}

func symbols(pieces []chess.Piece) []string {
	out := make([]string, 0, len(pieces))
	for _, p := range pieces {
		out = append(out, string(p.Symbol()))
	}
	return out
}
