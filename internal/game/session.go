// Package game runs a two-player session on top of the rules engine: it
// keeps the side to move, the ply history and captured pieces, and decides
// when the game is over.
package game

import (
	"io"
	"log/slog"

	"github.com/lgbarn/termchess-go/internal/chess"
	"github.com/lgbarn/termchess-go/internal/engine"
	"github.com/lgbarn/termchess-go/internal/errors"
)

// Ply is one accepted half-move.
type Ply struct {
	Number   int          // 1-based ply index
	Colour   chess.Colour // Side that moved
	From     string       // Origin label, e.g. "E2"
	To       string       // Destination label, e.g. "E4"
	Piece    chess.Piece  // The piece that moved
	Captured chess.Piece  // NoPiece when nothing was taken
	Position string       // Position string after the ply
}

// IsCapture returns true if the ply took a piece.
func (p Ply) IsCapture() bool {
	return !p.Captured.IsEmpty()
}

// String returns e.g. "E2-E4" or "E4xD5".
func (p Ply) String() string {
	if p.IsCapture() {
		return p.From + "x" + p.To
	}
	return p.From + "-" + p.To
}

// Session is a single game between two sides sharing one board.
// A Session is not safe for concurrent use.
type Session struct {
	board    *chess.Board
	toMove   chess.Colour
	history  []Ply
	captured map[chess.Colour][]chess.Piece
	outcome  Outcome
	winner   chess.Colour
	logger   *slog.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithToMove sets the side that plays first.
func WithToMove(colour chess.Colour) Option {
	return func(s *Session) {
		s.toMove = colour
	}
}

// WithLogger sets the logger used for move and search traces.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewSession loads position (the initial position when empty) and returns a
// session with White to move unless overridden. Both sides must have a king.
func NewSession(position string, opts ...Option) (*Session, error) {
	if position == "" {
		position = engine.InitialPosition
	}
	board, err := engine.NewBoardFromPosition(position)
	if err != nil {
		return nil, err
	}
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if _, ok := engine.FindKing(board, colour); !ok {
			return nil, errors.Wrapf(errors.ErrKingNotFound, "%v", colour)
		}
	}

	s := &Session{
		board:    board,
		toMove:   chess.White,
		captured: make(map[chess.Colour][]chess.Piece),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}

	waiting := s.toMove.Opposite()
	inCheck, err := engine.IsInCheck(board, waiting)
	if err != nil {
		return nil, err
	}
	if inCheck {
		return nil, errors.Wrapf(errors.ErrInvalidPosition, "%v is in check with %v to move", waiting, s.toMove)
	}

	v, err := assess(board, s.toMove)
	if err != nil {
		return nil, err
	}
	s.settle(v)
	return s, nil
}

// Play moves the side to move from one label to another. Rejected moves
// return the engine's *errors.MoveError and leave the session untouched.
// The session only changes once the resulting position has been assessed.
func (s *Session) Play(from, to string) (Ply, error) {
	if s.outcome.IsOver() {
		return Ply{}, errors.ErrGameOver
	}

	mover := s.toMove
	fromSq, _ := chess.ParseSquare(from)
	toSq, _ := chess.ParseSquare(to)
	piece := s.board.Get(fromSq)
	target := s.board.Get(toSq)

	before := s.board.Copy()
	if err := engine.Move(s.board, from, to, mover); err != nil {
		s.logger.Debug("move rejected", "colour", mover, "from", from, "to", to, "error", err)
		return Ply{}, err
	}
	v, err := assess(s.board, mover.Opposite())
	if err != nil {
		s.board = before
		s.logger.Debug("move undone", "colour", mover, "from", from, "to", to, "error", err)
		return Ply{}, err
	}

	ply := Ply{
		Number:   len(s.history) + 1,
		Colour:   mover,
		From:     from,
		To:       to,
		Piece:    piece,
		Captured: target,
		Position: engine.BoardToPosition(s.board),
	}
	s.history = append(s.history, ply)
	if ply.IsCapture() {
		s.captured[mover] = append(s.captured[mover], target)
	}
	s.toMove = mover.Opposite()

	s.logger.Debug("move played", "ply", ply.Number, "colour", mover, "move", ply.String())
	s.logger.Debug("position", "position", ply.Position)

	s.settle(v)
	return ply, nil
}

// verdict is the status of a position for the side to move.
type verdict struct {
	outcome Outcome
	winner  chess.Colour
	witness chess.MovePair
}

// assess decides whether toMove has any legal move left on board.
func assess(board *chess.Board, toMove chess.Colour) (verdict, error) {
	witness, found, err := engine.FindLegalMove(board, toMove)
	if err != nil {
		return verdict{}, err
	}
	if found {
		return verdict{outcome: InProgress, witness: witness}, nil
	}

	inCheck, err := engine.IsInCheck(board, toMove)
	if err != nil {
		return verdict{}, err
	}
	if inCheck {
		return verdict{outcome: Checkmate, winner: toMove.Opposite()}, nil
	}
	return verdict{outcome: Stalemate}, nil
}

func (s *Session) settle(v verdict) {
	s.outcome = v.outcome
	s.winner = v.winner
	if v.outcome == InProgress {
		s.logger.Debug("available move", "colour", s.toMove, "move", v.witness.String())
		return
	}
	s.logger.Debug("game over", "outcome", s.outcome, "result", Result(s.outcome, s.winner))
}

// Board returns a copy of the current board.
func (s *Session) Board() *chess.Board {
	return s.board.Copy()
}

// Position returns the current position string.
func (s *Session) Position() string {
	return engine.BoardToPosition(s.board)
}

// ToMove returns the side whose turn it is.
func (s *Session) ToMove() chess.Colour {
	return s.toMove
}

// History returns the accepted plies in order.
func (s *Session) History() []Ply {
	out := make([]Ply, len(s.history))
	copy(out, s.history)
	return out
}

// LastPly returns the most recent ply, or false before the first move.
func (s *Session) LastPly() (Ply, bool) {
	if len(s.history) == 0 {
		return Ply{}, false
	}
	return s.history[len(s.history)-1], true
}

// Captured returns the pieces colour has taken from the opponent.
func (s *Session) Captured(colour chess.Colour) []chess.Piece {
	out := make([]chess.Piece, len(s.captured[colour]))
	copy(out, s.captured[colour])
	return out
}

// Outcome returns the current game status.
func (s *Session) Outcome() Outcome {
	return s.outcome
}

// Winner returns the winning side; ok is false unless the game ended in checkmate.
func (s *Session) Winner() (colour chess.Colour, ok bool) {
	if s.outcome != Checkmate {
		return chess.White, false
	}
	return s.winner, true
}

// InCheck reports whether the side to move is in check.
func (s *Session) InCheck() bool {
	inCheck, err := engine.IsInCheck(s.board, s.toMove)
	return err == nil && inCheck
}

// LegalDestinations lists the labels the piece on from can legally reach.
// Pieces of the side not to move have no destinations.
func (s *Session) LegalDestinations(from string) ([]string, error) {
	sq, ok := chess.ParseSquare(from)
	if !ok {
		return nil, &errors.MoveError{From: from, Reason: errors.InvalidSquare}
	}
	if s.outcome.IsOver() || s.board.Get(sq).Colour != s.toMove {
		return []string{}, nil
	}
	moves, err := engine.LegalMovesFrom(s.board, sq)
	if err != nil {
		return nil, err
	}
	labels := make([]string, 0, len(moves))
	for _, m := range moves {
		labels = append(labels, m.To.Label())
	}
	return labels, nil
}
