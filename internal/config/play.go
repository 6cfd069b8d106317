package config

import (
	"fmt"

	"github.com/lgbarn/termchess-go/internal/chess"
	"github.com/lgbarn/termchess-go/internal/engine"
	"github.com/lgbarn/termchess-go/internal/errors"
)

// PlayConfig holds settings for an interactive game.
type PlayConfig struct {
	// StartPosition is the position string the game starts from
	StartPosition string

	// FirstToMove is the side that plays the first ply
	FirstToMove chess.Colour
}

// NewPlayConfig creates a PlayConfig starting from the standard position with White to move.
func NewPlayConfig() *PlayConfig {
	return &PlayConfig{
		StartPosition: engine.InitialPosition,
		FirstToMove:   chess.White,
	}
}

// Validate checks that the start position loads.
func (p *PlayConfig) Validate() error {
	if _, err := engine.NewBoardFromPosition(p.StartPosition); err != nil {
		return fmt.Errorf("start position %q: %v: %w", p.StartPosition, err, errors.ErrInvalidConfig)
	}
	return nil
}
