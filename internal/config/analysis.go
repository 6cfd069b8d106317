package config

import (
	"fmt"
	"runtime"

	"github.com/lgbarn/termchess-go/internal/errors"
)

// AnalysisConfig holds settings for batch position analysis.
type AnalysisConfig struct {
	// InputFile lists one position per line; empty disables batch mode
	InputFile string

	// Workers is the number of positions analysed in parallel
	Workers int

	// JSON writes reports as one JSON document instead of text lines
	JSON bool

	// SuppressDuplicates drops reports for positions seen earlier in the input
	SuppressDuplicates bool
}

// NewAnalysisConfig creates an AnalysisConfig using one worker per CPU.
func NewAnalysisConfig() *AnalysisConfig {
	return &AnalysisConfig{
		Workers: runtime.NumCPU(),
	}
}

// Validate checks the worker count.
func (a *AnalysisConfig) Validate() error {
	if a.Workers < 1 {
		return fmt.Errorf("workers (%d) must be at least 1: %w", a.Workers, errors.ErrInvalidConfig)
	}
	return nil
}
