// Package config provides configuration for termchess.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/termchess-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	// Debug enables debug-level logging.
	Debug bool

	Display  *DisplayConfig
	Play     *PlayConfig
	Server   *ServerConfig
	Analysis *AnalysisConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Display:    NewDisplayConfig(),
		Play:       NewPlayConfig(),
		Server:     NewServerConfig(),
		Analysis:   NewAnalysisConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the writer that boards, prompts and reports go to.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Validate checks every section and reports the first problem found.
func (c *Config) Validate() error {
	if c.OutputFile == nil || c.LogFile == nil {
		return fmt.Errorf("output and log streams must be set: %w", errors.ErrInvalidConfig)
	}
	if err := c.Play.Validate(); err != nil {
		return err
	}
	if err := c.Server.Validate(); err != nil {
		return err
	}
	return c.Analysis.Validate()
}
