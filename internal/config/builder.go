package config

import (
	"io"

	"github.com/lgbarn/termchess-go/internal/chess"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithDebug enables debug logging.
func (b *ConfigBuilder) WithDebug(enabled bool) *ConfigBuilder {
	b.cfg.Debug = enabled
	return b
}

// WithNoColor disables ANSI colours.
func (b *ConfigBuilder) WithNoColor(enabled bool) *ConfigBuilder {
	b.cfg.Display.NoColor = enabled
	return b
}

// WithClearScreen clears the terminal before each board.
func (b *ConfigBuilder) WithClearScreen(enabled bool) *ConfigBuilder {
	b.cfg.Display.ClearScreen = enabled
	return b
}

// WithStartPosition sets the position an interactive game starts from.
func (b *ConfigBuilder) WithStartPosition(position string) *ConfigBuilder {
	b.cfg.Play.StartPosition = position
	return b
}

// WithFirstToMove sets the side that plays first.
func (b *ConfigBuilder) WithFirstToMove(colour chess.Colour) *ConfigBuilder {
	b.cfg.Play.FirstToMove = colour
	return b
}

// WithServer enables the play server on addr.
func (b *ConfigBuilder) WithServer(addr string) *ConfigBuilder {
	b.cfg.Server.Enabled = true
	b.cfg.Server.Addr = addr
	return b
}

// WithWorkers sets the batch analysis worker count.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Analysis.Workers = n
	return b
}

// WithAnalysis enables batch mode on inputFile, optionally as JSON.
func (b *ConfigBuilder) WithAnalysis(inputFile string, asJSON bool) *ConfigBuilder {
	b.cfg.Analysis.InputFile = inputFile
	b.cfg.Analysis.JSON = asJSON
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLogFile sets the log writer.
func (b *ConfigBuilder) WithLogFile(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}
