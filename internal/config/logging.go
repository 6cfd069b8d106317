package config

import "log/slog"

// NewLogger builds a text logger writing to cfg.LogFile. Only errors are
// reported unless Debug is set.
func NewLogger(cfg *Config) *slog.Logger {
	level := slog.LevelError
	if cfg.Debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cfg.LogFile, &slog.HandlerOptions{
		Level:     level,
		AddSource: cfg.Debug,
	}))
}
