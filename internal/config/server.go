package config

import (
	"fmt"

	"github.com/lgbarn/termchess-go/internal/errors"
)

// ServerConfig holds settings for the HTTP/WebSocket play server.
type ServerConfig struct {
	// Enabled runs the server instead of the interactive loop
	Enabled bool

	// Addr is the listen address, e.g. ":8080"
	Addr string

	// AllowedOrigins is a comma-separated CORS origin list ("*" for any)
	AllowedOrigins string
}

// NewServerConfig creates a ServerConfig with default values.
func NewServerConfig() *ServerConfig {
	return &ServerConfig{
		Addr:           ":8080",
		AllowedOrigins: "*",
	}
}

// Validate checks that an enabled server has somewhere to listen.
func (s *ServerConfig) Validate() error {
	if s.Enabled && s.Addr == "" {
		return fmt.Errorf("server enabled without a listen address: %w", errors.ErrInvalidConfig)
	}
	return nil
}
