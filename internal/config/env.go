package config

import (
	"fmt"
	"strconv"

	"github.com/lgbarn/termchess-go/internal/chess"
	"github.com/lgbarn/termchess-go/internal/errors"
)

// Environment variables read by ApplyEnv.
const (
	EnvDebug          = "TERMCHESS_DEBUG"
	EnvClear          = "TERMCHESS_CLEAR"
	EnvNoColor        = "TERMCHESS_NOCOLOR"
	EnvStartPosition  = "TERMCHESS_FEN"
	EnvFirstToMove    = "TERMCHESS_TO_MOVE"
	EnvAddr           = "TERMCHESS_ADDR"
	EnvAllowedOrigins = "TERMCHESS_ALLOWED_ORIGINS"
	EnvWorkers        = "TERMCHESS_WORKERS"

	// NO_COLOR is honoured as well, see https://no-color.org.
	EnvNoColorStandard = "NO_COLOR"
)

// ApplyEnv overlays values from the environment onto cfg. Unset or empty
// variables leave the current value alone. getenv is usually os.Getenv.
func ApplyEnv(cfg *Config, getenv func(string) string) error {
	var err error
	setBool := func(key string, dst *bool) {
		v := getenv(key)
		if v == "" || err != nil {
			return
		}
		b, perr := strconv.ParseBool(v)
		if perr != nil {
			err = fmt.Errorf("%s=%q: %w", key, v, errors.ErrInvalidConfig)
			return
		}
		*dst = b
	}
	setString := func(key string, dst *string) {
		if v := getenv(key); v != "" {
			*dst = v
		}
	}

	setBool(EnvDebug, &cfg.Debug)
	setBool(EnvClear, &cfg.Display.ClearScreen)
	setBool(EnvNoColor, &cfg.Display.NoColor)
	if getenv(EnvNoColorStandard) != "" {
		cfg.Display.NoColor = true
	}
	setString(EnvStartPosition, &cfg.Play.StartPosition)
	setString(EnvAddr, &cfg.Server.Addr)
	setString(EnvAllowedOrigins, &cfg.Server.AllowedOrigins)
	if err != nil {
		return err
	}

	if v := getenv(EnvFirstToMove); v != "" {
		colour, ok := chess.ParseColour(v)
		if !ok {
			return fmt.Errorf("%s=%q: %w", EnvFirstToMove, v, errors.ErrInvalidConfig)
		}
		cfg.Play.FirstToMove = colour
	}
	if v := getenv(EnvWorkers); v != "" {
		n, perr := strconv.Atoi(v)
		if perr != nil {
			return fmt.Errorf("%s=%q: %w", EnvWorkers, v, errors.ErrInvalidConfig)
		}
		cfg.Analysis.Workers = n
	}
	return nil
}
