// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/termchess-go/internal/chess"
	"github.com/lgbarn/termchess-go/internal/config"
)

var (
	// Display options
	debug      = flag.Bool("d", false, "Enable debug logging")
	debugLong  = flag.Bool("debug", false, "Enable debug logging (same as -d)")
	clearTerm  = flag.Bool("clear", false, "Clear the terminal before drawing the board")
	noColor    = flag.Bool("nocolor", false, "Draw the board without colours")
	logFile    = flag.String("l", "", "Write diagnostics to log file")
	appendLog  = flag.String("L", "", "Append diagnostics to log file")
	outputFile = flag.String("o", "", "Output file (default: stdout)")

	// Game options
	startFEN   = flag.String("fen", "", "Start from this position (piece placement only)")
	blackFirst = flag.Bool("black", false, "Black moves first")

	// Server options
	serve          = flag.Bool("serve", false, "Host games over HTTP and WebSocket")
	addr           = flag.String("addr", "", "Listen address for -serve (default :8080)")
	allowedOrigins = flag.String("origins", "", "Comma-separated CORS origins for -serve (default *)")

	// Batch analysis
	analyzeFile        = flag.String("analyze", "", "Analyse the positions in FILE (one per line, - for stdin)")
	jsonOutput         = flag.Bool("json", false, "Write analysis reports as JSON")
	suppressDuplicates = flag.Bool("D", false, "Suppress reports for repeated positions")
	workers            = flag.Int("workers", 0, "Number of analysis workers (0 = one per CPU core)")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags on top of the configuration. Flags
// left at their zero value keep the environment or default setting.
func applyFlags(cfg *config.Config) {
	applyDisplayFlags(cfg)
	applyPlayFlags(cfg)
	applyServerFlags(cfg)
	applyAnalysisFlags(cfg)
}

// applyDisplayFlags configures logging and drawing.
func applyDisplayFlags(cfg *config.Config) {
	if *debug || *debugLong {
		cfg.Debug = true
	}
	if *clearTerm {
		cfg.Display.ClearScreen = true
	}
	if *noColor {
		cfg.Display.NoColor = true
	}
}

// applyPlayFlags configures the start of an interactive game.
func applyPlayFlags(cfg *config.Config) {
	if *startFEN != "" {
		cfg.Play.StartPosition = *startFEN
	}
	if *blackFirst {
		cfg.Play.FirstToMove = chess.Black
	}
}

// applyServerFlags configures server mode.
func applyServerFlags(cfg *config.Config) {
	cfg.Server.Enabled = *serve
	if *addr != "" {
		cfg.Server.Addr = *addr
	}
	if *allowedOrigins != "" {
		cfg.Server.AllowedOrigins = *allowedOrigins
	}
}

// applyAnalysisFlags configures batch mode.
func applyAnalysisFlags(cfg *config.Config) {
	cfg.Analysis.InputFile = *analyzeFile
	cfg.Analysis.JSON = *jsonOutput
	cfg.Analysis.SuppressDuplicates = *suppressDuplicates
	if *workers > 0 {
		cfg.Analysis.Workers = *workers
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) error {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			return fmt.Errorf("creating log file %s: %w", *logFile, err)
		}
		cfg.LogFile = file
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			return fmt.Errorf("opening log file %s: %w", *appendLog, err)
		}
		cfg.LogFile = file
	}
	return nil
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) error {
	if *outputFile == "" {
		return nil
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		return fmt.Errorf("creating output file %s: %w", *outputFile, err)
	}
	cfg.SetOutput(file)
	return nil
}
