// termchess plays chess in a terminal, analyses positions in bulk and hosts
// games over HTTP and WebSocket.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/lgbarn/termchess-go/internal/config"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("termchess version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := config.ApplyEnv(cfg, os.Getenv); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	applyFlags(cfg)

	if err := setupLogFile(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := setupOutputFile(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run dispatches to batch analysis, the server or an interactive game.
func run(ctx context.Context, cfg *config.Config) error {
	logger := config.NewLogger(cfg)

	switch {
	case cfg.Analysis.InputFile != "":
		return runAnalysis(ctx, cfg, os.Stdin, logger)
	case cfg.Server.Enabled:
		return runServer(ctx, cfg, logger)
	default:
		return runGame(ctx, cfg, os.Stdin, logger)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: termchess [options]\n\n")
	fmt.Fprintf(os.Stderr, "Play chess in the terminal. Moves are two squares, e.g. \"E2 E4\".\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nEnvironment:\n")
	fmt.Fprintf(os.Stderr, "  %-26s same as -d\n", config.EnvDebug)
	fmt.Fprintf(os.Stderr, "  %-26s same as -clear\n", config.EnvClear)
	fmt.Fprintf(os.Stderr, "  %-26s same as -nocolor\n", config.EnvNoColor)
	fmt.Fprintf(os.Stderr, "  %-26s same as -fen\n", config.EnvStartPosition)
	fmt.Fprintf(os.Stderr, "  %-26s white or black\n", config.EnvFirstToMove)
	fmt.Fprintf(os.Stderr, "  %-26s same as -addr\n", config.EnvAddr)
	fmt.Fprintf(os.Stderr, "  %-26s same as -origins\n", config.EnvAllowedOrigins)
	fmt.Fprintf(os.Stderr, "  %-26s same as -workers\n", config.EnvWorkers)
}
