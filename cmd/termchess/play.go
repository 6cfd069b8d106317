package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/lgbarn/termchess-go/internal/config"
	"github.com/lgbarn/termchess-go/internal/game"
	"github.com/lgbarn/termchess-go/internal/output"
	"github.com/lgbarn/termchess-go/internal/render"
)

// runGame starts a session from the configured position and plays it on
// cfg.OutputFile, reading moves from in.
func runGame(ctx context.Context, cfg *config.Config, in io.Reader, logger *slog.Logger) error {
	session, err := game.NewSession(cfg.Play.StartPosition,
		game.WithToMove(cfg.Play.FirstToMove),
		game.WithLogger(logger),
	)
	if err != nil {
		return err
	}
	return play(ctx, session, cfg, in, logger)
}

// play runs the interactive loop until the game ends, input runs out or ctx
// is cancelled.
func play(ctx context.Context, session *game.Session, cfg *config.Config, in io.Reader, logger *slog.Logger) error {
	out := cfg.OutputFile
	opts := render.Options{NoColor: cfg.Display.NoColor}
	lines := readLines(ctx, in)
	invalid := false

	for {
		if cfg.Display.ClearScreen {
			if err := render.ClearScreen(out); err != nil {
				return err
			}
		}
		if err := render.Board(out, session.Board(), opts); err != nil {
			return err
		}

		if invalid {
			fmt.Fprintln(out, "Invalid move, try again")
			invalid = false
		}

		switch session.Outcome() {
		case game.Checkmate:
			winner, _ := session.Winner()
			fmt.Fprintf(out, "Checkmate, %s won\n", winner)
			return output.WriteSessionRecord(out, session)
		case game.Stalemate:
			fmt.Fprintln(out, "Stalemate")
			return output.WriteSessionRecord(out, session)
		}

		fmt.Fprintf(out, "%s to move\n\n", session.ToMove())
		fmt.Fprint(out, "Your move: ")

		var line string
		var ok bool
		select {
		case <-ctx.Done():
		case line, ok = <-lines:
		}
		if !ok {
			fmt.Fprintln(out, "\nQuitting")
			return nil
		}

		from, to, valid := parseMove(line)
		if !valid {
			invalid = true
			continue
		}
		if _, err := session.Play(from, to); err != nil {
			logger.Warn("move rejected", "error", err)
			invalid = true
			continue
		}
		logger.Info("position", "position", session.Position())
	}
}

// parseMove splits "E2 E4" into two labels. Exactly two space-separated
// tokens of two characters each are accepted; they are uppercased.
func parseMove(line string) (from, to string, ok bool) {
	tokens := strings.Split(strings.TrimRight(line, "\r\n"), " ")
	if len(tokens) != 2 || len(tokens[0]) != 2 || len(tokens[1]) != 2 {
		return "", "", false
	}
	return strings.ToUpper(tokens[0]), strings.ToUpper(tokens[1]), true
}

// readLines delivers lines from r until EOF or ctx is done, then closes
// the channel.
func readLines(ctx context.Context, r io.Reader) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()
	return lines
}
