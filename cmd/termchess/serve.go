package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lgbarn/termchess-go/internal/config"
	"github.com/lgbarn/termchess-go/internal/server"
)

// runServer hosts games until ctx is cancelled.
func runServer(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	srv := server.New(cfg.Server, logger)

	go func() {
		<-ctx.Done()
		logger.Info("shutting down")
		if err := srv.Shutdown(); err != nil {
			logger.Error("shutdown failed", "error", err)
		}
	}()

	fmt.Fprintf(cfg.OutputFile, "Listening on %s\n", cfg.Server.Addr)
	return srv.Listen(cfg.Server.Addr)
}
