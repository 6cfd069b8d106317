package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/lgbarn/termchess-go/internal/config"
	"github.com/lgbarn/termchess-go/internal/output"
	"github.com/lgbarn/termchess-go/internal/processing"
)

// runAnalysis analyses every position in cfg.Analysis.InputFile ("-" reads
// stdin) and writes one report per position in input order.
func runAnalysis(ctx context.Context, cfg *config.Config, stdin io.Reader, logger *slog.Logger) error {
	in := stdin
	if name := cfg.Analysis.InputFile; name != "-" {
		file, err := os.Open(name) //nolint:gosec // G304: CLI tool opens user-specified files
		if err != nil {
			return fmt.Errorf("opening %s: %w", name, err)
		}
		defer file.Close()
		in = file
	}

	inputs, err := processing.ReadInputs(in)
	if err != nil {
		return err
	}
	batch, err := processing.AnalyzeAll(ctx, inputs, cfg.Analysis.Workers)
	if err != nil {
		return err
	}
	logger.Info("analysis complete", "positions", len(batch.Reports), "unique", batch.Unique)

	reports := batch.Reports
	if cfg.Analysis.SuppressDuplicates {
		reports = processing.Unique(reports)
	}

	var w output.ReportWriter = output.NewTextWriter(cfg.OutputFile)
	if cfg.Analysis.JSON {
		w = output.NewJSONWriter(cfg.OutputFile)
	}
	return output.WriteReports(w, reports)
}
