// Package processing analyses positions: check, mate, stalemate, mobility
// and material. Batch input is spread across a worker pool.
package processing

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/termchess-go/internal/chess"
	"github.com/lgbarn/termchess-go/internal/engine"
	"github.com/lgbarn/termchess-go/internal/hashing"
	"github.com/lgbarn/termchess-go/internal/worker"
)

// Report holds the analysis of one position.
type Report struct {
	Line     int // 1-based input line, 0 when not read from a file
	Position string
	Side     chess.Colour

	InCheck    bool
	Checkmate  bool // no legal move; also true for stalemate
	Stalemate  bool
	LegalMoves int

	WhiteMaterial int
	BlackMaterial int

	Hash        uint64 // Zobrist hash of placement and side to move
	DuplicateOf int    // first line holding the same position, 0 if none

	Err error // load or analysis failure; other fields are unset
}

// Outcome summarises the report as "checkmate", "stalemate", "check",
// "ok" or "error".
func (r *Report) Outcome() string {
	switch {
	case r.Err != nil:
		return "error"
	case r.Stalemate:
		return "stalemate"
	case r.Checkmate:
		return "checkmate"
	case r.InCheck:
		return "check"
	}
	return "ok"
}

// AnalyzePosition loads position and evaluates it with side to move.
// Every board is private to the call, so calls may run concurrently.
func AnalyzePosition(position string, side chess.Colour) *Report {
	report := &Report{Position: position, Side: side}

	board, err := engine.NewBoardFromPosition(position)
	if err != nil {
		report.Err = err
		return report
	}

	if report.InCheck, err = engine.IsInCheck(board, side); err != nil {
		report.Err = err
		return report
	}
	moves, err := engine.LegalMoves(board, side)
	if err != nil {
		report.Err = err
		return report
	}
	report.LegalMoves = len(moves)
	report.Checkmate = len(moves) == 0
	report.Stalemate = report.Checkmate && !report.InCheck
	report.WhiteMaterial = engine.Material(board, chess.White)
	report.BlackMaterial = engine.Material(board, chess.Black)
	report.Hash = hashing.PositionHash(board, side)
	return report
}

// Input is one position read from a batch file.
type Input struct {
	Line     int
	Position string
	Side     chess.Colour
}

// ParseLine splits an input line into a position and an optional trailing
// side to move ("w" or "b", White when absent). ok is false for blank lines
// and '#' comments.
func ParseLine(line string) (position string, side chess.Colour, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", chess.White, false
	}

	fields := strings.Fields(line)
	side = chess.White
	if len(fields) == 2 {
		if c, valid := chess.ParseColour(fields[1]); valid {
			return fields[0], c, true
		}
	}
	return line, side, true
}

// ReadInputs collects every position line from r.
func ReadInputs(r io.Reader) ([]Input, error) {
	var inputs []Input
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		position, side, ok := ParseLine(scanner.Text())
		if !ok {
			continue
		}
		inputs = append(inputs, Input{Line: lineNo, Position: position, Side: side})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading positions: %w", err)
	}
	return inputs, nil
}

// Batch holds the reports for a set of inputs, in input order.
type Batch struct {
	Reports []*Report
	Unique  int // Distinct valid positions, counting side to move
}

// AnalyzeAll analyses inputs on a pool of workers. A position repeated later
// in the input gets DuplicateOf set to the line of its first occurrence.
// Cancelling ctx abandons the batch.
func AnalyzeAll(ctx context.Context, inputs []Input, workers int) (*Batch, error) {
	seen := hashing.NewThreadSafeDuplicateDetector(0)
	process := func(item worker.WorkItem[Input]) worker.ProcessResult[*Report] {
		report := AnalyzePosition(item.Value.Position, item.Value.Side)
		report.Line = item.Value.Line
		if report.Err == nil {
			seen.Add(report.Hash, report.Line)
		}
		return worker.ProcessResult[*Report]{Value: report, Index: item.Index, Error: report.Err}
	}

	results, err := worker.Run(ctx, inputs, process, worker.WithWorkers(workers), worker.WithBufferSize(2*workers))
	if err != nil {
		return nil, fmt.Errorf("analysing positions: %w", err)
	}

	batch := &Batch{Reports: make([]*Report, len(results)), Unique: seen.UniqueCount()}
	for i, r := range results {
		batch.Reports[i] = r.Value
		if r.Error != nil {
			continue
		}
		if first, ok := seen.FirstLine(r.Value.Hash); ok && first != r.Value.Line {
			r.Value.DuplicateOf = first
		}
	}
	return batch, nil
}

// Unique drops reports that repeat an earlier position.
func Unique(reports []*Report) []*Report {
	out := make([]*Report, 0, len(reports))
	for _, r := range reports {
		if r.DuplicateOf == 0 {
			out = append(out, r)
		}
	}
	return out
}
