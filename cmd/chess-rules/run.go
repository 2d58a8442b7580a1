package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/apex/log"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/crosscheck"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
	"github.com/lgbarn/chess-rules-go/internal/output"
)

// run sets up the configured position and writes the requested reports.
func run(ctx context.Context, cfg *config.Config, logger log.Interface) error {
	board, err := setupBoard(cfg.Position, logger)
	if err != nil {
		return err
	}

	logger.WithFields(log.Fields{
		"fen": engine.BoardToFEN(board),
		"ply": board.Ply(),
	}).Info("position ready")

	report := positionReport(board, cfg.Output)

	if cfg.Perft.Enabled() {
		if report.Perft, err = perftReport(ctx, board, cfg.Perft, logger); err != nil {
			return err
		}
	}

	var checkErr error
	if cfg.Output.CrossCheck {
		report.CrossCheck, checkErr = crossCheckReport(ctx, board, cfg.Output.CrossCheckDepth, logger)
		if report.CrossCheck == nil {
			return checkErr
		}
	}

	w := output.NewWriter(cfg.OutputFile, cfg.Output.JSON)
	if err := w.WriteReport(report); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return checkErr
}

// setupBoard parses the FEN and plays the configured moves one at a time.
func setupBoard(pos *config.PositionConfig, logger log.Interface) (*chess.Board, error) {
	board, err := engine.NewBoardFromFEN(pos.FEN)
	if err != nil {
		return nil, err
	}
	board.PromoteTo = pos.PromoteTo

	for _, text := range pos.Play {
		if err := engine.PlayAll(board, text); err != nil {
			return nil, err
		}
		logger.WithFields(log.Fields{"move": text, "ply": board.Ply()}).Debug("played")
	}
	return board, nil
}

func positionReport(board *chess.Board, opts *config.OutputConfig) *output.Report {
	report := output.NewReport(board)
	if opts.ShowBoard {
		report.Board = board.String()
	}
	if opts.ShowStatus {
		report.Status = engine.PositionStatus(board).String()
	}
	if opts.ListMoves {
		report.Moves = output.NewMoveList(engine.LegalMoves(board))
	}
	return report
}

func perftReport(ctx context.Context, board *chess.Board, opts *config.PerftConfig, logger log.Interface) (*output.PerftReport, error) {
	perftOpts := []engine.PerftOption{engine.WithPerftWorkers(opts.Workers)}
	var cache *hashing.PerftCache
	if opts.UseCache {
		cache = hashing.NewPerftCache(opts.CacheSize)
		perftOpts = append(perftOpts, engine.WithPerftCache(cache))
	}

	start := time.Now()
	entries, err := engine.PerftDivide(ctx, board, opts.Depth, perftOpts...)
	if err != nil {
		return nil, err
	}
	elapsed := time.Since(start)
	report := output.NewPerftReport(opts.Depth, entries, elapsed, opts.Divide)

	fields := log.Fields{
		"depth":   opts.Depth,
		"nodes":   report.Nodes,
		"elapsed": elapsed.Round(time.Millisecond),
		"workers": opts.Workers,
	}
	if cache != nil {
		hits, misses := cache.Stats()
		fields["cache_hits"] = hits
		fields["cache_misses"] = misses
		fields["cache_entries"] = cache.Len()
		fields["cache_full"] = cache.IsFull()
	}
	logger.WithFields(fields).Info("perft complete")
	return report, nil
}

// crossCheckReport returns a report together with an error when mismatches
// were found, so the report is still written.
func crossCheckReport(ctx context.Context, board *chess.Board, depth int, logger log.Interface) (*output.CrossCheckReport, error) {
	mismatches, err := crosscheck.Walk(ctx, board, depth)
	if err != nil {
		return nil, err
	}
	for _, m := range mismatches {
		logger.WithFields(log.Fields{
			"fen":     m.FEN,
			"missing": strings.Join(m.Missing, " "),
			"extra":   strings.Join(m.Extra, " "),
		}).Warn("generators disagree")
	}
	if mismatches == nil {
		mismatches = []crosscheck.Mismatch{}
	}
	report := &output.CrossCheckReport{Depth: depth, Mismatches: mismatches}
	if len(mismatches) > 0 {
		return report, fmt.Errorf("cross-check found %d mismatched positions", len(mismatches))
	}
	return report, nil
}
