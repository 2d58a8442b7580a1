package engine

import (
	"context"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// DivideEntry is the leaf count below one root move.
type DivideEntry struct {
	Move  chess.Move
	Nodes uint64
}

type perftConfig struct {
	workers int
	cache   *hashing.PerftCache
}

// PerftOption configures PerftDivide and PerftContext.
type PerftOption func(*perftConfig)

// WithPerftWorkers expands root moves on n goroutines.
func WithPerftWorkers(n int) PerftOption {
	return func(c *perftConfig) {
		if n >= 1 {
			c.workers = n
		}
	}
}

// WithPerftCache shares a transposition cache between all subtrees.
// Every board counted against one cache must use the same PromoteTo.
func WithPerftCache(cache *hashing.PerftCache) PerftOption {
	return func(c *perftConfig) {
		c.cache = cache
	}
}

// Perft counts the leaf nodes of the legal move tree to the given depth.
// Depth 0 or less counts the position itself. Promotions only produce board.PromoteTo,
// so counts differ from standard tables in positions with promotions.
func Perft(board *chess.Board, depth int) uint64 {
	n, _ := perft(context.Background(), board.Clone(), depth, nil)
	return n
}

// PerftContext is Perft with cancellation, a worker pool and an optional cache.
func PerftContext(ctx context.Context, board *chess.Board, depth int, opts ...PerftOption) (uint64, error) {
	if depth <= 0 {
		return 1, nil
	}
	entries, err := PerftDivide(ctx, board, depth, opts...)
	if err != nil {
		return 0, err
	}
	var total uint64
	for _, e := range entries {
		total += e.Nodes
	}
	return total, nil
}

// PerftDivide returns the leaf count below each legal root move, in the
// order LegalMoves lists them. Every root move is expanded on its own clone
// of the board.
func PerftDivide(ctx context.Context, board *chess.Board, depth int, opts ...PerftOption) ([]DivideEntry, error) {
	if depth < 1 {
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "perft divide depth %d", depth)
	}
	cfg := perftConfig{workers: 1}
	for _, opt := range opts {
		opt(&cfg)
	}

	roots := LegalMoves(board)
	items := make([]worker.WorkItem, 0, len(roots))
	for i, m := range roots {
		child := board.Clone()
		if err := ApplyMove(child, m); err != nil {
			return nil, err
		}
		items = append(items, worker.WorkItem{Board: child, Move: m, Depth: depth - 1, Index: i})
	}

	process := func(ctx context.Context, item worker.WorkItem) worker.ProcessResult {
		n, err := perft(ctx, item.Board, item.Depth, cfg.cache)
		return worker.ProcessResult{Move: item.Move, Index: item.Index, Nodes: n, Error: err}
	}
	results, err := worker.Run(ctx, items, process, worker.WithWorkers(cfg.workers), worker.WithBufferSize(len(items)+1))
	if err != nil {
		return nil, err
	}

	entries := make([]DivideEntry, len(results))
	for i, r := range results {
		entries[i] = DivideEntry{Move: r.Move, Nodes: r.Nodes}
	}
	return entries, nil
}

// perft walks the tree by applying and undoing moves on board.
func perft(ctx context.Context, board *chess.Board, depth int, cache *hashing.PerftCache) (uint64, error) {
	if depth <= 0 {
		return 1, nil
	}

	var key uint64
	if cache != nil {
		key = hashing.Key(board)
		if n, ok := cache.Lookup(key, depth); ok {
			return n, nil
		}
	}

	moves := LegalMoves(board)
	if depth == 1 {
		n := uint64(len(moves))
		if cache != nil {
			cache.Store(key, depth, n)
		}
		return n, nil
	}

	if err := ctx.Err(); err != nil {
		return 0, err
	}

	var total uint64
	for _, m := range moves {
		if err := ApplyMove(board, m); err != nil {
			return 0, err
		}
		n, err := perft(ctx, board, depth-1, cache)
		if undoErr := board.Undo(); undoErr != nil {
			return 0, undoErr
		}
		if err != nil {
			return 0, err
		}
		total += n
	}
	if cache != nil {
		cache.Store(key, depth, total)
	}
	return total, nil
}
