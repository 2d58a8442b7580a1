package config

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// PerftConfig holds settings for move-tree counting.
type PerftConfig struct {
	// Depth is the number of plies to count; 0 disables perft
	Depth int

	// Divide reports the count below each root move
	Divide bool

	// Workers is the number of goroutines expanding root moves
	Workers int

	// CacheSize bounds the transposition cache; 0 means unbounded
	CacheSize int

	// UseCache enables the transposition cache
	UseCache bool
}

// NewPerftConfig creates a PerftConfig with perft disabled.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{
		Workers: 1,
	}
}

// Enabled reports whether a perft run was requested.
func (p *PerftConfig) Enabled() bool {
	return p.Depth > 0
}

// Validate checks that the perft configuration is valid.
func (p *PerftConfig) Validate() error {
	if p.Depth < 0 {
		return fmt.Errorf("perft depth %d: %w", p.Depth, errors.ErrInvalidConfig)
	}
	if p.Workers < 1 {
		return fmt.Errorf("perft workers %d: %w", p.Workers, errors.ErrInvalidConfig)
	}
	if p.CacheSize < 0 {
		return fmt.Errorf("perft cache size %d: %w", p.CacheSize, errors.ErrInvalidConfig)
	}
	return nil
}
