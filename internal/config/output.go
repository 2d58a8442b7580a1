package config

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// OutputConfig holds settings for what the command reports.
type OutputConfig struct {
	// ListMoves prints the legal moves of the side to move
	ListMoves bool

	// ShowBoard prints the board diagram
	ShowBoard bool

	// ShowStatus prints check, checkmate or stalemate
	ShowStatus bool

	// CrossCheck compares move generation against the reference generator
	CrossCheck bool

	// CrossCheckDepth is how many plies below the position are cross-checked
	CrossCheckDepth int

	// JSON writes the report as a JSON document instead of text
	JSON bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		ShowStatus: true,
	}
}

// Validate checks that the output configuration is valid.
func (o *OutputConfig) Validate() error {
	if o.CrossCheckDepth < 0 {
		return fmt.Errorf("cross-check depth %d: %w", o.CrossCheckDepth, errors.ErrInvalidConfig)
	}
	return nil
}
