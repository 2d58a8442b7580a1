package config

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// StartFEN is the standard starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// PositionConfig describes the position the command works on.
type PositionConfig struct {
	// FEN is the starting position
	FEN string

	// Play lists coordinate moves applied to FEN before anything else
	Play []string

	// PromoteTo is the kind pawns promote to
	PromoteTo chess.PieceKind
}

// NewPositionConfig creates a PositionConfig for the starting position
// with queen promotion.
func NewPositionConfig() *PositionConfig {
	return &PositionConfig{
		FEN:       StartFEN,
		PromoteTo: chess.Queen,
	}
}

// SetPromotion sets PromoteTo from a piece letter (q, r, b or n).
func (p *PositionConfig) SetPromotion(letter string) error {
	if len(letter) != 1 {
		return fmt.Errorf("promotion %q: %w", letter, errors.ErrInvalidConfig)
	}
	kind, ok := chess.ParsePieceKind(letter[0])
	if !ok || !kind.IsPromotionTarget() {
		return fmt.Errorf("promotion %q: %w", letter, errors.ErrInvalidConfig)
	}
	p.PromoteTo = kind
	return nil
}

// Validate checks that the position configuration is usable.
func (p *PositionConfig) Validate() error {
	if strings.TrimSpace(p.FEN) == "" {
		return fmt.Errorf("empty FEN: %w", errors.ErrInvalidConfig)
	}
	if !p.PromoteTo.IsPromotionTarget() {
		return fmt.Errorf("cannot promote to %v: %w", p.PromoteTo, errors.ErrInvalidConfig)
	}
	return nil
}
