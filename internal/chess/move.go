package chess

import (
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Move is an origin square, a destination square and an optional promotion
// kind (NoKind when the move does not promote). A Move is only meaningful
// relative to the position it was generated from; it does not validate itself.
type Move struct {
	From      Square
	To        Square
	Promotion PieceKind
}

// NewMove creates a move.
func NewMove(from, to Square, promo PieceKind) Move {
	return Move{From: from, To: to, Promotion: promo}
}

// IsPromotion returns true if this move carries a promotion kind.
func (m Move) IsPromotion() bool {
	return m.Promotion != NoKind
}

// String returns the move in coordinate notation, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.IsPromotion() {
		s += string(rune(m.Promotion.Letter() + ('a' - 'A')))
	}
	return s
}

// ParseMove parses coordinate notation ("e2e4", "e7e8q").
func ParseMove(s string) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return Move{}, &errors.ParseError{Err: errors.ErrInvalidMove, Input: s, Expected: "4 or 5 characters"}
	}
	from, err := ParseSquare(s[0:2])
	if err != nil {
		return Move{}, &errors.ParseError{Err: errors.ErrInvalidMove, Input: s, Column: 1, Expected: "origin square", Got: s[0:2]}
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return Move{}, &errors.ParseError{Err: errors.ErrInvalidMove, Input: s, Column: 3, Expected: "destination square", Got: s[2:4]}
	}
	promo := NoKind
	if len(s) == 5 {
		kind, ok := ParsePieceKind(s[4])
		if !ok || !kind.IsPromotionTarget() {
			return Move{}, &errors.ParseError{Err: errors.ErrInvalidMove, Input: s, Column: 5, Expected: "one of q, r, b, n", Got: s[4:]}
		}
		promo = kind
	}
	return NewMove(from, to, promo), nil
}
