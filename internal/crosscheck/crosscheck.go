// Package crosscheck compares the engine's legal move lists with the
// dragontoothmg move generator.
package crosscheck

import (
	"context"
	"fmt"
	"strings"

	"github.com/dylhunn/dragontoothmg"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Mismatch records a position where the two generators disagree.
// Missing lists reference moves the engine did not produce; Extra lists
// engine moves the reference rejects. Both are sorted.
type Mismatch struct {
	FEN     string   `json:"fen"`
	Missing []string `json:"missing"`
	Extra   []string `json:"extra"`
}

// String formats the mismatch for a log line.
func (m Mismatch) String() string {
	return fmt.Sprintf("%s: missing [%s] extra [%s]", m.FEN, strings.Join(m.Missing, " "), strings.Join(m.Extra, " "))
}

// Compare checks the legal moves of the side to move against the reference.
// The reference generates every promotion kind; only those matching
// board.PromoteTo are compared. Both kings must be on the board.
func Compare(board *chess.Board) (Mismatch, bool, error) {
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if _, ok := board.KingSquare(colour); !ok {
			return Mismatch{}, false, errors.Wrapf(errors.ErrNoPieceAtSquare, "cross-check needs a %v king", colour)
		}
	}

	fen := engine.BoardToFEN(board)
	ours := make(map[string]struct{})
	for _, m := range engine.LegalMoves(board) {
		ours[m.String()] = struct{}{}
	}
	theirs := referenceMoves(fen, board.PromoteTo)

	mismatch := Mismatch{FEN: fen, Missing: difference(theirs, ours), Extra: difference(ours, theirs)}
	return mismatch, len(mismatch.Missing) == 0 && len(mismatch.Extra) == 0, nil
}

// Walk compares every position reachable within depth plies and returns the
// positions where the generators disagree. The board is not modified.
func Walk(ctx context.Context, board *chess.Board, depth int) ([]Mismatch, error) {
	var found []Mismatch
	err := walk(ctx, board.Clone(), depth, &found)
	return found, err
}

func walk(ctx context.Context, board *chess.Board, depth int, found *[]Mismatch) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	mismatch, ok, err := Compare(board)
	if err != nil {
		return err
	}
	if !ok {
		*found = append(*found, mismatch)
	}
	if depth <= 0 {
		return nil
	}
	for _, m := range engine.LegalMoves(board) {
		if err := engine.ApplyMove(board, m); err != nil {
			return err
		}
		err := walk(ctx, board, depth-1, found)
		if undoErr := board.Undo(); undoErr != nil {
			return undoErr
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// referenceMoves returns the dragontoothmg legal moves for fen in
// coordinate notation, keeping only promotions to promo.
func referenceMoves(fen string, promo chess.PieceKind) map[string]struct{} {
	ref := dragontoothmg.ParseFen(fen)
	suffix := strings.ToLower(string(promo.Letter()))

	moves := make(map[string]struct{})
	for _, m := range ref.GenerateLegalMoves() {
		text := strings.ToLower(m.String())
		if len(text) == 5 && text[4:] != suffix {
			continue
		}
		moves[text] = struct{}{}
	}
	return moves
}

// difference returns the sorted members of a that are not in b.
func difference(a, b map[string]struct{}) []string {
	var out []string
	for _, s := range maps.Keys(a) {
		if _, ok := b[s]; !ok {
			out = append(out, s)
		}
	}
	slices.Sort(out)
	return out
}
