package testutil

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Position builds a board with turn to move and the given pieces, keyed by
// square name ("e1": chess.W(chess.King)). Castling flags start unset.
func Position(t testing.TB, turn chess.Colour, pieces map[string]chess.Piece) *chess.Board {
	t.Helper()
	b := chess.NewEmptyBoard(turn)
	for name, p := range pieces {
		b.Place(MustSquare(t, name), p)
	}
	return b
}

// MustSquare parses a square name, failing the test on error.
func MustSquare(t testing.TB, name string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(name)
	if err != nil {
		t.Fatalf("bad square %q: %v", name, err)
	}
	return sq
}

// MustMove parses coordinate move text, failing the test on error.
func MustMove(t testing.TB, text string) chess.Move {
	t.Helper()
	m, err := chess.ParseMove(text)
	if err != nil {
		t.Fatalf("bad move %q: %v", text, err)
	}
	return m
}

// MustMoves parses several coordinate moves.
func MustMoves(t testing.TB, texts ...string) []chess.Move {
	t.Helper()
	moves := make([]chess.Move, len(texts))
	for i, text := range texts {
		moves[i] = MustMove(t, text)
	}
	return moves
}
