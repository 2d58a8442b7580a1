package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestIsInCheck(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		colour chess.Colour
		want   bool
	}{
		{"initial", InitialFEN, chess.White, false},
		{"rook on the back rank", "4k3/8/8/8/8/8/8/r3K3 w - - 0 1", chess.White, true},
		{"blocked rook", "4k3/8/8/8/8/8/8/r2NK3 w - - 0 1", chess.White, false},
		{"knight check", "4k3/8/8/8/8/3n4/8/4K3 w - - 0 1", chess.White, true},
		{"pawn check", "4k3/8/8/8/8/8/3p4/4K3 w - - 0 1", chess.White, true},
		{"pawn in front does not check", "4k3/8/8/8/8/8/4p3/4K3 w - - 0 1", chess.White, false},
		{"black in check from bishop", "4k3/8/8/1B6/8/8/8/4K3 b - - 0 1", chess.Black, true},
		{"side without a king", "8/8/8/8/8/8/8/r7 w - - 0 1", chess.White, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsInCheck(mustFEN(t, tt.fen), tt.colour); got != tt.want {
				t.Errorf("IsInCheck(%v) = %v; want %v", tt.colour, got, tt.want)
			}
		})
	}
}

func TestSquareAttacked(t *testing.T) {
	board := chess.NewBoard()
	tests := []struct {
		sq   chess.Square
		by   chess.Colour
		want bool
	}{
		{chess.F3, chess.White, true},
		{chess.E4, chess.White, true},
		{chess.E5, chess.White, false},
		{chess.F6, chess.Black, true},
		{chess.E1, chess.Black, false},
	}
	for _, tt := range tests {
		t.Run(tt.sq.String(), func(t *testing.T) {
			if got := SquareAttacked(board, tt.sq, tt.by); got != tt.want {
				t.Errorf("SquareAttacked(%v, %v) = %v; want %v", tt.sq, tt.by, got, tt.want)
			}
		})
	}
}

func TestAttackers(t *testing.T) {
	board := chess.NewBoard()
	testutil.AssertEqual(t, Attackers(board, chess.F3, chess.White), []chess.Square{chess.G1, chess.F2})
	testutil.AssertEqual(t, Attackers(board, chess.C6, chess.Black), []chess.Square{chess.C7, chess.B8})
	if got := Attackers(board, chess.E5, chess.White); len(got) != 0 {
		t.Errorf("Attackers(e5) = %v; want none", got)
	}
}

func TestIsCheckmate(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want bool
	}{
		{"fool's mate", "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 0 1", true},
		{"back rank mate", "3R2k1/5ppp/8/8/8/8/8/6K1 b - - 0 1", true},
		{"check with an escape", "4k3/8/8/8/8/8/8/r3K3 w - - 0 1", false},
		{"stalemate is not mate", "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", false},
		{"initial", InitialFEN, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsCheckmate(mustFEN(t, tt.fen)); got != tt.want {
				t.Errorf("IsCheckmate() = %v; want %v", got, tt.want)
			}
		})
	}
}

func TestIsStalemate(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want bool
	}{
		{"queen stalemate", "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", true},
		{"king and pawn", "k7/P7/K7/8/8/8/8/8 b - - 0 1", true},
		{"checkmate is not stalemate", "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 0 1", false},
		{"initial", InitialFEN, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsStalemate(mustFEN(t, tt.fen)); got != tt.want {
				t.Errorf("IsStalemate() = %v; want %v", got, tt.want)
			}
		})
	}
}

func TestPositionStatus(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want Status
	}{
		{"initial", InitialFEN, InPlay},
		{"check", "4k3/8/8/8/8/8/8/r3K3 w - - 0 1", Check},
		{"checkmate", "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 0 1", Checkmate},
		{"stalemate", "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", Stalemate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PositionStatus(mustFEN(t, tt.fen)); got != tt.want {
				t.Errorf("PositionStatus() = %v; want %v", got, tt.want)
			}
		})
	}
}

func TestPositionStatus_AfterPlay(t *testing.T) {
	board := chess.NewBoard()
	testutil.AssertNoError(t, PlayAll(board, "f2f3", "e7e5", "g2g4", "d8h4"))
	if !IsCheckmate(board) {
		t.Errorf("fool's mate not detected:\n%s", board)
	}
	testutil.AssertEqual(t, PositionStatus(board).String(), "checkmate")
}

func TestStatusString(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{InPlay, "in play"},
		{Check, "check"},
		{Checkmate, "checkmate"},
		{Stalemate, "stalemate"},
	}
	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("Status(%d).String() = %q; want %q", tt.status, got, tt.want)
		}
	}
}
