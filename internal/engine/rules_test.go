package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// TestHasInsufficientMaterial tests various material configurations
func TestHasInsufficientMaterial(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want bool // true = insufficient material
	}{
		{"K vs K", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", true},
		{"K+B vs K", "4k3/8/8/8/8/8/8/4KB2 w - - 0 1", true},
		{"K+N vs K", "4k3/8/8/8/8/8/8/4KN2 w - - 0 1", true},
		{"K vs K+b", "4k1b1/8/8/8/8/8/8/4K3 w - - 0 1", true},
		{"K vs K+n", "4k1n1/8/8/8/8/8/8/4K3 w - - 0 1", true},
		{"K+B vs K+B same color", "5b2/8/8/8/8/8/8/2B1K3 w - - 0 1", true},
		{"K+R vs K", "4k3/8/8/8/8/8/8/4KR2 w - - 0 1", false},
		{"K+Q vs K", "4k3/8/8/8/8/8/8/4KQ2 w - - 0 1", false},
		{"K+P vs K", "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1", false},
		{"K+B vs K+B opposite color", "5b2/8/8/8/8/8/8/3BK3 w - - 0 1", false},
		{"K+B+B vs K", "4k3/8/8/8/8/8/8/2B1KB2 w - - 0 1", false},
		{"K+N vs K+N", "4k1n1/8/8/8/8/8/8/4KN2 w - - 0 1", false},
		{"standard starting position", InitialFEN, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			board, err := NewBoardFromFEN(tt.fen)
			if err != nil {
				t.Fatalf("NewBoardFromFEN(%q) error: %v", tt.fen, err)
			}

			if got := HasInsufficientMaterial(board); got != tt.want {
				t.Errorf("HasInsufficientMaterial() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewInitialBoard(t *testing.T) {
	board := NewInitialBoard()

	if board == nil {
		t.Fatal("NewInitialBoard() = nil, want non-nil board")
	}
	if board.Turn() != chess.White {
		t.Errorf("NewInitialBoard().Turn() = %v, want White", board.Turn())
	}
	if board.Grid() != chess.NewBoard().Grid() {
		t.Error("NewInitialBoard() grid differs from chess.NewBoard()")
	}
	if board.Ply() != 0 {
		t.Errorf("NewInitialBoard().Ply() = %d, want 0", board.Ply())
	}
}

func TestHasStandardMaterial(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want bool
	}{
		{"initial", InitialFEN, true},
		{"missing rook", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBN1 w Qkq - 0 1", false},
		{"after 1.e4", "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1", true},
		{"promoted", "rnbqkbnr/pppppppp/8/8/8/8/1PPPPPPP/RNBQKBNQ w Qkq - 0 1", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, err := NewBoardFromFEN(tt.fen)
			if err != nil {
				t.Fatalf("NewBoardFromFEN(%q) error: %v", tt.fen, err)
			}
			if got := HasStandardMaterial(board); got != tt.want {
				t.Errorf("HasStandardMaterial() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMaterialCount(t *testing.T) {
	count := MaterialCount(NewInitialBoard())
	if count[chess.W(chess.Pawn)] != 8 || count[chess.B(chess.Queen)] != 1 {
		t.Errorf("MaterialCount(start) = %v", count)
	}
	if len(count) != 12 {
		t.Errorf("len(MaterialCount(start)) = %d; want 12", len(count))
	}
}
