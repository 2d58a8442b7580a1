package engine

import (
	"errors"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	chesserrors "github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestNewBoardFromFEN(t *testing.T) {
	tests := []struct {
		name     string
		fen      string
		wantTurn chess.Colour
		wantPly  int
		checks   map[chess.Square]chess.Piece
	}{
		{
			name:     "initial position",
			fen:      InitialFEN,
			wantTurn: chess.White,
			checks: map[chess.Square]chess.Piece{
				chess.E1: chess.W(chess.King),
				chess.D8: chess.B(chess.Queen),
				chess.A2: chess.W(chess.Pawn),
				chess.E4: chess.NoPiece,
			},
		},
		{
			name:     "black to move",
			fen:      "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1",
			wantTurn: chess.Black,
			checks: map[chess.Square]chess.Piece{
				chess.E4: chess.W(chess.Pawn),
				chess.E2: chess.NoPiece,
			},
		},
		{
			name:     "placement only",
			fen:      "4k3/8/8/8/8/8/8/4K3",
			wantTurn: chess.White,
			checks:   map[chess.Square]chess.Piece{chess.E8: chess.B(chess.King)},
		},
		{
			name:     "en passant target records the double step",
			fen:      "k7/8/8/3pP3/8/8/8/7K w - d6 0 2",
			wantTurn: chess.White,
			wantPly:  1,
			checks:   map[chess.Square]chess.Piece{chess.D5: chess.B(chess.Pawn), chess.D7: chess.NoPiece},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustFEN(t, tt.fen)
			if board.Turn() != tt.wantTurn {
				t.Errorf("Turn() = %v; want %v", board.Turn(), tt.wantTurn)
			}
			if board.Ply() != tt.wantPly {
				t.Errorf("Ply() = %d; want %d", board.Ply(), tt.wantPly)
			}
			for sq, want := range tt.checks {
				if got := board.At(sq); got != want {
					t.Errorf("At(%v) = %v; want %v", sq, got, want)
				}
			}
		})
	}
}

func TestNewBoardFromFEN_EnPassantHistory(t *testing.T) {
	board := mustFEN(t, "k7/8/8/3pP3/8/8/8/7K w - d6 0 2")
	prev, ok := board.Previous()
	if !ok {
		t.Fatal("Previous() reported no history")
	}
	if !prev.At(chess.D7).Is(chess.Pawn, chess.Black) || !prev.At(chess.D5).IsEmpty() {
		t.Errorf("prior position does not hold the pawn on d7")
	}
	snap, err := board.Snapshot(0)
	testutil.AssertNoError(t, err)
	if snap.Turn != chess.Black {
		t.Errorf("prior Turn = %v; want Black", snap.Turn)
	}
}

func TestNewBoardFromFEN_Errors(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"empty", ""},
		{"seven ranks", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w - - 0 1"},
		{"nine ranks", "rnbqkbnr/pppppppp/8/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"},
		{"short rank", "rnbqkbnr/ppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"},
		{"long rank", "rnbqkbnr/pppppppp/9/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"},
		{"overfull rank", "rnbqkbnrp/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"},
		{"bad piece letter", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBXKBNR w - - 0 1"},
		{"bad side to move", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1"},
		{"bad castling letter", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkx - 0 1"},
		{"bad en passant square", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq e9 0 1"},
		{"en passant on the wrong rank", "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e4 0 1"},
		{"en passant without a pawn", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq d6 0 1"},
		{"negative halfmove clock", "4k3/8/8/8/8/8/8/4K3 w - - -1 1"},
		{"zero fullmove number", "4k3/8/8/8/8/8/8/4K3 w - - 0 0"},
		{"non-numeric clock", "4k3/8/8/8/8/8/8/4K3 w - - x 1"},
		{"too many fields", "4k3/8/8/8/8/8/8/4K3 w - - 0 1 extra"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, err := NewBoardFromFEN(tt.fen)
			if board != nil {
				t.Errorf("NewBoardFromFEN(%q) returned a board", tt.fen)
			}
			testutil.AssertErrorIs(t, err, chesserrors.ErrInvalidFEN)
		})
	}
}

func TestNewBoardFromFEN_ParseErrorColumn(t *testing.T) {
	_, err := NewBoardFromFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBXKBNR w - - 0 1")
	var parseErr *chesserrors.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("error %T is not a *ParseError", err)
	}
	testutil.AssertEqual(t, parseErr.Column, 39)
	testutil.AssertEqual(t, parseErr.Got, "'X'")
}

func TestBoardToFEN(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want string
	}{
		{"initial", InitialFEN, InitialFEN},
		{"kiwipete", kiwipeteFEN, kiwipeteFEN},
		{"white en passant", "k7/8/8/3pP3/8/8/8/7K w - d6 0 2", "k7/8/8/3pP3/8/8/8/7K w - d6 0 1"},
		{"black en passant", "7k/8/8/8/3Pp3/8/8/K7 b - d3 0 1", "7k/8/8/8/3Pp3/8/8/K7 b - d3 0 1"},
		{"placement only", "4k3/8/8/8/8/8/8/4K3", "4k3/8/8/8/8/8/8/4K3 w - - 0 1"},
		{"clocks are reset", "4k3/8/8/8/8/8/8/4K3 b - - 12 40", "4k3/8/8/8/8/8/8/4K3 b - - 0 1"},
		{"rights without rooks are dropped", "4k3/8/8/8/8/8/8/4K3 w KQkq - 0 1", "4k3/8/8/8/8/8/8/4K3 w - - 0 1"},
		{"partial rights", "r3k2r/8/8/8/8/8/8/R3K2R w Kq - 0 1", "r3k2r/8/8/8/8/8/8/R3K2R w Kq - 0 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, BoardToFEN(mustFEN(t, tt.fen)), tt.want)
		})
	}
}

func TestBoardToFEN_AfterMoves(t *testing.T) {
	board := NewInitialBoard()
	testutil.AssertNoError(t, PlayAll(board, "e2e4"))
	testutil.AssertEqual(t, BoardToFEN(board), "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")

	testutil.AssertNoError(t, PlayAll(board, "c7c5", "e1e2"))
	testutil.AssertEqual(t, BoardToFEN(board), "rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPPKPPP/RNBQ1BNR b kq - 0 1")
}

func TestFEN_RoundTripMoves(t *testing.T) {
	board := mustFEN(t, kiwipeteFEN)
	for _, m := range LegalMoves(board) {
		child := board.Clone()
		testutil.AssertNoError(t, ApplyMove(child, m))
		fen := BoardToFEN(child)
		again := BoardToFEN(mustFEN(t, fen))
		testutil.AssertEqual(t, again, fen, m.String())
	}
}
