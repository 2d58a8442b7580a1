package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// pawnMoves appends the pseudo-legal moves of the pawn on sq.
func pawnMoves(board *chess.Board, sq chess.Square, moves []chess.Move) []chess.Move {
	colour := board.At(sq).Colour
	promo := chess.NoKind
	if sq.Rank().Relative(colour) == chess.Rank7 {
		promo = board.PromoteTo
	}

	// Forward pushes
	if m, err := Up(board, sq, 1, promo); err == nil && board.IsEmpty(m.To) {
		moves = append(moves, m)
		if sq.Rank().Relative(colour) == chess.Rank2 {
			if m2, err := Up(board, sq, 2, chess.NoKind); err == nil && board.IsEmpty(m2.To) {
				moves = append(moves, m2)
			}
		}
	}

	// Captures, including en passant
	for _, side := range [2]chess.Direction{chess.Left, chess.Right} {
		diagonal := chess.UpLeft
		if side == chess.Right {
			diagonal = chess.UpRight
		}
		m, err := BuildMove(board, sq, diagonal, 1, promo)
		if err != nil {
			continue
		}
		target := board.At(m.To)
		if target.IsOpponentOf(colour) {
			moves = append(moves, m)
			continue
		}
		if target.IsEmpty() && isEnPassant(board, sq, side) {
			moves = append(moves, m)
		}
	}
	return moves
}

// isEnPassant reports whether the pawn on sq may capture en passant towards
// side. The opponent pawn beside it must have arrived there with a double
// step on the move just played, which the history lookback confirms.
func isEnPassant(board *chess.Board, sq chess.Square, side chess.Direction) bool {
	colour := board.At(sq).Colour
	if sq.Rank().Relative(colour) != chess.Rank5 {
		return false
	}
	beside, err := BuildMove(board, sq, side, 1, chess.NoKind)
	if err != nil || !board.At(beside.To).Is(chess.Pawn, colour.Opposite()) {
		return false
	}
	prev, ok := board.Previous()
	if !ok {
		return false
	}
	start, err := beside.To.Step(orient(chess.Up, colour), 2)
	if err != nil {
		return false
	}
	return prev.At(start).Is(chess.Pawn, colour.Opposite()) && prev.At(beside.To).IsEmpty() && board.IsEmpty(start)
}
