package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// knightOffsets are the index deltas of the eight knight jumps.
var knightOffsets = [8]int{-17, -15, -10, -6, 6, 10, 15, 17}

// knightMoves appends the pseudo-legal moves of the knight on sq.
// A jump whose file differs from the origin's by more than two wrapped
// around a board edge and is discarded.
func knightMoves(board *chess.Board, sq chess.Square, moves []chess.Move) []chess.Move {
	colour := board.At(sq).Colour
	for _, off := range knightOffsets {
		idx := int(sq) + off
		if idx < 0 || idx >= chess.NumSquares {
			continue
		}
		to := chess.Square(idx)
		if abs(int(to.File())-int(sq.File())) > 2 {
			continue
		}
		if canLand(board, to, colour) {
			moves = append(moves, chess.NewMove(sq, to, chess.NoKind))
		}
	}
	return moves
}

// kingMoves appends the single-step moves of the king on sq.
// Castling is generated separately.
func kingMoves(board *chess.Board, sq chess.Square, moves []chess.Move) []chess.Move {
	colour := board.At(sq).Colour
	for _, dir := range chess.AllDirections {
		m, err := BuildMove(board, sq, dir, 1, chess.NoKind)
		if err != nil {
			continue
		}
		if canLand(board, m.To, colour) {
			moves = append(moves, m)
		}
	}
	return moves
}

// slidingMoves appends every move along the given rays. A ray stops at the
// first occupied square, which is included only when it holds an opponent.
func slidingMoves(board *chess.Board, sq chess.Square, dirs []chess.Direction, moves []chess.Move) []chess.Move {
	colour := board.At(sq).Colour
	for _, dir := range dirs {
		for n := 1; n < chess.BoardSize; n++ {
			m, err := BuildMove(board, sq, dir, n, chess.NoKind)
			if err != nil {
				break
			}
			target := board.At(m.To)
			if target.IsEmpty() {
				moves = append(moves, m)
				continue
			}
			if target.IsOpponentOf(colour) {
				moves = append(moves, m)
			}
			break
		}
	}
	return moves
}

// canLand reports whether a piece of colour may finish on sq.
func canLand(board *chess.Board, sq chess.Square, colour chess.Colour) bool {
	target := board.At(sq)
	return target.IsEmpty() || target.IsOpponentOf(colour)
}
