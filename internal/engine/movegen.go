// Package engine provides chess move generation, validation and board manipulation.
package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Move generation dispatches on the structural category of a piece:
// pawns, steppers (knight and king) and sliders (bishop, rook and queen).
var (
	bishopDirs = chess.Diagonals
	rookDirs   = chess.Orthogonals
	queenDirs  = chess.AllDirections
)

// GeneratePseudoLegal returns every move obeying piece movement rules for
// the pieces selected by mask, ignoring whether the mover's king is left
// capturable. Moves are listed square by square from a1 to h8.
func GeneratePseudoLegal(board *chess.Board, mask chess.GenMask) []chess.Move {
	moves := make([]chess.Move, 0, 48)
	for i := 0; i < chess.NumSquares; i++ {
		sq := chess.Square(i)
		piece := board.At(sq)
		if piece.IsEmpty() || !mask.Includes(piece.Colour) {
			continue
		}
		moves = pieceMoves(board, sq, piece.Kind, moves)
	}
	return moves
}

// PieceMoves returns the pseudo-legal moves of the piece standing on sq.
func PieceMoves(board *chess.Board, sq chess.Square) []chess.Move {
	piece := board.At(sq)
	if piece.IsEmpty() {
		return nil
	}
	return pieceMoves(board, sq, piece.Kind, nil)
}

func pieceMoves(board *chess.Board, sq chess.Square, kind chess.PieceKind, moves []chess.Move) []chess.Move {
	switch kind {
	case chess.Pawn:
		return pawnMoves(board, sq, moves)
	case chess.Knight:
		return knightMoves(board, sq, moves)
	case chess.King:
		moves = kingMoves(board, sq, moves)
		return castlingMoves(board, sq, moves)
	case chess.Bishop:
		return slidingMoves(board, sq, bishopDirs, moves)
	case chess.Rook:
		return slidingMoves(board, sq, rookDirs, moves)
	case chess.Queen:
		return slidingMoves(board, sq, queenDirs, moves)
	}
	return moves
}
