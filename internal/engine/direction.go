package engine

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// BuildMove builds the move taking the piece on sq n steps in direction dir.
// Directions are relative to the owner of the piece: Up is always away from
// that colour's back rank, so every direction is mirrored for Black.
// Returns ErrNoPieceAtSquare if sq is empty and ErrOutOfBounds if the
// destination is off the board.
func BuildMove(board *chess.Board, sq chess.Square, dir chess.Direction, n int, promo chess.PieceKind) (chess.Move, error) {
	piece := board.At(sq)
	if piece.IsEmpty() {
		return chess.Move{}, fmt.Errorf("build move from %v: %w", sq, errors.ErrNoPieceAtSquare)
	}
	return sq.MoveTo(orient(dir, piece.Colour), n, promo)
}

// orient maps a direction relative to colour onto the board's absolute directions.
func orient(dir chess.Direction, colour chess.Colour) chess.Direction {
	if colour == chess.Black {
		return dir.Opposite()
	}
	return dir
}

// Up builds the move n steps forward for the piece on sq.
func Up(board *chess.Board, sq chess.Square, n int, promo chess.PieceKind) (chess.Move, error) {
	return BuildMove(board, sq, chess.Up, n, promo)
}

// Down builds the move n steps backward for the piece on sq.
func Down(board *chess.Board, sq chess.Square, n int, promo chess.PieceKind) (chess.Move, error) {
	return BuildMove(board, sq, chess.Down, n, promo)
}

// Left builds the move n steps to the piece owner's left.
func Left(board *chess.Board, sq chess.Square, n int, promo chess.PieceKind) (chess.Move, error) {
	return BuildMove(board, sq, chess.Left, n, promo)
}

// Right builds the move n steps to the piece owner's right.
func Right(board *chess.Board, sq chess.Square, n int, promo chess.PieceKind) (chess.Move, error) {
	return BuildMove(board, sq, chess.Right, n, promo)
}

// UpLeft builds the forward-left diagonal move.
func UpLeft(board *chess.Board, sq chess.Square, n int, promo chess.PieceKind) (chess.Move, error) {
	return BuildMove(board, sq, chess.UpLeft, n, promo)
}

// UpRight builds the forward-right diagonal move.
func UpRight(board *chess.Board, sq chess.Square, n int, promo chess.PieceKind) (chess.Move, error) {
	return BuildMove(board, sq, chess.UpRight, n, promo)
}

// DownLeft builds the backward-left diagonal move.
func DownLeft(board *chess.Board, sq chess.Square, n int, promo chess.PieceKind) (chess.Move, error) {
	return BuildMove(board, sq, chess.DownLeft, n, promo)
}

// DownRight builds the backward-right diagonal move.
func DownRight(board *chess.Board, sq chess.Square, n int, promo chess.PieceKind) (chess.Move, error) {
	return BuildMove(board, sq, chess.DownRight, n, promo)
}
