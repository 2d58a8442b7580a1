package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(board *chess.Board) bool {
	colour := board.Turn()
	return IsInCheck(board, colour) && !HasLegalMoves(board, colour)
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(board *chess.Board) bool {
	colour := board.Turn()
	return !IsInCheck(board, colour) && !HasLegalMoves(board, colour)
}

// Status summarises the position for the side to move.
type Status int

const (
	InPlay Status = iota
	Check
	Checkmate
	Stalemate
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	default:
		return "in play"
	}
}

// PositionStatus classifies the position for the side to move.
func PositionStatus(board *chess.Board) Status {
	colour := board.Turn()
	inCheck := IsInCheck(board, colour)
	canMove := HasLegalMoves(board, colour)
	switch {
	case canMove && inCheck:
		return Check
	case canMove:
		return InPlay
	case inCheck:
		return Checkmate
	default:
		return Stalemate
	}
}
