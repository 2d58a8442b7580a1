package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// IsInCheck returns true if the given colour's king is in check.
// A side without a king is never in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	return kingCapturable(board, colour)
}

// kingCapturable reports whether any pseudo-legal move of colour's opponent
// lands on colour's king.
func kingCapturable(board *chess.Board, colour chess.Colour) bool {
	king, ok := board.KingSquare(colour)
	if !ok {
		return false
	}
	return SquareAttacked(board, king, colour.Opposite())
}

// SquareAttacked reports whether a pseudo-legal move of the given colour
// ends on sq.
func SquareAttacked(board *chess.Board, sq chess.Square, by chess.Colour) bool {
	for _, m := range GeneratePseudoLegal(board, chess.MaskFor(by)) {
		if m.To == sq {
			return true
		}
	}
	return false
}

// Attackers returns the squares of the pieces of the given colour that
// have a pseudo-legal move onto sq, in board order.
func Attackers(board *chess.Board, sq chess.Square, by chess.Colour) []chess.Square {
	var from []chess.Square
	for _, m := range GeneratePseudoLegal(board, chess.MaskFor(by)) {
		if m.To != sq {
			continue
		}
		if len(from) == 0 || from[len(from)-1] != m.From {
			from = append(from, m.From)
		}
	}
	return from
}
