package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// LegalMoves returns the legal moves of the side to move.
func LegalMoves(board *chess.Board) []chess.Move {
	return LegalMovesFor(board, board.Turn())
}

// LegalMovesFor returns the moves of colour that do not leave its own king
// capturable. Each candidate is played on a history-free scratch copy and
// discarded if any opponent reply lands on the king. A castling move is also
// discarded when the king stands on, or passes over, a capturable square.
// The result keeps generation order and holds no duplicates.
func LegalMovesFor(board *chess.Board, colour chess.Colour) []chess.Move {
	candidates := GeneratePseudoLegal(board, chess.MaskFor(colour))
	legal := make([]chess.Move, 0, len(candidates))
	seen := make(map[chess.Move]struct{}, len(candidates))
	for _, m := range candidates {
		if _, dup := seen[m]; dup {
			continue
		}
		seen[m] = struct{}{}
		if isLegal(board, m, colour) {
			legal = append(legal, m)
		}
	}
	return legal
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(board *chess.Board, colour chess.Colour) bool {
	for _, m := range GeneratePseudoLegal(board, chess.MaskFor(colour)) {
		if isLegal(board, m, colour) {
			return true
		}
	}
	return false
}

// IsValid reports whether move is among the legal moves of the side to move.
func IsValid(board *chess.Board, move chess.Move) bool {
	if piece := board.At(move.From); piece.IsEmpty() || piece.Colour != board.Turn() {
		return false
	}
	for _, m := range LegalMoves(board) {
		if m == move {
			return true
		}
	}
	return false
}

// isLegal plays a pseudo-legal move of colour on a scratch board and probes
// whether the king can be taken afterwards.
func isLegal(board *chess.Board, move chess.Move, colour chess.Colour) bool {
	if isCastling(board, move, colour) {
		if kingCapturable(board, colour) {
			return false
		}
		side, _ := castleFor(colour, move.From, move.To)
		if !survives(board, chess.NewMove(move.From, on(colour, side.rookTo), chess.NoKind), colour) {
			return false
		}
	}
	return survives(board, move, colour)
}

// survives reports whether colour's king is safe after move.
func survives(board *chess.Board, move chess.Move, colour chess.Colour) bool {
	scratch := board.Scratch()
	if err := ApplyMove(scratch, move); err != nil {
		return false
	}
	return !kingCapturable(scratch, colour)
}

// isCastling reports whether move is a castling move of colour's king.
func isCastling(board *chess.Board, move chess.Move, colour chess.Colour) bool {
	if !board.At(move.From).Is(chess.King, colour) || board.Rights(colour).KingMoved {
		return false
	}
	_, ok := castleFor(colour, move.From, move.To)
	return ok
}
