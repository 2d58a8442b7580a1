package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// ApplyMove applies a move to the board and updates the board state.
// It does not check legality; use Play for that. On error the board is
// left untouched.
func ApplyMove(board *chess.Board, move chess.Move) error {
	if !move.From.IsValid() || !move.To.IsValid() {
		return &errors.MoveError{Err: errors.ErrOutOfBounds, Move: move.String(), Ply: board.Ply() + 1}
	}
	piece := board.At(move.From)
	if piece.IsEmpty() {
		return &errors.MoveError{Err: errors.ErrNoPieceAtSquare, Move: move.String(), Ply: board.Ply() + 1}
	}

	if piece.Kind == chess.King && !rookReady(board, move, piece.Colour) {
		return &errors.MoveError{Err: errors.ErrNoPieceAtSquare, Move: move.String(), Ply: board.Ply() + 1}
	}

	board.PushSnapshot(board.State())
	colour := piece.Colour

	switch piece.Kind {
	case chess.Pawn:
		applyPawnMove(board, move, piece)
	case chess.King:
		applyKingMove(board, move, piece)
	default:
		applyPieceMove(board, move, piece)
	}

	board.SetTurn(colour.Opposite())
	return nil
}

// Play applies move if it is legal for the side to move.
func Play(board *chess.Board, move chess.Move) error {
	if !IsValid(board, move) {
		return &errors.MoveError{Err: errors.ErrIllegalMove, Move: move.String(), Ply: board.Ply() + 1, FEN: BoardToFEN(board)}
	}
	return ApplyMove(board, move)
}

// PlayAll parses and plays a sequence of coordinate moves, stopping at the
// first one that fails to parse or is illegal. A pawn move onto the last
// rank written without a promotion letter promotes to board.PromoteTo; one
// written with a letter promotes to that kind instead.
func PlayAll(board *chess.Board, moves ...string) error {
	for _, text := range moves {
		m, err := chess.ParseMove(text)
		if err != nil {
			return &errors.MoveError{Err: err, Move: text, Ply: board.Ply() + 1}
		}
		if err := playPromoting(board, m); err != nil {
			return err
		}
	}
	return nil
}

func playPromoting(board *chess.Board, m chess.Move) error {
	pawn := board.At(m.From)
	if pawn.Kind != chess.Pawn || m.To.Rank().Relative(pawn.Colour) != chess.Rank8 {
		return Play(board, m)
	}
	if !m.IsPromotion() {
		m.Promotion = board.PromoteTo
		return Play(board, m)
	}
	saved := board.PromoteTo
	board.PromoteTo = m.Promotion
	defer func() { board.PromoteTo = saved }()
	return Play(board, m)
}

// applyPawnMove relocates a pawn, removing an en passant victim and
// replacing the pawn on promotion.
func applyPawnMove(board *chess.Board, move chess.Move, pawn chess.Piece) {
	// A diagonal step onto an empty square can only be en passant.
	if move.From.File() != move.To.File() && board.IsEmpty(move.To) {
		if victim, err := move.To.Step(orient(chess.Down, pawn.Colour), 1); err == nil {
			board.Remove(victim)
		}
	}
	landing := pawn
	if move.IsPromotion() {
		landing = chess.NewPiece(move.Promotion, pawn.Colour)
	}
	capture(board, move.To)
	board.Remove(move.From).Place(move.To, landing)
}

// applyKingMove relocates the king, forfeits both castling rights and, for a
// castling move, brings the rook across.
func applyKingMove(board *chess.Board, move chess.Move, king chess.Piece) {
	rights := board.Rights(king.Colour)
	side, castling := castleFor(king.Colour, move.From, move.To)
	castling = castling && !rights.KingMoved

	rights.KingMoved = true
	board.SetRights(king.Colour, rights)

	capture(board, move.To)
	board.Remove(move.From).Place(move.To, king)

	if castling {
		rookFrom := on(king.Colour, side.rookAt)
		rook := board.At(rookFrom)
		board.Remove(rookFrom).Place(on(king.Colour, side.rookTo), rook)
		updateRookRights(board, king.Colour, rookFrom)
	}
}

// rookReady reports whether a castling king move finds its rook at home.
// Moves that do not castle always pass.
func rookReady(board *chess.Board, move chess.Move, colour chess.Colour) bool {
	side, castling := castleFor(colour, move.From, move.To)
	if !castling || board.Rights(colour).KingMoved {
		return true
	}
	return board.At(on(colour, side.rookAt)).Is(chess.Rook, colour)
}

// applyPieceMove relocates a knight, bishop, rook or queen.
func applyPieceMove(board *chess.Board, move chess.Move, piece chess.Piece) {
	if piece.Kind == chess.Rook {
		updateRookRights(board, piece.Colour, move.From)
	}
	capture(board, move.To)
	board.Remove(move.From).Place(move.To, piece)
}

// capture clears the rights tied to a rook taken on its home square.
func capture(board *chess.Board, sq chess.Square) {
	victim := board.At(sq)
	if victim.Kind == chess.Rook {
		updateRookRights(board, victim.Colour, sq)
	}
}
