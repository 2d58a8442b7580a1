package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// castleSide describes one castling option on White's back rank; Black's
// squares are the same files on rank 8.
type castleSide struct {
	kingTo  chess.File
	rookAt  chess.File
	rookTo  chess.File
	between []chess.File
}

var (
	kingside  = castleSide{kingTo: chess.FileG, rookAt: chess.FileH, rookTo: chess.FileF, between: []chess.File{chess.FileF, chess.FileG}}
	queenside = castleSide{kingTo: chess.FileC, rookAt: chess.FileA, rookTo: chess.FileD, between: []chess.File{chess.FileB, chess.FileC, chess.FileD}}
)

// homeRank returns the back rank of colour.
func homeRank(colour chess.Colour) chess.Rank {
	return chess.Rank1.Relative(colour)
}

// on returns the square of file f on colour's home rank.
func on(colour chess.Colour, f chess.File) chess.Square {
	sq, _ := chess.NewSquare(homeRank(colour), f)
	return sq
}

// castlingMoves appends the castling moves available to the king on sq.
// Only the structural conditions are checked here; whether the king passes
// through an attacked square is left to the legality filter.
func castlingMoves(board *chess.Board, sq chess.Square, moves []chess.Move) []chess.Move {
	colour := board.At(sq).Colour
	if sq != on(colour, chess.FileE) {
		return moves
	}
	rights := board.Rights(colour)
	if rights.CanCastleKingside() && canCastle(board, colour, kingside) {
		moves = append(moves, chess.NewMove(sq, on(colour, kingside.kingTo), chess.NoKind))
	}
	if rights.CanCastleQueenside() && canCastle(board, colour, queenside) {
		moves = append(moves, chess.NewMove(sq, on(colour, queenside.kingTo), chess.NoKind))
	}
	return moves
}

func canCastle(board *chess.Board, colour chess.Colour, side castleSide) bool {
	if !board.At(on(colour, side.rookAt)).Is(chess.Rook, colour) {
		return false
	}
	for _, f := range side.between {
		if !board.IsEmpty(on(colour, f)) {
			return false
		}
	}
	return true
}

// castleFor returns the castling side a king move from -> to performs, if any.
func castleFor(colour chess.Colour, from, to chess.Square) (castleSide, bool) {
	if from != on(colour, chess.FileE) {
		return castleSide{}, false
	}
	switch to {
	case on(colour, kingside.kingTo):
		return kingside, true
	case on(colour, queenside.kingTo):
		return queenside, true
	}
	return castleSide{}, false
}

// updateRookRights marks a castling rook as moved when a move leaves or
// lands on one of colour's rook home squares.
func updateRookRights(board *chess.Board, colour chess.Colour, sq chess.Square) {
	rights := board.Rights(colour)
	switch sq {
	case on(colour, kingside.rookAt):
		rights.KingsideRookMoved = true
	case on(colour, queenside.rookAt):
		rights.QueensideRookMoved = true
	default:
		return
	}
	board.SetRights(colour, rights)
}
