// Package hashing provides Zobrist position keys and a perft result cache.
package hashing

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Zobrist keys, generated once from a fixed seed so keys are stable
// across runs.
var (
	zobristPiece      [chess.NumColours][chess.NumPieceKinds][chess.NumSquares]uint64
	zobristCastling   [16]uint64
	zobristEnPassant  [chess.BoardSize]uint64
	zobristSideToMove uint64
)

func init() {
	initZobrist()
}

// prng is an xorshift64* generator.
type prng struct {
	state uint64
}

func (p *prng) next() uint64 {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 0x2545F4914F6CDD1D
}

func initZobrist() {
	rng := &prng{state: 0x9E3779B97F4A7C15}

	for c := 0; c < chess.NumColours; c++ {
		for k := chess.Pawn; k <= chess.King; k++ {
			for sq := 0; sq < chess.NumSquares; sq++ {
				zobristPiece[c][k][sq] = rng.next()
			}
		}
	}
	for i := range zobristCastling {
		zobristCastling[i] = rng.next()
	}
	for file := range zobristEnPassant {
		zobristEnPassant[file] = rng.next()
	}
	zobristSideToMove = rng.next()
}

// CastlingIndex packs the castling options still open into four bits:
// White kingside, White queenside, Black kingside, Black queenside.
// Flag combinations that allow the same castles share an index.
func CastlingIndex(board *chess.Board) int {
	idx := 0
	for i, colour := range []chess.Colour{chess.White, chess.Black} {
		r := board.Rights(colour)
		if r.CanCastleKingside() {
			idx |= 1 << (2 * i)
		}
		if r.CanCastleQueenside() {
			idx |= 1 << (2*i + 1)
		}
	}
	return idx
}

// Key returns the Zobrist key of the position: pieces, side to move,
// open castling options and the file of a pawn that just made a double step.
// Positions with equal keys generate the same moves.
func Key(board *chess.Board) uint64 {
	var key uint64
	grid := board.Grid()
	for sq, p := range grid {
		key ^= PieceKey(p, chess.Square(sq))
	}
	key ^= zobristCastling[CastlingIndex(board)]
	if target, ok := board.EnPassantTarget(); ok {
		key ^= zobristEnPassant[target.File()]
	}
	if board.Turn() == chess.Black {
		key ^= zobristSideToMove
	}
	return key
}

// PieceKey returns the key contribution of one piece on one square.
func PieceKey(p chess.Piece, sq chess.Square) uint64 {
	if p.IsEmpty() || !sq.IsValid() {
		return 0
	}
	return zobristPiece[p.Colour][p.Kind][sq]
}
