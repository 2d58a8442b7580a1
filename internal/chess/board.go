package chess

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Grid is the 8x8 board contents indexed by Square.
type Grid [NumSquares]Piece

// At returns the piece on sq, or NoPiece if sq is off the board.
func (g *Grid) At(sq Square) Piece {
	if !sq.IsValid() {
		return NoPiece
	}
	return g[sq]
}

// CastlingRights records, for one colour, which castling pieces have moved.
// A right is lost permanently once its flag is set.
type CastlingRights struct {
	KingMoved          bool
	KingsideRookMoved  bool
	QueensideRookMoved bool
}

// CanCastleKingside reports whether neither the king nor the h-file rook has moved.
func (r CastlingRights) CanCastleKingside() bool {
	return !r.KingMoved && !r.KingsideRookMoved
}

// CanCastleQueenside reports whether neither the king nor the a-file rook has moved.
func (r CastlingRights) CanCastleQueenside() bool {
	return !r.KingMoved && !r.QueensideRookMoved
}

// AllMoved returns rights with every flag set (no castling possible).
func AllMoved() CastlingRights {
	return CastlingRights{KingMoved: true, KingsideRookMoved: true, QueensideRookMoved: true}
}

// Snapshot is the full position as it stood before one move was applied.
type Snapshot struct {
	Grid   Grid
	Turn   Colour
	Rights [NumColours]CastlingRights
}

// Board represents a chess position: the grid, side to move, castling
// rights per colour, the promotion target and the history of prior positions.
//
// History is an arena of snapshots indexed by ply: History()[i] is the
// position before the (i+1)th move applied to this board. The current
// position is never part of it.
type Board struct {
	grid    Grid
	turn    Colour
	rights  [NumColours]CastlingRights
	history []Snapshot

	// PromoteTo is the kind a pawn becomes when a move ends on its last rank.
	PromoteTo PieceKind
}

// NewEmptyBoard returns an empty board for building a position piece by piece.
// Castling flags start unset; they only matter once king and rooks are placed.
func NewEmptyBoard(turn Colour) *Board {
	return &Board{
		turn:      turn,
		PromoteTo: Queen,
	}
}

// NewBoard returns a board set up with the standard starting position.
func NewBoard() *Board {
	b := NewEmptyBoard(White)
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.grid = Grid{}
	backRank := []PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := FileA; file <= FileH; file++ {
		b.grid[int(Rank1)*BoardSize+int(file)] = W(backRank[file])
		b.grid[int(Rank2)*BoardSize+int(file)] = W(Pawn)
		b.grid[int(Rank7)*BoardSize+int(file)] = B(Pawn)
		b.grid[int(Rank8)*BoardSize+int(file)] = B(backRank[file])
	}
	b.turn = White
	b.rights = [NumColours]CastlingRights{}
	b.history = nil
}

// Place puts piece on sq, replacing whatever was there. It does not touch history.
func (b *Board) Place(sq Square, piece Piece) *Board {
	if sq.IsValid() {
		b.grid[sq] = piece
	}
	return b
}

// Remove clears sq. It does not touch history.
func (b *Board) Remove(sq Square) *Board {
	return b.Place(sq, NoPiece)
}

// At returns the piece on sq (NoPiece for an empty or off-board square).
func (b *Board) At(sq Square) Piece {
	return b.grid.At(sq)
}

// IsEmpty reports whether sq holds no piece.
func (b *Board) IsEmpty(sq Square) bool {
	return b.At(sq).IsEmpty()
}

// Rank returns the eight cells of one rank, a-file first.
func (b *Board) Rank(r Rank) [BoardSize]Piece {
	var row [BoardSize]Piece
	if r < Rank1 || r > Rank8 {
		return row
	}
	copy(row[:], b.grid[int(r)*BoardSize:int(r+1)*BoardSize])
	return row
}

// Grid returns a copy of the current grid.
func (b *Board) Grid() Grid {
	return b.grid
}

// Turn returns the side to move.
func (b *Board) Turn() Colour {
	return b.turn
}

// SetTurn sets the side to move.
func (b *Board) SetTurn(c Colour) *Board {
	b.turn = c
	return b
}

// Rights returns the castling flags of one colour.
func (b *Board) Rights(c Colour) CastlingRights {
	return b.rights[c]
}

// SetRights replaces the castling flags of one colour.
func (b *Board) SetRights(c Colour, r CastlingRights) *Board {
	b.rights[c] = r
	return b
}

// Ref returns a handle to the cell at sq, or nil for an off-board square.
// The handle stays valid for the lifetime of the board and always refers to
// the same cell; SquareOf maps it back.
func (b *Board) Ref(sq Square) *Piece {
	if !sq.IsValid() {
		return nil
	}
	return &b.grid[sq]
}

// SquareOf returns the square whose cell ref points to.
func (b *Board) SquareOf(ref *Piece) (Square, error) {
	if ref == nil {
		return NoSquare, errors.ErrNoPieceAtSquare
	}
	for i := range b.grid {
		if &b.grid[i] == ref {
			return Square(i), nil
		}
	}
	return NoSquare, fmt.Errorf("handle not on this board: %w", errors.ErrNoPieceAtSquare)
}

// KingSquare returns where the king of the given colour stands.
func (b *Board) KingSquare(c Colour) (Square, bool) {
	for i, p := range b.grid {
		if p.Is(King, c) {
			return Square(i), true
		}
	}
	return NoSquare, false
}

// State captures the current position as a snapshot.
func (b *Board) State() Snapshot {
	return Snapshot{Grid: b.grid, Turn: b.turn, Rights: b.rights}
}

// PushSnapshot appends s to the history. Move application pushes the
// pre-move State(); position builders may push a synthesized prior position.
func (b *Board) PushSnapshot(s Snapshot) {
	b.history = append(b.history, s)
}

// Ply returns the number of snapshots in the history.
func (b *Board) Ply() int {
	return len(b.history)
}

// History returns a copy of the snapshot history, oldest first.
func (b *Board) History() []Snapshot {
	out := make([]Snapshot, len(b.history))
	copy(out, b.history)
	return out
}

// Snapshot returns the position before the move at index ply.
func (b *Board) Snapshot(ply int) (Snapshot, error) {
	if ply < 0 || ply >= len(b.history) {
		return Snapshot{}, fmt.Errorf("ply %d of %d: %w", ply, len(b.history), errors.ErrNoHistory)
	}
	return b.history[ply], nil
}

// Previous returns the grid as it stood one move ago.
func (b *Board) Previous() (*Grid, bool) {
	if len(b.history) == 0 {
		return nil, false
	}
	return &b.history[len(b.history)-1].Grid, true
}

// Undo restores the position before the last applied move.
func (b *Board) Undo() error {
	if len(b.history) == 0 {
		return errors.ErrNoHistory
	}
	last := b.history[len(b.history)-1]
	b.history = b.history[:len(b.history)-1]
	b.grid = last.Grid
	b.turn = last.Turn
	b.rights = last.Rights
	return nil
}

// Clone creates a deep copy of the board, history included.
func (b *Board) Clone() *Board {
	nb := *b
	if b.history != nil {
		nb.history = make([]Snapshot, len(b.history))
		copy(nb.history, b.history)
	}
	return &nb
}

// Scratch creates a copy of the current position with an empty history,
// for simulating a move without growing or sharing the original history.
func (b *Board) Scratch() *Board {
	nb := *b
	nb.history = nil
	return &nb
}

// String renders the board as eight FEN-letter rows, rank 8 first.
func (b *Board) String() string {
	buf := make([]byte, 0, NumSquares+BoardSize)
	for r := Rank8; r >= Rank1; r-- {
		for _, p := range b.Rank(r) {
			buf = append(buf, p.Letter())
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}

// EnPassantTarget returns the square skipped by a double pawn step made on
// the move just played. It reports false when the last move was anything
// else or the board has no history.
func (b *Board) EnPassantTarget() (Square, bool) {
	prev, ok := b.Previous()
	if !ok {
		return NoSquare, false
	}
	mover := b.turn.Opposite()
	for file := FileA; file <= FileH; file++ {
		start, _ := NewSquare(Rank2.Relative(mover), file)
		skipped, _ := NewSquare(Rank3.Relative(mover), file)
		landed, _ := NewSquare(Rank4.Relative(mover), file)
		if b.At(landed).Is(Pawn, mover) && prev.At(landed).IsEmpty() &&
			prev.At(start).Is(Pawn, mover) && b.IsEmpty(start) && b.IsEmpty(skipped) {
			return skipped, true
		}
	}
	return NoSquare, false
}
