package chess

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Constants for board dimensions.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize
)

// Rank represents a chess rank (row), 0 for the first rank through 7 for the eighth.
type Rank int8

// File represents a chess file (column), 0 for the a-file through 7 for the h-file.
type File int8

const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

// TryRank converts a 0-based index to a Rank.
func TryRank(n int) (Rank, error) {
	if n < 0 || n >= BoardSize {
		return 0, fmt.Errorf("rank %d: %w", n, errors.ErrOutOfBounds)
	}
	return Rank(n), nil
}

// TryFile converts a 0-based index to a File.
func TryFile(n int) (File, error) {
	if n < 0 || n >= BoardSize {
		return 0, fmt.Errorf("file %d: %w", n, errors.ErrOutOfBounds)
	}
	return File(n), nil
}

// String returns the rank digit ('1'-'8').
func (r Rank) String() string {
	return string(rune('1' + r))
}

// String returns the file letter ('a'-'h').
func (f File) String() string {
	return string(rune('a' + f))
}

// Relative returns the rank as seen from colour's side of the board:
// Rank1 is always that colour's back rank.
func (r Rank) Relative(colour Colour) Rank {
	if colour == White {
		return r
	}
	return Rank8 - r
}

// Square identifies a board cell, 0-63.
// Rank 0 is White's back rank: A1=0, H1=7, A8=56, H8=63.
type Square int8

// Square constants for all 64 squares.
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
	NoSquare Square = -1
)

// NewSquare creates a square from rank and file.
func NewSquare(rank Rank, file File) (Square, error) {
	if rank < Rank1 || rank > Rank8 || file < FileA || file > FileH {
		return NoSquare, fmt.Errorf("rank %d file %d: %w", rank, file, errors.ErrOutOfBounds)
	}
	return Square(int(rank)*BoardSize + int(file)), nil
}

// ParseSquare parses algebraic notation (e.g., "e4") into a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, &errors.ParseError{Err: errors.ErrOutOfBounds, Input: s, Expected: "two-character square"}
	}
	sq, err := NewSquare(Rank(s[1]-'1'), File(s[0]-'a'))
	if err != nil {
		return NoSquare, &errors.ParseError{Err: errors.ErrOutOfBounds, Input: s, Expected: "square a1-h8"}
	}
	return sq, nil
}

// IsValid returns true if the square is a valid board square (0-63).
func (sq Square) IsValid() bool {
	return sq >= 0 && sq < NumSquares
}

// Rank returns the rank of the square.
func (sq Square) Rank() Rank {
	return Rank(sq / BoardSize)
}

// File returns the file of the square.
func (sq Square) File() File {
	return File(sq % BoardSize)
}

// String returns the algebraic notation for the square (e.g., "e4").
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return sq.File().String() + sq.Rank().String()
}

// Direction is one of the eight compass directions on the board, named from
// White's point of view ("up" is towards rank 8).
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
	UpLeft
	UpRight
	DownLeft
	DownRight
)

// Direction groups used by sliding and stepping pieces.
var (
	Orthogonals   = []Direction{Up, Down, Left, Right}
	Diagonals     = []Direction{UpLeft, UpRight, DownLeft, DownRight}
	AllDirections = []Direction{Up, Down, Left, Right, UpLeft, UpRight, DownLeft, DownRight}
)

// Delta returns the rank and file change of a single step.
func (d Direction) Delta() (dRank, dFile int) {
	switch d {
	case Up:
		return 1, 0
	case Down:
		return -1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	case UpLeft:
		return 1, -1
	case UpRight:
		return 1, 1
	case DownLeft:
		return -1, -1
	case DownRight:
		return -1, 1
	}
	return 0, 0
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	case UpLeft:
		return DownRight
	case UpRight:
		return DownLeft
	case DownLeft:
		return UpRight
	case DownRight:
		return UpLeft
	}
	return d
}

// String returns the direction name.
func (d Direction) String() string {
	names := []string{"Up", "Down", "Left", "Right", "UpLeft", "UpRight", "DownLeft", "DownRight"}
	if d >= 0 && int(d) < len(names) {
		return names[d]
	}
	return "Unknown"
}

// Step returns the square n steps away in direction d.
// It fails with ErrOutOfBounds if the index leaves 0-63 or if the rank or
// file did not change by exactly the requested amount, which is what a
// step across the a/h edge looks like in index arithmetic.
func (sq Square) Step(d Direction, n int) (Square, error) {
	if !sq.IsValid() {
		return NoSquare, fmt.Errorf("step from %d: %w", sq, errors.ErrOutOfBounds)
	}
	dRank, dFile := d.Delta()
	idx := int(sq) + (dRank*BoardSize+dFile)*n
	if idx < 0 || idx >= NumSquares {
		return NoSquare, fmt.Errorf("step %v x%d from %v: %w", d, n, sq, errors.ErrOutOfBounds)
	}
	to := Square(idx)
	if int(to.Rank())-int(sq.Rank()) != dRank*n || int(to.File())-int(sq.File()) != dFile*n {
		return NoSquare, fmt.Errorf("step %v x%d from %v wraps: %w", d, n, sq, errors.ErrOutOfBounds)
	}
	return to, nil
}

// MoveTo builds the move from sq to the square n steps away in direction d.
func (sq Square) MoveTo(d Direction, n int, promo PieceKind) (Move, error) {
	to, err := sq.Step(d, n)
	if err != nil {
		return Move{}, err
	}
	return NewMove(sq, to, promo), nil
}
