// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// NumColours is the number of colours, used to size per-colour tables.
const NumColours = 2

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns +1 for White, -1 for Black (the rank direction pawns advance in).
func (c Colour) Forward() int {
	if c == White {
		return 1
	}
	return -1
}

// PieceKind represents a chess piece type.
type PieceKind int

const (
	NoKind PieceKind = iota // Empty square / no promotion
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceKinds
)

// String returns the string representation of a piece kind.
func (k PieceKind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece kind (uppercase).
func (k PieceKind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// IsPromotionTarget reports whether a pawn may promote to this kind.
func (k PieceKind) IsPromotionTarget() bool {
	switch k {
	case Knight, Bishop, Rook, Queen:
		return true
	default:
		return false
	}
}

// ParsePieceKind converts a piece letter (either case) to a piece kind.
func ParsePieceKind(c byte) (PieceKind, bool) {
	switch c {
	case 'P', 'p':
		return Pawn, true
	case 'N', 'n':
		return Knight, true
	case 'B', 'b':
		return Bishop, true
	case 'R', 'r':
		return Rook, true
	case 'Q', 'q':
		return Queen, true
	case 'K', 'k':
		return King, true
	default:
		return NoKind, false
	}
}

// Piece is a piece kind together with its colour. It carries no position;
// the zero value is an empty cell.
type Piece struct {
	Kind   PieceKind
	Colour Colour
}

// NoPiece is the empty cell.
var NoPiece = Piece{}

// NewPiece creates a piece of the given kind and colour.
func NewPiece(kind PieceKind, colour Colour) Piece {
	return Piece{Kind: kind, Colour: colour}
}

// W creates a white piece.
func W(kind PieceKind) Piece {
	return NewPiece(kind, White)
}

// B creates a black piece.
func B(kind PieceKind) Piece {
	return NewPiece(kind, Black)
}

// IsEmpty reports whether the cell holds no piece.
func (p Piece) IsEmpty() bool {
	return p.Kind == NoKind
}

// Is reports whether p is a piece of the given kind and colour.
func (p Piece) Is(kind PieceKind, colour Colour) bool {
	return p.Kind == kind && p.Colour == colour
}

// IsOpponentOf reports whether p is a piece belonging to the side opposing colour.
func (p Piece) IsOpponentOf(colour Colour) bool {
	return !p.IsEmpty() && p.Colour != colour
}

// Letter returns the FEN letter for the piece: uppercase for White,
// lowercase for Black, '.' for an empty cell.
func (p Piece) Letter() byte {
	if p.IsEmpty() {
		return '.'
	}
	l := p.Kind.Letter()
	if p.Colour == Black {
		l += 'a' - 'A'
	}
	return l
}

// String returns e.g. "White Knight", or "Empty".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return p.Colour.String() + " " + p.Kind.String()
}

// GenMask selects which side's pieces move generation considers.
type GenMask int

const (
	GenWhite GenMask = iota
	GenBlack
	GenBoth
)

// MaskFor returns the mask selecting only the given colour.
func MaskFor(colour Colour) GenMask {
	if colour == White {
		return GenWhite
	}
	return GenBlack
}

// Includes reports whether pieces of the given colour pass the mask.
func (m GenMask) Includes(colour Colour) bool {
	switch m {
	case GenBoth:
		return true
	case GenWhite:
		return colour == White
	case GenBlack:
		return colour == Black
	default:
		return false
	}
}

// String returns the string representation of a mask.
func (m GenMask) String() string {
	switch m {
	case GenWhite:
		return "White"
	case GenBlack:
		return "Black"
	case GenBoth:
		return "Both"
	default:
		return "Unknown"
	}
}
