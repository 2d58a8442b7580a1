package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// HasInsufficientMaterial returns true if neither side can ever deliver
// mate: K vs K, K+B vs K, K+N vs K, or K+B vs K+B with both bishops on
// squares of the same colour.
func HasInsufficientMaterial(board *chess.Board) bool {
	var minors [chess.NumColours][]chess.PieceKind
	var bishopOnLight [chess.NumColours]bool

	for i := 0; i < chess.NumSquares; i++ {
		sq := chess.Square(i)
		piece := board.At(sq)
		switch piece.Kind {
		case chess.NoKind, chess.King:
			continue
		case chess.Pawn, chess.Rook, chess.Queen:
			return false
		case chess.Bishop:
			bishopOnLight[piece.Colour] = isLightSquare(sq)
		}
		minors[piece.Colour] = append(minors[piece.Colour], piece.Kind)
	}

	white, black := minors[chess.White], minors[chess.Black]
	switch {
	case len(white) == 0 && len(black) == 0:
		return true
	case len(white) == 0 && len(black) == 1, len(black) == 0 && len(white) == 1:
		return true
	case len(white) == 1 && len(black) == 1:
		return white[0] == chess.Bishop && black[0] == chess.Bishop &&
			bishopOnLight[chess.White] == bishopOnLight[chess.Black]
	}
	return false
}

// isLightSquare returns true if the given square is a light square.
func isLightSquare(sq chess.Square) bool {
	return (int(sq.File())+int(sq.Rank()))%2 == 1
}

// MaterialCount returns how many of each piece stand on the board.
func MaterialCount(board *chess.Board) map[chess.Piece]int {
	count := make(map[chess.Piece]int)
	grid := board.Grid()
	for _, p := range grid {
		if !p.IsEmpty() {
			count[p]++
		}
	}
	return count
}

// HasStandardMaterial reports whether the board holds exactly the pieces of
// the starting position.
func HasStandardMaterial(board *chess.Board) bool {
	expected := map[chess.PieceKind]int{
		chess.Pawn: 8, chess.Rook: 2, chess.Knight: 2,
		chess.Bishop: 2, chess.Queen: 1, chess.King: 1,
	}
	actual := MaterialCount(board)
	for kind, n := range expected {
		for _, colour := range []chess.Colour{chess.White, chess.Black} {
			if actual[chess.NewPiece(kind, colour)] != n {
				return false
			}
		}
	}
	return len(actual) == 2*len(expected)
}
