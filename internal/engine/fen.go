package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewBoardFromFEN creates a board from a FEN string.
// Fields after the piece placement are optional and default to White to
// move, no castling and no en passant target. The clocks are validated but
// not kept. An en passant target is recorded as a single history entry
// holding the position before the double step, so the board answers
// Previous() exactly as if that move had been played on it.
func NewBoardFromFEN(fen string) (*chess.Board, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}
	if len(parts) > 6 {
		return nil, &errors.ParseError{Err: errors.ErrInvalidFEN, Input: fen, Expected: "at most 6 fields", Got: strconv.Itoa(len(parts))}
	}

	board := chess.NewEmptyBoard(chess.White)
	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(board, parts); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(board, parts); err != nil {
		return nil, err
	}
	if err := parseClocks(parts); err != nil {
		return nil, err
	}
	if err := parseEnPassant(board, parts); err != nil {
		return nil, err
	}
	return board, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	rank := chess.Rank8
	file := 0

	for i := 0; i < len(positions); i++ {
		c := positions[i]
		switch {
		case c == '/':
			if file != chess.BoardSize {
				return &errors.ParseError{Err: errors.ErrInvalidFEN, Input: positions, Column: i + 1, Expected: "8 squares in rank " + rank.String(), Got: strconv.Itoa(file)}
			}
			if rank == chess.Rank1 {
				return &errors.ParseError{Err: errors.ErrInvalidFEN, Input: positions, Column: i + 1, Expected: "8 ranks", Got: "more"}
			}
			rank--
			file = 0
		case c >= '1' && c <= '8':
			file += int(c - '0')
			if file > chess.BoardSize {
				return &errors.ParseError{Err: errors.ErrInvalidFEN, Input: positions, Column: i + 1, Expected: "8 squares in rank " + rank.String(), Got: "more"}
			}
		default:
			kind, ok := chess.ParsePieceKind(c)
			if !ok {
				return &errors.ParseError{Err: errors.ErrInvalidFEN, Input: positions, Column: i + 1, Expected: "piece letter", Got: fmt.Sprintf("%q", c)}
			}
			if file >= chess.BoardSize {
				return &errors.ParseError{Err: errors.ErrInvalidFEN, Input: positions, Column: i + 1, Expected: "8 squares in rank " + rank.String(), Got: "more"}
			}
			colour := chess.White
			if c >= 'a' && c <= 'z' {
				colour = chess.Black
			}
			sq, _ := chess.NewSquare(rank, chess.File(file))
			board.Place(sq, chess.NewPiece(kind, colour))
			file++
		}
	}
	if rank != chess.Rank1 || file != chess.BoardSize {
		return &errors.ParseError{Err: errors.ErrInvalidFEN, Input: positions, Column: len(positions), Expected: "8 ranks of 8 squares"}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(board *chess.Board, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		board.SetTurn(chess.White)
	case "b":
		board.SetTurn(chess.Black)
	default:
		return fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
	return nil
}

// parseCastlingRights parses the castling availability field.
// A missing letter marks the corresponding rook as moved.
func parseCastlingRights(board *chess.Board, parts []string) error {
	white := chess.CastlingRights{KingsideRookMoved: true, QueensideRookMoved: true}
	black := white

	if len(parts) >= 3 && parts[2] != "-" {
		for _, c := range parts[2] {
			switch c {
			case 'K':
				white.KingsideRookMoved = false
			case 'Q':
				white.QueensideRookMoved = false
			case 'k':
				black.KingsideRookMoved = false
			case 'q':
				black.QueensideRookMoved = false
			default:
				return fmt.Errorf("invalid castling availability: %s: %w", parts[2], errors.ErrInvalidFEN)
			}
		}
	}
	board.SetRights(chess.White, white)
	board.SetRights(chess.Black, black)
	return nil
}

// parseClocks validates the halfmove clock and fullmove number fields.
func parseClocks(parts []string) error {
	for i, least := range map[int]int{4: 0, 5: 1} {
		if len(parts) <= i {
			continue
		}
		n, err := strconv.Atoi(parts[i])
		if err != nil || n < least {
			return fmt.Errorf("invalid move counter: %s: %w", parts[i], errors.ErrInvalidFEN)
		}
	}
	return nil
}

// parseEnPassant parses the en passant target square field and records the
// position before the double step that produced it.
func parseEnPassant(board *chess.Board, parts []string) error {
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}
	target, err := chess.ParseSquare(parts[3])
	if err != nil {
		return fmt.Errorf("invalid en passant square: %s: %w", parts[3], errors.ErrInvalidFEN)
	}

	mover := board.Turn().Opposite()
	if target.Rank() != chess.Rank3.Relative(mover) {
		return fmt.Errorf("en passant square %v not on rank %v: %w", target, chess.Rank3.Relative(mover), errors.ErrInvalidFEN)
	}
	landed, _ := target.Step(orient(chess.Up, mover), 1)
	start, _ := target.Step(orient(chess.Down, mover), 1)
	if !board.At(landed).Is(chess.Pawn, mover) || !board.IsEmpty(target) || !board.IsEmpty(start) {
		return fmt.Errorf("en passant square %v without a double pawn step: %w", target, errors.ErrInvalidFEN)
	}

	prior := board.State()
	prior.Turn = mover
	prior.Grid[start] = prior.Grid[landed]
	prior.Grid[landed] = chess.NoPiece
	board.PushSnapshot(prior)
	return nil
}

// BoardToFEN converts a board to a FEN string. The clocks are always
// written as "0 1".
func BoardToFEN(board *chess.Board) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, board)
	sb.WriteByte(' ')
	writeCastlingRights(&sb, board)
	sb.WriteByte(' ')
	writeEnPassant(&sb, board)
	sb.WriteString(" 0 1")

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := chess.Rank8; rank >= chess.Rank1; rank-- {
		emptyCount := 0
		for _, piece := range board.Rank(rank) {
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > chess.Rank1 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, board *chess.Board) {
	if board.Turn() == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeCastlingRights writes the castling availability to the builder.
// A right is written only while the king and rook still stand at home.
func writeCastlingRights(sb *strings.Builder, board *chess.Board) {
	hasCastling := false
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		rights := board.Rights(colour)
		if !board.At(on(colour, chess.FileE)).Is(chess.King, colour) {
			continue
		}
		letters := []struct {
			side castleSide
			can  bool
			c    byte
		}{
			{kingside, rights.CanCastleKingside(), 'K'},
			{queenside, rights.CanCastleQueenside(), 'Q'},
		}
		for _, l := range letters {
			if !l.can || !board.At(on(colour, l.side.rookAt)).Is(chess.Rook, colour) {
				continue
			}
			c := l.c
			if colour == chess.Black {
				c += 'a' - 'A'
			}
			sb.WriteByte(c)
			hasCastling = true
		}
	}
	if !hasCastling {
		sb.WriteByte('-')
	}
}

// writeEnPassant writes the en passant target square to the builder.
func writeEnPassant(sb *strings.Builder, board *chess.Board) {
	if target, ok := board.EnPassantTarget(); ok {
		sb.WriteString(target.String())
	} else {
		sb.WriteByte('-')
	}
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *chess.Board {
	board, _ := NewBoardFromFEN(InitialFEN)
	return board
}
