// Package output formats command reports as text or JSON.
package output

import (
	"time"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/crosscheck"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// Report is everything the command found out about one position.
// Optional sections are nil when they were not requested.
type Report struct {
	FEN        string            `json:"fen"`
	Board      string            `json:"board,omitempty"`
	Status     string            `json:"status,omitempty"`
	Moves      *MoveList         `json:"moves,omitempty"`
	Perft      *PerftReport      `json:"perft,omitempty"`
	CrossCheck *CrossCheckReport `json:"crossCheck,omitempty"`
}

// MoveList is the legal moves of the side to move in coordinate notation.
type MoveList struct {
	Count int      `json:"count"`
	List  []string `json:"list"`
}

// PerftReport holds a perft result, with the per-root-move counts when
// divide was requested.
type PerftReport struct {
	Depth     int          `json:"depth"`
	Nodes     uint64       `json:"nodes"`
	Divide    []DivideLine `json:"divide,omitempty"`
	ElapsedMS int64        `json:"elapsedMs"`
}

// DivideLine is the count below one root move.
type DivideLine struct {
	Move  string `json:"move"`
	Nodes uint64 `json:"nodes"`
}

// CrossCheckReport lists the positions where the generators disagree.
type CrossCheckReport struct {
	Depth      int                   `json:"depth"`
	Mismatches []crosscheck.Mismatch `json:"mismatches"`
}

// NewReport starts a report for board.
func NewReport(board *chess.Board) *Report {
	return &Report{FEN: engine.BoardToFEN(board)}
}

// NewMoveList converts moves to coordinate text.
func NewMoveList(moves []chess.Move) *MoveList {
	list := make([]string, len(moves))
	for i, m := range moves {
		list[i] = m.String()
	}
	return &MoveList{Count: len(moves), List: list}
}

// NewPerftReport totals divide entries; keepDivide retains the per-move lines.
func NewPerftReport(depth int, entries []engine.DivideEntry, elapsed time.Duration, keepDivide bool) *PerftReport {
	r := &PerftReport{Depth: depth, ElapsedMS: elapsed.Milliseconds()}
	for _, e := range entries {
		r.Nodes += e.Nodes
		if keepDivide {
			r.Divide = append(r.Divide, DivideLine{Move: e.Move.String(), Nodes: e.Nodes})
		}
	}
	return r
}
