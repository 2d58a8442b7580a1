// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

var (
	// Position options
	fenString = flag.String("fen", config.StartFEN, "Starting position in FEN")
	moveList  = flag.String("moves", "", "Coordinate moves to play first, separated by spaces or commas (e.g. \"e2e4 e7e5\")")
	promoteTo = flag.String("promote", "q", "Piece pawns promote to: q, r, b or n")

	// Report options
	listMoves = flag.Bool("l", false, "List the legal moves of the side to move")
	showBoard = flag.Bool("board", false, "Print the board")
	noStatus  = flag.Bool("nostatus", false, "Don't print check, checkmate or stalemate")

	// Perft options
	perftDepth    = flag.Int("depth", 0, "Count the move tree to this depth (0 = no perft)")
	divide        = flag.Bool("divide", false, "Report the perft count below each root move")
	workers       = flag.Int("workers", 1, "Goroutines expanding perft root moves")
	useCache      = flag.Bool("hash", false, "Use a transposition cache for perft")
	cacheCapacity = flag.Int("hash-capacity", 0, "Maximum perft cache entries (0 = unlimited)")

	// Cross-check options
	crossCheck = flag.Bool("crosscheck", false, "Compare legal moves with the reference generator")
	crossDepth = flag.Int("crossdepth", 0, "Also cross-check every position this many plies below")

	// Output and logging
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	jsonOutput = flag.Bool("J", false, "Write the report as JSON")
	logFile    = flag.String("L", "", "Write diagnostics to this file (default: stderr)")
	verbose    = flag.Bool("v", false, "Verbose diagnostics")
	quiet      = flag.Bool("s", false, "Silent mode: log errors only")
	argsFile   = flag.String("A", "", "Read additional arguments from file")

	// Help and version
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags copies the parsed flag values into cfg.
func applyFlags(cfg *config.Config) error {
	applyPositionFlags(cfg)
	if err := cfg.Position.SetPromotion(*promoteTo); err != nil {
		return err
	}
	applyReportFlags(cfg)
	applyPerftFlags(cfg)

	switch {
	case *quiet:
		cfg.Verbosity = 0
	case *verbose:
		cfg.Verbosity = 2
	}
	return nil
}

func applyPositionFlags(cfg *config.Config) {
	cfg.Position.FEN = *fenString
	cfg.Position.Play = splitMoveList(*moveList)
}

func applyReportFlags(cfg *config.Config) {
	cfg.Output.ListMoves = *listMoves
	cfg.Output.ShowBoard = *showBoard
	cfg.Output.ShowStatus = !*noStatus
	cfg.Output.CrossCheck = *crossCheck || *crossDepth > 0
	cfg.Output.CrossCheckDepth = *crossDepth
	cfg.Output.JSON = *jsonOutput
}

func applyPerftFlags(cfg *config.Config) {
	cfg.Perft.Depth = *perftDepth
	cfg.Perft.Divide = *divide
	cfg.Perft.Workers = *workers
	cfg.Perft.UseCache = *useCache || *cacheCapacity > 0
	cfg.Perft.CacheSize = *cacheCapacity
}

// splitMoveList splits a move list on spaces and commas.
func splitMoveList(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
}
