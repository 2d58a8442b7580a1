// chess-rules plays moves on a chess position and reports legal moves,
// game state and perft counts.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	args := os.Args[1:]
	if extra := loadArgsFromFileIfSpecified(); extra != nil {
		args = append(extra, args...)
	}
	if err := flag.CommandLine.Parse(args); err != nil {
		os.Exit(2)
	}

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-rules-go version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)
	logger := newLogger(cfg.LogFile, cfg.Verbosity)

	if err := cfg.Validate(); err != nil {
		logger.WithError(err).Error("invalid configuration")
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.WithError(err).Error("failed")
		stop()
		os.Exit(1)
	}
}

// newLogger returns a CLI logger writing to w. Verbosity 0 logs errors
// only, 1 adds the run summary and 2 adds per-move commentary.
func newLogger(w io.Writer, verbosity int) *log.Logger {
	level := log.InfoLevel
	switch {
	case verbosity <= 0:
		level = log.ErrorLevel
	case verbosity >= 2:
		level = log.DebugLevel
	}
	return &log.Logger{
		Handler: cli.New(w),
		Level:   level,
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.SetLog(file)
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.SetOutput(file)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-rules [options]\n\n")
	fmt.Fprintf(os.Stderr, "Plays moves on a chess position and reports its legal moves, state and perft counts.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  chess-rules -moves \"e2e4 e7e5 g1f3\" -l\n")
	fmt.Fprintf(os.Stderr, "  chess-rules -depth 5 -divide -workers 8 -hash\n")
	fmt.Fprintf(os.Stderr, "  chess-rules -fen \"%s\" -l -J\n", config.StartFEN)
	fmt.Fprintf(os.Stderr, "  chess-rules -fen \"8/P6k/8/8/8/8/8/K7 w - - 0 1\" -promote n -crosscheck\n")
}
