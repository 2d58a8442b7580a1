package config

import (
	"bytes"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

// TestPositionConfig_Defaults verifies PositionConfig starts from the initial position
func TestPositionConfig_Defaults(t *testing.T) {
	cfg := NewPositionConfig()

	if cfg.FEN != StartFEN {
		t.Errorf("FEN = %q, want %q", cfg.FEN, StartFEN)
	}
	if cfg.PromoteTo != chess.Queen {
		t.Errorf("PromoteTo = %v, want Queen", cfg.PromoteTo)
	}
	if len(cfg.Play) != 0 {
		t.Errorf("Play = %v, want none", cfg.Play)
	}
}

// TestPerftConfig_Defaults verifies perft is disabled by default
func TestPerftConfig_Defaults(t *testing.T) {
	cfg := NewPerftConfig()

	if cfg.Enabled() {
		t.Error("perft should be disabled by default")
	}
	if cfg.Workers != 1 {
		t.Errorf("Workers = %d, want 1", cfg.Workers)
	}
	if cfg.UseCache {
		t.Error("UseCache should be false by default")
	}
}

// TestOutputConfig_Defaults verifies OutputConfig has sensible defaults
func TestOutputConfig_Defaults(t *testing.T) {
	cfg := NewOutputConfig()

	if !cfg.ShowStatus {
		t.Error("ShowStatus should be true by default")
	}
	if cfg.ListMoves || cfg.ShowBoard || cfg.CrossCheck {
		t.Error("optional reports should be off by default")
	}
}

func TestPositionConfig_SetPromotion(t *testing.T) {
	tests := []struct {
		letter  string
		want    chess.PieceKind
		wantErr bool
	}{
		{"q", chess.Queen, false},
		{"R", chess.Rook, false},
		{"b", chess.Bishop, false},
		{"n", chess.Knight, false},
		{"k", chess.Queen, true},
		{"p", chess.Queen, true},
		{"", chess.Queen, true},
		{"qq", chess.Queen, true},
	}

	for _, tt := range tests {
		t.Run(tt.letter, func(t *testing.T) {
			cfg := NewPositionConfig()
			err := cfg.SetPromotion(tt.letter)
			if tt.wantErr {
				testutil.AssertErrorIs(t, err, errors.ErrInvalidConfig)
			} else {
				testutil.AssertNoError(t, err)
			}
			if cfg.PromoteTo != tt.want {
				t.Errorf("PromoteTo = %v, want %v", cfg.PromoteTo, tt.want)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(*Config) {}, false},
		{"perft with workers", func(c *Config) { c.Perft.Depth = 4; c.Perft.Workers = 8 }, false},
		{"negative verbosity", func(c *Config) { c.Verbosity = -1 }, true},
		{"empty FEN", func(c *Config) { c.Position.FEN = "  " }, true},
		{"king promotion", func(c *Config) { c.Position.PromoteTo = chess.King }, true},
		{"negative depth", func(c *Config) { c.Perft.Depth = -1 }, true},
		{"zero workers", func(c *Config) { c.Perft.Workers = 0 }, true},
		{"negative cache size", func(c *Config) { c.Perft.CacheSize = -1 }, true},
		{"negative cross-check depth", func(c *Config) { c.Output.CrossCheckDepth = -2 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				testutil.AssertErrorIs(t, err, errors.ErrInvalidConfig)
			}
		})
	}
}

// TestConfig_SetOutput verifies output stream setting
func TestConfig_SetOutput(t *testing.T) {
	cfg := NewConfig()
	out := &bytes.Buffer{}
	logs := &bytes.Buffer{}

	cfg.SetOutput(out)
	cfg.SetLog(logs)

	if cfg.OutputFile != out {
		t.Error("SetOutput did not set OutputFile")
	}
	if cfg.LogFile != logs {
		t.Error("SetLog did not set LogFile")
	}
}

// TestConfigBuilder verifies the builder pattern works correctly
func TestConfigBuilder(t *testing.T) {
	out := &bytes.Buffer{}
	cfg := NewConfigBuilder().
		WithFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1").
		WithMoves("e1e2", "e8e7").
		WithPerft(3, true).
		WithWorkers(4).
		WithCache(1024).
		WithCrossCheck(true, 2).
		WithListMoves(true).
		WithJSON(true).
		WithOutput(out).
		WithLog(out).
		WithVerbosity(2).
		Build()

	testutil.AssertEqual(t, cfg.Position.FEN, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	testutil.AssertEqual(t, cfg.Position.Play, []string{"e1e2", "e8e7"})
	testutil.AssertEqual(t, *cfg.Perft, PerftConfig{Depth: 3, Divide: true, Workers: 4, CacheSize: 1024, UseCache: true})
	testutil.AssertEqual(t, *cfg.Output, OutputConfig{ListMoves: true, ShowStatus: true, CrossCheck: true, CrossCheckDepth: 2, JSON: true})
	if cfg.OutputFile != out || cfg.LogFile != out {
		t.Error("writers not set")
	}
	if cfg.Verbosity != 2 {
		t.Errorf("Verbosity = %d, want 2", cfg.Verbosity)
	}
	testutil.AssertNoError(t, cfg.Validate())
}
