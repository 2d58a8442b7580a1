package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithFEN sets the starting position.
func (b *ConfigBuilder) WithFEN(fen string) *ConfigBuilder {
	b.cfg.Position.FEN = fen
	return b
}

// WithMoves sets the moves played before reporting.
func (b *ConfigBuilder) WithMoves(moves ...string) *ConfigBuilder {
	b.cfg.Position.Play = moves
	return b
}

// WithJSON selects JSON reports.
func (b *ConfigBuilder) WithJSON(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSON = enabled
	return b
}

// WithPerft sets the perft depth and whether to divide by root move.
func (b *ConfigBuilder) WithPerft(depth int, divide bool) *ConfigBuilder {
	b.cfg.Perft.Depth = depth
	b.cfg.Perft.Divide = divide
	return b
}

// WithWorkers sets the number of perft workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Perft.Workers = n
	return b
}

// WithCache enables the perft cache with the given capacity.
func (b *ConfigBuilder) WithCache(size int) *ConfigBuilder {
	b.cfg.Perft.UseCache = true
	b.cfg.Perft.CacheSize = size
	return b
}

// WithCrossCheck enables comparison against the reference generator.
func (b *ConfigBuilder) WithCrossCheck(enabled bool, depth int) *ConfigBuilder {
	b.cfg.Output.CrossCheck = enabled
	b.cfg.Output.CrossCheckDepth = depth
	return b
}

// WithListMoves controls whether legal moves are listed.
func (b *ConfigBuilder) WithListMoves(enabled bool) *ConfigBuilder {
	b.cfg.Output.ListMoves = enabled
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
