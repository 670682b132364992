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

// WithCrazyhouse enables or disables crazyhouse rules.
func (b *ConfigBuilder) WithCrazyhouse(enabled bool) *ConfigBuilder {
	b.cfg.Game.Crazyhouse = enabled
	return b
}

// WithSeed sets the setup seed.
func (b *ConfigBuilder) WithSeed(seed int64) *ConfigBuilder {
	b.cfg.Game.Seed = seed
	return b
}

// WithFEN sets an explicit starting position.
func (b *ConfigBuilder) WithFEN(fen string) *ConfigBuilder {
	b.cfg.Game.FEN = fen
	return b
}

// WithMaxMoves sets the forced-draw move cap.
func (b *ConfigBuilder) WithMaxMoves(n int) *ConfigBuilder {
	b.cfg.Game.MaxMoves = n
	return b
}

// WithRandomSeed seeds random move selection.
func (b *ConfigBuilder) WithRandomSeed(seed int64) *ConfigBuilder {
	b.cfg.Game.RandomSeed = seed
	return b
}

// WithOutputFormat sets the output format.
func (b *ConfigBuilder) WithOutputFormat(format OutputFormat) *ConfigBuilder {
	b.cfg.Output.Format = format
	return b
}

// WithColour enables coloured board rendering.
func (b *ConfigBuilder) WithColour(enabled bool) *ConfigBuilder {
	b.cfg.Output.UseColour = enabled
	return b
}

// WithPerft sets the perft depth and divide mode.
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

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the diagnostics writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
