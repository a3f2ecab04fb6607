package config

import (
	"io"

	"github.com/lgbarn/chess-rules-go/internal/engine"
)

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

// WithStrictness sets the rule strictness.
func (b *ConfigBuilder) WithStrictness(s engine.Strictness) *ConfigBuilder {
	b.cfg.Strictness = s
	return b
}

// WithStartFEN starts every board from the given placement.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.StartFEN = fen
	return b
}

// WithFailOnReject stops processing at the first rejected move.
func (b *ConfigBuilder) WithFailOnReject(enabled bool) *ConfigBuilder {
	b.cfg.FailOnReject = enabled
	return b
}

// WithWorkers sets the number of concurrent script replays.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Workers = n
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
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

// ShowBoard enables board drawing.
func (b *ConfigBuilder) ShowBoard(show bool) *ConfigBuilder {
	b.cfg.Output.ShowBoard = show
	return b
}

// ShowFEN enables FEN output after each script.
func (b *ConfigBuilder) ShowFEN(show bool) *ConfigBuilder {
	b.cfg.Output.ShowFEN = show
	return b
}

// WithColor enables or disables ANSI colours.
func (b *ConfigBuilder) WithColor(enabled bool) *ConfigBuilder {
	b.cfg.Output.Color = enabled
	return b
}

// WithJSON enables JSON batch reports.
func (b *ConfigBuilder) WithJSON(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONFormat = enabled
	return b
}

// WithDuplicateDetection reports scripts ending on an already seen position.
func (b *ConfigBuilder) WithDuplicateDetection(enabled bool, maxCapacity int) *ConfigBuilder {
	b.cfg.Duplicate.Detect = enabled
	b.cfg.Duplicate.MaxCapacity = maxCapacity
	return b
}
