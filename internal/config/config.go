// Package config provides configuration for the chess-rules command.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Verbosity levels written to LogFile.
const (
	Silent     = 0 // nothing
	Summary    = 1 // one line per script or session
	Commentary = 2 // one line per move
)

// OutputConfig holds settings related to board output.
type OutputConfig struct {
	// ShowBoard draws the board after every move in interactive mode
	// and after every script in batch mode.
	ShowBoard bool

	// Color enables ANSI colours when drawing the board.
	Color bool

	// ShowFEN prints the piece placement after every script.
	ShowFEN bool

	// JSONFormat writes batch reports as one JSON document.
	JSONFormat bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Color: true,
	}
}

// Config holds all program configuration.
type Config struct {
	// Rule strictness applied to every board.
	Strictness engine.Strictness

	// StartFEN, when set, replaces the standard pawn setup.
	StartFEN string

	// FailOnReject stops at the first illegal or empty-origin move.
	FailOnReject bool

	// Workers is the number of scripts replayed concurrently.
	Workers int

	// Verbosity: 0=nothing, 1=summary, 2=per-move commentary.
	Verbosity int

	Output    *OutputConfig
	Duplicate *DuplicateConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Strictness: engine.Permissive,
		Workers:    1,
		Verbosity:  Summary,
		Output:     NewOutputConfig(),
		Duplicate:  NewDuplicateConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Validate checks option ranges.
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d: %w", c.Workers, errors.ErrInvalidConfig)
	}
	if c.Verbosity < Silent || c.Verbosity > Commentary {
		return fmt.Errorf("verbosity must be 0-2, got %d: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if c.Strictness != engine.Permissive && c.Strictness != engine.Strict {
		return fmt.Errorf("unknown strictness %v: %w", c.Strictness, errors.ErrInvalidConfig)
	}
	if c.Duplicate.MaxCapacity < 0 {
		return fmt.Errorf("duplicate capacity must not be negative, got %d: %w", c.Duplicate.MaxCapacity, errors.ErrInvalidConfig)
	}
	if c.StartFEN != "" {
		if _, err := engine.LoadFEN(c.StartFEN); err != nil {
			return errors.Wrap(err, "start position")
		}
	}
	return nil
}

// BoardOptions returns the engine options implied by the configuration.
func (c *Config) BoardOptions() []engine.Option {
	return []engine.Option{engine.WithStrictness(c.Strictness)}
}

// NewBoard creates the starting board: StartFEN when set, otherwise the
// standard pawn setup.
func (c *Config) NewBoard() (*engine.Board, error) {
	if c.StartFEN != "" {
		return engine.LoadFEN(c.StartFEN, c.BoardOptions()...)
	}
	return engine.CreateBoard(c.BoardOptions()...), nil
}

// Logf writes to LogFile when the verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format, args...)
}
