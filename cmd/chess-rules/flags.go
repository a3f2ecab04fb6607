// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

var (
	// Rules
	rulesMode = flag.String("rules", "permissive", "Rule strictness: permissive or strict")
	startFEN  = flag.String("fen", "", "Start from this FEN piece placement instead of the pawn setup")

	// Replay control
	failOnReject = flag.Bool("fail", false, "Stop and exit 1 at the first rejected move")
	numWorkers   = flag.Int("j", 1, "Number of scripts replayed in parallel")

	// Output options
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	showBoard  = flag.Bool("board", false, "Draw the board after each move (stdin) or script (files)")
	showFEN    = flag.Bool("showfen", false, "Print the FEN placement after each script")
	noColor    = flag.Bool("nocolor", false, "Draw the board without colours")
	jsonOutput = flag.Bool("J", false, "Write script reports in JSON format")

	// Duplicate detection
	detectDuplicates  = flag.Bool("D", false, "Report scripts ending on an already seen position")
	exactDuplicates   = flag.Bool("Dmoves", false, "Duplicates must also have the same number of moves")
	duplicateCapacity = flag.Int("duplicate-capacity", 0, "Maximum stored positions for -D (0 = unlimited)")

	// Logging
	verbosity = flag.Int("v", config.Summary, "Verbosity: 0 silent, 1 summary, 2 per-move commentary")
	logFile   = flag.String("l", "", "Write log to this file (default: stderr)")

	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies all command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	if err := applyRuleFlags(cfg); err != nil {
		return err
	}
	applyReplayFlags(cfg)
	applyOutputFlags(cfg)
	applyDuplicateFlags(cfg)
	cfg.Verbosity = *verbosity
	return cfg.Validate()
}

// applyRuleFlags configures strictness and the starting position.
func applyRuleFlags(cfg *config.Config) error {
	strictness, err := engine.ParseStrictness(*rulesMode)
	if err != nil {
		return err
	}
	cfg.Strictness = strictness
	cfg.StartFEN = *startFEN
	return nil
}

// applyReplayFlags configures how scripts are replayed.
func applyReplayFlags(cfg *config.Config) {
	cfg.FailOnReject = *failOnReject
	cfg.Workers = *numWorkers
}

// applyOutputFlags configures board output settings.
func applyOutputFlags(cfg *config.Config) {
	cfg.Output.ShowBoard = *showBoard
	cfg.Output.ShowFEN = *showFEN
	cfg.Output.Color = !*noColor
	cfg.Output.JSONFormat = *jsonOutput
}

// applyDuplicateFlags configures duplicate detection settings.
func applyDuplicateFlags(cfg *config.Config) {
	cfg.Duplicate.Detect = *detectDuplicates || *exactDuplicates
	cfg.Duplicate.ExactMatch = *exactDuplicates
	cfg.Duplicate.MaxCapacity = *duplicateCapacity
}
