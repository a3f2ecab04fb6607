// batch.go - Script file loading and parallel replay
package main

import (
	"fmt"
	"os"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/processing"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// loadScripts parses every named file. Files that cannot be opened or
// parsed are reported on the log and counted in failed.
func loadScripts(paths []string, cfg *config.Config) (scripts []*processing.Script, failed int) {
	for _, path := range paths {
		script, err := loadScript(path)
		if err != nil {
			fmt.Fprintf(cfg.LogFile, "Error: %v\n", err)
			failed++
			continue
		}
		scripts = append(scripts, script)
	}
	return scripts, failed
}

func loadScript(path string) (*processing.Script, error) {
	file, err := os.Open(path) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	defer file.Close() //nolint:errcheck // read-only file

	return processing.ParseScript(file, path)
}

// setupDuplicateDetector creates the detector when duplicate detection is on.
func setupDuplicateDetector(cfg *config.Config) *hashing.DuplicateDetector {
	if !cfg.Duplicate.Detect {
		return nil
	}
	return hashing.NewDuplicateDetector(cfg.Duplicate.ExactMatch, cfg.Duplicate.MaxCapacity)
}

// replayScripts replays scripts across cfg.Workers workers, writes one
// result per script, and returns the number of failed scripts.
func replayScripts(scripts []*processing.Script, cfg *config.Config) int {
	opts := processing.Options{FailOnReject: cfg.FailOnReject}
	results := worker.ReplayAll(scripts, cfg.Workers, cfg.NewBoard, opts, cfg.FailOnReject)

	writer := output.NewWriter(cfg.OutputFile, cfg)
	detector := setupDuplicateDetector(cfg)
	failed := 0
	for _, result := range results {
		if result.Error != nil {
			fmt.Fprintf(cfg.LogFile, "Error: %v\n", result.Error)
			failed++
		}
		if result.Report == nil {
			continue
		}
		logReport(result.Report, cfg)

		out := output.Result{Report: result.Report}
		if detector != nil {
			out.DuplicateOf, _ = detector.CheckAndAdd(result.Report.Script, result.Report.Board.Grid(), len(result.Report.Steps))
		}
		if err := writer.WriteResult(out); err != nil {
			fmt.Fprintf(cfg.LogFile, "Error writing output: %v\n", err)
			failed++
		}
	}
	if err := writer.Close(); err != nil {
		fmt.Fprintf(cfg.LogFile, "Error writing output: %v\n", err)
		failed++
	}

	if detector != nil {
		cfg.Logf(config.Summary, "%d script(s), %d duplicate final position(s).\n",
			len(results), detector.DuplicateCount())
	}

	// Scripts skipped after an early stop never produced a result.
	failed += len(scripts) - len(results)
	return failed
}

// logReport logs the summary and commentary of one replay.
func logReport(report *processing.Report, cfg *config.Config) {
	for _, step := range report.Steps {
		cfg.Logf(config.Commentary, "[%s] ply %d %s %s\n", report.Script, step.Ply, step.Text, step.Outcome)
	}
	cfg.Logf(config.Summary, "[%s] %d move(s), %d applied, %d rejected.\n",
		report.Script, len(report.Steps), report.Applied(), len(report.Rejected()))
}
