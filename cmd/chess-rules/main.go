// chess-rules checks and applies pawn and knight moves on an 8x8 board.
// Moves are read line by line from stdin, or replayed from script files.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	petname "github.com/dustinkirkland/golang-petname"
	"golang.org/x/term"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-rules version %s\n", programVersion)
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

	if !writerIsTerminal(cfg.OutputFile) {
		cfg.Output.Color = false
	}

	os.Exit(run(cfg, flag.Args(), os.Stdin))
}

// run dispatches to batch replay when script files are given and to a
// stdin session otherwise. It returns the process exit code.
func run(cfg *config.Config, args []string, stdin *os.File) int {
	if len(args) > 0 {
		scripts, failed := loadScripts(args, cfg)
		failed += replayScripts(scripts, cfg)
		if failed > 0 {
			return 1
		}
		return 0
	}

	label := petname.Generate(2, "-")
	session, err := NewSession(cfg, label, isTerminal(stdin))
	if err != nil {
		fmt.Fprintf(cfg.LogFile, "Error: %v\n", err)
		return 1
	}
	cfg.Logf(config.Summary, "[%s] %s rules, session started\n", label, cfg.Strictness)
	if err := session.Run(stdin); err != nil {
		fmt.Fprintf(cfg.LogFile, "Error: %v\n", err)
		return 1
	}
	return 0
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// writerIsTerminal reports whether w is a file attached to a terminal.
func writerIsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isTerminal(f)
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.OpenFile(*logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
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
	cfg.OutputFile = file
}

func usage() {
	out := flag.CommandLine.Output()
	printUsage(out)
	flag.PrintDefaults()
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, "Usage: chess-rules [options] [script-files...]\n\n")
	fmt.Fprintf(w, "Checks and applies pawn and knight moves. Moves are four characters,\n")
	fmt.Fprintf(w, "origin then target (e2e4). Without files, moves are read from stdin.\n\n")
	fmt.Fprintf(w, "Commands on stdin:\n")
	fmt.Fprintf(w, "  board          draw the board\n")
	fmt.Fprintf(w, "  fen            print the FEN placement\n")
	fmt.Fprintf(w, "  targets <sq>   list the legal targets of the piece on <sq>\n")
	fmt.Fprintf(w, "  quit           end the session\n\n")
	fmt.Fprintf(w, "Options:\n")
}
