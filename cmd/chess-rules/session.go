// session.go - Line-by-line move loop over stdin
package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/output"
)

const promptText = "> "

// Session plays moves read from one input onto a single board.
type Session struct {
	cfg      *config.Config
	board    *engine.Board
	renderer *output.BoardRenderer
	label    string
	prompt   bool

	plies    int
	applied  int
	rejected int
}

// NewSession creates a session on the configured starting board.
// label tags the session's log lines.
func NewSession(cfg *config.Config, label string, prompt bool) (*Session, error) {
	board, err := cfg.NewBoard()
	if err != nil {
		return nil, err
	}
	return &Session{
		cfg:      cfg,
		board:    board,
		renderer: output.NewBoardRenderer(cfg.Output.Color),
		label:    label,
		prompt:   prompt,
	}, nil
}

// Board returns the session board.
func (s *Session) Board() *engine.Board {
	return s.board
}

// Run reads lines from r until EOF or a quit command. Each line holds
// moves or one command. With FailOnReject, the first rejected move
// ends the session with a *errors.MoveError.
func (s *Session) Run(r io.Reader) error {
	out := s.cfg.OutputFile
	scanner := bufio.NewScanner(r)
	line := 0

	for {
		if s.prompt {
			fmt.Fprint(out, promptText)
		}
		if !scanner.Scan() {
			break
		}
		line++

		text := scanner.Text()
		if i := strings.Index(text, "#"); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}

		if isCommand(fields[0]) {
			done, err := s.command(fields)
			if err != nil {
				return err
			}
			if done {
				break
			}
			continue
		}

		for _, token := range fields {
			if err := s.play(strings.ToUpper(token), line); err != nil {
				s.logSummary()
				return err
			}
		}
		if s.cfg.Output.ShowBoard {
			if err := s.renderer.Render(out, s.board); err != nil {
				return err
			}
		}
	}
	s.logSummary()
	return errors.Wrap(scanner.Err(), "reading moves")
}

var commands = map[string]bool{
	"board":   true,
	"fen":     true,
	"targets": true,
	"quit":    true,
	"exit":    true,
}

func isCommand(word string) bool {
	return commands[strings.ToLower(word)]
}

// command runs a session command. done reports that the session should end.
func (s *Session) command(fields []string) (done bool, err error) {
	out := s.cfg.OutputFile
	switch strings.ToLower(fields[0]) {
	case "quit", "exit":
		return true, nil
	case "board":
		return false, s.renderer.Render(out, s.board)
	case "fen":
		fmt.Fprintln(out, s.board.FEN())
	case "targets":
		if len(fields) != 2 {
			fmt.Fprintln(out, "usage: targets <square>")
			return false, nil
		}
		targets, err := s.board.LegalTargets(strings.ToUpper(fields[1]))
		if err != nil {
			fmt.Fprintf(out, "%s: %v\n", fields[1], err)
			return false, nil
		}
		fmt.Fprintf(out, "%s: %s\n", strings.ToUpper(fields[1]), strings.Join(targets, " "))
	}
	return false, nil
}

// play applies one move and reports the outcome. Malformed moves are
// reported and skipped; they end the session only with FailOnReject.
func (s *Session) play(move string, line int) error {
	out := s.cfg.OutputFile
	s.plies++

	outcome, err := s.board.Play(move)
	if err != nil {
		fmt.Fprintf(out, "%s: %v\n", move, err)
		s.rejected++
		if s.cfg.FailOnReject {
			return s.moveError(err, move, line)
		}
		return nil
	}

	fmt.Fprintf(out, "%s: %s\n", move, outcome)
	s.cfg.Logf(config.Commentary, "[%s] ply %d %s %s\n", s.label, s.plies, move, outcome)
	if outcome == engine.Moved {
		s.applied++
		return nil
	}
	s.rejected++
	if s.cfg.FailOnReject {
		return s.moveError(outcome.Err(), move, line)
	}
	return nil
}

func (s *Session) moveError(err error, move string, line int) error {
	return &errors.MoveError{
		Err:      err,
		Script:   s.label,
		Line:     line,
		PlyNum:   s.plies,
		MoveText: move,
	}
}

func (s *Session) logSummary() {
	s.cfg.Logf(config.Summary, "[%s] %d move(s), %d applied, %d rejected.\n",
		s.label, s.plies, s.applied, s.rejected)
}
