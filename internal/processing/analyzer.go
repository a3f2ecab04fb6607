// Package processing provides move script parsing and replay onto a board.
package processing

import (
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Step records what happened to one script move.
type Step struct {
	ScriptMove
	Outcome engine.MoveOutcome
}

// Report holds the results of replaying a script.
type Report struct {
	Script string
	Steps  []Step
	Board  *engine.Board // final position
	Err    error         // first failure, nil if the script ran to the end
}

// Applied returns the number of moves that changed the board.
func (r *Report) Applied() int {
	n := 0
	for _, s := range r.Steps {
		if s.Outcome == engine.Moved {
			n++
		}
	}
	return n
}

// Rejected returns the steps that left the board unchanged.
func (r *Report) Rejected() []Step {
	var rejected []Step
	for _, s := range r.Steps {
		if s.Outcome != engine.Moved {
			rejected = append(rejected, s)
		}
	}
	return rejected
}

// Options controls a replay.
type Options struct {
	// FailOnReject stops at the first rejected move and records it as Err.
	FailOnReject bool

	// OnStep, when set, is called after every move is played.
	OnStep func(board *engine.Board, step Step)
}

// Run plays every move of script on board and returns the report.
// The board is mutated in place and becomes Report.Board.
func Run(board *engine.Board, script *Script, opts Options) *Report {
	report := &Report{Script: script.Name, Board: board}

	for _, sm := range script.Moves {
		outcome, err := board.PlayMove(sm.Move)
		if err != nil {
			report.Err = moveError(script, sm, err)
			return report
		}

		step := Step{ScriptMove: sm, Outcome: outcome}
		report.Steps = append(report.Steps, step)
		if opts.OnStep != nil {
			opts.OnStep(board, step)
		}

		if opts.FailOnReject && outcome != engine.Moved {
			report.Err = moveError(script, sm, outcome.Err())
			return report
		}
	}
	return report
}

func moveError(script *Script, sm ScriptMove, err error) error {
	return &errors.MoveError{
		Err:      err,
		Script:   script.Name,
		Line:     sm.Line,
		PlyNum:   sm.Ply,
		MoveText: sm.Text,
	}
}
