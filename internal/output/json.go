package output

import (
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// JSONReport represents one replayed script in JSON format.
type JSONReport struct {
	Script      string     `json:"script"`
	Moves       []JSONMove `json:"moves,omitempty"`
	Applied     int        `json:"applied"`
	Rejected    int        `json:"rejected"`
	FinalFEN    string     `json:"finalFEN"`
	DuplicateOf string     `json:"duplicateOf,omitempty"`
	Error       string     `json:"error,omitempty"`
}

// JSONMove represents a played move in JSON format.
type JSONMove struct {
	Ply     int    `json:"ply"`
	Line    int    `json:"line"`
	Move    string `json:"move"`
	From    string `json:"from"`
	To      string `json:"to"`
	Outcome string `json:"outcome"`
	Legal   bool   `json:"legal"`
}

// JSONOutput holds multiple reports for array output.
type JSONOutput struct {
	Scripts []*JSONReport `json:"scripts"`
}

// ReportToJSON converts a replay result to JSON format.
func ReportToJSON(result Result) *JSONReport {
	report := result.Report
	jr := &JSONReport{
		Script:      report.Script,
		Applied:     report.Applied(),
		Rejected:    len(report.Rejected()),
		FinalFEN:    report.Board.FEN(),
		DuplicateOf: result.DuplicateOf,
	}
	if report.Err != nil {
		jr.Error = report.Err.Error()
	}

	for _, step := range report.Steps {
		jr.Moves = append(jr.Moves, JSONMove{
			Ply:     step.Ply,
			Line:    step.Line,
			Move:    step.Text,
			From:    step.Move.Origin.String(),
			To:      step.Move.Target.String(),
			Outcome: step.Outcome.String(),
			Legal:   step.Outcome == engine.Moved,
		})
	}
	return jr
}
