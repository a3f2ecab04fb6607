// Package output provides report and board output for replayed scripts.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/processing"
)

// Result is one replayed script as seen by a writer.
type Result struct {
	Report      *processing.Report
	DuplicateOf string // earlier script with the same final position
}

// ReportWriter is the interface for writing replay results.
// Different implementations handle different output formats (text, JSON).
type ReportWriter interface {
	// WriteResult writes a single result to the output.
	WriteResult(result Result) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewWriter returns the writer selected by cfg.
func NewWriter(w io.Writer, cfg *config.Config) ReportWriter {
	if cfg.Output.JSONFormat {
		return NewJSONWriter(w)
	}
	return NewTextWriter(w, cfg)
}

// TextWriter writes one line per rejected move, followed by the optional
// duplicate note, FEN and board of each result.
type TextWriter struct {
	w        io.Writer
	cfg      *config.Config
	renderer *BoardRenderer
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.Config) *TextWriter {
	return &TextWriter{
		w:        w,
		cfg:      cfg,
		renderer: NewBoardRenderer(cfg.Output.Color),
	}
}

// WriteResult writes a result as text.
func (tw *TextWriter) WriteResult(result Result) error {
	report := result.Report
	for _, step := range report.Rejected() {
		if _, err := fmt.Fprintf(tw.w, "%s:%d: %s %s\n", report.Script, step.Line, step.Text, step.Outcome); err != nil {
			return err
		}
	}
	if result.DuplicateOf != "" {
		if _, err := fmt.Fprintf(tw.w, "%s: same final position as %s\n", report.Script, result.DuplicateOf); err != nil {
			return err
		}
	}
	if tw.cfg.Output.ShowFEN {
		if _, err := fmt.Fprintf(tw.w, "%s: %s\n", report.Script, report.Board.FEN()); err != nil {
			return err
		}
	}
	if tw.cfg.Output.ShowBoard {
		return tw.renderer.Render(tw.w, report.Board)
	}
	return nil
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter writes results in JSON format.
// It buffers results and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w       io.Writer
	reports []*JSONReport
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// WriteResult buffers a result for JSON output.
func (jw *JSONWriter) WriteResult(result Result) error {
	jw.reports = append(jw.reports, ReportToJSON(result))
	return nil
}

// Flush writes all buffered results as a JSON array.
func (jw *JSONWriter) Flush() error {
	if len(jw.reports) == 0 {
		return nil
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(&JSONOutput{Scripts: jw.reports})

	// Clear buffer after writing
	jw.reports = jw.reports[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
