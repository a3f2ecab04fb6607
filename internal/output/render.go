package output

import (
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// BoardRenderer draws boards, optionally with ANSI colours.
type BoardRenderer struct {
	useColor bool
	label    *color.Color
}

// NewBoardRenderer creates a renderer. useColor overrides color.NoColor.
func NewBoardRenderer(useColor bool) *BoardRenderer {
	r := &BoardRenderer{
		useColor: useColor,
		label:    color.New(color.Faint),
	}
	r.setMode(r.label)
	return r
}

// setMode forces c on or off regardless of color.NoColor.
func (r *BoardRenderer) setMode(c *color.Color) *color.Color {
	if r.useColor {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

// squareColor picks the colours of one square: light or dark background,
// white or black piece letter.
func (r *BoardRenderer) squareColor(file, rank int, sq chess.Square) *color.Color {
	bg := color.BgGreen
	if (file+rank)%2 == 1 {
		bg = color.BgHiBlack
	}
	c := color.New(bg)
	switch sq.Color {
	case chess.White:
		c.Add(color.FgHiWhite, color.Bold)
	case chess.Black:
		c.Add(color.FgBlack, color.Bold)
	}
	return r.setMode(c)
}

// Render writes board to w. Without colours the plain diagram is written.
func (r *BoardRenderer) Render(w io.Writer, board *engine.Board) error {
	if !r.useColor {
		_, err := io.WriteString(w, board.String())
		return err
	}

	grid := board.Grid()
	var sb strings.Builder
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		sb.WriteString(r.label.Sprint(string(rune(chess.RankBase + rank))))
		sb.WriteByte(' ')
		for file := 0; file < chess.BoardSize; file++ {
			sq := grid[file][rank]
			letter := " "
			if !sq.IsEmpty() {
				letter = string(sq.Piece.Letter())
			}
			sb.WriteString(r.squareColor(file, rank, sq).Sprint(" " + letter + " "))
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  ")
	for file := 0; file < chess.BoardSize; file++ {
		sb.WriteString(r.label.Sprint(" " + string(rune(chess.FileBase+file)) + " "))
	}
	sb.WriteByte('\n')

	_, err := io.WriteString(w, sb.String())
	return err
}
