package processing

import (
	"bufio"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// commentMarker starts a comment that runs to the end of the line.
const commentMarker = "#"

// ScriptMove is one decoded move of a script with its source position.
type ScriptMove struct {
	Move chess.Move
	Text string // upper-cased move text as written
	Line int    // 1-based source line
	Ply  int    // 1-based position in the script
}

// Script is an ordered list of moves read from one source.
type Script struct {
	Name  string
	Moves []ScriptMove
}

// ParseScript reads whitespace-separated four character moves from r.
// Moves are case-insensitive. Anything after '#' on a line is ignored.
// The first malformed move aborts parsing with a *errors.MoveError.
func ParseScript(r io.Reader, name string) (*Script, error) {
	script := &Script{Name: name}
	scanner := bufio.NewScanner(r)

	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if i := strings.Index(text, commentMarker); i >= 0 {
			text = text[:i]
		}
		for _, token := range strings.Fields(text) {
			token = strings.ToUpper(token)
			ply := len(script.Moves) + 1
			m, err := chess.ParseMove(token)
			if err != nil {
				return nil, &errors.MoveError{
					Err:      err,
					Script:   name,
					Line:     line,
					PlyNum:   ply,
					MoveText: token,
				}
			}
			script.Moves = append(script.Moves, ScriptMove{Move: m, Text: token, Line: line, Ply: ply})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading %s", name)
	}
	return script, nil
}

// ParseScriptString parses a script held in memory.
func ParseScriptString(text, name string) (*Script, error) {
	return ParseScript(strings.NewReader(text), name)
}
