// Package engine provides chess move validation and board manipulation.
package engine

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// RuleManager decides legality for one piece kind and executes legal moves.
// Implementations hold a non-owning reference to the grid of the Board
// that built them and must not be used with any other board.
type RuleManager interface {
	// IsLegalMove reports whether the occupant of the origin may move to
	// the target. It never mutates the grid.
	IsLegalMove(originFile, originRank, targetFile, targetRank int) bool

	// ApplyMove moves the occupant of the origin onto the target if the
	// move is legal and reports whether it did. An illegal move leaves
	// the grid untouched.
	ApplyMove(originFile, originRank, targetFile, targetRank int) bool
}

// Strictness selects how closely the rule managers follow real chess.
type Strictness int

const (
	// Permissive accepts every move the movement geometry allows: captures
	// of own pieces, diagonal pawn steps onto empty squares, and double
	// steps from either home rank regardless of colour or blockers.
	Permissive Strictness = iota

	// Strict additionally checks occupancy: no landing on own pieces,
	// pawn pushes need empty squares, pawn diagonals need an opposing
	// piece, and the double step starts from the colour's own home rank.
	Strict
)

// String returns the flag spelling of the strictness.
func (s Strictness) String() string {
	switch s {
	case Permissive:
		return "permissive"
	case Strict:
		return "strict"
	}
	return fmt.Sprintf("Strictness(%d)", int(s))
}

// ParseStrictness converts a flag value into a Strictness.
func ParseStrictness(s string) (Strictness, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "permissive":
		return Permissive, nil
	case "strict":
		return Strict, nil
	}
	return Permissive, fmt.Errorf("unknown rule strictness %q: %w", s, errors.ErrInvalidConfig)
}

// ruleBase carries the state shared by every rule manager.
type ruleBase struct {
	grid       *chess.Grid
	strictness Strictness
}

// inBounds reports whether both squares of a move lie on the board.
func inBounds(originFile, originRank, targetFile, targetRank int) bool {
	return chess.InBounds(originFile, originRank) && chess.InBounds(targetFile, targetRank)
}

// capturesOwnPiece reports whether the target holds a piece of the
// origin's colour.
func (r ruleBase) capturesOwnPiece(originFile, originRank, targetFile, targetRank int) bool {
	origin := r.grid.At(originFile, originRank)
	target := r.grid.At(targetFile, targetRank)
	return !target.IsEmpty() && target.Color == origin.Color
}

// applyIfLegal executes the move on grid when rm accepts it.
func applyIfLegal(rm RuleManager, grid *chess.Grid, originFile, originRank, targetFile, targetRank int) bool {
	if !rm.IsLegalMove(originFile, originRank, targetFile, targetRank) {
		return false
	}
	grid.Move(originFile, originRank, targetFile, targetRank)
	return true
}

// newRuleManagers builds the piece-keyed rule table for one grid.
func newRuleManagers(grid *chess.Grid, strictness Strictness) map[chess.PieceKind]RuleManager {
	return map[chess.PieceKind]RuleManager{
		chess.Pawn:   NewPawnRuleManager(grid, strictness),
		chess.Knight: NewKnightRuleManager(grid, strictness),
	}
}
