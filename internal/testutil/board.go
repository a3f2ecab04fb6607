// Package testutil provides shared test utilities for the chess-rules-go project.
// These utilities reduce code duplication across test files and provide
// consistent board staging helpers.
package testutil

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// Placement maps square names such as "B3" to occupants.
type Placement map[string]chess.Square

// MustPlace places every occupant of p on board in square-name order.
// It calls t.Fatal if any placement is rejected.
func MustPlace(t testing.TB, board *engine.Board, p Placement) {
	t.Helper()
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		sq := p[name]
		if err := board.PlacePiece(sq.Piece, sq.Color, name); err != nil {
			t.Fatalf("PlacePiece(%v, %q) error: %v", sq, name, err)
		}
	}
}

// StageBoard returns an empty board holding only the placements in p.
func StageBoard(t testing.TB, p Placement, opts ...engine.Option) *engine.Board {
	t.Helper()
	board := engine.NewEmptyBoard(opts...)
	MustPlace(t, board, p)
	return board
}

// MustPlay plays move and returns the outcome. Decoding errors abort the test.
func MustPlay(t testing.TB, board *engine.Board, move string) engine.MoveOutcome {
	t.Helper()
	outcome, err := board.Play(move)
	if err != nil {
		t.Fatalf("Play(%q) error: %v", move, err)
	}
	return outcome
}

// SquareAt returns the occupant of position, aborting the test on a bad name.
func SquareAt(t testing.TB, board *engine.Board, position string) chess.Square {
	t.Helper()
	sq, err := board.GetSquareInfo(position)
	if err != nil {
		t.Fatalf("GetSquareInfo(%q) error: %v", position, err)
	}
	return sq
}

// AssertSquare fails if the occupant of position differs from want.
func AssertSquare(t testing.TB, board *engine.Board, position string, want chess.Square) {
	t.Helper()
	if got := SquareAt(t, board, position); got != want {
		t.Errorf("%s = %v; want %v", position, got, want)
	}
}

// AssertGridEqual reports a square-by-square diff between two boards.
func AssertGridEqual(t testing.TB, got, want *engine.Board) {
	t.Helper()
	if diff := cmp.Diff(want.Grid(), got.Grid()); diff != "" {
		t.Errorf("board mismatch (-want +got):\n%s\ngot:\n%s", diff, got)
	}
}
