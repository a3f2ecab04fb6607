package engine

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// MoveOutcome reports what Play did with a well-formed move.
type MoveOutcome int

const (
	// Illegal means the rule manager rejected the move; the board is unchanged.
	Illegal MoveOutcome = iota
	// Moved means the move was legal and has been applied.
	Moved
	// NoPieceAtOrigin means the origin square was empty; the board is unchanged.
	NoPieceAtOrigin
)

// String returns the string representation of an outcome.
func (o MoveOutcome) String() string {
	switch o {
	case Illegal:
		return "illegal"
	case Moved:
		return "moved"
	case NoPieceAtOrigin:
		return "no piece at origin"
	}
	return fmt.Sprintf("MoveOutcome(%d)", int(o))
}

// Err converts a rejection into its sentinel error, or nil for Moved.
func (o MoveOutcome) Err() error {
	switch o {
	case Moved:
		return nil
	case NoPieceAtOrigin:
		return errors.ErrNoPieceAtOrigin
	}
	return errors.ErrIllegalMove
}

// Board owns the square grid of one game and the rule managers bound to it.
// A Board is not safe for concurrent use and must not be copied by value;
// use Clone to obtain an independent board.
type Board struct {
	grid       chess.Grid
	strictness Strictness
	rules      map[chess.PieceKind]RuleManager
}

// Option configures a Board.
type Option func(*Board)

// WithStrictness selects the rule strictness for every rule manager.
func WithStrictness(s Strictness) Option {
	return func(b *Board) {
		b.strictness = s
	}
}

// NewEmptyBoard creates a board with no pieces on it.
func NewEmptyBoard(opts ...Option) *Board {
	b := &Board{strictness: Permissive}
	for _, opt := range opts {
		opt(b)
	}
	// Rule managers are built after options so they see the final strictness.
	b.rules = newRuleManagers(&b.grid, b.strictness)
	return b
}

// CreateBoard creates a board with White pawns on rank 2 and Black pawns
// on rank 7. No other pieces are placed.
func CreateBoard(opts ...Option) *Board {
	b := NewEmptyBoard(opts...)
	b.grid.SetupPawns()
	return b
}

// Strictness returns the rule strictness the board was built with.
func (b *Board) Strictness() Strictness {
	return b.strictness
}

// Clone returns a deep copy whose rule managers are bound to the copy.
func (b *Board) Clone() *Board {
	c := NewEmptyBoard(WithStrictness(b.strictness))
	c.grid = b.grid
	return c
}

// Grid returns a copy of the current squares.
func (b *Board) Grid() chess.Grid {
	return b.grid
}

// GetSquareInfo returns the occupant of position (e.g. "A2").
func (b *Board) GetSquareInfo(position string) (chess.Square, error) {
	c, err := chess.ParseSquare(position)
	if err != nil {
		return chess.Empty, err
	}
	return b.grid.At(c.File, c.Rank), nil
}

// PlacePiece overwrites one square. It is meant for setting up positions,
// not for play, and bypasses every rule. Use chess.NoPiece with chess.None
// to empty a square.
func (b *Board) PlacePiece(piece chess.PieceKind, color chess.PieceColor, position string) error {
	c, err := chess.ParseSquare(position)
	if err != nil {
		return err
	}
	sq := chess.Sq(piece, color)
	if !sq.Valid() {
		return errors.Wrapf(errors.ErrInvalidSquare, "%s %s on %s", color, piece, position)
	}
	b.grid.Set(c.File, c.Rank, sq)
	return nil
}

// Play decodes a four character move such as "A2A4" and applies it if legal.
// Only malformed or off-board input produces an error; a rejected move is
// reported through the outcome and leaves the board unchanged.
func (b *Board) Play(move string) (MoveOutcome, error) {
	m, err := chess.ParseMove(move)
	if err != nil {
		return Illegal, err
	}
	return b.PlayMove(m)
}

// PlayMove applies an already decoded move. See Play.
func (b *Board) PlayMove(m chess.Move) (MoveOutcome, error) {
	rm, outcome, err := b.ruleFor(m)
	if rm == nil {
		return outcome, err
	}
	if !rm.ApplyMove(m.Origin.File, m.Origin.Rank, m.Target.File, m.Target.Rank) {
		return Illegal, nil
	}
	return Moved, nil
}

// IsLegal reports whether Play would apply move, without changing the board.
func (b *Board) IsLegal(move string) (bool, error) {
	m, err := chess.ParseMove(move)
	if err != nil {
		return false, err
	}
	rm, _, err := b.ruleFor(m)
	if rm == nil {
		return false, err
	}
	return rm.IsLegalMove(m.Origin.File, m.Origin.Rank, m.Target.File, m.Target.Rank), nil
}

// LegalTargets lists every square the piece on position may move to,
// ordered A1, A2, ..., H8. An empty origin has no targets.
func (b *Board) LegalTargets(position string) ([]string, error) {
	origin, err := chess.ParseSquare(position)
	if err != nil {
		return nil, err
	}
	occupant := b.grid.At(origin.File, origin.Rank)
	if occupant.IsEmpty() {
		return nil, nil
	}
	rm, ok := b.rules[occupant.Piece]
	if !ok {
		return nil, errors.Wrapf(errors.ErrNoRuleManager, "%s on %s", occupant, position)
	}

	var targets []string
	for file := 0; file < chess.BoardSize; file++ {
		for rank := 0; rank < chess.BoardSize; rank++ {
			if rm.IsLegalMove(origin.File, origin.Rank, file, rank) {
				targets = append(targets, chess.SquareName(file, rank))
			}
		}
	}
	return targets, nil
}

// Count returns how many pieces of the given kind and colour are on the board.
func (b *Board) Count(piece chess.PieceKind, color chess.PieceColor) int {
	return b.grid.Count(chess.Sq(piece, color))
}

// String draws the board with rank 8 at the top.
func (b *Board) String() string {
	return b.grid.String()
}

// ruleFor resolves the rule manager for the piece on the origin of m.
// A nil manager comes with the outcome and error to report instead.
func (b *Board) ruleFor(m chess.Move) (RuleManager, MoveOutcome, error) {
	if !chess.InBounds(m.Origin.File, m.Origin.Rank) || !chess.InBounds(m.Target.File, m.Target.Rank) {
		return nil, Illegal, &errors.CoordinateError{Err: errors.ErrOutOfRange, Input: m.String()}
	}
	occupant := b.grid.At(m.Origin.File, m.Origin.Rank)
	if occupant.IsEmpty() {
		return nil, NoPieceAtOrigin, nil
	}
	rm, ok := b.rules[occupant.Piece]
	if !ok {
		return nil, Illegal, errors.Wrapf(errors.ErrNoRuleManager, "%s on %s", occupant, m.Origin)
	}
	return rm, Moved, nil
}
