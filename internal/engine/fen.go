package engine

import (
	"fmt"
	"strings"

	nchess "github.com/notnil/chess"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// InitialFEN is the piece placement of a freshly created board.
const InitialFEN = "8/pppppppp/8/8/8/8/PPPPPPPP/8"

// fenSuffix completes a bare piece placement into a full FEN record.
// Side to move, castling and clocks carry no meaning for this engine.
const fenSuffix = " w - - 0 1"

var toFENPiece = map[chess.Square]nchess.Piece{
	chess.W(chess.Pawn):   nchess.WhitePawn,
	chess.W(chess.Knight): nchess.WhiteKnight,
	chess.W(chess.Bishop): nchess.WhiteBishop,
	chess.W(chess.Rook):   nchess.WhiteRook,
	chess.W(chess.Queen):  nchess.WhiteQueen,
	chess.W(chess.King):   nchess.WhiteKing,
	chess.B(chess.Pawn):   nchess.BlackPawn,
	chess.B(chess.Knight): nchess.BlackKnight,
	chess.B(chess.Bishop): nchess.BlackBishop,
	chess.B(chess.Rook):   nchess.BlackRook,
	chess.B(chess.Queen):  nchess.BlackQueen,
	chess.B(chess.King):   nchess.BlackKing,
}

var fromFENPiece = func() map[nchess.Piece]chess.Square {
	m := make(map[nchess.Piece]chess.Square, len(toFENPiece))
	for sq, p := range toFENPiece {
		m[p] = sq
	}
	return m
}()

// fenSquare maps grid indices onto the FEN library's square numbering.
func fenSquare(file, rank int) nchess.Square {
	return nchess.Square(rank*chess.BoardSize + file)
}

// FEN returns the piece placement field of the board in FEN notation,
// e.g. "8/pppppppp/8/8/8/8/PPPPPPPP/8" for a fresh board.
func (b *Board) FEN() string {
	placement := make(map[nchess.Square]nchess.Piece)
	for file := 0; file < chess.BoardSize; file++ {
		for rank := 0; rank < chess.BoardSize; rank++ {
			sq := b.grid.At(file, rank)
			if sq.IsEmpty() {
				continue
			}
			placement[fenSquare(file, rank)] = toFENPiece[sq]
		}
	}
	return nchess.NewBoard(placement).String()
}

// LoadFEN creates a board from a FEN record or from its piece placement
// field alone. Only the placement is used.
func LoadFEN(fen string, opts ...Option) (*Board, error) {
	fen = strings.TrimSpace(fen)
	if fen == "" {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}
	if !strings.ContainsAny(fen, " \t") {
		fen += fenSuffix
	}

	var pos nchess.Position
	if err := pos.UnmarshalText([]byte(fen)); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrInvalidFEN, err)
	}

	fenBoard := pos.Board()
	b := NewEmptyBoard(opts...)
	for file := 0; file < chess.BoardSize; file++ {
		for rank := 0; rank < chess.BoardSize; rank++ {
			p := fenBoard.Piece(fenSquare(file, rank))
			if p == nchess.NoPiece {
				continue
			}
			sq, ok := fromFENPiece[p]
			if !ok {
				return nil, fmt.Errorf("unknown piece %v on %s: %w", p, chess.SquareName(file, rank), errors.ErrInvalidFEN)
			}
			b.grid.Set(file, rank, sq)
		}
	}
	return b, nil
}
