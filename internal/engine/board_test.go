package engine_test

import (
	"errors"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	chesserrors "github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestCreateBoard(t *testing.T) {
	board := engine.CreateBoard()

	t.Run("pawn ranks", func(t *testing.T) {
		for file := byte('A'); file <= 'H'; file++ {
			white := string([]byte{file, '2'})
			black := string([]byte{file, '7'})
			testutil.AssertSquare(t, board, white, chess.W(chess.Pawn))
			testutil.AssertSquare(t, board, black, chess.B(chess.Pawn))
		}
	})

	t.Run("everything else empty", func(t *testing.T) {
		for file := 0; file < chess.BoardSize; file++ {
			for rank := 0; rank < chess.BoardSize; rank++ {
				if rank == chess.WhitePawnRank || rank == chess.BlackPawnRank {
					continue
				}
				name := chess.SquareName(file, rank)
				if got := testutil.SquareAt(t, board, name); got.Piece != chess.NoPiece {
					t.Errorf("%s = %v; want Empty", name, got)
				}
			}
		}
	})

	t.Run("exactly sixteen pawns", func(t *testing.T) {
		testutil.AssertEqual(t, board.Count(chess.Pawn, chess.White), 8, "white pawns")
		testutil.AssertEqual(t, board.Count(chess.Pawn, chess.Black), 8, "black pawns")
		testutil.AssertEqual(t, board.Count(chess.Knight, chess.White), 0, "white knights")
	})

	t.Run("default strictness", func(t *testing.T) {
		if board.Strictness() != engine.Permissive {
			t.Errorf("Strictness() = %v; want permissive", board.Strictness())
		}
	})
}

func TestGetSquareInfo_Errors(t *testing.T) {
	board := engine.CreateBoard()

	tests := []struct {
		position string
		want     error
	}{
		{"I1", chesserrors.ErrOutOfRange},
		{"A9", chesserrors.ErrOutOfRange},
		{"A0", chesserrors.ErrOutOfRange},
		{"a1", chesserrors.ErrInvalidCoordinate},
		{"A", chesserrors.ErrInvalidCoordinate},
		{"", chesserrors.ErrInvalidCoordinate},
	}
	for _, tt := range tests {
		t.Run(tt.position, func(t *testing.T) {
			sq, err := board.GetSquareInfo(tt.position)
			testutil.AssertErrorIs(t, err, tt.want, "GetSquareInfo(%q)", tt.position)
			testutil.AssertEqual(t, sq, chess.Empty)
		})
	}
}

func TestPlacePiece(t *testing.T) {
	t.Run("overwrites square", func(t *testing.T) {
		board := engine.CreateBoard()
		testutil.AssertNoError(t, board.PlacePiece(chess.Knight, chess.Black, "A2"))
		testutil.AssertSquare(t, board, "A2", chess.B(chess.Knight))
	})

	t.Run("empties square", func(t *testing.T) {
		board := engine.CreateBoard()
		testutil.AssertNoError(t, board.PlacePiece(chess.NoPiece, chess.None, "A2"))
		testutil.AssertSquare(t, board, "A2", chess.Empty)
	})

	t.Run("rejects invalid contents", func(t *testing.T) {
		board := engine.CreateBoard()
		testutil.AssertErrorIs(t, board.PlacePiece(chess.Pawn, chess.None, "A3"), chesserrors.ErrInvalidSquare)
		testutil.AssertErrorIs(t, board.PlacePiece(chess.NoPiece, chess.White, "A3"), chesserrors.ErrInvalidSquare)
		testutil.AssertSquare(t, board, "A3", chess.Empty)
	})

	t.Run("rejects bad coordinates", func(t *testing.T) {
		board := engine.CreateBoard()
		testutil.AssertErrorIs(t, board.PlacePiece(chess.Pawn, chess.White, "Z9"), chesserrors.ErrOutOfRange)
	})
}

func TestPlay_Pawn(t *testing.T) {
	tests := []struct {
		name    string
		setup   testutil.Placement
		move    string
		outcome engine.MoveOutcome
		want    testutil.Placement
	}{
		{
			name:    "one step push",
			move:    "A2A3",
			outcome: engine.Moved,
			want:    testutil.Placement{"A3": chess.W(chess.Pawn), "A2": chess.Empty},
		},
		{
			name:    "two step push from home rank",
			move:    "A2A4",
			outcome: engine.Moved,
			want:    testutil.Placement{"A4": chess.W(chess.Pawn), "A2": chess.Empty},
		},
		{
			name:    "three step push rejected",
			move:    "A2A5",
			outcome: engine.Illegal,
			want:    testutil.Placement{"A2": chess.W(chess.Pawn), "A5": chess.Empty},
		},
		{
			name:    "two step backwards off home rank rejected",
			setup:   testutil.Placement{"A4": chess.W(chess.Pawn), "A2": chess.Empty},
			move:    "A4A2",
			outcome: engine.Illegal,
			want:    testutil.Placement{"A4": chess.W(chess.Pawn), "A2": chess.Empty},
		},
		{
			name:    "sideways jump rejected",
			move:    "A2B4",
			outcome: engine.Illegal,
			want:    testutil.Placement{"A2": chess.W(chess.Pawn), "B4": chess.Empty},
		},
		{
			name:    "white captures diagonally",
			setup:   testutil.Placement{"B3": chess.B(chess.Pawn)},
			move:    "A2B3",
			outcome: engine.Moved,
			want:    testutil.Placement{"B3": chess.W(chess.Pawn), "A2": chess.Empty},
		},
		{
			name:    "white backward capture rejected",
			setup:   testutil.Placement{"A3": chess.W(chess.Pawn), "B2": chess.B(chess.Pawn)},
			move:    "A3B2",
			outcome: engine.Illegal,
			want:    testutil.Placement{"A3": chess.W(chess.Pawn), "B2": chess.B(chess.Pawn)},
		},
		{
			name:    "black backward capture rejected",
			setup:   testutil.Placement{"A3": chess.B(chess.Pawn), "B4": chess.W(chess.Pawn)},
			move:    "A3B4",
			outcome: engine.Illegal,
			want:    testutil.Placement{"A3": chess.B(chess.Pawn), "B4": chess.W(chess.Pawn)},
		},
		{
			name:    "black two-file capture rejected",
			setup:   testutil.Placement{"A5": chess.B(chess.Pawn), "C3": chess.W(chess.Pawn)},
			move:    "A5C3",
			outcome: engine.Illegal,
			want:    testutil.Placement{"A5": chess.B(chess.Pawn), "C3": chess.W(chess.Pawn)},
		},
		{
			name:    "black captures diagonally",
			setup:   testutil.Placement{"B4": chess.W(chess.Pawn), "A5": chess.B(chess.Pawn)},
			move:    "A5B4",
			outcome: engine.Moved,
			want:    testutil.Placement{"B4": chess.B(chess.Pawn), "A5": chess.Empty},
		},
		{
			name:    "black two step push",
			move:    "E7E5",
			outcome: engine.Moved,
			want:    testutil.Placement{"E5": chess.B(chess.Pawn), "E7": chess.Empty},
		},
		{
			name:    "empty origin is a no-op",
			move:    "D4D5",
			outcome: engine.NoPieceAtOrigin,
			want:    testutil.Placement{"D4": chess.Empty, "D5": chess.Empty},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := engine.CreateBoard()
			testutil.MustPlace(t, board, tt.setup)

			got := testutil.MustPlay(t, board, tt.move)
			if got != tt.outcome {
				t.Errorf("Play(%q) = %v; want %v", tt.move, got, tt.outcome)
			}
			for position, want := range tt.want {
				testutil.AssertSquare(t, board, position, want)
			}
		})
	}
}

func TestPlay_Knight(t *testing.T) {
	legalTargets := map[string]bool{
		"B4": true, "B6": true, "C3": true, "C7": true,
		"E3": true, "E7": true, "F4": true, "F6": true,
	}

	for file := 0; file < chess.BoardSize; file++ {
		for rank := 0; rank < chess.BoardSize; rank++ {
			target := chess.SquareName(file, rank)
			if target == "D5" {
				continue
			}
			t.Run("D5"+target, func(t *testing.T) {
				board := testutil.StageBoard(t, testutil.Placement{"D5": chess.W(chess.Knight)})
				got := testutil.MustPlay(t, board, "D5"+target)

				if legalTargets[target] {
					if got != engine.Moved {
						t.Fatalf("Play(D5%s) = %v; want moved", target, got)
					}
					testutil.AssertSquare(t, board, target, chess.W(chess.Knight))
					testutil.AssertSquare(t, board, "D5", chess.Empty)
					return
				}
				if got != engine.Illegal {
					t.Fatalf("Play(D5%s) = %v; want illegal", target, got)
				}
				testutil.AssertSquare(t, board, "D5", chess.W(chess.Knight))
				testutil.AssertSquare(t, board, target, chess.Empty)
			})
		}
	}
}

func TestPlay_KnightCapturesOwnPiece(t *testing.T) {
	board := engine.CreateBoard()
	testutil.MustPlace(t, board, testutil.Placement{"B1": chess.W(chess.Knight)})

	// D2 holds a white pawn; permissive rules do not protect it.
	if got := testutil.MustPlay(t, board, "B1D2"); got != engine.Moved {
		t.Fatalf("Play(B1D2) = %v; want moved", got)
	}
	testutil.AssertSquare(t, board, "D2", chess.W(chess.Knight))
	testutil.AssertEqual(t, board.Count(chess.Pawn, chess.White), 7)
}

func TestPlay_RejectionIsIdempotent(t *testing.T) {
	board := engine.CreateBoard()
	reference := engine.CreateBoard()

	for i := 0; i < 2; i++ {
		if got := testutil.MustPlay(t, board, "A2A5"); got != engine.Illegal {
			t.Fatalf("attempt %d: Play(A2A5) = %v; want illegal", i+1, got)
		}
		testutil.AssertGridEqual(t, board, reference)
	}
}

func TestPlay_Errors(t *testing.T) {
	tests := []struct {
		move string
		want error
	}{
		{"A2A9", chesserrors.ErrOutOfRange},
		{"I2I3", chesserrors.ErrOutOfRange},
		{"a2a3", chesserrors.ErrInvalidCoordinate},
		{"A2", chesserrors.ErrInvalidMove},
		{"A2A3A4", chesserrors.ErrInvalidMove},
	}
	for _, tt := range tests {
		t.Run(tt.move, func(t *testing.T) {
			board := engine.CreateBoard()
			_, err := board.Play(tt.move)
			testutil.AssertErrorIs(t, err, tt.want, "Play(%q)", tt.move)
			testutil.AssertGridEqual(t, board, engine.CreateBoard())
		})
	}

	t.Run("off-board decoded move", func(t *testing.T) {
		board := engine.CreateBoard()
		_, err := board.PlayMove(chess.Move{Origin: chess.Coord{File: 0, Rank: 1}, Target: chess.Coord{File: 0, Rank: -1}})
		testutil.AssertErrorIs(t, err, chesserrors.ErrOutOfRange)
	})

	t.Run("piece without rules", func(t *testing.T) {
		board := testutil.StageBoard(t, testutil.Placement{"D1": chess.W(chess.Queen)})
		outcome, err := board.Play("D1D4")
		testutil.AssertErrorIs(t, err, chesserrors.ErrNoRuleManager)
		testutil.AssertEqual(t, outcome, engine.Illegal)
		testutil.AssertSquare(t, board, "D1", chess.W(chess.Queen))
	})
}

func TestPlay_Strict(t *testing.T) {
	tests := []struct {
		name    string
		setup   testutil.Placement
		move    string
		outcome engine.MoveOutcome
	}{
		{"push", nil, "E2E4", engine.Moved},
		{"diagonal to empty square", nil, "E2F3", engine.Illegal},
		{"blocked double push", testutil.Placement{"E3": chess.B(chess.Knight)}, "E2E4", engine.Illegal},
		{"knight onto own pawn", testutil.Placement{"B1": chess.W(chess.Knight)}, "B1D2", engine.Illegal},
		{"knight onto enemy pawn", testutil.Placement{"F5": chess.W(chess.Knight)}, "F5E7", engine.Moved},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := engine.CreateBoard(engine.WithStrictness(engine.Strict))
			testutil.MustPlace(t, board, tt.setup)
			if got := testutil.MustPlay(t, board, tt.move); got != tt.outcome {
				t.Errorf("Play(%q) = %v; want %v", tt.move, got, tt.outcome)
			}
		})
	}
}

func TestIsLegal(t *testing.T) {
	board := engine.CreateBoard()

	ok, err := board.IsLegal("A2A4")
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, ok, "A2A4")

	ok, err = board.IsLegal("A2A5")
	testutil.AssertNoError(t, err)
	testutil.AssertFalse(t, ok, "A2A5")

	ok, err = board.IsLegal("D4D5")
	testutil.AssertNoError(t, err)
	testutil.AssertFalse(t, ok, "empty origin")

	// IsLegal never moves anything.
	testutil.AssertGridEqual(t, board, engine.CreateBoard())
}

func TestLegalTargets(t *testing.T) {
	t.Run("knight on d5", func(t *testing.T) {
		board := testutil.StageBoard(t, testutil.Placement{"D5": chess.B(chess.Knight)})
		got, err := board.LegalTargets("D5")
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, got, []string{"B4", "B6", "C3", "C7", "E3", "E7", "F4", "F6"})
	})

	t.Run("white pawn on home rank", func(t *testing.T) {
		board := engine.CreateBoard()
		got, err := board.LegalTargets("C2")
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, got, []string{"B3", "C3", "C4", "D3"})
	})

	t.Run("strict pawn on home rank", func(t *testing.T) {
		board := engine.CreateBoard(engine.WithStrictness(engine.Strict))
		got, err := board.LegalTargets("C2")
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, got, []string{"C3", "C4"})
	})

	t.Run("empty square", func(t *testing.T) {
		board := engine.CreateBoard()
		got, err := board.LegalTargets("E4")
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, len(got), 0)
	})

	t.Run("piece without rules", func(t *testing.T) {
		board := testutil.StageBoard(t, testutil.Placement{"E1": chess.W(chess.King)})
		_, err := board.LegalTargets("E1")
		if !errors.Is(err, chesserrors.ErrNoRuleManager) {
			t.Errorf("LegalTargets(E1) error = %v; want ErrNoRuleManager", err)
		}
	})
}

func TestClone(t *testing.T) {
	original := engine.CreateBoard(engine.WithStrictness(engine.Strict))
	clone := original.Clone()

	testutil.AssertGridEqual(t, clone, original)
	testutil.AssertEqual(t, clone.Strictness(), engine.Strict)

	// Moves on the clone must not reach the original's grid.
	testutil.MustPlay(t, clone, "E2E4")
	testutil.AssertSquare(t, clone, "E4", chess.W(chess.Pawn))
	testutil.AssertSquare(t, original, "E4", chess.Empty)
	testutil.AssertSquare(t, original, "E2", chess.W(chess.Pawn))

	testutil.MustPlay(t, original, "D2D3")
	testutil.AssertSquare(t, clone, "D2", chess.W(chess.Pawn))
}

func TestMoveOutcome(t *testing.T) {
	testutil.AssertEqual(t, engine.Moved.String(), "moved")
	testutil.AssertEqual(t, engine.Illegal.String(), "illegal")
	testutil.AssertEqual(t, engine.NoPieceAtOrigin.String(), "no piece at origin")

	if engine.Moved.Err() != nil {
		t.Errorf("Moved.Err() = %v; want nil", engine.Moved.Err())
	}
	testutil.AssertErrorIs(t, engine.Illegal.Err(), chesserrors.ErrIllegalMove)
	testutil.AssertErrorIs(t, engine.NoPieceAtOrigin.Err(), chesserrors.ErrNoPieceAtOrigin)
}

func TestBoardString(t *testing.T) {
	board := engine.CreateBoard()
	testutil.AssertContains(t, board.String(), "2 P P P P P P P P")
	testutil.AssertContains(t, board.String(), "7 p p p p p p p p")
}
