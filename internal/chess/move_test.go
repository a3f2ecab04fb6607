package chess

import (
	"errors"
	"testing"

	chesserrors "github.com/lgbarn/chess-rules-go/internal/errors"
)

func TestParseSquare(t *testing.T) {
	tests := []struct {
		input   string
		want    Coord
		wantErr error
	}{
		{"A1", Coord{0, 0}, nil},
		{"A2", Coord{0, 1}, nil},
		{"H8", Coord{7, 7}, nil},
		{"D5", Coord{3, 4}, nil},
		{"I1", Coord{}, chesserrors.ErrOutOfRange},
		{"A9", Coord{}, chesserrors.ErrOutOfRange},
		{"A0", Coord{}, chesserrors.ErrOutOfRange},
		{"a2", Coord{}, chesserrors.ErrInvalidCoordinate},
		{"A", Coord{}, chesserrors.ErrInvalidCoordinate},
		{"A22", Coord{}, chesserrors.ErrInvalidCoordinate},
		{"", Coord{}, chesserrors.ErrInvalidCoordinate},
		{"2A", Coord{}, chesserrors.ErrInvalidCoordinate},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSquare(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseSquare(%q) error = %v; want %v", tt.input, err, tt.wantErr)
				}
				var coordErr *chesserrors.CoordinateError
				if !errors.As(err, &coordErr) || coordErr.Input != tt.input {
					t.Errorf("ParseSquare(%q) error %v does not carry the input", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSquare(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseSquare(%q) = %+v; want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseMove(t *testing.T) {
	tests := []struct {
		input   string
		want    Move
		wantErr error
	}{
		{"A2A4", Move{Coord{0, 1}, Coord{0, 3}}, nil},
		{"D5F6", Move{Coord{3, 4}, Coord{5, 5}}, nil},
		{"H7H5", Move{Coord{7, 6}, Coord{7, 4}}, nil},
		{"A2A9", Move{}, chesserrors.ErrOutOfRange},
		{"J2A3", Move{}, chesserrors.ErrOutOfRange},
		{"a2a4", Move{}, chesserrors.ErrInvalidCoordinate},
		{"A2A", Move{}, chesserrors.ErrInvalidMove},
		{"A2-A4", Move{}, chesserrors.ErrInvalidMove},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMove(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("ParseMove(%q) error = %v; want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMove(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseMove(%q) = %+v; want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestCoordString(t *testing.T) {
	for file := 0; file < BoardSize; file++ {
		for rank := 0; rank < BoardSize; rank++ {
			name := SquareName(file, rank)
			c, err := ParseSquare(name)
			if err != nil {
				t.Fatalf("ParseSquare(%q) error: %v", name, err)
			}
			if c.File != file || c.Rank != rank {
				t.Errorf("ParseSquare(SquareName(%d, %d)) = %+v", file, rank, c)
			}
		}
	}

	if got := (Coord{File: 8, Rank: 0}).String(); got != "??" {
		t.Errorf("off-board Coord.String() = %q; want ??", got)
	}
	if got := (Move{Coord{0, 1}, Coord{0, 3}}).String(); got != "A2A4" {
		t.Errorf("Move.String() = %q; want A2A4", got)
	}
}
