// Package chess provides core chess types and operations.
package chess

// PieceColor represents the colour of a piece occupying a square.
// White and Black carry opposite signs so pawn direction can be
// derived from the colour directly.
type PieceColor int

const (
	Black PieceColor = -1
	None  PieceColor = 0
	White PieceColor = 1
)

// String returns the string representation of a colour.
func (c PieceColor) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	case None:
		return "None"
	}
	return "Unknown"
}

// Opposite returns the opposite colour. None has no opposite.
func (c PieceColor) Opposite() PieceColor {
	return -c
}

// Sign returns +1 for White, -1 for Black and 0 for None (pawn direction).
func (c PieceColor) Sign() int {
	return int(c)
}

// PieceKind represents a chess piece type.
type PieceKind int

const (
	NoPiece PieceKind = iota // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceKinds
)

// String returns the string representation of a piece.
func (p PieceKind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece (uppercase).
func (p PieceKind) Letter() byte {
	letters := []byte{'.', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if p >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// Square is the occupant state of one grid cell.
type Square struct {
	Piece PieceKind
	Color PieceColor
}

// Empty is the unoccupied square.
var Empty = Square{Piece: NoPiece, Color: None}

// Sq creates a square holding piece in colour c.
func Sq(piece PieceKind, c PieceColor) Square {
	return Square{Piece: piece, Color: c}
}

// W creates a white square occupant.
func W(piece PieceKind) Square {
	return Sq(piece, White)
}

// B creates a black square occupant.
func B(piece PieceKind) Square {
	return Sq(piece, Black)
}

// IsEmpty reports whether the square holds no piece.
func (s Square) IsEmpty() bool {
	return s.Piece == NoPiece
}

// Valid reports whether the square respects the occupancy invariant:
// an empty square has no colour and an occupied one is White or Black.
func (s Square) Valid() bool {
	if s.Piece < NoPiece || s.Piece >= NumPieceKinds {
		return false
	}
	if s.Piece == NoPiece {
		return s.Color == None
	}
	return s.Color == White || s.Color == Black
}

// Letter returns the piece letter, uppercase for White and lowercase for Black.
func (s Square) Letter() byte {
	l := s.Piece.Letter()
	if s.Color == Black && l >= 'A' && l <= 'Z' {
		return l + ('a' - 'A')
	}
	return l
}

// String returns a human readable description such as "White Pawn".
func (s Square) String() string {
	if s.IsEmpty() {
		return "Empty"
	}
	return s.Color.String() + " " + s.Piece.String()
}

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	FileBase  = 'A'
	RankBase  = '1'
	FirstFile = FileBase
	LastFile  = FileBase + BoardSize - 1
	FirstRank = RankBase
	LastRank  = RankBase + BoardSize - 1

	// Pawn home ranks as zero-based indices.
	WhitePawnRank = 1
	BlackPawnRank = 6
)
