package chess

import (
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Coord is a zero-based (file, rank) pair.
type Coord struct {
	File int
	Rank int
}

// String returns the two character square name (e.g. "A2"), or "??"
// when the coordinate lies off the board.
func (c Coord) String() string {
	if !InBounds(c.File, c.Rank) {
		return "??"
	}
	return string([]byte{byte(FileBase + c.File), byte(RankBase + c.Rank)})
}

// Move is an origin/target pair.
type Move struct {
	Origin Coord
	Target Coord
}

// String returns the four character move text (e.g. "A2A4").
func (m Move) String() string {
	return m.Origin.String() + m.Target.String()
}

// SquareName returns the name of the square at the given indices.
func SquareName(file, rank int) string {
	return Coord{File: file, Rank: rank}.String()
}

// decodeCoord converts a file letter and rank digit into indices.
// Letters and digits outside A-H / 1-8 decode to ErrOutOfRange; any other
// byte is ErrInvalidCoordinate.
func decodeCoord(fileByte, rankByte byte) (Coord, error) {
	if fileByte < 'A' || fileByte > 'Z' || rankByte < '0' || rankByte > '9' {
		return Coord{}, errors.ErrInvalidCoordinate
	}
	c := Coord{File: int(fileByte) - FileBase, Rank: int(rankByte) - RankBase}
	if !InBounds(c.File, c.Rank) {
		return Coord{}, errors.ErrOutOfRange
	}
	return c, nil
}

// ParseSquare decodes a two character square such as "A2".
func ParseSquare(position string) (Coord, error) {
	if len(position) != 2 {
		return Coord{}, &errors.CoordinateError{Err: errors.ErrInvalidCoordinate, Input: position}
	}
	c, err := decodeCoord(position[0], position[1])
	if err != nil {
		return Coord{}, &errors.CoordinateError{Err: err, Input: position}
	}
	return c, nil
}

// ParseMove decodes a four character move such as "A2A4".
func ParseMove(text string) (Move, error) {
	if len(text) != 4 {
		return Move{}, &errors.CoordinateError{Err: errors.ErrInvalidMove, Input: text}
	}
	origin, err := decodeCoord(text[0], text[1])
	if err != nil {
		return Move{}, &errors.CoordinateError{Err: err, Input: text}
	}
	target, err := decodeCoord(text[2], text[3])
	if err != nil {
		return Move{}, &errors.CoordinateError{Err: err, Input: text}
	}
	return Move{Origin: origin, Target: target}, nil
}
