// Package hashing provides position hashing and duplicate detection for
// replayed boards.
package hashing

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// zobristTable holds one key per square, colour and piece kind.
var zobristTable = newZobristTable(0)

func newZobristTable(seed uint64) (table [chess.BoardSize][chess.BoardSize][2][chess.NumPieceKinds]uint64) {
	state := seed
	for file := range table {
		for rank := range table[file] {
			for color := range table[file][rank] {
				for piece := range table[file][rank][color] {
					state, table[file][rank][color][piece] = splitMix64(state)
				}
			}
		}
	}
	return table
}

// splitMix64 advances state and returns the next pseudo-random key.
func splitMix64(state uint64) (next, key uint64) {
	next = state + 0x9E3779B97F4A7C15
	z := next
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return next, z ^ (z >> 31)
}

func colorIndex(c chess.PieceColor) int {
	if c == chess.Black {
		return 1
	}
	return 0
}

// GenerateZobristHash hashes the occupied squares of grid.
func GenerateZobristHash(grid *chess.Grid) uint64 {
	var hash uint64
	for file := 0; file < chess.BoardSize; file++ {
		for rank := 0; rank < chess.BoardSize; rank++ {
			sq := grid[file][rank]
			if sq.IsEmpty() {
				continue
			}
			hash ^= zobristTable[file][rank][colorIndex(sq.Color)][sq.Piece]
		}
	}
	return hash
}

// WeakHash is a cheap material signature: piece counts per colour packed
// four bits each. Equal positions always share it.
func WeakHash(grid *chess.Grid) uint64 {
	var hash uint64
	for file := 0; file < chess.BoardSize; file++ {
		for rank := 0; rank < chess.BoardSize; rank++ {
			sq := grid[file][rank]
			if sq.IsEmpty() {
				continue
			}
			shift := uint(colorIndex(sq.Color)*int(chess.NumPieceKinds)+int(sq.Piece)) * 4
			hash += 1 << shift
		}
	}
	return hash
}

// Signature identifies the final position of one replayed script.
type Signature struct {
	Name      string
	Hash      uint64
	WeakHash  uint64
	MoveCount int
	Grid      chess.Grid
}

// DuplicateDetector tracks final positions to find scripts that end on
// the same board. It is not safe for concurrent use.
type DuplicateDetector struct {
	hashTable map[uint64][]Signature
	// useExactMatch also requires the same number of moves
	useExactMatch  bool
	maxCapacity    int
	entries        int
	duplicateCount int
}

// NewDuplicateDetector creates a new duplicate detector.
// maxCapacity of 0 means unlimited capacity.
func NewDuplicateDetector(exactMatch bool, maxCapacity int) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:     make(map[uint64][]Signature),
		useExactMatch: exactMatch,
		maxCapacity:   maxCapacity,
	}
}

// CheckAndAdd reports whether grid duplicates a position already seen and
// returns the name recorded with the first occurrence. New positions are
// stored until the detector is full.
func (d *DuplicateDetector) CheckAndAdd(name string, grid chess.Grid, moveCount int) (original string, duplicate bool) {
	sig := Signature{
		Name:      name,
		Hash:      GenerateZobristHash(&grid),
		WeakHash:  WeakHash(&grid),
		MoveCount: moveCount,
		Grid:      grid,
	}

	for _, existing := range d.hashTable[sig.Hash] {
		if d.signaturesMatch(sig, existing) {
			d.duplicateCount++
			return existing.Name, true
		}
	}

	if !d.IsFull() {
		d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
		d.entries++
	}
	return "", false
}

// signaturesMatch checks if two signatures describe the same position.
func (d *DuplicateDetector) signaturesMatch(a, b Signature) bool {
	if a.Hash != b.Hash || a.WeakHash != b.WeakHash {
		return false
	}
	if d.useExactMatch && a.MoveCount != b.MoveCount {
		return false
	}
	return a.Grid == b.Grid
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of stored positions.
func (d *DuplicateDetector) UniqueCount() int {
	return d.entries
}

// IsFull returns true if the detector has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.entries >= d.maxCapacity
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]Signature)
	d.entries = 0
	d.duplicateCount = 0
}
