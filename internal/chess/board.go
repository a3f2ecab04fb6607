package chess

// Grid is the 8x8 square array, indexed grid[file][rank] with both
// axes in 0..7. Callers are expected to bounds check with InBounds.
type Grid [BoardSize][BoardSize]Square

// InBounds reports whether file and rank both lie on the board.
func InBounds(file, rank int) bool {
	return file >= 0 && file < BoardSize && rank >= 0 && rank < BoardSize
}

// At returns the square at the given indices.
func (g *Grid) At(file, rank int) Square {
	return g[file][rank]
}

// Set places a square at the given indices.
func (g *Grid) Set(file, rank int, sq Square) {
	g[file][rank] = sq
}

// Clear empties every square.
func (g *Grid) Clear() {
	*g = Grid{}
}

// SetupPawns places the standard pawn ranks and nothing else.
func (g *Grid) SetupPawns() {
	for file := 0; file < BoardSize; file++ {
		g[file][WhitePawnRank] = W(Pawn)
		g[file][BlackPawnRank] = B(Pawn)
	}
}

// Move transfers the occupant of the origin to the target. The origin is
// emptied and whatever stood on the target is overwritten.
func (g *Grid) Move(originFile, originRank, targetFile, targetRank int) {
	occupant := g[originFile][originRank]
	g[originFile][originRank] = Empty
	g[targetFile][targetRank] = occupant
}

// Count returns the number of squares holding exactly sq.
func (g *Grid) Count(sq Square) int {
	n := 0
	for file := 0; file < BoardSize; file++ {
		for rank := 0; rank < BoardSize; rank++ {
			if g[file][rank] == sq {
				n++
			}
		}
	}
	return n
}

// String draws the grid with rank 8 at the top, one letter per square.
func (g *Grid) String() string {
	buf := make([]byte, 0, (BoardSize*2+3)*(BoardSize+1))
	for rank := BoardSize - 1; rank >= 0; rank-- {
		buf = append(buf, byte(RankBase+rank), ' ')
		for file := 0; file < BoardSize; file++ {
			buf = append(buf, g[file][rank].Letter())
			if file < BoardSize-1 {
				buf = append(buf, ' ')
			}
		}
		buf = append(buf, '\n')
	}
	buf = append(buf, ' ', ' ')
	for file := 0; file < BoardSize; file++ {
		buf = append(buf, byte(FileBase+file))
		if file < BoardSize-1 {
			buf = append(buf, ' ')
		}
	}
	buf = append(buf, '\n')
	return string(buf)
}
