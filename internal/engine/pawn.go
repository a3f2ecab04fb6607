package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// PawnRuleManager implements pawn movement: one step forward, two steps
// from a home rank, and one step diagonally forward.
type PawnRuleManager struct {
	ruleBase
}

// NewPawnRuleManager binds pawn rules to grid.
func NewPawnRuleManager(grid *chess.Grid, strictness Strictness) *PawnRuleManager {
	return &PawnRuleManager{ruleBase{grid: grid, strictness: strictness}}
}

// IsLegalMove applies the pawn geometry. The direction comes from the
// colour on the origin square, so an empty origin is never legal.
func (r *PawnRuleManager) IsLegalMove(originFile, originRank, targetFile, targetRank int) bool {
	if !inBounds(originFile, originRank, targetFile, targetRank) {
		return false
	}

	origin := r.grid.At(originFile, originRank)
	direction := origin.Color.Sign()
	deltaRank := direction * abs(targetRank-originRank)
	deltaFile := abs(targetFile - originFile)

	// Either home rank qualifies, whatever the pawn's colour.
	canMoveTwo := originRank == chess.WhitePawnRank || originRank == chess.BlackPawnRank

	isForward := deltaFile == 0 &&
		((abs(deltaRank) == 2 && canMoveTwo) ||
			(abs(deltaRank) == 1 && originRank+deltaRank == targetRank))

	isDiagonal := deltaFile == 1 && abs(deltaRank) == 1 &&
		originRank+deltaRank == targetRank

	if r.strictness == Strict {
		switch {
		case isForward:
			return r.strictForward(originFile, originRank, targetFile, targetRank, origin.Color)
		case isDiagonal:
			return r.strictDiagonal(originFile, originRank, targetFile, targetRank)
		}
		return false
	}

	return isForward || isDiagonal
}

// strictForward requires empty squares along the push and restricts the
// double step to the colour's own home rank, moving forward.
func (r *PawnRuleManager) strictForward(originFile, originRank, targetFile, targetRank int, colour chess.PieceColor) bool {
	if !r.grid.At(targetFile, targetRank).IsEmpty() {
		return false
	}
	direction := colour.Sign()
	if abs(targetRank-originRank) == 1 {
		return true
	}
	home := chess.WhitePawnRank
	if colour == chess.Black {
		home = chess.BlackPawnRank
	}
	if originRank != home || originRank+2*direction != targetRank {
		return false
	}
	return r.grid.At(originFile, originRank+direction).IsEmpty()
}

// strictDiagonal requires an opposing piece on the target.
func (r *PawnRuleManager) strictDiagonal(originFile, originRank, targetFile, targetRank int) bool {
	target := r.grid.At(targetFile, targetRank)
	if target.IsEmpty() {
		return false
	}
	return !r.capturesOwnPiece(originFile, originRank, targetFile, targetRank)
}

// ApplyMove moves the pawn if IsLegalMove accepts it.
func (r *PawnRuleManager) ApplyMove(originFile, originRank, targetFile, targetRank int) bool {
	return applyIfLegal(r, r.grid, originFile, originRank, targetFile, targetRank)
}
