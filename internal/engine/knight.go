package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// KnightRuleManager implements the knight's L-shaped jump.
type KnightRuleManager struct {
	ruleBase
}

// NewKnightRuleManager binds knight rules to grid.
func NewKnightRuleManager(grid *chess.Grid, strictness Strictness) *KnightRuleManager {
	return &KnightRuleManager{ruleBase{grid: grid, strictness: strictness}}
}

// IsLegalMove accepts any (1,2) or (2,1) offset. Occupancy only matters
// in strict mode, where landing on an own piece is refused.
func (r *KnightRuleManager) IsLegalMove(originFile, originRank, targetFile, targetRank int) bool {
	if !inBounds(originFile, originRank, targetFile, targetRank) {
		return false
	}

	deltaRank := abs(targetRank - originRank)
	deltaFile := abs(targetFile - originFile)

	isLegal := abs(deltaRank-deltaFile) == 1 && deltaRank+deltaFile == 3
	if isLegal && r.strictness == Strict {
		return !r.capturesOwnPiece(originFile, originRank, targetFile, targetRank)
	}
	return isLegal
}

// ApplyMove moves the knight if IsLegalMove accepts it.
func (r *KnightRuleManager) ApplyMove(originFile, originRank, targetFile, targetRank int) bool {
	return applyIfLegal(r, r.grid, originFile, originRank, targetFile, targetRank)
}
