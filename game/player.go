package game

import (
	"github.com/samber/lo"

	"github.com/domino14/corners/block"
	"github.com/domino14/corners/board"
)

// A Player is one seat: an id (its board cell marker), whether a human
// drives it, and the blocks it has left to play. Blocks stay in catalog
// order; the greedy strategy's tie-breaking depends on that.
type Player struct {
	ID     board.CellOwner
	Human  bool
	Blocks []block.Block
}

// UnplayedCells returns the penalty score: the total cell count of the
// player's remaining blocks. Lower is better.
func (p *Player) UnplayedCells() int {
	return lo.SumBy(p.Blocks, func(b block.Block) int { return b.Cells() })
}

// removeBlock drops the first block equal to blk from the inventory and
// reports whether one was found.
func (p *Player) removeBlock(blk block.Block) bool {
	for i, b := range p.Blocks {
		if b.Equal(blk) {
			p.Blocks = append(p.Blocks[:i], p.Blocks[i+1:]...)
			return true
		}
	}
	return false
}
