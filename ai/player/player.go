// Package player is an automatic player. It picks placements with the
// board's brute-force search; the strategies differ only in how they
// order and choose among candidates.
package player

import (
	"sort"

	"github.com/samber/lo"

	"github.com/domino14/corners/block"
	"github.com/domino14/corners/board"
	"github.com/domino14/corners/game"
	"github.com/domino14/corners/move"
)

// GreedyStrategy plays the largest block that fits anywhere, taking the
// first legal candidate the search yields. Not optimal play, but
// deterministic and cheap.
type GreedyStrategy struct{}

// Place implements game.Strategy.
func (GreedyStrategy) Place(gb *board.GameBoard, playerID board.CellOwner,
	players []game.Player, firstBlock bool) *move.Placement {

	p, ok := lo.Find(players, func(p game.Player) bool { return p.ID == playerID })
	if !ok {
		return nil
	}
	for _, blk := range bySizeDescending(p.Blocks) {
		search := gb.SearchPlacements(blk, playerID, firstBlock)
		if placement, found := search.Next(); found {
			return &placement
		}
		// else the block cannot be placed anywhere; try the next one
	}
	return nil
}

// bySizeDescending returns a copy of blocks sorted by descending cell
// count. The sort is stable so equal-size blocks keep catalog order,
// which keeps the whole strategy deterministic.
func bySizeDescending(blocks []block.Block) []block.Block {
	sorted := make([]block.Block, len(blocks))
	copy(sorted, blocks)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Cells() > sorted[j].Cells()
	})
	return sorted
}
