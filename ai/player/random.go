package player

import (
	"github.com/samber/lo"
	"lukechampine.com/frand"

	"github.com/domino14/corners/board"
	"github.com/domino14/corners/game"
	"github.com/domino14/corners/move"
)

// RandomStrategy keeps the greedy largest-block-first ordering but picks
// uniformly among all legal candidates for that block, for variety in
// comp-vs-comp games.
type RandomStrategy struct{}

// Place implements game.Strategy.
func (RandomStrategy) Place(gb *board.GameBoard, playerID board.CellOwner,
	players []game.Player, firstBlock bool) *move.Placement {

	p, ok := lo.Find(players, func(p game.Player) bool { return p.ID == playerID })
	if !ok {
		return nil
	}
	for _, blk := range bySizeDescending(p.Blocks) {
		search := gb.SearchPlacements(blk, playerID, firstBlock)
		var candidates []move.Placement
		for {
			placement, found := search.Next()
			if !found {
				break
			}
			candidates = append(candidates, placement)
		}
		if len(candidates) > 0 {
			return &candidates[frand.Intn(len(candidates))]
		}
	}
	return nil
}
