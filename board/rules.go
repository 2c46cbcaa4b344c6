package board

import "github.com/domino14/corners/block"

// A RuleCheck is the outcome of one legality pass. Short-circuiting
// leaves later passes Unchecked.
type RuleCheck uint8

const (
	Unchecked RuleCheck = iota
	Violation
	Clean
)

func (rc RuleCheck) String() string {
	switch rc {
	case Violation:
		return "violation"
	case Clean:
		return "clean"
	}
	return "unchecked"
}

// A PlacementRule is the three-part legality verdict for one candidate:
// overlap with owned cells, flat-edge contact with the player's own
// color, and the corner rule (corner start on the first move, own-color
// corner contact afterwards).
type PlacementRule struct {
	Overlap     RuleCheck
	SideContact RuleCheck
	CornerRule  RuleCheck
}

// Allowed reports whether all three checks came back clean.
func (pr PlacementRule) Allowed() bool {
	return pr.Overlap == Clean && pr.SideContact == Clean && pr.CornerRule == Clean
}

var sideOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
var cornerOffsets = [4][2]int{{-1, -1}, {1, 1}, {1, -1}, {-1, 1}}

// CanPlace evaluates the legality of anchoring blk at (row, col) for
// owner, against the pre-placement board state. The three passes
// short-circuit: the first violation ends evaluation.
func (gb *GameBoard) CanPlace(row, col int, blk block.Block, owner CellOwner, firstBlock bool) PlacementRule {
	var rule PlacementRule
	if gb.overlaps(row, col, blk) {
		rule.Overlap = Violation
		return rule
	}
	rule.Overlap = Clean

	if gb.touchesOwnSide(row, col, blk, owner) {
		rule.SideContact = Violation
		return rule
	}
	rule.SideContact = Clean

	var cornerOK bool
	if firstBlock {
		cornerOK = gb.coversFreeCorner(row, col, blk)
	} else {
		cornerOK = gb.touchesOwnCorner(row, col, blk, owner)
	}
	if !cornerOK {
		rule.CornerRule = Violation
		return rule
	}
	rule.CornerRule = Clean
	return rule
}

// overlaps reports whether any occupied block cell maps to a board cell
// that is not free. Off-board cells count as not free.
func (gb *GameBoard) overlaps(row, col int, blk block.Block) bool {
	for br := 0; br < blk.NumRows(); br++ {
		for bc := 0; bc < blk.NumCols(); bc++ {
			if blk.CellAt(br, bc) && !gb.FreeAt(row+br, col+bc) {
				return true
			}
		}
	}
	return false
}

// touchesOwnSide reports whether any occupied block cell has a
// 4-directional neighbor already owned by the same player.
func (gb *GameBoard) touchesOwnSide(row, col int, blk block.Block, owner CellOwner) bool {
	return gb.touchesOwn(row, col, blk, owner, sideOffsets)
}

// touchesOwnCorner reports whether any occupied block cell has a
// diagonal neighbor already owned by the same player.
func (gb *GameBoard) touchesOwnCorner(row, col int, blk block.Block, owner CellOwner) bool {
	return gb.touchesOwn(row, col, blk, owner, cornerOffsets)
}

func (gb *GameBoard) touchesOwn(row, col int, blk block.Block, owner CellOwner, offsets [4][2]int) bool {
	for br := 0; br < blk.NumRows(); br++ {
		for bc := 0; bc < blk.NumCols(); bc++ {
			if !blk.CellAt(br, bc) {
				continue
			}
			for _, d := range offsets {
				// At is FreeCell out of range, so edge neighbors
				// can never spuriously match a real owner.
				if gb.At(row+br+d[0], col+bc+d[1]) == owner {
					return true
				}
			}
		}
	}
	return false
}

// coversFreeCorner reports whether any occupied block cell lands on one
// of the four physical board corners while that corner is still free.
func (gb *GameBoard) coversFreeCorner(row, col int, blk block.Block) bool {
	corners := [4][2]int{
		{0, 0},
		{0, gb.cols - 1},
		{gb.rows - 1, 0},
		{gb.rows - 1, gb.cols - 1},
	}
	for _, corner := range corners {
		if !gb.FreeAt(corner[0], corner[1]) {
			continue // corner already taken
		}
		br := corner[0] - row
		bc := corner[1] - col
		if br >= 0 && bc >= 0 && br < blk.NumRows() && bc < blk.NumCols() && blk.CellAt(br, bc) {
			return true
		}
	}
	return false
}
