package board

import (
	"github.com/domino14/corners/block"
	"github.com/domino14/corners/move"
)

// A PlacementSearch lazily enumerates the legal placements of one block
// for one player. The candidate space (transposition × rotation × row ×
// col) is flattened into a single linear index, scanned from 0 upward:
// column varies fastest, then row, then rotation, then transposition.
// The search owns a board snapshot taken at construction, so the
// authoritative board may be mutated between pulls but legality is
// always judged against the snapshot. The cursor persists across pulls;
// construct a new search to restart.
type PlacementSearch struct {
	block        block.Block
	owner        CellOwner
	firstBlock   bool
	board        *GameBoard
	cursor       int
	orientations [2][4]block.Block
}

// SearchPlacements starts a placement search for blk owned by owner.
// firstBlock selects the corner-start rule instead of the corner-touch
// rule.
func (gb *GameBoard) SearchPlacements(blk block.Block, owner CellOwner, firstBlock bool) *PlacementSearch {
	s := &PlacementSearch{
		block:      blk,
		owner:      owner,
		firstBlock: firstBlock,
		board:      gb.Copy(),
	}
	// Materialize all 8 orientations up front; recomputing them for
	// every candidate would dominate the scan.
	for t := 0; t < 2; t++ {
		oriented := blk
		if t == 1 {
			oriented = blk.Transpose()
		}
		for r := 0; r < 4; r++ {
			s.orientations[t][r] = oriented
			oriented = oriented.Rotate90()
		}
	}
	return s
}

// Next returns the next legal placement at or after the cursor, or
// ok=false when the candidate space is exhausted. Exhausted searches
// stay exhausted.
func (s *PlacementSearch) Next() (move.Placement, bool) {
	rows, cols := s.board.Dims()
	total := 2 * 4 * rows * cols
	for i := s.cursor; i < total; i++ {
		col := i % cols
		row := (i / cols) % rows
		rotation := (i / (cols * rows)) % 4
		transposition := (i / (cols * rows * 4)) % 2

		blk := s.orientations[transposition][rotation]
		if s.board.CanPlace(row, col, blk, s.owner, s.firstBlock).Allowed() {
			s.cursor = i + 1
			return move.Placement{
				Block:         s.block,
				Row:           row,
				Col:           col,
				Rotation:      uint8(rotation),
				Transposition: uint8(transposition),
			}, true
		}
	}
	s.cursor = total
	return move.Placement{}, false
}
