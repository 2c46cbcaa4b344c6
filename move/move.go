// Package move contains the placement type: one oriented copy of a block
// pinned to a board coordinate.
package move

import (
	"fmt"

	"github.com/domino14/corners/block"
)

// A Placement anchors one of the up-to-8 orientations of a block at a
// board coordinate. Orientation is stored symbolically (rotation and
// transposition indices) against the base block, not as a materialized
// shape; Effective resolves it.
type Placement struct {
	Block         block.Block
	Row           int
	Col           int
	Rotation      uint8 // quarter turns clockwise, 0-3
	Transposition uint8 // 0 or 1
}

// Effective returns the oriented block footprint: transposition is
// applied first, then the quarter rotations.
func (p *Placement) Effective() block.Block {
	b := p.Block
	if p.Transposition != 0 {
		b = b.Transpose()
	}
	for i := uint8(0); i < p.Rotation; i++ {
		b = b.Rotate90()
	}
	return b
}

// String provides a string just for debugging purposes.
func (p *Placement) String() string {
	return fmt.Sprintf("<placement row: %d col: %d rot: %d transp: %d cells: %d>",
		p.Row, p.Col, p.Rotation, p.Transposition, p.Block.Cells())
}
