// Package board contains the cell-ownership grid, the placement-legality
// rule engine, and the brute-force placement search.
package board

import (
	"fmt"
	"strings"

	"github.com/domino14/corners/block"
)

// A CellOwner marks who owns a board cell. FreeCell means nobody does.
type CellOwner uint8

// FreeCell is the marker for an unowned cell.
const FreeCell CellOwner = 0

// A GameBoard is a mutable grid of cell owners. Dimensions are fixed at
// construction; a cell set to an owner is never reset.
type GameBoard struct {
	rows  int
	cols  int
	cells [][]CellOwner
}

// NewBoard makes a board of the given dimensions with all cells free.
func NewBoard(rows, cols int) *GameBoard {
	cells := make([][]CellOwner, rows)
	for r := range cells {
		cells[r] = make([]CellOwner, cols)
	}
	return &GameBoard{rows: rows, cols: cols, cells: cells}
}

// Dims returns the board's row and column counts.
func (gb *GameBoard) Dims() (int, int) {
	return gb.rows, gb.cols
}

// At returns the owner of the cell at (row, col), or FreeCell for any
// out-of-range coordinate. The leniency lets the adjacency checks probe
// neighbors near the edges without bounds arithmetic.
func (gb *GameBoard) At(row, col int) CellOwner {
	if row < 0 || row >= gb.rows || col < 0 || col >= gb.cols {
		return FreeCell
	}
	return gb.cells[row][col]
}

// FreeAt reports whether the cell at (row, col) is on the board and
// unowned. Out-of-range coordinates are not free, which is what makes
// the overlap check reject footprints that run off the grid.
func (gb *GameBoard) FreeAt(row, col int) bool {
	if row < 0 || row >= gb.rows || col < 0 || col >= gb.cols {
		return false
	}
	return gb.cells[row][col] == FreeCell
}

// Copy returns an independent deep copy of the board.
func (gb *GameBoard) Copy() *GameBoard {
	c := NewBoard(gb.rows, gb.cols)
	for r := range gb.cells {
		copy(c.cells[r], gb.cells[r])
	}
	return c
}

// Place unconditionally writes owner into every cell under an occupied
// block cell. It does not verify legality; callers check with CanPlace
// first. Keeping the mutator trusting lets the search probe candidates
// against snapshots without ever touching the authoritative board.
func (gb *GameBoard) Place(row, col int, blk block.Block, owner CellOwner) {
	for br := 0; br < blk.NumRows(); br++ {
		for bc := 0; bc < blk.NumCols(); bc++ {
			if blk.CellAt(br, bc) {
				gb.cells[row+br][col+bc] = owner
			}
		}
	}
}

// ToDisplayText renders the board for debugging; '.' is a free cell,
// owners print as their digit.
func (gb *GameBoard) ToDisplayText() string {
	var sb strings.Builder
	for r := 0; r < gb.rows; r++ {
		for c := 0; c < gb.cols; c++ {
			if gb.cells[r][c] == FreeCell {
				sb.WriteByte('.')
			} else {
				sb.WriteString(fmt.Sprintf("%d", gb.cells[r][c]))
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
