// Package block contains the polyomino piece representation and its
// geometric transforms, plus the standard 21-piece catalog.
package block

import (
	"errors"
	"strings"
)

var (
	// ErrDimensionMismatch is returned when a shape text has rows of
	// unequal length.
	ErrDimensionMismatch = errors.New("block rows have unequal lengths")
	// ErrEmptyBlock is returned when a shape text marks no cells at all.
	ErrEmptyBlock = errors.New("block has no occupied cells")
)

// A Block is an immutable polyomino shape on a rectangular boolean grid.
// Transforms return new Blocks; a Block is never mutated after Parse.
type Block struct {
	rows  int
	cols  int
	cells []bool // row-major
}

// Parse builds a Block from a shape text: one line per row, '#' marks an
// occupied cell, any other character an empty one. All rows must have the
// same length and at least one cell must be occupied.
func Parse(text string) (Block, error) {
	lines := strings.Split(text, "\n")
	cols := len(lines[0])
	for _, line := range lines[1:] {
		if len(line) != cols {
			return Block{}, ErrDimensionMismatch
		}
	}
	b := Block{
		rows:  len(lines),
		cols:  cols,
		cells: make([]bool, len(lines)*cols),
	}
	marked := 0
	for r, line := range lines {
		for c, ch := range line {
			if ch == '#' {
				b.cells[r*cols+c] = true
				marked++
			}
		}
	}
	if marked == 0 {
		return Block{}, ErrEmptyBlock
	}
	return b, nil
}

func mustParse(text string) Block {
	b, err := Parse(text)
	if err != nil {
		panic("bad catalog shape: " + err.Error())
	}
	return b
}

// NumRows returns the height of the block's bounding grid.
func (b Block) NumRows() int {
	return b.rows
}

// NumCols returns the width of the block's bounding grid.
func (b Block) NumCols() int {
	return b.cols
}

// CellAt reports whether the cell at (row, col) is part of the shape.
// Out-of-range coordinates are a programming error; callers must bound
// with NumRows/NumCols.
func (b Block) CellAt(row, col int) bool {
	if row < 0 || row >= b.rows || col < 0 || col >= b.cols {
		panic("block cell access out of range")
	}
	return b.cells[row*b.cols+col]
}

// Cells returns the number of occupied cells. It drives the greedy
// strategy's ordering and the end-of-game penalty score.
func (b Block) Cells() int {
	n := 0
	for _, c := range b.cells {
		if c {
			n++
		}
	}
	return n
}

// Transpose returns the block reflected across its main diagonal.
func (b Block) Transpose() Block {
	t := Block{
		rows:  b.cols,
		cols:  b.rows,
		cells: make([]bool, len(b.cells)),
	}
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			t.cells[c*t.cols+r] = b.cells[r*b.cols+c]
		}
	}
	return t
}

// Rotate90 returns the block rotated a quarter turn clockwise: a
// transposition followed by reversing each row. Four applications are
// the identity.
func (b Block) Rotate90() Block {
	t := b.Transpose()
	for r := 0; r < t.rows; r++ {
		row := t.cells[r*t.cols : (r+1)*t.cols]
		for i, j := 0, len(row)-1; i < j; i, j = i+1, j-1 {
			row[i], row[j] = row[j], row[i]
		}
	}
	return t
}

// Equal reports whether two blocks have identical dimensions and cells.
func (b Block) Equal(other Block) bool {
	if b.rows != other.rows || b.cols != other.cols {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// String renders the shape for debugging, '#' for occupied, '_' for empty.
func (b Block) String() string {
	var sb strings.Builder
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			if b.cells[r*b.cols+c] {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('_')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
