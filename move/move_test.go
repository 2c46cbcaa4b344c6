package move

import (
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/corners/block"
)

func TestEffective(t *testing.T) {
	is := is.New(t)

	base, err := block.Parse("#  \n###")
	is.NoErr(err)

	p := Placement{Block: base, Row: 2, Col: 3}
	is.True(p.Effective().Equal(base))

	p.Rotation = 2
	twice, err := block.Parse("###\n  #")
	is.NoErr(err)
	is.True(p.Effective().Equal(twice))

	// Transposition applies before rotation.
	p.Rotation = 1
	p.Transposition = 1
	is.True(p.Effective().Equal(base.Transpose().Rotate90()))
}

func TestString(t *testing.T) {
	is := is.New(t)

	base, err := block.Parse("##")
	is.NoErr(err)
	p := Placement{Block: base, Row: 1, Col: 2, Rotation: 3, Transposition: 1}
	is.Equal(p.String(), "<placement row: 1 col: 2 rot: 3 transp: 1 cells: 2>")
}
