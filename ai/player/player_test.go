package player

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domino14/corners/block"
	"github.com/domino14/corners/board"
	"github.com/domino14/corners/game"
)

func newRoster(ids ...board.CellOwner) []game.Player {
	players := make([]game.Player, len(ids))
	for i, id := range ids {
		players[i] = game.Player{ID: id, Blocks: block.DefaultSet()}
	}
	return players
}

func TestGreedyOpensWithLargestBlock(t *testing.T) {
	gb := board.NewBoard(20, 20)
	players := newRoster(1, 2)

	p := GreedyStrategy{}.Place(gb, 1, players, true)
	require.NotNil(t, p)

	// The first pentomino in catalog order is the 1x5 bar; its first
	// legal first-move candidate covers the top-left corner.
	bar, err := block.Parse("#####")
	require.NoError(t, err)
	assert.True(t, p.Block.Equal(bar))
	assert.Equal(t, 0, p.Row)
	assert.Equal(t, 0, p.Col)
	assert.Equal(t, uint8(0), p.Rotation)
	assert.Equal(t, uint8(0), p.Transposition)
}

func TestGreedyDeterminism(t *testing.T) {
	gb := board.NewBoard(20, 20)
	players := newRoster(1, 2, 3, 4)

	first := GreedyStrategy{}.Place(gb, 3, players, true)
	require.NotNil(t, first)
	for i := 0; i < 5; i++ {
		again := GreedyStrategy{}.Place(gb, 3, players, true)
		require.NotNil(t, again)
		assert.Equal(t, first, again)
	}
}

func TestGreedyPlacementIsLegal(t *testing.T) {
	gb := board.NewBoard(20, 20)
	players := newRoster(1, 2)

	// Seed the board with both players' openers, then ask for a
	// follow-up and verify it against the rule engine.
	for _, id := range []board.CellOwner{1, 2} {
		p := GreedyStrategy{}.Place(gb, id, players, true)
		require.NotNil(t, p)
		gb.Place(p.Row, p.Col, p.Effective(), id)
	}

	p := GreedyStrategy{}.Place(gb, 1, players, false)
	require.NotNil(t, p)
	assert.True(t, gb.CanPlace(p.Row, p.Col, p.Effective(), 1, false).Allowed())
}

func TestGreedyUnknownPlayer(t *testing.T) {
	gb := board.NewBoard(20, 20)
	players := newRoster(1, 2)

	assert.Nil(t, GreedyStrategy{}.Place(gb, 9, players, true))
}

func TestGreedyElimination(t *testing.T) {
	// Board fully owned by player 2: player 1 can overlap nothing.
	gb := board.NewBoard(4, 4)
	full, err := block.Parse("####\n####\n####\n####")
	require.NoError(t, err)
	gb.Place(0, 0, full, 2)

	players := newRoster(1, 2)
	assert.Nil(t, GreedyStrategy{}.Place(gb, 1, players, true))
	assert.Nil(t, GreedyStrategy{}.Place(gb, 1, players, false))
}

func TestRandomPlacementIsLegal(t *testing.T) {
	gb := board.NewBoard(20, 20)
	players := newRoster(1, 2)

	for i := 0; i < 10; i++ {
		p := RandomStrategy{}.Place(gb, 1, players, true)
		require.NotNil(t, p)
		assert.True(t, gb.CanPlace(p.Row, p.Col, p.Effective(), 1, true).Allowed())
		// Random choice still respects the greedy size ordering.
		assert.Equal(t, 5, p.Block.Cells())
	}
}

func TestRandomElimination(t *testing.T) {
	gb := board.NewBoard(4, 4)
	full, err := block.Parse("####\n####\n####\n####")
	require.NoError(t, err)
	gb.Place(0, 0, full, 2)

	players := newRoster(1, 2)
	assert.Nil(t, RandomStrategy{}.Place(gb, 1, players, true))
}
