// Package game holds the turn-by-turn bookkeeping around the rule
// engine: player inventories, elimination, and scoring.
package game

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/domino14/corners/block"
	"github.com/domino14/corners/board"
	"github.com/domino14/corners/move"
)

// A Strategy selects a placement for the identified player, or returns
// nil when no legal placement exists for any of their remaining blocks.
type Strategy interface {
	Place(b *board.GameBoard, playerID board.CellOwner, players []Player, firstBlock bool) *move.Placement
}

// A Game owns the authoritative board and the roster of players.
type Game struct {
	board      *board.GameBoard
	players    []Player
	turn       int
	eliminated map[board.CellOwner]bool
	placed     map[board.CellOwner]int
}

// NewGame sets up a board of the given size and numPlayers seats, each
// with the full default block set. Player ids are 1..numPlayers.
func NewGame(rows, cols, numPlayers int) *Game {
	g := &Game{
		board:      board.NewBoard(rows, cols),
		eliminated: make(map[board.CellOwner]bool),
		placed:     make(map[board.CellOwner]int),
	}
	for id := 1; id <= numPlayers; id++ {
		g.players = append(g.players, Player{
			ID:     board.CellOwner(id),
			Blocks: block.DefaultSet(),
		})
	}
	return g
}

// Board returns the authoritative board. Searches copy it; only the
// game mutates it.
func (g *Game) Board() *board.GameBoard {
	return g.board
}

// Players returns the seat roster.
func (g *Game) Players() []Player {
	return g.players
}

// Turn returns the number of completed rounds.
func (g *Game) Turn() int {
	return g.turn
}

// Playing reports whether any player can still act.
func (g *Game) Playing() bool {
	return len(g.eliminated) < len(g.players)
}

// Eliminated reports whether the player has been knocked out.
func (g *Game) Eliminated(id board.CellOwner) bool {
	return g.eliminated[id]
}

// PointsFor returns the player's penalty score: unplayed cells.
func (g *Game) PointsFor(id board.CellOwner) int {
	for i := range g.players {
		if g.players[i].ID == id {
			return g.players[i].UnplayedCells()
		}
	}
	return 0
}

// PlayTurn asks the strategy for a placement for one player and applies
// it: the consumed block leaves the inventory and the board gets the
// effective footprint. A nil placement eliminates the player. Returns
// false once the player is out.
func (g *Game) PlayTurn(s Strategy, id board.CellOwner) bool {
	if g.eliminated[id] {
		return false
	}
	firstBlock := g.placed[id] == 0
	placement := s.Place(g.board, id, g.players, firstBlock)
	if placement == nil {
		g.eliminated[id] = true
		log.Debug().Uint8("player", uint8(id)).Int("turn", g.turn).Msg("player eliminated")
		return false
	}
	if err := g.applyPlacement(id, placement); err != nil {
		// A strategy handing back a block the player doesn't own is a
		// bug in the strategy, not a game state we can reach legally.
		panic(err)
	}
	return true
}

// PlayRound gives every remaining player one turn, in seat order, and
// advances the round counter.
func (g *Game) PlayRound(s Strategy) {
	for i := range g.players {
		g.PlayTurn(s, g.players[i].ID)
	}
	g.NextRound()
}

// NextRound advances the round counter. PlayRound calls it; callers
// driving turns one player at a time call it themselves.
func (g *Game) NextRound() {
	g.turn++
}

// ApplyPlacement validates nothing beyond inventory ownership; callers
// (a human UI or a strategy) must have checked legality with CanPlace.
func (g *Game) ApplyPlacement(id board.CellOwner, placement *move.Placement) error {
	if g.eliminated[id] {
		return fmt.Errorf("player %d is eliminated", id)
	}
	return g.applyPlacement(id, placement)
}

func (g *Game) applyPlacement(id board.CellOwner, placement *move.Placement) error {
	var player *Player
	for i := range g.players {
		if g.players[i].ID == id {
			player = &g.players[i]
			break
		}
	}
	if player == nil {
		return fmt.Errorf("no player with id %d", id)
	}
	if !player.removeBlock(placement.Block) {
		return fmt.Errorf("player %d does not hold block:\n%v", id, placement.Block)
	}
	g.board.Place(placement.Row, placement.Col, placement.Effective(), id)
	g.placed[id]++
	log.Debug().Uint8("player", uint8(id)).Int("turn", g.turn).
		Str("placement", placement.String()).Msg("placed block")
	return nil
}
