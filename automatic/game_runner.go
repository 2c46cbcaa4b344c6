// Package automatic contains the logic for playing out full automated
// games: computer vs computer, single games or batches.
package automatic

import (
	"fmt"

	"github.com/rs/zerolog/log"

	aiplayer "github.com/domino14/corners/ai/player"
	"github.com/domino14/corners/config"
	"github.com/domino14/corners/game"
)

// GameRunner is the master struct for the automatic game logic. It can
// be reused across games; Init resets it.
type GameRunner struct {
	game     *game.Game
	strategy game.Strategy
	config   *config.Config
	logchan  chan string
	gamesRun int
}

// NewGameRunner instantiates and initializes a game runner. logchan may
// be nil when per-turn logging isn't wanted.
func NewGameRunner(logchan chan string, cfg *config.Config) *GameRunner {
	r := &GameRunner{logchan: logchan, config: cfg}
	r.Init()
	return r
}

// Init sets up a fresh game and the configured strategy.
func (r *GameRunner) Init() {
	r.game = game.NewGame(r.config.BoardRows, r.config.BoardCols, r.config.Players)
	switch r.config.Strategy {
	case "random":
		r.strategy = aiplayer.RandomStrategy{}
	default:
		r.strategy = aiplayer.GreedyStrategy{}
	}
}

// Game returns the current game.
func (r *GameRunner) Game() *game.Game {
	return r.game
}

// playFullGame runs rounds until every player is eliminated, logging one
// CSV line per surviving player per turn if a logchan is attached.
func (r *GameRunner) playFullGame() {
	r.Init()
	r.gamesRun++
	for r.game.Playing() {
		for _, p := range r.game.Players() {
			if r.game.Eliminated(p.ID) {
				continue
			}
			played := r.game.PlayTurn(r.strategy, p.ID)
			if r.logchan != nil {
				r.logchan <- fmt.Sprintf("%d,%d,%d,%d,%v\n",
					r.gamesRun, r.game.Turn(), p.ID, r.game.PointsFor(p.ID), played)
			}
		}
		r.game.NextRound()
	}
	for _, p := range r.game.Players() {
		log.Debug().Uint8("player", uint8(p.ID)).
			Int("score", r.game.PointsFor(p.ID)).Msg("game over")
	}
}
