package player

import (
	"errors"
	"reversi/game"
	"reversi/searcher"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// ErrQuit is returned by a human player who gives up the game.
var ErrQuit = errors.New("player quit")

// Player picks moves for one color. FindMove returns false when the
// color has no legal move.
type Player interface {
	Color() game.Color
	FindMove(board game.Board) (game.Action, bool, error)
}

// Searcher is implemented by players backed by MCTS, so the engine can
// collect their search metrics.
type Searcher interface {
	Metrics() searcher.MoveMetrics
}

type aiPlayer struct {
	color game.Color
	mcts  *searcher.MCTS
}

// NewAI returns a player that asks mcts for every move.
func NewAI(color game.Color, mcts *searcher.MCTS) *aiPlayer {
	return &aiPlayer{color: color, mcts: mcts}
}

func (p *aiPlayer) Color() game.Color {
	return p.color
}

func (p *aiPlayer) FindMove(board game.Board) (game.Action, bool, error) {
	log.Info().Msgf("please wait, %s (%v) is thinking...", p.color.Name(), p.color)
	action, ok := p.mcts.ChooseMove(board, p.color)
	return action, ok, nil
}

func (p *aiPlayer) Metrics() searcher.MoveMetrics {
	return p.mcts.Metrics()
}

type randomPlayer struct {
	color game.Color
	rng   *rand.Rand
}

// NewRandom returns a player that picks a uniformly random legal move.
// A nil rng is seeded from the clock.
func NewRandom(color game.Color, rng *rand.Rand) *randomPlayer {
	if rng == nil {
		rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return &randomPlayer{color: color, rng: rng}
}

func (p *randomPlayer) Color() game.Color {
	return p.color
}

func (p *randomPlayer) FindMove(board game.Board) (game.Action, bool, error) {
	actions := board.LegalActions(p.color)
	if len(actions) == 0 {
		return game.Action{}, false, nil
	}
	return actions[p.rng.Intn(len(actions))], true, nil
}
