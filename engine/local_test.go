package engine

import (
	"errors"
	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/player"
	"reversi/searcher"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

var _ Engine = (*localEngine)(nil)

type scriptedPlayer struct {
	color  game.Color
	action game.Action
	err    error
	asked  int
}

func (p *scriptedPlayer) Color() game.Color { return p.color }

func (p *scriptedPlayer) FindMove(board game.Board) (game.Action, bool, error) {
	p.asked++
	return p.action, p.err == nil, p.err
}

func random(color game.Color, seed uint64) player.Player {
	return player.NewRandom(color, rand.New(rand.NewSource(seed)))
}

func TestLocalEngineRun(t *testing.T) {
	t.Run("playing random players to the end", func(t *testing.T) {
		board := game.NewOthello()
		e := LocalEngine(board, random(game.Black, 1), random(game.White, 2))
		turns := 0
		e.OnMove = func(metrics.MoveMetric, game.Board) { turns++ }

		gameMetric, moveMetrics, err := e.Run()

		require.NoError(t, err)
		require.True(t, game.Terminal(board), "Game should be played to the end")
		require.False(t, gameMetric.Truncated)
		require.LessOrEqual(t, gameMetric.TotalMoves, 60, "At most 60 squares can be filled")
		require.Equal(t, len(moveMetrics), gameMetric.TotalMoves+gameMetric.Passes)
		require.Equal(t, len(moveMetrics), turns, "OnMove should see every turn")
		require.Equal(t, game.Black, moveMetrics[0].Player, "Black should move first")

		outcome, margin := board.Winner()
		require.Equal(t, outcome, gameMetric.Winner)
		require.Equal(t, margin, gameMetric.Margin)
		require.False(t, gameMetric.EndTime.Before(gameMetric.StartTime))
	})

	t.Run("collecting search metrics", func(t *testing.T) {
		board := game.NewOthello()
		ai := player.NewAI(game.Black, searcher.NewMCTS(searcher.WithIterations(10), searcher.WithSeed(3), searcher.WithMetrics()))
		e := LocalEngine(board, ai, random(game.White, 4))
		e.MaxTurns = 4

		gameMetric, moveMetrics, err := e.Run()

		require.NoError(t, err)
		require.True(t, gameMetric.Truncated, "Game should stop at the turn limit")
		require.Len(t, moveMetrics, 4)
		require.Equal(t, 10, moveMetrics[0].Iterations, "AI moves should carry search metrics")
		require.Equal(t, 0, moveMetrics[1].Iterations, "Random moves have no search metrics")
	})

	t.Run("forcing a legal move", func(t *testing.T) {
		board := game.NewOthello()
		cheater := &scriptedPlayer{color: game.Black, action: game.Action{Row: 0, Col: 0}}
		e := LocalEngine(board, cheater, random(game.White, 1))
		e.MaxTurns = 1

		_, moveMetrics, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, game.NewOthello().LegalActions(game.Black)[0], moveMetrics[0].Action,
			"Invalid move should be replaced by the first legal move")
	})

	t.Run("passing without asking", func(t *testing.T) {
		// Black can play C1 and C3; white never has anything to flank
		board := &game.Othello{}
		board.Set(game.Action{Row: 0, Col: 0}, game.Black)
		board.Set(game.Action{Row: 0, Col: 1}, game.White)
		board.Set(game.Action{Row: 2, Col: 0}, game.Black)
		board.Set(game.Action{Row: 2, Col: 1}, game.White)
		board.Set(game.Action{Row: 7, Col: 7}, game.White)
		white := &scriptedPlayer{color: game.White}
		e := LocalEngine(board, random(game.Black, 1), white)

		gameMetric, moveMetrics, err := e.Run()

		require.NoError(t, err)
		require.Zero(t, white.asked, "White should never be asked")
		require.Len(t, moveMetrics, 3)
		require.True(t, moveMetrics[1].Passed, "White should pass between black's moves")
		require.Equal(t, game.White, moveMetrics[1].Player)
		require.Equal(t, 2, gameMetric.TotalMoves)
		require.Equal(t, 1, gameMetric.Passes)
		require.Equal(t, game.BlackWins, gameMetric.Winner)
		require.Equal(t, 5, gameMetric.Margin)
	})

	t.Run("stopping on a player error", func(t *testing.T) {
		quitter := &scriptedPlayer{color: game.Black, err: player.ErrQuit}
		e := LocalEngine(game.NewOthello(), quitter, random(game.White, 1))

		_, moveMetrics, err := e.Run()

		require.True(t, errors.Is(err, player.ErrQuit))
		require.Empty(t, moveMetrics)
	})

	t.Run("panics on swapped colors", func(t *testing.T) {
		require.Panics(t, func() {
			LocalEngine(game.NewOthello(), random(game.White, 1), random(game.Black, 1))
		})
	})
}
