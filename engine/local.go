package engine

import (
	"fmt"
	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/meta"
	"reversi/player"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

type localEngine struct {
	Board    game.Board
	Players  [2]player.Player // indexed by color
	MaxTurns int
	// OnMove is called after every turn, passes included
	OnMove func(move metrics.MoveMetric, board game.Board)
}

// LocalEngine plays black against white on board. Black moves first.
func LocalEngine(board game.Board, black, white player.Player) *localEngine {
	if black.Color() != game.Black || white.Color() != game.White {
		panic(fmt.Sprintf("players have colors %v and %v, want X and O", black.Color(), white.Color()))
	}
	return &localEngine{
		Board:    board,
		Players:  [2]player.Player{game.Black: black, game.White: white},
		MaxTurns: meta.MAX_TURNS,
	}
}

// Run executes the entire game loop. A side without a legal move passes
// without being asked. Errors from a player stop the game and are
// returned as is.
func (e *localEngine) Run() (metrics.GameMetric, []metrics.MoveMetric, error) {
	color := game.Black
	gameMetric := metrics.GameMetric{StartingPlayer: color, StartTime: time.Now()}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("%s (%v) is starting", color.Name(), color)

	turn := 1
	for ; !game.Terminal(e.Board) && turn <= e.MaxTurns; turn++ {
		move, err := e.play(turn, color)
		if err != nil {
			e.complete(&gameMetric)
			return gameMetric, moveMetrics, err
		}

		if move.Passed {
			gameMetric.Passes++
		} else {
			gameMetric.TotalMoves++
		}
		moveMetrics = append(moveMetrics, move)
		if e.OnMove != nil {
			e.OnMove(move, e.Board)
		}
		color = color.Opponent()
	}

	e.complete(&gameMetric)
	if gameMetric.Truncated {
		log.Warn().Msgf("stopped after %d turns without a winner", e.MaxTurns)
	} else {
		log.Info().Msgf("game over: %v by %d", gameMetric.Winner, gameMetric.Margin)
	}
	return gameMetric, moveMetrics, nil
}

func (e *localEngine) play(turn int, color game.Color) (metrics.MoveMetric, error) {
	move := metrics.MoveMetric{Turn: turn, Player: color}

	legal := e.Board.LegalActions(color)
	if len(legal) == 0 {
		log.Info().Msgf("%s (%v) has no legal move and passes", color.Name(), color)
		move.Passed = true
		return move, nil
	}

	p := e.Players[color]
	action, ok, err := p.FindMove(e.Board)
	if err != nil {
		return move, err
	}
	if !ok || !slices.Contains(legal, action) {
		log.Warn().Msgf("%v returned an invalid move %v => forcing %v", color, action, legal[0])
		action = legal[0]
	}

	e.Board.Apply(action, color)
	move.Action = action
	if s, ok := p.(player.Searcher); ok {
		move.MoveMetrics = s.Metrics()
	}
	log.Debug().Msgf("turn %d: %v plays %v", turn, color, action)
	return move, nil
}

func (e *localEngine) complete(gameMetric *metrics.GameMetric) {
	gameMetric.Winner, gameMetric.Margin = e.Board.Winner()
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.Truncated = !game.Terminal(e.Board)
}
