package experiments

import (
	"fmt"
	"reversi/engine"
	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/player"
	"reversi/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat"
)

// MatchUpSummary aggregates the games of one matchup. Margins are signed
// from the point of view of Agents[0].
type MatchUpSummary struct {
	Agents       [2]int
	Games        int
	Wins         [2]int
	Draws        int
	Truncated    int
	WinRate      float64 // Agents[0], draws count half
	MeanMargin   float64
	StdDevMargin float64
}

// Run plays every matchup of cfg and stores configs, games and moves as
// CSV files under dir.
func Run(cfg Config, dir string) ([]MatchUpSummary, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	agents := cfg.agentsByID()

	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}
	summaries := make([]MatchUpSummary, 0, len(cfg.MatchUps))

	log.Info().Msgf("starting %s experiment...", cfg.Name)

	for mi, matchup := range cfg.MatchUps {
		config1 := agents[matchup[0]]
		config2 := agents[matchup[1]]

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(cfg.MatchUps), config1, config2)

		margins := make([]float64, 0, cfg.Games)
		summary := MatchUpSummary{Agents: matchup}
		for i := 0; i < cfg.Games; i++ {
			// Alternate the starting agent
			black, white := config1, config2
			if i%2 == 1 {
				black, white = config2, config1
			}

			count++
			gameMetric, moveMetrics, err := runGame(black, white, uint64(count))
			if err != nil {
				return nil, fmt.Errorf("failed to play game %d: %w", count, err)
			}
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Black:      black.ID,
				White:      white.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			margins = append(margins, summary.add(gameMetric, black.ID == config1.ID))
			log.Info().Msgf("completed matchup %d of %d game %d with winner: %v", mi+1, len(cfg.MatchUps), i+1, gameMetric.Winner)
		}
		summary.finish(margins)
		summaries = append(summaries, summary)

		log.Info().Msgf("completed matchup %d of %d: agent %d won %d, agent %d won %d, %d draws, mean margin %.1f (sd %.1f)",
			mi+1, len(cfg.MatchUps), summary.Agents[0], summary.Wins[0], summary.Agents[1], summary.Wins[1],
			summary.Draws, summary.MeanMargin, summary.StdDevMargin)
	}

	log.Info().Msgf("completed %s experiment", cfg.Name)

	writer, err := metrics.NewWriter(dir, cfg.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(cfg.Agents); err != nil {
		return nil, fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return nil, fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return nil, fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored move records in %s", writer.Dir())

	return summaries, nil
}

// add records one game and returns its margin for Agents[0].
func (s *MatchUpSummary) add(gameMetric metrics.GameMetric, firstIsBlack bool) float64 {
	s.Games++
	if gameMetric.Truncated {
		s.Truncated++
	}

	firstColor := game.White
	if firstIsBlack {
		firstColor = game.Black
	}
	switch {
	case gameMetric.Winner == game.Draw:
		s.Draws++
		return 0
	case (gameMetric.Winner == game.BlackWins) == (firstColor == game.Black):
		s.Wins[0]++
		return float64(gameMetric.Margin)
	default:
		s.Wins[1]++
		return -float64(gameMetric.Margin)
	}
}

func (s *MatchUpSummary) finish(margins []float64) {
	if s.Games == 0 {
		return
	}
	s.WinRate = (float64(s.Wins[0]) + 0.5*float64(s.Draws)) / float64(s.Games)
	if len(margins) > 1 {
		s.MeanMargin, s.StdDevMargin = stat.MeanStdDev(margins, nil)
	} else {
		s.MeanMargin = stat.Mean(margins, nil)
	}
}

// runGame executes a single game between two agents
func runGame(black, white metrics.AgentConfig, gameID uint64) (metrics.GameMetric, []metrics.MoveMetric, error) {
	e := engine.LocalEngine(game.NewOthello(), createPlayer(black, game.Black, gameID), createPlayer(white, game.White, gameID))
	return e.Run()
}

func createPlayer(config metrics.AgentConfig, color game.Color, gameID uint64) player.Player {
	var rng *rand.Rand
	if config.Seed != 0 {
		rng = rand.New(rand.NewSource(config.Seed + gameID))
	}

	switch config.Kind {
	case metrics.RandomAgent:
		return player.NewRandom(color, rng)
	case metrics.MCTSAgent:
		options := []searcher.Option{searcher.WithMetrics(), searcher.WithRand(rng)}
		if config.Iterations > 0 {
			options = append(options, searcher.WithIterations(config.Iterations))
		}
		if config.Cutoff > 0 {
			options = append(options, searcher.WithCutoff(config.Cutoff))
		}
		if config.Scale > 0 {
			options = append(options, searcher.WithScale(config.Scale))
		}
		return player.NewAI(color, searcher.NewMCTS(options...))
	}
	panic(fmt.Sprintf("unknown agent kind %q", config.Kind))
}
