package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"reversi/engine"
	"reversi/experiments"
	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/meta"
	"reversi/player"
	"reversi/searcher"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type playConfig struct {
	human      game.Color
	opponent   metrics.AgentKind
	iterations int
	cutoff     int
	scale      float64
	seed       uint64
}

func main() {
	mode := flag.String("mode", "play", "play against the computer, or arena to run an experiment")
	color := flag.String("color", "X", "Human's color in play mode, X moves first")
	opponent := flag.String("opponent", string(metrics.MCTSAgent), "Opponent in play mode: mcts or random")
	iterations := flag.Int("iterations", meta.ITERATIONS, "Number of MCTS iterations per move")
	cutoff := flag.Int("cutoff", meta.CUTOFF, "Max number of plies of a rollout")
	scale := flag.Float64("scale", meta.SCALE, "UCB exploration constant")
	seed := flag.Uint64("seed", 0, "Random seed, 0 seeds from the clock")
	configPath := flag.String("config", "", "Arena config (YAML)")
	outDir := flag.String("out", "results", "Arena output directory")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn, error")
	flag.Parse()

	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid log level: %v\n", err)
		os.Exit(2)
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	switch *mode {
	case "play":
		human, err := game.ParseColor(*color)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid -color")
		}
		cfg := playConfig{
			human:      human,
			opponent:   metrics.AgentKind(*opponent),
			iterations: *iterations,
			cutoff:     *cutoff,
			scale:      *scale,
			seed:       *seed,
		}
		err = play(cfg, os.Stdin, os.Stdout)
		if errors.Is(err, player.ErrQuit) {
			fmt.Println("Bye.")
			return
		}
		if err != nil {
			log.Fatal().Err(err).Msg("game aborted")
		}
	case "arena":
		if *configPath == "" {
			log.Fatal().Msg("arena mode needs -config")
		}
		cfg, err := experiments.LoadConfig(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load arena config")
		}
		summaries, err := experiments.Run(cfg, *outDir)
		if err != nil {
			log.Fatal().Err(err).Msg("arena failed")
		}
		for _, s := range summaries {
			fmt.Printf("%d vs %d: %d-%d-%d (win rate %.2f, margin %.1f ± %.1f, truncated %d)\n",
				s.Agents[0], s.Agents[1], s.Wins[0], s.Draws, s.Wins[1], s.WinRate, s.MeanMargin, s.StdDevMargin, s.Truncated)
		}
	default:
		log.Fatal().Msgf("unknown mode %q: want play or arena", *mode)
	}
}

// play runs one interactive game between a human reading from in and
// the configured opponent, drawing the board to out after every turn.
func play(cfg playConfig, in io.Reader, out io.Writer) error {
	human := player.NewHuman(cfg.human, in, out)
	computer, err := newOpponent(cfg)
	if err != nil {
		return err
	}

	black, white := player.Player(human), computer
	if cfg.human == game.White {
		black, white = computer, human
	}

	board := game.NewOthello()
	r := newRenderer(out)
	var hints []game.Action
	if cfg.human == game.Black {
		hints = board.LegalActions(game.Black)
	}
	r.print(r.render(board, nil, hints))

	e := engine.LocalEngine(board, black, white)
	e.OnMove = func(move metrics.MoveMetric, _ game.Board) {
		if move.Passed {
			r.print(fmt.Sprintf("%s (%v) passes.\n", move.Player.Name(), move.Player))
			return
		}
		hints = nil
		if next := move.Player.Opponent(); next == cfg.human {
			hints = board.LegalActions(next)
		}
		r.print(fmt.Sprintf("%s (%v) plays %v\n", move.Player.Name(), move.Player, move.Action))
		r.print(r.render(board, &move.Action, hints))
	}

	gameMetric, _, err := e.Run()
	if err != nil {
		return err
	}

	switch gameMetric.Winner {
	case game.Draw:
		r.print("Draw.\n")
	case game.BlackWins:
		r.print(fmt.Sprintf("%s (%v) wins by %d.\n", game.Black.Name(), game.Black, gameMetric.Margin))
	case game.WhiteWins:
		r.print(fmt.Sprintf("%s (%v) wins by %d.\n", game.White.Name(), game.White, gameMetric.Margin))
	}
	return nil
}

func newOpponent(cfg playConfig) (player.Player, error) {
	color := cfg.human.Opponent()
	switch cfg.opponent {
	case metrics.RandomAgent:
		var rng *rand.Rand
		if cfg.seed != 0 {
			rng = rand.New(rand.NewSource(cfg.seed))
		}
		return player.NewRandom(color, rng), nil
	case metrics.MCTSAgent:
		options := []searcher.Option{
			searcher.WithIterations(cfg.iterations),
			searcher.WithCutoff(cfg.cutoff),
			searcher.WithScale(cfg.scale),
		}
		if cfg.seed != 0 {
			options = append(options, searcher.WithSeed(cfg.seed))
		}
		return player.NewAI(color, searcher.NewMCTS(options...)), nil
	}
	return nil, fmt.Errorf("unknown opponent %q: want mcts or random", cfg.opponent)
}
