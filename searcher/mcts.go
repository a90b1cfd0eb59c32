package searcher

import (
	"reversi/game"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(mcts *MCTS)

type MCTS struct {
	iterations int
	scale      float64
	cutoff     int
	rng        *rand.Rand
	metrics    MetricsCollector
	step       int
	last       MoveMetrics
}

func WithIterations(iterations int) Option {
	return func(m *MCTS) {
		if iterations > 0 {
			m.iterations = iterations
		}
	}
}

func WithScale(scale float64) Option {
	return func(m *MCTS) {
		if scale >= 0 {
			m.scale = scale
		}
	}
}

func WithCutoff(depth int) Option {
	return func(m *MCTS) {
		if depth > 0 {
			m.cutoff = depth
		}
	}
}

// WithSeed makes the search reproducible for a given input.
func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.rng = rand.New(rand.NewSource(seed))
	}
}

func WithRand(rng *rand.Rand) Option {
	return func(m *MCTS) {
		if rng != nil {
			m.rng = rng
		}
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = NewMetricsCollector()
	}
}

func NewMCTS(options ...Option) *MCTS {
	m := &MCTS{ // Default values
		iterations: DefaultIterations,
		scale:      DefaultScale,
		cutoff:     DefaultCutoff,
		metrics:    NewNoMetricsCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return m
}

// ChooseMove searches from board for color and returns the best action.
// It returns false when color has no legal action. The result is not
// deterministic unless a seed is given.
func (m *MCTS) ChooseMove(board game.Board, color game.Color) (game.Action, bool) {
	log.Debug().Msgf("step %d: %s (%v) is thinking...", m.step, color.Name(), color)
	m.step++

	if len(board.LegalActions(color)) == 0 {
		log.Debug().Msgf("%v has no legal move", color)
		return game.Action{}, false
	}

	m.metrics.Start(m.step)
	t := newTree(board, color, m.scale, m.cutoff, m.rng, m.metrics)
	for i := 0; i < m.iterations; i++ {
		t.simulate()
		m.metrics.AddIteration()
	}
	m.last = m.metrics.Complete()

	best := t.ucb(t.root, 0)
	log.Debug().Msgf("%v plays %v after %d iterations (root visits %d, children %d)",
		color, best.node.action, m.iterations, t.root.visits, len(t.root.children))
	return best.node.action, true
}

// Step is the number of move requests served so far.
func (m *MCTS) Step() int {
	return m.step
}

// Metrics returns the metrics of the last move request. Empty unless
// the searcher was built WithMetrics.
func (m *MCTS) Metrics() MoveMetrics {
	return m.last
}

func (t *tree) simulate() {
	leaf := t.selects()
	reward := t.rollout(leaf)
	t.backup(leaf, reward)
}

// rollout plays at most cutoff random plies from n on a scratch board
// and scores whatever position it reaches from the player's side.
func (t *tree) rollout(n *node) float64 {
	board := n.state.Copy()
	color := n.color
	for ply := 0; ply < t.cutoff && !game.Terminal(board); ply++ {
		actions := board.LegalActions(color)
		if len(actions) == 0 {
			// Not terminal, so the other side can move
			color = color.Opponent()
			actions = board.LegalActions(color)
		}
		board.Apply(actions[t.rng.Intn(len(actions))], color)
		color = color.Opponent()
	}

	if game.Terminal(board) {
		t.metrics.AddFullPlayout()
	}
	return reward(board, t.player)
}

// reward maps the board outcome to a score where positive is good for
// player: draw 0, win WinBonus plus the margin, loss the negation.
func reward(board game.Board, player game.Color) float64 {
	outcome, diff := board.Winner()
	var r float64
	switch outcome {
	case game.Draw:
		return 0
	case game.WhiteWins:
		r = WinBonus + float64(diff)
	case game.BlackWins:
		r = -(WinBonus + float64(diff))
	default:
		panic("unknown outcome")
	}

	if player == game.Black {
		r = -r
	}
	return r
}

// backup credits every strict ancestor of n with a visit. An ancestor's
// reward is signed by the color of its own parent: added when that
// parent is the player, subtracted otherwise. The root has no parent so
// only its visits change, and n itself is left untouched.
func (t *tree) backup(n *node, reward float64) {
	for !n.isRoot() {
		a := n.parent
		a.visits++
		if !a.isRoot() {
			if a.parent.color == t.player {
				a.rewards += reward
			} else {
				a.rewards -= reward
			}
		}
		n = a
	}
}
