package searcher

import (
	"math"
	"reversi/game"

	"golang.org/x/exp/rand"
)

// tree is the state of a single move request. It is private to one
// ChooseMove call and discarded afterwards.
type tree struct {
	root    *node
	player  game.Color // the side the whole search plays for
	scale   float64
	cutoff  int
	rng     *rand.Rand
	metrics MetricsCollector
}

func newTree(board game.Board, player game.Color, scale float64, cutoff int, rng *rand.Rand, metrics MetricsCollector) *tree {
	return &tree{
		root:    newRoot(board, player),
		player:  player,
		scale:   scale,
		cutoff:  cutoff,
		rng:     rng,
		metrics: metrics,
	}
}

// descent is the branch taken by one step of the selection walk.
type descent int

const (
	expandLeaf    descent = iota // node has no children yet
	greedyDescend                // follow UCB without expanding
	greedyExpand                 // follow UCB, expand the child if it can grow
)

func (t *tree) nextDescent(n *node) descent {
	if len(n.children) == 0 {
		return expandLeaf
	}
	if t.rng.Float64() < DescendThreshold {
		return greedyDescend
	}
	return greedyExpand
}

// selects walks down from the root and returns the node to roll out: a
// freshly expanded leaf, the fallback of a failed expansion, or the
// terminal node the walk ended on.
func (t *tree) selects() *node {
	n := t.root
	for !game.Terminal(n.state) {
		switch t.nextDescent(n) {
		case expandLeaf:
			return t.expands(n).node
		case greedyDescend:
			p := t.ucb(n, t.scale)
			if p.fallback {
				return p.node
			}
			n = p.node
		case greedyExpand:
			p := t.ucb(n, t.scale)
			if p.fallback {
				return p.node
			}
			n = p.node
			if !n.fullyExpanded() {
				return t.expands(n).node
			}
		}
	}
	return n
}

// expands attaches one child for a random untried action. A node without
// legal actions cannot grow and falls back to its parent.
func (t *tree) expands(n *node) pick {
	actions := n.untried()
	if len(actions) == 0 {
		return fallback(n)
	}

	action := actions[t.rng.Intn(len(actions))]
	state := n.state.Copy()
	state.Apply(action, n.color)
	t.metrics.AddNode()
	return picked(n.addChild(state, action))
}

// ucb returns the child with the best UCB score. Unvisited children win
// outright; ties are broken at random.
func (t *tree) ucb(n *node, scale float64) pick {
	if len(n.children) == 0 {
		return fallback(n)
	}

	var unvisited []*node
	for _, c := range n.children {
		if c.visits == 0 {
			unvisited = append(unvisited, c)
		}
	}
	if len(unvisited) > 0 {
		return picked(unvisited[t.rng.Intn(len(unvisited))])
	}

	policy := newUCB(scale, n.visits)
	best := math.Inf(-1)
	var ties []*node
	for _, c := range n.children {
		score := policy.evaluate(c.rewards, c.visits)
		if score > best {
			best = score
			ties = ties[:0]
		}
		if score == best {
			ties = append(ties, c)
		}
	}
	return picked(ties[t.rng.Intn(len(ties))])
}
