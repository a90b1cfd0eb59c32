package searcher

import (
	"reversi/game"

	"golang.org/x/exp/slices"
)

// node owns its board: state is copied on creation and never shared with
// the parent or a sibling.
type node struct {
	state    game.Board
	color    game.Color // side to move from state
	visits   int
	rewards  float64
	parent   *node
	action   game.Action // move that led here, zero for the root
	children []*node
}

func newRoot(board game.Board, color game.Color) *node {
	if !color.Valid() {
		panic("root color must be black or white")
	}
	return &node{
		state:  board.Copy(),
		color:  color,
		visits: 1,
	}
}

func (n *node) addChild(state game.Board, action game.Action) *node {
	child := &node{
		state:  state,
		color:  n.color.Opponent(),
		parent: n,
		action: action,
	}
	n.children = append(n.children, child)
	return child
}

func (n *node) tried(action game.Action) bool {
	return slices.ContainsFunc(n.children, func(c *node) bool { return c.action == action })
}

func (n *node) untried() []game.Action {
	var actions []game.Action
	for _, a := range n.state.LegalActions(n.color) {
		if !n.tried(a) {
			actions = append(actions, a)
		}
	}
	return actions
}

func (n *node) fullyExpanded() bool {
	return len(n.children) == len(n.state.LegalActions(n.color))
}

func (n *node) isRoot() bool {
	return n.parent == nil
}

// pick is what expansion and UCB readout hand back. A fallback pick
// carries the parent of a node that had nothing to offer; it is not a
// new leaf and may be nil at the root.
type pick struct {
	node     *node
	fallback bool
}

func picked(n *node) pick {
	return pick{node: n}
}

func fallback(n *node) pick {
	return pick{node: n.parent, fallback: true}
}
