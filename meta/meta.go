// meta/meta.go
package meta

// ITERATIONS defines the number of MCTS iterations per move.
const ITERATIONS = 100

// CUTOFF defines the max number of plies of a rollout.
const CUTOFF = 10

// SCALE defines the UCB exploration constant.
const SCALE = 1.0

// MAX_TURNS bounds a game, passes included. A Reversi game needs at most
// 60 moves.
const MAX_TURNS = 200

// GAMES defines the number of games per arena matchup.
const GAMES = 10
