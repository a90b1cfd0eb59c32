package metrics

import (
	"reversi/game"
	"reversi/searcher"
	"time"
)

type AgentKind string

const (
	MCTSAgent   AgentKind = "mcts"
	RandomAgent AgentKind = "random"
)

type AgentConfig struct {
	ID         int       `yaml:"id"`
	Kind       AgentKind `yaml:"kind"`
	Iterations int       `yaml:"iterations"`
	Cutoff     int       `yaml:"cutoff"`
	Scale      float64   `yaml:"scale"`
	Seed       uint64    `yaml:"seed"`
}

type MoveMetric struct {
	Turn   int
	Player game.Color
	Action game.Action
	Passed bool
	searcher.MoveMetrics
}

type GameMetric struct {
	StartingPlayer game.Color
	Winner         game.Outcome
	Margin         int // disc difference, never negative
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
	Passes         int
	Truncated      bool // stopped at the turn limit
}
