package engine

import "reversi/experiments/metrics"

type Engine interface {
	// Run plays the game until neither side can move or the turn limit is reached
	Run() (gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
