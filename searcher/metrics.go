package searcher

import (
	"time"
)

type MoveMetrics struct {
	Step         int
	StartTime    time.Time
	Duration     time.Duration
	Iterations   int
	FullPlayouts int
	Nodes        int // tree size, root included
}

type MetricsCollector interface {
	Start(step int)
	AddFullPlayout()
	AddIteration()
	AddNode()
	Complete() MoveMetrics
}

// Searches are single threaded, so the collector needs no locking.
type metricsCollector struct {
	step         int
	startTime    time.Time
	iterations   int
	fullPlayouts int
	nodes        int
}

func NewMetricsCollector() MetricsCollector {
	return &metricsCollector{}
}

func (m *metricsCollector) Start(step int) {
	*m = metricsCollector{step: step, startTime: time.Now(), nodes: 1}
}

func (m *metricsCollector) AddFullPlayout() {
	m.fullPlayouts++
}

func (m *metricsCollector) AddIteration() {
	m.iterations++
}

func (m *metricsCollector) AddNode() {
	m.nodes++
}

func (m *metricsCollector) Complete() MoveMetrics {
	return MoveMetrics{
		Step:         m.step,
		StartTime:    m.startTime,
		Duration:     time.Since(m.startTime),
		Iterations:   m.iterations,
		FullPlayouts: m.fullPlayouts,
		Nodes:        m.nodes,
	}
}

type noMetricsCollector struct{}

func NewNoMetricsCollector() MetricsCollector {
	return &noMetricsCollector{}
}

func (m *noMetricsCollector) Start(int)             {}
func (m *noMetricsCollector) AddFullPlayout()       {}
func (m *noMetricsCollector) AddIteration()         {}
func (m *noMetricsCollector) AddNode()              {}
func (m *noMetricsCollector) Complete() MoveMetrics { return MoveMetrics{} }
