package searcher

import (
	"sync/atomic"
	"time"
)

type SearchMetrics struct {
	Depth      int
	Goroutines int
	Duration   time.Duration
	Nodes      int64 // States visited, including cutoffs
	Leaves     int64 // States scored by the evaluation function
	Terminals  int64 // States with a winner
}

type MetricsCollector interface {
	Start(depth, goroutines int)
	AddNode()
	AddLeaf()
	AddTerminal()
	Complete() SearchMetrics
}

type metricsCollector struct {
	depth      int
	goroutines int
	startTime  time.Time
	nodes      atomic.Int64
	leaves     atomic.Int64
	terminals  atomic.Int64
}

func NewMetricsCollector() MetricsCollector {
	return &metricsCollector{}
}

func (m *metricsCollector) Start(depth, goroutines int) {
	m.startTime = time.Now()
	m.depth = depth
	m.goroutines = goroutines
	m.nodes.Store(0)
	m.leaves.Store(0)
	m.terminals.Store(0)
}

func (m *metricsCollector) AddNode() {
	m.nodes.Add(1)
}

func (m *metricsCollector) AddLeaf() {
	m.leaves.Add(1)
}

func (m *metricsCollector) AddTerminal() {
	m.terminals.Add(1)
}

func (m *metricsCollector) Complete() SearchMetrics {
	return SearchMetrics{
		Depth:      m.depth,
		Goroutines: m.goroutines,
		Duration:   time.Since(m.startTime),
		Nodes:      m.nodes.Load(),
		Leaves:     m.leaves.Load(),
		Terminals:  m.terminals.Load(),
	}
}

type noMetricsCollector struct{}

func NewNoMetricsCollector() MetricsCollector {
	return &noMetricsCollector{}
}

func (m *noMetricsCollector) Start(depth, goroutines int) {}
func (m *noMetricsCollector) AddNode()                    {}
func (m *noMetricsCollector) AddLeaf()                    {}
func (m *noMetricsCollector) AddTerminal()                {}
func (m *noMetricsCollector) Complete() SearchMetrics     { return SearchMetrics{} }
