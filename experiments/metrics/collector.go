package metrics

import (
	"time"
)

// SearchMetric describes a single decision of a minimax engine
type SearchMetric struct {
	Depth         int
	Pruning       bool
	StartTime     time.Time
	Duration      time.Duration
	Nodes         int
	LeafNodes     int
	InternalNodes int
	Score         float64
}

type MoveMetric struct {
	Step   int
	Player string
	SearchMetric
}

type GameMetric struct {
	StartingPlayer string
	Winner         string // Empty on a draw or an unfinished game
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(depth int, pruning bool)
	Complete(nodes, leafNodes, internalNodes int, score float64) SearchMetric
}

type collector struct {
	depth     int
	pruning   bool
	startTime time.Time
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(depth int, pruning bool) {
	m.startTime = time.Now()
	m.depth = depth
	m.pruning = pruning
}

func (m *collector) Complete(nodes, leafNodes, internalNodes int, score float64) SearchMetric {
	return SearchMetric{
		Depth:         m.depth,
		Pruning:       m.pruning,
		StartTime:     m.startTime,
		Duration:      time.Since(m.startTime),
		Nodes:         nodes,
		LeafNodes:     leafNodes,
		InternalNodes: internalNodes,
		Score:         score,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth int, pruning bool) {}
func (m *dummyCollector) Complete(nodes, leafNodes, internalNodes int, score float64) SearchMetric {
	return SearchMetric{}
}
