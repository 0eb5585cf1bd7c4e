package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Depth       int
	Duration    time.Duration
	Nodes       int
	Cutoffs     int
	DeadlineHit bool
}

type MoveMetric struct {
	Step      int
	Player    int // Player number
	Agent     string
	StateHash uint64
	SearchMetric
}

type GameMetric struct {
	Game           string
	StartingPlayer int // Player number
	Winner         int // Player number, -1 when nobody won
	Draw           bool
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(depth int)
	AddNode()
	AddCutoff()
	SetDeadlineHit()
	Complete() SearchMetric
}

type collector struct {
	depth       int
	startTime   time.Time
	nodes       atomic.Int32
	cutoffs     atomic.Int32
	deadlineHit atomic.Bool
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(depth int) {
	m.startTime = time.Now()
	m.depth = depth
	m.nodes.Store(0)
	m.cutoffs.Store(0)
	m.deadlineHit.Store(false)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) SetDeadlineHit() {
	m.deadlineHit.Store(true)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Depth:       m.depth,
		Duration:    time.Since(m.startTime),
		Nodes:       int(m.nodes.Load()),
		Cutoffs:     int(m.cutoffs.Load()),
		DeadlineHit: m.deadlineHit.Load(),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth int)        {}
func (m *dummyCollector) AddNode()               {}
func (m *dummyCollector) AddCutoff()             {}
func (m *dummyCollector) SetDeadlineHit()        {}
func (m *dummyCollector) Complete() SearchMetric { return SearchMetric{} }
