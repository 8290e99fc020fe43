package metrics

import (
	"chomp/game"
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Duration  time.Duration
	Nodes     int
	ForcedWin bool
}

type MoveMetric struct {
	Step   int
	Player string
	Move   game.Move
	SearchMetric
}

type GameMetric struct {
	ID             string
	StartingPlayer string
	Winner         string
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start()
	AddNode()
	SetForcedWin(value bool)
	Complete() SearchMetric
}

type collector struct {
	startTime time.Time
	nodes     atomic.Int64
	forcedWin atomic.Bool
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start() {
	m.startTime = time.Now()
	m.nodes.Store(0)
	m.forcedWin.Store(false)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) SetForcedWin(value bool) {
	m.forcedWin.Store(value)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Duration:  time.Since(m.startTime),
		Nodes:     int(m.nodes.Load()),
		ForcedWin: m.forcedWin.Load(),
	}
}

type dummyCollector struct {
	forcedWin bool
}

// NewDummyCollector only remembers the search outcome.
func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()                  { m.forcedWin = false }
func (m *dummyCollector) AddNode()                {}
func (m *dummyCollector) SetForcedWin(value bool) { m.forcedWin = value }
func (m *dummyCollector) Complete() SearchMetric  { return SearchMetric{ForcedWin: m.forcedWin} }
