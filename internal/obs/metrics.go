// Package obs collects lightweight counters for the pipeline.
package obs

import "sync/atomic"

// Stage identifies a pipeline stage for counting.
type Stage uint8

const (
	StageTrades Stage = iota
	StagePositions
	StageRisk
	StagePrices
	StageStreams
	StageBooks
	StageExecutions
	StageInquiries
	stageCount
)

var stageNames = [stageCount]string{
	"trades", "positions", "risk", "prices",
	"streams", "books", "executions", "inquiries",
}

func (s Stage) String() string {
	if int(s) < len(stageNames) {
		return stageNames[s]
	}
	return "unknown"
}

// Metrics counts events per stage plus listener failures. Counters
// are atomic so snapshots can be read outside the pipeline thread.
type Metrics struct {
	events         [stageCount]uint64
	listenerErrors uint64
}

// NewMetrics creates zeroed metrics.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// IncEvent counts one event through a stage.
func (m *Metrics) IncEvent(stage Stage) {
	if stage < stageCount {
		atomic.AddUint64(&m.events[stage], 1)
	}
}

// IncListenerError counts one failed listener notification.
func (m *Metrics) IncListenerError() {
	atomic.AddUint64(&m.listenerErrors, 1)
}

// Snapshot is a point-in-time view of the counters.
type Snapshot struct {
	Events         map[string]uint64
	ListenerErrors uint64
}

// Snapshot reads the counters.
func (m *Metrics) Snapshot() Snapshot {
	events := make(map[string]uint64, int(stageCount))
	for s := Stage(0); s < stageCount; s++ {
		events[s.String()] = atomic.LoadUint64(&m.events[s])
	}
	return Snapshot{
		Events:         events,
		ListenerErrors: atomic.LoadUint64(&m.listenerErrors),
	}
}

// Events returns the count for one stage.
func (m *Metrics) Events(stage Stage) uint64 {
	if stage >= stageCount {
		return 0
	}
	return atomic.LoadUint64(&m.events[stage])
}
