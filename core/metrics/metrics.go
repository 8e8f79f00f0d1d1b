package metrics

import (
	"time"

	"github.com/kilianp07/heatcalc/core/model"
)

// ProjectionEvent is emitted once per engine invocation.
type ProjectionEvent struct {
	RunID      string
	Projection *model.Projection
	Time       time.Time
}

// Fuel returns the fuel label of the projected scenario.
func (e ProjectionEvent) Fuel() string {
	if e.Projection == nil {
		return "unknown"
	}
	return e.Projection.Scenario.Fossil.Fuel.String()
}

// ProjectionSink records projection results for observability purposes.
type ProjectionSink interface {
	RecordProjection(ev ProjectionEvent) error
}

// SweepEvent is emitted once per sensitivity sweep.
type SweepEvent struct {
	RunID     string
	Parameter string
	Points    int
	Reached   int
	Time      time.Time
}

// SweepRecorder is implemented by sinks able to record sweep summaries.
type SweepRecorder interface {
	RecordSweep(ev SweepEvent) error
}

// Flusher is implemented by sinks that buffer output until the run ends.
type Flusher interface {
	Flush() error
}

// NopSink implements ProjectionSink with no-op methods.
type NopSink struct{}

func (NopSink) RecordProjection(ProjectionEvent) error { return nil }
func (NopSink) RecordSweep(SweepEvent) error           { return nil }
func (NopSink) Flush() error                           { return nil }
