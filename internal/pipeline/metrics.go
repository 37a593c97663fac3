package pipeline

import (
	"sync"
	"time"
)

// Metrics accumulates per-stage timings for a single pipeline run.
// Each run owns its own Metrics value, so concurrent runs never share
// state.
type Metrics struct {
	mu     sync.Mutex
	start  time.Time
	stages []StageTiming
}

// StageTiming is the recorded duration of one pipeline stage.
type StageTiming struct {
	Stage    string
	Duration time.Duration
}

// NewMetrics starts the overall clock.
func NewMetrics() *Metrics {
	return &Metrics{start: time.Now()}
}

// Track returns a stop function that records the stage duration when
// called. Usage: defer m.Track("gap-analysis")().
func (m *Metrics) Track(stage string) func() {
	begin := time.Now()
	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		m.stages = append(m.stages, StageTiming{
			Stage:    stage,
			Duration: time.Since(begin),
		})
	}
}

// Stages returns the recorded timings in completion order.
func (m *Metrics) Stages() []StageTiming {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]StageTiming, len(m.stages))
	copy(out, m.stages)
	return out
}

// Total is the wall-clock time since the run started.
func (m *Metrics) Total() time.Duration {
	return time.Since(m.start)
}
