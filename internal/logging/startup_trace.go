package logging

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// StartupTrace records milestones from process launch to the first rendered
// frame. It only logs when the logger is at debug level or below.
type StartupTrace struct {
	mu         sync.Mutex
	t0         time.Time
	logger     zerolog.Logger
	milestones []Milestone
	finished   bool
}

// Milestone represents a timing checkpoint during startup.
type Milestone struct {
	Name    string
	Elapsed time.Duration // time since t0
	Delta   time.Duration // time since previous milestone
}

// NewStartupTrace starts a trace at t0.
func NewStartupTrace(logger zerolog.Logger, t0 time.Time) *StartupTrace {
	return &StartupTrace{t0: t0, logger: logger, milestones: make([]Milestone, 0, 8)}
}

// Enabled reports whether milestones are logged.
func (st *StartupTrace) Enabled() bool {
	return st != nil && st.logger.GetLevel() <= zerolog.DebugLevel
}

// Mark records a milestone. Marks after Finish are ignored.
func (st *StartupTrace) Mark(name string) {
	if !st.Enabled() {
		return
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.finished {
		return
	}

	elapsed := time.Since(st.t0)
	var delta time.Duration
	if n := len(st.milestones); n > 0 {
		delta = elapsed - st.milestones[n-1].Elapsed
	}
	m := Milestone{Name: name, Elapsed: elapsed, Delta: delta}
	st.milestones = append(st.milestones, m)

	st.logger.Debug().
		Str("milestone", m.Name).
		Int64("t_ms", m.Elapsed.Milliseconds()).
		Int64("delta_ms", m.Delta.Milliseconds()).
		Msgf("startup_trace: %s (T+%dms)", m.Name, m.Elapsed.Milliseconds())
}

// Milestones returns the recorded milestones.
func (st *StartupTrace) Milestones() []Milestone {
	if st == nil {
		return nil
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	return append([]Milestone(nil), st.milestones...)
}

// Finish emits a one-line summary. Only the first call has an effect.
func (st *StartupTrace) Finish() {
	if !st.Enabled() {
		return
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.finished {
		return
	}
	st.finished = true

	parts := make([]string, 0, len(st.milestones))
	for _, m := range st.milestones {
		parts = append(parts, fmt.Sprintf("%s:%d", m.Name, m.Elapsed.Milliseconds()))
	}
	st.logger.Info().
		Int64("total_ms", time.Since(st.t0).Milliseconds()).
		Str("milestones", strings.Join(parts, ",")).
		Msg("startup_trace: first frame rendered")
}
