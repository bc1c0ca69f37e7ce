package logging

import (
	"sync/atomic"
	"time"

	"github.com/eunmann/brcagg/pkg/humanfmt"
	"github.com/rs/zerolog"
)

// Tracker emits periodic progress events for a long-running counted phase,
// such as writing rows of a synthetic measurements file.
// It is safe for concurrent use.
type Tracker struct {
	total    int64
	done     atomic.Int64
	start    time.Time
	interval time.Duration
	lastEmit atomic.Int64 // unix nanos of the last emitted event
	log      zerolog.Logger
	phase    string
}

// NewTracker creates a tracker for total items that logs at most once per
// interval. A total of 0 disables percentage reporting.
func NewTracker(phase string, total int64, interval time.Duration, log zerolog.Logger) *Tracker {
	t := &Tracker{
		total:    total,
		start:    time.Now(),
		interval: interval,
		log:      log,
		phase:    phase,
	}
	t.lastEmit.Store(t.start.UnixNano())
	return t
}

// Add records n completed items and emits a progress event if the
// reporting interval has elapsed since the last one.
func (t *Tracker) Add(n int64) {
	done := t.done.Add(n)

	now := time.Now().UnixNano()
	last := t.lastEmit.Load()
	if time.Duration(now-last) < t.interval {
		return
	}
	if !t.lastEmit.CompareAndSwap(last, now) {
		return // another goroutine emitted
	}

	elapsed := time.Duration(now - t.start.UnixNano())
	e := t.log.Info().
		Str("event", "progress").
		Str("phase", t.phase).
		Int64("done", done).
		Str("rate", humanfmt.Rate(done, elapsed))
	if t.total > 0 {
		e = e.Int64("total", t.total).
			Float64("pct", float64(done)*100.0/float64(t.total))
	}
	e.Msg("progress")
}

// Done returns the number of completed items so far.
func (t *Tracker) Done() int64 {
	return t.done.Load()
}

// Elapsed returns time since tracking started.
func (t *Tracker) Elapsed() time.Duration {
	return time.Since(t.start)
}

// Finish emits a final summary event with the overall rate.
func (t *Tracker) Finish(msg string) {
	elapsed := t.Elapsed()
	t.log.Info().
		Str("event", "phase_completed").
		Str("phase", t.phase).
		Int64("done", t.done.Load()).
		Int64("duration_ms", elapsed.Milliseconds()).
		Str("duration_h", humanfmt.Duration(elapsed)).
		Str("rate", humanfmt.Rate(t.done.Load(), elapsed)).
		Msg(msg)
}
