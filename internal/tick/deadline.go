package tick

import (
	"sync/atomic"
	"time"
)

// DeadlineTicker fires once per absolute deadline on the monotonic clock.
//
// Each time it fires, the next deadline is computed from the previous
// deadline, not from the time the tick was observed. Late observations
// therefore do not push later deadlines back: a loop that overshoots one
// deadline catches up on the next.
//
// Typical performance:
//   - Tick() before the deadline: ~3-5ns (one nanotime read, one load)
type DeadlineTicker struct {
	interval int64 // nanoseconds
	deadline atomic.Int64
}

// NewDeadline creates a DeadlineTicker whose first deadline is now.
// The first call to Tick() fires immediately.
func NewDeadline(interval time.Duration) *DeadlineTicker {
	t := &DeadlineTicker{
		interval: int64(interval),
	}
	t.deadline.Store(nanotime())
	return t
}

// Tick returns true if the monotonic clock has reached the current
// deadline, and advances the deadline by one interval.
//
// Uses a compare-and-swap so concurrent pollers cannot fire the same
// deadline twice.
func (d *DeadlineTicker) Tick() bool {
	next := d.deadline.Load()
	if nanotime() < next {
		return false
	}
	return d.deadline.CompareAndSwap(next, next+d.interval)
}

// Reset moves the next deadline to now.
func (d *DeadlineTicker) Reset() {
	d.deadline.Store(nanotime())
}

// Stop is a no-op for DeadlineTicker (no resources to release).
func (d *DeadlineTicker) Stop() {}

// Deadline returns the next deadline as a monotonic reading (see Now).
func (d *DeadlineTicker) Deadline() int64 {
	return d.deadline.Load()
}

// Interval returns the ticker's interval.
func (d *DeadlineTicker) Interval() time.Duration {
	return time.Duration(d.interval)
}
