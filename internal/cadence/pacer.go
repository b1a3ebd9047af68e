package cadence

import (
	"time"

	"github.com/randomizedcoder/cadence/internal/tick"
)

// Pacer decides how the worker waits between actions.
//
// All methods are called from the worker goroutine only.
type Pacer interface {
	// Name identifies the strategy in logs.
	Name() string

	// Arm is called once before the first iteration.
	Arm()

	// Before is called before each action.
	Before()

	// After is called after each action.
	After()
}

// BusyWait spins on the monotonic clock until each deadline.
//
// The first deadline is the moment Arm is called; each later deadline is
// the previous one plus the interval. The worker is never suspended.
type BusyWait struct {
	interval time.Duration
	ticker   *tick.DeadlineTicker
}

// NewBusyWait creates a BusyWait pacer with the given interval.
func NewBusyWait(interval time.Duration) *BusyWait {
	return &BusyWait{interval: interval}
}

// Name returns "busy".
func (b *BusyWait) Name() string { return "busy" }

// Arm sets the first deadline to now.
func (b *BusyWait) Arm() {
	b.ticker = tick.NewDeadline(b.interval)
}

// Before spins until the current deadline, then advances it.
func (b *BusyWait) Before() {
	tick.Spin(b.ticker)
}

// After is a no-op for BusyWait.
func (b *BusyWait) After() {}

// Sleep suspends the worker for the interval after every action,
// including the last one.
type Sleep struct {
	interval time.Duration
}

// NewSleep creates a Sleep pacer with the given interval.
func NewSleep(interval time.Duration) *Sleep {
	return &Sleep{interval: interval}
}

// Name returns "sleep".
func (s *Sleep) Name() string { return "sleep" }

// Arm is a no-op for Sleep.
func (s *Sleep) Arm() {}

// Before is a no-op for Sleep.
func (s *Sleep) Before() {}

// After yields the worker to the scheduler for at least the interval.
func (s *Sleep) After() {
	time.Sleep(s.interval)
}
