// Package tick provides monotonic deadline primitives for fixed-cadence loops.
//
// The package offers:
//   - DeadlineTicker: absolute deadlines on the runtime monotonic clock,
//     each advanced from the previous target rather than from "now"
//   - Spin: a busy-wait loop that polls a Ticker without suspending
//
// Deadlines are read from runtime.nanotime, which never moves backward
// and is unaffected by wall clock adjustments.
package tick

import "time"

// Ticker signals when a deadline has been reached.
//
// Implementations are safe for concurrent use from multiple goroutines,
// though typically only one goroutine polls Tick() in a hot loop.
type Ticker interface {
	// Tick returns true if the current deadline has passed.
	// This is a non-blocking check.
	Tick() bool

	// Reset re-arms the ticker so the next deadline is now.
	Reset()

	// Stop releases any resources held by the ticker.
	// After Stop, the ticker should not be used.
	Stop()
}

// DefaultInterval is the cadence used by the demo programs.
const DefaultInterval = 100 * time.Millisecond

// Spin polls t until it ticks, never yielding the processor.
func Spin(t Ticker) {
	for !t.Tick() {
	}
}
