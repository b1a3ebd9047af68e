package cadence

import "time"

// Trace records when each action of a run happened.
//
// Stamps are monotonic clock readings taken immediately before each
// write. A trace is filled by the worker and only read after Run returns.
type Trace struct {
	stamps []int64
	start  int64
	end    int64
}

// Len returns the number of actions that were started.
func (t *Trace) Len() int {
	return len(t.stamps)
}

// Offsets returns each stamp relative to the start of the run.
func (t *Trace) Offsets() []time.Duration {
	out := make([]time.Duration, len(t.stamps))
	for i, s := range t.stamps {
		out[i] = time.Duration(s - t.start)
	}
	return out
}

// Gaps returns the time between successive stamps.
func (t *Trace) Gaps() []time.Duration {
	if len(t.stamps) < 2 {
		return nil
	}
	out := make([]time.Duration, len(t.stamps)-1)
	for i := 1; i < len(t.stamps); i++ {
		out[i-1] = time.Duration(t.stamps[i] - t.stamps[i-1])
	}
	return out
}

// Elapsed returns the duration of the whole run.
func (t *Trace) Elapsed() time.Duration {
	return time.Duration(t.end - t.start)
}
