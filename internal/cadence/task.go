package cadence

import (
	"fmt"
	"io"
	"time"

	"github.com/randomizedcoder/cadence/internal/tick"
)

// DefaultCount is how many times the demo programs repeat their action.
const DefaultCount = 10

// Task is an action to perform Count times at a fixed cadence.
// The action writes Message and a line terminator to the run's output.
type Task struct {
	Message  string
	Count    int
	Interval time.Duration
}

// NewTask returns a task printing message DefaultCount times,
// tick.DefaultInterval apart.
func NewTask(message string) Task {
	return Task{
		Message:  message,
		Count:    DefaultCount,
		Interval: tick.DefaultInterval,
	}
}

// Validate reports whether the task can be run.
func (t Task) Validate() error {
	if t.Count < 1 {
		return fmt.Errorf("%w: count must be positive, got %d", ErrInvalidTask, t.Count)
	}
	if t.Interval <= 0 {
		return fmt.Errorf("%w: interval must be positive, got %v", ErrInvalidTask, t.Interval)
	}
	return nil
}

// run executes the loop on the calling goroutine, stamping trace
// immediately before each write.
func (t Task) run(w io.Writer, p Pacer, trace *Trace) error {
	line := t.Message + "\n"

	trace.start = tick.Now()
	defer func() { trace.end = tick.Now() }()

	p.Arm()
	for i := 0; i < t.Count; i++ {
		p.Before()
		trace.stamps = append(trace.stamps, tick.Now())
		if _, err := io.WriteString(w, line); err != nil {
			return fmt.Errorf("cadence: write iteration %d: %w", i+1, err)
		}
		p.After()
	}
	return nil
}
