// Package cadence runs an action a fixed number of times at a fixed
// interval on a single worker goroutine.
//
// Two pacing strategies are provided:
//   - BusyWait: spins on the monotonic clock until each absolute deadline
//   - Sleep: suspends the worker for the interval after each action
//
// BusyWait never yields the processor and tracks absolute deadlines, so
// loop overhead does not accumulate. Sleep relinquishes the processor;
// the interval is a lower bound and scheduler slack adds up over a run.
//
// Run spawns the worker and blocks until it finishes:
//
//	task := cadence.NewTask("hello busy")
//	trace, err := cadence.Run(task, cadence.NewBusyWait(task.Interval))
package cadence
