package cadence

import "errors"

// ErrInvalidTask is returned by Run when a task has a non-positive
// count or interval.
var ErrInvalidTask = errors.New("cadence: invalid task")
