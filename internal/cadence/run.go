package cadence

import (
	"log/slog"
	"runtime"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Run performs task on one new worker goroutine, paced by p, and blocks
// until the worker finishes. The calling goroutine does nothing else
// while it waits.
//
// The returned trace covers every action that was started, including
// the one whose write failed.
func Run(task Task, p Pacer, opts ...Option) (*Trace, error) {
	if err := task.Validate(); err != nil {
		return nil, err
	}
	cfg := buildConfig(opts...)

	log := cfg.logger.With(
		slog.String("run_id", uuid.NewString()),
		slog.String("pacer", p.Name()),
	)
	log.Debug("run started",
		slog.Int("count", task.Count),
		slog.Duration("interval", task.Interval),
	)

	trace := &Trace{stamps: make([]int64, 0, task.Count)}

	var g errgroup.Group
	g.Go(func() error {
		// Keep a spinning pacer on one OS thread for the whole run.
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		return task.run(cfg.out, p, trace)
	})
	if err := g.Wait(); err != nil {
		log.Debug("run failed", slog.Int("completed", trace.Len()-1), slog.String("error", err.Error()))
		return trace, err
	}

	log.Debug("run finished",
		slog.Int("completed", trace.Len()),
		slog.Duration("elapsed", trace.Elapsed()),
	)
	return trace, nil
}
