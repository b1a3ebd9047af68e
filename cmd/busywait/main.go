// Command busywait prints a line ten times, busy-waiting on the monotonic clock
// until each 100ms deadline.
//
// Usage:
//
//	go run ./cmd/busywait
package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/randomizedcoder/cadence/internal/cadence"
)

const message = "hello busy"

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if err := run(os.Stdout, logger); err != nil {
		logger.Error("busywait failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(w io.Writer, logger *slog.Logger) error {
	task := cadence.NewTask(message)
	_, err := cadence.Run(task, cadence.NewBusyWait(task.Interval),
		cadence.WithOutput(w),
		cadence.WithLogger(logger),
	)
	return err
}
