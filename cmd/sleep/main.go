// Command sleep prints a line ten times, sleeping 100ms after each one.
//
// Usage:
//
//	go run ./cmd/sleep
package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/randomizedcoder/cadence/internal/cadence"
)

const message = "hello sleepy"

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if err := run(os.Stdout, logger); err != nil {
		logger.Error("sleep failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(w io.Writer, logger *slog.Logger) error {
	task := cadence.NewTask(message)
	_, err := cadence.Run(task, cadence.NewSleep(task.Interval),
		cadence.WithOutput(w),
		cadence.WithLogger(logger),
	)
	return err
}
