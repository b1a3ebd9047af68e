package cadence

import (
	"io"
	"log/slog"
	"os"
)

// Option configures a run.
type Option func(*config)

type config struct {
	out    io.Writer
	logger *slog.Logger
}

func buildConfig(opts ...Option) *config {
	cfg := &config{
		out:    os.Stdout,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithOutput sets where lines are written.
// Defaults to os.Stdout, which is unbuffered.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.out = w
		}
	}
}

// WithLogger sets the logger for run lifecycle events.
// If nil, logging is disabled.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
