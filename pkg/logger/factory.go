package logger

import (
	"io"
	"log/slog"
	"os"
)

// Option configures a logger built by this package.
type Option func(*options)

type options struct {
	writer io.Writer
	level  slog.Level
	text   bool
}

func defaultOptions() *options {
	return &options{
		writer: os.Stdout,
		level:  slog.LevelInfo,
	}
}

// WithWriter sets the destination of log records.
// Default: os.Stdout.
func WithWriter(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.writer = w
		}
	}
}

// WithLevel sets the minimum level that is written.
// Default: slog.LevelInfo.
func WithLevel(level slog.Level) Option {
	return func(o *options) {
		o.level = level
	}
}

// WithText switches from JSON to the human-readable text format.
func WithText() Option {
	return func(o *options) {
		o.text = true
	}
}

// New creates a structured logger. Records are JSON unless WithText is given.
func New(opts ...Option) *slog.Logger {
	return slog.New(newHandler(opts...))
}

func newHandler(opts ...Option) slog.Handler {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	handlerOpts := &slog.HandlerOptions{Level: o.level}
	if o.text {
		return slog.NewTextHandler(o.writer, handlerOpts)
	}
	return slog.NewJSONHandler(o.writer, handlerOpts)
}
