package logger

import (
	"context"
	"log/slog"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

// SentryConfig holds Sentry integration configuration.
type SentryConfig struct {
	DSN         string `env:"SENTRY_DSN"`
	Environment string `env:"SENTRY_ENVIRONMENT" envDefault:"production"`
	// MinLevel selects what is forwarded: slog.LevelWarn forwards lenient
	// validation warnings as well as errors, slog.LevelError only errors.
	MinLevel slog.Level
}

// NewWithSentry creates a logger that writes locally and forwards to Sentry.
// An empty DSN or a failed Sentry init leaves only the local handler.
func NewWithSentry(cfg SentryConfig, opts ...Option) *slog.Logger {
	local := newHandler(opts...)

	if cfg.DSN == "" {
		return slog.New(local)
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.DSN,
		Environment: cfg.Environment,
		EnableLogs:  true,
	}); err != nil {
		slog.New(local).Error("failed to initialize Sentry", slog.String("error", err.Error()))
		return slog.New(local)
	}

	logLevel := []slog.Level{slog.LevelWarn, slog.LevelError}
	if cfg.MinLevel >= slog.LevelError {
		logLevel = []slog.Level{slog.LevelError}
	}

	remote := sentryslog.Option{
		EventLevel: []slog.Level{slog.LevelError},
		LogLevel:   logLevel,
	}.NewSentryHandler(context.Background())

	return slog.New(fanout{local, remote})
}
