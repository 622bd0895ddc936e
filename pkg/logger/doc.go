// Package logger builds the structured loggers used as the warning sink of
// the validation layer.
//
// Validators never fail on a warning. When language checking runs in lenient
// mode an invalid tag is reported through a *slog.Logger and the value is
// accepted. This package provides the loggers worth plugging in there:
//
//	log := logger.New(logger.WithLevel(slog.LevelWarn))
//	v := control.NewValidator(control.LangStringFlags(),
//		control.WithLogger(log),
//		control.WithLenientLang(),
//	)
//
// # Sentry
//
// NewWithSentry sends warnings and errors to Sentry in addition to the local
// handler. An empty DSN falls back to local logging only, so the same code
// path works in development:
//
//	log := logger.NewWithSentry(logger.SentryConfig{
//		DSN:         os.Getenv("SENTRY_DSN"),
//		Environment: "production",
//		MinLevel:    slog.LevelWarn,
//	})
//
// # Silence
//
// NewNope discards everything and is handy in tests and quiet CLI runs.
package logger
