package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/langstring/pkg/logger"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("writes JSON by default", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.WithWriter(&buf))
		log.Warn("invalid language tag", slog.String("lang", "!!"))

		var rec map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
		require.Equal(t, "WARN", rec["level"])
		require.Equal(t, "invalid language tag", rec["msg"])
		require.Equal(t, "!!", rec["lang"])
	})

	t.Run("respects minimum level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.WithWriter(&buf), logger.WithLevel(slog.LevelWarn))
		log.Info("ignored")
		require.Empty(t, buf.String())

		log.Warn("kept")
		require.Contains(t, buf.String(), "kept")
	})

	t.Run("text format", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.WithWriter(&buf), logger.WithText())
		log.Info("hello", slog.String("lang", "en"))
		require.Contains(t, buf.String(), "msg=hello")
		require.Contains(t, buf.String(), "lang=en")
	})

	t.Run("nil writer keeps default", func(t *testing.T) {
		t.Parallel()
		require.NotNil(t, logger.New(logger.WithWriter(nil)))
	})
}

func TestNewNope(t *testing.T) {
	t.Parallel()

	log := logger.NewNope()
	require.False(t, log.Enabled(context.Background(), slog.LevelError))
	log.Error("discarded")
}

func TestNewWithSentry(t *testing.T) {
	t.Parallel()

	t.Run("empty DSN falls back to local handler", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.NewWithSentry(logger.SentryConfig{}, logger.WithWriter(&buf))
		log.Warn("local only")
		require.Contains(t, buf.String(), "local only")
	})
}
