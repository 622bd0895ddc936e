package control_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/langstring/pkg/control"
)

func TestLoadEnvFrom(t *testing.T) {
	t.Parallel()

	t.Run("reads prefixed variables", func(t *testing.T) {
		t.Parallel()

		cfg, err := control.LoadEnvFrom(map[string]string{
			"LANGSTRING_ENSURE_TEXT":             "true",
			"MULTILANGSTRING_ENSURE_VALID_LANG":  "1",
			"MULTILANGSTRING_ENSURE_ANY_LANG":    "false",
			"UNRELATED_VARIABLE_IS_IGNORED_HERE": "x",
		})
		require.NoError(t, err)
		require.Equal(t, control.Config{
			LangString:      control.FlagConfig{EnsureText: true},
			MultiLangString: control.FlagConfig{EnsureValidLang: true},
		}, cfg)
	})

	t.Run("rejects non-boolean values", func(t *testing.T) {
		t.Parallel()

		_, err := control.LoadEnvFrom(map[string]string{"LANGSTRING_ENSURE_TEXT": "maybe"})
		require.ErrorIs(t, err, control.ErrInvalidConfig)
	})
}

func TestLoadYAML(t *testing.T) {
	t.Parallel()

	t.Run("reads both domains", func(t *testing.T) {
		t.Parallel()

		cfg, err := control.LoadYAML(strings.NewReader(`
langstring:
  ENSURE_TEXT: true
  ensure_any_lang: true
multilangstring:
  ENSURE_VALID_LANG: true
`))
		require.NoError(t, err)
		require.Equal(t, control.FlagConfig{EnsureText: true, EnsureAnyLang: true}, cfg.LangString)
		require.Equal(t, control.FlagConfig{EnsureValidLang: true}, cfg.MultiLangString)
	})

	t.Run("empty document", func(t *testing.T) {
		t.Parallel()

		cfg, err := control.LoadYAML(strings.NewReader(""))
		require.NoError(t, err)
		require.Equal(t, control.Config{}, cfg)
	})

	t.Run("unknown flag", func(t *testing.T) {
		t.Parallel()

		_, err := control.LoadYAML(strings.NewReader("langstring:\n  ENSURE_MAGIC: true\n"))
		require.ErrorIs(t, err, control.ErrInvalidConfig)
		require.ErrorIs(t, err, control.ErrInvalidFlag)
	})

	t.Run("unknown domain", func(t *testing.T) {
		t.Parallel()

		_, err := control.LoadYAML(strings.NewReader("setlangstring:\n  ENSURE_TEXT: true\n"))
		require.ErrorIs(t, err, control.ErrInvalidDomain)
	})

	t.Run("malformed document", func(t *testing.T) {
		t.Parallel()

		_, err := control.LoadYAML(strings.NewReader("langstring: [1, 2"))
		require.ErrorIs(t, err, control.ErrInvalidConfig)
	})
}

func TestConfig_ApplyTo(t *testing.T) {
	t.Parallel()

	ls := control.NewRegistry(control.LangStringDomain)
	mls := control.NewRegistry(control.MultiLangStringDomain)
	require.NoError(t, ls.SetFlag(control.EnsureAnyLang, true))

	cfg := control.Config{
		LangString:      control.FlagConfig{EnsureText: true},
		MultiLangString: control.FlagConfig{EnsureValidLang: true},
	}
	require.NoError(t, cfg.ApplyTo(ls, mls))

	require.Equal(t, cfg.LangString.Values(), ls.Flags())
	require.Equal(t, cfg.MultiLangString.Values(), mls.Flags())

	require.NoError(t, cfg.ApplyTo(nil, nil))
}

func TestConfig_For(t *testing.T) {
	t.Parallel()

	var cfg control.Config
	cfg.For(control.MultiLangStringDomain).EnsureText = true
	require.True(t, cfg.MultiLangString.EnsureText)
	require.Nil(t, cfg.For(control.Domain(3)))
}

// Touches the process environment and shared registries.
func TestLoadEnvFiles_Apply(t *testing.T) {
	t.Cleanup(control.ResetFlags)
	t.Cleanup(func() { _ = os.Unsetenv("LANGSTRING_ENSURE_ANY_LANG") })

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("LANGSTRING_ENSURE_ANY_LANG=true\n"), 0o600))

	require.NoError(t, control.LoadEnvFiles(path))

	cfg, err := control.LoadEnv()
	require.NoError(t, err)
	require.True(t, cfg.LangString.EnsureAnyLang)

	require.NoError(t, cfg.Apply())
	on, err := control.GetFlag(control.LangStringDomain, control.EnsureAnyLang)
	require.NoError(t, err)
	require.True(t, on)
}

func TestLoadEnvFiles_Missing(t *testing.T) {
	t.Parallel()

	err := control.LoadEnvFiles(filepath.Join(t.TempDir(), "missing.env"))
	require.ErrorIs(t, err, control.ErrInvalidConfig)
}
