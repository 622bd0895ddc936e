package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/langstring"
	"github.com/dmitrymomot/langstring/internal/cli"
	"github.com/dmitrymomot/langstring/pkg/control"
)

// The CLI applies flags to the shared registries, so these tests do not run
// in parallel.

type result struct {
	out string
	err string
}

func run(t *testing.T, stdin string, args ...string) (result, error) {
	t.Helper()
	t.Cleanup(control.ResetFlags)
	t.Setenv("SENTRY_DSN", "")

	var out, errOut bytes.Buffer
	cmd := cli.NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return result{out: out.String(), err: errOut.String()}, err
}

func lines(s string) []string {
	return strings.Split(strings.TrimSpace(s), "\n")
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRender(t *testing.T) {
	t.Run("canonical output grouped by language", func(t *testing.T) {
		res, err := run(t, "", "render", `"Bonjour"@fr`, "Hi@en", "Hello@en")
		require.NoError(t, err)
		assert.Equal(t, []string{`"Hello"@en`, `"Hi"@en`, `"Bonjour"@fr`}, lines(res.out))
	})

	t.Run("language filter and layout", func(t *testing.T) {
		res, err := run(t, "", "render", "--lang", "fr", "--no-quotes", "--separator", "#", `"Bonjour"@fr`, "Hi@en")
		require.NoError(t, err)
		assert.Equal(t, []string{"Bonjour#fr"}, lines(res.out))
	})

	t.Run("texts only", func(t *testing.T) {
		res, err := run(t, "", "render", "--no-lang", "--no-quotes", "Hi@en", "plain")
		require.NoError(t, err)
		assert.Equal(t, []string{"plain", "Hi"}, lines(res.out))
	})

	t.Run("strip html", func(t *testing.T) {
		res, err := run(t, "", "render", "--strip-html", `"<b>Hallo</b>"@de`)
		require.NoError(t, err)
		assert.Equal(t, []string{`"Hallo"@de`}, lines(res.out))
	})

	t.Run("collapse space", func(t *testing.T) {
		res, err := run(t, "", "render", "--collapse-space", "--strip-html", "<p>\n  Guten\n  <em>Tag</em>\n</p>@de")
		require.NoError(t, err)
		assert.Equal(t, []string{`"Guten Tag"@de`}, lines(res.out))
	})

	t.Run("ignore at sign", func(t *testing.T) {
		res, err := run(t, "", "render", "--ignore-at", "me@example.com")
		require.NoError(t, err)
		assert.Equal(t, []string{"me@example.com"}, lines(res.out))
	})

	t.Run("validation failure", func(t *testing.T) {
		_, err := run(t, "", "render", "--ensure-any-lang", "Hi")
		require.ErrorIs(t, err, langstring.ErrInvalidLang)
	})

	t.Run("requires arguments", func(t *testing.T) {
		_, err := run(t, "", "render")
		require.Error(t, err)
	})
}

func TestCheck(t *testing.T) {
	t.Run("reports each value", func(t *testing.T) {
		res, err := run(t, "", "check", "--ensure-valid-lang", `"Bonjour"@fr`, `"Hi"@!!`)
		require.ErrorContains(t, err, "1 of 2 values failed")

		out := lines(res.out)
		require.Len(t, out, 2)
		assert.Equal(t, `ok   "Bonjour"@fr`, out[0])
		assert.True(t, strings.HasPrefix(out[1], `fail "Hi"@!!: `), out[1])
		assert.Contains(t, out[1], "ENSURE_VALID_LANG")
	})

	t.Run("lenient accepts and warns", func(t *testing.T) {
		res, err := run(t, "", "check", "--ensure-valid-lang", "--lenient", `"Hi"@!!`)
		require.NoError(t, err)
		assert.Equal(t, []string{`ok   "Hi"@!!`}, lines(res.out))
		assert.Contains(t, res.err, "invalid language tag accepted")
	})

	t.Run("environment selects domain flags", func(t *testing.T) {
		t.Setenv("MULTILANGSTRING_ENSURE_TEXT", "true")

		_, err := run(t, "", "check", `""@en`)
		require.NoError(t, err)

		_, err = run(t, "", "check", "--domain", "multilangstring", `""@en`)
		require.ErrorContains(t, err, "1 of 1 values failed")
	})

	t.Run("command line overrides environment", func(t *testing.T) {
		t.Setenv("LANGSTRING_ENSURE_TEXT", "true")

		_, err := run(t, "", "check", `""@en`)
		require.Error(t, err)

		_, err = run(t, "", "check", "--ensure-text=false", `""@en`)
		require.NoError(t, err)
	})

	t.Run("env file", func(t *testing.T) {
		t.Cleanup(func() { _ = os.Unsetenv("LANGSTRING_ENSURE_ANY_LANG") })
		path := writeFile(t, ".env", "LANGSTRING_ENSURE_ANY_LANG=true\n")

		res, err := run(t, "", "check", "--env-file", path, "Hi")
		require.Error(t, err)
		assert.Contains(t, res.out, "ENSURE_ANY_LANG")
	})

	t.Run("unknown domain", func(t *testing.T) {
		_, err := run(t, "", "check", "--domain", "setlangstring", "Hi")
		require.ErrorIs(t, err, control.ErrInvalidDomain)
	})
}

const greetingsJSON = `{
  "entries": {"en": ["Hi", "Hello"], "fr": ["Bonjour"], "pt-BR": ["Oi"]},
  "preferred_lang": "en"
}`

func TestInspect(t *testing.T) {
	t.Run("text summary", func(t *testing.T) {
		path := writeFile(t, "greetings.json", greetingsJSON)

		res, err := run(t, "", "inspect", path)
		require.NoError(t, err)
		assert.Equal(t, []string{
			`4 entries in 3 languages, preferred "en"`,
			"en: 2",
			`"Hello"@en`,
			`"Hi"@en`,
			"fr: 1",
			`"Bonjour"@fr`,
			"pt-BR: 1",
			`"Oi"@pt-BR`,
		}, lines(res.out))
	})

	t.Run("accept language", func(t *testing.T) {
		path := writeFile(t, "greetings.json", greetingsJSON)

		res, err := run(t, "", "inspect", "--accept", "pt, fr;q=0.5", path)
		require.NoError(t, err)
		assert.Equal(t, `"Oi"@pt-BR`, lines(res.out)[1])
	})

	t.Run("filter to yaml", func(t *testing.T) {
		path := writeFile(t, "greetings.json", greetingsJSON)

		res, err := run(t, "", "inspect", "--lang", "fr", "-o", "yaml", path)
		require.NoError(t, err)
		assert.Contains(t, res.out, "fr:")
		assert.Contains(t, res.out, "- Bonjour")
		assert.NotContains(t, res.out, "Hello")
		assert.Contains(t, res.out, "preferred_lang: en")
	})

	t.Run("yaml from stdin to json", func(t *testing.T) {
		doc := "entries:\n  de: [Hallo]\npreferred_lang: de\n"

		res, err := run(t, doc, "inspect", "--input", "yaml", "-o", "json", "-")
		require.NoError(t, err)
		assert.JSONEq(t, `{"entries":{"de":["Hallo"]},"preferred_lang":"de"}`, res.out)
	})

	t.Run("untagged texts", func(t *testing.T) {
		path := writeFile(t, "mixed.json", `{"entries":{"":["blank"],"en":["Hi"]},"untagged":["plain"]}`)

		res, err := run(t, "", "inspect", path)
		require.NoError(t, err)
		assert.Equal(t, []string{
			`3 entries in 2 languages, preferred "en"`,
			"(untagged): 1",
			"plain",
			`"": 1`,
			"blank",
			"en: 1",
			`"Hi"@en`,
		}, lines(res.out))
	})

	t.Run("yaml extension", func(t *testing.T) {
		path := writeFile(t, "greetings.yml", "entries:\n  en: [Hi]\n")

		res, err := run(t, "", "inspect", path)
		require.NoError(t, err)
		assert.Contains(t, res.out, `"Hi"@en`)
	})

	t.Run("validates with multilangstring flags", func(t *testing.T) {
		path := writeFile(t, "greetings.json", `{"entries":{"en":[""]}}`)

		_, err := run(t, "", "inspect", "--ensure-text", path)
		require.ErrorIs(t, err, langstring.ErrInvalidText)
	})

	t.Run("malformed document", func(t *testing.T) {
		path := writeFile(t, "broken.json", `{"entries":[]}`)

		_, err := run(t, "", "inspect", path)
		require.ErrorIs(t, err, langstring.ErrInvalidJSON)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := run(t, "", "inspect", filepath.Join(t.TempDir(), "missing.json"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("unknown output", func(t *testing.T) {
		path := writeFile(t, "greetings.json", greetingsJSON)

		_, err := run(t, "", "inspect", "-o", "xml", path)
		require.ErrorContains(t, err, "unknown output format")
	})
}

func TestVersion(t *testing.T) {
	res, err := run(t, "", "--version")
	require.NoError(t, err)
	assert.Equal(t, "langstring dev\n", res.out)
}
