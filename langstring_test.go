package langstring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/langstring"
	"github.com/dmitrymomot/langstring/pkg/control"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		text    string
		lang    string
		flags   []control.Flag
		wantErr error
	}{
		{name: "no flags accepts empty text and tag", text: "", lang: ""},
		{name: "no flags accepts unknown tag", text: "Hi", lang: "xx"},
		{name: "ensure text rejects empty", text: "", lang: "en", flags: []control.Flag{control.EnsureText}, wantErr: langstring.ErrInvalidText},
		{name: "ensure any lang rejects empty tag", text: "Hi", lang: "", flags: []control.Flag{control.EnsureAnyLang}, wantErr: langstring.ErrInvalidLang},
		{name: "ensure valid lang rejects unknown tag", text: "Hi", lang: "xx", flags: []control.Flag{control.EnsureValidLang}, wantErr: langstring.ErrInvalidLang},
		{name: "ensure valid lang accepts known tag", text: "Hi", lang: "en", flags: []control.Flag{control.EnsureValidLang}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ls, err := langstring.New(tt.text, tt.lang, isolated(t, control.LangStringDomain, tt.flags...))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.text, ls.Text())
			assert.Equal(t, tt.lang, ls.Lang())
			assert.True(t, ls.HasLang())
		})
	}
}

func TestNewUntagged(t *testing.T) {
	t.Parallel()

	ls, err := langstring.NewUntagged("Hi", isolated(t, control.LangStringDomain))
	require.NoError(t, err)
	assert.False(t, ls.HasLang())
	assert.Equal(t, "Hi", ls.String())

	_, err = langstring.NewUntagged("Hi", isolated(t, control.LangStringDomain, control.EnsureAnyLang))
	require.ErrorIs(t, err, langstring.ErrInvalidLang)

	_, err = langstring.NewUntagged("Hi", isolated(t, control.LangStringDomain, control.EnsureValidLang))
	require.ErrorIs(t, err, langstring.ErrInvalidLang)
}

func TestLangString_String(t *testing.T) {
	t.Parallel()

	opt := isolated(t, control.LangStringDomain)

	fr, err := langstring.New("Bonjour", "fr", opt)
	require.NoError(t, err)
	assert.Equal(t, `"Bonjour"@fr`, fr.String())

	bare, err := langstring.New("Hi", "", opt)
	require.NoError(t, err)
	assert.Equal(t, "Hi", bare.String())
}

func TestLangString_Render(t *testing.T) {
	t.Parallel()

	ls, err := langstring.New("Hallo", "de", isolated(t, control.LangStringDomain))
	require.NoError(t, err)

	assert.Equal(t, `"Hallo"@de`, ls.Render())
	assert.Equal(t, "Hallo@de", ls.Render(langstring.WithQuotes(false)))
	assert.Equal(t, `"Hallo"#de`, ls.Render(langstring.WithSeparator("#")))
	assert.Equal(t, `"Hallo"`, ls.Render(langstring.WithLang(false)))
	assert.Equal(t, "Hallo", ls.Render(langstring.WithLang(false), langstring.WithQuotes(false)))
}

func TestLangString_EqualHash(t *testing.T) {
	t.Parallel()

	opt := isolated(t, control.LangStringDomain)
	a, _ := langstring.New("Hi", "en", opt)
	b, _ := langstring.New("Hi", "en", opt)
	c, _ := langstring.New("Hi", "fr", opt)
	empty, _ := langstring.New("Hi", "", opt)
	untagged, _ := langstring.NewUntagged("Hi", opt)

	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())
	assert.False(t, a.Equal(c))
	assert.False(t, empty.Equal(untagged))

	seen := map[langstring.LangString]int{a: 1}
	assert.Equal(t, 1, seen[b])
}

// Touches the shared registries.
func TestNew_SharedFlags(t *testing.T) {
	t.Cleanup(control.ResetFlags)

	_, err := langstring.New("", "en")
	require.NoError(t, err)

	require.NoError(t, control.SetFlag(control.LangStringDomain, control.EnsureText, true))
	_, err = langstring.New("", "en")
	require.ErrorIs(t, err, langstring.ErrInvalidText)

	// MultiLangString flags are independent.
	_, err = langstring.NewMultiLangString(map[string][]string{"en": {""}})
	require.NoError(t, err)

	control.ResetFlags()
	_, err = langstring.New("", "en")
	require.NoError(t, err)
}
