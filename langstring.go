package langstring

import (
	"hash/maphash"

	"github.com/dmitrymomot/langstring/pkg/control"
)

// LangString is a text bound to an optional language tag.
//
// A LangString is immutable and comparable: two values are == when text,
// tag and tag presence match, so they can be used as map keys. A missing tag
// (NewUntagged) and an explicit empty tag (New(text, "")) are different
// values even though both print as bare text.
type LangString struct {
	text    string
	lang    string
	hasLang bool
}

// New creates a tagged LangString, validated against the LangString domain
// flags (or the validator given with WithValidator).
func New(text, lang string, opts ...Option) (LangString, error) {
	return newLangString(text, lang, true, opts)
}

// NewUntagged creates a LangString without a language tag.
func NewUntagged(text string, opts ...Option) (LangString, error) {
	return newLangString(text, "", false, opts)
}

func newLangString(text, lang string, hasLang bool, opts []Option) (LangString, error) {
	o := newOptions(control.LangStringDomain, opts)
	if err := o.validator.Validate(text, lang, hasLang); err != nil {
		return LangString{}, err
	}
	return LangString{text: text, lang: lang, hasLang: hasLang}, nil
}

// Text returns the text.
func (ls LangString) Text() string {
	return ls.text
}

// Lang returns the language tag, empty when the value is untagged.
func (ls LangString) Lang() string {
	return ls.lang
}

// HasLang reports whether a tag (possibly empty) was given.
func (ls LangString) HasLang() bool {
	return ls.hasLang
}

// String returns "text"@lang, or the bare text when there is no tag.
func (ls LangString) String() string {
	return render(ls.text, ls.lang, nil)
}

// Render prints the value with the given options.
func (ls LangString) Render(opts ...RenderOption) string {
	return render(ls.text, ls.lang, opts)
}

// Equal reports structural equality.
func (ls LangString) Equal(other LangString) bool {
	return ls == other
}

// Hash returns a hash consistent with Equal within the current process.
func (ls LangString) Hash() uint64 {
	return maphash.Comparable(hashSeed, ls)
}
