package langstring

import (
	"fmt"
	"maps"
	"slices"

	"github.com/dmitrymomot/langstring/pkg/control"
	"github.com/dmitrymomot/langstring/pkg/langtag"
)

// MultiLangString maps language tags to sets of texts.
//
// Each language holds a deduplicated set; a language with no texts is never
// kept. The preferred language is only a pointer used by the Pref* accessors
// and does not take part in Equal or Hash. Texts without a tag are kept in a
// separate untagged set, apart from texts tagged with the empty string "".
//
// Pairs are validated against the MultiLangString domain flags. The zero
// value is an empty collection that validates with the shared validator and
// prefers DefaultPreferredLang.
type MultiLangString struct {
	entries       map[string]map[string]struct{}
	untagged      map[string]struct{}
	validator     *control.Validator
	preferredLang string
}

// NewMultiLangString creates a collection seeded with entries, a map from
// language to texts. Every key is a tag, "" included. The whole seed is
// validated before anything is stored; languages with no texts are dropped.
// The seed is copied.
func NewMultiLangString(entries map[string][]string, opts ...Option) (*MultiLangString, error) {
	o := newOptions(control.MultiLangStringDomain, opts)

	m := &MultiLangString{
		entries:       make(map[string]map[string]struct{}, len(entries)),
		validator:     o.validator,
		preferredLang: o.preferredLang,
	}
	if err := m.validateEntries(entries); err != nil {
		return nil, err
	}
	for lang, texts := range entries {
		for _, text := range texts {
			m.insert(text, lang)
		}
	}
	return m, nil
}

// validateEntries checks every pair of a seed map, languages in order.
func (m *MultiLangString) validateEntries(entries map[string][]string) error {
	v := m.validatorOrDefault()
	for _, lang := range slices.Sorted(maps.Keys(entries)) {
		for _, text := range entries[lang] {
			if err := v.Validate(text, lang, true); err != nil {
				return err
			}
		}
	}
	return nil
}

// PreferredLang returns the preferred language.
func (m *MultiLangString) PreferredLang() string {
	if m.preferredLang == "" {
		return DefaultPreferredLang
	}
	return m.preferredLang
}

// SetPreferredLang changes the preferred language. The language need not be
// present. An empty lang restores DefaultPreferredLang.
func (m *MultiLangString) SetPreferredLang(lang string) {
	m.preferredLang = lang
}

// AddEntry validates the pair and inserts text under lang, creating the
// language when needed. Adding an existing pair is a no-op.
func (m *MultiLangString) AddEntry(text, lang string) error {
	if err := m.validatorOrDefault().Validate(text, lang, true); err != nil {
		return err
	}
	m.insert(text, lang)
	return nil
}

// AddUntagged validates text as a value without a tag and adds it to the
// untagged set.
func (m *MultiLangString) AddUntagged(text string) error {
	if err := m.validatorOrDefault().Validate(text, "", false); err != nil {
		return err
	}
	m.insertUntagged(text)
	return nil
}

// AddLangString adds ls under its tag, or to the untagged set when ls has none.
func (m *MultiLangString) AddLangString(ls LangString) error {
	if !ls.hasLang {
		return m.AddUntagged(ls.text)
	}
	return m.AddEntry(ls.text, ls.lang)
}

// Add merges any Value into the collection. All pairs are validated before
// the first one is inserted. A nil value fails with ErrInvalidType.
func (m *MultiLangString) Add(v Value) error {
	switch v := v.(type) {
	case LangString:
		return m.AddLangString(v)
	case *SetLangString:
		if v == nil {
			return fmt.Errorf("%w: nil *SetLangString", ErrInvalidType)
		}
		if !v.hasLang {
			return m.merge(nil, v.Texts())
		}
		return m.merge(map[string][]string{v.lang: v.Texts()}, nil)
	case *MultiLangString:
		if v == nil {
			return fmt.Errorf("%w: nil *MultiLangString", ErrInvalidType)
		}
		return m.merge(v.Entries(), v.Untagged())
	default:
		return fmt.Errorf("%w: %T", ErrInvalidType, v)
	}
}

func (m *MultiLangString) merge(entries map[string][]string, untagged []string) error {
	if err := m.validateEntries(entries); err != nil {
		return err
	}
	v := m.validatorOrDefault()
	for _, text := range untagged {
		if err := v.Validate(text, "", false); err != nil {
			return err
		}
	}

	for lang, texts := range entries {
		for _, text := range texts {
			m.insert(text, lang)
		}
	}
	for _, text := range untagged {
		m.insertUntagged(text)
	}
	return nil
}

func (m *MultiLangString) insert(text, lang string) {
	if m.entries == nil {
		m.entries = make(map[string]map[string]struct{})
	}
	bucket, ok := m.entries[lang]
	if !ok {
		bucket = make(map[string]struct{})
		m.entries[lang] = bucket
	}
	bucket[text] = struct{}{}
}

func (m *MultiLangString) insertUntagged(text string) {
	if m.untagged == nil {
		m.untagged = make(map[string]struct{})
	}
	m.untagged[text] = struct{}{}
}

// RemoveEntry deletes text from lang and reports whether it was present.
// A language left without texts is removed.
func (m *MultiLangString) RemoveEntry(text, lang string) bool {
	bucket, ok := m.entries[lang]
	if !ok {
		return false
	}
	if _, ok := bucket[text]; !ok {
		return false
	}
	delete(bucket, text)
	if len(bucket) == 0 {
		delete(m.entries, lang)
	}
	return true
}

// RemoveLang deletes a language with all its texts and reports whether it
// was present.
func (m *MultiLangString) RemoveLang(lang string) bool {
	if _, ok := m.entries[lang]; !ok {
		return false
	}
	delete(m.entries, lang)
	return true
}

// RemoveUntagged deletes text from the untagged set and reports whether it
// was present.
func (m *MultiLangString) RemoveUntagged(text string) bool {
	if _, ok := m.untagged[text]; !ok {
		return false
	}
	delete(m.untagged, text)
	return true
}

// Contains reports whether text is stored under lang.
func (m *MultiLangString) Contains(text, lang string) bool {
	_, ok := m.entries[lang][text]
	return ok
}

// ContainsUntagged reports whether text is in the untagged set.
func (m *MultiLangString) ContainsUntagged(text string) bool {
	_, ok := m.untagged[text]
	return ok
}

// GetLangString returns the stored pair or ErrNotFound.
func (m *MultiLangString) GetLangString(text, lang string) (LangString, error) {
	if !m.Contains(text, lang) {
		return LangString{}, fmt.Errorf("%w: %s", ErrNotFound, render(text, lang, nil))
	}
	return LangString{text: text, lang: lang, hasLang: true}, nil
}

// Langs returns the stored languages in ascending order. The untagged set is
// not a language and is not listed.
func (m *MultiLangString) Langs() []string {
	return slices.Sorted(maps.Keys(m.entries))
}

// Entries returns a deep copy of the tagged texts as language -> sorted texts.
func (m *MultiLangString) Entries() map[string][]string {
	out := make(map[string][]string, len(m.entries))
	for lang, bucket := range m.entries {
		out[lang] = slices.Sorted(maps.Keys(bucket))
	}
	return out
}

// Untagged returns the texts without a tag in ascending order.
func (m *MultiLangString) Untagged() []string {
	return slices.Sorted(maps.Keys(m.untagged))
}

// Clone returns an independent copy sharing the validator and preferred
// language.
func (m *MultiLangString) Clone() *MultiLangString {
	c := &MultiLangString{
		entries:       make(map[string]map[string]struct{}, len(m.entries)),
		untagged:      maps.Clone(m.untagged),
		validator:     m.validator,
		preferredLang: m.preferredLang,
	}
	for lang, bucket := range m.entries {
		c.entries[lang] = maps.Clone(bucket)
	}
	return c
}

// LangStrings returns the texts of lang as LangStrings. An absent language
// yields an empty slice.
func (m *MultiLangString) LangStrings(lang string) []LangString {
	texts := slices.Sorted(maps.Keys(m.entries[lang]))
	out := make([]LangString, 0, len(texts))
	for _, text := range texts {
		out = append(out, LangString{text: text, lang: lang, hasLang: true})
	}
	return out
}

// UntaggedLangStrings returns the untagged texts as untagged LangStrings.
func (m *MultiLangString) UntaggedLangStrings() []LangString {
	texts := m.Untagged()
	out := make([]LangString, 0, len(texts))
	for _, text := range texts {
		out = append(out, LangString{text: text})
	}
	return out
}

// AllLangStrings returns every value: untagged texts first, then languages
// and texts in ascending order.
func (m *MultiLangString) AllLangStrings() []LangString {
	out := make([]LangString, 0, m.Len())
	out = append(out, m.UntaggedLangStrings()...)
	for _, lang := range m.Langs() {
		out = append(out, m.LangStrings(lang)...)
	}
	return out
}

// PrefLangStrings returns the texts of the preferred language.
func (m *MultiLangString) PrefLangStrings() []LangString {
	return m.LangStrings(m.PreferredLang())
}

// Strings returns the plain texts of lang.
func (m *MultiLangString) Strings(lang string) []string {
	return slices.Sorted(maps.Keys(m.entries[lang]))
}

// AllStrings returns every plain text, untagged first, then grouped by
// language.
func (m *MultiLangString) AllStrings() []string {
	out := make([]string, 0, m.Len())
	out = append(out, m.Untagged()...)
	for _, lang := range m.Langs() {
		out = append(out, m.Strings(lang)...)
	}
	return out
}

// PrefStrings returns the plain texts of the preferred language.
func (m *MultiLangString) PrefStrings() []string {
	return m.Strings(m.PreferredLang())
}

// FormattedStrings renders the texts of lang as "text"@lang.
func (m *MultiLangString) FormattedStrings(lang string, opts ...RenderOption) []string {
	texts := m.Strings(lang)
	out := make([]string, 0, len(texts))
	for _, text := range texts {
		out = append(out, render(text, lang, opts))
	}
	return out
}

// AllFormattedStrings renders every value; untagged texts print bare.
func (m *MultiLangString) AllFormattedStrings(opts ...RenderOption) []string {
	out := make([]string, 0, m.Len())
	out = append(out, m.Untagged()...)
	for _, lang := range m.Langs() {
		out = append(out, m.FormattedStrings(lang, opts...)...)
	}
	return out
}

// PrefFormattedStrings renders the texts of the preferred language.
func (m *MultiLangString) PrefFormattedStrings(opts ...RenderOption) []string {
	return m.FormattedStrings(m.PreferredLang(), opts...)
}

// Negotiate returns the texts of the language that best matches an
// Accept-Language style preference list, or those of the preferred language
// when nothing matches.
func (m *MultiLangString) Negotiate(acceptLanguage string) []LangString {
	if lang, ok := langtag.Negotiate(acceptLanguage, m.Langs()); ok {
		return m.LangStrings(lang)
	}
	return m.PrefLangStrings()
}

// Len returns the number of stored values, untagged texts included.
func (m *MultiLangString) Len() int {
	n := len(m.untagged)
	for _, bucket := range m.entries {
		n += len(bucket)
	}
	return n
}

// LenLang returns the number of texts under lang, 0 when absent.
func (m *MultiLangString) LenLang(lang string) int {
	return len(m.entries[lang])
}

// LenLangs returns the number of languages.
func (m *MultiLangString) LenLangs() int {
	return len(m.entries)
}

// LenUntagged returns the number of untagged texts.
func (m *MultiLangString) LenUntagged() int {
	return len(m.untagged)
}

// Equal compares tagged and untagged texts; the preferred language is
// ignored.
func (m *MultiLangString) Equal(other *MultiLangString) bool {
	if m == nil || other == nil {
		return m == other
	}
	return maps.Equal(m.untagged, other.untagged) &&
		maps.EqualFunc(m.entries, other.entries, func(a, b map[string]struct{}) bool {
			return maps.Equal(a, b)
		})
}

// Hash returns a hash of the entries, consistent with Equal within the
// current process.
func (m *MultiLangString) Hash() uint64 {
	var h uint64
	for lang, bucket := range m.entries {
		for text := range bucket {
			h += pairHash(lang, text)
		}
	}
	for text := range m.untagged {
		h += untaggedHash(text)
	}
	return h
}

// String joins every formatted pair with ", ".
func (m *MultiLangString) String() string {
	return joinFormatted(m.AllFormattedStrings())
}

func (m *MultiLangString) validatorOrDefault() *control.Validator {
	if m.validator == nil {
		m.validator = control.Default(control.MultiLangStringDomain)
	}
	return m.validator
}
