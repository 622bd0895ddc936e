package langstring

import (
	"hash/maphash"
	"maps"
	"slices"

	"github.com/dmitrymomot/langstring/pkg/control"
)

// SetLangString is a set of distinct texts sharing one language tag.
//
// Members are validated like LangString values, against the LangString
// domain flags. The zero value is an empty, untagged set that validates with
// the shared validator.
type SetLangString struct {
	texts     map[string]struct{}
	validator *control.Validator
	lang      string
	hasLang   bool
}

// NewSetLangString creates a tagged set. Duplicate texts collapse.
// Every text is validated before the set is built.
func NewSetLangString(texts []string, lang string, opts ...Option) (*SetLangString, error) {
	return newSetLangString(texts, lang, true, opts)
}

// NewUntaggedSetLangString creates a set whose texts carry no tag.
func NewUntaggedSetLangString(texts []string, opts ...Option) (*SetLangString, error) {
	return newSetLangString(texts, "", false, opts)
}

func newSetLangString(texts []string, lang string, hasLang bool, opts []Option) (*SetLangString, error) {
	o := newOptions(control.LangStringDomain, opts)

	for _, text := range texts {
		if err := o.validator.Validate(text, lang, hasLang); err != nil {
			return nil, err
		}
	}

	s := &SetLangString{
		texts:     make(map[string]struct{}, len(texts)),
		validator: o.validator,
		lang:      lang,
		hasLang:   hasLang,
	}
	for _, text := range texts {
		s.texts[text] = struct{}{}
	}
	return s, nil
}

// Lang returns the shared language tag.
func (s *SetLangString) Lang() string {
	return s.lang
}

// HasLang reports whether the set is tagged.
func (s *SetLangString) HasLang() bool {
	return s.hasLang
}

// Add validates text and inserts it. Adding a member again is a no-op.
func (s *SetLangString) Add(text string) error {
	if err := s.validatorOrDefault().Validate(text, s.lang, s.hasLang); err != nil {
		return err
	}
	if s.texts == nil {
		s.texts = make(map[string]struct{})
	}
	s.texts[text] = struct{}{}
	return nil
}

// Remove deletes text and reports whether it was a member.
// Removing a non-member is a no-op.
func (s *SetLangString) Remove(text string) bool {
	if _, ok := s.texts[text]; !ok {
		return false
	}
	delete(s.texts, text)
	return true
}

// Contains reports whether text is a member.
func (s *SetLangString) Contains(text string) bool {
	_, ok := s.texts[text]
	return ok
}

// Len returns the number of texts.
func (s *SetLangString) Len() int {
	return len(s.texts)
}

// Texts returns the members in ascending order.
func (s *SetLangString) Texts() []string {
	return slices.Sorted(maps.Keys(s.texts))
}

// LangStrings returns one LangString per member, in text order.
func (s *SetLangString) LangStrings() []LangString {
	out := make([]LangString, 0, len(s.texts))
	for _, text := range s.Texts() {
		out = append(out, LangString{text: text, lang: s.lang, hasLang: s.hasLang})
	}
	return out
}

// FormattedStrings renders every member as "text"@lang.
func (s *SetLangString) FormattedStrings(opts ...RenderOption) []string {
	out := make([]string, 0, len(s.texts))
	for _, text := range s.Texts() {
		out = append(out, render(text, s.lang, opts))
	}
	return out
}

// String joins the formatted members with ", ".
func (s *SetLangString) String() string {
	return joinFormatted(s.FormattedStrings())
}

// Equal reports whether both sets hold the same texts under the same tag.
func (s *SetLangString) Equal(other *SetLangString) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.lang == other.lang &&
		s.hasLang == other.hasLang &&
		maps.Equal(s.texts, other.texts)
}

// Hash returns a hash consistent with Equal within the current process.
func (s *SetLangString) Hash() uint64 {
	h := maphash.Comparable(hashSeed, struct {
		lang    string
		hasLang bool
	}{s.lang, s.hasLang})
	for text := range s.texts {
		h += pairHash(s.lang, text)
	}
	return h
}

func (s *SetLangString) validatorOrDefault() *control.Validator {
	if s.validator == nil {
		s.validator = control.Default(control.LangStringDomain)
	}
	return s.validator
}
