package convert

import (
	"fmt"
	"slices"

	"github.com/dmitrymomot/langstring"
)

// ToSetLangString wraps ls in a one-element set with the same tag.
func ToSetLangString(ls langstring.LangString, opts ...langstring.Option) (*langstring.SetLangString, error) {
	return newSet([]string{ls.Text()}, ls.Lang(), ls.HasLang(), opts)
}

// ToMultiLangString converts any value into a MultiLangString.
//
// A LangString becomes a single entry and a SetLangString a single language.
// Untagged input goes to the untagged set, so a missing tag and an explicit
// empty tag stay apart. A MultiLangString is deep-copied, keeping its
// preferred language unless opts override it.
func ToMultiLangString(v langstring.Value, opts ...langstring.Option) (*langstring.MultiLangString, error) {
	switch v := v.(type) {
	case langstring.LangString:
	case *langstring.SetLangString:
		if v == nil {
			return nil, invalidType(v)
		}
	case *langstring.MultiLangString:
		if v == nil {
			return nil, invalidType(v)
		}
		opts = append([]langstring.Option{langstring.WithPreferredLang(v.PreferredLang())}, opts...)
	default:
		return nil, invalidType(v)
	}

	out, err := langstring.NewMultiLangString(nil, opts...)
	if err != nil {
		return nil, err
	}
	if err := out.Add(v); err != nil {
		return nil, err
	}
	return out, nil
}

// ToLangStrings flattens v into LangStrings whose language is in languages.
// A nil languages keeps everything; an empty non-nil slice keeps nothing.
// Untagged values match the "" language. Results list untagged values first,
// then languages and texts in ascending order.
func ToLangStrings(v langstring.Value, languages []string, opts ...langstring.Option) ([]langstring.LangString, error) {
	keep := filter(languages)

	var src []langstring.LangString
	switch v := v.(type) {
	case langstring.LangString:
		src = []langstring.LangString{v}
	case *langstring.SetLangString:
		if v == nil {
			return nil, invalidType(v)
		}
		src = v.LangStrings()
	case *langstring.MultiLangString:
		if v == nil {
			return nil, invalidType(v)
		}
		src = v.AllLangStrings()
	default:
		return nil, invalidType(v)
	}

	out := make([]langstring.LangString, 0, len(src))
	for _, ls := range src {
		if !keep(ls.Lang()) {
			continue
		}
		rebuilt, err := newLangString(ls.Text(), ls.Lang(), ls.HasLang(), opts)
		if err != nil {
			return nil, err
		}
		out = append(out, rebuilt)
	}
	return out, nil
}

// ToSetLangStrings groups v into one set per language in languages, with the
// same filter rules as ToLangStrings. Untagged texts of a MultiLangString form
// their own untagged set, listed first; the rest are ordered by language.
func ToSetLangStrings(v langstring.Value, languages []string, opts ...langstring.Option) ([]*langstring.SetLangString, error) {
	keep := filter(languages)

	var out []*langstring.SetLangString
	add := func(texts []string, lang string, hasLang bool) error {
		if !keep(lang) {
			return nil
		}
		s, err := newSet(texts, lang, hasLang, opts)
		if err != nil {
			return err
		}
		out = append(out, s)
		return nil
	}

	switch v := v.(type) {
	case langstring.LangString:
		if err := add([]string{v.Text()}, v.Lang(), v.HasLang()); err != nil {
			return nil, err
		}
	case *langstring.SetLangString:
		if v == nil {
			return nil, invalidType(v)
		}
		if err := add(v.Texts(), v.Lang(), v.HasLang()); err != nil {
			return nil, err
		}
	case *langstring.MultiLangString:
		if v == nil {
			return nil, invalidType(v)
		}
		if v.LenUntagged() > 0 {
			if err := add(v.Untagged(), "", false); err != nil {
				return nil, err
			}
		}
		for _, lang := range v.Langs() {
			if err := add(v.Strings(lang), lang, true); err != nil {
				return nil, err
			}
		}
	default:
		return nil, invalidType(v)
	}
	return out, nil
}

// ToLangString reduces v to its single entry. It fails with ErrNotFound when
// v is empty and ErrAmbiguousConversion when it holds more than one entry.
func ToLangString(v langstring.Value, opts ...langstring.Option) (langstring.LangString, error) {
	all, err := ToLangStrings(v, nil, opts...)
	if err != nil {
		return langstring.LangString{}, err
	}
	switch len(all) {
	case 0:
		return langstring.LangString{}, fmt.Errorf("%w: %T holds no entries", langstring.ErrNotFound, v)
	case 1:
		return all[0], nil
	default:
		return langstring.LangString{}, fmt.Errorf("%w: %T holds %d entries", langstring.ErrAmbiguousConversion, v, len(all))
	}
}

// ToStrings renders every entry of v in the "text"@lang form, shaped by opts.
func ToStrings(v langstring.Value, opts ...langstring.RenderOption) ([]string, error) {
	switch v := v.(type) {
	case langstring.LangString:
		return []string{v.Render(opts...)}, nil
	case *langstring.SetLangString:
		if v == nil {
			return nil, invalidType(v)
		}
		return v.FormattedStrings(opts...), nil
	case *langstring.MultiLangString:
		if v == nil {
			return nil, invalidType(v)
		}
		return v.AllFormattedStrings(opts...), nil
	default:
		return nil, invalidType(v)
	}
}

func newLangString(text, lang string, hasLang bool, opts []langstring.Option) (langstring.LangString, error) {
	if hasLang {
		return langstring.New(text, lang, opts...)
	}
	return langstring.NewUntagged(text, opts...)
}

func newSet(texts []string, lang string, hasLang bool, opts []langstring.Option) (*langstring.SetLangString, error) {
	if hasLang {
		return langstring.NewSetLangString(texts, lang, opts...)
	}
	return langstring.NewUntaggedSetLangString(texts, opts...)
}

// filter returns a predicate keeping languages listed in languages, or every
// language when languages is nil.
func filter(languages []string) func(string) bool {
	if languages == nil {
		return func(string) bool { return true }
	}
	return func(lang string) bool {
		return slices.Contains(languages, lang)
	}
}

func invalidType(v any) error {
	if v == nil {
		return fmt.Errorf("%w: nil value", langstring.ErrInvalidType)
	}
	return fmt.Errorf("%w: %T", langstring.ErrInvalidType, v)
}
