package convert

import (
	"strings"

	"github.com/dmitrymomot/langstring"
	"github.com/dmitrymomot/langstring/pkg/sanitizer"
)

// ParseOption configures FromString and FromStrings.
type ParseOption func(*parseOptions)

type parseOptions struct {
	separator     string
	stripHTML     bool
	collapseSpace bool
	valueOpts []langstring.Option
}

// WithParseSeparator sets the string that splits text from tag.
// Default: langstring.DefaultSeparator.
func WithParseSeparator(sep string) ParseOption {
	return func(o *parseOptions) {
		if sep != "" {
			o.separator = sep
		}
	}
}

// WithStripHTML removes markup from the text part before validation.
func WithStripHTML() ParseOption {
	return func(o *parseOptions) {
		o.stripHTML = true
	}
}

// WithCollapseSpace trims the text part and folds runs of whitespace into a
// single space before validation.
func WithCollapseSpace() ParseOption {
	return func(o *parseOptions) {
		o.collapseSpace = true
	}
}

// WithValueOptions passes options to the constructors of parsed values.
func WithValueOptions(opts ...langstring.Option) ParseOption {
	return func(o *parseOptions) {
		o.valueOpts = append(o.valueOpts, opts...)
	}
}

func newParseOptions(opts []ParseOption) *parseOptions {
	o := &parseOptions{separator: langstring.DefaultSeparator}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// FromString parses s in the "text"@lang form.
//
// The input is split at the last separator. Surrounding double quotes on the
// text part are removed and the tag is trimmed. Input without a separator,
// or any input when ignoreAtSign is set, becomes an untagged LangString
// holding s unchanged.
func FromString(s string, ignoreAtSign bool, opts ...ParseOption) (langstring.LangString, error) {
	return parse(s, ignoreAtSign, newParseOptions(opts))
}

// FromStrings parses every string and collects the results into one
// MultiLangString. Untagged inputs go to its untagged set.
func FromStrings(ss []string, ignoreAtSign bool, opts ...ParseOption) (*langstring.MultiLangString, error) {
	o := newParseOptions(opts)

	mls, err := langstring.NewMultiLangString(nil, o.valueOpts...)
	if err != nil {
		return nil, err
	}
	for _, s := range ss {
		ls, err := parse(s, ignoreAtSign, o)
		if err != nil {
			return nil, err
		}
		if err := mls.AddLangString(ls); err != nil {
			return nil, err
		}
	}
	return mls, nil
}

func parse(s string, ignoreAtSign bool, o *parseOptions) (langstring.LangString, error) {
	idx := strings.LastIndex(s, o.separator)
	if ignoreAtSign || idx < 0 {
		return langstring.NewUntagged(o.clean(s), o.valueOpts...)
	}

	text := s[:idx]
	lang := strings.TrimSpace(s[idx+len(o.separator):])
	if len(text) >= 2 && strings.HasPrefix(text, `"`) && strings.HasSuffix(text, `"`) {
		text = text[1 : len(text)-1]
	}
	return langstring.New(o.clean(text), lang, o.valueOpts...)
}

func (o *parseOptions) clean(text string) string {
	switch {
	case o.stripHTML && o.collapseSpace:
		return sanitizer.Text(text)
	case o.stripHTML:
		return sanitizer.StripHTML(text)
	case o.collapseSpace:
		return sanitizer.CollapseSpace(text)
	default:
		return text
	}
}
