package langstring

// DefaultSeparator sits between text and language tag in rendered output.
const DefaultSeparator = "@"

// RenderOption configures how a text and its tag are printed.
type RenderOption func(*renderOptions)

type renderOptions struct {
	separator string
	quotes    bool
	lang      bool
}

// WithQuotes controls whether tagged text is wrapped in double quotes.
// Default: true.
func WithQuotes(on bool) RenderOption {
	return func(o *renderOptions) {
		o.quotes = on
	}
}

// WithSeparator sets the string placed between text and tag.
// Default: "@".
func WithSeparator(sep string) RenderOption {
	return func(o *renderOptions) {
		o.separator = sep
	}
}

// WithLang controls whether the tag is printed at all.
// Default: true.
func WithLang(on bool) RenderOption {
	return func(o *renderOptions) {
		o.lang = on
	}
}

// render prints text in the canonical "text"@lang form, or as bare text when
// lang is empty. Options only change the tagged form.
func render(text, lang string, opts []RenderOption) string {
	if lang == "" {
		return text
	}

	o := renderOptions{separator: DefaultSeparator, quotes: true, lang: true}
	for _, opt := range opts {
		opt(&o)
	}

	out := text
	if o.quotes {
		out = `"` + text + `"`
	}
	if o.lang {
		out += o.separator + lang
	}
	return out
}
