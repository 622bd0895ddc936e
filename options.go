package langstring

import "github.com/dmitrymomot/langstring/pkg/control"

// DefaultPreferredLang is the preferred language of a new MultiLangString.
const DefaultPreferredLang = "en"

// Option configures value construction.
type Option func(*options)

type options struct {
	validator     *control.Validator
	preferredLang string
}

// WithValidator validates with v instead of the shared validator of the
// value's domain. Useful for isolated flag sets and custom language checkers.
func WithValidator(v *control.Validator) Option {
	return func(o *options) {
		o.validator = v
	}
}

// WithPreferredLang sets the preferred language of a MultiLangString.
// Other value types ignore it.
func WithPreferredLang(lang string) Option {
	return func(o *options) {
		o.preferredLang = lang
	}
}

func newOptions(domain control.Domain, opts []Option) *options {
	o := &options{preferredLang: DefaultPreferredLang}
	for _, opt := range opts {
		opt(o)
	}
	if o.validator == nil {
		o.validator = control.Default(domain)
	}
	return o
}
