package control

import (
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/langstring/pkg/langtag"
)

// Validator checks text and language pairs against a registry.
type Validator struct {
	registry    *Registry
	checker     langtag.Checker
	logger      *slog.Logger
	lenientLang bool
}

// ValidatorOption configures a Validator.
type ValidatorOption func(*Validator)

// WithChecker sets the language checker consulted by EnsureValidLang.
// Default: langtag.Default().
func WithChecker(c langtag.Checker) ValidatorOption {
	return func(v *Validator) {
		if c != nil {
			v.checker = c
		}
	}
}

// WithLogger sets the sink for lenient-mode warnings.
// Default: slog.Default() at the time of the warning.
func WithLogger(l *slog.Logger) ValidatorOption {
	return func(v *Validator) {
		v.logger = l
	}
}

// WithLenientLang turns EnsureValidLang failures into warnings: the invalid
// tag is logged and the value is accepted. EnsureText and EnsureAnyLang stay
// strict.
func WithLenientLang() ValidatorOption {
	return func(v *Validator) {
		v.lenientLang = true
	}
}

// NewValidator creates a validator reading flags from registry.
// A nil registry behaves like a fresh one with every flag off.
func NewValidator(registry *Registry, opts ...ValidatorOption) *Validator {
	if registry == nil {
		registry = NewRegistry(LangStringDomain)
	}

	v := &Validator{
		registry: registry,
		checker:  langtag.Default(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Default returns a strict validator bound to the shared registry of domain.
// Unknown domains get an isolated registry with every flag off.
func Default(domain Domain) *Validator {
	return NewValidator(Flags(domain))
}

// Registry returns the registry the validator reads.
func (v *Validator) Registry() *Registry {
	return v.registry
}

// Lenient reports whether invalid language tags only produce warnings.
func (v *Validator) Lenient() bool {
	return v.lenientLang
}

// Validate checks one text and language pair against the current flags.
// hasLang distinguishes a missing tag from an explicit empty one; both fail
// EnsureAnyLang and EnsureValidLang.
func (v *Validator) Validate(text, lang string, hasLang bool) error {
	r := v.registry

	if r.enabled(EnsureText) && text == "" {
		return fmt.Errorf("%w: empty text violates %s", ErrInvalidText, EnsureText)
	}

	if r.enabled(EnsureAnyLang) && (!hasLang || lang == "") {
		return fmt.Errorf("%w: text %q has no language tag, violates %s", ErrInvalidLang, text, EnsureAnyLang)
	}

	if r.enabled(EnsureValidLang) && (!hasLang || !v.checker.Valid(lang)) {
		if !v.lenientLang {
			return fmt.Errorf("%w: %q is not a valid language tag, violates %s", ErrInvalidLang, lang, EnsureValidLang)
		}
		v.log().Warn("invalid language tag accepted",
			slog.String("text", text),
			slog.String("lang", lang),
			slog.String("flag", EnsureValidLang.String()),
			slog.String("domain", r.domain.String()),
		)
	}

	return nil
}

func (v *Validator) log() *slog.Logger {
	if v.logger != nil {
		return v.logger
	}
	return slog.Default()
}
