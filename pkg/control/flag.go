package control

import (
	"fmt"
	"strings"
)

// Flag identifies one validation switch.
type Flag int

const (
	// EnsureText rejects empty text.
	EnsureText Flag = iota + 1
	// EnsureAnyLang rejects a missing or empty language tag.
	EnsureAnyLang
	// EnsureValidLang rejects tags the language checker does not accept.
	EnsureValidLang
)

var flagNames = map[Flag]string{
	EnsureText:      "ENSURE_TEXT",
	EnsureAnyLang:   "ENSURE_ANY_LANG",
	EnsureValidLang: "ENSURE_VALID_LANG",
}

// AllFlags returns every flag in declaration order.
func AllFlags() []Flag {
	return []Flag{EnsureText, EnsureAnyLang, EnsureValidLang}
}

// Valid reports whether f belongs to the closed set of flags.
func (f Flag) Valid() bool {
	_, ok := flagNames[f]
	return ok
}

func (f Flag) String() string {
	if name, ok := flagNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Flag(%d)", int(f))
}

// ParseFlag resolves a flag identifier such as "ENSURE_TEXT".
// Matching ignores case and accepts '-' in place of '_'.
func ParseFlag(s string) (Flag, error) {
	name := strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(s)), "-", "_")
	for f, n := range flagNames {
		if n == name {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidFlag, s)
}

// Domain names the value type a registry governs.
type Domain int

const (
	// LangStringDomain governs LangString and SetLangString values.
	LangStringDomain Domain = iota + 1
	// MultiLangStringDomain governs MultiLangString values.
	MultiLangStringDomain
)

// Valid reports whether d is a known domain.
func (d Domain) Valid() bool {
	return d == LangStringDomain || d == MultiLangStringDomain
}

func (d Domain) String() string {
	switch d {
	case LangStringDomain:
		return "langstring"
	case MultiLangStringDomain:
		return "multilangstring"
	default:
		return fmt.Sprintf("Domain(%d)", int(d))
	}
}

// ParseDomain resolves "langstring" or "multilangstring", ignoring case.
func ParseDomain(s string) (Domain, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "langstring":
		return LangStringDomain, nil
	case "multilangstring":
		return MultiLangStringDomain, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidDomain, s)
	}
}
