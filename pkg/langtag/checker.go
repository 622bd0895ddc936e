package langtag

import (
	"fmt"
	"strings"
	"sync"

	"golang.org/x/text/language"
)

// Checker reports whether a language tag is valid.
type Checker interface {
	Valid(tag string) bool
}

// CheckerFunc adapts an ordinary function to the Checker interface.
type CheckerFunc func(tag string) bool

// Valid calls f(tag).
func (f CheckerFunc) Valid(tag string) bool {
	return f(tag)
}

// BCP47 accepts tags that golang.org/x/text/language parses without error.
// Well-formed tags built from unregistered subtags are rejected.
type BCP47 struct{}

// Valid reports whether tag is a known BCP-47 language tag.
func (BCP47) Valid(tag string) bool {
	if strings.TrimSpace(tag) == "" {
		return false
	}
	_, err := language.Parse(tag)
	return err == nil
}

var defaultChecker = sync.OnceValue(func() Checker {
	return NewCached(BCP47{})
})

// Default returns the process-wide checker: a cached BCP47 checker.
func Default() Checker {
	return defaultChecker()
}

// Canonical returns the canonical form of tag, e.g. "EN-us" becomes "en-US".
func Canonical(tag string) (string, error) {
	t, err := language.Parse(tag)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrInvalidTag, tag, err)
	}
	return t.String(), nil
}

// Base strips everything after the primary language subtag ("en-US" -> "en").
// Tags without subtags are returned unchanged.
func Base(tag string) string {
	if i := strings.IndexAny(tag, "-_"); i > 0 {
		return tag[:i]
	}
	return tag
}

// Normalize lowercases tag and trims surrounding whitespace.
func Normalize(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}
