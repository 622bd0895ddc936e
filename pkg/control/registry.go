package control

import (
	"fmt"
	"maps"
)

// defaults holds the value every flag reports until it is set.
var defaults = map[Flag]bool{
	EnsureText:      false,
	EnsureAnyLang:   false,
	EnsureValidLang: false,
}

// Registry holds the flag values of one domain.
//
// A Registry is not synchronised. Changing flags while other goroutines
// validate values is a data race; callers that need it must serialise
// access themselves.
type Registry struct {
	flags  map[Flag]bool
	domain Domain
}

// NewRegistry creates an isolated registry with every flag at its default.
func NewRegistry(domain Domain) *Registry {
	return &Registry{
		flags:  make(map[Flag]bool, len(defaults)),
		domain: domain,
	}
}

// Domain returns the domain the registry governs.
func (r *Registry) Domain() Domain {
	return r.domain
}

// SetFlag sets one flag. It takes effect on the next validation; values
// built earlier are not re-checked.
func (r *Registry) SetFlag(flag Flag, value bool) error {
	if !flag.Valid() {
		return fmt.Errorf("%w: %s for %s", ErrInvalidFlag, flag, r.domain)
	}
	r.flags[flag] = value
	return nil
}

// GetFlag returns the current value of flag.
func (r *Registry) GetFlag(flag Flag) (bool, error) {
	if !flag.Valid() {
		return false, fmt.Errorf("%w: %s for %s", ErrInvalidFlag, flag, r.domain)
	}
	return r.enabled(flag), nil
}

// Flags returns a copy of all flag values, defaults included.
func (r *Registry) Flags() map[Flag]bool {
	out := maps.Clone(defaults)
	maps.Copy(out, r.flags)
	return out
}

// Reset restores every flag to its default.
func (r *Registry) Reset() {
	clear(r.flags)
}

func (r *Registry) enabled(flag Flag) bool {
	if v, ok := r.flags[flag]; ok {
		return v
	}
	return defaults[flag]
}

// Process-wide registries, one per domain.
var (
	langStringFlags      = NewRegistry(LangStringDomain)
	multiLangStringFlags = NewRegistry(MultiLangStringDomain)
)

// LangStringFlags returns the shared registry of the LangString domain.
func LangStringFlags() *Registry {
	return langStringFlags
}

// MultiLangStringFlags returns the shared registry of the MultiLangString domain.
func MultiLangStringFlags() *Registry {
	return multiLangStringFlags
}

// Flags returns the shared registry of domain, or nil for an unknown domain.
func Flags(domain Domain) *Registry {
	switch domain {
	case LangStringDomain:
		return langStringFlags
	case MultiLangStringDomain:
		return multiLangStringFlags
	default:
		return nil
	}
}

// SetFlag sets a flag on the shared registry of domain.
func SetFlag(domain Domain, flag Flag, value bool) error {
	r := Flags(domain)
	if r == nil {
		return fmt.Errorf("%w: %s", ErrInvalidDomain, domain)
	}
	return r.SetFlag(flag, value)
}

// GetFlag reads a flag from the shared registry of domain.
func GetFlag(domain Domain, flag Flag) (bool, error) {
	r := Flags(domain)
	if r == nil {
		return false, fmt.Errorf("%w: %s", ErrInvalidDomain, domain)
	}
	return r.GetFlag(flag)
}

// GetFlags returns a copy of the shared flag values of domain.
func GetFlags(domain Domain) (map[Flag]bool, error) {
	r := Flags(domain)
	if r == nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDomain, domain)
	}
	return r.Flags(), nil
}

// ResetFlags restores the defaults on both shared registries.
func ResetFlags() {
	langStringFlags.Reset()
	multiLangStringFlags.Reset()
}
