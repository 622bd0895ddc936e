package control

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// FlagConfig is the flag set of one domain.
type FlagConfig struct {
	EnsureText      bool `env:"ENSURE_TEXT"`
	EnsureAnyLang   bool `env:"ENSURE_ANY_LANG"`
	EnsureValidLang bool `env:"ENSURE_VALID_LANG"`
}

// Config carries the flags of both domains.
//
// From the environment the variables are LANGSTRING_ENSURE_TEXT,
// LANGSTRING_ENSURE_ANY_LANG, LANGSTRING_ENSURE_VALID_LANG and the same three
// with a MULTILANGSTRING_ prefix.
type Config struct {
	LangString      FlagConfig `envPrefix:"LANGSTRING_"`
	MultiLangString FlagConfig `envPrefix:"MULTILANGSTRING_"`
}

// LoadEnv reads Config from the process environment.
func LoadEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrInvalidConfig, err)
	}
	return cfg, nil
}

// LoadEnvFrom reads Config from the given variables instead of the process
// environment.
func LoadEnvFrom(environ map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return Config{}, errors.Join(ErrInvalidConfig, err)
	}
	return cfg, nil
}

// LoadEnvFiles loads .env files into the process environment without
// overriding variables that are already set. With no paths it loads ".env".
func LoadEnvFiles(paths ...string) error {
	if err := godotenv.Load(paths...); err != nil {
		return errors.Join(ErrInvalidConfig, err)
	}
	return nil
}

// LoadYAML reads Config from a YAML document keyed by domain, then by flag
// identifier:
//
//	langstring:
//	  ENSURE_TEXT: true
//	multilangstring:
//	  ENSURE_VALID_LANG: true
//
// Unknown domains and flag identifiers are rejected. An empty document
// yields a Config with every flag off.
func LoadYAML(r io.Reader) (Config, error) {
	var raw map[string]map[string]bool
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return Config{}, nil
		}
		return Config{}, errors.Join(ErrInvalidConfig, err)
	}

	var cfg Config

	domains := make([]string, 0, len(raw))
	for k := range raw {
		domains = append(domains, k)
	}
	slices.Sort(domains)

	for _, domainKey := range domains {
		domain, err := ParseDomain(domainKey)
		if err != nil {
			return Config{}, errors.Join(ErrInvalidConfig, err)
		}
		target := cfg.For(domain)

		for flagKey, value := range raw[domainKey] {
			flag, err := ParseFlag(flagKey)
			if err != nil {
				return Config{}, errors.Join(ErrInvalidConfig, err)
			}
			target.set(flag, value)
		}
	}

	return cfg, nil
}

// For returns the flag set of domain, or nil for an unknown domain.
func (c *Config) For(domain Domain) *FlagConfig {
	switch domain {
	case LangStringDomain:
		return &c.LangString
	case MultiLangStringDomain:
		return &c.MultiLangString
	default:
		return nil
	}
}

// Apply writes the configuration to the shared registries.
func (c Config) Apply() error {
	return c.ApplyTo(LangStringFlags(), MultiLangStringFlags())
}

// ApplyTo writes the configuration to the given registries. A nil registry
// is skipped.
func (c Config) ApplyTo(langString, multiLangString *Registry) error {
	if err := c.LangString.applyTo(langString); err != nil {
		return err
	}
	return c.MultiLangString.applyTo(multiLangString)
}

// Values returns the flag set as a map keyed by flag.
func (fc FlagConfig) Values() map[Flag]bool {
	return map[Flag]bool{
		EnsureText:      fc.EnsureText,
		EnsureAnyLang:   fc.EnsureAnyLang,
		EnsureValidLang: fc.EnsureValidLang,
	}
}

func (fc *FlagConfig) set(flag Flag, value bool) {
	switch flag {
	case EnsureText:
		fc.EnsureText = value
	case EnsureAnyLang:
		fc.EnsureAnyLang = value
	case EnsureValidLang:
		fc.EnsureValidLang = value
	}
}

func (fc FlagConfig) applyTo(r *Registry) error {
	if r == nil {
		return nil
	}
	for flag, value := range fc.Values() {
		if err := r.SetFlag(flag, value); err != nil {
			return fmt.Errorf("applying %s: %w", r.domain, err)
		}
	}
	return nil
}
