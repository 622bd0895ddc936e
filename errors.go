package langstring

import (
	"errors"

	"github.com/dmitrymomot/langstring/pkg/control"
)

// Sentinel errors for value construction, lookup and conversion.
var (
	// ErrInvalidType is returned when a value of the wrong kind (or nil) is
	// passed where a LangString, SetLangString or MultiLangString is required.
	ErrInvalidType = errors.New("langstring: invalid value type")

	// ErrNotFound is returned by strict single-entry lookups.
	ErrNotFound = errors.New("langstring: entry not found")

	// ErrAmbiguousConversion is returned when a conversion to a single
	// LangString meets more than one entry.
	ErrAmbiguousConversion = errors.New("langstring: ambiguous conversion")

	// ErrInvalidJSON is returned when a JSON document does not describe a value.
	ErrInvalidJSON = errors.New("langstring: invalid JSON")

	// ErrInvalidYAML is returned when a YAML document does not describe a value.
	ErrInvalidYAML = errors.New("langstring: invalid YAML")
)

// Validation errors, shared with package control so errors.Is works with
// either name.
var (
	ErrInvalidText = control.ErrInvalidText
	ErrInvalidLang = control.ErrInvalidLang
	ErrInvalidFlag = control.ErrInvalidFlag
)
