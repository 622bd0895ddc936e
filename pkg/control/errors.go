package control

import "errors"

// Sentinel errors for validation and flag management.
var (
	// ErrInvalidText is returned when text violates EnsureText.
	ErrInvalidText = errors.New("control: invalid text")

	// ErrInvalidLang is returned when a language tag violates EnsureAnyLang
	// or, in strict mode, EnsureValidLang.
	ErrInvalidLang = errors.New("control: invalid language tag")

	// ErrInvalidFlag is returned for flag identifiers outside the closed set.
	ErrInvalidFlag = errors.New("control: invalid flag")

	// ErrInvalidDomain is returned for unknown validation domains.
	ErrInvalidDomain = errors.New("control: invalid domain")

	// ErrInvalidConfig is returned when flag configuration cannot be loaded.
	ErrInvalidConfig = errors.New("control: invalid configuration")
)
