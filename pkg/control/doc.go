// Package control holds the validation policy shared by every language-tagged
// value in the module.
//
// Policy is a small closed set of boolean flags kept per domain: one
// [Registry] for LangString and SetLangString values, another for
// MultiLangString values. All flags start off, so by default any text and
// any tag (including none) is accepted.
//
//	EnsureText       text must not be empty
//	EnsureAnyLang    a non-empty language tag must be present
//	EnsureValidLang  the tag must satisfy a langtag.Checker
//
// # Shared Registries
//
// The process-wide registries are reached through [LangStringFlags],
// [MultiLangStringFlags] or [Flags], and the package-level helpers:
//
//	_ = control.SetFlag(control.LangStringDomain, control.EnsureText, true)
//	on, _ := control.GetFlag(control.LangStringDomain, control.EnsureText)
//	control.ResetFlags()
//
// A flag change affects the next validation only; values built earlier keep
// whatever state they had.
//
// # Isolated Registries
//
// Tests and embedders that must not touch global state build their own
// registry and validator and pass the validator to value constructors:
//
//	reg := control.NewRegistry(control.LangStringDomain)
//	_ = reg.SetFlag(control.EnsureValidLang, true)
//	v := control.NewValidator(reg,
//		control.WithChecker(langtag.BCP47{}),
//		control.WithLenientLang(),
//	)
//
// # Strict and Lenient
//
// A validator is strict by default: a tag rejected under EnsureValidLang
// fails with [ErrInvalidLang]. With [WithLenientLang] the same tag is only
// logged at Warn level and the value is accepted.
//
// # Configuration
//
// Flags can be loaded from the environment ([LoadEnv], optionally after
// [LoadEnvFiles]) or from YAML ([LoadYAML]) and applied with [Config.Apply].
//
// # Thread Safety
//
// Registries are not synchronised. Set flags during start-up, or guard flag
// changes and validations with your own lock.
package control
