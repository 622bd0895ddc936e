// Package langstring models text bound to a language tag.
//
// Three value types cover the common shapes:
//
//	LangString       one text with an optional tag
//	SetLangString    a set of distinct texts sharing one tag
//	MultiLangString  a map from tag to a set of texts, plus untagged texts
//
// MultiLangString keeps untagged texts apart from texts tagged with the empty
// language, so a value converted into it and back keeps [LangString.HasLang].
//
// All three implement [Value], a closed sum type that package convert
// switches over when turning one shape into another.
//
// # Validation
//
// Construction and every mutation validate against the flags of package
// control. LangString and SetLangString use the LangString domain;
// MultiLangString uses its own. With all flags off (the default) anything is
// accepted:
//
//	_ = control.SetFlag(control.LangStringDomain, control.EnsureText, true)
//
//	_, err := langstring.New("", "en")
//	errors.Is(err, langstring.ErrInvalidText) // true
//
// Pass [WithValidator] to use an isolated registry or a different language
// checker instead of the shared one.
//
// # Rendering
//
// String prints the canonical form, "text"@lang for tagged values and the
// bare text otherwise:
//
//	ls, _ := langstring.New("Bonjour", "fr")
//	ls.String() // "Bonjour"@fr
//
//	mls, _ := langstring.NewMultiLangString(map[string][]string{
//		"en": {"Hello", "Hi"},
//		"fr": {"Bonjour"},
//	})
//	mls.String() // "Hello"@en, "Hi"@en, "Bonjour"@fr
//
// Collections iterate languages and texts in ascending order, so output is
// deterministic.
//
// # Lookups
//
// Single-entry lookups are strict and fail with [ErrNotFound]. Bulk reads
// such as [MultiLangString.Strings] are lenient and return an empty result for
// an absent language.
//
// # Encoding
//
// Every type implements json.Marshaler/Unmarshaler and yaml.Marshaler/
// Unmarshaler. Decoding validates like the constructors do.
package langstring
