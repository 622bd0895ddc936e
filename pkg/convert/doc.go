// Package convert moves text between the three language-tagged shapes of
// package langstring and between those shapes and plain strings.
//
// Conversions switch over the closed langstring.Value set. A nil value, or a
// typed nil pointer, fails with langstring.ErrInvalidType. Every result is
// built through the target constructor, so it is validated against the
// target's flags and may fail with ErrInvalidText or ErrInvalidLang:
//
//	mls, _ := langstring.NewMultiLangString(map[string][]string{
//		"en": {"Hello"},
//		"fr": {"Bonjour"},
//	})
//	all, _ := convert.ToLangStrings(mls, nil)          // both entries
//	fr, _ := convert.ToLangStrings(mls, []string{"fr"}) // "Bonjour"@fr only
//	_, err := convert.ToLangString(mls)                // ErrAmbiguousConversion
//
// A nil language filter keeps every language, while an empty non-nil filter
// keeps none. Untagged values match the "" language. Languages in the filter
// that the value does not hold are ignored.
//
// Untagged values stay untagged through every conversion: a MultiLangString
// keeps them in a separate set, apart from texts tagged with "".
//
// # Parsing
//
// [FromString] reads the canonical "text"@lang form back:
//
//	ls, _ := convert.FromString(`"Bonjour"@fr`, false) // text Bonjour, lang fr
//	ls, _ = convert.FromString("Hi", false)            // untagged Hi
//	ls, _ = convert.FromString("me@example.com", true) // untagged, @ kept
//
// The split happens at the last separator, so texts may themselves contain
// "@". Pass ignoreAtSign for input such as e-mail addresses that carries no
// tag at all.
package convert
