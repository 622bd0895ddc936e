// Package langtag answers one question for the rest of the module: is this
// string a usable language tag?
//
// The answer comes from a [Checker]. The package ships a BCP-47 checker built
// on golang.org/x/text/language and a memoising wrapper that keeps recent
// answers in a bounded LRU list:
//
//	checker := langtag.NewCached(langtag.BCP47{}, langtag.WithMaxEntries(256))
//	checker.Valid("pt-BR") // true
//	checker.Valid("!!")    // false
//
// Any function with the right shape can stand in for a checker, which keeps
// callers testable without a language database:
//
//	onlyEnglish := langtag.CheckerFunc(func(tag string) bool { return tag == "en" })
//
// # Negotiation
//
// [Negotiate] picks the best available tag for an Accept-Language style
// preference list, honouring quality values and falling back from regional
// variants to their base language:
//
//	lang, ok := langtag.Negotiate("pt-BR,pt;q=0.9,en;q=0.5", []string{"en", "pt"})
//	// lang == "pt", ok == true
//
// # Thread Safety
//
// [BCP47] is stateless. [Cached] guards its list with a mutex and collapses
// concurrent lookups of the same tag into one call to the wrapped checker.
package langtag
