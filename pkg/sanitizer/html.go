package sanitizer

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = sync.OnceValue(bluemonday.StrictPolicy)

// StripHTML removes every tag (script and style bodies included) and decodes
// entities, so "<b>caf&eacute;</b>" becomes "café".
func StripHTML(s string) string {
	if s == "" {
		return ""
	}
	return html.UnescapeString(strictPolicy().Sanitize(s))
}

// CollapseSpace trims s and folds every run of whitespace into one space.
func CollapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Text strips markup and collapses whitespace.
func Text(s string) string {
	return CollapseSpace(StripHTML(s))
}
