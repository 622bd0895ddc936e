package langstring_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/langstring"
	"github.com/dmitrymomot/langstring/pkg/control"
	"github.com/dmitrymomot/langstring/pkg/langtag"
)

var knownLangs = langtag.CheckerFunc(func(tag string) bool {
	switch tag {
	case "en", "fr", "de", "pt-BR":
		return true
	}
	return false
})

// isolated returns an option that validates against a private registry with
// the given flags turned on.
func isolated(t *testing.T, domain control.Domain, flags ...control.Flag) langstring.Option {
	t.Helper()

	r := control.NewRegistry(domain)
	for _, f := range flags {
		require.NoError(t, r.SetFlag(f, true))
	}
	return langstring.WithValidator(control.NewValidator(r, control.WithChecker(knownLangs)))
}
