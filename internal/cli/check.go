package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/langstring"
	"github.com/dmitrymomot/langstring/pkg/control"
	"github.com/dmitrymomot/langstring/pkg/convert"
)

func newCheckCmd(a *app) *cobra.Command {
	var (
		domain   string
		ignoreAt bool
	)

	cmd := &cobra.Command{
		Use:   "check VALUE...",
		Short: "Validate values against the active flags",
		Long: `Validate each VALUE against the flags of a domain and report the result
per value. The command fails when any value is rejected.`,
		Example: `  langstring check --ensure-valid-lang '"Bonjour"@fr' '"Hi"@xx'
  MULTILANGSTRING_ENSURE_TEXT=true langstring check --domain multilangstring '""@en'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := control.ParseDomain(domain)
			if err != nil {
				return err
			}

			failed := 0
			for _, arg := range args {
				ls, err := a.check(d, arg, ignoreAt)
				if err != nil {
					failed++
					a.style.fail(fmt.Sprintf("%s: %v", arg, err))
					continue
				}
				a.style.ok(ls.String())
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d values failed validation", failed, len(args))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&domain, "domain", control.LangStringDomain.String(), "validation domain: langstring or multilangstring")
	cmd.Flags().BoolVar(&ignoreAt, "ignore-at", false, "treat every value as untagged text")

	return cmd
}

// check parses arg and validates it in domain. MultiLangString values are
// parsed without validation and checked when added to a collection.
func (a *app) check(d control.Domain, arg string, ignoreAt bool) (langstring.LangString, error) {
	if d == control.LangStringDomain {
		return convert.FromString(arg, ignoreAt, convert.WithValueOptions(a.lsOpts...))
	}

	unchecked := langstring.WithValidator(control.NewValidator(nil))
	ls, err := convert.FromString(arg, ignoreAt, convert.WithValueOptions(unchecked))
	if err != nil {
		return langstring.LangString{}, err
	}
	mls, err := langstring.NewMultiLangString(nil, a.mlsOpts...)
	if err != nil {
		return langstring.LangString{}, err
	}
	if err := mls.AddLangString(ls); err != nil {
		return langstring.LangString{}, err
	}
	return ls, nil
}
