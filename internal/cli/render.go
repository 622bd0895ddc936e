package cli

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/langstring"
	"github.com/dmitrymomot/langstring/pkg/convert"
)

func newRenderCmd(a *app) *cobra.Command {
	var (
		layout    renderFlags
		noLang    bool
		langs     []string
		ignoreAt  bool
		stripHTML bool
		collapse  bool
	)

	cmd := &cobra.Command{
		Use:   "render VALUE...",
		Short: "Parse values and print them in canonical form",
		Long: `Parse each VALUE as "text"@lang (or bare text) and print the collected
values grouped by language, one per line.`,
		Example: `  langstring render '"Bonjour"@fr' Hello@en Hi@en
  langstring render --lang fr --no-quotes '"Bonjour"@fr' Hello@en`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			layout.showLang = !noLang

			var parseOpts []convert.ParseOption
			if stripHTML {
				parseOpts = append(parseOpts, convert.WithStripHTML())
			}
			if collapse {
				parseOpts = append(parseOpts, convert.WithCollapseSpace())
			}
			mls, err := a.collect(args, ignoreAt, parseOpts...)
			if err != nil {
				return err
			}

			values, err := convert.ToLangStrings(mls, langs, a.lsOpts...)
			if err != nil {
				return err
			}
			for _, ls := range values {
				a.style.value(ls, layout)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.BoolVar(&layout.noQuotes, "no-quotes", false, "do not quote tagged text")
	f.BoolVar(&noLang, "no-lang", false, "omit language tags")
	f.StringVar(&layout.separator, "separator", langstring.DefaultSeparator, "separator between text and tag")
	f.StringSliceVar(&langs, "lang", nil, "only print these languages (repeatable)")
	f.BoolVar(&ignoreAt, "ignore-at", false, "treat every value as untagged text")
	f.BoolVar(&stripHTML, "strip-html", false, "remove markup from text")
	f.BoolVar(&collapse, "collapse-space", false, "trim text and fold runs of whitespace")

	return cmd
}

// collect parses every argument as a LangString and gathers them into one
// MultiLangString, validating each domain with its own flags.
func (a *app) collect(args []string, ignoreAt bool, opts ...convert.ParseOption) (*langstring.MultiLangString, error) {
	mls, err := langstring.NewMultiLangString(nil, a.mlsOpts...)
	if err != nil {
		return nil, err
	}

	opts = append(opts, convert.WithValueOptions(a.lsOpts...))
	for _, arg := range args {
		ls, err := convert.FromString(arg, ignoreAt, opts...)
		if err != nil {
			return nil, err
		}
		if err := mls.AddLangString(ls); err != nil {
			return nil, err
		}
	}
	return mls, nil
}
