package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/langstring"
	"github.com/dmitrymomot/langstring/pkg/convert"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
	formatText = "text"
)

func newInspectCmd(a *app) *cobra.Command {
	var (
		input  string
		output string
		langs  []string
		accept string
		layout = renderFlags{showLang: true, separator: langstring.DefaultSeparator}
	)

	cmd := &cobra.Command{
		Use:   "inspect FILE",
		Short: "Load a MultiLangString document and summarise it",
		Long: `Load a MultiLangString from a JSON or YAML document, validate it and print
its entries. FILE may be "-" for standard input; the format is taken from the
file extension unless --input is given.

Documents have the form
{"entries": {"en": ["Hello"]}, "untagged": ["Hi"], "preferred_lang": "en"}.`,
		Example: `  langstring inspect greetings.yaml
  langstring inspect --accept "fr-CA, en;q=0.5" greetings.json
  langstring inspect --lang fr --output json greetings.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := inputFormat(args[0], input)
			if err != nil {
				return err
			}
			data, err := readInput(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}

			mls, err := a.decode(data, format)
			if err != nil {
				return err
			}
			a.log.Debug("document loaded",
				"path", args[0],
				"langs", mls.LenLangs(),
				"entries", mls.Len(),
			)

			if len(langs) > 0 {
				if mls, err = a.filter(mls, langs); err != nil {
					return err
				}
			}

			switch output {
			case formatJSON:
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(mls)
			case formatYAML:
				enc := yaml.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent(2)
				if err := enc.Encode(mls); err != nil {
					return err
				}
				return enc.Close()
			case formatText:
				a.summary(mls, accept, layout)
				return nil
			default:
				return fmt.Errorf("unknown output format %q", output)
			}
		},
	}

	f := cmd.Flags()
	f.StringVar(&input, "input", "", "input format: json or yaml (default from extension)")
	f.StringVarP(&output, "output", "o", formatText, "output format: text, json or yaml")
	f.StringSliceVar(&langs, "lang", nil, "only keep these languages (repeatable)")
	f.StringVar(&accept, "accept", "", "print the entries best matching an Accept-Language header")

	return cmd
}

func (a *app) decode(data []byte, format string) (*langstring.MultiLangString, error) {
	mls, err := langstring.NewMultiLangString(nil, a.mlsOpts...)
	if err != nil {
		return nil, err
	}
	if format == formatYAML {
		err = yaml.Unmarshal(data, mls)
	} else {
		err = json.Unmarshal(data, mls)
	}
	if err != nil {
		return nil, err
	}
	return mls, nil
}

// filter keeps only langs, preserving the preferred language.
func (a *app) filter(mls *langstring.MultiLangString, langs []string) (*langstring.MultiLangString, error) {
	kept, err := convert.ToSetLangStrings(mls, langs, a.lsOpts...)
	if err != nil {
		return nil, err
	}

	opts := slices.Concat(a.mlsOpts, []langstring.Option{langstring.WithPreferredLang(mls.PreferredLang())})
	out, err := langstring.NewMultiLangString(nil, opts...)
	if err != nil {
		return nil, err
	}
	for _, s := range kept {
		if err := out.Add(s); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (a *app) summary(mls *langstring.MultiLangString, accept string, layout renderFlags) {
	p := a.style
	p.muted("%d entries in %d languages, preferred %q", mls.Len(), mls.LenLangs(), mls.PreferredLang())

	if accept != "" {
		for _, ls := range mls.Negotiate(accept) {
			p.value(ls, layout)
		}
		return
	}

	if n := mls.LenUntagged(); n > 0 {
		p.muted("(untagged): %d", n)
		for _, ls := range mls.UntaggedLangStrings() {
			p.value(ls, layout)
		}
	}
	for _, lang := range mls.Langs() {
		name := lang
		if name == "" {
			name = `""`
		}
		p.muted("%s: %d", name, mls.LenLang(lang))
		for _, ls := range mls.LangStrings(lang) {
			p.value(ls, layout)
		}
	}
}

func inputFormat(path, explicit string) (string, error) {
	switch strings.ToLower(explicit) {
	case formatJSON, formatYAML:
		return strings.ToLower(explicit), nil
	case "":
	default:
		return "", fmt.Errorf("unknown input format %q", explicit)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return formatYAML, nil
	default:
		return formatJSON, nil
	}
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}
