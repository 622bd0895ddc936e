package cli

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/getsentry/sentry-go"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/langstring"
	"github.com/dmitrymomot/langstring/pkg/control"
	"github.com/dmitrymomot/langstring/pkg/logger"
)

// version is set at build time with -ldflags "-X ...cli.version=v1.2.3".
var version = "dev"

// sentryFlushTimeout bounds how long the CLI waits for buffered events on exit.
const sentryFlushTimeout = 2 * time.Second

// app holds the state shared by all commands of one invocation.
type app struct {
	ensureText      bool
	ensureAnyLang   bool
	ensureValidLang bool
	lenient         bool
	noColor         bool
	verbose         bool
	envFiles        []string

	log     *slog.Logger
	lsOpts  []langstring.Option
	mlsOpts []langstring.Option
	style   *printer
}

// NewRootCmd builds the langstring command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "langstring",
		Short: "Parse, validate and render language-tagged strings",
		Long: `langstring works with text bound to language tags, written as "text"@lang.

Validation flags can be set per invocation (--ensure-*) or through the
environment: LANGSTRING_ENSURE_TEXT, MULTILANGSTRING_ENSURE_VALID_LANG and so on.
Command-line flags apply to both domains and override the environment.`,
		Version:           version,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			sentry.Flush(sentryFlushTimeout)
		},
	}
	root.SetVersionTemplate(fmt.Sprintf("langstring %s\n", version))

	pf := root.PersistentFlags()
	pf.BoolVar(&a.ensureText, "ensure-text", false, "reject empty text")
	pf.BoolVar(&a.ensureAnyLang, "ensure-any-lang", false, "require a non-empty language tag")
	pf.BoolVar(&a.ensureValidLang, "ensure-valid-lang", false, "require a valid BCP 47 language tag")
	pf.BoolVar(&a.lenient, "lenient", false, "log invalid language tags instead of failing")
	pf.BoolVar(&a.noColor, "no-color", false, "disable colored output")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "log at debug level")
	pf.StringSliceVar(&a.envFiles, "env-file", nil, "load environment variables from `file` (repeatable)")

	root.AddCommand(
		newRenderCmd(a),
		newCheckCmd(a),
		newInspectCmd(a),
	)
	return root
}

// Execute runs the langstring command.
func Execute() error {
	return NewRootCmd().Execute()
}

// setup loads configuration, applies validation flags to the shared
// registries and prepares the logger and value options.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if len(a.envFiles) > 0 {
		if err := control.LoadEnvFiles(a.envFiles...); err != nil {
			return err
		}
	}

	cfg, err := control.LoadEnv()
	if err != nil {
		return err
	}
	a.override(cmd, &cfg)
	if err := cfg.Apply(); err != nil {
		return err
	}

	var sentryCfg logger.SentryConfig
	if err := env.Parse(&sentryCfg); err != nil {
		return fmt.Errorf("sentry config: %w", err)
	}
	level := slog.LevelInfo
	if a.verbose {
		level = slog.LevelDebug
	}
	a.log = logger.NewWithSentry(sentryCfg,
		logger.WithWriter(cmd.ErrOrStderr()),
		logger.WithLevel(level),
		logger.WithText(),
	)

	a.lsOpts = []langstring.Option{langstring.WithValidator(a.validator(control.LangStringDomain))}
	a.mlsOpts = []langstring.Option{langstring.WithValidator(a.validator(control.MultiLangStringDomain))}
	a.style = newPrinter(cmd.OutOrStdout(), a.noColor)

	a.log.Debug("configuration applied",
		slog.Any("langstring", cfg.LangString),
		slog.Any("multilangstring", cfg.MultiLangString),
		slog.Bool("lenient", a.lenient),
	)
	return nil
}

// override copies explicitly set --ensure-* flags into both domains.
func (a *app) override(cmd *cobra.Command, cfg *control.Config) {
	flags := []struct {
		name  string
		flag  control.Flag
		value bool
	}{
		{"ensure-text", control.EnsureText, a.ensureText},
		{"ensure-any-lang", control.EnsureAnyLang, a.ensureAnyLang},
		{"ensure-valid-lang", control.EnsureValidLang, a.ensureValidLang},
	}
	for _, f := range flags {
		if !cmd.Flags().Changed(f.name) {
			continue
		}
		for _, d := range []control.Domain{control.LangStringDomain, control.MultiLangStringDomain} {
			fc := cfg.For(d)
			switch f.flag {
			case control.EnsureText:
				fc.EnsureText = f.value
			case control.EnsureAnyLang:
				fc.EnsureAnyLang = f.value
			case control.EnsureValidLang:
				fc.EnsureValidLang = f.value
			}
		}
	}
}

func (a *app) validator(domain control.Domain) *control.Validator {
	opts := []control.ValidatorOption{control.WithLogger(a.log)}
	if a.lenient {
		opts = append(opts, control.WithLenientLang())
	}
	return control.NewValidator(control.Flags(domain), opts...)
}
