package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/Sw1zzi/cdsl-visual-tester/internal/tui"
	"github.com/Sw1zzi/cdsl-visual-tester/pkg/cdsl"
	"github.com/Sw1zzi/cdsl-visual-tester/pkg/cdsl/diag"
	"github.com/Sw1zzi/cdsl-visual-tester/pkg/core/cache"
	"github.com/Sw1zzi/cdsl-visual-tester/pkg/core/config"
	"github.com/Sw1zzi/cdsl-visual-tester/pkg/core/i18n"
	cdsllog "github.com/Sw1zzi/cdsl-visual-tester/pkg/core/log"
	"github.com/Sw1zzi/cdsl-visual-tester/pkg/core/logging"
)

// app holds the state shared by all subcommands of one invocation
type app struct {
	// Flags
	cfgFile string
	verbose bool
	locale  string
	noColor bool

	cfg    *config.Config
	logger *cdsllog.Logger
	tr     *i18n.Manager
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "cdsl",
		Short: "CDSL - combinatorics problem description toolkit",
		Long: `cdsl reads problem descriptions written in CDSL and shows how they are
understood: the token stream, the syntax tree and the resulting problem
specification.

Commands:
  tokens      - Token table of a description
  parse       - Syntax tree of a description
  interpret   - Problem specification (yaml, json or text)
  playground  - Interactive editor with live views

Input is read from a file argument, from -e/--expr, or from stdin ("-").`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: $CDSL_CONFIG, ./cdsl.toml, ~/.config/cdsl/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging to stderr")
	rootCmd.PersistentFlags().StringVar(&a.locale, "locale", "", "display language (en, ru)")
	rootCmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(
		newTokensCmd(a),
		newParseCmd(a),
		newInterpretCmd(a),
		newPlaygroundCmd(a),
		newVersionCmd(),
	)
	return rootCmd
}

// Execute runs the CLI
func Execute() error {
	return newRootCmd().Execute()
}

// setup loads configuration, applies flag overrides and builds the logger
// and translator
func (a *app) setup(cmd *cobra.Command) error {
	var err error
	if a.cfgFile != "" {
		a.cfg, err = config.Load(a.cfgFile)
	} else {
		a.cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	if a.locale != "" {
		a.cfg.General.Locale = strings.ToLower(a.locale)
	}
	if a.verbose {
		a.cfg.Logging.Level = "debug"
	}
	if a.noColor {
		a.cfg.Output.Color = false
	}
	if err := a.cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if !a.cfg.Output.Color {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	a.logger = logging.NewLogger(logging.LoggerConfig{
		ServiceName: "cdsl",
		Level:       a.cfg.Logging.Level,
		Format:      a.cfg.Logging.Format,
		Output:      cmd.ErrOrStderr(),
	})
	a.logger.Debug("Configuration loaded", cdsllog.Fields{
		"source": a.cfg.Source(),
		"locale": a.cfg.General.Locale,
	})

	a.tr, err = i18n.New(i18n.Options{Locale: a.cfg.General.Locale})
	if err != nil {
		return fmt.Errorf("load messages: %w", err)
	}
	return nil
}

// pipeline builds a pipeline from the configuration
func (a *app) pipeline(logger *cdsllog.Logger, resultCache *cache.Cache[*cdsl.Result]) *cdsl.Pipeline {
	return cdsl.New(cdsl.Options{
		Logger:           logger,
		MaxInputLength:   a.cfg.Pipeline.MaxInputLength,
		QuietUnknownTask: !a.cfg.Pipeline.WarnUnknownTask,
		Cache:            resultCache,
	})
}

// printDiagnostics writes one line per diagnostic
func (a *app) printDiagnostics(w io.Writer, list diag.List) {
	for _, d := range list {
		fmt.Fprintln(w, tui.DiagnosticLine(a.tr, d))
	}
}
