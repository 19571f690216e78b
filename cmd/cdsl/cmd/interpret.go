package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Sw1zzi/cdsl-visual-tester/internal/tui"
	"github.com/Sw1zzi/cdsl-visual-tester/pkg/cdsl/problem"
)

func newInterpretCmd(a *app) *cobra.Command {
	var (
		src    sourceFlags
		format string
	)

	cmd := &cobra.Command{
		Use:   "interpret [file|-]",
		Short: "Print the problem specification of a description",
		Long: `Run a CDSL description through lexer, parser and interpreter and print
the resulting problem specification. Diagnostics of all stages go to stderr.

Formats:
  yaml  - full specification document
  json  - same document as JSON
  text  - one-line summary

The default format comes from [output] format in the configuration.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("output") {
				format = a.cfg.Output.Format
			}
			source, err := src.read(cmd, args)
			if err != nil {
				return err
			}

			res := a.pipeline(a.logger, nil).Run(source)
			out, err := renderSpec(res.Spec, strings.ToLower(format))
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			a.printDiagnostics(cmd.ErrOrStderr(), res.Diagnostics)
			return nil
		},
	}

	src.register(cmd)
	cmd.Flags().StringVarP(&format, "output", "o", "yaml", "output format (yaml, json, text)")
	return cmd
}

func renderSpec(spec *problem.Specification, format string) (string, error) {
	switch format {
	case "yaml":
		return tui.SpecYAML(spec)
	case "json":
		data, err := json.MarshalIndent(spec, "", "  ")
		if err != nil {
			return "", fmt.Errorf("encode specification: %w", err)
		}
		return string(data) + "\n", nil
	case "text":
		return spec.Summary() + "\n", nil
	default:
		return "", fmt.Errorf("unknown format %q: want yaml, json or text", format)
	}
}
