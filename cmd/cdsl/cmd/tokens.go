package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Sw1zzi/cdsl-visual-tester/internal/tui"
	"github.com/Sw1zzi/cdsl-visual-tester/pkg/cdsl/diag"
)

func newTokensCmd(a *app) *cobra.Command {
	var (
		src    sourceFlags
		format string
	)

	cmd := &cobra.Command{
		Use:   "tokens [file|-]",
		Short: "Print the token stream of a description",
		Long: `Print the tokens of a CDSL description with their positions.

Formats:
  table  - aligned table (default)
  plain  - one TYPE(value) token per line`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "table" && format != "plain" {
				return fmt.Errorf("unknown format %q: want table or plain", format)
			}
			source, err := src.read(cmd, args)
			if err != nil {
				return err
			}

			res := a.pipeline(a.logger, nil).Run(source)
			out := cmd.OutOrStdout()
			if format == "plain" {
				for _, tok := range res.Tokens {
					fmt.Fprintf(out, "%d:%d %s\n", tok.Line, tok.Column, tok)
				}
			} else if len(res.Tokens) > 0 {
				fmt.Fprintln(out, tui.TokenTable(res.Tokens))
			}
			a.printDiagnostics(cmd.ErrOrStderr(), res.Diagnostics.FromStages(diag.StagePipeline))
			return nil
		},
	}

	src.register(cmd)
	cmd.Flags().StringVarP(&format, "output", "o", "table", "output format (table, plain)")
	return cmd
}
