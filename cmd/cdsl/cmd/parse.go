package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Sw1zzi/cdsl-visual-tester/pkg/cdsl/ast"
	"github.com/Sw1zzi/cdsl-visual-tester/pkg/cdsl/diag"
)

func newParseCmd(a *app) *cobra.Command {
	var src sourceFlags

	cmd := &cobra.Command{
		Use:   "parse [file|-]",
		Short: "Print the syntax tree of a description",
		Long: `Print the syntax tree of a CDSL description, one node per line,
children indented below their parent. Parser diagnostics go to stderr.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := src.read(cmd, args)
			if err != nil {
				return err
			}

			res := a.pipeline(a.logger, nil).Run(source)
			if err := ast.Fprint(cmd.OutOrStdout(), res.AST); err != nil {
				return fmt.Errorf("write tree: %w", err)
			}
			a.printDiagnostics(cmd.ErrOrStderr(), res.Diagnostics.FromStages(diag.StagePipeline, diag.StageParser))
			return nil
		},
	}

	src.register(cmd)
	return cmd
}
