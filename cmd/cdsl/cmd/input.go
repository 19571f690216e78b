package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// sourceFlags selects where a command reads its description from
type sourceFlags struct {
	expr string
}

func (f *sourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.expr, "expr", "e", "", "description text instead of a file")
}

// read returns the description from --expr, the file argument, or stdin
// when the argument is "-" or missing
func (f *sourceFlags) read(cmd *cobra.Command, args []string) (string, error) {
	if cmd.Flags().Changed("expr") {
		if len(args) > 0 {
			return "", fmt.Errorf("use either --expr or a file argument, not both")
		}
		return f.expr, nil
	}

	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read description: %w", err)
	}
	return string(data), nil
}
