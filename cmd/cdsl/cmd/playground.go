package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Sw1zzi/cdsl-visual-tester/internal/tui/playground"
	"github.com/Sw1zzi/cdsl-visual-tester/pkg/cdsl"
	"github.com/Sw1zzi/cdsl-visual-tester/pkg/core/cache"
	cdsllog "github.com/Sw1zzi/cdsl-visual-tester/pkg/core/log"
)

func newPlaygroundCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "playground [file]",
		Short: "Start the interactive editor",
		Long: `Start an editor that re-runs the description on every change and shows
tokens, syntax tree, specification and diagnostics side by side.

Navigation:
  Tab / Shift+Tab  - Switch view
  Ctrl+S           - Toggle focus between editor and view
  Ctrl+L           - Clear the editor
  Esc / Ctrl+C     - Quit`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var source string
			if len(args) == 1 {
				data, err := os.ReadFile(args[0])
				if err != nil {
					return fmt.Errorf("read description: %w", err)
				}
				source = string(data)
			}

			var resultCache *cache.Cache[*cdsl.Result]
			if c := a.cfg.Pipeline.Cache; c.Enabled {
				resultCache = cache.New[*cdsl.Result](cache.Config{
					MaxItems:        c.MaxItems,
					TTL:             c.TTL.Duration,
					CleanupInterval: time.Minute,
				})
				defer resultCache.Close()
			}

			// The terminal belongs to the UI while it runs
			quiet := cdsllog.Nop()
			err := playground.Run(playground.Config{
				Pipeline:   a.pipeline(quiet, resultCache),
				Translator: a.tr,
				Source:     source,
				Logger:     quiet,
			})
			if err != nil {
				return fmt.Errorf("playground: %w", err)
			}
			return nil
		},
	}
}
