package commands

import (
	"fmt"

	"github.com/simonhull/lyrebird/internal/catalog"
	"github.com/simonhull/lyrebird/internal/config"
	"github.com/simonhull/lyrebird/internal/output"
	"github.com/simonhull/lyrebird/internal/runner"
	"github.com/spf13/cobra"
)

// RunCmd creates the 'run' command, which executes one demo or the
// whole catalog.
func RunCmd(reg *catalog.Registry) *cobra.Command {
	var noSpinner bool

	cmd := &cobra.Command{
		Use:   "run <pattern>|all",
		Short: "Run a pattern demo (or every demo)",
		Long: `Run one registered pattern demo and print its output lines, or run
'all' for every demo in registration order with a summary line each.

The exit status is nonzero if the pattern is unknown or any demo fails.

Examples:
  lyrebird run singleton
  lyrebird run all`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Arguments are valid once RunE starts; runtime failures
			// should not print the usage block.
			cmd.SilenceUsage = true

			cfg, err := config.Load(reg.Names())
			if err != nil {
				return err
			}

			all := args[0] == "all"
			var names []string
			if !all {
				names = []string{args[0]}
			}

			opts := runner.Options{
				Writer:     cmd.OutOrStdout(),
				ShowOutput: !all,
				Spinner:    all && cfg.Spinner && !noSpinner,
				Skip:       cfg.Skip,
			}

			summary, err := runner.Run(cmd.Context(), reg, names, opts)
			if err != nil {
				return err
			}

			if !summary.Succeeded() {
				return fmt.Errorf("%d of %d demo(s) failed", summary.Failed, len(summary.Results))
			}
			if all {
				output.Success(fmt.Sprintf("%d demo(s) passed", len(summary.Results)))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noSpinner, "no-spinner", false, "Disable the progress spinner")

	return cmd
}
