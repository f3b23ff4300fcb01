package commands

import (
	"github.com/simonhull/lyrebird"
	"github.com/simonhull/lyrebird/internal/output"
	"github.com/spf13/cobra"
)

// RootCmd creates and returns the root command for the Lyrebird CLI
func RootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "lyrebird",
		Short: "Runnable catalog of classic design-pattern demos",
		Long: `Lyrebird is a teaching tool: a catalog of named design-pattern
demonstrations, each runnable independently with deterministic output.

Use it to:
• Run one pattern demo and read its observable behavior
• Run the whole catalog and get a pass/fail summary
• Browse and describe the patterns it knows`,
		Version: lyrebird.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			output.SetVerbose(verbose)
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output for debugging")

	return cmd
}
