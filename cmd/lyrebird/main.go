package main

import (
	"os"

	"github.com/simonhull/lyrebird/internal/catalog"
	"github.com/simonhull/lyrebird/internal/commands"
	"github.com/simonhull/lyrebird/internal/output"
	"github.com/simonhull/lyrebird/internal/patterns"
)

func main() {
	reg := catalog.NewRegistry()
	if err := patterns.RegisterAll(reg); err != nil {
		output.Error(err.Error())
		os.Exit(1)
	}

	rootCmd := commands.RootCmd()
	rootCmd.AddCommand(commands.RunCmd(reg))
	rootCmd.AddCommand(commands.ListCmd(reg))
	rootCmd.AddCommand(commands.DescribeCmd(reg))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
