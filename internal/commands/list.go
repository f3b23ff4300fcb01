package commands

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/simonhull/lyrebird/internal/catalog"
	"github.com/simonhull/lyrebird/internal/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	nameStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan")).Bold(true)
	categoryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
)

// ListCmd creates the 'list' command, which prints every registered
// pattern as 'name — category — description' in registration order.
func ListCmd(reg *catalog.Registry) *cobra.Command {
	var plain, asYAML bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every registered pattern",
		Long: `List every registered pattern descriptor in registration order.

Use --plain for script-friendly output without styling, or --yaml for
machine-readable output.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(reg.Names())
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()

			if asYAML {
				data, err := yaml.Marshal(reg.List())
				if err != nil {
					return fmt.Errorf("failed to marshal catalog: %w", err)
				}
				fmt.Fprint(w, string(data))
				return nil
			}
			for _, desc := range reg.List() {
				if plain || cfg.Plain {
					fmt.Fprintf(w, "%s — %s — %s\n", desc.Name, desc.Category, desc.Description)
					continue
				}
				fmt.Fprintf(w, "%s — %s — %s\n",
					nameStyle.Render(desc.Name),
					categoryStyle.Render(desc.Category.String()),
					desc.Description,
				)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Plain output without styling")
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "Output the catalog as YAML")

	return cmd
}
