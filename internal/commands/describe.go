package commands

import (
	"embed"
	"fmt"

	"github.com/simonhull/lyrebird/internal/catalog"
	"github.com/simonhull/lyrebird/internal/render"
	"github.com/spf13/cobra"
)

//go:embed templates/describe.tmpl
var describeTemplates embed.FS

// describeData is the template payload for one pattern card.
type describeData struct {
	Descriptor catalog.Descriptor
	Output     []string
}

// DescribeCmd creates the 'describe' command, which renders one
// pattern's documentation card with a sample run.
func DescribeCmd(reg *catalog.Registry) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "describe <pattern>",
		Short: "Show a pattern's documentation card",
		Long: `Render a pattern's documentation card: name, category, description,
and the output of a sample run.

Example:
  lyrebird describe observer`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := reg.Run(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			renderer := render.NewRenderer()
			card, err := renderer.RenderFS(describeTemplates, "templates/describe.tmpl", describeData{
				Descriptor: res.Descriptor,
				Output:     res.Output,
			})
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), string(card))
			return nil
		},
	}

	return cmd
}
