package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quiverlab/quivertool/pkg/quiverio"
)

// renderCommand creates the render command for drawing AR quivers from JSON.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
	)

	cmd := &cobra.Command{
		Use:   "render [ar.json]",
		Short: "Render a computed AR quiver to DOT, SVG, or PNG",
		Long: `Render a computed AR quiver to DOT, SVG, or PNG.

The render command takes an AR quiver JSON file (produced by 'build') and
draws it as a node-link diagram with dimension vector labels. The JSON
contains the full AR quiver, so this step is purely about rendering.

Use 'build -f svg' as a shortcut to go directly from a definition to a
diagram.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formats := parseFormats(formatsStr)
			if formatsStr == "" {
				formats = []string{FormatSVG}
			}
			if err := validateFormats(formats); err != nil {
				return err
			}
			return c.runRender(args[0], output, formats)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), dot, png (comma-separated)")

	return cmd
}

func (c *CLI) runRender(input, output string, formats []string) error {
	f, err := os.Open(input)
	if err != nil {
		return fmt.Errorf("open %s: %w", input, err)
	}
	defer f.Close()

	res, err := quiverio.ReadResult(f)
	if err != nil {
		return fmt.Errorf("load AR quiver %s: %w", input, err)
	}

	printStats(res.Graph.NodeCount(), res.Graph.EdgeCount(), false)
	return writeResultOutputs(res, nil, input, output, formats, false)
}
