package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quiverlab/quivertool/pkg/quiver"
	"github.com/quiverlab/quivertool/pkg/quiverio"
)

// indecompCommand creates the indecomp command for dimension vector tables.
func (c *CLI) indecompCommand() *cobra.Command {
	var vertex string

	cmd := &cobra.Command{
		Use:   "indecomp [quiver.toml]",
		Short: "Print dimension vectors of projective and injective indecomposables",
		Long: `Print dimension vectors of projective and injective indecomposables.

For every vertex v the projective P(v), the injective I(v), and the radical
rad P(v) are printed as dimension vectors over the quiver's vertex ordering.
Use --vertex to restrict the table to a single vertex.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runIndecomp(args[0], vertex)
		},
	}

	cmd.Flags().StringVar(&vertex, "vertex", "", "only show the indecomposables at this vertex")

	return cmd
}

func (c *CLI) runIndecomp(input, vertex string) error {
	def, err := quiverio.ReadDefinitionFile(input)
	if err != nil {
		return err
	}
	q, err := def.Build()
	if err != nil {
		return err
	}

	printKeyValue("vertices", fmt.Sprintf("%v", q.Vertices()))
	if vertex != "" {
		return printVertexRow(q, vertex)
	}
	for _, v := range q.Vertices() {
		if err := printVertexRow(q, v); err != nil {
			return err
		}
	}
	return nil
}

func printVertexRow(q *quiver.Quiver, v string) error {
	proj, err := q.ProjIndecomp(v)
	if err != nil {
		return err
	}
	inj, err := q.InjIndecomp(v)
	if err != nil {
		return err
	}
	rad, err := q.RadicalProj(v)
	if err != nil {
		return err
	}

	printInfo("vertex %s", StyleHighlight.Render(v))
	printDetail("P(%s)    = %s", v, proj)
	printDetail("I(%s)    = %s", v, inj)
	printDetail("rad P(%s) = %s", v, rad)
	return nil
}
