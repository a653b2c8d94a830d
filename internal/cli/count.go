package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quiverlab/quivertool/pkg/quiverio"
)

// countCommand creates the count command for reduced path counting.
func (c *CLI) countCommand() *cobra.Command {
	var list bool

	cmd := &cobra.Command{
		Use:   "count [quiver.toml] <from> <to>",
		Short: "Count reduced paths between two vertices",
		Long: `Count reduced paths between two vertices.

Paths are normalized with the quiver's relations before counting, so two
paths that rewrite to the same normal form count once. In a commutative
quiver the count collapses to 1 whenever any path exists.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCount(args[0], args[1], args[2], list)
		},
	}

	cmd.Flags().BoolVar(&list, "list", false, "print each reduced path")

	return cmd
}

func (c *CLI) runCount(input, from, to string, list bool) error {
	def, err := quiverio.ReadDefinitionFile(input)
	if err != nil {
		return err
	}
	q, err := def.Build()
	if err != nil {
		return err
	}

	n, err := q.CountReducedPaths(from, to)
	if err != nil {
		return err
	}

	printKeyValue("from", from)
	printKeyValue("to", to)
	printKeyValue("reduced", fmt.Sprintf("%d", n))

	if list {
		paths, err := q.ListReducedPaths(from, to)
		if err != nil {
			return err
		}
		for _, p := range paths {
			printDetail("%s", strings.Join(p, " "+iconArrow+" "))
		}
	}
	return nil
}
