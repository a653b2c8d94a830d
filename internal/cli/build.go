package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/quiverlab/quivertool/pkg/ar"
	"github.com/quiverlab/quivertool/pkg/cache"
	"github.com/quiverlab/quivertool/pkg/quiverio"
	"github.com/quiverlab/quivertool/pkg/render"
)

// Output formats for the build and render commands.
const (
	FormatJSON = "json"
	FormatDOT  = "dot"
	FormatSVG  = "svg"
	FormatPNG  = "png"
)

// cacheTTL is how long computed AR quivers stay cached.
const cacheTTL = 30 * 24 * time.Hour

// buildCommand creates the build command for computing AR quivers.
func (c *CLI) buildCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
		threshold  int
		noCache    bool
		detailed   bool
	)

	cmd := &cobra.Command{
		Use:   "build [quiver.toml]",
		Short: "Build the Auslander-Reiten quiver of a quiver with relations",
		Long: `Build the Auslander-Reiten quiver of a quiver with relations.

The build command reads a TOML quiver definition, seeds the AR quiver with
the radicals of the projective indecomposables and the injective
indecomposables, and then completes it mesh by mesh. When any dimension
vector component reaches the threshold the algebra is reported as
representation-infinite and the partial AR quiver is returned.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formats := parseFormats(formatsStr)
			if err := validateFormats(formats); err != nil {
				return err
			}
			return c.runBuild(cmd.Context(), args[0], buildParams{
				formats:   formats,
				output:    output,
				threshold: threshold,
				noCache:   noCache,
				detailed:  detailed,
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): json (default), dot, svg, png (comma-separated)")
	cmd.Flags().IntVar(&threshold, "threshold", ar.DefaultThreshold, "dimension bound for the representation-infinite check")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "include the vertex legend in diagrams")

	return cmd
}

type buildParams struct {
	formats   []string
	output    string
	threshold int
	noCache   bool
	detailed  bool
}

// runBuild computes (or loads from cache) the AR quiver and writes outputs.
func (c *CLI) runBuild(ctx context.Context, input string, p buildParams) error {
	logger := loggerFromContext(ctx)

	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("read %s: %w", input, err)
	}
	def, err := quiverio.ParseDefinition(data)
	if err != nil {
		return err
	}
	q, err := def.Build()
	if err != nil {
		return err
	}

	store, err := newCache(p.noCache)
	if err != nil {
		return fmt.Errorf("initialize cache: %w", err)
	}
	defer store.Close()

	key := cache.Key("ar", data, p.threshold)

	var res *ar.Result
	cacheHit := false
	if cached, ok, err := store.Get(ctx, key); err == nil && ok {
		if r, err := quiverio.ReadResult(bytes.NewReader(cached)); err == nil {
			res = r
			cacheHit = true
		}
	}

	if res == nil {
		spinner := newSpinnerWithContext(ctx, "Building AR quiver...")
		spinner.Start()

		prog := newProgress(logger)
		res, err = ar.Build(q, ar.WithThreshold(p.threshold), ar.WithLogger(logger))
		if err != nil {
			spinner.StopWithError("Build failed")
			return err
		}
		spinner.Stop()
		prog.done(fmt.Sprintf("Built AR quiver with %d indecomposables", res.Graph.NodeCount()))

		if encoded, err := quiverio.MarshalResult(res); err == nil {
			_ = store.Set(ctx, key, encoded, cacheTTL)
		}
	}

	if res.Status == ar.StatusInfinite {
		printWarning("Representation-infinite: component reached %d, AR quiver is partial", p.threshold)
	} else {
		printSuccess("AR quiver is complete")
	}
	printStats(res.Graph.NodeCount(), res.Graph.EdgeCount(), cacheHit)

	return writeResultOutputs(res, q.Vertices(), input, p.output, p.formats, p.detailed)
}

// writeResultOutputs writes the AR quiver in each requested format.
func writeResultOutputs(res *ar.Result, vertices []string, input, output string, formats []string, detailed bool) error {
	for _, format := range formats {
		path := outputPath(input, output, format, len(formats) > 1)

		var data []byte
		switch format {
		case FormatJSON:
			encoded, err := quiverio.MarshalResult(res)
			if err != nil {
				return err
			}
			data = encoded
		case FormatDOT:
			data = []byte(render.ARToDOT(res, vertices, render.Options{Detailed: detailed}))
		case FormatSVG:
			svg, err := render.RenderSVG(render.ARToDOT(res, vertices, render.Options{Detailed: detailed}))
			if err != nil {
				return fmt.Errorf("render svg: %w", err)
			}
			data = svg
		case FormatPNG:
			png, err := render.RenderPNG(render.ARToDOT(res, vertices, render.Options{Detailed: detailed}))
			if err != nil {
				return fmt.Errorf("render png: %w", err)
			}
			data = png
		}

		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}
	return nil
}

// outputPath picks the output file name for a format.
// With a single format, an explicit output is used verbatim; with multiple
// formats it becomes the base path and the extension is appended.
func outputPath(input, output, format string, multiple bool) string {
	if output != "" && !multiple {
		return output
	}
	base := output
	if base == "" {
		base = strings.TrimSuffix(input, filepath.Ext(input)) + ".ar"
	}
	return base + "." + format
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{FormatJSON}
	}
	return strings.Split(s, ",")
}

// validateFormats checks that every requested format is known.
func validateFormats(formats []string) error {
	for _, f := range formats {
		switch f {
		case FormatJSON, FormatDOT, FormatSVG, FormatPNG:
		default:
			return fmt.Errorf("unknown format %q (valid: json, dot, svg, png)", f)
		}
	}
	return nil
}
