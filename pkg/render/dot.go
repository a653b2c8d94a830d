package render

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/quiverlab/quivertool/pkg/ar"
	"github.com/quiverlab/quivertool/pkg/quiver"
)

// Options configures diagram rendering.
type Options struct {
	// Detailed includes the vertex ordering legend in AR diagrams so
	// dimension vector components can be read off against vertex names.
	Detailed bool
}

// ARToDOT converts an AR quiver result to Graphviz DOT format.
// Nodes are labeled with their dimension vectors. When the build stopped
// at the representation-infinite threshold, the diagram title says so.
//
// The vertex ordering of the source quiver is needed for the legend, so
// it is passed separately; pass nil to omit the legend.
func ARToDOT(res *ar.Result, vertices []string, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph AR {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	if res.Status == ar.StatusInfinite {
		buf.WriteString("  label=\"representation-infinite (partial)\";\n")
		buf.WriteString("  labelloc=t;\n")
		buf.WriteString("  fontsize=18;\n")
	}
	buf.WriteString("\n")

	for _, v := range res.Graph.Nodes() {
		attrs := fmt.Sprintf("label=%q", v.String())
		if v.IsSimple() {
			attrs += ", fillcolor=lightgrey"
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", v.Key(), attrs)
	}

	buf.WriteString("\n")
	for _, e := range res.Graph.Edges() {
		fmt.Fprintf(&buf, "  %q -> %q;\n", e.From, e.To)
	}

	if opts.Detailed && len(vertices) > 0 {
		fmt.Fprintf(&buf, "\n  legend [shape=note, fillcolor=lightyellow, label=%q];\n", legendLabel(vertices))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func legendLabel(vertices []string) string {
	var buf bytes.Buffer
	buf.WriteString("components")
	for i, v := range vertices {
		fmt.Fprintf(&buf, "\n%d: %s", i, v)
	}
	return buf.String()
}

// QuiverToDOT converts a quiver to Graphviz DOT format. Parallel arrows
// show up as parallel edges in the diagram.
func QuiverToDOT(q *quiver.Quiver, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph Q {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=24];\n")
	buf.WriteString("\n")

	for _, v := range q.Vertices() {
		fmt.Fprintf(&buf, "  %q;\n", v)
	}

	buf.WriteString("\n")
	for _, e := range q.Edges() {
		fmt.Fprintf(&buf, "  %q -> %q;\n", e.From, e.To)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	svg, err := renderFormat(dot, graphviz.SVG)
	if err != nil {
		return nil, err
	}
	return normalizeViewBox(svg), nil
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(dot string) ([]byte, error) {
	return renderFormat(dot, graphviz.PNG)
}

func renderFormat(dot string, format graphviz.Format) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
