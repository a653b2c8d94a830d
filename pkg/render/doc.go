// Package render draws quivers and AR quivers as node-link diagrams.
//
// # Overview
//
// Diagrams go through Graphviz DOT source: [ARToDOT] labels each AR quiver
// node with its dimension vector and [QuiverToDOT] draws the input quiver
// itself. Either can then be rendered in-process:
//
//	dot := render.ARToDOT(res, q.Vertices(), render.Options{})
//	svg, err := render.RenderSVG(dot)
//	png, err := render.RenderPNG(dot)
//
// The DOT source can also be saved and processed with external Graphviz
// tools or customized before rendering.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG and
// PNG rendering; no external graphviz installation is needed.
package render
