// Package render draws level graphs and their Eulerian paths.
//
// # Overview
//
// Rendering happens in two steps. The [nodelink] subpackage turns a solved
// [levels.Graph] into Graphviz DOT source, numbering each teleporter on the
// path by the step at which it was taken. [Render] then either returns that
// source as-is or lays it out to SVG in-process.
//
//	dot := nodelink.ToDOT(g, path, nodelink.Options{})
//	svg, err := render.Render(ctx, dot, render.FormatSVG)
//
// Render reports every call to the hooks installed with
// [observability.SetRenderHooks].
//
// [nodelink]: github.com/matzehuels/eulerpath/pkg/render/nodelink
// [levels.Graph]: github.com/matzehuels/eulerpath/pkg/levels.Graph
// [observability.SetRenderHooks]: github.com/matzehuels/eulerpath/pkg/observability.SetRenderHooks
package render
