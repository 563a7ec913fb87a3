// Package nodelink renders level graphs as node-link diagrams.
//
// # Overview
//
// Each level becomes a circle and each teleporter an arrow. When the graph
// has a computed path, arrows on it are drawn bold and labelled with the
// step at which the walk takes them, so the diagram reads as the path
// itself. Level 1 and level N are marked as start and end.
//
// # Usage
//
//	dot := nodelink.ToDOT(g, path, nodelink.Options{Detailed: true})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// # DOT Format
//
// The generated DOT uses left-to-right layout (rankdir=LR). Parallel
// teleporters are emitted as separate edges so each keeps its own step
// label. Teleporters left unused by an [levels.Impossible] result are drawn
// dashed and grey.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering; no Graphviz installation is needed.
package nodelink
