package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/eulerpath/pkg/levels"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed adds in/out degrees to level labels.
	Detailed bool

	// Title, if set, is drawn above the diagram.
	Title string
}

// ToDOT converts a graph and its path to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG].
//
// p may be [levels.Impossible] or a path from a different order; only its
// Connections are used to number edges.
func ToDOT(g *levels.Graph, p levels.Path, opts Options) string {
	steps := stepLabels(p, g.EdgeCount())

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=18];\n")
	buf.WriteString("  edge [fontsize=12];\n")
	if opts.Title != "" {
		fmt.Fprintf(&buf, "  label=%q;\n  labelloc=t;\n", opts.Title)
	}
	buf.WriteString("\n")

	n := g.NumLevels()
	for _, l := range g.Levels() {
		attrs := []string{fmt.Sprintf("label=%q", fmtLabel(l, opts.Detailed))}
		attrs = append(attrs, endAttrs(l.ID(), n)...)
		fmt.Fprintf(&buf, "  %q [%s];\n", strconv.Itoa(l.ID()), strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for i, c := range g.Connections() {
		fmt.Fprintf(&buf, "  %q -> %q [%s];\n",
			strconv.Itoa(c.From), strconv.Itoa(c.To), strings.Join(edgeAttrs(steps[i], p.Found), ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

// stepLabels maps each connection index to its 1-based step on the path,
// or 0 if the path does not use it.
func stepLabels(p levels.Path, edges int) []int {
	steps := make([]int, edges)
	for i, ci := range p.Connections {
		if ci >= 0 && ci < edges {
			steps[ci] = i + 1
		}
	}
	return steps
}

func fmtLabel(l *levels.Level, detailed bool) string {
	id := strconv.Itoa(l.ID())
	if !detailed {
		return id
	}
	return fmt.Sprintf("%s\nin: %d out: %d", id, l.InDegree(), l.OutDegree())
}

func endAttrs(id, n int) []string {
	switch {
	case id == 1 && id == n:
		return []string{"shape=doublecircle", "fillcolor=palegreen"}
	case id == 1:
		return []string{"fillcolor=palegreen"}
	case id == n:
		return []string{"shape=doublecircle", "fillcolor=lightblue"}
	}
	return nil
}

func edgeAttrs(step int, found bool) []string {
	switch {
	case step > 0:
		return []string{fmt.Sprintf("label=%q", strconv.Itoa(step)), "penwidth=2", "color=black"}
	case found:
		return []string{"color=black"}
	}
	return []string{"style=dashed", "color=grey"}
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
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
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's pt-sized root element with one sized
// in user units so browsers scale the diagram.
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

	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}
