package io

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/lockgraph/pkg/bundle"
	"github.com/matzehuels/lockgraph/pkg/depgraph"
)

// ToDOT converts the graph to Graphviz DOT source.
//
// With root set, only that node, its direct dependencies and the edges
// between them are emitted. With root empty the whole graph is emitted. Nodes
// appear in bundle order and edges in edge-set order, so the output is stable.
// Root components are drawn bold, project components with a grey fill.
func ToDOT(idx *depgraph.Index, root string) (string, error) {
	var (
		nodes []bundle.Component
		edges [][2]string
	)
	if root == "" {
		nodes = idx.Components()
		for _, c := range nodes {
			deps, _ := idx.LookupEdgeSet(c.ID)
			for _, d := range deps {
				edges = append(edges, [2]string{c.ID, d})
			}
		}
	} else {
		sub, err := idx.ExtractSubgraph(root)
		if err != nil {
			return "", err
		}
		c, _ := idx.Component(root)
		nodes = append(nodes, c)
		for _, d := range sub.Node.DependsOn {
			if d != root {
				dc, _ := idx.Component(d)
				nodes = append(nodes, dc)
			}
			edges = append(edges, [2]string{root, d})
		}
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14];\n")
	buf.WriteString("\n")
	for _, n := range nodes {
		fmt.Fprintf(&buf, "  %q [%s];\n", n.ID, strings.Join(dotAttrs(idx, n), ", "))
	}
	buf.WriteString("\n")
	for _, e := range edges {
		fmt.Fprintf(&buf, "  %q -> %q;\n", e[0], e[1])
	}
	buf.WriteString("}\n")
	return buf.String(), nil
}

func dotAttrs(idx *depgraph.Index, c bundle.Component) []string {
	label := c.Name
	if c.Version != "" {
		label += "\n" + c.Version
	}
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if idx.IsRoot(c.ID) {
		attrs = append(attrs, "penwidth=2")
	}
	if c.IsProject() {
		attrs = append(attrs, "fillcolor=lightgrey")
	}
	return attrs
}

// WriteDOT writes the DOT source produced by [ToDOT] to w.
func WriteDOT(idx *depgraph.Index, root string, w io.Writer) error {
	dot, err := ToDOT(idx, root)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, dot)
	return err
}

// RenderSVG renders DOT source to SVG using Graphviz.
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
	return buf.Bytes(), nil
}

// WriteSVG renders the graph (or the node at root) as SVG and writes it to w.
func WriteSVG(ctx context.Context, idx *depgraph.Index, root string, w io.Writer) error {
	dot, err := ToDOT(idx, root)
	if err != nil {
		return err
	}
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return err
	}
	_, err = w.Write(svg)
	return err
}
