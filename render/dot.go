package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/maxcut/cut"
	"github.com/katalvlaran/maxcut/graph"
)

// Node colors mirror the classic solution plot: set one red with black
// labels, set two blue with white labels.
const (
	setOneFill = "red"
	setOneFont = "black"
	setTwoFill = "blue"
	setTwoFont = "white"
)

// WriteDOT writes the problem graph as an undirected Graphviz graph.
// Complexity: O(V + E).
func WriteDOT(w io.Writer, g *graph.Graph) error {
	var b strings.Builder
	b.WriteString("graph maxcut {\n")
	for _, n := range g.Nodes() {
		fmt.Fprintf(&b, "  %d;\n", n)
	}
	for _, e := range g.Edges() {
		fmt.Fprintf(&b, "  %d -- %d;\n", e.U, e.V)
	}
	b.WriteString("}\n")

	_, err := io.WriteString(w, b.String())

	return err
}

// WriteSolutionDOT writes the partitioned graph: filled nodes colored by
// side, cut edges dashed.
//
// Errors: a graph node absent from the partition wraps
// cut.ErrMissingAssignment (upstream decode defect, never rendered
// silently).
// Complexity: O(V + E).
func WriteSolutionDOT(w io.Writer, g *graph.Graph, p cut.Partition) error {
	var b strings.Builder
	b.WriteString("graph maxcut {\n")
	b.WriteString("  node [style=filled];\n")
	for _, n := range g.Nodes() {
		one, ok := p.Side(n)
		if !ok {
			return fmt.Errorf("render: node %d: %w", n, cut.ErrMissingAssignment)
		}
		fill, font := setTwoFill, setTwoFont
		if one {
			fill, font = setOneFill, setOneFont
		}
		fmt.Fprintf(&b, "  %d [fillcolor=%s, fontcolor=%s];\n", n, fill, font)
	}
	for _, e := range g.Edges() {
		uSide, _ := p.Side(e.U)
		vSide, _ := p.Side(e.V)
		if uSide != vSide {
			fmt.Fprintf(&b, "  %d -- %d [style=dashed];\n", e.U, e.V)
			continue
		}
		fmt.Fprintf(&b, "  %d -- %d;\n", e.U, e.V)
	}
	b.WriteString("}\n")

	_, err := io.WriteString(w, b.String())

	return err
}
