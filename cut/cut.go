package cut

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/maxcut/graph"
)

// ErrMissingAssignment indicates an assignment (or partition) that does
// not cover a node it must cover. Fatal to decoding and scoring; never
// recovered internally.
var ErrMissingAssignment = errors.New("cut: node missing from assignment")

// Assignment maps each node to its binary value. The decoding domain is
// {0,1}; spin-domain values must be normalized first (NormalizeSpins).
type Assignment map[graph.Node]int

// NormalizeSpins returns a copy of a with every −1 mapped to 0. Values
// other than −1 are copied verbatim; this is the documented precondition
// helper for feeding spin-domain samples to Decode.
// Complexity: O(|a|).
func NormalizeSpins(a Assignment) Assignment {
	out := make(Assignment, len(a))
	for n, v := range a {
		if v == -1 {
			v = 0
		}
		out[n] = v
	}

	return out
}

// Partition is a split of the node set into two disjoint sides.
// Derived once per assignment and not mutated.
type Partition struct {
	// SetOne holds nodes assigned value 1, in node iteration order.
	SetOne []graph.Node

	// SetTwo holds nodes assigned value 0, in node iteration order.
	SetTwo []graph.Node

	side map[graph.Node]bool // true ⇒ SetOne
}

// Side reports which side n landed on (true for SetOne) and whether n is
// in the partition at all.
func (p Partition) Side(n graph.Node) (one, ok bool) {
	one, ok = p.side[n]

	return one, ok
}

// Decode partitions the graph's nodes by assignment value: 1 → SetOne,
// 0 (and anything else) → SetTwo, preserving node iteration order.
//
// Errors: ErrMissingAssignment naming the first uncovered graph node.
// Complexity: O(V).
func Decode(g *graph.Graph, a Assignment) (Partition, error) {
	nodes := g.Nodes()
	p := Partition{side: make(map[graph.Node]bool, len(nodes))}
	for _, n := range nodes {
		v, ok := a[n]
		if !ok {
			return Partition{}, fmt.Errorf("cut: node %d: %w", n, ErrMissingAssignment)
		}
		if v == 1 {
			p.SetOne = append(p.SetOne, n)
			p.side[n] = true
			continue
		}
		p.SetTwo = append(p.SetTwo, n)
		p.side[n] = false
	}

	return p, nil
}

// Score counts the edges whose endpoints lie on opposite sides of p.
// Computed independently of any solver-reported energy.
//
// Errors: an edge endpoint on neither side signals an upstream decoding
// defect and returns ErrMissingAssignment naming the node — never a
// silent undercount.
// Complexity: O(E).
func Score(edges []graph.Edge, p Partition) (int, error) {
	var cuts int
	for _, e := range edges {
		uSide, uOK := p.Side(e.U)
		vSide, vOK := p.Side(e.V)
		if !uOK {
			return 0, fmt.Errorf("cut: edge (%d,%d) endpoint %d: %w", e.U, e.V, e.U, ErrMissingAssignment)
		}
		if !vOK {
			return 0, fmt.Errorf("cut: edge (%d,%d) endpoint %d: %w", e.U, e.V, e.V, ErrMissingAssignment)
		}
		if uSide != vSide {
			cuts++
		}
	}

	return cuts, nil
}
