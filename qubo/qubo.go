package qubo

import (
	"errors"

	"github.com/katalvlaran/maxcut/graph"
)

// EdgeCoefficient is the quadratic coefficient assigned to every edge.
const EdgeCoefficient = 2.0

// ErrNilGraph indicates a nil graph passed to Build.
var ErrNilGraph = errors.New("qubo: nil graph")

// Term is an unordered coefficient key. I == J addresses the diagonal
// (linear bias of one variable); I < J addresses the quadratic
// interaction of an edge. Invariant: I ≤ J.
type Term struct {
	I, J graph.Node
}

// Model maps Terms to real coefficients.
//
// Invariants:
//   - exactly one diagonal entry per graph node (isolated nodes get 0),
//   - exactly one off-diagonal entry per graph edge, nothing else.
type Model map[Term]float64

// Build derives the Max-Cut QUBO of g: Q[(u,v)] = 2 for every edge,
// Q[(i,i)] = −deg(i) for every node. Degrees come from the shared
// graph.Degrees counter.
//
// Errors: ErrNilGraph.
// Complexity: O(V + E).
func Build(g *graph.Graph) (Model, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	return BuildWithDegrees(g.Nodes(), g.Edges(), g.Degrees())
}

// BuildWithDegrees is the explicit-argument form of Build for callers
// that already hold a DegreeMap (the map must cover every listed node;
// nodes absent from it read as degree 0, matching the isolated-node rule).
// Complexity: O(|nodes| + |edges|).
func BuildWithDegrees(nodes []graph.Node, edges []graph.Edge, deg graph.DegreeMap) (Model, error) {
	q := make(Model, len(nodes)+len(edges))
	for _, e := range edges {
		q[Term{I: e.U, J: e.V}] = EdgeCoefficient
	}
	for _, n := range nodes {
		q[Term{I: n, J: n}] = -float64(deg[n])
	}

	return q, nil
}

// Linear returns the diagonal entries keyed by node.
func (m Model) Linear() map[graph.Node]float64 {
	out := make(map[graph.Node]float64)
	for t, c := range m {
		if t.I == t.J {
			out[t.I] = c
		}
	}

	return out
}

// Quadratic returns the off-diagonal entries keyed by canonical edge.
func (m Model) Quadratic() map[graph.Edge]float64 {
	out := make(map[graph.Edge]float64)
	for t, c := range m {
		if t.I != t.J {
			out[graph.NewEdge(t.I, t.J)] = c
		}
	}

	return out
}

// Energy evaluates the QUBO objective for a 0/1 assignment. Variables
// missing from x read as 0; domain validation is the caller's contract.
// Complexity: O(|m|).
func Energy(m Model, x map[graph.Node]int) float64 {
	var e float64
	for t, c := range m {
		if t.I == t.J {
			e += c * float64(x[t.I])
			continue
		}
		e += c * float64(x[t.I]) * float64(x[t.J])
	}

	return e
}
