package graph

import (
	"errors"
	"fmt"
	"sort"
)

// Sentinel errors for graph construction.
var (
	// ErrSelfLoop indicates an edge with identical endpoints.
	ErrSelfLoop = errors.New("graph: self-loop not allowed")

	// ErrDuplicateEdge indicates a parallel edge between the same endpoints.
	ErrDuplicateEdge = errors.New("graph: duplicate edge not allowed")
)

// Node is an integer node label.
type Node = int64

// Edge is an unordered pair of node labels.
//
// Invariant: U ≤ V. Construct edges with NewEdge so that the pair is
// canonical and map lookups keyed by Edge are unambiguous.
type Edge struct {
	U, V Node
}

// NewEdge returns the canonical Edge for the unordered pair (u, v).
// Complexity: O(1).
func NewEdge(u, v Node) Edge {
	if u > v {
		u, v = v, u
	}

	return Edge{U: u, V: v}
}

// Other returns the endpoint opposite to n, and whether n is an endpoint
// of e at all.
func (e Edge) Other(n Node) (Node, bool) {
	switch n {
	case e.U:
		return e.V, true
	case e.V:
		return e.U, true
	default:
		return 0, false
	}
}

// Graph is a simple undirected graph: a node set plus an edge list.
// No self-loops, no parallel edges. Adding an edge implicitly registers
// both endpoints as nodes.
//
// Not safe for concurrent mutation; build first, then share read-only.
type Graph struct {
	nodes   map[Node]struct{}
	edges   []Edge
	edgeSet map[Edge]struct{}
}

// New creates an empty Graph.
// Complexity: O(1).
func New() *Graph {
	return &Graph{
		nodes:   make(map[Node]struct{}),
		edgeSet: make(map[Edge]struct{}),
	}
}

// FromEdges builds a Graph from a list of node pairs, registering every
// endpoint as a node along the way. Pair order within each edge does not
// matter; edges are canonicalized.
//
// Errors: ErrSelfLoop, ErrDuplicateEdge (with the offending pair).
// Complexity: O(|pairs|).
func FromEdges(pairs [][2]Node) (*Graph, error) {
	g := New()
	for _, p := range pairs {
		if err := g.AddEdge(p[0], p[1]); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// AddNode registers a node; adding an existing node is a no-op.
func (g *Graph) AddNode(n Node) {
	g.nodes[n] = struct{}{}
}

// AddEdge registers the undirected edge (u, v), implicitly adding both
// endpoints to the node set.
//
// Errors: ErrSelfLoop if u == v, ErrDuplicateEdge if the edge exists.
// Complexity: O(1).
func (g *Graph) AddEdge(u, v Node) error {
	if u == v {
		return fmt.Errorf("graph: edge (%d,%d): %w", u, v, ErrSelfLoop)
	}
	e := NewEdge(u, v)
	if _, dup := g.edgeSet[e]; dup {
		return fmt.Errorf("graph: edge (%d,%d): %w", u, v, ErrDuplicateEdge)
	}

	g.nodes[u] = struct{}{}
	g.nodes[v] = struct{}{}
	g.edgeSet[e] = struct{}{}
	g.edges = append(g.edges, e)

	return nil
}

// HasNode reports whether n is registered.
func (g *Graph) HasNode(n Node) bool {
	_, ok := g.nodes[n]

	return ok
}

// HasEdge reports whether the undirected edge (u, v) is registered.
func (g *Graph) HasEdge(u, v Node) bool {
	_, ok := g.edgeSet[NewEdge(u, v)]

	return ok
}

// Nodes returns the node labels in ascending order.
// Complexity: O(V log V).
func (g *Graph) Nodes() []Node {
	out := make([]Node, 0, len(g.nodes))
	for n := range g.nodes {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Edges returns a copy of the edge list in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// Order returns |V|.
func (g *Graph) Order() int { return len(g.nodes) }

// Size returns |E|.
func (g *Graph) Size() int { return len(g.edges) }

// Degrees returns the degree map of the graph. A Graph is always closed
// over its own edges, so the restricted counting mode cannot fail here.
// Complexity: O(V + E).
func (g *Graph) Degrees() DegreeMap {
	d, _ := Degrees(g.Nodes(), g.edges)

	return d
}
