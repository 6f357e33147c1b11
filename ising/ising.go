package ising

import (
	"errors"

	"github.com/katalvlaran/maxcut/graph"
)

// DefaultGamma is the canonical penalty weight.
const DefaultGamma = 3.0

// Coefficient scale factors of the canonical formulation.
const (
	couplingScale = 0.25 // J = γ/4
	biasScale     = 0.25 // γ·deg·0.25 term of h
	biasOffset    = -0.5 // constant term of h
)

// ErrBadGamma indicates a non-positive penalty weight.
var ErrBadGamma = errors.New("ising: gamma must be positive")

// Model is the Ising formulation: per-node biases h and per-edge
// couplings J.
//
// Invariants: h is defined for exactly the node set (including implicit
// edge endpoints), J for exactly the edge set.
type Model struct {
	H map[graph.Node]float64
	J map[graph.Edge]float64
}

type config struct {
	gamma float64
}

// Option customizes the Ising builder.
type Option func(*config)

// WithGamma sets the penalty weight γ. Values ≤ 0 make Build fail with
// ErrBadGamma; γ is validated at build time, not at option time.
func WithGamma(gamma float64) Option {
	return func(c *config) { c.gamma = gamma }
}

// Build derives the Ising (h, J) model from an explicit node list and
// edge list.
//
// Contracts:
//   - J[(u,v)] = γ/4 for every listed edge.
//   - h[n] = −0.5 + γ·deg(n)/4 for every node, where deg comes from the
//     shared graph.Degrees counter with implicit registration: an endpoint
//     absent from nodes is registered at 0 first, then counted, and
//     receives an h entry like any other node.
//
// Errors: ErrBadGamma.
// Complexity: O(|nodes| + |edges|).
func Build(nodes []graph.Node, edges []graph.Edge, opts ...Option) (Model, error) {
	cfg := config{gamma: DefaultGamma}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.gamma <= 0 {
		return Model{}, ErrBadGamma
	}

	deg, err := graph.Degrees(nodes, edges, graph.WithImplicitNodes())
	if err != nil {
		return Model{}, err
	}

	m := Model{
		H: make(map[graph.Node]float64, len(deg)),
		J: make(map[graph.Edge]float64, len(edges)),
	}
	for _, e := range edges {
		m.J[e] = cfg.gamma * couplingScale
	}
	for n, d := range deg {
		m.H[n] = biasOffset + cfg.gamma*float64(d)*biasScale
	}

	return m, nil
}

// BuildGraph is the container form of Build.
func BuildGraph(g *graph.Graph, opts ...Option) (Model, error) {
	if g == nil {
		return Model{}, errors.New("ising: nil graph")
	}

	return Build(g.Nodes(), g.Edges(), opts...)
}

// Energy evaluates Σ h_i·s_i + Σ J_uv·s_u·s_v for a ±1 spin assignment.
// Variables missing from s read as 0; domain validation is the caller's
// contract.
// Complexity: O(|H| + |J|).
func Energy(m Model, s map[graph.Node]int) float64 {
	var e float64
	for n, h := range m.H {
		e += h * float64(s[n])
	}
	for edge, j := range m.J {
		e += j * float64(s[edge.U]) * float64(s[edge.V])
	}

	return e
}
