package graph

import (
	"errors"
	"fmt"
)

// ErrMalformedGraph indicates an edge endpoint outside the declared node
// set while strict counting was requested.
var ErrMalformedGraph = errors.New("graph: edge endpoint not in node set")

// DegreeMap maps each node to the number of edges incident to it.
// Built once per graph; treat as immutable after construction.
type DegreeMap map[Node]int

// Sum returns the total of all degree counts. For any well-formed
// undirected graph, Sum() == 2·|E| (handshake identity).
func (d DegreeMap) Sum() int {
	var total int
	for _, c := range d {
		total += c
	}

	return total
}

// degreeConfig carries the counting policy for Degrees.
type degreeConfig struct {
	implicit bool // register unseen endpoints at 0 before incrementing
	strict   bool // unseen endpoint is an error instead of a no-op
}

// DegreeOption customizes how Degrees treats edge endpoints that are
// absent from the tracked node set.
type DegreeOption func(*degreeConfig)

// WithImplicitNodes makes Degrees lazily register endpoints that are not
// in the tracked node set (at degree 0) before counting them. This is the
// networkx-style behavior where adding an edge also adds its nodes.
func WithImplicitNodes() DegreeOption {
	return func(c *degreeConfig) { c.implicit = true }
}

// WithStrict makes Degrees fail with ErrMalformedGraph on the first edge
// whose endpoint is absent from the tracked node set.
func WithStrict() DegreeOption {
	return func(c *degreeConfig) { c.strict = true }
}

// Degrees counts, for every tracked node, the edges incident to it.
//
// Contracts:
//   - Every node in nodes starts at degree 0, so isolated nodes are present.
//   - Default policy: an endpoint outside the tracked set is a deliberate
//     no-op, not an error (supports counting against a restricted set).
//   - WithImplicitNodes: such an endpoint is registered at 0, then counted.
//   - WithStrict: such an endpoint aborts with ErrMalformedGraph naming
//     the offending edge. Strict is checked before implicit registration.
//   - Malformed edge lists pass through: a duplicate edge legitimately
//     double-counts, a self-loop contributes to its endpoint twice.
//
// Complexity: O(|nodes| + |edges|).
func Degrees(nodes []Node, edges []Edge, opts ...DegreeOption) (DegreeMap, error) {
	var cfg degreeConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	d := make(DegreeMap, len(nodes))
	for _, n := range nodes {
		d[n] = 0
	}

	for _, e := range edges {
		for _, n := range [2]Node{e.U, e.V} {
			if _, tracked := d[n]; !tracked {
				if cfg.strict {
					return nil, fmt.Errorf("graph: edge (%d,%d) endpoint %d: %w", e.U, e.V, n, ErrMalformedGraph)
				}
				if !cfg.implicit {
					continue // restricted set: deliberate no-op
				}
				d[n] = 0
			}
			d[n]++
		}
	}

	return d, nil
}
