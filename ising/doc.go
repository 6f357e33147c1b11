// Package ising converts an undirected graph into an Ising (h, J)
// formulation of Max-Cut over spin variables s ∈ {−1,+1}:
//
//	J[(u,v)] = γ/4                      for every edge (u, v)
//	h[n]     = −0.5 + γ·deg(n)·0.25     for every node n
//
// γ is a penalty weight trading solution quality against the magnitude of
// the biases handed to a sampler. It is pure configuration (WithGamma,
// default 3), never derived from the graph.
//
// Degree counts come from the shared graph.Degrees counter in
// implicit-registration mode, so an endpoint that appears only in the edge
// list still receives a correct count. The QUBO builder consumes the same
// counter; both paths agree on every graph by construction.
package ising
