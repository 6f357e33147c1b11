// Package graph provides the minimal undirected-graph primitives the
// Max-Cut model builders operate on: integer-labeled nodes, canonical
// unordered edges, a simple container, a shared degree counter, and a
// few deterministic fixture topologies.
//
// ✨ Key features:
//   - Node is a plain int64 label; Edge is an unordered pair stored U ≤ V
//   - Graph registers edge endpoints implicitly, like networkx add_edges_from
//   - Degrees is the single shared incidence counter used by every builder
//     (restricted no-op, implicit-registration, and strict modes)
//   - Path, Cycle, Complete and CubeConnectedCycle fixtures for tests,
//     benchmarks and the CLI default problem
//
// Determinism:
//   - Nodes() enumerates in ascending label order.
//   - Edges() preserves insertion order.
//
// The container is intentionally single-writer: build it, then treat it as
// immutable while models are derived from it.
package graph
