// Package maxcut formulates the Max-Cut problem over undirected graphs
// as QUBO and Ising energy-minimization models, and verifies returned
// assignments with an independent cut count.
//
// 🚀 What is maxcut?
//
//	A small, deterministic toolkit covering the full Max-Cut modeling loop:
//		• Graph primitives: integer-labeled nodes, canonical undirected edges
//		• Degree summary: one shared counter feeding every model builder
//		• QUBO builder: Q[(u,v)] = 2 per edge, Q[(i,i)] = −deg(i) per node
//		• Ising builder: J = γ/4, h = −0.5 + γ·deg/4 with a tunable γ
//		• BQM converter: one packaging for both vartypes, exact offset math
//		• Decoder & scorer: bit assignment → two sets → verified cut count
//		• Local samplers: exact brute force and simulated annealing, both
//		  behind the same single-method Solver interface a QPU would fill
//
// ✨ Why choose maxcut?
//
//   - Exact contracts – every coefficient is a documented closed form
//   - Deterministic – seeded RNG streams, stable enumeration everywhere
//   - Verifiable – the cut count never trusts the solver's energy
//   - Extensible – swap the bundled samplers for remote hardware via Solver
//
// Everything is organized under flat subpackages:
//
//	graph/  — Graph, Edge, DegreeMap, fixture topologies
//	qubo/   — QUBO coefficients and binary-domain energy
//	ising/  — Ising (h, J) coefficients and spin-domain energy
//	bqm/    — binary quadratic model packaging + vartype conversions
//	cut/    — assignment decoding and independent cut scoring
//	solve/  — Solver interface, BruteForce and Annealer samplers
//	render/ — Graphviz DOT artifacts for problem and solution graphs
//
// Quick ASCII example:
//
//	    0───1
//	     ╲ ╱
//	      2
//
//	the triangle K₃: any 1-vs-2 split cuts exactly two of its three edges,
//	and that is the best any partition can do.
//
// The cmd/maxcut CLI mirrors the classic workflow: pick a formulation
// (qubo | ising | bqm), sample, decode, score, and emit DOT artifacts.
package maxcut
