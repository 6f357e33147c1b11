// Package qubo converts an undirected graph into the QUBO formulation of
// Max-Cut:
//
//	minimize  Σ_{(u,v)∈E} 2·x_u·x_v  −  Σ_{i∈V} deg(i)·x_i ,   x ∈ {0,1}^V
//
// Every edge contributes a quadratic coefficient of exactly 2 and every
// node a diagonal (linear) coefficient of −deg(i). Minimizing this
// objective maximizes the number of cut edges: an uncut edge with both
// endpoints active pays +2, while the degree-proportional linear reward
// balances the trivial all-zero and all-one assignments. For this model
// the objective value of any assignment equals the negated cut count,
// which is what the verification tests lean on.
//
// Coefficients are fixed closed forms; there is no randomness anywhere.
package qubo
