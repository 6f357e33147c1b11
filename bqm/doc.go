// Package bqm packages QUBO and Ising formulations into one binary
// quadratic model shape: linear biases, quadratic couplings, an additive
// energy offset, and a vartype tag (Binary for x ∈ {0,1}, Spin for
// s ∈ {−1,+1}).
//
// FromQUBO and FromIsing are pure repackaging: no coefficient value
// changes and the introduced offset is zero, so the packaged model has the
// same minimizer and the same energies as its source. ToBinary and ToSpin
// change vartype via the substitution s = 2x − 1, carrying the exact
// additive constant that keeps every assignment's energy identical across
// representations (see convert.go for the closed forms).
//
// Shape violations — a quadratic key with equal endpoints, or two keys
// that collapse to the same unordered pair — surface as ErrInvalidShape
// rather than being silently merged.
package bqm
