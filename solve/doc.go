// Package solve defines the single-method Solver capability the Max-Cut
// pipeline samples through, plus two local implementations:
//
//   - BruteForce — exact exhaustive search over all 2ⁿ binary
//     assignments, parallelized across workers, deterministic tie-break.
//   - Annealer — single-spin-flip simulated annealing with a geometric
//     inverse-temperature schedule and ReadCount independent restarts on
//     derived RNG streams.
//
// Both accept any bqm.Model (either vartype) and return the best
// assignment found, already normalized to the binary {0,1} domain, with
// its energy evaluated in the submitted model's terms. Remote hardware or
// cloud samplers slot in behind the same Solver interface; ChainStrength
// exists for exactly that case and is carried opaquely, never interpreted
// locally.
//
// Determinism:
//   - BruteForce is fully deterministic (lowest enumeration index wins ties).
//   - Annealer is deterministic for a fixed Options.Seed; seed 0 selects a
//     fixed default seed rather than a time-based source.
//
// Both samplers honor context cancellation between evaluation batches.
package solve
