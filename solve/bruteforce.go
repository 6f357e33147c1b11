package solve

import (
	"context"
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/maxcut/bqm"
	"github.com/katalvlaran/maxcut/cut"
	"github.com/katalvlaran/maxcut/graph"
)

// MaxBruteForceVariables caps exhaustive search; beyond it, Sample fails
// with ErrTooManyVariables instead of attempting 2ⁿ evaluations.
const MaxBruteForceVariables = 30

// ctxCheckStride is how many assignments each worker evaluates between
// context checks.
const ctxCheckStride = 1 << 12

// BruteForce is the exact sampler: it enumerates every binary assignment
// and returns the minimum-energy one. ReadCount is accepted for interface
// compatibility but irrelevant — the search is already exhaustive.
//
// The zero value is ready to use. Safe for concurrent use.
type BruteForce struct {
	// Workers bounds the parallel search-space split; ≤ 0 means NumCPU.
	Workers int
}

// pairTerm is a quadratic coefficient rebased onto variable indices.
type pairTerm struct {
	u, v int
	w    float64
}

// Sample exhaustively searches all 2ⁿ assignments of m.
//
// Contracts:
//   - Works in the binary domain; Spin models are converted first, which
//     preserves the minimizer and every energy exactly.
//   - Deterministic: among equal-energy minima the lowest enumeration
//     index (interpreting variable k, in ascending label order, as bit k)
//     wins, regardless of worker count.
//
// Errors: ErrNilModel, ErrNoVariables, option sentinels,
// ErrTooManyVariables, and ctx.Err() on cancellation.
// Complexity: O(2ⁿ·(n + |Quadratic|) / workers).
func (b *BruteForce) Sample(ctx context.Context, m *bqm.Model, opts Options) (Result, error) {
	vars, err := checkModel(m, opts)
	if err != nil {
		return Result{}, err
	}
	n := len(vars)
	if n > MaxBruteForceVariables {
		return Result{}, fmt.Errorf("solve: %d variables, cap %d: %w", n, MaxBruteForceVariables, ErrTooManyVariables)
	}

	bin := m.ToBinary()

	// Rebase coefficients onto dense indices so the hot loop is map-free.
	index := make(map[graph.Node]int, n)
	for i, v := range vars {
		index[v] = i
	}
	linear := make([]float64, n)
	for node, bias := range bin.Linear {
		linear[index[node]] = bias
	}
	pairs := make([]pairTerm, 0, len(bin.Quadratic))
	for e, w := range bin.Quadratic {
		pairs = append(pairs, pairTerm{u: index[e.U], v: index[e.V], w: w})
	}

	workers := b.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	total := uint64(1) << uint(n)
	if uint64(workers) > total {
		workers = int(total)
	}

	type best struct {
		energy float64
		mask   uint64
	}
	bests := make([]best, workers)

	eg, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w
		eg.Go(func() error {
			local := best{energy: math.Inf(1)}
			// Strided scan keeps the split deterministic-agnostic: the
			// final reduce below is what fixes the tie-break.
			for mask := uint64(w); mask < total; mask += uint64(workers) {
				if mask%ctxCheckStride < uint64(workers) {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				e := bin.Offset
				for i := 0; i < n; i++ {
					if mask&(1<<uint(i)) != 0 {
						e += linear[i]
					}
				}
				for _, p := range pairs {
					if mask&(1<<uint(p.u)) != 0 && mask&(1<<uint(p.v)) != 0 {
						e += p.w
					}
				}
				if e < local.energy || (e == local.energy && mask < local.mask) {
					local = best{energy: e, mask: mask}
				}
			}
			bests[w] = local

			return nil
		})
	}
	if err = eg.Wait(); err != nil {
		return Result{}, err
	}

	// Reduce: lowest energy, then lowest mask. Deterministic for any
	// worker count.
	winner := best{energy: math.Inf(1)}
	for _, c := range bests {
		if c.energy < winner.energy || (c.energy == winner.energy && c.mask < winner.mask) {
			winner = c
		}
	}

	assignment := make(cut.Assignment, n)
	for i, v := range vars {
		bit := 0
		if winner.mask&(1<<uint(i)) != 0 {
			bit = 1
		}
		assignment[v] = bit
	}

	return Result{Assignment: assignment, Energy: winner.energy}, nil
}
