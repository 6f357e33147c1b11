package solve

import (
	"context"
	"math"
	"math/rand"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/maxcut/bqm"
	"github.com/katalvlaran/maxcut/cut"
	"github.com/katalvlaran/maxcut/graph"
)

// Geometric inverse-temperature schedule endpoints. betaMin accepts most
// uphill moves early; betaMax freezes the walk by the final sweeps.
const (
	defaultBetaMin = 0.1
	defaultBetaMax = 8.0
)

// Annealer is a single-spin-flip simulated-annealing sampler. Each of the
// ReadCount reads is an independent restart on its own derived RNG
// stream; the best read wins (ties: lowest read index).
//
// The zero value is ready to use. Safe for concurrent use.
type Annealer struct{}

// coupling is a neighbor reference rebased onto variable indices.
type coupling struct {
	j int
	w float64
}

// readResult is the outcome of one annealing read.
type readResult struct {
	energy float64
	spins  []int8
}

// Sample anneals m in the spin domain and returns the best assignment
// across all reads, normalized to {0,1}.
//
// Contracts:
//   - Binary models are converted to Spin first (energies preserved).
//   - Deterministic for a fixed Options.Seed; seed 0 ⇒ fixed default.
//   - ΔE of flipping spin i is −2·s_i·(h_i + Σ_j J_ij·s_j); a flip is
//     accepted when ΔE ≤ 0 or with probability exp(−β·ΔE).
//
// Errors: ErrNilModel, ErrNoVariables, option sentinels, ctx.Err().
// Complexity: O(ReadCount · Sweeps · (V + E)).
func (a *Annealer) Sample(ctx context.Context, m *bqm.Model, opts Options) (Result, error) {
	vars, err := checkModel(m, opts)
	if err != nil {
		return Result{}, err
	}
	n := len(vars)
	sp := m.ToSpin()

	// Rebase coefficients onto dense indices; adjacency lists keep the
	// per-flip delta at O(deg).
	index := make(map[graph.Node]int, n)
	for i, v := range vars {
		index[v] = i
	}
	h := make([]float64, n)
	for node, bias := range sp.Linear {
		h[index[node]] = bias
	}
	adj := make([][]coupling, n)
	for e, w := range sp.Quadratic {
		u, v := index[e.U], index[e.V]
		adj[u] = append(adj[u], coupling{j: v, w: w})
		adj[v] = append(adj[v], coupling{j: u, w: w})
	}

	parent := opts.Seed
	if parent == 0 {
		parent = defaultRNGSeed
	}

	results := make([]readResult, opts.ReadCount)
	eg, ctx := errgroup.WithContext(ctx)
	for r := 0; r < opts.ReadCount; r++ {
		r := r
		eg.Go(func() error {
			rng := rngFromSeed(deriveSeed(parent, uint64(r)))
			res, readErr := a.anneal(ctx, rng, h, adj, sp.Offset, opts.Sweeps)
			if readErr != nil {
				return readErr
			}
			results[r] = res

			return nil
		})
	}
	if err = eg.Wait(); err != nil {
		return Result{}, err
	}

	// Reduce: lowest energy, ties broken by read index (slice order).
	winner := 0
	for r := 1; r < len(results); r++ {
		if results[r].energy < results[winner].energy {
			winner = r
		}
	}

	assignment := make(cut.Assignment, n)
	for i, v := range vars {
		bit := 0
		if results[winner].spins[i] == 1 {
			bit = 1
		}
		assignment[v] = bit
	}

	return Result{Assignment: assignment, Energy: results[winner].energy}, nil
}

// anneal runs one read: random ±1 start, then sweeps full passes under a
// geometric β schedule, tracking the best state visited.
func (a *Annealer) anneal(ctx context.Context, rng *rand.Rand, h []float64, adj [][]coupling, offset float64, sweeps int) (readResult, error) {
	n := len(h)
	spins := make([]int8, n)
	for i := range spins {
		if rng.Intn(2) == 0 {
			spins[i] = -1
		} else {
			spins[i] = 1
		}
	}

	energy := offset
	for i := 0; i < n; i++ {
		energy += h[i] * float64(spins[i])
		for _, c := range adj[i] {
			if c.j > i { // count each coupler once
				energy += c.w * float64(spins[i]) * float64(spins[c.j])
			}
		}
	}

	best := readResult{energy: energy, spins: append([]int8(nil), spins...)}

	// Geometric interpolation betaMin → betaMax across the sweeps.
	ratio := defaultBetaMax / defaultBetaMin
	for s := 0; s < sweeps; s++ {
		if err := ctx.Err(); err != nil {
			return readResult{}, err
		}
		frac := 0.0
		if sweeps > 1 {
			frac = float64(s) / float64(sweeps-1)
		}
		beta := defaultBetaMin * math.Pow(ratio, frac)

		for i := 0; i < n; i++ {
			local := h[i]
			for _, c := range adj[i] {
				local += c.w * float64(spins[c.j])
			}
			delta := -2 * float64(spins[i]) * local
			if delta <= 0 || rng.Float64() < math.Exp(-beta*delta) {
				spins[i] = -spins[i]
				energy += delta
				if energy < best.energy {
					best.energy = energy
					copy(best.spins, spins)
				}
			}
		}
	}

	return best, nil
}
