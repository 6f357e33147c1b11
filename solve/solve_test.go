package solve_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/maxcut/bqm"
	"github.com/katalvlaran/maxcut/cut"
	"github.com/katalvlaran/maxcut/graph"
	"github.com/katalvlaran/maxcut/ising"
	"github.com/katalvlaran/maxcut/qubo"
	"github.com/katalvlaran/maxcut/solve"
)

// maxCutModel builds the Binary BQM of g's Max-Cut QUBO.
func maxCutModel(t *testing.T, g *graph.Graph) *bqm.Model {
	t.Helper()
	q, err := qubo.Build(g)
	require.NoError(t, err)
	m, err := bqm.FromQUBO(q)
	require.NoError(t, err)

	return m
}

// verifyCut decodes r against g and returns the independent cut count.
func verifyCut(t *testing.T, g *graph.Graph, r solve.Result) int {
	t.Helper()
	p, err := cut.Decode(g, r.Assignment)
	require.NoError(t, err)
	cuts, err := cut.Score(g.Edges(), p)
	require.NoError(t, err)

	return cuts
}

// TestBruteForce_Triangle verifies the exact optimum on K₃ and that the
// reported energy agrees with the independent cut count (E = −cuts).
func TestBruteForce_Triangle(t *testing.T) {
	g, err := graph.FromEdges([][2]graph.Node{{0, 1}, {1, 2}, {0, 2}})
	require.NoError(t, err)

	bf := &solve.BruteForce{}
	res, err := bf.Sample(context.Background(), maxCutModel(t, g), solve.DefaultOptions())
	require.NoError(t, err)

	assert.InDelta(t, -2.0, res.Energy, 1e-12, "triangle max cut is 2")
	assert.Equal(t, 2, verifyCut(t, g, res))
}

// TestBruteForce_FourCycle verifies the C₄ optimum: all four edges cut by
// the bipartition {0,2} vs {1,3}.
func TestBruteForce_FourCycle(t *testing.T) {
	g, err := graph.Cycle(4)
	require.NoError(t, err)

	bf := &solve.BruteForce{}
	res, err := bf.Sample(context.Background(), maxCutModel(t, g), solve.DefaultOptions())
	require.NoError(t, err)

	assert.InDelta(t, -4.0, res.Energy, 1e-12)
	assert.Equal(t, 4, verifyCut(t, g, res))
	assert.Equal(t, res.Assignment[0], res.Assignment[2], "opposite corners share a side")
	assert.Equal(t, res.Assignment[1], res.Assignment[3])
	assert.NotEqual(t, res.Assignment[0], res.Assignment[1])
}

// TestBruteForce_SpinModel verifies that a Spin submission is handled and
// the returned assignment is already binary-normalized.
func TestBruteForce_SpinModel(t *testing.T) {
	g, err := graph.Cycle(4)
	require.NoError(t, err)
	m, err := ising.BuildGraph(g)
	require.NoError(t, err)
	sp, err := bqm.FromIsing(m)
	require.NoError(t, err)

	bf := &solve.BruteForce{}
	res, err := bf.Sample(context.Background(), sp, solve.DefaultOptions())
	require.NoError(t, err)

	for n, v := range res.Assignment {
		assert.Contains(t, []int{0, 1}, v, "node %d must be binary", n)
	}
	// The γ-weighted Ising optimum is still the even bipartition.
	assert.Equal(t, 4, verifyCut(t, g, res))
}

// TestBruteForce_Deterministic verifies the lowest-index tie-break is
// stable across worker counts.
func TestBruteForce_Deterministic(t *testing.T) {
	g, err := graph.Cycle(6)
	require.NoError(t, err)
	m := maxCutModel(t, g)

	one := &solve.BruteForce{Workers: 1}
	many := &solve.BruteForce{Workers: 7}

	resOne, err := one.Sample(context.Background(), m, solve.DefaultOptions())
	require.NoError(t, err)
	resMany, err := many.Sample(context.Background(), m, solve.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, resOne, resMany)
}

// TestBruteForce_InputValidation covers the sampler's sentinels.
func TestBruteForce_InputValidation(t *testing.T) {
	bf := &solve.BruteForce{}
	ctx := context.Background()

	_, err := bf.Sample(ctx, nil, solve.DefaultOptions())
	assert.ErrorIs(t, err, solve.ErrNilModel)

	empty := &bqm.Model{
		Vartype:   bqm.Binary,
		Linear:    map[graph.Node]float64{},
		Quadratic: map[graph.Edge]float64{},
	}
	_, err = bf.Sample(ctx, empty, solve.DefaultOptions())
	assert.ErrorIs(t, err, solve.ErrNoVariables)

	big := &bqm.Model{
		Vartype:   bqm.Binary,
		Linear:    make(map[graph.Node]float64),
		Quadratic: map[graph.Edge]float64{},
	}
	for i := int64(0); i <= solve.MaxBruteForceVariables; i++ {
		big.Linear[i] = 1
	}
	_, err = bf.Sample(ctx, big, solve.DefaultOptions())
	assert.ErrorIs(t, err, solve.ErrTooManyVariables)
}

// TestOptions_Validation covers the knob sentinels through Sample.
func TestOptions_Validation(t *testing.T) {
	g, err := graph.Cycle(3)
	require.NoError(t, err)
	m := maxCutModel(t, g)
	bf := &solve.BruteForce{}
	ctx := context.Background()

	bad := solve.DefaultOptions()
	bad.ReadCount = 0
	_, err = bf.Sample(ctx, m, bad)
	assert.ErrorIs(t, err, solve.ErrBadReadCount)

	bad = solve.DefaultOptions()
	bad.ChainStrength = 0
	_, err = bf.Sample(ctx, m, bad)
	assert.ErrorIs(t, err, solve.ErrBadChainStrength)

	bad = solve.DefaultOptions()
	bad.Sweeps = -1
	_, err = bf.Sample(ctx, m, bad)
	assert.ErrorIs(t, err, solve.ErrBadSweeps)
}

// TestBruteForce_Cancellation verifies that a cancelled context aborts
// the search.
func TestBruteForce_Cancellation(t *testing.T) {
	g := graph.CubeConnectedCycle()
	m := maxCutModel(t, g)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	bf := &solve.BruteForce{}
	_, err := bf.Sample(ctx, m, solve.DefaultOptions())
	assert.ErrorIs(t, err, context.Canceled)
}

// TestAnnealer_Deterministic verifies that a fixed seed reproduces the
// exact same result.
func TestAnnealer_Deterministic(t *testing.T) {
	g := graph.CubeConnectedCycle()
	m := maxCutModel(t, g)

	opts := solve.DefaultOptions()
	opts.Seed = 42

	an := &solve.Annealer{}
	first, err := an.Sample(context.Background(), m, opts)
	require.NoError(t, err)
	second, err := an.Sample(context.Background(), m, opts)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// TestAnnealer_TriangleOptimum verifies the annealer reaches the K₃
// optimum and agrees with the independent scorer.
func TestAnnealer_TriangleOptimum(t *testing.T) {
	g, err := graph.FromEdges([][2]graph.Node{{0, 1}, {1, 2}, {0, 2}})
	require.NoError(t, err)

	opts := solve.DefaultOptions()
	opts.Seed = 7
	opts.Sweeps = 200

	an := &solve.Annealer{}
	res, err := an.Sample(context.Background(), maxCutModel(t, g), opts)
	require.NoError(t, err)

	assert.InDelta(t, -2.0, res.Energy, 1e-12)
	assert.Equal(t, 2, verifyCut(t, g, res))
}

// TestAnnealer_EnergyMatchesScore is the deterministic-fixture agreement
// regression: on the 24-node fixture, the reported best energy must equal
// the negated independent cut count, whatever cut the annealer lands on.
func TestAnnealer_EnergyMatchesScore(t *testing.T) {
	g := graph.CubeConnectedCycle()
	m := maxCutModel(t, g)

	opts := solve.DefaultOptions()
	opts.Seed = 1234

	an := &solve.Annealer{}
	res, err := an.Sample(context.Background(), m, opts)
	require.NoError(t, err)

	cuts := verifyCut(t, g, res)
	assert.InDelta(t, -float64(cuts), res.Energy, 1e-9, "energy and independent score must agree")
}
