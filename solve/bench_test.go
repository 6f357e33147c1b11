package solve_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/maxcut/bqm"
	"github.com/katalvlaran/maxcut/graph"
	"github.com/katalvlaran/maxcut/qubo"
	"github.com/katalvlaran/maxcut/solve"
)

// benchModel builds the Max-Cut BQM of g, failing the benchmark on error.
func benchModel(b *testing.B, g *graph.Graph) *bqm.Model {
	b.Helper()
	q, err := qubo.Build(g)
	if err != nil {
		b.Fatal(err)
	}
	m, err := bqm.FromQUBO(q)
	if err != nil {
		b.Fatal(err)
	}

	return m
}

// BenchmarkBruteForce_Cycle16 measures exhaustive search over 2¹⁶
// assignments of the 16-cycle.
func BenchmarkBruteForce_Cycle16(b *testing.B) {
	g, err := graph.Cycle(16)
	if err != nil {
		b.Fatal(err)
	}
	m := benchModel(b, g)
	bf := &solve.BruteForce{}
	opts := solve.DefaultOptions()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = bf.Sample(context.Background(), m, opts); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkAnnealer_CubeConnectedCycle measures one full sampling run on
// the 24-node fixture with default knobs.
func BenchmarkAnnealer_CubeConnectedCycle(b *testing.B) {
	m := benchModel(b, graph.CubeConnectedCycle())
	an := &solve.Annealer{}
	opts := solve.DefaultOptions()
	opts.Seed = 1

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := an.Sample(context.Background(), m, opts); err != nil {
			b.Fatal(err)
		}
	}
}
