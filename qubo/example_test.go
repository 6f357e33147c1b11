package qubo_test

import (
	"fmt"

	"github.com/katalvlaran/maxcut/graph"
	"github.com/katalvlaran/maxcut/qubo"
)

// ExampleBuild derives the Max-Cut QUBO of the triangle K₃ and reads a
// few coefficients back: every edge carries 2, every node −degree.
func ExampleBuild() {
	g, _ := graph.FromEdges([][2]graph.Node{{0, 1}, {1, 2}, {0, 2}})

	q, _ := qubo.Build(g)

	fmt.Println("Q[(0,1)] =", q[qubo.Term{I: 0, J: 1}])
	fmt.Println("Q[(1,1)] =", q[qubo.Term{I: 1, J: 1}])

	// The best 1-vs-2 split cuts two edges; its objective is the negated cut.
	best := map[graph.Node]int{0: 1, 1: 0, 2: 0}
	fmt.Println("E(best)  =", qubo.Energy(q, best))

	// Output:
	// Q[(0,1)] = 2
	// Q[(1,1)] = -2
	// E(best)  = -2
}
