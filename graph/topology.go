package graph

import (
	"errors"
	"fmt"
)

// ErrTooFewNodes indicates a topology parameter below the constructor's
// minimum node count.
var ErrTooFewNodes = errors.New("graph: too few nodes for topology")

// Minimum node counts per topology.
const (
	minPathNodes     = 2
	minCycleNodes    = 3
	minCompleteNodes = 1
)

// Path builds the path graph P_n on nodes 0..n-1 with edges i—(i+1).
// Deterministic: nodes and edges are emitted in ascending index order.
// Complexity: O(n).
func Path(n int) (*Graph, error) {
	if n < minPathNodes {
		return nil, fmt.Errorf("graph: Path(%d) < min %d: %w", n, minPathNodes, ErrTooFewNodes)
	}

	g := New()
	for i := 0; i < n-1; i++ {
		if err := g.AddEdge(Node(i), Node(i+1)); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Cycle builds the cycle graph C_n on nodes 0..n-1 with edges i—(i+1) mod n.
// Complexity: O(n).
func Cycle(n int) (*Graph, error) {
	if n < minCycleNodes {
		return nil, fmt.Errorf("graph: Cycle(%d) < min %d: %w", n, minCycleNodes, ErrTooFewNodes)
	}

	g := New()
	for i := 0; i < n; i++ {
		if err := g.AddEdge(Node(i), Node((i+1)%n)); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Complete builds the complete graph K_n on nodes 0..n-1.
// Complexity: O(n²).
func Complete(n int) (*Graph, error) {
	if n < minCompleteNodes {
		return nil, fmt.Errorf("graph: Complete(%d) < min %d: %w", n, minCompleteNodes, ErrTooFewNodes)
	}

	g := New()
	for i := 0; i < n; i++ {
		g.AddNode(Node(i))
		for j := i + 1; j < n; j++ {
			if err := g.AddEdge(Node(i), Node(j)); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// cccPairs is the 24-node, 36-edge cube-connected-cycle-like fixture:
// an outer 12-ring (0..11), one spoke per ring node to 12..23, and
// chords linking the spoke tier. Max-Cut optimum: 30 cut edges.
var cccPairs = [][2]Node{
	{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 6},
	{6, 7}, {7, 8}, {8, 9}, {9, 10}, {10, 11}, {0, 11},
	{0, 12}, {1, 13}, {2, 14}, {3, 15}, {4, 16}, {5, 17},
	{6, 18}, {7, 19}, {8, 20}, {9, 21}, {10, 22}, {11, 23},
	{12, 16}, {12, 20}, {13, 17}, {13, 21}, {14, 18}, {14, 22},
	{15, 19}, {15, 23}, {16, 20}, {17, 21}, {18, 22}, {19, 23},
}

// CubeConnectedCycle builds the fixed 24-node regression fixture used by
// tests and as the CLI's default problem. Always well-formed.
// Complexity: O(1) nodes, O(1) edges (constant-size fixture).
func CubeConnectedCycle() *Graph {
	g, err := FromEdges(cccPairs)
	if err != nil {
		// The pair list is a compiled-in constant; failure is a programmer error.
		panic(err)
	}

	return g
}
