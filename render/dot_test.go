package render_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/maxcut/cut"
	"github.com/katalvlaran/maxcut/graph"
	"github.com/katalvlaran/maxcut/render"
)

// TestWriteDOT verifies the plain problem-graph artifact.
func TestWriteDOT(t *testing.T) {
	g, err := graph.FromEdges([][2]graph.Node{{0, 1}, {1, 2}})
	require.NoError(t, err)

	var b strings.Builder
	require.NoError(t, render.WriteDOT(&b, g))
	out := b.String()

	assert.True(t, strings.HasPrefix(out, "graph maxcut {\n"))
	assert.Contains(t, out, "  0;\n")
	assert.Contains(t, out, "  0 -- 1;\n")
	assert.Contains(t, out, "  1 -- 2;\n")
	assert.True(t, strings.HasSuffix(out, "}\n"))
}

// TestWriteSolutionDOT verifies side coloring and dashed cut edges.
func TestWriteSolutionDOT(t *testing.T) {
	g, err := graph.FromEdges([][2]graph.Node{{0, 1}, {1, 2}, {0, 2}})
	require.NoError(t, err)
	p, err := cut.Decode(g, cut.Assignment{0: 1, 1: 0, 2: 0})
	require.NoError(t, err)

	var b strings.Builder
	require.NoError(t, render.WriteSolutionDOT(&b, g, p))
	out := b.String()

	assert.Contains(t, out, "0 [fillcolor=red, fontcolor=black];")
	assert.Contains(t, out, "1 [fillcolor=blue, fontcolor=white];")
	assert.Contains(t, out, "0 -- 1 [style=dashed];", "cut edge is dashed")
	assert.Contains(t, out, "  1 -- 2;\n", "uncut edge is plain")
}

// TestWriteSolutionDOT_MissingNode verifies that an unpartitioned node is
// surfaced as a decoding defect, not rendered arbitrarily.
func TestWriteSolutionDOT_MissingNode(t *testing.T) {
	small, err := graph.FromEdges([][2]graph.Node{{0, 1}})
	require.NoError(t, err)
	p, err := cut.Decode(small, cut.Assignment{0: 1, 1: 0})
	require.NoError(t, err)

	bigger, err := graph.FromEdges([][2]graph.Node{{0, 1}, {1, 2}})
	require.NoError(t, err)

	var b strings.Builder
	err = render.WriteSolutionDOT(&b, bigger, p)
	assert.ErrorIs(t, err, cut.ErrMissingAssignment)
}
