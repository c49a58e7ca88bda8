package graphio

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/grava/core"
	"github.com/katalvlaran/grava/query"
)

// writeFile drops a graph file into a temporary directory.
func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "graph.gnx")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

// TestRead_Unweighted parses a small file with comments and an isolated
// node.
func TestRead_Unweighted(t *testing.T) {
	path := writeFile(t, `# a path on three nodes, plus node 7
0,1
1,2
7
`)

	g, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, 4, g.NodeCount())
	assert.Equal(t, 2, g.EdgeCount())
	assert.True(t, g.HasEdge(0, 1))
	assert.True(t, g.HasEdge(2, 1))
	assert.True(t, g.HasNode(7))
}

// TestRead_Weighted parses edge weights.
func TestRead_Weighted(t *testing.T) {
	path := writeFile(t, "0,1,3.14159\n1,2,-2.5\n42\n")

	g, err := Read(path, core.WithWeighted())
	require.NoError(t, err)

	w, err := g.EdgeWeight(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 3.14159, w)

	w, err = g.EdgeWeight(1, 2)
	require.NoError(t, err)
	assert.Equal(t, -2.5, w)
	assert.True(t, g.HasNode(42))
}

// TestRead_IgnoresWeightsWhenUnweighted reads a weighted file into an
// unweighted graph and drops the weights.
func TestRead_IgnoresWeightsWhenUnweighted(t *testing.T) {
	path := writeFile(t, "0,1,3.5\n")

	g, err := Read(path)
	require.NoError(t, err)
	assert.False(t, g.Weighted())
	assert.True(t, g.HasEdge(0, 1))
}

// TestRead_Directed honors the direction of each line.
func TestRead_Directed(t *testing.T) {
	path := writeFile(t, "0,1\n1,0\n2,0\n")

	g, err := Read(path, core.WithDirected())
	require.NoError(t, err)
	assert.Equal(t, 3, g.EdgeCount())
	assert.True(t, g.HasEdge(2, 0))
	assert.False(t, g.HasEdge(0, 2))
}

// TestRead_TolerantOfBlanksAroundTokens strips spaces around IDs.
func TestRead_TolerantOfBlanksAroundTokens(t *testing.T) {
	path := writeFile(t, " 0 , 1 \n 5 \n")

	g, err := Read(path)
	require.NoError(t, err)
	assert.True(t, g.HasEdge(0, 1))
	assert.True(t, g.HasNode(5))
}

// TestRead_Errors covers the malformed-line failures.
func TestRead_Errors(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		weighted bool
		want     error
	}{
		{"bad node id", "a,1\n", false, ErrBadNodeID},
		{"negative node id", "-1,2\n", false, ErrBadNodeID},
		{"node id overflow", "4294967296\n", false, ErrBadNodeID},
		{"missing weight", "0,1\n", true, ErrMissingWeight},
		{"blank after second comma", "0,1, 2.5\n", true, ErrMissingWeight},
		{"two periods", "0,1,2.5.3\n", true, ErrBadWeight},
		{"two signs", "0,1,--2\n", true, ErrBadWeight},
		{"weight integer overflow", "0,1,4294967296.0\n", true, ErrBadWeight},
		{"empty file", "", false, ErrEmptyGraph},
		{"comments only", "# nothing here\n", false, ErrEmptyGraph},
		{"duplicate edge", "0,1\n1,0\n", false, core.ErrEdgeExists},
		{"self-loop disallowed", "3,3\n", false, core.ErrLoopNotAllowed},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFile(t, tc.content)

			var opts []core.GraphOption
			if tc.weighted {
				opts = append(opts, core.WithWeighted())
			}
			_, err := Read(path, opts...)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestRead_MissingFile surfaces the os error.
func TestRead_MissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "nope.gnx"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

// TestWrite_RefusesExistingFile verifies the no-overwrite contract.
func TestWrite_RefusesExistingFile(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(0, 1))

	path := writeFile(t, "occupied\n")
	err := Write(g, path)
	assert.ErrorIs(t, err, fs.ErrExist)
}

// TestWrite_EmptyGraph is rejected.
func TestWrite_EmptyGraph(t *testing.T) {
	err := Write(core.NewGraph(), filepath.Join(t.TempDir(), "g.gnx"))
	assert.ErrorIs(t, err, ErrEmptyGraph)
}

// TestRoundTrip_Unweighted writes a graph and reads back an equal one.
func TestRoundTrip_Unweighted(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddNode(9))

	path := filepath.Join(t.TempDir(), "g.gnx")
	require.NoError(t, Write(g, path))

	h, err := Read(path)
	require.NoError(t, err)
	assert.True(t, query.Equal(g, h))
}

// TestRoundTrip_WeightedDirected round-trips weights and orientation.
func TestRoundTrip_WeightedDirected(t *testing.T) {
	g := core.NewGraph(core.WithDirected(), core.WithWeighted())
	require.NoError(t, g.AddEdgeWeight(0, 1, 0.25))
	require.NoError(t, g.AddEdgeWeight(1, 0, -3.5))
	require.NoError(t, g.AddEdgeWeight(1, 2, 100))
	require.NoError(t, g.AddNode(5))

	path := filepath.Join(t.TempDir(), "g.gnx")
	require.NoError(t, Write(g, path))

	h, err := Read(path, core.WithDirected(), core.WithWeighted())
	require.NoError(t, err)
	assert.True(t, query.Equal(g, h))
}
