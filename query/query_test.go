package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/grava/core"
)

// path builds an undirected path 0-1-...-n.
func path(t *testing.T, n uint32) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for v := uint32(0); v < n; v++ {
		require.NoError(t, g.AddEdge(v, v+1))
	}

	return g
}

// TestConnected covers the empty, trivial, connected, and split cases.
func TestConnected(t *testing.T) {
	empty := core.NewGraph()
	ok, err := Connected(empty)
	require.NoError(t, err)
	assert.False(t, ok, "a graph with zero nodes is not connected")

	single := core.NewGraph()
	require.NoError(t, single.AddNode(0))
	ok, err = Connected(single)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Connected(path(t, 4))
	require.NoError(t, err)
	assert.True(t, ok)

	split := path(t, 4)
	require.NoError(t, split.AddEdge(100, 101))
	ok, err = Connected(split)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = Connected(core.NewGraph(core.WithDirected()))
	assert.ErrorIs(t, err, ErrDirected)
}

// TestConnected_SelfLoopsIgnored checks loops do not break the sweep.
func TestConnected_SelfLoopsIgnored(t *testing.T) {
	g := core.NewGraph(core.WithSelfLoops())
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(0, 0))

	ok, err := Connected(g)
	require.NoError(t, err)
	assert.True(t, ok)
}

// TestTree compares a path, a cycle, and a disconnected forest.
func TestTree(t *testing.T) {
	ok, err := Tree(path(t, 4))
	require.NoError(t, err)
	assert.True(t, ok, "a path is a tree")

	cycle := path(t, 3)
	require.NoError(t, cycle.AddEdge(3, 0))
	ok, err = Tree(cycle)
	require.NoError(t, err)
	assert.False(t, ok, "a cycle is not a tree")

	// Two components with n-1 edges in total are not a tree.
	forest := core.NewGraph()
	require.NoError(t, forest.AddEdge(0, 1))
	require.NoError(t, forest.AddEdge(2, 3))
	require.NoError(t, forest.AddNode(4))
	ok, err = Tree(forest)
	require.NoError(t, err)
	assert.False(t, ok)

	single := core.NewGraph()
	require.NoError(t, single.AddNode(0))
	ok, err = Tree(single)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = Tree(core.NewGraph(core.WithDirected()))
	assert.ErrorIs(t, err, ErrDirected)
}

// TestEqual compares structurally identical and differing graphs.
func TestEqual(t *testing.T) {
	g := path(t, 3)
	h := path(t, 3)
	assert.True(t, Equal(g, h))

	require.NoError(t, h.AddEdge(0, 3))
	assert.False(t, Equal(g, h), "edge counts differ")

	// Same counts, different edges.
	a := core.NewGraph()
	require.NoError(t, a.AddEdge(0, 1))
	require.NoError(t, a.AddEdge(2, 3))
	b := core.NewGraph()
	require.NoError(t, b.AddEdge(0, 2))
	require.NoError(t, b.AddEdge(1, 3))
	assert.False(t, Equal(a, b))

	// Flags differ.
	assert.False(t, Equal(core.NewGraph(), core.NewGraph(core.WithDirected())))
	assert.False(t, Equal(core.NewGraph(), core.NewGraph(core.WithWeighted())))
}

// TestEqual_Weights distinguishes graphs by edge weight.
func TestEqual_Weights(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	require.NoError(t, g.AddEdgeWeight(0, 1, 2.5))
	h := core.NewGraph(core.WithWeighted())
	require.NoError(t, h.AddEdgeWeight(0, 1, 2.5))
	assert.True(t, Equal(g, h))

	k := core.NewGraph(core.WithWeighted())
	require.NoError(t, k.AddEdgeWeight(0, 1, 2.75))
	assert.False(t, Equal(g, k))
}

// TestAnyNode returns the smallest ID and fails on an empty graph.
func TestAnyNode(t *testing.T) {
	_, err := AnyNode(core.NewGraph())
	assert.ErrorIs(t, err, ErrNoNodes)

	g := core.NewGraph()
	require.NoError(t, g.AddNode(9))
	require.NoError(t, g.AddNode(4))

	v, err := AnyNode(g)
	require.NoError(t, err)
	assert.Equal(t, uint32(4), v)
}

// TestRandomNode always lands on a live node.
func TestRandomNode(t *testing.T) {
	_, err := RandomNode(core.NewGraph())
	assert.ErrorIs(t, err, ErrNoNodes)

	g := core.NewGraph()
	for _, v := range []uint32{2, 50, 99} {
		require.NoError(t, g.AddNode(v))
	}
	for i := 0; i < 32; i++ {
		v, rerr := RandomNode(g)
		require.NoError(t, rerr)
		assert.True(t, g.HasNode(v))
	}
}
