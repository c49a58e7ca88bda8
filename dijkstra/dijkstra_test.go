package dijkstra

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/grava/core"
)

// weighted builds the undirected graph
//
//	0 --1-- 1 --2-- 2
//	 \             /
//	  ----10------
//
// so the path 0→1→2 (cost 3) beats the direct edge 0→2 (cost 10).
func weighted(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithWeighted())
	require.NoError(t, g.AddEdgeWeight(0, 1, 1))
	require.NoError(t, g.AddEdgeWeight(1, 2, 2))
	require.NoError(t, g.AddEdgeWeight(0, 2, 10))

	return g
}

func TestDijkstra_PrefersCheaperDetour(t *testing.T) {
	dist, prev, err := Dijkstra(weighted(t), 0)
	require.NoError(t, err)
	assert.Equal(t, map[uint32]float64{0: 0, 1: 1, 2: 3}, dist)
	assert.Equal(t, uint32(1), prev[2])

	path, ok := Path(prev, 0, 2)
	require.True(t, ok)
	assert.Equal(t, []uint32{0, 1, 2}, path)
}

func TestDijkstra_Directed(t *testing.T) {
	g := core.NewGraph(core.WithDirected(), core.WithWeighted())
	require.NoError(t, g.AddEdgeWeight(0, 1, 4))
	require.NoError(t, g.AddEdgeWeight(1, 2, 4))
	require.NoError(t, g.AddEdgeWeight(2, 0, 1)) // back edge, unusable from 0

	dist, _, err := Dijkstra(g, 0)
	require.NoError(t, err)
	assert.Equal(t, map[uint32]float64{0: 0, 1: 4, 2: 8}, dist)

	// From node 2 the whole cycle is reachable.
	dist, _, err = Dijkstra(g, 2)
	require.NoError(t, err)
	assert.Equal(t, map[uint32]float64{2: 0, 0: 1, 1: 5}, dist)
}

func TestDijkstra_UnreachableAbsent(t *testing.T) {
	g := weighted(t)
	require.NoError(t, g.AddNode(9))

	dist, prev, err := Dijkstra(g, 0)
	require.NoError(t, err)
	_, ok := dist[9]
	assert.False(t, ok)
	_, ok = Path(prev, 0, 9)
	assert.False(t, ok)
}

func TestDijkstra_MaxDistance(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	for v := uint32(0); v < 5; v++ {
		require.NoError(t, g.AddEdgeWeight(v, v+1, 1))
	}

	dist, _, err := Dijkstra(g, 0, WithMaxDistance(3))
	require.NoError(t, err)
	assert.Equal(t, map[uint32]float64{0: 0, 1: 1, 2: 2, 3: 3}, dist)
}

func TestDijkstra_ZeroWeightEdges(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	require.NoError(t, g.AddEdgeWeight(0, 1, 0))
	require.NoError(t, g.AddEdgeWeight(1, 2, 0))

	dist, _, err := Dijkstra(g, 0)
	require.NoError(t, err)
	assert.Equal(t, map[uint32]float64{0: 0, 1: 0, 2: 0}, dist)
}

func TestDijkstra_Errors(t *testing.T) {
	unweighted := core.NewGraph()
	require.NoError(t, unweighted.AddEdge(0, 1))
	_, _, err := Dijkstra(unweighted, 0)
	assert.ErrorIs(t, err, ErrUnweightedGraph)

	g := weighted(t)
	_, _, err = Dijkstra(g, 42)
	assert.ErrorIs(t, err, ErrSourceNotFound)

	require.NoError(t, g.AddEdgeWeight(2, 3, -1))
	_, _, err = Dijkstra(g, 0)
	assert.ErrorIs(t, err, ErrNegativeWeight)

	nan := core.NewGraph(core.WithWeighted())
	require.NoError(t, nan.AddEdgeWeight(0, 1, math.NaN()))
	_, _, err = Dijkstra(nan, 0)
	assert.ErrorIs(t, err, ErrNaNWeight)
}

func TestWithMaxDistance_Panics(t *testing.T) {
	assert.Panics(t, func() { WithMaxDistance(-1) })
}

func TestPath_SourceOnly(t *testing.T) {
	path, ok := Path(nil, 5, 5)
	require.True(t, ok)
	assert.Equal(t, []uint32{5}, path)
}

func BenchmarkDijkstra(b *testing.B) {
	g := core.NewGraph(core.WithWeighted())
	for v := uint32(0); v < 1024; v++ {
		_ = g.AddEdgeWeight(v, v+1, 1)
		_ = g.AddEdgeWeight(v, (v*7+3)%1024, float64(v%13)+1)
	}
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		_, _, _ = Dijkstra(g, 0)
	}
}
