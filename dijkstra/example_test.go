package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/grava/core"
	"github.com/katalvlaran/grava/dijkstra"
)

func ExampleDijkstra() {
	g := core.NewGraph(core.WithWeighted())
	_ = g.AddEdgeWeight(0, 1, 1)
	_ = g.AddEdgeWeight(1, 2, 2)
	_ = g.AddEdgeWeight(0, 2, 10)

	dist, prev, _ := dijkstra.Dijkstra(g, 0)
	path, _ := dijkstra.Path(prev, 0, 2)
	fmt.Println(dist[2], path)
	// Output: 3 [0 1 2]
}
