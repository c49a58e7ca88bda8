package visit_test

import (
	"fmt"

	"github.com/katalvlaran/grava/core"
	"github.com/katalvlaran/grava/visit"
)

func ExamplePreOrder() {
	g := core.NewGraph()
	for _, e := range [][2]uint32{{0, 1}, {0, 2}, {1, 3}, {1, 4}} {
		_ = g.AddEdge(e[0], e[1])
	}

	list, _ := visit.PreOrder(g, 0, visit.SortedOrder)
	fmt.Println(list)
	// Output: [0 1 3 4 2]
}

func ExampleBottomUp() {
	g := core.NewGraph()
	for _, e := range [][2]uint32{{0, 1}, {1, 2}, {2, 3}} {
		_ = g.AddEdge(e[0], e[1])
	}

	list, _ := visit.BottomUp(g, 0)
	fmt.Println(list)
	// Output: [3 2 1 0]
}
