package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/grava/core"
	"github.com/katalvlaran/grava/minheap"
)

// Dijkstra computes shortest distances from source to every reachable
// node of the weighted graph g.
//
// Returns:
//
//   - dist: distance from source per reached node; nodes that are
//     unreachable (or beyond WithMaxDistance) are absent.
//   - prev: predecessor per reached node on one shortest path;
//     the source has no predecessor and is absent.
//
// Validation, in order: g must be weighted (ErrUnweightedGraph), source
// must be present (ErrSourceNotFound), every edge weight must be a
// non-negative number (ErrNegativeWeight, ErrNaNWeight).
//
// Complexity: O((n + m) log n).
func Dijkstra(g *core.Graph, source uint32, opts ...Option) (map[uint32]float64, map[uint32]uint32, error) {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if !g.Weighted() {
		return nil, nil, ErrUnweightedGraph
	}
	if !g.HasNode(source) {
		return nil, nil, fmt.Errorf("dijkstra: node %d: %w", source, ErrSourceNotFound)
	}

	// 1. Fail fast on weights Dijkstra cannot order.
	edges := g.Edges()
	for {
		e, ok := edges.Next()
		if !ok {
			break
		}
		if math.IsNaN(e.Weight) {
			return nil, nil, fmt.Errorf("dijkstra: edge (%d,%d): %w", e.U, e.V, ErrNaNWeight)
		}
		if e.Weight < 0 {
			return nil, nil, fmt.Errorf("dijkstra: edge (%d,%d) weight %g: %w", e.U, e.V, e.Weight, ErrNegativeWeight)
		}
	}

	// 2. Grow the frontier from the source, settling nodes in increasing
	//    distance order. A shorter path to a frontier node re-keys it in
	//    place; a settled node is never improved again because weights
	//    are non-negative.
	dist := map[uint32]float64{source: 0}
	prev := make(map[uint32]uint32)
	frontier := minheap.NewHeap()
	if err := frontier.Add(source, 0); err != nil {
		return nil, nil, fmt.Errorf("dijkstra: seeding frontier: %w", err)
	}
	for frontier.Len() > 0 {
		u, err := frontier.Pop()
		if err != nil {
			return nil, nil, fmt.Errorf("dijkstra: draining frontier: %w", err)
		}
		it, err := g.Neighbors(u)
		if err != nil {
			return nil, nil, fmt.Errorf("dijkstra: neighbors of %d: %w", u, err)
		}
		for {
			v, w, ok := it.Next()
			if !ok {
				break
			}
			next := dist[u] + w
			if next > cfg.maxDistance {
				continue
			}
			known, seen := dist[v]
			if seen && next >= known {
				continue
			}
			dist[v] = next
			prev[v] = u
			if seen {
				if err = frontier.DecreaseKey(v, next); err != nil {
					return nil, nil, fmt.Errorf("dijkstra: re-keying %d: %w", v, err)
				}
				continue
			}
			if err = frontier.Add(v, next); err != nil {
				return nil, nil, fmt.Errorf("dijkstra: queueing %d: %w", v, err)
			}
		}
	}

	return dist, prev, nil
}

// Path reconstructs the shortest path from the run's source to target out
// of the prev map returned by Dijkstra. The second result is false when
// target was never reached.
//
// Complexity: O(len(path)).
func Path(prev map[uint32]uint32, source, target uint32) ([]uint32, bool) {
	if target == source {
		return []uint32{source}, true
	}
	if _, ok := prev[target]; !ok {
		return nil, false
	}
	path := []uint32{target}
	for v := target; v != source; {
		v = prev[v]
		path = append(path, v)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, true
}
