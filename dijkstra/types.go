// Package dijkstra computes single-source shortest paths on weighted
// graphs with non-negative edge weights.
//
// Distances are explored in increasing order through an addressable
// minimum heap: every node enters the frontier at most once and is
// re-keyed in place when a shorter path is found, so the frontier never
// holds stale duplicates.
//
// Complexity: O((n + m) log n) time, O(n) space beyond the graph.
package dijkstra

import (
	"errors"
	"math"
)

var (
	// ErrUnweightedGraph means the graph does not carry edge weights.
	ErrUnweightedGraph = errors.New("dijkstra: graph must be weighted")

	// ErrSourceNotFound means the source node is not in the graph.
	ErrSourceNotFound = errors.New("dijkstra: source node not found")

	// ErrNegativeWeight means an edge with negative weight was found.
	// Dijkstra's invariant requires non-negative weights.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight")

	// ErrNaNWeight means an edge weight is NaN.
	ErrNaNWeight = errors.New("dijkstra: NaN edge weight")
)

// Options configures a shortest-path run.
type Options struct {
	maxDistance float64
}

// Option adjusts Options.
type Option func(*Options)

// WithMaxDistance caps exploration: nodes whose shortest distance exceeds
// max are left out of the result. Panics when max is negative or NaN.
func WithMaxDistance(max float64) Option {
	if max < 0 || math.IsNaN(max) {
		panic("dijkstra: WithMaxDistance requires a non-negative distance")
	}

	return func(o *Options) {
		o.maxDistance = max
	}
}

func defaultOptions() Options {
	return Options{maxDistance: math.Inf(1)}
}
