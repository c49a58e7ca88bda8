package builder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/grava/core"
)

// Minimum node counts per topology.
const (
	minPathNodes     = 2
	minCycleNodes    = 3
	minStarNodes     = 2
	minCompleteNodes = 1
	minSparseNodes   = 1
)

// Path builds the path 0—1—…—(n−1). Requires n ≥ 2.
//
// Complexity: O(n).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("path: n=%d: %w", n, ErrTooFewNodes)
		}
		if err := addNodes(g, n); err != nil {
			return fmt.Errorf("path: %w", err)
		}
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, uint32(i-1), uint32(i)); err != nil {
				return fmt.Errorf("path: edge (%d,%d): %w", i-1, i, err)
			}
		}

		return nil
	}
}

// Cycle builds the cycle 0—1—…—(n−1)—0. Requires n ≥ 3.
//
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("cycle: n=%d: %w", n, ErrTooFewNodes)
		}
		if err := addNodes(g, n); err != nil {
			return fmt.Errorf("cycle: %w", err)
		}
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, uint32(i-1), uint32(i)); err != nil {
				return fmt.Errorf("cycle: edge (%d,%d): %w", i-1, i, err)
			}
		}
		if err := addEdge(g, cfg, uint32(n-1), 0); err != nil {
			return fmt.Errorf("cycle: edge (%d,0): %w", n-1, err)
		}

		return nil
	}
}

// Star builds the star with center 0 and leaves 1..n−1. Requires n ≥ 2.
//
// Complexity: O(n).
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("star: n=%d: %w", n, ErrTooFewNodes)
		}
		if err := addNodes(g, n); err != nil {
			return fmt.Errorf("star: %w", err)
		}
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, 0, uint32(i)); err != nil {
				return fmt.Errorf("star: edge (0,%d): %w", i, err)
			}
		}

		return nil
	}
}

// Complete builds the complete graph K_n on nodes 0..n−1: every unordered
// pair once on undirected graphs, every ordered pair on directed graphs.
// Requires n ≥ 1.
//
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("complete: n=%d: %w", n, ErrTooFewNodes)
		}
		if err := addNodes(g, n); err != nil {
			return fmt.Errorf("complete: %w", err)
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j || (!g.Directed() && j < i) {
					continue
				}
				if err := addEdge(g, cfg, uint32(i), uint32(j)); err != nil {
					return fmt.Errorf("complete: edge (%d,%d): %w", i, j, err)
				}
			}
		}

		return nil
	}
}

// RandomSparse samples an Erdős–Rényi graph G(n, p) over nodes 0..n−1:
// each admissible edge is included independently with probability p, in a
// fixed trial order so a fixed seed reproduces the graph. Undirected
// graphs try unordered pairs i < j; directed graphs try ordered pairs.
// Self-loops are tried only when the graph allows them. Requires n ≥ 1
// and 0 ≤ p ≤ 1.
//
// Complexity: O(n²) trials.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minSparseNodes {
			return fmt.Errorf("random sparse: n=%d: %w", n, ErrTooFewNodes)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("random sparse: p=%g: %w", p, ErrBadProbability)
		}
		if err := addNodes(g, n); err != nil {
			return fmt.Errorf("random sparse: %w", err)
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if !g.Directed() && j < i {
					continue
				}
				if i == j && !g.AllowsSelfLoops() {
					continue
				}
				if cfg.rng.Float64() >= p {
					continue
				}
				if err := addEdge(g, cfg, uint32(i), uint32(j)); err != nil {
					return fmt.Errorf("random sparse: edge (%d,%d): %w", i, j, err)
				}
			}
		}

		return nil
	}
}

// addNodes inserts nodes 0..n−1, tolerating nodes a prior constructor in
// the same build already created.
func addNodes(g *core.Graph, n int) error {
	for v := 0; v < n; v++ {
		err := g.AddNode(uint32(v))
		if err != nil && !errors.Is(err, core.ErrNodeExists) {
			return fmt.Errorf("node %d: %w", v, err)
		}
	}

	return nil
}
