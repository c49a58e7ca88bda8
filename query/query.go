// Package query: graph property tests and node selection.
package query

import (
	"errors"
	"math/rand/v2"

	"github.com/katalvlaran/grava/core"
	"github.com/katalvlaran/grava/hashset"
	"github.com/katalvlaran/grava/queue"
)

// Sentinel errors for graph queries.
var (
	// ErrDirected indicates a query that is defined for undirected graphs
	// only.
	ErrDirected = errors.New("query: graph is directed")

	// ErrNoNodes indicates a node selection from a graph with no nodes.
	ErrNoNodes = errors.New("query: graph has no nodes")
)

// Connected reports whether the undirected graph g is connected: there is
// a path between every pair of distinct nodes. A graph with one node is
// trivially connected; a graph with zero nodes is not.
//
// Returns ErrDirected for a directed graph.
// Complexity: O(n + m) expected.
func Connected(g *core.Graph) (bool, error) {
	if g.Directed() {
		return false, ErrDirected
	}
	if g.NodeCount() == 0 {
		return false, nil
	}
	if g.NodeCount() == 1 {
		return true, nil
	}

	start, err := AnyNode(g)
	if err != nil {
		return false, err
	}

	seen := hashset.NewSet()
	if err = seen.Add(start); err != nil {
		return false, err
	}
	pending := queue.NewQueue[uint32]()
	if err = pending.Append(start); err != nil {
		return false, err
	}

	// Breadth-first sweep from the start node; self-loops fall out of the
	// seen check.
	for pending.Len() > 0 {
		u, perr := pending.Pop()
		if perr != nil {
			return false, perr
		}
		neighbors, nerr := g.Neighbors(u)
		if nerr != nil {
			return false, nerr
		}
		for {
			v, _, ok := neighbors.Next()
			if !ok {
				break
			}
			if seen.Has(v) {
				continue
			}
			if err = seen.Add(v); err != nil {
				return false, err
			}
			if err = pending.Append(v); err != nil {
				return false, err
			}
		}
	}

	return seen.Len() == g.NodeCount(), nil
}

// Tree reports whether the undirected graph g is a tree: connected with
// exactly n-1 edges. A graph with one node is a tree; a graph with zero
// nodes is not.
//
// Returns ErrDirected for a directed graph.
// Complexity: O(n + m) expected.
func Tree(g *core.Graph) (bool, error) {
	if g.Directed() {
		return false, ErrDirected
	}

	n := g.NodeCount()
	if n == 0 {
		return false, nil
	}
	if n == 1 {
		return true, nil
	}
	if g.EdgeCount() != n-1 {
		return false, nil
	}

	return Connected(g)
}

// Equal reports whether two graphs are the same: identical flags, node
// and edge counts, node sets, edge sets, and (for weighted graphs) edge
// weights. Equal does not test for graph isomorphism.
// Complexity: O(n + m) expected.
func Equal(g, h *core.Graph) bool {
	if g.NodeCount() != h.NodeCount() || g.EdgeCount() != h.EdgeCount() {
		return false
	}
	if g.Directed() != h.Directed() ||
		g.Weighted() != h.Weighted() ||
		g.AllowsSelfLoops() != h.AllowsSelfLoops() {
		return false
	}

	nodes := g.Nodes()
	for {
		u, ok := nodes.Next()
		if !ok {
			break
		}
		if !h.HasNode(u) {
			return false
		}
		if !sameDegrees(g, h, u) {
			return false
		}

		neighbors, err := g.Neighbors(u)
		if err != nil {
			return false
		}
		for {
			v, weight, more := neighbors.Next()
			if !more {
				break
			}
			if !h.HasEdge(u, v) {
				return false
			}
			if g.Weighted() {
				other, werr := h.EdgeWeight(u, v)
				if werr != nil || other != weight {
					return false
				}
			}
		}
	}

	return true
}

// sameDegrees compares u's degree profile across the two graphs.
func sameDegrees(g, h *core.Graph, u uint32) bool {
	if g.Directed() {
		gout, _ := g.OutDegree(u)
		hout, _ := h.OutDegree(u)
		gin, _ := g.InDegree(u)
		hin, _ := h.InDegree(u)

		return gout == hout && gin == hin
	}

	gd, _ := g.Degree(u)
	hd, _ := h.Degree(u)

	return gd == hd
}

// AnyNode returns a node of the graph: the first one in ascending ID
// order. Returns ErrNoNodes if the graph is empty.
// Complexity: O(capacity) worst case.
func AnyNode(g *core.Graph) (uint32, error) {
	if g.NodeCount() == 0 {
		return 0, ErrNoNodes
	}

	v, ok := g.Nodes().Next()
	if !ok {
		panic("query: node count positive but iterator empty")
	}

	return v, nil
}

// RandomNode returns a node chosen uniformly at random, by drawing IDs
// below the adjacency capacity until one hits a live node.
// Returns ErrNoNodes if the graph is empty.
// Complexity: O(capacity / n) expected draws.
func RandomNode(g *core.Graph) (uint32, error) {
	if g.NodeCount() == 0 {
		return 0, ErrNoNodes
	}

	for {
		v := uint32(rand.IntN(g.Cap()))
		if g.HasNode(v) {
			return v, nil
		}
	}
}
