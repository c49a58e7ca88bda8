// Package core: graph queries.
//
// This file implements HasNode, HasEdge, the degree accessors, and
// EdgeWeight. All queries are O(1) expected: one adjacency-array access
// plus a hashed lookup.
package core

// HasNode reports whether v is a node of the graph.
// Complexity: O(1).
func (g *Graph) HasNode(v uint32) bool {
	if g.node.Len() == 0 {
		return false
	}
	if int64(v) >= int64(len(g.adjacency)) {
		return false
	}

	return g.adjacency[v] != nil
}

// HasEdge reports whether the edge (u, v) is in the graph. For undirected
// graphs the canonical order (min(u,v), max(u,v)) is applied, so the
// argument order does not matter. A self-loop query on a graph that
// disallows self-loops is always false.
// Complexity: O(1) expected.
func (g *Graph) HasEdge(u, v uint32) bool {
	if !g.HasNode(u) || !g.HasNode(v) {
		return false
	}
	if u == v && !g.selfloops {
		return false
	}

	if g.directed {
		return g.adjacency[u].neighbor.has(v)
	}

	a, b := canonical(u, v)

	return g.adjacency[a].neighbor.has(b)
}

// Degree returns the degree of v: the number of neighbors on an
// undirected graph (a self-loop counts once), or the in-degree plus the
// out-degree on a directed graph (a self-loop counts twice).
// Returns ErrNodeNotFound if v is not in the graph.
// Complexity: O(1).
func (g *Graph) Degree(v uint32) (int, error) {
	if !g.HasNode(v) {
		return 0, ErrNodeNotFound
	}

	r := g.adjacency[v]
	if g.directed {
		return r.neighbor.len() + r.in.Len(), nil
	}

	return r.neighbor.len(), nil
}

// InDegree returns the number of edges into v. On an undirected graph
// every incident edge counts, so InDegree equals Degree.
// Returns ErrNodeNotFound if v is not in the graph.
// Complexity: O(1).
func (g *Graph) InDegree(v uint32) (int, error) {
	if !g.HasNode(v) {
		return 0, ErrNodeNotFound
	}

	r := g.adjacency[v]
	if g.directed {
		return r.in.Len(), nil
	}

	return r.neighbor.len(), nil
}

// OutDegree returns the number of edges out of v. On an undirected graph
// every incident edge counts, so OutDegree equals Degree.
// Returns ErrNodeNotFound if v is not in the graph.
// Complexity: O(1).
func (g *Graph) OutDegree(v uint32) (int, error) {
	if !g.HasNode(v) {
		return 0, ErrNodeNotFound
	}

	return g.adjacency[v].neighbor.len(), nil
}

// EdgeWeight returns the weight of the edge (u, v).
// Returns ErrUnweightedGraph on an unweighted graph and ErrEdgeNotFound
// if the edge is not in the graph.
// Complexity: O(1) expected.
func (g *Graph) EdgeWeight(u, v uint32) (float64, error) {
	if !g.weighted {
		return 0, ErrUnweightedGraph
	}
	if !g.HasEdge(u, v) {
		return 0, ErrEdgeNotFound
	}

	a, b := u, v
	if !g.directed {
		a, b = canonical(u, v)
	}
	w, ok := g.adjacency[a].neighbor.weight(b)
	if !ok {
		panic("core: edge present but weight missing")
	}

	return w, nil
}

// canonical orders an undirected edge's endpoints as (min, max).
func canonical(u, v uint32) (uint32, uint32) {
	if u <= v {
		return u, v
	}

	return v, u
}
