// Package core: graph mutators.
//
// This file implements AddNode, AddEdge, AddEdgeWeight, DeleteEdge,
// DeleteNode, and the DisableSelfLoops conversion. Every mutator either
// applies completely or leaves the graph exactly as it was before the
// call; in particular AddEdge removes any endpoint node it auto-inserted
// if a later allocation fails.
package core

import "github.com/katalvlaran/grava/hashset"

// AddNode inserts node v into the graph, growing the adjacency array in
// powers of two when v falls beyond its current length.
//
// Returns ErrNodeRange if v >= MaxNodes, ErrNodeExists if v is already in
// the graph, and ErrCapacity if the graph is full.
// Complexity: O(1) expected, amortized over adjacency growth.
func (g *Graph) AddNode(v uint32) error {
	if v >= MaxNodes {
		return ErrNodeRange
	}
	if g.HasNode(v) {
		return ErrNodeExists
	}
	if g.node.Len() >= MaxNodes {
		return ErrCapacity
	}

	// 1. Make room: the adjacency array grows to the least power of two
	//    greater than v, zero-filling the new slots.
	if int64(v) >= int64(len(g.adjacency)) {
		capacity := len(g.adjacency)
		for int64(v) >= int64(capacity) {
			capacity <<= 1
		}
		fresh := make([]*record, capacity)
		copy(fresh, g.adjacency)
		g.adjacency = fresh
	}

	// 2. Record the ID in the canonical node set, then claim the slot.
	if err := g.node.Add(v); err != nil {
		return err
	}
	g.adjacency[v] = g.newRecord()
	g.version++

	return nil
}

// AddEdge inserts the unweighted edge (u, v), auto-inserting either
// endpoint if missing. On a failure after an endpoint was auto-inserted,
// that endpoint is removed again, restoring the pre-call state.
//
// Returns ErrWeightedGraph on a weighted graph (use AddEdgeWeight),
// ErrEdgeExists if the edge is already present, ErrLoopNotAllowed for a
// self-loop on a graph that disallows them, ErrNodeRange for an
// out-of-range endpoint, and ErrCapacity when an endpoint cannot be
// inserted.
// Complexity: O(1) expected.
func (g *Graph) AddEdge(u, v uint32) error {
	if g.weighted {
		return ErrWeightedGraph
	}

	return g.addEdge(u, v, 0)
}

// AddEdgeWeight inserts the edge (u, v) with the given weight. Apart from
// the weight it behaves exactly like AddEdge, failing with
// ErrUnweightedGraph when the graph carries no weights.
// Complexity: O(1) expected.
func (g *Graph) AddEdgeWeight(u, v uint32, weight float64) error {
	if !g.weighted {
		return ErrUnweightedGraph
	}

	return g.addEdge(u, v, weight)
}

// addEdge is the shared body of AddEdge and AddEdgeWeight.
func (g *Graph) addEdge(u, v uint32, weight float64) error {
	if u >= MaxNodes || v >= MaxNodes {
		return ErrNodeRange
	}
	if u == v && !g.selfloops {
		return ErrLoopNotAllowed
	}
	if g.HasEdge(u, v) {
		return ErrEdgeExists
	}

	// 1. Insert missing endpoints, remembering which ones we created so a
	//    later failure can roll them back.
	var addedU, addedV bool
	if !g.HasNode(u) {
		if err := g.AddNode(u); err != nil {
			return err
		}
		addedU = true
	}
	if !g.HasNode(v) {
		if err := g.AddNode(v); err != nil {
			g.rollbackEndpoints(u, addedU, v, false)

			return err
		}
		addedV = true
	}

	// 2. Record the edge in the endpoint collections. A directed edge goes
	//    into u's out-neighborhood and v's in-set; an undirected edge into
	//    both endpoints' neighborhoods, a self-loop only once.
	var err error
	if g.directed {
		if err = g.adjacency[u].neighbor.add(v, weight); err == nil {
			if err = g.adjacency[v].in.Add(u); err != nil {
				g.mustRemoveNeighbor(u, v)
			}
		}
	} else {
		if err = g.adjacency[v].neighbor.add(u, weight); err == nil && u != v {
			if err = g.adjacency[u].neighbor.add(v, weight); err != nil {
				g.mustRemoveNeighbor(v, u)
			}
		}
	}
	if err != nil {
		g.rollbackEndpoints(u, addedU, v, addedV)

		return err
	}

	g.totalEdges++
	g.version++

	return nil
}

// DeleteEdge removes the edge (u, v) from both endpoints' structures.
// Returns ErrEdgeNotFound if the edge is not in the graph.
// Complexity: O(1) expected.
func (g *Graph) DeleteEdge(u, v uint32) error {
	if !g.HasEdge(u, v) {
		return ErrEdgeNotFound
	}

	if g.directed {
		g.mustRemoveNeighbor(u, v)
		if err := g.adjacency[v].in.Delete(u); err != nil {
			panic(err)
		}
	} else {
		g.mustRemoveNeighbor(v, u)
		if u != v {
			g.mustRemoveNeighbor(u, v)
		}
	}
	g.totalEdges--
	g.version++

	return nil
}

// DeleteNode removes node v and all edges incident on it: v is deleted
// from every neighbor's collection, its own record is released, and the
// edge count drops by the number of incident edges (a directed self-loop
// counts once even though it sits in both of v's collections).
//
// Returns ErrNodeNotFound if v is not in the graph.
// Complexity: O(degree(v)) expected.
func (g *Graph) DeleteNode(v uint32) error {
	if !g.HasNode(v) {
		return ErrNodeNotFound
	}

	r := g.adjacency[v]
	var incident int
	if g.directed {
		out := collectCursor(r.neighbor.cursor())
		in := collectSetMembers(r.in)
		incident = len(out) + len(in)
		if r.neighbor.has(v) {
			incident-- // the self-loop appears in both collections
		}
		for _, w := range out {
			if w != v {
				if err := g.adjacency[w].in.Delete(v); err != nil {
					panic(err)
				}
			}
		}
		for _, w := range in {
			if w != v {
				g.mustRemoveNeighbor(w, v)
			}
		}
	} else {
		neighbors := collectCursor(r.neighbor.cursor())
		incident = len(neighbors)
		for _, w := range neighbors {
			if w != v {
				g.mustRemoveNeighbor(w, v)
			}
		}
	}

	g.totalEdges -= incident
	if err := g.node.Delete(v); err != nil {
		panic(err)
	}
	g.adjacency[v] = nil
	g.version++

	return nil
}

// DisableSelfLoops converts the graph to one that disallows self-loops:
// every existing self-loop edge is deleted, then the flag is cleared so
// new self-loops are rejected.
//
// Returns ErrLoopsDisabled if the graph already disallows self-loops.
// Complexity: O(capacity).
func (g *Graph) DisableSelfLoops() error {
	if !g.selfloops {
		return ErrLoopsDisabled
	}

	for v := range g.adjacency {
		if g.adjacency[v] == nil {
			continue
		}
		id := uint32(v)
		if g.HasEdge(id, id) {
			if err := g.DeleteEdge(id, id); err != nil {
				panic(err)
			}
		}
	}
	g.selfloops = false
	g.version++

	return nil
}

// rollbackEndpoints removes the endpoint nodes that addEdge auto-inserted
// before a later step failed. The nodes carry no edges at this point, so
// releasing them is a pure reversal.
func (g *Graph) rollbackEndpoints(u uint32, addedU bool, v uint32, addedV bool) {
	if addedU {
		g.releaseIsolated(u)
	}
	if addedV {
		g.releaseIsolated(v)
	}
}

// releaseIsolated removes an edge-free node from the node set and frees
// its adjacency slot.
func (g *Graph) releaseIsolated(v uint32) {
	if err := g.node.Delete(v); err != nil {
		panic(err)
	}
	g.adjacency[v] = nil
}

// mustRemoveNeighbor removes w from v's neighborhood and panics if it was
// not there; callers establish presence first.
func (g *Graph) mustRemoveNeighbor(v, w uint32) {
	if err := g.adjacency[v].neighbor.remove(w); err != nil {
		panic(err)
	}
}

// collectCursor drains a neighbor cursor into a slice of node IDs so the
// underlying collection can be mutated afterwards.
func collectCursor(c neighborCursor) []uint32 {
	var out []uint32
	for {
		v, _, ok := c.next()
		if !ok {
			break
		}
		out = append(out, v)
	}

	return out
}

// collectSetMembers drains a hash set into a slice of node IDs.
func collectSetMembers(s *hashset.Set) []uint32 {
	out := make([]uint32, 0, s.Len())
	it := s.Iter()
	for {
		v, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, v)
	}

	return out
}
