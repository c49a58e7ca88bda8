// Package core: node, edge, and neighbor iterators.
//
// All three iterators snapshot the graph's mutation counter when created
// and panic on Next if the graph has been mutated since, so a traversal
// can never observe a half-updated adjacency structure.
package core

// NodeIter walks the nodes of a graph in ascending ID order.
type NodeIter struct {
	g       *Graph
	version uint64
	next    int // next adjacency slot to inspect
}

// Nodes returns an iterator over the graph's nodes.
func (g *Graph) Nodes() *NodeIter {
	return &NodeIter{g: g, version: g.version}
}

// Next returns the next node ID, or ok == false when every node has been
// yielded. Panics if the graph was mutated since the iterator was created.
func (it *NodeIter) Next() (uint32, bool) {
	if it.version != it.g.version {
		panic("core: graph mutated during node iteration")
	}
	for it.next < len(it.g.adjacency) {
		v := it.next
		it.next++
		if it.g.adjacency[v] != nil {
			return uint32(v), true
		}
	}

	return 0, false
}

// EdgeIter walks the edges of a graph grouped by tail node in ascending
// ID order. On a directed graph every out-edge is yielded; on an
// undirected graph each edge is yielded exactly once in canonical order
// (U <= V), which skips the mirrored entry stored on the other endpoint.
type EdgeIter struct {
	g       *Graph
	version uint64
	next    int            // next adjacency slot to inspect
	u       uint32         // node whose neighborhood is being walked
	cursor  neighborCursor // nil until the first non-empty node
}

// Edges returns an iterator over the graph's edges.
func (g *Graph) Edges() *EdgeIter {
	return &EdgeIter{g: g, version: g.version}
}

// Next returns the next edge, or ok == false when every edge has been
// yielded. Panics if the graph was mutated since the iterator was created.
func (it *EdgeIter) Next() (Edge, bool) {
	if it.version != it.g.version {
		panic("core: graph mutated during edge iteration")
	}
	for {
		if it.cursor == nil {
			if it.next >= len(it.g.adjacency) {
				return Edge{}, false
			}
			v := it.next
			it.next++
			if it.g.adjacency[v] == nil {
				continue
			}
			it.u = uint32(v)
			it.cursor = it.g.adjacency[v].neighbor.cursor()
		}

		w, weight, ok := it.cursor.next()
		if !ok {
			it.cursor = nil
			continue
		}
		if !it.g.directed && it.u > w {
			continue // mirrored entry; yielded from the smaller endpoint
		}

		return Edge{U: it.u, V: w, Weight: weight}, true
	}
}

// NeighborIter walks one node's neighbors in hash-bucket order: the
// out-neighbors on a directed graph, all neighbors on an undirected one.
// The reported weight is zero on unweighted graphs.
type NeighborIter struct {
	g       *Graph
	version uint64
	cursor  neighborCursor
}

// Neighbors returns an iterator over v's neighbor collection.
// Returns ErrNodeNotFound if v is not in the graph.
func (g *Graph) Neighbors(v uint32) (*NeighborIter, error) {
	if !g.HasNode(v) {
		return nil, ErrNodeNotFound
	}

	return &NeighborIter{
		g:       g,
		version: g.version,
		cursor:  g.adjacency[v].neighbor.cursor(),
	}, nil
}

// Next returns the next neighbor and the weight of the connecting edge,
// or ok == false when the collection is exhausted. Panics if the graph
// was mutated since the iterator was created.
func (it *NeighborIter) Next() (v uint32, weight float64, ok bool) {
	if it.version != it.g.version {
		panic("core: graph mutated during neighbor iteration")
	}

	return it.cursor.next()
}
