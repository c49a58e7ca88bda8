// Package core: per-node adjacency records.
//
// A node's neighbors live behind the private neighborhood interface with
// exactly two implementations, chosen once when the node is inserted: a
// hashed set for unweighted graphs and a hashed dictionary mapping
// neighbor to weight for weighted graphs. The rest of the package is
// oblivious to which one it is holding.
package core

import (
	"github.com/katalvlaran/grava/hashdict"
	"github.com/katalvlaran/grava/hashset"
)

// neighborhood is one node's neighbor collection: out-neighbors on a
// directed graph, all neighbors on an undirected graph.
type neighborhood interface {
	add(v uint32, weight float64) error
	remove(v uint32) error
	has(v uint32) bool
	weight(v uint32) (float64, bool)
	len() int
	cursor() neighborCursor
}

// neighborCursor yields the members of a neighborhood one at a time; the
// reported weight is zero for unweighted collections.
type neighborCursor interface {
	next() (v uint32, weight float64, ok bool)
}

// record is the adjacency record of one live node. On a directed graph,
// neighbor holds the out-neighbors and in holds the in-neighbor set; on an
// undirected graph, neighbor holds all neighbors and in is nil.
type record struct {
	neighbor neighborhood
	in       *hashset.Set
}

// newRecord allocates the record shape matching the graph's flags.
func (g *Graph) newRecord() *record {
	r := &record{}
	if g.weighted {
		r.neighbor = &dictNeighbors{d: hashdict.NewDict[float64]()}
	} else {
		r.neighbor = &setNeighbors{s: hashset.NewSet()}
	}
	if g.directed {
		r.in = hashset.NewSet()
	}

	return r
}

// setNeighbors is the unweighted neighborhood: a hashed set of node IDs.
type setNeighbors struct {
	s *hashset.Set
}

func (n *setNeighbors) add(v uint32, _ float64) error { return n.s.Add(v) }
func (n *setNeighbors) remove(v uint32) error         { return n.s.Delete(v) }
func (n *setNeighbors) has(v uint32) bool             { return n.s.Has(v) }
func (n *setNeighbors) len() int                      { return n.s.Len() }

func (n *setNeighbors) weight(v uint32) (float64, bool) {
	return 0, n.s.Has(v)
}

func (n *setNeighbors) cursor() neighborCursor {
	return &setCursor{it: n.s.Iter()}
}

type setCursor struct {
	it *hashset.SetIter
}

func (c *setCursor) next() (uint32, float64, bool) {
	v, ok := c.it.Next()

	return v, 0, ok
}

// dictNeighbors is the weighted neighborhood: a hashed dictionary mapping
// neighbor ID to edge weight.
type dictNeighbors struct {
	d *hashdict.Dict[float64]
}

func (n *dictNeighbors) add(v uint32, weight float64) error { return n.d.Add(v, weight) }
func (n *dictNeighbors) remove(v uint32) error              { return n.d.Delete(v) }
func (n *dictNeighbors) has(v uint32) bool                  { return n.d.Has(v) }
func (n *dictNeighbors) len() int                           { return n.d.Len() }

func (n *dictNeighbors) weight(v uint32) (float64, bool) {
	w, err := n.d.Get(v)

	return w, err == nil
}

func (n *dictNeighbors) cursor() neighborCursor {
	return &dictCursor{it: n.d.Iter()}
}

type dictCursor struct {
	it *hashdict.DictIter[float64]
}

func (c *dictCursor) next() (uint32, float64, bool) {
	return c.it.Next()
}
