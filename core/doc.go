// Package core provides the central Graph type: a sparse adjacency
// structure over uint32 node IDs supporting every combination of
// directed/undirected, weighted/unweighted, and self-loop-allowing
// variants, with node, edge, and neighbor iteration.
//
// Representation. Node IDs index directly into an adjacency array that
// grows in powers of two, so a node's record is one array access away.
// The set of live IDs is mirrored in a hashed set for counting and
// iteration bookkeeping. Each node record holds its neighbors in a hashed
// set (unweighted graphs) or a hashed dictionary mapping neighbor to
// weight (weighted graphs); directed records additionally hold a plain
// in-neighbor set. Undirected storage is symmetric — an edge (u, v)
// appears in both endpoints' collections, a self-loop once in its node's
// own collection — and queries apply the canonical order
// (min(u,v), max(u,v)).
//
// Typical query cost: HasNode, HasEdge, Degree, InDegree, OutDegree, and
// EdgeWeight are all O(1) expected. AddNode, AddEdge, and DeleteEdge are
// O(1) expected and amortized; DeleteNode is O(degree(v)) expected.
//
// Failure semantics. Every mutator distinguishes precondition violations
// (duplicate node or edge, missing node or edge, disallowed self-loop,
// mismatched weighted/unweighted call, out-of-range ID) from capacity
// exhaustion (the node ceiling MaxNodes, or a full backing container).
// Capacity failures roll back completely: AddEdge removes any endpoint it
// auto-inserted, so the graph is exactly as it was before the call.
//
// Iteration. NodeIter and EdgeIter walk the adjacency array in ascending
// node-ID order; EdgeIter yields each undirected edge once in canonical
// order and every out-edge of a directed graph. NeighborIter walks one
// node's collection in hash-bucket order. Every iterator snapshots the
// graph's mutation counter at creation, and Next panics if the graph has
// been mutated since — iterate first, mutate after.
//
// Graph is not safe for concurrent use.
package core
