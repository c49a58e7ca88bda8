// Package query answers structural questions about graphs: connectivity,
// treeness, graph equality, and node selection.
//
// Connected and Tree apply to undirected graphs only and use
// breadth-first search from an arbitrary start node. Equal compares two
// graphs for identical flags, node sets, edge sets, and (on weighted
// graphs) edge weights — it does not test for isomorphism. AnyNode
// returns the first node in iteration order; RandomNode draws a node
// uniformly at random by rejection sampling over the adjacency array.
package query
