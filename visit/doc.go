// Package visit traverses graphs: breadth-first and depth-first search
// trees, pre-order and post-order walks of a tree, and bottom-up
// traversal by repeated leaf deletion.
//
// BFS and DFS take any graph and return a new search tree rooted at the
// start node: an unweighted graph of the same directedness containing
// every node reachable from the start, with one edge per discovery. A
// directed graph is traversed along out-neighbors. The start node must
// have at least one traversable neighbor — an isolated node, or one whose
// only edge is a self-loop, yields no tree.
//
// PreOrder, PostOrder, and BottomUp apply to undirected trees. The first
// two walk the tree from a root in the chosen neighbor order
// (DefaultOrder follows hash-bucket order, SortedOrder ascending node
// ID); BottomUp repeatedly emits and deletes the leaves of the tree until
// only the root remains, scheduling nodes through a minimum heap whose
// keys increase with every visit.
package visit
