package visit

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/grava/core"
	"github.com/katalvlaran/grava/hashdict"
	"github.com/katalvlaran/grava/hashset"
	"github.com/katalvlaran/grava/query"
	"github.com/katalvlaran/grava/queue"
	"github.com/katalvlaran/grava/stack"
)

var (
	// ErrIsolatedStart means the start node has no traversable neighbor:
	// its degree is zero, or its only edge is a self-loop.
	ErrIsolatedStart = errors.New("visit: start node has no traversable neighbors")

	// ErrNotTree means the graph handed to a tree traversal is not an
	// undirected tree.
	ErrNotTree = errors.New("visit: graph is not a tree")
)

// Order selects the neighbor visiting order of PreOrder and PostOrder.
type Order int

const (
	// DefaultOrder visits neighbors in internal storage order.
	DefaultOrder Order = iota

	// SortedOrder visits neighbors in ascending order of node ID.
	SortedOrder
)

// BFS traverses g breadth-first from s and returns the search tree: a new
// unweighted graph of the same directedness as g, holding every node
// reachable from s and one edge per first discovery. Neighbors of each
// node are discovered in internal storage order.
//
// Returns core.ErrNodeNotFound when s is not in g, and ErrIsolatedStart
// when s has no traversable neighbor.
//
// Complexity: O(n + m) over the reachable component.
func BFS(g *core.Graph, s uint32) (*core.Graph, error) {
	if err := checkStart(g, s); err != nil {
		return nil, err
	}

	tree := newTree(g)
	if err := tree.AddNode(s); err != nil {
		return nil, fmt.Errorf("visit: seeding tree with %d: %w", s, err)
	}
	seen := hashset.NewSet()
	if err := seen.Add(s); err != nil {
		return nil, fmt.Errorf("visit: marking %d seen: %w", s, err)
	}
	pending := queue.NewQueue[uint32]()
	if err := pending.Append(s); err != nil {
		return nil, fmt.Errorf("visit: queueing %d: %w", s, err)
	}

	// 1. Pop a node, discover its unseen neighbors, record one tree edge
	//    per discovery, and queue each discovery for its own expansion.
	for pending.Len() > 0 {
		u, err := pending.Pop()
		if err != nil {
			return nil, fmt.Errorf("visit: draining queue: %w", err)
		}
		it, err := g.Neighbors(u)
		if err != nil {
			return nil, fmt.Errorf("visit: neighbors of %d: %w", u, err)
		}
		for {
			v, _, ok := it.Next()
			if !ok {
				break
			}
			if seen.Has(v) {
				continue
			}
			if err = seen.Add(v); err != nil {
				return nil, fmt.Errorf("visit: marking %d seen: %w", v, err)
			}
			if err = pending.Append(v); err != nil {
				return nil, fmt.Errorf("visit: queueing %d: %w", v, err)
			}
			if err = tree.AddEdge(u, v); err != nil {
				return nil, fmt.Errorf("visit: tree edge (%d,%d): %w", u, v, err)
			}
		}
	}

	return tree, nil
}

// DFS traverses g depth-first from s and returns the search tree: a new
// unweighted graph of the same directedness as g, holding every node
// reachable from s and one edge per first visit. The traversal is
// iterative; when a node is pushed more than once before its visit, the
// parent recorded last wins.
//
// Returns core.ErrNodeNotFound when s is not in g, and ErrIsolatedStart
// when s has no traversable neighbor.
//
// Complexity: O(n + m) over the reachable component.
func DFS(g *core.Graph, s uint32) (*core.Graph, error) {
	if err := checkStart(g, s); err != nil {
		return nil, err
	}

	tree := newTree(g)
	if err := tree.AddNode(s); err != nil {
		return nil, fmt.Errorf("visit: seeding tree with %d: %w", s, err)
	}
	seen := hashset.NewSet()
	parent := hashdict.NewDict[uint32]()
	todo := stack.NewStack[uint32]()
	if err := todo.Push(s); err != nil {
		return nil, fmt.Errorf("visit: pushing %d: %w", s, err)
	}

	// 1. Pop a node; on its first visit attach it to the parent recorded
	//    at push time, then push every neighbor with itself as parent.
	for todo.Len() > 0 {
		u, err := todo.Pop()
		if err != nil {
			return nil, fmt.Errorf("visit: draining stack: %w", err)
		}
		if seen.Has(u) {
			continue
		}
		if u != s {
			p, perr := parent.Get(u)
			if perr != nil {
				return nil, fmt.Errorf("visit: parent of %d: %w", u, perr)
			}
			if err = tree.AddEdge(p, u); err != nil {
				return nil, fmt.Errorf("visit: tree edge (%d,%d): %w", p, u, err)
			}
		}
		if err = seen.Add(u); err != nil {
			return nil, fmt.Errorf("visit: marking %d seen: %w", u, err)
		}
		it, err := g.Neighbors(u)
		if err != nil {
			return nil, fmt.Errorf("visit: neighbors of %d: %w", u, err)
		}
		for {
			v, _, ok := it.Next()
			if !ok {
				break
			}
			if seen.Has(v) {
				continue
			}
			if err = parent.Set(v, u); err != nil {
				return nil, fmt.Errorf("visit: recording parent of %d: %w", v, err)
			}
			if err = todo.Push(v); err != nil {
				return nil, fmt.Errorf("visit: pushing %d: %w", v, err)
			}
		}
	}

	return tree, nil
}

// PreOrder walks tree from root and returns the nodes in pre-order: each
// node appears before all nodes of its subtrees. The order option fixes
// the sequence in which a node's children are descended.
//
// Returns ErrNotTree when tree is not an undirected tree (wrapping
// query.ErrDirected for a directed graph), and core.ErrNodeNotFound when
// root is not in tree.
//
// Complexity: O(n) with DefaultOrder, O(n log n) with SortedOrder.
func PreOrder(tree *core.Graph, root uint32, order Order) ([]uint32, error) {
	if err := checkTree(tree, root); err != nil {
		return nil, err
	}

	list := make([]uint32, 0, tree.NodeCount())
	seen := hashset.NewSet()
	todo := stack.NewStack[uint32]()
	if err := todo.Push(root); err != nil {
		return nil, fmt.Errorf("visit: pushing %d: %w", root, err)
	}
	for todo.Len() > 0 {
		u, err := todo.Pop()
		if err != nil {
			return nil, fmt.Errorf("visit: draining stack: %w", err)
		}
		if seen.Has(u) {
			continue
		}
		list = append(list, u)
		if err = seen.Add(u); err != nil {
			return nil, fmt.Errorf("visit: marking %d seen: %w", u, err)
		}
		if err = pushChildren(tree, u, seen, todo, order); err != nil {
			return nil, err
		}
	}

	return list, nil
}

// PostOrder walks tree from root and returns the nodes in post-order:
// each node appears after all nodes of its subtrees, the root last. The
// order option fixes the sequence in which a node's children are
// descended.
//
// Returns ErrNotTree when tree is not an undirected tree (wrapping
// query.ErrDirected for a directed graph), and core.ErrNodeNotFound when
// root is not in tree.
//
// Complexity: O(n) with DefaultOrder, O(n log n) with SortedOrder.
func PostOrder(tree *core.Graph, root uint32, order Order) ([]uint32, error) {
	if err := checkTree(tree, root); err != nil {
		return nil, err
	}

	list := make([]uint32, 0, tree.NodeCount())
	seen := hashset.NewSet()
	todo := stack.NewStack[uint32]()
	if err := todo.Push(root); err != nil {
		return nil, fmt.Errorf("visit: pushing %d: %w", root, err)
	}

	// 1. Peek at the top node. The first time it is expanded: mark it
	//    seen and push its unseen children above it. The second time the
	//    node surfaces its subtrees are done, so pop and emit it.
	for todo.Len() > 0 {
		u, err := todo.Peek()
		if err != nil {
			return nil, fmt.Errorf("visit: peeking stack: %w", err)
		}
		if seen.Has(u) {
			if _, err = todo.Pop(); err != nil {
				return nil, fmt.Errorf("visit: draining stack: %w", err)
			}
			list = append(list, u)
			continue
		}
		if err = seen.Add(u); err != nil {
			return nil, fmt.Errorf("visit: marking %d seen: %w", u, err)
		}
		if err = pushChildren(tree, u, seen, todo, order); err != nil {
			return nil, err
		}
	}

	return list, nil
}

// checkStart validates a BFS/DFS start node: it must exist in g and have
// at least one neighbor besides itself.
func checkStart(g *core.Graph, s uint32) error {
	if !g.HasNode(s) {
		return fmt.Errorf("visit: start node %d: %w", s, core.ErrNodeNotFound)
	}
	degree, err := g.Degree(s)
	if g.Directed() {
		degree, err = g.OutDegree(s)
	}
	if err != nil {
		return fmt.Errorf("visit: start node %d: %w", s, err)
	}
	if degree == 0 || (degree == 1 && g.HasEdge(s, s)) {
		return fmt.Errorf("visit: start node %d: %w", s, ErrIsolatedStart)
	}

	return nil
}

// checkTree validates a tree traversal root: the graph must be an
// undirected tree containing root.
func checkTree(tree *core.Graph, root uint32) error {
	ok, err := query.Tree(tree)
	if err != nil {
		return fmt.Errorf("visit: %w: %w", ErrNotTree, err)
	}
	if !ok {
		return ErrNotTree
	}
	if !tree.HasNode(root) {
		return fmt.Errorf("visit: root node %d: %w", root, core.ErrNodeNotFound)
	}

	return nil
}

// newTree allocates an empty search tree matching the directedness of g.
// Search trees are unweighted and never carry self-loops.
func newTree(g *core.Graph) *core.Graph {
	if g.Directed() {
		return core.NewGraph(core.WithDirected())
	}

	return core.NewGraph()
}

// pushChildren pushes the unseen neighbors of u onto todo. With
// SortedOrder the neighbors are pushed in descending ID order so that
// they pop in ascending order.
func pushChildren(tree *core.Graph, u uint32, seen *hashset.Set, todo *stack.Stack[uint32], order Order) error {
	it, err := tree.Neighbors(u)
	if err != nil {
		return fmt.Errorf("visit: neighbors of %d: %w", u, err)
	}
	children := make([]uint32, 0)
	for {
		v, _, ok := it.Next()
		if !ok {
			break
		}
		if !seen.Has(v) {
			children = append(children, v)
		}
	}
	if order == SortedOrder {
		sort.Slice(children, func(a, b int) bool { return children[a] < children[b] })
		for i, j := 0, len(children)-1; i < j; i, j = i+1, j-1 {
			children[i], children[j] = children[j], children[i]
		}
	}
	for _, v := range children {
		if err = todo.Push(v); err != nil {
			return fmt.Errorf("visit: pushing %d: %w", v, err)
		}
	}

	return nil
}
