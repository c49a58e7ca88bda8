package visit

import (
	"fmt"

	"github.com/katalvlaran/grava/core"
	"github.com/katalvlaran/grava/hashdict"
	"github.com/katalvlaran/grava/minheap"
	"github.com/katalvlaran/grava/queue"
)

// keyStep is the amount each heap key grows per traversal round. Any
// positive value works: keys only need to increase monotonically so a
// node rescheduled later always sinks below nodes scheduled earlier.
const keyStep = 0.01

// BottomUp traverses tree from the leaves toward root and returns the
// nodes in deletion order: at every round the current leaves are emitted,
// removed, and their parents reconsidered, until only root remains. The
// root is always last, and the result holds every node of the tree
// exactly once.
//
// Returns ErrNotTree when tree is not an undirected tree (wrapping
// query.ErrDirected for a directed graph), and core.ErrNodeNotFound when
// root is not in tree.
//
// Complexity: O(n log n).
func BottomUp(tree *core.Graph, root uint32) ([]uint32, error) {
	if err := checkTree(tree, root); err != nil {
		return nil, err
	}

	// 1. Walk the tree breadth-first from root, orienting every edge
	//    toward the root. Each non-root node gets a parent and a count of
	//    its children; childless nodes seed the heap as the first leaves.
	parent := hashdict.NewDict[uint32]()
	remaining := hashdict.NewDict[int]()
	heap := minheap.NewHeap()
	if err := parent.Add(root, root); err != nil {
		return nil, fmt.Errorf("visit: recording root %d: %w", root, err)
	}
	pending := queue.NewQueue[uint32]()
	if err := pending.Append(root); err != nil {
		return nil, fmt.Errorf("visit: queueing %d: %w", root, err)
	}
	for pending.Len() > 0 {
		u, err := pending.Pop()
		if err != nil {
			return nil, fmt.Errorf("visit: draining queue: %w", err)
		}
		it, err := tree.Neighbors(u)
		if err != nil {
			return nil, fmt.Errorf("visit: neighbors of %d: %w", u, err)
		}
		for {
			v, _, ok := it.Next()
			if !ok {
				break
			}
			if parent.Has(v) {
				continue
			}
			if err = parent.Add(v, u); err != nil {
				return nil, fmt.Errorf("visit: recording parent of %d: %w", v, err)
			}
			degree, derr := tree.Degree(v)
			if derr != nil {
				return nil, fmt.Errorf("visit: degree of %d: %w", v, derr)
			}
			children := degree - 1
			if err = remaining.Add(v, children); err != nil {
				return nil, fmt.Errorf("visit: recording children of %d: %w", v, err)
			}
			if children == 0 {
				if err = heap.Add(v, 0); err != nil {
					return nil, fmt.Errorf("visit: seeding leaf %d: %w", v, err)
				}
				continue
			}
			if err = pending.Append(v); err != nil {
				return nil, fmt.Errorf("visit: queueing %d: %w", v, err)
			}
		}
	}

	// 2. Drain the heap in rounds of strictly increasing key. A popped
	//    node with no children left is a leaf: emit it and move its
	//    parent one child closer to leafhood. A node popped too early is
	//    rescheduled at the current key.
	list := make([]uint32, 0, tree.NodeCount())
	key := 0.0
	for heap.Len() > 0 {
		key += keyStep
		v, err := heap.Pop()
		if err != nil {
			return nil, fmt.Errorf("visit: draining heap: %w", err)
		}
		children, err := remaining.Get(v)
		if err != nil {
			return nil, fmt.Errorf("visit: children of %d: %w", v, err)
		}
		if children > 0 {
			if err = reschedule(heap, v, key); err != nil {
				return nil, err
			}
			continue
		}
		list = append(list, v)
		u, err := parent.Get(v)
		if err != nil {
			return nil, fmt.Errorf("visit: parent of %d: %w", v, err)
		}
		if u == root {
			continue
		}
		if err = reschedule(heap, u, key); err != nil {
			return nil, err
		}
		children, err = remaining.Get(u)
		if err != nil {
			return nil, fmt.Errorf("visit: children of %d: %w", u, err)
		}
		if err = remaining.Set(u, children-1); err != nil {
			return nil, fmt.Errorf("visit: updating children of %d: %w", u, err)
		}
	}
	list = append(list, root)

	return list, nil
}

// reschedule moves v to key inside heap, inserting it if absent. Keys
// grow every round, so an already-queued node always moves down.
func reschedule(heap *minheap.Heap, v uint32, key float64) error {
	if heap.Has(v) {
		if err := heap.IncreaseKey(v, key); err != nil {
			return fmt.Errorf("visit: rescheduling %d: %w", v, err)
		}

		return nil
	}
	if err := heap.Add(v, key); err != nil {
		return fmt.Errorf("visit: scheduling %d: %w", v, err)
	}

	return nil
}
