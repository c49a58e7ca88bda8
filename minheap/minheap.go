// Package minheap: binary minimum heap implementation.
//
// This file declares the Heap type, its sentinel errors, the constructor,
// and the add/pop/rekey operations with their sift procedures.
package minheap

import (
	"errors"
	"math"

	"github.com/katalvlaran/grava/dynarray"
	"github.com/katalvlaran/grava/hashdict"
)

// Sentinel errors for heap operations.
var (
	// ErrNodeExists indicates an insertion of a node already in the heap.
	ErrNodeExists = errors.New("minheap: node already in heap")

	// ErrNodeNotFound indicates a rekey or lookup of a node not in the heap.
	ErrNodeNotFound = errors.New("minheap: node not in heap")

	// ErrEmptyHeap indicates a pop from an empty heap.
	ErrEmptyHeap = errors.New("minheap: heap is empty")

	// ErrNaNKey indicates a NaN priority, which has no place in a total
	// order and is rejected at every entry point.
	ErrNaNKey = errors.New("minheap: key is NaN")

	// ErrKeyNotDecreased indicates a DecreaseKey whose new key is not a
	// strict decrease.
	ErrKeyNotDecreased = errors.New("minheap: new key does not decrease current key")

	// ErrKeyNotIncreased indicates an IncreaseKey whose new key is not a
	// strict increase.
	ErrKeyNotIncreased = errors.New("minheap: new key does not increase current key")
)

// position records where a node currently sits in the heap array and the
// key it was inserted or rekeyed with.
type position struct {
	index int
	key   float64
}

// Heap is a binary minimum heap of uint32 nodes prioritized by float64
// keys, with O(1) membership and key lookup.
type Heap struct {
	node   *dynarray.Array[uint32]    // heap-ordered node IDs
	lookup *hashdict.Dict[position]   // node -> current index and key
}

// NewHeap returns an empty heap.
func NewHeap() *Heap {
	return &Heap{
		node:   dynarray.NewArray[uint32](),
		lookup: hashdict.NewDict[position](),
	}
}

// Len returns the number of nodes in the heap. O(1).
func (h *Heap) Len() int { return h.node.Len() }

// Has reports whether v is in the heap. O(1) expected.
func (h *Heap) Has(v uint32) bool { return h.lookup.Has(v) }

// Key returns the current key of v.
// Returns ErrNodeNotFound if v is not in the heap.
// Complexity: O(1) expected.
func (h *Heap) Key(v uint32) (float64, error) {
	p, err := h.lookup.Get(v)
	if err != nil {
		return 0, ErrNodeNotFound
	}

	return p.key, nil
}

// Min returns the node with the minimum key without removing it.
// Returns ErrEmptyHeap if the heap is empty.
// Complexity: O(1).
func (h *Heap) Min() (uint32, error) {
	if h.node.Len() == 0 {
		return 0, ErrEmptyHeap
	}

	return h.node.At(0), nil
}

// Add inserts v with the given key and restores the heap property by
// sifting up. Returns ErrNodeExists if v is already present, ErrNaNKey if
// key is NaN, or a capacity error from the backing containers; the heap is
// unchanged on failure.
// Complexity: O(log n).
func (h *Heap) Add(v uint32, key float64) error {
	if math.IsNaN(key) {
		return ErrNaNKey
	}
	if h.lookup.Has(v) {
		return ErrNodeExists
	}

	i := h.node.Len()
	if err := h.lookup.Add(v, position{index: i, key: key}); err != nil {
		return err
	}
	if err := h.node.Append(v); err != nil {
		if derr := h.lookup.Delete(v); derr != nil {
			panic(derr)
		}

		return err
	}
	h.siftUp(i)
	h.assertSizes()

	return nil
}

// Pop removes and returns the node with the minimum key: the root is
// replaced by the last array element, which is then sifted down.
// Returns ErrEmptyHeap if the heap is empty.
// Complexity: O(log n).
func (h *Heap) Pop() (uint32, error) {
	n := h.node.Len()
	if n == 0 {
		return 0, ErrEmptyHeap
	}

	root := h.node.At(0)
	if err := h.lookup.Delete(root); err != nil {
		panic(err)
	}
	last := h.node.At(n - 1)
	if err := h.node.DeleteTail(); err != nil {
		panic(err)
	}
	if n > 1 {
		h.node.Set(0, last)
		h.setIndex(last, 0)
		h.siftDown(0)
	}
	h.assertSizes()

	return root, nil
}

// DecreaseKey lowers v's key to newKey and sifts up. The new key must be a
// strict decrease: ErrKeyNotDecreased otherwise. Returns ErrNodeNotFound if
// v is absent and ErrNaNKey if newKey is NaN.
// Complexity: O(log n).
func (h *Heap) DecreaseKey(v uint32, newKey float64) error {
	if math.IsNaN(newKey) {
		return ErrNaNKey
	}
	p, err := h.lookup.Get(v)
	if err != nil {
		return ErrNodeNotFound
	}
	if newKey >= p.key {
		return ErrKeyNotDecreased
	}

	h.setKey(v, p.index, newKey)
	h.siftUp(p.index)

	return nil
}

// IncreaseKey raises v's key to newKey and sifts down. The new key must be
// a strict increase: ErrKeyNotIncreased otherwise. Returns ErrNodeNotFound
// if v is absent and ErrNaNKey if newKey is NaN.
// Complexity: O(log n).
func (h *Heap) IncreaseKey(v uint32, newKey float64) error {
	if math.IsNaN(newKey) {
		return ErrNaNKey
	}
	p, err := h.lookup.Get(v)
	if err != nil {
		return ErrNodeNotFound
	}
	if newKey <= p.key {
		return ErrKeyNotIncreased
	}

	h.setKey(v, p.index, newKey)
	h.siftDown(p.index)

	return nil
}

// keyAt returns the key of the node stored at array index i.
func (h *Heap) keyAt(i int) float64 {
	p, err := h.lookup.Get(h.node.At(i))
	if err != nil {
		panic(err)
	}

	return p.key
}

// setIndex records v's new array index in the lookup dictionary.
func (h *Heap) setIndex(v uint32, i int) {
	p, err := h.lookup.Get(v)
	if err != nil {
		panic(err)
	}
	p.index = i
	if err = h.lookup.Set(v, p); err != nil {
		panic(err)
	}
}

// setKey records v's new key in the lookup dictionary, keeping index i.
func (h *Heap) setKey(v uint32, i int, key float64) {
	if err := h.lookup.Set(v, position{index: i, key: key}); err != nil {
		panic(err)
	}
}

// swap exchanges the nodes at array indices i and j and updates both
// lookup entries.
func (h *Heap) swap(i, j int) {
	vi, vj := h.node.At(i), h.node.At(j)
	h.node.Set(i, vj)
	h.node.Set(j, vi)
	h.setIndex(vi, j)
	h.setIndex(vj, i)
}

// siftUp moves the node at index i toward the root until its parent's key
// is no greater than its own.
func (h *Heap) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h.keyAt(parent) <= h.keyAt(i) {
			break
		}
		h.swap(i, parent)
		i = parent
	}
}

// siftDown moves the node at index i toward the leaves, always descending
// into the smaller-keyed child; ties between equal children resolve to the
// left child.
func (h *Heap) siftDown(i int) {
	n := h.node.Len()
	for {
		left := 2*i + 1
		if left >= n {
			break
		}
		child := left
		if right := left + 1; right < n && h.keyAt(right) < h.keyAt(left) {
			child = right
		}
		if h.keyAt(i) <= h.keyAt(child) {
			break
		}
		h.swap(i, child)
		i = child
	}
}

// assertSizes panics if the heap array and the lookup dictionary disagree
// on the number of nodes. A mismatch is an implementation bug.
func (h *Heap) assertSizes() {
	if h.node.Len() != h.lookup.Len() {
		panic("minheap: heap array and lookup dictionary out of sync")
	}
}
