// Package minheap provides an array-backed binary minimum heap over
// (node, key) pairs, where nodes are uint32 identifiers and keys are
// float64 priorities.
//
// Alongside the heap array the Heap maintains a dictionary mapping every
// node to its current array index and key, so membership tests and key
// reads are O(1) and DecreaseKey/IncreaseKey can locate a node without
// scanning. The invariant heap.Len() == lookup size holds after every
// operation; its violation is an implementation bug and panics.
//
// Operations and their complexity:
//
//	Add(v, key)          O(log n) — fails on a duplicate node or NaN key
//	Pop()                O(log n) — returns the node with minimum key
//	DecreaseKey(v, key)  O(log n) — requires a strict decrease
//	IncreaseKey(v, key)  O(log n) — requires a strict increase
//	Has(v), Key(v)       O(1)
//
// Keys are compared with the ordinary float64 total order on non-NaN
// values; ±Inf are valid keys, NaN is rejected at every entry point
// because it would break the heap property silently.
//
// When sifting down, ties between equal left and right child keys resolve
// to the left child, so pop order is deterministic for a fixed insertion
// sequence.
//
// Heap is not safe for concurrent use.
package minheap
