// Package dynarray implements the contiguous growable array that backs the
// hashed containers and the stack.
//
// An Array holds values of any comparable type in insertion order. Appending
// doubles the capacity when full, so a long run of appends costs O(1)
// amortized per element. Capacity is always a power of two and never exceeds
// MaxElements; an append that would grow past the ceiling fails with
// ErrCapacity and leaves the array unchanged.
//
// Core methods:
//
//	Append(v) error       // O(1) amortized
//	Delete(i) error       // O(n): shift the tail down by one
//	DeleteTail() error    // O(1)
//	Has(v) bool           // O(n): linear scan by value equality
//	At(i) T, Set(i, v)    // O(1)
//	Len(), Cap()          // O(1)
//
// Arrays are not safe for concurrent use.
package dynarray
