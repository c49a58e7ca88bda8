// Package dynarray: growable array implementation.
//
// This file declares the Array type, its sentinel errors, and the NewArray
// constructor, together with the append/delete/search primitives.
package dynarray

import "errors"

// Sentinel errors for array operations.
var (
	// ErrBadCapacity indicates an initial capacity that is not a power of
	// two greater than one, or exceeds MaxElements.
	ErrBadCapacity = errors.New("dynarray: capacity must be a power of two in [2, MaxElements]")

	// ErrCapacity indicates that growing the array would exceed MaxElements.
	// The failed operation has no effect.
	ErrCapacity = errors.New("dynarray: maximum number of elements reached")

	// ErrIndexOutOfRange indicates a deletion index at or past Len.
	ErrIndexOutOfRange = errors.New("dynarray: index out of range")

	// ErrEmptyArray indicates a deletion from an array with no elements.
	ErrEmptyArray = errors.New("dynarray: array is empty")
)

const (
	// MaxElements is the maximum number of elements an Array can hold.
	MaxElements = 1 << 31

	// DefaultCapacity is the initial capacity used by NewArray.
	DefaultCapacity = 1 << 7
)

// Array is a contiguous resizable vector with power-of-two capacity.
type Array[T comparable] struct {
	cell []T // backing storage; len(cell) is the capacity
	size int // number of live elements, a prefix of cell
}

// powerOfTwo reports whether n > 1 is a power of two.
func powerOfTwo(n int) bool {
	return n > 1 && n&(n-1) == 0
}

// NewArray returns an empty array with DefaultCapacity.
func NewArray[T comparable]() *Array[T] {
	a, err := NewArrayCap[T](DefaultCapacity)
	if err != nil {
		panic(err) // DefaultCapacity is always valid
	}

	return a
}

// NewArrayCap returns an empty array with the given initial capacity.
// The capacity must be a power of two greater than one and at most
// MaxElements; otherwise NewArrayCap returns ErrBadCapacity.
func NewArrayCap[T comparable](capacity int) (*Array[T], error) {
	if !powerOfTwo(capacity) || capacity > MaxElements {
		return nil, ErrBadCapacity
	}

	return &Array[T]{cell: make([]T, capacity)}, nil
}

// Len returns the number of elements in the array. O(1).
func (a *Array[T]) Len() int { return a.size }

// Cap returns the current capacity of the array. O(1).
func (a *Array[T]) Cap() int { return len(a.cell) }

// At returns the element at index i. Panics if i is out of range, as would
// any slice access; bounds are the caller's invariant.
func (a *Array[T]) At(i int) T {
	if i < 0 || i >= a.size {
		panic(ErrIndexOutOfRange)
	}

	return a.cell[i]
}

// Set replaces the element at index i. Panics if i is out of range.
func (a *Array[T]) Set(i int, v T) {
	if i < 0 || i >= a.size {
		panic(ErrIndexOutOfRange)
	}
	a.cell[i] = v
}

// Append adds v after the last element, doubling the capacity first if the
// array is full. Returns ErrCapacity, with the array unchanged, if doubling
// would exceed MaxElements.
// Complexity: O(1) amortized.
func (a *Array[T]) Append(v T) error {
	if a.size == len(a.cell) {
		if len(a.cell) >= MaxElements {
			return ErrCapacity
		}
		grown := make([]T, len(a.cell)<<1)
		copy(grown, a.cell)
		a.cell = grown
	}
	a.cell[a.size] = v
	a.size++

	return nil
}

// Delete removes the element at index i, shifting every later element down
// by one position. Returns ErrEmptyArray or ErrIndexOutOfRange as
// appropriate.
// Complexity: O(n).
func (a *Array[T]) Delete(i int) error {
	if a.size == 0 {
		return ErrEmptyArray
	}
	if i < 0 || i >= a.size {
		return ErrIndexOutOfRange
	}
	copy(a.cell[i:], a.cell[i+1:a.size])
	a.size--
	var zero T
	a.cell[a.size] = zero // release the vacated slot

	return nil
}

// DeleteTail removes the last element. Returns ErrEmptyArray if there is
// none.
// Complexity: O(1).
func (a *Array[T]) DeleteTail() error {
	if a.size == 0 {
		return ErrEmptyArray
	}
	a.size--
	var zero T
	a.cell[a.size] = zero

	return nil
}

// Has reports whether v is in the array, comparing by value equality.
// Complexity: O(n).
func (a *Array[T]) Has(v T) bool {
	for i := 0; i < a.size; i++ {
		if a.cell[i] == v {
			return true
		}
	}

	return false
}
