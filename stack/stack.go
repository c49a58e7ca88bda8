// Package stack: LIFO stack implementation over dynarray.
package stack

import (
	"errors"

	"github.com/katalvlaran/grava/dynarray"
)

// ErrEmptyStack indicates a pop or peek on an empty stack.
var ErrEmptyStack = errors.New("stack: stack is empty")

// Stack is a LIFO stack of T elements.
type Stack[T comparable] struct {
	cell *dynarray.Array[T]
}

// NewStack returns an empty stack with the array's default capacity.
func NewStack[T comparable]() *Stack[T] {
	return &Stack[T]{cell: dynarray.NewArray[T]()}
}

// NewStackCap returns an empty stack with the given initial capacity,
// which must be a power of two greater than 1.
func NewStackCap[T comparable](capacity int) (*Stack[T], error) {
	cell, err := dynarray.NewArrayCap[T](capacity)
	if err != nil {
		return nil, err
	}

	return &Stack[T]{cell: cell}, nil
}

// Len returns the number of elements on the stack. O(1).
func (s *Stack[T]) Len() int { return s.cell.Len() }

// Push places v on top of the stack.
// Complexity: O(1) amortized.
func (s *Stack[T]) Push(v T) error {
	return s.cell.Append(v)
}

// Pop removes and returns the element on top of the stack.
// Returns ErrEmptyStack if the stack is empty.
// Complexity: O(1).
func (s *Stack[T]) Pop() (T, error) {
	n := s.cell.Len()
	if n == 0 {
		var zero T

		return zero, ErrEmptyStack
	}

	v := s.cell.At(n - 1)
	if err := s.cell.DeleteTail(); err != nil {
		panic(err)
	}

	return v, nil
}

// Peek returns the element on top of the stack without removing it.
// Returns ErrEmptyStack if the stack is empty.
// Complexity: O(1).
func (s *Stack[T]) Peek() (T, error) {
	n := s.cell.Len()
	if n == 0 {
		var zero T

		return zero, ErrEmptyStack
	}

	return s.cell.At(n - 1), nil
}
