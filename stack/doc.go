// Package stack provides a growable LIFO stack.
//
// Stack is a thin wrapper over dynarray.Array: Push appends, Pop removes
// the tail, Peek reads it. All three are O(1) (amortized for Push), and
// the array's capacity contract carries over unchanged: the initial
// capacity must be a power of two greater than 1, growth doubles, and
// exceeding the element ceiling fails with the array's capacity error
// while leaving the stack unchanged.
//
// Stack is not safe for concurrent use.
package stack
