// Package queue provides a growable FIFO queue backed by a circular
// buffer.
//
// Elements live in a ring: head i and tail j chase each other around a
// power-of-two buffer, so Append and Pop are O(1) with no shifting. When
// the ring fills up, Append doubles the buffer and re-linearizes the
// window — two segment copies if the ring has wrapped, one contiguous copy
// otherwise — resetting head to 0 and tail to size-1. When Pop leaves a
// single element behind, that element is recentered to index 0 so the next
// growth is always a contiguous copy.
//
// Construction takes an initial capacity that must be a power of two
// greater than 1; growing past MaxElements fails with ErrCapacity and
// leaves the queue unchanged.
//
// Queue is not safe for concurrent use.
package queue
