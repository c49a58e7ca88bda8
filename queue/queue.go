// Package queue: circular-buffer queue implementation.
package queue

import "errors"

// Sentinel errors for queue operations.
var (
	// ErrBadCapacity indicates an initial capacity that is not a power of
	// two greater than 1, or exceeds MaxElements.
	ErrBadCapacity = errors.New("queue: capacity must be a power of two in [2, 2^31]")

	// ErrCapacity indicates that growing the queue would exceed
	// MaxElements. The failed operation has no effect.
	ErrCapacity = errors.New("queue: maximum number of elements reached")

	// ErrEmptyQueue indicates a pop or peek on an empty queue.
	ErrEmptyQueue = errors.New("queue: queue is empty")
)

const (
	// MaxElements is the maximum capacity of a queue.
	MaxElements = 1 << 31

	// DefaultCapacity is the initial capacity used by NewQueue.
	DefaultCapacity = 1 << 7
)

// Queue is a FIFO queue of T elements over a circular buffer.
type Queue[T any] struct {
	cell []T
	i    int // head: index of the oldest element
	j    int // tail: index of the newest element
	size int
}

// NewQueue returns an empty queue with the default capacity.
func NewQueue[T any]() *Queue[T] {
	q, err := NewQueueCap[T](DefaultCapacity)
	if err != nil {
		panic(err) // DefaultCapacity is always valid
	}

	return q
}

// NewQueueCap returns an empty queue with the given initial capacity,
// which must be a power of two greater than 1 and at most MaxElements.
func NewQueueCap[T any](capacity int) (*Queue[T], error) {
	if capacity < 2 || capacity > MaxElements || capacity&(capacity-1) != 0 {
		return nil, ErrBadCapacity
	}

	return &Queue[T]{cell: make([]T, capacity), j: -1}, nil
}

// Len returns the number of elements in the queue. O(1).
func (q *Queue[T]) Len() int { return q.size }

// Cap returns the current capacity of the queue. O(1).
func (q *Queue[T]) Cap() int { return len(q.cell) }

// Append adds v at the tail of the queue, doubling the buffer when full.
// Returns ErrCapacity if the queue already holds MaxElements elements; the
// queue is unchanged on failure.
// Complexity: O(1) amortized.
func (q *Queue[T]) Append(v T) error {
	if q.size == len(q.cell) {
		if err := q.grow(); err != nil {
			return err
		}
	}

	q.j = (q.j + 1) % len(q.cell)
	q.cell[q.j] = v
	q.size++

	return nil
}

// Pop removes and returns the element at the head of the queue.
// Returns ErrEmptyQueue if the queue is empty.
// Complexity: O(1).
func (q *Queue[T]) Pop() (T, error) {
	if q.size == 0 {
		var zero T

		return zero, ErrEmptyQueue
	}

	v := q.cell[q.i]
	var zero T
	q.cell[q.i] = zero
	q.i = (q.i + 1) % len(q.cell)
	q.size--

	// Keep a lone survivor at index 0 so the ring never wraps around a
	// single element and the next growth copy is contiguous.
	if q.size == 1 && q.i != 0 {
		q.cell[0] = q.cell[q.i]
		q.cell[q.i] = zero
		q.i = 0
		q.j = 0
	}
	if q.size == 0 {
		q.i = 0
		q.j = -1
	}

	return v, nil
}

// Peek returns the element at the head of the queue without removing it.
// Returns ErrEmptyQueue if the queue is empty.
// Complexity: O(1).
func (q *Queue[T]) Peek() (T, error) {
	if q.size == 0 {
		var zero T

		return zero, ErrEmptyQueue
	}

	return q.cell[q.i], nil
}

// grow doubles the buffer and re-linearizes the circular window into it:
// two segment copies if the window wraps past the end of the buffer, one
// contiguous copy otherwise. Head resets to 0 and tail to size-1.
func (q *Queue[T]) grow() error {
	if len(q.cell) >= MaxElements {
		return ErrCapacity
	}

	fresh := make([]T, 2*len(q.cell))
	if q.i <= q.j {
		copy(fresh, q.cell[q.i:q.j+1])
	} else {
		n := copy(fresh, q.cell[q.i:])
		copy(fresh[n:], q.cell[:q.j+1])
	}
	q.cell = fresh
	q.i = 0
	q.j = q.size - 1

	return nil
}
