package minheap

import (
	"math"
	"math/rand/v2"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPop_ReturnsMinimum pops three nodes inserted out of key order.
func TestPop_ReturnsMinimum(t *testing.T) {
	h := NewHeap()
	require.NoError(t, h.Add(1, 5.0)) // A
	require.NoError(t, h.Add(2, 2.0)) // B
	require.NoError(t, h.Add(3, 8.0)) // C

	order := make([]uint32, 0, 3)
	for h.Len() > 0 {
		v, err := h.Pop()
		require.NoError(t, err)
		order = append(order, v)
	}
	assert.Equal(t, []uint32{2, 1, 3}, order)
}

// TestAdd_Duplicate verifies that a node cannot be inserted twice.
func TestAdd_Duplicate(t *testing.T) {
	h := NewHeap()
	require.NoError(t, h.Add(9, 1.0))

	err := h.Add(9, 2.0)
	assert.ErrorIs(t, err, ErrNodeExists)
	assert.Equal(t, 1, h.Len())
}

// TestAdd_NaN rejects NaN keys at every entry point.
func TestAdd_NaN(t *testing.T) {
	h := NewHeap()

	assert.ErrorIs(t, h.Add(1, math.NaN()), ErrNaNKey)

	require.NoError(t, h.Add(1, 4.0))
	assert.ErrorIs(t, h.DecreaseKey(1, math.NaN()), ErrNaNKey)
	assert.ErrorIs(t, h.IncreaseKey(1, math.NaN()), ErrNaNKey)
}

// TestAdd_InfiniteKeys allows ±Inf as ordinary keys.
func TestAdd_InfiniteKeys(t *testing.T) {
	h := NewHeap()
	require.NoError(t, h.Add(1, math.Inf(1)))
	require.NoError(t, h.Add(2, math.Inf(-1)))
	require.NoError(t, h.Add(3, 0.0))

	v, err := h.Pop()
	require.NoError(t, err)
	assert.Equal(t, uint32(2), v)
}

// TestPop_Empty fails on an empty heap.
func TestPop_Empty(t *testing.T) {
	h := NewHeap()

	_, err := h.Pop()
	assert.ErrorIs(t, err, ErrEmptyHeap)
}

// TestHasKey exercises the O(1) lookups.
func TestHasKey(t *testing.T) {
	h := NewHeap()
	require.NoError(t, h.Add(5, 1.5))

	assert.True(t, h.Has(5))
	assert.False(t, h.Has(6))

	k, err := h.Key(5)
	require.NoError(t, err)
	assert.Equal(t, 1.5, k)

	_, err = h.Key(6)
	assert.ErrorIs(t, err, ErrNodeNotFound)
}

// TestDecreaseKey verifies the strict-decrease precondition and that pop
// order reflects the updated key.
func TestDecreaseKey(t *testing.T) {
	h := NewHeap()
	require.NoError(t, h.Add(1, 5.0))
	require.NoError(t, h.Add(2, 2.0))
	require.NoError(t, h.Add(3, 8.0))

	assert.ErrorIs(t, h.DecreaseKey(4, 1.0), ErrNodeNotFound)
	assert.ErrorIs(t, h.DecreaseKey(3, 8.0), ErrKeyNotDecreased)
	assert.ErrorIs(t, h.DecreaseKey(3, 9.0), ErrKeyNotDecreased)

	require.NoError(t, h.DecreaseKey(3, 1.0))
	v, err := h.Pop()
	require.NoError(t, err)
	assert.Equal(t, uint32(3), v)
}

// TestIncreaseKey verifies the strict-increase precondition and that pop
// order reflects the updated key.
func TestIncreaseKey(t *testing.T) {
	h := NewHeap()
	require.NoError(t, h.Add(1, 5.0))
	require.NoError(t, h.Add(2, 2.0))

	assert.ErrorIs(t, h.IncreaseKey(4, 9.0), ErrNodeNotFound)
	assert.ErrorIs(t, h.IncreaseKey(2, 2.0), ErrKeyNotIncreased)
	assert.ErrorIs(t, h.IncreaseKey(2, 1.0), ErrKeyNotIncreased)

	require.NoError(t, h.IncreaseKey(2, 7.0))
	v, err := h.Pop()
	require.NoError(t, err)
	assert.Equal(t, uint32(1), v)
}

// TestPopOrder_Random inserts many nodes with random keys and checks that
// pops come out in nondecreasing key order.
func TestPopOrder_Random(t *testing.T) {
	h := NewHeap()
	const n = 512
	keys := make([]float64, n)
	for v := uint32(0); v < n; v++ {
		keys[v] = rand.Float64() * 100
		require.NoError(t, h.Add(v, keys[v]))
	}

	sorted := append([]float64(nil), keys...)
	sort.Float64s(sorted)
	for i := 0; i < n; i++ {
		v, err := h.Pop()
		require.NoError(t, err)
		assert.Equal(t, sorted[i], keys[v], "pop %d", i)
	}
	assert.Equal(t, 0, h.Len())
}

func BenchmarkAddPop(b *testing.B) {
	h := NewHeap()
	for i := 0; i < b.N; i++ {
		_ = h.Add(uint32(i), float64(i%997))
	}
	for h.Len() > 0 {
		_, _ = h.Pop()
	}
}
