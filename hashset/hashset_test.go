package hashset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAddHasDelete_RoundTrip exercises the basic membership contract.
func TestAddHasDelete_RoundTrip(t *testing.T) {
	s := NewSet()

	require.NoError(t, s.Add(42))
	assert.True(t, s.Has(42))
	assert.Equal(t, 1, s.Len())

	require.NoError(t, s.Delete(42))
	assert.False(t, s.Has(42))
	assert.Equal(t, 0, s.Len())
}

// TestAdd_Duplicate verifies that a second insertion of the same element
// fails and leaves the set unchanged.
func TestAdd_Duplicate(t *testing.T) {
	s := NewSet()
	require.NoError(t, s.Add(7))

	err := s.Add(7)
	assert.ErrorIs(t, err, ErrElementExists)
	assert.Equal(t, 1, s.Len())
}

// TestDelete_Absent verifies that deleting a missing element fails.
func TestDelete_Absent(t *testing.T) {
	s := NewSet()

	err := s.Delete(99)
	assert.ErrorIs(t, err, ErrElementNotFound)
}

// TestResize_PreservesMembership inserts enough elements to force several
// doublings and checks that every element survives the rehashes.
func TestResize_PreservesMembership(t *testing.T) {
	s := NewSet()
	const n = 1000

	for x := uint32(0); x < n; x++ {
		require.NoError(t, s.Add(x*2654435761), "element %d", x)
	}
	assert.Equal(t, n, s.Len())
	assert.Greater(t, s.Cap(), 1<<DefaultExponent)

	for x := uint32(0); x < n; x++ {
		assert.True(t, s.Has(x*2654435761), "element %d", x)
	}
	assert.False(t, s.Has(1)) // 1 is not a multiple of the stride
}

// TestLoadFactor_BelowThreshold checks that size/capacity stays below 3/4
// after every insertion.
func TestLoadFactor_BelowThreshold(t *testing.T) {
	s := NewSet()

	for x := uint32(0); x < 500; x++ {
		require.NoError(t, s.Add(x))
		if 4*s.Len() >= 3*s.Cap() {
			t.Fatalf("load factor %d/%d reached 3/4 after %d insertions",
				s.Len(), s.Cap(), x+1)
		}
	}
}

// TestAny returns some member, and nothing from an empty set.
func TestAny(t *testing.T) {
	s := NewSet()

	_, ok := s.Any()
	assert.False(t, ok)

	require.NoError(t, s.Add(3))
	require.NoError(t, s.Add(11))
	x, ok := s.Any()
	require.True(t, ok)
	assert.True(t, x == 3 || x == 11)
}

// TestIter_VisitsEveryElementOnce walks the whole set through an iterator.
func TestIter_VisitsEveryElementOnce(t *testing.T) {
	s := NewSet()
	want := map[uint32]bool{5: true, 17: true, 901: true, 65536: true}
	for x := range want {
		require.NoError(t, s.Add(x))
	}

	seen := make(map[uint32]bool, len(want))
	it := s.Iter()
	for {
		x, ok := it.Next()
		if !ok {
			break
		}
		assert.False(t, seen[x], "element %d seen twice", x)
		seen[x] = true
	}
	assert.Equal(t, want, seen)
}

// TestIter_PanicsAfterMutation verifies the invalidation contract.
func TestIter_PanicsAfterMutation(t *testing.T) {
	s := NewSet()
	require.NoError(t, s.Add(1))
	require.NoError(t, s.Add(2))

	it := s.Iter()
	_, ok := it.Next()
	require.True(t, ok)

	require.NoError(t, s.Delete(1))
	assert.Panics(t, func() { it.Next() })
}

func BenchmarkAdd(b *testing.B) {
	s := NewSet()
	for i := 0; i < b.N; i++ {
		_ = s.Add(uint32(i))
	}
}

func BenchmarkHas(b *testing.B) {
	s := NewSet()
	for x := uint32(0); x < 1<<16; x++ {
		_ = s.Add(x)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Has(uint32(i) & 0x1ffff)
	}
}
