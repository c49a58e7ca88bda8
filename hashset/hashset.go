// Package hashset: bucketed integer set implementation.
//
// This file declares the Set type, its sentinel errors, and the constructor,
// together with the add/delete/search primitives and the resize procedure.
package hashset

import (
	"errors"

	"github.com/katalvlaran/grava/dynarray"
	"github.com/katalvlaran/grava/uhash"
)

// Sentinel errors for set operations.
var (
	// ErrElementExists indicates an insertion of an element already present.
	ErrElementExists = errors.New("hashset: element already in set")

	// ErrElementNotFound indicates a deletion of an element not present.
	ErrElementNotFound = errors.New("hashset: element not in set")

	// ErrCapacity indicates that growing the set would exceed MaxBuckets.
	// The failed operation has no effect.
	ErrCapacity = errors.New("hashset: maximum number of buckets reached")
)

const (
	// DefaultExponent is the k of the initial 2^k bucket allocation.
	DefaultExponent = 7

	// MaxBuckets is the maximum number of buckets in a set.
	MaxBuckets = 1 << 31

	// bucketCapacity is the initial capacity of a freshly created bucket.
	// Buckets stay short by design; the load-factor threshold keeps the
	// expected chain length below one.
	bucketCapacity = 2
)

// Set is a hashed set of uint32 elements with separate chaining.
type Set struct {
	k       uint32                   // bucket-count exponent: capacity == 2^k
	size    int                      // number of elements
	bucket  []*dynarray.Array[uint32] // nil entries are empty buckets
	params  uhash.Params             // current multiply-shift parameters
	version uint64                   // bumped by every successful mutation
}

// NewSet returns an empty set with the default bucket allocation.
func NewSet() *Set {
	return &Set{
		k:      DefaultExponent,
		bucket: make([]*dynarray.Array[uint32], 1<<DefaultExponent),
		params: uhash.NewParams(DefaultExponent),
	}
}

// Len returns the number of elements in the set. O(1).
func (s *Set) Len() int { return s.size }

// Cap returns the current number of buckets. O(1).
func (s *Set) Cap() int { return len(s.bucket) }

// locate returns the bucket index of x and, if x is present, its position
// within the bucket. j is -1 when x is absent.
func (s *Set) locate(x uint32) (i uint32, j int) {
	i = s.params.Hash(x)
	if s.size == 0 || s.bucket[i] == nil {
		return i, -1
	}
	b := s.bucket[i]
	for idx := 0; idx < b.Len(); idx++ {
		if b.At(idx) == x {
			return i, idx
		}
	}

	return i, -1
}

// Has reports whether x is in the set.
// Complexity: O(1) expected.
func (s *Set) Has(x uint32) bool {
	_, j := s.locate(x)

	return j >= 0
}

// Add inserts x into the set. Returns ErrElementExists if x is already
// present, or ErrCapacity if the insertion would force a resize past
// MaxBuckets; in both cases the set is unchanged.
// Complexity: O(1) expected, amortized over resizes.
func (s *Set) Add(x uint32) error {
	i, j := s.locate(x)
	if j >= 0 {
		return ErrElementExists
	}

	createdBucket := false
	if s.bucket[i] == nil {
		b, err := dynarray.NewArrayCap[uint32](bucketCapacity)
		if err != nil {
			panic(err) // bucketCapacity is always valid
		}
		s.bucket[i] = b
		createdBucket = true
	}
	if err := s.bucket[i].Append(x); err != nil {
		if createdBucket {
			s.bucket[i] = nil
		}

		return err
	}

	// Keep the load factor below 3/4. With 2^k buckets the threshold is
	// size/2^k < 3/4, i.e. size < 3·2^(k-2).
	if s.size+1 >= 3<<(s.k-2) {
		if err := s.resize(); err != nil {
			// Roll back the just-appended element so the set is exactly
			// as it was before the call.
			if createdBucket {
				s.bucket[i] = nil
			} else if derr := s.bucket[i].DeleteTail(); derr != nil {
				panic(derr)
			}

			return err
		}
	}
	s.size++
	s.version++

	return nil
}

// Delete removes x from the set, destroying its bucket if it becomes empty.
// Returns ErrElementNotFound if x is absent.
// Complexity: O(1) expected.
func (s *Set) Delete(x uint32) error {
	i, j := s.locate(x)
	if j < 0 {
		return ErrElementNotFound
	}

	b := s.bucket[i]
	if err := b.Delete(j); err != nil {
		panic(err)
	}
	if b.Len() == 0 {
		s.bucket[i] = nil
	}
	s.size--
	s.version++

	return nil
}

// Any returns an element of the set, chosen as the first element in bucket
// order, or ok == false if the set is empty. The choice is deterministic for
// a fixed set state but not random.
func (s *Set) Any() (uint32, bool) {
	if s.size == 0 {
		return 0, false
	}
	for _, b := range s.bucket {
		if b != nil {
			return b.At(0), true
		}
	}
	panic("hashset: size positive but all buckets empty")
}

// resize doubles the bucket count, draws fresh hash parameters, and rehashes
// every element. Returns ErrCapacity if the new bucket count would exceed
// MaxBuckets; the set is untouched on failure.
func (s *Set) resize() error {
	newK := s.k + 1
	if 1<<newK > MaxBuckets || newK > uhash.KeyBits {
		return ErrCapacity
	}

	params := uhash.NewParams(newK)
	fresh := make([]*dynarray.Array[uint32], 1<<newK)
	for _, b := range s.bucket {
		if b == nil {
			continue
		}
		for j := 0; j < b.Len(); j++ {
			x := b.At(j)
			idx := params.Hash(x)
			if fresh[idx] == nil {
				nb, err := dynarray.NewArrayCap[uint32](bucketCapacity)
				if err != nil {
					panic(err)
				}
				fresh[idx] = nb
			}
			if err := fresh[idx].Append(x); err != nil {
				return err
			}
		}
	}

	s.k = newK
	s.bucket = fresh
	s.params = params

	return nil
}
