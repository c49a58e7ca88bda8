// Package hashdict: bucketed dictionary implementation.
//
// This file declares the Dict type, its sentinel errors, and the
// constructors, together with the insert/update/delete/lookup primitives
// and the resize procedure.
package hashdict

import (
	"errors"

	"github.com/katalvlaran/grava/uhash"
)

// Sentinel errors for dictionary operations.
var (
	// ErrKeyExists indicates an insertion under a key already present.
	ErrKeyExists = errors.New("hashdict: key already in dictionary")

	// ErrKeyNotFound indicates an access to a key not present.
	ErrKeyNotFound = errors.New("hashdict: key not in dictionary")

	// ErrBadExponent indicates an initial bucket exponent outside [1, 31].
	ErrBadExponent = errors.New("hashdict: bucket exponent must be in [1, 31]")

	// ErrCapacity indicates that growing the dictionary would exceed
	// MaxBuckets. The failed operation has no effect.
	ErrCapacity = errors.New("hashdict: maximum number of buckets reached")
)

const (
	// DefaultExponent is the k of the initial 2^k bucket allocation.
	DefaultExponent = 7

	// MaxBuckets is the maximum number of buckets in a dictionary.
	MaxBuckets = 1 << 31
)

// entry is a single key/value pair stored in a bucket.
type entry[V any] struct {
	key   uint32
	value V
}

// Dict is a hashed dictionary from uint32 keys to V values with separate
// chaining.
type Dict[V any] struct {
	k       uint32        // bucket-count exponent: capacity == 2^k
	size    int           // number of entries
	bucket  [][]entry[V]  // nil entries are empty buckets
	params  uhash.Params  // current multiply-shift parameters
	version uint64        // bumped by every successful mutation
}

// NewDict returns an empty dictionary with the default bucket allocation.
func NewDict[V any]() *Dict[V] {
	d, err := NewDictCap[V](DefaultExponent)
	if err != nil {
		panic(err) // DefaultExponent is always valid
	}

	return d
}

// NewDictCap returns an empty dictionary with 2^exponent buckets.
// Returns ErrBadExponent unless 1 <= exponent <= 31.
func NewDictCap[V any](exponent uint32) (*Dict[V], error) {
	if exponent < 1 || exponent > uhash.KeyBits-1 {
		return nil, ErrBadExponent
	}

	return &Dict[V]{
		k:      exponent,
		bucket: make([][]entry[V], 1<<exponent),
		params: uhash.NewParams(exponent),
	}, nil
}

// Len returns the number of entries in the dictionary. O(1).
func (d *Dict[V]) Len() int { return d.size }

// Cap returns the current number of buckets. O(1).
func (d *Dict[V]) Cap() int { return len(d.bucket) }

// locate returns the bucket index of key and, if key is present, its
// position within the bucket. j is -1 when key is absent.
func (d *Dict[V]) locate(key uint32) (i uint32, j int) {
	i = d.params.Hash(key)
	for idx, e := range d.bucket[i] {
		if e.key == key {
			return i, idx
		}
	}

	return i, -1
}

// Has reports whether key is in the dictionary.
// Complexity: O(1) expected.
func (d *Dict[V]) Has(key uint32) bool {
	_, j := d.locate(key)

	return j >= 0
}

// Get returns the value stored under key.
// Returns ErrKeyNotFound if key is absent.
// Complexity: O(1) expected.
func (d *Dict[V]) Get(key uint32) (V, error) {
	i, j := d.locate(key)
	if j < 0 {
		var zero V

		return zero, ErrKeyNotFound
	}

	return d.bucket[i][j].value, nil
}

// Add inserts value under key. Returns ErrKeyExists if key is already
// present, or ErrCapacity if the insertion would force a resize past
// MaxBuckets; in both cases the dictionary is unchanged.
// Complexity: O(1) expected, amortized over resizes.
func (d *Dict[V]) Add(key uint32, value V) error {
	i, j := d.locate(key)
	if j >= 0 {
		return ErrKeyExists
	}

	d.bucket[i] = append(d.bucket[i], entry[V]{key: key, value: value})

	// Keep the load factor below 3/4.
	if d.size+1 >= 3<<(d.k-2) {
		if err := d.resize(); err != nil {
			b := d.bucket[i]
			if len(b) == 1 {
				d.bucket[i] = nil
			} else {
				d.bucket[i] = b[:len(b)-1]
			}

			return err
		}
	}
	d.size++
	d.version++

	return nil
}

// Set stores value under key, overwriting any previous value. Unlike Add it
// never fails on a present key; the capacity contract is the same.
// Complexity: O(1) expected, amortized over resizes.
func (d *Dict[V]) Set(key uint32, value V) error {
	i, j := d.locate(key)
	if j >= 0 {
		d.bucket[i][j].value = value
		d.version++

		return nil
	}

	return d.Add(key, value)
}

// Delete removes key and its value, destroying the bucket if it becomes
// empty. Returns ErrKeyNotFound if key is absent.
// Complexity: O(1) expected.
func (d *Dict[V]) Delete(key uint32) error {
	i, j := d.locate(key)
	if j < 0 {
		return ErrKeyNotFound
	}

	b := d.bucket[i]
	copy(b[j:], b[j+1:])
	b[len(b)-1] = entry[V]{}
	if len(b) == 1 {
		d.bucket[i] = nil
	} else {
		d.bucket[i] = b[:len(b)-1]
	}
	d.size--
	d.version++

	return nil
}

// resize doubles the bucket count, draws fresh hash parameters, and rehashes
// every entry. Returns ErrCapacity if the new bucket count would exceed
// MaxBuckets; the dictionary is untouched on failure.
func (d *Dict[V]) resize() error {
	newK := d.k + 1
	if 1<<newK > MaxBuckets || newK > uhash.KeyBits {
		return ErrCapacity
	}

	params := uhash.NewParams(newK)
	fresh := make([][]entry[V], 1<<newK)
	for _, b := range d.bucket {
		for _, e := range b {
			idx := params.Hash(e.key)
			fresh[idx] = append(fresh[idx], e)
		}
	}

	d.k = newK
	d.bucket = fresh
	d.params = params

	return nil
}
