// Package hashset implements a set of unsigned 32-bit integers, hashed with
// the universal multiply-shift family from package uhash and chained into
// dynarray buckets.
//
// The set keeps 2^k buckets and maintains the load-factor invariant
// size/capacity < 3/4: any insertion that would cross the threshold doubles
// the bucket count, draws fresh hash parameters, and rehashes every element.
// Buckets are created lazily on first insertion and destroyed when their
// last element is removed, so an idle bucket costs one nil pointer.
//
// Core methods:
//
//	Add(x) error       // O(1) expected; ErrElementExists if present
//	Delete(x) error    // O(1) expected; ErrElementNotFound if absent
//	Has(x) bool        // O(1) expected
//	Any() (x, ok)      // first element in bucket order
//	Len(), Cap()       // O(1)
//	Iter() *SetIter    // bucket-order cursor over all elements
//
// Iterating assumes a frozen set: SetIter snapshots a mutation counter and
// Next panics if the set has been modified since the iterator was created.
// Sets are not safe for concurrent use.
package hashset
