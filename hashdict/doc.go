// Package hashdict provides a hashed dictionary from uint32 keys to values
// of an arbitrary type.
//
// Dict shares its hashing scheme with package hashset: a multiply-shift
// function from package uhash spreads keys over 2^k buckets, the load factor
// size/capacity is kept strictly below 3/4, and every doubling rehash draws
// fresh hash parameters. Buckets are created lazily on first insertion and
// destroyed when their last entry is removed.
//
// The zero exponent dictionary is produced by NewDict; NewDictCap accepts an
// explicit initial bucket exponent for callers that know their size up
// front.
//
// A DictIter walks all entries in bucket order. Iterators snapshot the
// dictionary's mutation counter at creation and panic on Next if the
// dictionary has been mutated since, so a stale traversal can never return
// rehashed or deleted entries.
//
// Dict is not safe for concurrent use.
package hashdict
