// Package uhash provides the universal multiply-shift hash family used by
// the hashed containers (hashset, hashdict).
//
// The family is due to Woelfel: for a table of 2^k buckets over b-bit keys,
//
//	h(x) = ((a·x + c) mod 2^b) >> (b - k)
//
// where a is an odd b-bit integer and c is a (b-k)-bit integer, both drawn
// uniformly at random per table instance and redrawn on every resize. The
// modulo reduction is the natural wraparound of b-bit unsigned arithmetic.
//
// With fresh random parameters the expected cost of a lookup in a table held
// below its load-factor threshold is O(1). The guarantee is probabilistic,
// not cryptographic: it defends against unlucky and adversarial key sets in
// expectation only.
//
// Complexity:
//
//   - Hash: O(1) — one multiply, one add, one shift.
//   - NewParams: O(1) — two PRNG draws.
package uhash
