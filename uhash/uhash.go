package uhash

import "math/rand/v2"

// KeyBits is the bit width b of the hashed integer domain.
const KeyBits = 32

// Params holds one member of the multiply-shift family for a table of
// 2^k buckets. The zero value is not usable; draw with NewParams.
type Params struct {
	a uint32 // odd multiplier, uniform over [1, 2^b - 1]
	c uint32 // additive term, uniform over [0, 2^(b-k) - 1]
	d uint32 // shift amount b - k
}

// NewParams draws fresh random parameters for a table of 2^k buckets.
// k must satisfy 0 < k <= KeyBits.
func NewParams(k uint32) Params {
	if k == 0 || k > KeyBits {
		panic("uhash: bucket exponent out of range")
	}
	d := uint32(KeyBits) - k

	// a is an odd b-bit integer chosen uniformly at random.
	a := rand.Uint32() | 1

	// c is chosen uniformly from [0, 2^d - 1]. When d == 0 the range is
	// the single value 0.
	var c uint32
	if d > 0 {
		c = rand.Uint32() >> k
	}

	return Params{a: a, c: c, d: d}
}

// Hash maps x to a bucket index in [0, 2^k).
//
// The product a·x + c wraps around 2^b by construction of 32-bit unsigned
// arithmetic, which is exactly the mod-2^b reduction the family requires.
func (p Params) Hash(x uint32) uint32 {
	return (p.a*x + p.c) >> p.d
}
