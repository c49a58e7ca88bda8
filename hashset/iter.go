package hashset

// SetIter walks the elements of a Set in bucket order. The iterator is
// invalidated by any mutation of the set; calling Next after a mutation
// panics.
type SetIter struct {
	s       *Set
	version uint64
	i       int // current bucket
	j       int // next position in bucket i
}

// Iter returns an iterator over the set's elements. The traversal order is
// unspecified but stable for a fixed set state.
func (s *Set) Iter() *SetIter {
	return &SetIter{s: s, version: s.version}
}

// Next returns the next element of the set, or ok == false when the
// traversal is exhausted. Panics if the set was mutated since the iterator
// was created.
func (it *SetIter) Next() (uint32, bool) {
	if it.version != it.s.version {
		panic("hashset: set mutated during iteration")
	}
	for it.i < len(it.s.bucket) {
		b := it.s.bucket[it.i]
		if b != nil && it.j < b.Len() {
			x := b.At(it.j)
			it.j++

			return x, true
		}
		it.i++
		it.j = 0
	}

	return 0, false
}
