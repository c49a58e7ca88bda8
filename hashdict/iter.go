package hashdict

// DictIter walks the entries of a Dict in bucket order. The iterator is
// invalidated by any mutation of the dictionary; calling Next after a
// mutation panics.
type DictIter[V any] struct {
	d       *Dict[V]
	version uint64
	i       int // current bucket
	j       int // next position in bucket i
}

// Iter returns an iterator over the dictionary's entries. The traversal
// order is unspecified but stable for a fixed dictionary state.
func (d *Dict[V]) Iter() *DictIter[V] {
	return &DictIter[V]{d: d, version: d.version}
}

// Next returns the next key/value pair, or ok == false when the traversal is
// exhausted. Panics if the dictionary was mutated since the iterator was
// created.
func (it *DictIter[V]) Next() (key uint32, value V, ok bool) {
	if it.version != it.d.version {
		panic("hashdict: dictionary mutated during iteration")
	}
	for it.i < len(it.d.bucket) {
		b := it.d.bucket[it.i]
		if it.j < len(b) {
			e := b[it.j]
			it.j++

			return e.key, e.value, true
		}
		it.i++
		it.j = 0
	}
	var zero V

	return 0, zero, false
}
