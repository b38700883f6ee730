package roaring

// Iterator walks a container's elements in ascending order. It is
// cloneable; mutating the underlying container through an iterator is not
// supported and reports ErrIteratorMutation (spec.md section 4.6).
type Iterator struct {
	c   *container
	pos int // index into array, or bit position for bitmap, or (run,offset) encoded below
	run int
	off int
}

func (c *container) iterator() *Iterator {
	return &Iterator{c: c, pos: -1}
}

// next returns the next element in ascending order, or ok=false at the
// end of the container.
func (it *Iterator) next() (uint16, bool) {
	switch {
	case it.c.isArray():
		it.pos++
		if it.pos >= len(it.c.array) {
			return 0, false
		}
		return it.c.array[it.pos], true
	case it.c.isRun():
		rc := it.c.runs
		for it.run < rc.nbrruns {
			l := int(rc.getLength(it.run))
			if it.off > l {
				it.run++
				it.off = 0
				continue
			}
			v := rc.getValue(it.run) + uint16(it.off)
			it.off++
			return v, true
		}
		return 0, false
	default:
		for it.pos++; it.pos < 0x10000; it.pos++ {
			if it.c.bitmap[it.pos/64]&(uint64(1)<<uint(it.pos%64)) != 0 {
				return uint16(it.pos), true
			}
		}
		return 0, false
	}
}

// Next is the exported form of next, matching the facade contract
// (spec.md section 6.2).
func (it *Iterator) Next() (uint16, bool) { return it.next() }

// Clone returns an independent copy of the iterator's cursor state.
func (it *Iterator) Clone() *Iterator {
	cp := *it
	return &cp
}

// Remove always fails: iterators over these containers are read-only
// (spec.md section 4.6, section 7).
func (it *Iterator) Remove() error { return ErrIteratorMutation }

// ReverseIterator walks a container's elements in descending order.
type ReverseIterator struct {
	c    *container
	pos  int
	run  int
	off  int
	init bool
}

func (c *container) reverseIterator() *ReverseIterator {
	ri := &ReverseIterator{c: c}
	if c.isRun() {
		ri.run = c.runs.nbrruns - 1
		if ri.run >= 0 {
			ri.off = int(c.runs.getLength(ri.run))
		}
	} else {
		ri.pos = 0x10000
	}
	return ri
}

func (it *ReverseIterator) next() (uint16, bool) {
	switch {
	case it.c.isArray():
		if !it.init {
			it.pos = len(it.c.array)
			it.init = true
		}
		it.pos--
		if it.pos < 0 {
			return 0, false
		}
		return it.c.array[it.pos], true
	case it.c.isRun():
		rc := it.c.runs
		for it.run >= 0 {
			if it.off < 0 {
				it.run--
				if it.run >= 0 {
					it.off = int(rc.getLength(it.run))
				}
				continue
			}
			v := rc.getValue(it.run) + uint16(it.off)
			it.off--
			return v, true
		}
		return 0, false
	default:
		for it.pos--; it.pos >= 0; it.pos-- {
			if it.c.bitmap[it.pos/64]&(uint64(1)<<uint(it.pos%64)) != 0 {
				return uint16(it.pos), true
			}
		}
		return 0, false
	}
}

// Next is the exported form of next.
func (it *ReverseIterator) Next() (uint16, bool) { return it.next() }

// Clone returns an independent copy of the iterator's cursor state.
func (it *ReverseIterator) Clone() *ReverseIterator {
	cp := *it
	return &cp
}

// Remove always fails; see Iterator.Remove.
func (it *ReverseIterator) Remove() error { return ErrIteratorMutation }
