package roaring

// contains reports whether x is a member of rc, via a single binary
// search over run starts (spec.md section 4.2).
func (rc *runContainer16) contains(x uint16) bool {
	return rc.searchRun(x) >= 0
}

// add inserts x into rc, fusing with a neighboring run when x abuts one,
// and returns whether the set changed. This implements the four cases of
// spec.md section 4.2: already contained; extend-and-maybe-fuse the
// preceding run; prepend to the following run; insert a standalone run.
func (rc *runContainer16) add(x uint16) bool {
	if rc.nbrruns == 0 {
		rc.vl = append(rc.vl[:0], x, 0)
		rc.nbrruns = 1
		return true
	}

	idx := rc.unsignedInterleavedBinarySearch(x)
	if idx >= 0 {
		return false // x is itself a run's start value
	}
	ins := -idx - 1

	if ins > 0 {
		prev := ins - 1
		prevEnd := rc.last(prev)
		if int(x) <= prevEnd {
			return false
		}
		if int(x) == prevEnd+1 {
			if ins < rc.nbrruns && int(x)+1 == int(rc.getValue(ins)) {
				newEnd := rc.last(ins)
				rc.setLength(prev, uint16(newEnd-int(rc.getValue(prev))))
				rc.recoverRoomAtIndex(ins)
			} else {
				rc.incrementLength(prev)
			}
			return true
		}
	}

	if ins < rc.nbrruns && int(x)+1 == int(rc.getValue(ins)) {
		rc.decrementValue(ins)
		rc.incrementLength(ins)
		return true
	}

	rc.makeRoomAtIndex(ins)
	rc.setValue(ins, x)
	rc.setLength(ins, 0)
	return true
}

// remove deletes x from rc, splitting a run when x is interior to it, and
// returns whether the set changed (spec.md section 4.2).
func (rc *runContainer16) remove(x uint16) bool {
	i := rc.searchRun(x)
	if i < 0 {
		return false
	}
	value := rc.getValue(i)
	length := rc.getLength(i)

	switch {
	case x == value && length == 0:
		rc.recoverRoomAtIndex(i)
	case x == value:
		rc.incrementValue(i)
		rc.decrementLength(i)
	case int(x) == int(value)+int(length):
		rc.decrementLength(i)
	default:
		leftLen := uint16(int(x) - int(value) - 1)
		rightStart := x + 1
		rightLen := uint16(int(value) + int(length) - int(x) - 1)
		rc.setLength(i, leftLen)
		rc.makeRoomAtIndex(i + 1)
		rc.setValue(i+1, rightStart)
		rc.setLength(i+1, rightLen)
	}
	return true
}

// flip toggles membership of x: contains(x) ? remove(x) : add(x).
func (rc *runContainer16) flip(x uint16) bool {
	if rc.contains(x) {
		return rc.remove(x)
	}
	return rc.add(x)
}

// rank returns the number of elements <= x (spec.md section 4.2).
func (rc *runContainer16) rank(x uint16) int {
	n := 0
	for i := 0; i < rc.nbrruns; i++ {
		v := int(rc.getValue(i))
		l := int(rc.getLength(i))
		if v > int(x) {
			break
		}
		if v+l < int(x) {
			n += l + 1
		} else {
			n += int(x) - v + 1
			break
		}
	}
	return n
}

// selectAt returns the j-th smallest element (0-indexed), or
// ErrIndexOutOfBounds if j >= cardinality (spec.md section 4.2).
func (rc *runContainer16) selectAt(j int) (uint16, error) {
	if j < 0 {
		return 0, ErrIndexOutOfBounds
	}
	offset := 0
	for i := 0; i < rc.nbrruns; i++ {
		l := int(rc.getLength(i)) + 1
		if j < offset+l {
			return uint16(int(rc.getValue(i)) + (j - offset)), nil
		}
		offset += l
	}
	return 0, ErrIndexOutOfBounds
}
