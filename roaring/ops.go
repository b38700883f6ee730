package roaring

// wrapArray and wrapBitmap adapt a raw slice into a container, computing
// cardinality from the slice/bitmap contents.
func wrapArray(a []uint16) *container  { return &container{array: a, n: len(a)} }
func wrapBitmap(b []uint64) *container { return &container{bitmap: b, n: sumPopcount(b)} }

// and computes the intersection of a and b, dispatching across the nine
// (variant x variant) cells described in spec.md section 4.4. Run-valued
// results are passed through toEfficientContainer; bitmap-valued results
// already fold in the array downgrade at their construction site.
func and(a, b *container) *container {
	switch {
	case a.isRun() && b.isRun():
		statsHit("and.run.run")
		return runAndRun(a.runs, b.runs).toEfficientContainer()
	case a.isRun() && b.isArray():
		statsHit("and.run.array")
		return wrapArray(runAndArray(a.runs, b.array))
	case a.isArray() && b.isRun():
		statsHit("and.array.run")
		return wrapArray(runAndArray(b.runs, a.array))
	case a.isRun() && b.isBitmap():
		statsHit("and.run.bitmap")
		return runAndBitmap(a.runs, b.bitmap)
	case a.isBitmap() && b.isRun():
		statsHit("and.bitmap.run")
		return runAndBitmap(b.runs, a.bitmap)
	case a.isArray() && b.isArray():
		statsHit("and.array.array")
		return wrapArray(andArrayArray(a.array, b.array))
	case a.isArray() && b.isBitmap():
		statsHit("and.array.bitmap")
		return wrapArray(andArrayBitmap(a.array, b.bitmap))
	case a.isBitmap() && b.isArray():
		statsHit("and.bitmap.array")
		return wrapArray(andArrayBitmap(b.array, a.bitmap))
	default:
		statsHit("and.bitmap.bitmap")
		return andBitmapBitmap(a.bitmap, b.bitmap)
	}
}

// or computes the union of a and b (spec.md section 4.4). Run x Array
// falls back to expanding the run side into a bitmap-or-array container
// and re-dispatching, per spec.md's explicit instruction for or/xor/andNot
// with an array operand.
func or(a, b *container) *container {
	switch {
	case a.isRun() && b.isRun():
		statsHit("or.run.run")
		return runOrRun(a.runs, b.runs).toEfficientContainer()
	case a.isRun() && b.isArray():
		statsHit("or.run.array")
		return or(a.runs.toBitmapOrArrayContainer(), b)
	case a.isArray() && b.isRun():
		statsHit("or.array.run")
		return or(a, b.runs.toBitmapOrArrayContainer())
	case a.isRun() && b.isBitmap():
		statsHit("or.run.bitmap")
		return runOrBitmap(a.runs, b.bitmap)
	case a.isBitmap() && b.isRun():
		statsHit("or.bitmap.run")
		return runOrBitmap(b.runs, a.bitmap)
	case a.isArray() && b.isArray():
		statsHit("or.array.array")
		out := orArrayArray(a.array, b.array)
		if len(out) > ArrayMaxSize {
			c := wrapArray(out)
			c.arrayToBitmap()
			return c
		}
		return wrapArray(out)
	case a.isArray() && b.isBitmap():
		statsHit("or.array.bitmap")
		return orArrayBitmap(a.array, b.bitmap)
	case a.isBitmap() && b.isArray():
		statsHit("or.bitmap.array")
		return orArrayBitmap(b.array, a.bitmap)
	default:
		statsHit("or.bitmap.bitmap")
		return orBitmapBitmap(a.bitmap, b.bitmap)
	}
}

// xor computes the symmetric difference of a and b (spec.md section 4.4).
func xor(a, b *container) *container {
	switch {
	case a.isRun() && b.isRun():
		statsHit("xor.run.run")
		return runXorRun(a.runs, b.runs).toEfficientContainer()
	case a.isRun() && b.isArray():
		statsHit("xor.run.array")
		return xor(a.runs.toBitmapOrArrayContainer(), b)
	case a.isArray() && b.isRun():
		statsHit("xor.array.run")
		return xor(a, b.runs.toBitmapOrArrayContainer())
	case a.isRun() && b.isBitmap():
		statsHit("xor.run.bitmap")
		return runXorBitmap(a.runs, b.bitmap)
	case a.isBitmap() && b.isRun():
		statsHit("xor.bitmap.run")
		return runXorBitmap(b.runs, a.bitmap)
	case a.isArray() && b.isArray():
		statsHit("xor.array.array")
		out := xorArrayArray(a.array, b.array)
		if len(out) > ArrayMaxSize {
			c := wrapArray(out)
			c.arrayToBitmap()
			return c
		}
		return wrapArray(out)
	case a.isArray() && b.isBitmap():
		statsHit("xor.array.bitmap")
		return xorArrayBitmap(a.array, b.bitmap)
	case a.isBitmap() && b.isArray():
		statsHit("xor.bitmap.array")
		return xorArrayBitmap(b.array, a.bitmap)
	default:
		statsHit("xor.bitmap.bitmap")
		return xorBitmapBitmap(a.bitmap, b.bitmap)
	}
}

// andNot computes a \ b (spec.md section 4.4).
func andNot(a, b *container) *container {
	switch {
	case a.isRun() && b.isRun():
		statsHit("andNot.run.run")
		return runAndNotRun(a.runs, b.runs).toEfficientContainer()
	case a.isRun() && b.isArray():
		statsHit("andNot.run.array")
		return andNot(a.runs.toBitmapOrArrayContainer(), b)
	case a.isArray() && b.isRun():
		statsHit("andNot.array.run")
		return andNot(a, b.runs.toBitmapOrArrayContainer())
	case a.isRun() && b.isBitmap():
		statsHit("andNot.run.bitmap")
		return runAndNotBitmap(a.runs, b.bitmap)
	case a.isBitmap() && b.isRun():
		statsHit("andNot.bitmap.run")
		// a \ b.runs: zero exactly the ranges b.runs covers.
		result := append([]uint64(nil), a.bitmap...)
		for i := 0; i < b.runs.nbrruns; i++ {
			v := uint64(b.runs.getValue(i))
			l := uint64(b.runs.getLength(i))
			resetBitmapRange(result, v, v+l+1)
		}
		out := &container{bitmap: result, n: sumPopcount(result)}
		if out.n <= ArrayMaxSize {
			out.bitmapToArray()
		}
		return out
	case a.isArray() && b.isArray():
		statsHit("andNot.array.array")
		return wrapArray(andNotArrayArray(a.array, b.array))
	case a.isArray() && b.isBitmap():
		statsHit("andNot.array.bitmap")
		return wrapArray(andNotArrayBitmap(a.array, b.bitmap))
	case a.isBitmap() && b.isArray():
		statsHit("andNot.bitmap.array")
		out := andNotBitmapArray(a.bitmap, b.array)
		if out.n <= ArrayMaxSize {
			out.bitmapToArray()
		}
		return out
	default:
		statsHit("andNot.bitmap.bitmap")
		return andNotBitmapBitmap(a.bitmap, b.bitmap)
	}
}

// iand, ior, ixor, iandNot are the in-place cousins required by the
// facade contract (spec.md section 6.2). They are semantically equivalent
// to the pure form; per spec.md section 4.4 they may alias their operands
// but need not mutate their receiver in place when the result's variant
// differs from the receiver's, so each simply replaces *c with the pure
// result.
func (c *container) iand(x *container) { *c = *and(c, x) }
func (c *container) ior(x *container)  { *c = *or(c, x) }
func (c *container) ixor(x *container) { *c = *xor(c, x) }
func (c *container) iandNot(x *container) { *c = *andNot(c, x) }
