package roaring

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// containerTypeArray, containerTypeBitmap and containerTypeRun are the
// one-byte discriminators this package's own container-level framing
// prefixes onto the variant payload. spec.md section 6.1 notes the
// discriminator for a run container's wire form properly belongs to the
// owning Roaring Bitmap, outside this spec; since this package's
// Container has no owner to hold that byte for it, WriteTo/ReadContainerFrom
// carry a minimal one so a Container round-trips on its own.
const (
	containerTypeArray byte = iota
	containerTypeBitmap
	containerTypeRun
)

// serialize returns rc's bit-exact wire encoding (spec.md section 6.1):
// a little-endian uint16 run count followed by nbrruns (value, length)
// little-endian uint16 pairs.
func (rc *runContainer16) serialize() []byte {
	buf := make([]byte, runSerializedSizeInBytes(rc.nbrruns))
	binary.LittleEndian.PutUint16(buf, uint16(rc.nbrruns))
	for i := 0; i < 2*rc.nbrruns; i++ {
		binary.LittleEndian.PutUint16(buf[2+2*i:], rc.vl[i])
	}
	return buf
}

// deserializeRunContainer16 parses the wire form written by serialize,
// rejecting any encoding that would violate the run-container invariants
// of spec.md section 3.2 (strictly increasing values, non-adjacent runs,
// in-bounds run ends).
func deserializeRunContainer16(data []byte) (*runContainer16, error) {
	if len(data) < 2 {
		return nil, errors.Wrap(ErrCorruptContainer, "run container: truncated header")
	}
	nbrruns := int(binary.LittleEndian.Uint16(data))
	want := runSerializedSizeInBytes(nbrruns)
	if len(data) < want {
		return nil, errors.Wrapf(ErrCorruptContainer, "run container: need %d bytes, have %d", want, len(data))
	}

	rc := &runContainer16{vl: make([]uint16, 2*nbrruns), nbrruns: nbrruns}
	for i := 0; i < 2*nbrruns; i++ {
		rc.vl[i] = binary.LittleEndian.Uint16(data[2+2*i:])
	}

	if err := rc.validate(); err != nil {
		return nil, err
	}
	return rc, nil
}

// validate checks the canonical-form invariants of spec.md sections 3.1
// and 3.2: in-bounds runs, strictly increasing values, and non-adjacency
// (fusion) between consecutive runs.
func (rc *runContainer16) validate() error {
	for i := 0; i < rc.nbrruns; i++ {
		v := int(rc.getValue(i))
		l := int(rc.getLength(i))
		if v+l > 0xFFFF {
			return errors.Wrapf(ErrCorruptContainer, "run %d: value %d + length %d exceeds 0xFFFF", i, v, l)
		}
		if i > 0 {
			prevEnd := rc.last(i - 1)
			if v <= prevEnd {
				return errors.Wrapf(ErrCorruptContainer, "run %d: value %d not strictly greater than previous run's end %d", i, v, prevEnd)
			}
			if prevEnd+1 >= v {
				return errors.Wrapf(ErrCorruptContainer, "run %d: adjacent to previous run, should have been fused", i)
			}
		}
	}
	return nil
}

// WriteTo writes c's self-contained wire form (a type discriminator plus
// the variant's payload) to w.
func (c *container) WriteTo(w io.Writer) (int64, error) {
	var typeByte byte
	var payload []byte

	switch {
	case c.isArray():
		typeByte = containerTypeArray
		payload = make([]byte, 4+2*len(c.array))
		binary.LittleEndian.PutUint32(payload, uint32(len(c.array)))
		for i, v := range c.array {
			binary.LittleEndian.PutUint16(payload[4+2*i:], v)
		}
	case c.isBitmap():
		typeByte = containerTypeBitmap
		payload = make([]byte, 8*bitmapWords)
		for i, w64 := range c.bitmap {
			binary.LittleEndian.PutUint64(payload[8*i:], w64)
		}
	default:
		typeByte = containerTypeRun
		payload = c.runs.serialize()
	}

	if _, err := w.Write([]byte{typeByte}); err != nil {
		return 0, err
	}
	n, err := w.Write(payload)
	return int64(1 + n), err
}

// ReadContainerFrom parses the format written by WriteTo.
func ReadContainerFrom(r io.Reader) (*container, error) {
	var typeByte [1]byte
	if _, err := io.ReadFull(r, typeByte[:]); err != nil {
		return nil, errors.Wrap(err, "roaring: reading container type")
	}

	switch typeByte[0] {
	case containerTypeArray:
		var cardBuf [4]byte
		if _, err := io.ReadFull(r, cardBuf[:]); err != nil {
			return nil, errors.Wrap(ErrCorruptContainer, "array container: truncated cardinality")
		}
		card := int(binary.LittleEndian.Uint32(cardBuf[:]))
		buf := make([]byte, 2*card)
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, errors.Wrap(ErrCorruptContainer, "array container: truncated values")
		}
		array := make([]uint16, card)
		for i := range array {
			array[i] = binary.LittleEndian.Uint16(buf[2*i:])
		}
		for i := 1; i < len(array); i++ {
			if array[i] <= array[i-1] {
				return nil, errors.Wrap(ErrCorruptContainer, "array container: values not strictly increasing")
			}
		}
		return &container{array: array, n: card}, nil

	case containerTypeBitmap:
		buf := make([]byte, 8*bitmapWords)
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, errors.Wrap(ErrCorruptContainer, "bitmap container: truncated")
		}
		bitmap := make([]uint64, bitmapWords)
		n := 0
		for i := range bitmap {
			bitmap[i] = binary.LittleEndian.Uint64(buf[8*i:])
			n += int(popcount(bitmap[i]))
		}
		return &container{bitmap: bitmap, n: n}, nil

	case containerTypeRun:
		var hdr [2]byte
		if _, err := io.ReadFull(r, hdr[:]); err != nil {
			return nil, errors.Wrap(ErrCorruptContainer, "run container: truncated header")
		}
		nbrruns := int(binary.LittleEndian.Uint16(hdr[:]))
		body := make([]byte, 4*nbrruns)
		if _, err := io.ReadFull(r, body); err != nil {
			return nil, errors.Wrap(ErrCorruptContainer, "run container: truncated body")
		}
		full := append(hdr[:], body...)
		rc, err := deserializeRunContainer16(full)
		if err != nil {
			return nil, err
		}
		return containerFromRun(rc), nil

	default:
		return nil, errors.Wrapf(ErrCorruptContainer, "unknown container type byte %d", typeByte[0])
	}
}

// serializedSizeInBytes returns the wire size of c's self-contained
// encoding, including the one-byte discriminator.
func (c *container) serializedSizeInBytes() int {
	switch {
	case c.isArray():
		return 1 + 4 + 2*len(c.array)
	case c.isBitmap():
		return 1 + 8*bitmapWords
	default:
		return 1 + runSerializedSizeInBytes(c.runs.nbrruns)
	}
}

// getArraySizeInBytes returns 2 bytes per element: the size of c's values
// stored as a bare array, without the count header and type byte that
// WriteTo adds. It is a figure for comparing variant sizes, as in
// toEfficientContainer.
func (c *container) getArraySizeInBytes() int {
	return arraySerializedSizeInBytes(c.n)
}

// getSizeInBytes approximates c's in-memory footprint; for every variant
// here that is the same as its wire payload size (no separate on-heap
// header this package tracks), so it mirrors serializedSizeInBytes minus
// the discriminator byte.
func (c *container) getSizeInBytes() int {
	return c.serializedSizeInBytes() - 1
}

// check performs a consistency scan of c's invariants, returning an
// ErrorList describing every violation found (spec.md section 7).
func (c *container) check() error {
	var errs ErrorList
	switch {
	case c.isArray():
		if len(c.array) != c.n {
			errs.Append(errors.Errorf("array cardinality mismatch: len=%d n=%d", len(c.array), c.n))
		}
		for i := 1; i < len(c.array); i++ {
			if c.array[i] <= c.array[i-1] {
				errs.Append(errors.Errorf("array not strictly increasing at index %d", i))
			}
		}
	case c.isRun():
		if err := c.runs.validate(); err != nil {
			errs.AppendWithPrefix(err, "run validate: ")
		}
		if c.runs.cardinality() != c.n {
			errs.Append(errors.Errorf("run cardinality mismatch: computed=%d n=%d", c.runs.cardinality(), c.n))
		}
	case c.isBitmap():
		if sumPopcount(c.bitmap) != c.n {
			errs.Append(errors.Errorf("bitmap cardinality mismatch: computed=%d n=%d", sumPopcount(c.bitmap), c.n))
		}
	default:
		errs.Append(errors.New("container has no variant set"))
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
