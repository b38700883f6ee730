package roaring

import (
	"bytes"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/require"
)

// TestRunSerializeRoundTrip is spec.md section 8.2 scenario 7's literal
// byte vector.
func TestRunSerializeRoundTrip(t *testing.T) {
	rc := newRunFromRuns(t, [2]uint16{1, 3}, [2]uint16{100, 100}, [2]uint16{65530, 65535})

	want := []byte{
		0x03, 0x00,
		0x01, 0x00, 0x02, 0x00,
		0x64, 0x00, 0x00, 0x00,
		0xFA, 0xFF, 0x05, 0x00,
	}
	got := rc.serialize()
	require.Equal(t, want, got)
	require.Equal(t, len(got), runSerializedSizeInBytes(rc.nbrruns))

	back, err := deserializeRunContainer16(got)
	require.NoError(t, err)
	require.True(t, equalsRunContainer16(rc, back))
}

// TestSerializeRoundTripProperty is spec.md section 8.1 property 5.
func TestSerializeRoundTripProperty(t *testing.T) {
	f := func(vals []uint16) bool {
		rc := runContainerFromValues(vals)
		encoded := rc.serialize()
		if len(encoded) != runSerializedSizeInBytes(rc.nbrruns) {
			return false
		}
		decoded, err := deserializeRunContainer16(encoded)
		if err != nil {
			return false
		}
		return equalsRunContainer16(rc, decoded)
	}
	require.NoError(t, quick.Check(f, nil))
}

func TestDeserializeRejectsTruncatedHeader(t *testing.T) {
	_, err := deserializeRunContainer16([]byte{0x01})
	require.ErrorIs(t, err, ErrCorruptContainer)
}

func TestDeserializeRejectsTruncatedBody(t *testing.T) {
	_, err := deserializeRunContainer16([]byte{0x02, 0x00, 0x01, 0x00, 0x02, 0x00})
	require.ErrorIs(t, err, ErrCorruptContainer)
}

func TestDeserializeRejectsOutOfBoundsRun(t *testing.T) {
	// value=0xFFFE, length=3: 0xFFFE+3 > 0xFFFF.
	data := []byte{0x01, 0x00, 0xFE, 0xFF, 0x03, 0x00}
	_, err := deserializeRunContainer16(data)
	require.ErrorIs(t, err, ErrCorruptContainer)
}

func TestDeserializeRejectsNonIncreasingRuns(t *testing.T) {
	// two runs, second value (5) not greater than first run's end (9).
	data := []byte{
		0x02, 0x00,
		0x00, 0x00, 0x09, 0x00,
		0x05, 0x00, 0x02, 0x00,
	}
	_, err := deserializeRunContainer16(data)
	require.ErrorIs(t, err, ErrCorruptContainer)
}

func TestDeserializeRejectsUnfusedAdjacentRuns(t *testing.T) {
	// two runs that touch (0..9, 10..12) and should have been fused into one.
	data := []byte{
		0x02, 0x00,
		0x00, 0x00, 0x09, 0x00,
		0x0A, 0x00, 0x02, 0x00,
	}
	_, err := deserializeRunContainer16(data)
	require.ErrorIs(t, err, ErrCorruptContainer)
}

func TestContainerWriteToReadContainerFromRoundTrip(t *testing.T) {
	values := []uint16{0, 1, 2, 3, 4, 100, 101, 5000, 40000, 65535}
	for _, c := range containerVariantsOf(values) {
		var buf bytes.Buffer
		n, err := c.WriteTo(&buf)
		require.NoError(t, err)
		require.Equal(t, int64(c.serializedSizeInBytes()), n)

		back, err := ReadContainerFrom(&buf)
		require.NoError(t, err)
		require.True(t, equalContainers(c, back))
	}
}

func TestReadContainerFromRejectsUnknownDiscriminator(t *testing.T) {
	_, err := ReadContainerFrom(bytes.NewReader([]byte{0xFF}))
	require.ErrorIs(t, err, ErrCorruptContainer)
}

func TestReadContainerFromRejectsTruncatedStream(t *testing.T) {
	_, err := ReadContainerFrom(bytes.NewReader(nil))
	require.Error(t, err)
}

func TestGetArraySizeInBytesMatchesArrayEncoding(t *testing.T) {
	values := []uint16{1, 2, 3, 4, 5}
	for _, c := range containerVariantsOf(values) {
		require.Equal(t, 2*len(values), c.getArraySizeInBytes())
	}
}

func TestCheckDetectsCorruption(t *testing.T) {
	c := wrapArray([]uint16{5, 3, 1})
	require.Error(t, c.check())

	good := wrapArray([]uint16{1, 3, 5})
	require.NoError(t, good.check())
}

func TestCheckDetectsCardinalityMismatch(t *testing.T) {
	c := wrapArray([]uint16{1, 2, 3})
	c.n = 99
	require.Error(t, c.check())
}
