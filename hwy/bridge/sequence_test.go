package bridge

import (
	"testing"

	"github.com/ajroetker/hwysimd/hwy/dtype"
	"github.com/ajroetker/hwysimd/hwy/mem"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequenceMinimumLength(t *testing.T) {
	for _, width := range []int{16, 32, 64} {
		m := newTestMarshaller(t, width)
		for _, st := range dtype.LaneTypes() {
			qt := st.ToSequence()
			nlanes := m.Registry().NLanes(qt)

			_, err := m.Decode(seq(nlanes-1, 1), qt)
			var lerr *LengthError
			require.ErrorAs(t, err, &lerr, "%s width %d", qt, width)
			assert.ErrorIs(t, err, ErrSize)
			assert.Equal(t, nlanes, lerr.Min)
			assert.Equal(t, nlanes-1, lerr.Given)

			d, err := m.Decode(seq(nlanes, 1), qt)
			require.NoError(t, err)
			require.NoError(t, m.Clear(d))
		}
		assert.Zero(t, m.Allocator().LiveBuffers())
	}
}

func TestSequenceErrorMessage(t *testing.T) {
	m := newTestMarshaller(t, 16)
	_, err := m.Decode(seq(3, 0), dtype.QU32)
	require.Error(t, err)
	assert.Equal(t, "minimum acceptable size of the sequence is 4, given(3)", err.Error())
}

func TestSequenceSizedToInput(t *testing.T) {
	m := newTestMarshaller(t, 16)
	d, err := m.Decode(seq(10, 0), dtype.QU16)
	require.NoError(t, err)
	defer m.Clear(d)

	s := d.(SeqData)
	assert.Equal(t, 20, mem.SizeOf(s.Buf))
	assert.Equal(t, 10, s.Len())
	assert.Zero(t, s.Buf.Addr()%16)
	assert.Equal(t, []uint16{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, SliceOf[uint16](s))
}

func TestSequenceBadElementReleasesBuffer(t *testing.T) {
	m := newTestMarshaller(t, 16)
	in := seq(16, 0)
	in[9] = "nine"

	_, err := m.Decode(in, dtype.QU8)
	assert.ErrorIs(t, err, ErrType)
	assert.Contains(t, err.Error(), "item 9")
	assert.Zero(t, m.Allocator().LiveBytes())
	assert.Zero(t, m.Allocator().LiveBuffers())
}

func TestSequenceNotACollection(t *testing.T) {
	m := newTestMarshaller(t, 16)
	for _, obj := range []any{nil, 7, "abcdefghijklmnop", map[int]int{}} {
		_, err := m.Decode(obj, dtype.QU8)
		assert.ErrorIs(t, err, ErrType, "%v", obj)
	}
}

func TestSequenceMemoryError(t *testing.T) {
	m := newTestMarshaller(t, 16, mem.WithLimit(32))
	_, err := m.Decode(seq(16, 0), dtype.QU64)
	assert.ErrorIs(t, err, ErrMemory)
	assert.ErrorIs(t, err, mem.ErrOutOfMemory)
	assert.Zero(t, m.Allocator().LiveBuffers())
}

func TestSequenceHostCollections(t *testing.T) {
	m := newTestMarshaller(t, 16)
	inputs := []any{
		List{1, 2, 3, 4},
		Tuple{1, 2, 3, 4},
		[]any{1, 2, 3, 4},
		[]int32{1, 2, 3, 4},
		[4]uint8{1, 2, 3, 4},
		[]float64{1, 2, 3, 4},
	}
	for _, in := range inputs {
		d, err := m.Decode(in, dtype.QF32)
		require.NoError(t, err, "%T", in)
		out, err := m.Encode(d)
		require.NoError(t, err)
		assert.Equal(t, List{1.0, 2.0, 3.0, 4.0}, out, "%T", in)
		require.NoError(t, m.Clear(d))
	}
}

func TestSequenceEncodeSigned(t *testing.T) {
	m := newTestMarshaller(t, 16)
	d, err := m.Decode([]int{-1, -2, 127, 128, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}, dtype.QS8)
	require.NoError(t, err)
	defer m.Clear(d)

	out, err := m.Encode(d)
	require.NoError(t, err)
	want := List{int64(-1), int64(-2), int64(127), int64(-128)}
	if diff := cmp.Diff(want, out.(List)[:4]); diff != "" {
		t.Errorf("lanes mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeInto(t *testing.T) {
	m := newTestMarshaller(t, 16)
	d, err := m.Decode(seq(4, 10), dtype.QS32)
	require.NoError(t, err)
	defer m.Clear(d)

	short := List{0, 0}
	require.NoError(t, m.EncodeInto(short, d))
	assert.Equal(t, List{int64(10), int64(11)}, short)

	long := make(List, 6)
	for i := range long {
		long[i] = -1
	}
	require.NoError(t, m.EncodeInto(long, d))
	assert.Equal(t, List{int64(10), int64(11), int64(12), int64(13), -1, -1}, long)

	typed := make([]int16, 4)
	require.NoError(t, m.EncodeInto(typed, d))
	assert.Equal(t, []int16{10, 11, 12, 13}, typed)

	var arr [3]float32
	require.NoError(t, m.EncodeInto(&arr, d))
	assert.Equal(t, [3]float32{10, 11, 12}, arr)

	assert.ErrorIs(t, m.EncodeInto(Tuple{0, 0, 0, 0}, d), ErrType)
	assert.ErrorIs(t, m.EncodeInto(5, d), ErrType)
	assert.ErrorIs(t, m.EncodeInto(List{}, ScalarData{T: dtype.U8}), ErrInternal)
}

type laneCount uint16

func TestEncodeIntoRejectsWithoutWriting(t *testing.T) {
	m := newTestMarshaller(t, 16)
	d, err := m.Decode(List{65, 66, 67, 300}, dtype.QU32)
	require.NoError(t, err)
	defer m.Clear(d)

	strs := []string{"a", "b", "c", "d"}
	assert.ErrorIs(t, m.EncodeInto(strs, d), ErrType)
	assert.Equal(t, []string{"a", "b", "c", "d"}, strs)

	// 300 does not fit a byte; the first three lanes stay unwritten too.
	small := []uint8{9, 9, 9, 9}
	err = m.EncodeInto(small, d)
	assert.ErrorIs(t, err, ErrType)
	assert.Contains(t, err.Error(), "item 3")
	assert.Equal(t, []uint8{9, 9, 9, 9}, small)

	named := make([]laneCount, 4)
	require.NoError(t, m.EncodeInto(named, d))
	assert.Equal(t, []laneCount{65, 66, 67, 300}, named)

	wide := make([]float64, 4)
	require.NoError(t, m.EncodeInto(wide, d))
	assert.Equal(t, []float64{65, 66, 67, 300}, wide)
}

func TestEncodeIntoFloatNarrowing(t *testing.T) {
	m := newTestMarshaller(t, 16)
	d, err := m.Decode(List{1.5, 2, 3, 4}, dtype.QF32)
	require.NoError(t, err)
	defer m.Clear(d)

	ints := []int32{0, 0, 0, 0}
	assert.ErrorIs(t, m.EncodeInto(ints, d), ErrType)
	assert.Equal(t, []int32{0, 0, 0, 0}, ints)

	neg, err := m.Decode(List{-1, 0, 1, 2}, dtype.QS32)
	require.NoError(t, err)
	defer m.Clear(neg)
	unsigned := []uint32{7, 7, 7, 7}
	assert.ErrorIs(t, m.EncodeInto(unsigned, neg), ErrType)
	assert.Equal(t, []uint32{7, 7, 7, 7}, unsigned)
}

func TestClearIdempotent(t *testing.T) {
	m := newTestMarshaller(t, 16)
	d, err := m.Decode(seq(16, 0), dtype.QU8)
	require.NoError(t, err)
	assert.Equal(t, int64(1), m.Allocator().LiveBuffers())

	require.NoError(t, m.Clear(d))
	require.NoError(t, m.Clear(d))
	assert.Zero(t, m.Allocator().LiveBuffers())

	assert.NoError(t, m.Clear(nil))
	assert.NoError(t, m.Clear(ScalarData{T: dtype.U8}))
	assert.NoError(t, m.Clear(SeqData{T: dtype.QU8}))
	assert.NoError(t, m.Clear(VecData{T: dtype.VU8}))
}
