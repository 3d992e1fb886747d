package bridge

import (
	"testing"

	"github.com/ajroetker/hwysimd/hwy/dtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVectorIndexing(t *testing.T) {
	m := newTestMarshaller(t, 16)
	v, err := m.NewVector(dtype.VU32, List{1, 2, 3, 4})
	require.NoError(t, err)
	require.Equal(t, 4, v.Len())

	x, err := v.Item(0)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), x)

	x, err = v.Item(3)
	require.NoError(t, err)
	assert.Equal(t, uint64(4), x)

	x, err = v.Item(-1)
	require.NoError(t, err)
	assert.Equal(t, uint64(4), x)

	_, err = v.Item(4)
	assert.ErrorIs(t, err, ErrIndex)
	assert.Contains(t, err.Error(), "list index out of range")

	_, err = v.Item(-5)
	assert.ErrorIs(t, err, ErrIndex)
}

func TestVectorName(t *testing.T) {
	m := newTestMarshaller(t, 16)
	for _, vt := range []dtype.DataType{dtype.VU8, dtype.VS64, dtype.VF32, dtype.VB16} {
		v, err := m.NewVector(vt, seq(16, 0))
		require.NoError(t, err)
		assert.Equal(t, vt.String(), v.Name())
	}
}

func TestVectorString(t *testing.T) {
	m := newTestMarshaller(t, 16)

	v, err := m.NewVector(dtype.VS32, List{-1, 0, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, "[-1, 0, 1, 2]", v.String())

	b, err := m.NewVector(dtype.VB32, List{true, false, false, true})
	require.NoError(t, err)
	assert.Equal(t, "[true, false, false, true]", b.String())
}

func TestVectorCompare(t *testing.T) {
	m := newTestMarshaller(t, 16)
	v, err := m.NewVector(dtype.VS32, List{1, 2, 3, 4})
	require.NoError(t, err)

	tests := []struct {
		name  string
		other any
		op    CompareOp
		want  bool
	}{
		{"equal list", List{1, 2, 3, 4}, EQ, true},
		{"equal typed slice", []int8{1, 2, 3, 4}, EQ, true},
		{"equal floats", []float64{1, 2, 3, 4}, EQ, true},
		{"not equal", List{1, 2, 3, 5}, NE, true},
		{"less at first difference", List{1, 2, 4, 0}, LT, true},
		{"greater at first difference", List{1, 2, 2, 9}, GT, true},
		{"shorter prefix orders first", List{1, 2, 3}, GT, true},
		{"longer sequence orders last", List{1, 2, 3, 4, 0}, LT, true},
		{"less equal on equal", Tuple{1, 2, 3, 4}, LE, true},
		{"greater equal on equal", Tuple{1, 2, 3, 4}, GE, true},
		{"not equal to scalar", 1, NE, true},
		{"not equal to scalar eq", 1, EQ, false},
		{"mixed element types", List{1, 2, "3", 4}, EQ, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := v.Compare(tt.other, tt.op)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err = v.Compare(1, LT)
	assert.ErrorIs(t, err, ErrType)
	_, err = v.Compare(List{1, "x"}, LT)
	assert.ErrorIs(t, err, ErrType)
}

func TestVectorCompareVectors(t *testing.T) {
	m := newTestMarshaller(t, 16)
	a, err := m.NewVector(dtype.VU16, seq(8, 0))
	require.NoError(t, err)
	b, err := m.NewVector(dtype.VU16, seq(8, 0))
	require.NoError(t, err)
	c, err := m.NewVector(dtype.VU16, seq(8, 1))
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	lt, err := a.Compare(c, LT)
	require.NoError(t, err)
	assert.True(t, lt)
}

func TestVectorContains(t *testing.T) {
	m := newTestMarshaller(t, 16)
	v, err := m.NewVector(dtype.VF64, List{0.5, -2})
	require.NoError(t, err)
	assert.True(t, v.Contains(0.5))
	assert.True(t, v.Contains(-2))
	assert.False(t, v.Contains(2))
	assert.False(t, v.Contains("0.5"))
}

func TestVectorIteration(t *testing.T) {
	m := newTestMarshaller(t, 16)
	v, err := m.NewVector(dtype.VU64, List{7, 9})
	require.NoError(t, err)

	var got []any
	for i, x := range v.All() {
		assert.Equal(t, len(got), i)
		got = append(got, x)
	}
	assert.Equal(t, []any{uint64(7), uint64(9)}, got)
	assert.Equal(t, Tuple{uint64(7), uint64(9)}, v.Tuple())
}

func TestBooleanVectorRoundTrip(t *testing.T) {
	for _, width := range []int{16, 32, 64} {
		m := newTestMarshaller(t, width)
		for _, bt := range []dtype.DataType{dtype.VB8, dtype.VB16, dtype.VB32, dtype.VB64} {
			n := m.Registry().NLanes(bt)
			in := make(List, n)
			for i := range in {
				in[i] = i%3 == 0
			}
			v, err := m.NewVector(bt, in)
			require.NoError(t, err)
			assert.True(t, v.Equal(in), "%s width %d", bt, width)

			d, err := m.Decode(v, bt)
			require.NoError(t, err)
			reg := d.(VecData).Reg
			for i := range n {
				assert.Equal(t, i%3 == 0, reg.MaskBit(i))
			}

			back, err := m.Encode(d)
			require.NoError(t, err)
			assert.True(t, back.(*Vector).Equal(in))
			for _, x := range back.(*Vector).All() {
				assert.IsType(t, true, x)
			}
		}
	}
}

func TestBooleanVectorFromNumbers(t *testing.T) {
	m := newTestMarshaller(t, 16)
	v, err := m.NewVector(dtype.VB64, List{0, 5})
	require.NoError(t, err)
	assert.Equal(t, List{false, true}, v.List())

	_, err = m.NewVector(dtype.VB64, List{"yes", 1})
	assert.ErrorIs(t, err, ErrType)
}

func TestVectorExtractionChecks(t *testing.T) {
	m := newTestMarshaller(t, 16)
	other := newTestMarshaller(t, 16)

	v, err := m.NewVector(dtype.VU8, seq(16, 0))
	require.NoError(t, err)

	_, err = m.Decode(v, dtype.VS8)
	assert.ErrorIs(t, err, ErrType)
	assert.Contains(t, err.Error(), "a vector type vs8 is required, got(vu8)")

	foreign, err := other.NewVector(dtype.VU8, seq(16, 0))
	require.NoError(t, err)
	_, err = m.Decode(foreign, dtype.VU8)
	assert.ErrorIs(t, err, ErrType)
	assert.Contains(t, err.Error(), "a vector type vu8 is required")

	_, err = m.Decode(List{1, 2}, dtype.VU8)
	assert.ErrorIs(t, err, ErrType)
}

func TestNewVectorErrors(t *testing.T) {
	m := newTestMarshaller(t, 16)

	_, err := m.NewVector(dtype.QU8, seq(16, 0))
	assert.ErrorIs(t, err, ErrType)

	_, err = m.NewVector(dtype.VU8, seq(15, 0))
	assert.ErrorIs(t, err, ErrSize)

	_, err = m.NewVector(dtype.VU8, 3)
	assert.ErrorIs(t, err, ErrType)

	v, err := m.NewVector(dtype.VU32, seq(6, 1))
	require.NoError(t, err)
	assert.Equal(t, List{uint64(1), uint64(2), uint64(3), uint64(4)}, v.List())
}

func TestVectorContainerIsolated(t *testing.T) {
	m := newTestMarshaller(t, 16)
	reg := pattern(16, 3)
	v, err := m.Encode(VecData{T: dtype.VU8, Reg: reg})
	require.NoError(t, err)

	reg[0] = 0
	first, err := v.(*Vector).Item(0)
	require.NoError(t, err)
	assert.Equal(t, uint64(4), first)
}
