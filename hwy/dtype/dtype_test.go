package dtype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEveryTypeHasInfo(t *testing.T) {
	r := MustRegistry(16)
	all := All()
	assert.Len(t, all, 54)

	seen := map[string]bool{}
	for _, dt := range all {
		info := r.Info(dt)
		assert.Equal(t, dt, info.Type)
		assert.NotEqual(t, ClassInvalid, info.Class, dt.String())
		assert.Positive(t, info.LaneSize, dt.String())
		assert.False(t, seen[info.Name], "duplicate name %s", info.Name)
		seen[info.Name] = true

		got, ok := Lookup(info.Name)
		require.True(t, ok, info.Name)
		assert.Equal(t, dt, got)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		dt    DataType
		class Class
		name  string
	}{
		{U8, ClassScalar, "u8"},
		{F64, ClassScalar, "f64"},
		{QS16, ClassSequence, "qs16"},
		{VF32, ClassVector, "vf32"},
		{VB64, ClassVector, "vb64"},
		{VU32x2, ClassVectorX2, "vu32x2"},
		{VS8x3, ClassVectorX3, "vs8x3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.class, tt.dt.Class())
			assert.Equal(t, tt.name, tt.dt.String())
		})
	}
	assert.Equal(t, ClassInvalid, Invalid.Class())
	assert.Equal(t, ClassInvalid, DataType(200).Class())
}

func TestRelatedTypes(t *testing.T) {
	assert.Equal(t, U32, QU32.ToScalar())
	assert.Equal(t, VU32, QU32.ToVector())
	assert.Equal(t, VF64, VF64x3.ToVector())
	assert.Equal(t, S16, VS16x2.ToScalar())
	assert.Equal(t, QF32, VF32.ToSequence())
	assert.Equal(t, VS8x2, S8.ToVectorX(2))
	assert.Equal(t, VU64x3, QU64.ToVectorX(3))

	assert.Equal(t, VB8, VB8.ToVector())
	assert.Equal(t, U16, VB16.ToScalar())
	assert.Equal(t, VU32, VB32.ToUnsigned())
	assert.Equal(t, VU64, VB64.ToUnsigned())
	assert.Equal(t, Invalid, VB8.ToVectorX(2))
	assert.Equal(t, VB32, VF32.BoolOf())
	assert.Equal(t, "b16", VB16.Suffix())
	assert.Equal(t, "f32", VF32x2.Suffix())
}

func TestLaneCounts(t *testing.T) {
	for _, width := range []int{16, 32, 64} {
		r := MustRegistry(width)
		assert.Equal(t, width, r.NLanes(VU8))
		assert.Equal(t, width/2, r.NLanes(QS16))
		assert.Equal(t, width/4, r.NLanes(VF32x2))
		assert.Equal(t, width/8, r.NLanes(VB64))
		assert.Equal(t, 1, r.NLanes(F64))
	}
}

func TestNewRegistryRejectsWidth(t *testing.T) {
	for _, width := range []int{0, 4, 24, 512} {
		_, err := NewRegistry(width)
		assert.ErrorIs(t, err, ErrInvalidWidth, "width %d", width)
	}
	assert.Panics(t, func() { MustRegistry(3) })
}
