package bridge

import (
	"math"
	"math/big"
	"testing"

	"github.com/ajroetker/hwysimd/hwy/dtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeScalar(t *testing.T) {
	huge, _ := new(big.Int).SetString("18446744073709551617", 10) // 2^64 + 1

	tests := []struct {
		name string
		obj  any
		t    dtype.DataType
		want uint64
	}{
		{"u8", 200, dtype.U8, 200},
		{"u8 wraps", 256 + 3, dtype.U8, 3},
		{"u8 negative", -1, dtype.U8, 0xff},
		{"s8 negative", int8(-2), dtype.S8, 0xfe},
		{"u16 from uint", uint(0x12345), dtype.U16, 0x2345},
		{"s32 negative", int64(-1), dtype.S32, 0xffffffff},
		{"u64 max", uint64(math.MaxUint64), dtype.U64, math.MaxUint64},
		{"s64 negative", -5, dtype.S64, uint64(1<<64 - 5)},
		{"u64 big wraps", huge, dtype.U64, 1},
		{"u64 big negative", big.NewInt(-1), dtype.U64, math.MaxUint64},
		{"bool", true, dtype.U32, 1},
		{"f32", 1.5, dtype.F32, uint64(math.Float32bits(1.5))},
		{"f32 from int", 3, dtype.F32, uint64(math.Float32bits(3))},
		{"f64", -0.25, dtype.F64, math.Float64bits(-0.25)},
		{"f64 from float32", float32(2), dtype.F64, math.Float64bits(2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeScalar(tt.obj, tt.t)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeScalarTypeErrors(t *testing.T) {
	_, err := decodeScalar(1.5, dtype.U8)
	assert.ErrorIs(t, err, ErrType)

	_, err = decodeScalar("1", dtype.S16)
	assert.ErrorIs(t, err, ErrType)

	_, err = decodeScalar(nil, dtype.F32)
	assert.ErrorIs(t, err, ErrType)

	_, err = decodeScalar(List{1}, dtype.F64)
	assert.ErrorIs(t, err, ErrType)
}

func TestEncodeScalar(t *testing.T) {
	assert.Equal(t, uint64(255), encodeScalar(0xff, dtype.U8))
	assert.Equal(t, int64(-1), encodeScalar(0xff, dtype.S8))
	assert.Equal(t, int64(-32768), encodeScalar(0x8000, dtype.S16))
	assert.Equal(t, int64(math.MinInt32), encodeScalar(0x80000000, dtype.S32))
	assert.Equal(t, uint64(0x80000000), encodeScalar(0x80000000, dtype.U32))
	assert.Equal(t, int64(-1), encodeScalar(math.MaxUint64, dtype.S64))
	assert.Equal(t, 1.5, encodeScalar(uint64(math.Float32bits(1.5)), dtype.F32))
	assert.Equal(t, math.Inf(-1), encodeScalar(math.Float64bits(math.Inf(-1)), dtype.F64))
}

func TestScalarRoundTrip(t *testing.T) {
	m := newTestMarshaller(t, 16)
	patterns := map[int]uint64{
		1: 0x81,
		2: 0x8001,
		4: uint64(math.Float32bits(-3.75)),
		8: math.Float64bits(1e300),
	}
	for _, st := range dtype.LaneTypes() {
		t.Run(st.String(), func(t *testing.T) {
			d := ScalarData{T: st, Bits: patterns[st.LaneSize()]}
			obj, err := m.Encode(d)
			require.NoError(t, err)
			back, err := m.Decode(obj, st)
			require.NoError(t, err)
			assert.Equal(t, d, back)
		})
	}
}
