package bridge

import (
	"math"

	"github.com/ajroetker/hwysimd/hwy/dtype"
)

// decodeScalar converts a host number into the lane bit pattern of the
// scalar kind t. Integer kinds wrap to the lane width; float kinds round to
// the lane precision.
func decodeScalar(obj any, t dtype.DataType) (uint64, error) {
	if t.IsFloat() {
		f, ok := asFloat(obj)
		if !ok {
			return 0, typeErrorf("a float is required for %s, got %T", t, obj)
		}
		if t.LaneSize() == 4 {
			return uint64(math.Float32bits(float32(f))), nil
		}
		return math.Float64bits(f), nil
	}
	u, ok := asInt(obj)
	if !ok {
		return 0, typeErrorf("an integer is required for %s, got %T", t, obj)
	}
	return truncate(u, t.LaneSize()), nil
}

// encodeScalar converts a lane bit pattern of kind t into a host number:
// uint64 for unsigned, int64 for signed and float64 for float kinds.
func encodeScalar(bits uint64, t dtype.DataType) any {
	size := t.LaneSize()
	switch {
	case t.IsFloat() && size == 4:
		return float64(math.Float32frombits(uint32(bits)))
	case t.IsFloat():
		return math.Float64frombits(bits)
	case t.IsSigned():
		return signExtend(bits, size)
	default:
		return truncate(bits, size)
	}
}

func truncate(u uint64, size int) uint64 {
	if size >= 8 {
		return u
	}
	return u & (1<<(size*8) - 1)
}

func signExtend(u uint64, size int) int64 {
	switch size {
	case 1:
		return int64(int8(u))
	case 2:
		return int64(int16(u))
	case 4:
		return int64(int32(u))
	default:
		return int64(u)
	}
}
