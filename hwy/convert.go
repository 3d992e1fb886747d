package hwy

import "encoding/binary"

// This file provides reinterpretation and mask conversion operations.

// BitCast reinterprets the bytes of v as lanes of type To. The byte image
// is preserved exactly; the lane count scales with the lane size ratio.
func BitCast[To, From Lanes](v Vec[From]) Vec[To] {
	fromSize := LaneSize[From]()
	toSize := LaneSize[To]()
	raw := make([]byte, len(v.data)*fromSize)
	for i, x := range v.data {
		PutLane(raw[i*fromSize:], fromSize, laneBits(x))
	}
	n := len(raw) / toSize
	result := make([]To, n)
	for i := range n {
		result[i] = fromLaneBits[To](GetLane(raw[i*toSize:], toSize))
	}
	return Vec[To]{data: result}
}

// VecFromMask returns a vector whose lanes are all-ones where m is set and
// zero elsewhere.
func VecFromMask[T Lanes](m Mask[T]) Vec[T] {
	result := make([]T, len(m.bits))
	for i, bit := range m.bits {
		if bit {
			result[i] = fromLaneBits[T](^uint64(0))
		}
	}
	return Vec[T]{data: result}
}

// MaskFromVec returns a mask that is set wherever a lane of v is non-zero.
func MaskFromVec[T Lanes](v Vec[T]) Mask[T] {
	bits := make([]bool, len(v.data))
	for i, x := range v.data {
		bits[i] = laneBits(x) != 0
	}
	return Mask[T]{bits: bits}
}

// PutLane writes the low size bytes of u to b in native byte order.
func PutLane(b []byte, size int, u uint64) {
	switch size {
	case 1:
		b[0] = byte(u)
	case 2:
		binary.NativeEndian.PutUint16(b, uint16(u))
	case 4:
		binary.NativeEndian.PutUint32(b, uint32(u))
	default:
		binary.NativeEndian.PutUint64(b, u)
	}
}

// GetLane reads a size-byte lane from b in native byte order.
func GetLane(b []byte, size int) uint64 {
	switch size {
	case 1:
		return uint64(b[0])
	case 2:
		return uint64(binary.NativeEndian.Uint16(b))
	case 4:
		return uint64(binary.NativeEndian.Uint32(b))
	default:
		return binary.NativeEndian.Uint64(b)
	}
}
