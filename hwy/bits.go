package hwy

import "unsafe"

// laneBits returns the bit pattern of v zero-extended to 64 bits. The lane
// is read through its memory, so named lane types such as
// `type Celsius float32` share the layout of their underlying type.
func laneBits[T Lanes](v T) uint64 {
	p := unsafe.Pointer(&v)
	switch unsafe.Sizeof(v) {
	case 1:
		return uint64(*(*uint8)(p))
	case 2:
		return uint64(*(*uint16)(p))
	case 4:
		return uint64(*(*uint32)(p))
	default:
		return *(*uint64)(p)
	}
}

// fromLaneBits truncates u to the width of T and reinterprets it.
func fromLaneBits[T Lanes](u uint64) T {
	var out T
	p := unsafe.Pointer(&out)
	switch unsafe.Sizeof(out) {
	case 1:
		*(*uint8)(p) = uint8(u)
	case 2:
		*(*uint16)(p) = uint16(u)
	case 4:
		*(*uint32)(p) = uint32(u)
	default:
		*(*uint64)(p) = u
	}
	return out
}

// LaneBits returns the bit pattern of a lane zero-extended to 64 bits.
func LaneBits[T Lanes](v T) uint64 {
	return laneBits(v)
}

// FromLaneBits reinterprets the low bits of u as a lane of type T.
func FromLaneBits[T Lanes](u uint64) T {
	return fromLaneBits[T](u)
}
