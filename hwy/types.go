// Package hwy describes the SIMD hardware a test harness runs against and
// provides the portable lane operations its reference kernels are built on.
//
// It answers two questions for the rest of the module:
//
//   - which dispatch targets exist on this machine and how wide their
//     registers are (see Target, Baseline and DispatchTargets), and
//   - how one lane-wise operation behaves on a register image, expressed
//     on Vec and Mask with an explicit lane count.
//
// Basic usage:
//
//	import "github.com/ajroetker/hwysimd/hwy"
//
//	n := hwy.MaxLanesOf[float32](hwy.Baseline())
//	a := hwy.Load(data1, n)
//	b := hwy.Load(data2, n)
//	sum := hwy.Add(a, b)
//	hwy.Store(sum, out)
package hwy

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in SIMD lanes.
type Lanes interface {
	Floats | Integers
}

// Vec is a register image viewed as a run of lanes of type T.
//
// A Vec owns its lanes; operations never alias their inputs.
type Vec[T Lanes] struct {
	data []T
}

// FromSlice returns a vector holding a copy of src.
func FromSlice[T Lanes](src []T) Vec[T] {
	data := make([]T, len(src))
	copy(data, src)
	return Vec[T]{data: data}
}

// NumLanes returns the number of lanes (elements) in this vector.
func (v Vec[T]) NumLanes() int {
	return len(v.data)
}

// Data returns the underlying lanes.
func (v Vec[T]) Data() []T {
	return v.data
}

// Store writes the vector's data to a slice.
// This is the method form of the hwy.Store function.
func (v Vec[T]) Store(dst []T) {
	n := min(len(dst), len(v.data))
	copy(dst[:n], v.data[:n])
}

// Mask represents the result of a comparison operation.
// Bit i is set when lane i compared true.
type Mask[T Lanes] struct {
	bits []bool
}

// MaskFromBits returns a mask with one lane per element of bits.
func MaskFromBits[T Lanes](bits []bool) Mask[T] {
	b := make([]bool, len(bits))
	copy(b, bits)
	return Mask[T]{bits: b}
}

// NumLanes returns the number of lanes in this mask.
func (m Mask[T]) NumLanes() int {
	return len(m.bits)
}

// Bits returns the active state of every lane.
func (m Mask[T]) Bits() []bool {
	return m.bits
}

// AllTrue returns true if all lanes in the mask are active.
func (m Mask[T]) AllTrue() bool {
	for _, bit := range m.bits {
		if !bit {
			return false
		}
	}
	return true
}

// AnyTrue returns true if at least one lane in the mask is active.
func (m Mask[T]) AnyTrue() bool {
	for _, bit := range m.bits {
		if bit {
			return true
		}
	}
	return false
}

// CountTrue returns the number of active lanes in the mask.
func (m Mask[T]) CountTrue() int {
	count := 0
	for _, bit := range m.bits {
		if bit {
			count++
		}
	}
	return count
}

// GetBit returns whether lane i is active.
func (m Mask[T]) GetBit(i int) bool {
	if i < 0 || i >= len(m.bits) {
		return false
	}
	return m.bits[i]
}
