package hwy

// This file provides the reordering operations used by the combine and zip
// kernels. These are pure Go (scalar) implementations that work with any type.

// InterleaveLower interleaves the lower halves of two vectors.
// [a0,a1,a2,a3], [b0,b1,b2,b3] -> [a0,b0,a1,b1]
func InterleaveLower[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	half := n / 2
	result := make([]T, n)
	for i := range half {
		result[2*i] = a.data[i]
		result[2*i+1] = b.data[i]
	}
	return Vec[T]{data: result}
}

// InterleaveUpper interleaves the upper halves of two vectors.
// [a0,a1,a2,a3], [b0,b1,b2,b3] -> [a2,b2,a3,b3]
func InterleaveUpper[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	half := n / 2
	result := make([]T, n)
	for i := range half {
		result[2*i] = a.data[half+i]
		result[2*i+1] = b.data[half+i]
	}
	return Vec[T]{data: result}
}

// ConcatLowerLower concatenates the lower halves of two vectors.
// [a0,a1,a2,a3], [b0,b1,b2,b3] -> [a0,a1,b0,b1]
func ConcatLowerLower[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	half := n / 2
	result := make([]T, n)
	copy(result[:half], a.data[:half])
	copy(result[half:], b.data[:half])
	return Vec[T]{data: result}
}

// ConcatUpperUpper concatenates the upper halves of two vectors.
// [a0,a1,a2,a3], [b0,b1,b2,b3] -> [a2,a3,b2,b3]
func ConcatUpperUpper[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	half := n / 2
	result := make([]T, n)
	copy(result[:half], a.data[half:n])
	copy(result[half:], b.data[half:n])
	return Vec[T]{data: result}
}

// LowerHalf returns a copy of v whose upper half is zero.
func LowerHalf[T Lanes](v Vec[T]) Vec[T] {
	result := make([]T, len(v.data))
	copy(result, v.data[:len(v.data)/2])
	return Vec[T]{data: result}
}

// UpperHalf returns the upper half of v moved to the lower lanes, with
// the upper half zero.
func UpperHalf[T Lanes](v Vec[T]) Vec[T] {
	result := make([]T, len(v.data))
	copy(result, v.data[len(v.data)/2:])
	return Vec[T]{data: result}
}
