package hwy

// This file provides the interleaved memory operations behind the
// multi-register load and store kernels.

// LoadInterleaved2 loads interleaved pairs and deinterleaves them into two
// n-lane vectors.
//
//	[a0, b0, a1, b1, ...] -> [a0, a1, ...], [b0, b1, ...]
func LoadInterleaved2[T Lanes](src []T, n int) (Vec[T], Vec[T]) {
	a := make([]T, n)
	b := make([]T, n)
	for i := 0; i < n && 2*i+1 < len(src); i++ {
		a[i] = src[2*i]
		b[i] = src[2*i+1]
	}
	return Vec[T]{data: a}, Vec[T]{data: b}
}

// LoadInterleaved3 loads interleaved triples and deinterleaves them into
// three n-lane vectors.
//
//	[a0, b0, c0, a1, b1, c1, ...] -> [a0, a1, ...], [b0, b1, ...], [c0, c1, ...]
func LoadInterleaved3[T Lanes](src []T, n int) (Vec[T], Vec[T], Vec[T]) {
	a := make([]T, n)
	b := make([]T, n)
	c := make([]T, n)
	for i := 0; i < n && 3*i+2 < len(src); i++ {
		a[i] = src[3*i]
		b[i] = src[3*i+1]
		c[i] = src[3*i+2]
	}
	return Vec[T]{data: a}, Vec[T]{data: b}, Vec[T]{data: c}
}

// StoreInterleaved2 stores two vectors interleaved to dst.
// This is the inverse of LoadInterleaved2.
func StoreInterleaved2[T Lanes](a, b Vec[T], dst []T) {
	n := min(len(b.data), len(a.data))
	for i := 0; i < n && 2*i+1 < len(dst); i++ {
		dst[2*i] = a.data[i]
		dst[2*i+1] = b.data[i]
	}
}

// StoreInterleaved3 stores three vectors interleaved to dst.
// This is the inverse of LoadInterleaved3.
func StoreInterleaved3[T Lanes](a, b, c Vec[T], dst []T) {
	n := min(len(c.data), min(len(b.data), len(a.data)))
	for i := 0; i < n && 3*i+2 < len(dst); i++ {
		dst[3*i] = a.data[i]
		dst[3*i+1] = b.data[i]
		dst[3*i+2] = c.data[i]
	}
}
