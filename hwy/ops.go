// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package hwy

// This file provides the pure Go lane operations the reference kernels are
// built on. Every constructor takes the lane count explicitly because one
// process serves several targets with different register widths.

// Load creates an n-lane vector from the first n elements of src.
// Lanes past the end of src are zero.
func Load[T Lanes](src []T, n int) Vec[T] {
	data := make([]T, n)
	copy(data, src)
	return Vec[T]{data: data}
}

// Store writes a vector's data to a slice.
func Store[T Lanes](v Vec[T], dst []T) {
	n := min(len(dst), len(v.data))
	copy(dst[:n], v.data[:n])
}

// Set creates an n-lane vector with all lanes set to the same value.
func Set[T Lanes](n int, value T) Vec[T] {
	data := make([]T, n)
	for i := range data {
		data[i] = value
	}
	return Vec[T]{data: data}
}

// Zero creates an n-lane vector with all lanes set to zero.
func Zero[T Lanes](n int) Vec[T] {
	return Vec[T]{data: make([]T, n)}
}

func zip2[T Lanes](a, b Vec[T], fn func(x, y T) T) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := range n {
		result[i] = fn(a.data[i], b.data[i])
	}
	return Vec[T]{data: result}
}

func cmp2[T Lanes](a, b Vec[T], fn func(x, y T) bool) Mask[T] {
	n := min(len(b.data), len(a.data))
	bits := make([]bool, n)
	for i := range n {
		bits[i] = fn(a.data[i], b.data[i])
	}
	return Mask[T]{bits: bits}
}

// Add performs element-wise addition. Integer lanes wrap.
func Add[T Lanes](a, b Vec[T]) Vec[T] {
	return zip2(a, b, func(x, y T) T { return x + y })
}

// Sub performs element-wise subtraction. Integer lanes wrap.
func Sub[T Lanes](a, b Vec[T]) Vec[T] {
	return zip2(a, b, func(x, y T) T { return x - y })
}

// Mul performs element-wise multiplication, keeping the low half of
// integer products.
func Mul[T Lanes](a, b Vec[T]) Vec[T] {
	return zip2(a, b, func(x, y T) T { return x * y })
}

// Div performs element-wise division.
func Div[T Floats](a, b Vec[T]) Vec[T] {
	return zip2(a, b, func(x, y T) T { return x / y })
}

// Min returns the element-wise minimum.
func Min[T Lanes](a, b Vec[T]) Vec[T] {
	return zip2(a, b, func(x, y T) T { return min(x, y) })
}

// Max returns the element-wise maximum.
func Max[T Lanes](a, b Vec[T]) Vec[T] {
	return zip2(a, b, func(x, y T) T { return max(x, y) })
}

// And performs a bitwise AND on the lane bit patterns.
func And[T Lanes](a, b Vec[T]) Vec[T] {
	return zip2(a, b, func(x, y T) T { return fromLaneBits[T](laneBits(x) & laneBits(y)) })
}

// Or performs a bitwise OR on the lane bit patterns.
func Or[T Lanes](a, b Vec[T]) Vec[T] {
	return zip2(a, b, func(x, y T) T { return fromLaneBits[T](laneBits(x) | laneBits(y)) })
}

// Xor performs a bitwise XOR on the lane bit patterns.
func Xor[T Lanes](a, b Vec[T]) Vec[T] {
	return zip2(a, b, func(x, y T) T { return fromLaneBits[T](laneBits(x) ^ laneBits(y)) })
}

// AndNot computes ^a & b on the lane bit patterns.
func AndNot[T Lanes](a, b Vec[T]) Vec[T] {
	return zip2(a, b, func(x, y T) T { return fromLaneBits[T](^laneBits(x) & laneBits(y)) })
}

// Not inverts every bit of every lane.
func Not[T Lanes](v Vec[T]) Vec[T] {
	result := make([]T, len(v.data))
	for i, x := range v.data {
		result[i] = fromLaneBits[T](^laneBits(x))
	}
	return Vec[T]{data: result}
}

// ShiftLeft shifts every lane left by bits.
func ShiftLeft[T Integers](v Vec[T], bits int) Vec[T] {
	result := make([]T, len(v.data))
	for i, x := range v.data {
		result[i] = x << bits
	}
	return Vec[T]{data: result}
}

// ShiftRight shifts every lane right by bits.
// Arithmetic for signed lanes, logical for unsigned lanes.
func ShiftRight[T Integers](v Vec[T], bits int) Vec[T] {
	result := make([]T, len(v.data))
	for i, x := range v.data {
		result[i] = x >> bits
	}
	return Vec[T]{data: result}
}

// Equal performs element-wise equality comparison.
func Equal[T Lanes](a, b Vec[T]) Mask[T] {
	return cmp2(a, b, func(x, y T) bool { return x == y })
}

// NotEqual performs element-wise inequality comparison.
func NotEqual[T Lanes](a, b Vec[T]) Mask[T] {
	return cmp2(a, b, func(x, y T) bool { return x != y })
}

// LessThan performs element-wise less-than comparison.
func LessThan[T Lanes](a, b Vec[T]) Mask[T] {
	return cmp2(a, b, func(x, y T) bool { return x < y })
}

// GreaterThan performs element-wise greater-than comparison.
func GreaterThan[T Lanes](a, b Vec[T]) Mask[T] {
	return cmp2(a, b, func(x, y T) bool { return x > y })
}

// LessEqual performs element-wise less-than-or-equal comparison.
func LessEqual[T Lanes](a, b Vec[T]) Mask[T] {
	return cmp2(a, b, func(x, y T) bool { return x <= y })
}

// GreaterEqual performs element-wise greater-than-or-equal comparison.
func GreaterEqual[T Lanes](a, b Vec[T]) Mask[T] {
	return cmp2(a, b, func(x, y T) bool { return x >= y })
}

// IfThenElse selects a where mask is true and b elsewhere.
func IfThenElse[T Lanes](mask Mask[T], a, b Vec[T]) Vec[T] {
	n := min(len(b.data), min(len(a.data), len(mask.bits)))
	result := make([]T, n)
	for i := range n {
		if mask.bits[i] {
			result[i] = a.data[i]
		} else {
			result[i] = b.data[i]
		}
	}
	return Vec[T]{data: result}
}
