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

// Saturated operations clamp results to the type's valid range instead of wrapping.

// SaturatedAdd performs element-wise addition with saturation.
// For example, uint8: 250 + 10 = 255 (not 4)
func SaturatedAdd[T Integers](a, b Vec[T]) Vec[T] {
	return zip2(a, b, saturatedAdd[T])
}

// SaturatedSub performs element-wise subtraction with saturation.
// For example, uint8: 10 - 20 = 0 (not 246)
func SaturatedSub[T Integers](a, b Vec[T]) Vec[T] {
	return zip2(a, b, saturatedSub[T])
}

// limits returns the smallest and largest value representable by T.
func limits[T Integers]() (lo, hi T) {
	size := LaneSize[T]() * 8
	var zero T
	if zero-1 > 0 {
		// unsigned
		return 0, ^zero
	}
	hi = T(1)<<(size-1) - 1
	lo = -hi - 1
	return lo, hi
}

func saturatedAdd[T Integers](a, b T) T {
	lo, hi := limits[T]()
	switch {
	case lo == 0:
		if a > hi-b {
			return hi
		}
	case b > 0 && a > hi-b:
		return hi
	case b < 0 && a < lo-b:
		return lo
	}
	return a + b
}

func saturatedSub[T Integers](a, b T) T {
	lo, hi := limits[T]()
	switch {
	case lo == 0:
		if a < b {
			return 0
		}
	case b < 0 && a > hi+b:
		return hi
	case b > 0 && a < lo+b:
		return lo
	}
	return a - b
}
