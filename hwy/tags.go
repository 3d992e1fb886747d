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

import (
	"strconv"
	"unsafe"
)

// Tag represents a vector size tag that determines how many lanes
// are used in SIMD operations. Target implements Tag.
type Tag interface {
	// Width returns the width in bytes (16 for 128-bit, 32 for 256-bit, etc.)
	Width() int

	// Name returns a human-readable name for this tag ("sse2", "avx2", etc.)
	Name() string
}

// FixedTag is a Tag with a fixed width, used when a caller needs a
// register size that does not correspond to a detected target.
type FixedTag struct {
	Bytes int
}

// Width returns the fixed width in bytes.
func (t FixedTag) Width() int {
	return t.Bytes
}

// Name returns "<bits>bit".
func (t FixedTag) Name() string {
	return strconv.Itoa(t.Bytes*8) + "bit"
}

// LaneSize returns the size in bytes of one lane of type T.
func LaneSize[T Lanes]() int {
	var dummy T
	return int(unsafe.Sizeof(dummy))
}

// MaxLanesOf returns the number of T values that fit in one register of tag.
func MaxLanesOf[T Lanes](tag Tag) int {
	return tag.Width() / LaneSize[T]()
}
