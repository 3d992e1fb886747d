// Package mem provides aligned buffers for SIMD lane data.
//
// # Aligned Allocation
//
// AllocAligned returns byte slices whose first element sits on an address
// divisible by the requested alignment, which lets SIMD loads and stores
// use their aligned forms.
//
// # Owned Buffers
//
// Allocator hands out Buffer handles. A Buffer carries its requested size
// and alignment as fields, so the size is recoverable from the handle with
// SizeOf, and releasing it twice is reported instead of corrupting state.
// The allocator keeps live byte and buffer counts, which tests use to prove
// that error paths do not leak.
package mem
