package mem

import (
	"errors"
	"fmt"
	"math/bits"
	"sync/atomic"
	"unsafe"

	"fortio.org/safecast"
)

// DefaultAlignment is the byte alignment required for AVX-512 (64 bytes).
const DefaultAlignment = 64

var (
	// ErrOutOfMemory is returned when an allocation would exceed the
	// allocator's limit.
	ErrOutOfMemory = errors.New("mem: out of memory")

	// ErrInvalidSize is returned for negative allocation sizes.
	ErrInvalidSize = errors.New("mem: invalid allocation size")

	// ErrReleased is returned when a buffer is released more than once.
	ErrReleased = errors.New("mem: buffer already released")

	// ErrForeign is returned when a buffer is released to an allocator
	// that did not allocate it.
	ErrForeign = errors.New("mem: buffer not owned by this allocator")
)

// AllocAligned allocates a byte slice of the given size aligned to align
// bytes. align must be a power of two.
//
// Note: This function allocates slightly more memory than requested to ensure alignment.
// The underlying array is kept alive by the returned slice.
func AllocAligned(size, align int) []byte {
	if size <= 0 {
		return nil
	}

	// Allocate size + alignment to ensure we can find an aligned offset
	buf := make([]byte, size+align)

	ptr := unsafe.Pointer(&buf[0]) //nolint:gosec // unsafe is required for memory alignment
	addr := uintptr(ptr)
	mask := uintptr(align - 1)
	offset := (uintptr(align) - (addr & mask)) & mask

	return buf[offset : offset+uintptr(size) : offset+uintptr(size)]
}

// Buffer is an aligned allocation owned by exactly one holder.
type Buffer struct {
	data     []byte
	size     int
	align    int
	owner    *Allocator
	released bool
}

// Bytes returns the buffer contents. It is nil after Release.
func (b *Buffer) Bytes() []byte {
	if b == nil {
		return nil
	}
	return b.data
}

// Size returns the requested size in bytes.
func (b *Buffer) Size() int {
	if b == nil {
		return 0
	}
	return b.size
}

// Alignment returns the alignment the buffer was allocated with.
func (b *Buffer) Alignment() int {
	return b.align
}

// Released reports whether the buffer has been returned to its allocator.
func (b *Buffer) Released() bool {
	return b.released
}

// Addr returns the address of the first byte, or 0 for an empty buffer.
func (b *Buffer) Addr() uintptr {
	if b == nil || len(b.data) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(&b.data[0])) //nolint:gosec // address is only inspected
}

// SizeOf recovers the requested size of a buffer returned by Allocate.
func SizeOf(b *Buffer) int {
	return b.Size()
}

// Allocator hands out aligned buffers and tracks what is still live.
// It is safe for concurrent use.
type Allocator struct {
	align int
	limit int64

	liveBytes   atomic.Int64
	liveBuffers atomic.Int64
}

// Option configures an Allocator.
type Option func(*Allocator)

// WithAlignment sets the buffer alignment. Values that are not a power of
// two are rounded up to the next one.
func WithAlignment(align int) Option {
	return func(a *Allocator) {
		if align <= 0 {
			return
		}
		a.align = 1 << bits.Len(uint(align-1))
	}
}

// WithLimit caps the number of live bytes. Zero means unlimited.
func WithLimit(bytes int64) Option {
	return func(a *Allocator) {
		a.limit = bytes
	}
}

// NewAllocator returns an allocator with DefaultAlignment and no limit
// unless overridden by opts.
func NewAllocator(opts ...Option) *Allocator {
	a := &Allocator{align: DefaultAlignment}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Alignment returns the alignment of every buffer this allocator returns.
func (a *Allocator) Alignment() int {
	return a.align
}

// Allocate returns a buffer of n bytes aligned to Alignment.
func (a *Allocator) Allocate(n int) (*Buffer, error) {
	size, err := safecast.Conv[int64](n)
	if err != nil || size < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}
	live := a.liveBytes.Add(size)
	if a.limit > 0 && live > a.limit {
		a.liveBytes.Add(-size)
		return nil, fmt.Errorf("%w: %d bytes requested, %d of %d in use", ErrOutOfMemory, n, live-size, a.limit)
	}
	a.liveBuffers.Add(1)

	data := AllocAligned(n, a.align)
	if data == nil {
		data = []byte{}
	}
	return &Buffer{data: data, size: n, align: a.align, owner: a}, nil
}

// Release returns b to the allocator. Releasing nil is a no-op.
func (a *Allocator) Release(b *Buffer) error {
	if b == nil {
		return nil
	}
	if b.owner != a {
		return ErrForeign
	}
	if b.released {
		return ErrReleased
	}
	b.released = true
	b.data = nil
	a.liveBytes.Add(-int64(b.size))
	a.liveBuffers.Add(-1)
	return nil
}

// LiveBytes returns the number of bytes allocated and not yet released.
func (a *Allocator) LiveBytes() int64 {
	return a.liveBytes.Load()
}

// LiveBuffers returns the number of buffers allocated and not yet released.
func (a *Allocator) LiveBuffers() int64 {
	return a.liveBuffers.Load()
}
