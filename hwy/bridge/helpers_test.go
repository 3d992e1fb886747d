package bridge

import (
	"testing"

	"github.com/ajroetker/hwysimd/hwy/dtype"
	"github.com/ajroetker/hwysimd/hwy/mem"
	"github.com/stretchr/testify/require"
)

func newTestMarshaller(t *testing.T, width int, opts ...mem.Option) *Marshaller {
	t.Helper()
	reg, err := dtype.NewRegistry(width)
	require.NoError(t, err)
	m := NewMarshaller(reg, mem.NewAllocator(append(opts, mem.WithAlignment(width))...))
	_, err = m.RegisterVectorType("vector")
	require.NoError(t, err)
	return m
}

// pattern returns a register of distinct non-zero bytes.
func pattern(width int, seed byte) Register {
	r := NewRegister(width)
	for i := range r {
		r[i] = seed + byte(i*7+1)
	}
	return r
}

func maskPattern(width, nlanes int) Register {
	r := NewRegister(width)
	for i := range nlanes {
		r.SetMaskBit(i, i%3 != 1)
	}
	return r
}

func seq(n int, start int) List {
	out := make(List, n)
	for i := range out {
		out[i] = start + i
	}
	return out
}
