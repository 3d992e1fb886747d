package bridge

import (
	"github.com/ajroetker/hwysimd/hwy"
	"github.com/ajroetker/hwysimd/hwy/dtype"
	"github.com/ajroetker/hwysimd/hwy/mem"
)

// Data is the lane-level form of one argument or result. Exactly one of
// ScalarData, SeqData, VecData, VecX2Data or VecX3Data implements it, and
// each carries its own DataType.
type Data interface {
	Type() dtype.DataType
	isData()
}

// ScalarData holds one lane. The lane bit pattern sits in the low
// LaneSize bytes of Bits.
type ScalarData struct {
	T    dtype.DataType
	Bits uint64
}

// SeqData holds a variable-length run of lanes. It owns Buf, which must be
// released exactly once through Marshaller.Clear.
type SeqData struct {
	T   dtype.DataType
	Buf *mem.Buffer
}

// VecData holds one register image. For boolean kinds Reg holds the mask
// image: one bit per lane, packed from the least significant bit of byte 0.
type VecData struct {
	T   dtype.DataType
	Reg Register
}

// VecX2Data holds two independent register images.
type VecX2Data struct {
	T    dtype.DataType
	Regs [2]Register
}

// VecX3Data holds three independent register images.
type VecX3Data struct {
	T    dtype.DataType
	Regs [3]Register
}

func (d ScalarData) Type() dtype.DataType { return d.T }
func (d SeqData) Type() dtype.DataType    { return d.T }
func (d VecData) Type() dtype.DataType    { return d.T }
func (d VecX2Data) Type() dtype.DataType  { return d.T }
func (d VecX3Data) Type() dtype.DataType  { return d.T }

func (ScalarData) isData() {}
func (SeqData) isData()    {}
func (VecData) isData()    {}
func (VecX2Data) isData()  {}
func (VecX3Data) isData()  {}

// Len returns the number of lanes in the sequence.
func (d SeqData) Len() int {
	size := d.T.LaneSize()
	if size == 0 {
		return 0
	}
	return mem.SizeOf(d.Buf) / size
}

// Register is the byte image of one hardware register, aligned to its
// width.
type Register []byte

// NewRegister returns a zeroed register of width bytes aligned to width.
func NewRegister(width int) Register {
	return Register(mem.AllocAligned(width, width))
}

// Clone returns an aligned copy of r.
func (r Register) Clone() Register {
	c := NewRegister(len(r))
	copy(c, r)
	return c
}

// Lane returns lane i of a register holding size-byte lanes.
func (r Register) Lane(i, size int) uint64 {
	return hwy.GetLane(r[i*size:], size)
}

// SetLane stores the low size bytes of u into lane i.
func (r Register) SetLane(i, size int, u uint64) {
	hwy.PutLane(r[i*size:], size, u)
}

// MaskBit returns bit i of a mask image.
func (r Register) MaskBit(i int) bool {
	return r[i/8]&(1<<(i%8)) != 0
}

// SetMaskBit sets or clears bit i of a mask image.
func (r Register) SetMaskBit(i int, v bool) {
	if v {
		r[i/8] |= 1 << (i % 8)
	} else {
		r[i/8] &^= 1 << (i % 8)
	}
}

// VecOf views the first n lanes of r as a vector.
func VecOf[T hwy.Lanes](r Register, n int) hwy.Vec[T] {
	size := hwy.LaneSize[T]()
	lanes := make([]T, n)
	for i := range lanes {
		lanes[i] = hwy.FromLaneBits[T](r.Lane(i, size))
	}
	return hwy.FromSlice(lanes)
}

// RegisterOf stores v into a new register of width bytes. Lanes beyond
// the register are dropped; unused bytes are zero.
func RegisterOf[T hwy.Lanes](v hwy.Vec[T], width int) Register {
	r := NewRegister(width)
	size := hwy.LaneSize[T]()
	for i, x := range v.Data() {
		if (i+1)*size > width {
			break
		}
		r.SetLane(i, size, hwy.LaneBits(x))
	}
	return r
}

// MaskOf views the first n bits of a mask image.
func MaskOf[T hwy.Lanes](r Register, n int) hwy.Mask[T] {
	bits := make([]bool, n)
	for i := range bits {
		bits[i] = r.MaskBit(i)
	}
	return hwy.MaskFromBits[T](bits)
}

// MaskRegister packs m into a new mask image of width bytes.
func MaskRegister[T hwy.Lanes](m hwy.Mask[T], width int) Register {
	r := NewRegister(width)
	for i, bit := range m.Bits() {
		r.SetMaskBit(i, bit)
	}
	return r
}

// SliceOf copies the lanes of a sequence buffer into a slice.
func SliceOf[T hwy.Lanes](d SeqData) []T {
	size := hwy.LaneSize[T]()
	b := d.Buf.Bytes()
	out := make([]T, len(b)/size)
	for i := range out {
		out[i] = hwy.FromLaneBits[T](hwy.GetLane(b[i*size:], size))
	}
	return out
}

// WriteSlice stores src into the leading lanes of a sequence buffer and
// returns the number of lanes written.
func WriteSlice[T hwy.Lanes](d SeqData, src []T) int {
	size := hwy.LaneSize[T]()
	b := d.Buf.Bytes()
	n := min(len(src), len(b)/size)
	for i := range n {
		hwy.PutLane(b[i*size:], size, hwy.LaneBits(src[i]))
	}
	return n
}

// ScalarOf reinterprets a scalar lane as T.
func ScalarOf[T hwy.Lanes](d ScalarData) T {
	return hwy.FromLaneBits[T](d.Bits)
}

// typeOf returns the DataType of d, or Invalid for nil.
func typeOf(d Data) dtype.DataType {
	if d == nil {
		return dtype.Invalid
	}
	return d.Type()
}
