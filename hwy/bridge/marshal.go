package bridge

import (
	"fmt"

	"github.com/ajroetker/hwysimd/hwy/dtype"
	"github.com/ajroetker/hwysimd/hwy/mem"
	"go.uber.org/zap"
)

// Marshaller converts host values to Data and back for one register
// width. It owns no per-call state and may be shared by the calls of one
// module.
type Marshaller struct {
	reg   *dtype.Registry
	alloc *mem.Allocator
	vt    *VectorType
	log   *zap.Logger
}

// NewMarshaller returns a marshaller resolving lane counts through reg
// and allocating sequence buffers from alloc.
func NewMarshaller(reg *dtype.Registry, alloc *mem.Allocator) *Marshaller {
	return &Marshaller{reg: reg, alloc: alloc, log: Logger()}
}

// Registry returns the type registry of the marshaller.
func (m *Marshaller) Registry() *dtype.Registry { return m.reg }

// Allocator returns the allocator sequence buffers come from.
func (m *Marshaller) Allocator() *mem.Allocator { return m.alloc }

// VectorType returns the registered container type, or nil.
func (m *Marshaller) VectorType() *VectorType { return m.vt }

// RegisterVectorType publishes the container type under name. It can be
// called once.
func (m *Marshaller) RegisterVectorType(name string) (*VectorType, error) {
	if m.vt != nil {
		return nil, internalErrorf("vector type already registered as %q", m.vt.name)
	}
	m.vt = &VectorType{name: name, reg: m.reg}
	m.log.Debug("registered vector type", zap.String("name", name), zap.Int("width", m.reg.Width()))
	return m.vt, nil
}

// Decode converts a host value into Data of kind t.
//
//   - scalar kinds take a host number
//   - sequence kinds take an ordered collection of at least one register of
//     lanes
//   - vector kinds take a *Vector created by this marshaller
//   - pair and triple kinds take a Tuple of exactly 2 or 3 such vectors
func (m *Marshaller) Decode(obj any, t dtype.DataType) (Data, error) {
	switch t.Class() {
	case dtype.ClassScalar:
		bits, err := decodeScalar(obj, t)
		if err != nil {
			return nil, err
		}
		return ScalarData{T: t, Bits: bits}, nil
	case dtype.ClassSequence:
		d, err := m.decodeSequence(obj, t)
		if err != nil {
			return nil, err
		}
		return d, nil
	case dtype.ClassVector:
		d, err := m.vectorData(obj, t)
		if err != nil {
			return nil, err
		}
		return d, nil
	case dtype.ClassVectorX2:
		regs, err := m.decodeVectors(obj, t, 2)
		if err != nil {
			return nil, err
		}
		return VecX2Data{T: t, Regs: [2]Register(regs)}, nil
	case dtype.ClassVectorX3:
		regs, err := m.decodeVectors(obj, t, 3)
		if err != nil {
			return nil, err
		}
		return VecX3Data{T: t, Regs: [3]Register(regs)}, nil
	default:
		return nil, internalErrorf("unhandled obj2data type id:%d, name:%s", uint8(t), t)
	}
}

func (m *Marshaller) decodeVectors(obj any, t dtype.DataType, n int) ([]Register, error) {
	vt := t.ToVector()
	tup, ok := obj.(Tuple)
	if !ok || len(tup) != n {
		return nil, typeErrorf("a tuple of %d vector type %s is required", n, vt)
	}
	regs := make([]Register, n)
	for i, el := range tup {
		d, err := m.vectorData(el, vt)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		regs[i] = d.Reg
	}
	return regs, nil
}

// Encode converts Data into a host value: a number for scalars, a List for
// sequences, a *Vector for vectors and a Tuple of vectors for pairs and
// triples.
func (m *Marshaller) Encode(d Data) (any, error) {
	var (
		out any
		err error
	)
	switch x := d.(type) {
	case ScalarData:
		if x.T.Class() == dtype.ClassScalar {
			return encodeScalar(x.Bits, x.T), nil
		}
	case SeqData:
		if x.T.Class() == dtype.ClassSequence {
			out, err = m.encodeSequence(x)
			return result(out, err)
		}
	case VecData:
		out, err = m.newVector(x)
		return result(out, err)
	case VecX2Data:
		if x.T.Class() == dtype.ClassVectorX2 {
			out, err = m.encodeVectors(x.T, x.Regs[:])
			return result(out, err)
		}
	case VecX3Data:
		if x.T.Class() == dtype.ClassVectorX3 {
			out, err = m.encodeVectors(x.T, x.Regs[:])
			return result(out, err)
		}
	}
	t := typeOf(d)
	return nil, internalErrorf("unhandled data2obj type id:%d, name:%s", uint8(t), t)
}

// result drops the typed value of a failed conversion.
func result(out any, err error) (any, error) {
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (m *Marshaller) encodeVectors(t dtype.DataType, regs []Register) (Tuple, error) {
	out := make(Tuple, len(regs))
	for i, r := range regs {
		v, err := m.newVector(VecData{T: t.ToVector(), Reg: r})
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
