package bridge

import (
	"fmt"
	"iter"
	"strings"

	"github.com/ajroetker/hwysimd/hwy/dtype"
)

// VectorType is the container type published by one module. Containers
// are only accepted by the module whose VectorType created them.
type VectorType struct {
	name string
	reg  *dtype.Registry
}

// Name returns the published type name.
func (vt *VectorType) Name() string { return vt.name }

// Width returns the register width of containers of this type.
func (vt *VectorType) Width() int { return vt.reg.Width() }

// Vector is a read-only container holding one register of lanes. It
// behaves like a fixed-length host sequence for indexing, iteration,
// printing and comparison.
//
// Boolean kinds are stored as unsigned lanes (all-ones or zero) and are
// reported as bool items.
type Vector struct {
	t    dtype.DataType
	vt   *VectorType
	data Register
}

// Type returns the DataType of the container.
func (v *Vector) Type() dtype.DataType { return v.t }

// VectorType returns the type that created the container.
func (v *Vector) VectorType() *VectorType { return v.vt }

// Name returns the display name of the container's DataType, e.g. "vu8".
func (v *Vector) Name() string { return v.t.String() }

// Len returns the number of lanes. A Vector not created by a marshaller
// has none.
func (v *Vector) Len() int {
	if v == nil || v.vt == nil || len(v.data) == 0 {
		return 0
	}
	return v.vt.reg.NLanes(v.t)
}

func (v *Vector) item(i int) any {
	size := v.t.LaneSize()
	bits := v.data.Lane(i, size)
	if v.t.IsBool() {
		return bits != 0
	}
	return encodeScalar(bits, v.t.ToScalar())
}

// Item returns lane i. Negative indices count from the end.
func (v *Vector) Item(i int) (any, error) {
	n := v.Len()
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return nil, fmt.Errorf("%w: list index out of range", ErrIndex)
	}
	return v.item(i), nil
}

// List returns the lanes as a new List.
func (v *Vector) List() List {
	out := make(List, v.Len())
	for i := range out {
		out[i] = v.item(i)
	}
	return out
}

// Tuple returns the lanes as a new Tuple.
func (v *Vector) Tuple() Tuple {
	return Tuple(v.List())
}

// All returns an iterator over lane indices and values.
func (v *Vector) All() iter.Seq2[int, any] {
	return func(yield func(int, any) bool) {
		for i := range v.Len() {
			if !yield(i, v.item(i)) {
				return
			}
		}
	}
}

// Contains reports whether any lane equals el.
func (v *Vector) Contains(el any) bool {
	for _, x := range v.All() {
		if valuesEqual(x, el) {
			return true
		}
	}
	return false
}

// String renders the lanes like a host list, e.g. "[1, 2, 3]".
func (v *Vector) String() string {
	return formatItems(v.List())
}

func formatItems(vals []any) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, x := range vals {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprint(&b, x)
	}
	b.WriteByte(']')
	return b.String()
}

// CompareOp selects a rich comparison.
type CompareOp int

const (
	LT CompareOp = iota
	LE
	EQ
	NE
	GT
	GE
)

func (op CompareOp) String() string {
	switch op {
	case LT:
		return "<"
	case LE:
		return "<="
	case EQ:
		return "=="
	case NE:
		return "!="
	case GT:
		return ">"
	case GE:
		return ">="
	default:
		return "?"
	}
}

func (op CompareOp) apply(c int) bool {
	switch op {
	case LT:
		return c < 0
	case LE:
		return c <= 0
	case EQ:
		return c == 0
	case NE:
		return c != 0
	case GT:
		return c > 0
	default:
		return c >= 0
	}
}

// Compare compares the container with another container or host
// collection in lexicographic sequence order: the first unequal pair of
// items decides, otherwise the shorter sequence orders first. Equality
// against a value that is not a collection is false; ordering against one
// is a TypeError.
func (v *Vector) Compare(other any, op CompareOp) (bool, error) {
	b, ok := items(other)
	if !ok {
		switch op {
		case EQ:
			return false, nil
		case NE:
			return true, nil
		default:
			return false, typeErrorf("'%s' not supported between %s and %T", op, v.Name(), other)
		}
	}
	return compareSeq(v.List(), b, op)
}

// Equal reports whether other holds the same items in the same order.
func (v *Vector) Equal(other any) bool {
	eq, _ := v.Compare(other, EQ)
	return eq
}

func compareSeq(a, b []any, op CompareOp) (bool, error) {
	for i := range min(len(a), len(b)) {
		if valuesEqual(a[i], b[i]) {
			continue
		}
		switch op {
		case EQ:
			return false, nil
		case NE:
			return true, nil
		}
		c, ordered, ok := compareValues(a[i], b[i])
		if !ok {
			return false, typeErrorf("'%s' not supported between %T and %T", op, a[i], b[i])
		}
		if !ordered {
			return false, nil
		}
		return op.apply(c), nil
	}
	return op.apply(len(a) - len(b)), nil
}

// newVector wraps a vector value in a container, converting a boolean mask
// image to unsigned lanes.
func (m *Marshaller) newVector(d VecData) (*Vector, error) {
	if d.T.Class() != dtype.ClassVector {
		return nil, internalErrorf("a vector type is required, got(%s:%d)", d.T, uint8(d.T))
	}
	if m.vt == nil {
		return nil, internalErrorf("vector type is not registered")
	}
	width := m.reg.Width()
	if len(d.Reg) != width {
		return nil, internalErrorf("register of %d bytes for %s, want %d", len(d.Reg), d.T, width)
	}
	v := &Vector{t: d.T, vt: m.vt}
	if !d.T.IsBool() {
		v.data = d.Reg.Clone()
		return v, nil
	}
	v.data = NewRegister(width)
	size := d.T.LaneSize()
	for i := range m.reg.NLanes(d.T) {
		if d.Reg.MaskBit(i) {
			v.data.SetLane(i, size, ^uint64(0))
		}
	}
	return v, nil
}

// vectorData extracts the register of a container created by this
// module, converting unsigned boolean lanes back to a mask image.
func (m *Marshaller) vectorData(obj any, t dtype.DataType) (VecData, error) {
	v, ok := obj.(*Vector)
	if !ok || v == nil || m.vt == nil || v.vt != m.vt {
		return VecData{}, typeErrorf("a vector type %s is required", t)
	}
	if v.t != t {
		return VecData{}, typeErrorf("a vector type %s is required, got(%s)", t, v.t)
	}
	if !t.IsBool() {
		return VecData{T: t, Reg: v.data.Clone()}, nil
	}
	reg := NewRegister(len(v.data))
	size := t.LaneSize()
	for i := range v.Len() {
		reg.SetMaskBit(i, v.data.Lane(i, size) != 0)
	}
	return VecData{T: t, Reg: reg}, nil
}

// NewVector builds a container of kind t from the first lanes of a host
// collection. Boolean kinds accept bools or numbers, where non-zero is
// true.
func (m *Marshaller) NewVector(t dtype.DataType, elems any) (*Vector, error) {
	if t.Class() != dtype.ClassVector {
		return nil, typeErrorf("a vector type is required, got %s", t)
	}
	if m.vt == nil {
		return nil, internalErrorf("vector type is not registered")
	}
	vals, ok := items(elems)
	if !ok {
		return nil, typeErrorf("a sequence is required, got %T", elems)
	}
	n := m.reg.NLanes(t)
	if len(vals) < n {
		return nil, &LengthError{Min: n, Given: len(vals)}
	}
	v := &Vector{t: t, vt: m.vt, data: NewRegister(m.reg.Width())}
	size := t.LaneSize()
	for i, el := range vals[:n] {
		var bits uint64
		if t.IsBool() {
			set, err := truth(el)
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
			if set {
				bits = ^uint64(0)
			}
		} else {
			var err error
			bits, err = decodeScalar(el, t.ToScalar())
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
		}
		v.data.SetLane(i, size, bits)
	}
	return v, nil
}

func truth(el any) (bool, error) {
	if b, ok := el.(bool); ok {
		return b, nil
	}
	c, ordered, ok := compareValues(el, 0)
	if !ok {
		return false, typeErrorf("a bool is required, got %T", el)
	}
	return !ordered || c != 0, nil
}
