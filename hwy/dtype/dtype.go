// Package dtype is the registry of data kinds that cross the boundary
// between host values and SIMD lane data.
//
// A DataType combines a lane type (u8 ... f64, or a boolean lane of 8 to 64
// bits) with a cardinality class: scalar, sequence, vector, vector pair or
// vector triple. Static attributes live in a compile-time table; the lane
// count of sequence and vector kinds depends on the register width and is
// resolved through a Registry.
package dtype

import "fmt"

// DataType identifies one supported data kind.
type DataType uint8

// Defined data types. The zero value is Invalid.
const (
	Invalid DataType = iota

	// scalars
	U8
	S8
	U16
	S16
	U32
	S32
	U64
	S64
	F32
	F64

	// sequences
	QU8
	QS8
	QU16
	QS16
	QU32
	QS32
	QU64
	QS64
	QF32
	QF64

	// vectors
	VU8
	VS8
	VU16
	VS16
	VU32
	VS32
	VU64
	VS64
	VF32
	VF64

	// boolean vectors
	VB8
	VB16
	VB32
	VB64

	// vector pairs
	VU8x2
	VS8x2
	VU16x2
	VS16x2
	VU32x2
	VS32x2
	VU64x2
	VS64x2
	VF32x2
	VF64x2

	// vector triples
	VU8x3
	VS8x3
	VU16x3
	VS16x3
	VU32x3
	VS32x3
	VU64x3
	VS64x3
	VF32x3
	VF64x3

	numTypes
)

// Class is the cardinality class of a DataType. It selects the codec that
// handles values of the type.
type Class uint8

const (
	ClassInvalid Class = iota
	ClassScalar
	ClassSequence
	ClassVector
	ClassVectorX2
	ClassVectorX3
)

func (c Class) String() string {
	switch c {
	case ClassScalar:
		return "scalar"
	case ClassSequence:
		return "sequence"
	case ClassVector:
		return "vector"
	case ClassVectorX2:
		return "vector-pair"
	case ClassVectorX3:
		return "vector-triple"
	default:
		return "invalid"
	}
}

// Registers returns how many vector registers a value of the class holds.
func (c Class) Registers() int {
	switch c {
	case ClassVector:
		return 1
	case ClassVectorX2:
		return 2
	case ClassVectorX3:
		return 3
	default:
		return 0
	}
}

type attrs struct {
	name     string
	laneSize int
	signed   bool
	float    bool
	boolean  bool
	class    Class
}

// lane types in table order; each class block repeats this order
var laneTypes = [...]struct {
	sfx      string
	laneSize int
	signed   bool
	float    bool
}{
	{"u8", 1, false, false},
	{"s8", 1, true, false},
	{"u16", 2, false, false},
	{"s16", 2, true, false},
	{"u32", 4, false, false},
	{"s32", 4, true, false},
	{"u64", 8, false, false},
	{"s64", 8, true, false},
	{"f32", 4, true, true},
	{"f64", 8, true, true},
}

const numLaneTypes = len(laneTypes)

var table [numTypes]attrs

var byName = make(map[string]DataType, numTypes)

func init() {
	table[Invalid] = attrs{name: "invalid"}
	blocks := []struct {
		first  DataType
		prefix string
		suffix string
		class  Class
	}{
		{U8, "", "", ClassScalar},
		{QU8, "q", "", ClassSequence},
		{VU8, "v", "", ClassVector},
		{VU8x2, "v", "x2", ClassVectorX2},
		{VU8x3, "v", "x3", ClassVectorX3},
	}
	for _, blk := range blocks {
		for i, lt := range laneTypes {
			table[blk.first+DataType(i)] = attrs{
				name:     blk.prefix + lt.sfx + blk.suffix,
				laneSize: lt.laneSize,
				signed:   lt.signed,
				float:    lt.float,
				class:    blk.class,
			}
		}
	}
	for i, size := range []int{1, 2, 4, 8} {
		table[VB8+DataType(i)] = attrs{
			name:     fmt.Sprintf("vb%d", size*8),
			laneSize: size,
			boolean:  true,
			class:    ClassVector,
		}
	}
	for t := DataType(1); t < numTypes; t++ {
		byName[table[t].name] = t
	}
}

// Valid reports whether t is a defined DataType.
func (t DataType) Valid() bool {
	return t > Invalid && t < numTypes
}

func (t DataType) attrs() attrs {
	if !t.Valid() {
		return table[Invalid]
	}
	return table[t]
}

// String returns the display name of t, e.g. "u8", "qf32", "vb16" or "vs32x2".
func (t DataType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("invalid(%d)", uint8(t))
	}
	return table[t].name
}

// Class returns the cardinality class of t.
func (t DataType) Class() Class { return t.attrs().class }

// LaneSize returns the size of one lane in bytes.
func (t DataType) LaneSize() int { return t.attrs().laneSize }

// IsSigned reports whether lanes are signed integers or floats.
func (t DataType) IsSigned() bool { return t.attrs().signed }

// IsFloat reports whether lanes are floating point.
func (t DataType) IsFloat() bool { return t.attrs().float }

// IsBool reports whether t is a boolean vector kind.
func (t DataType) IsBool() bool { return t.attrs().boolean }

// Suffix returns the lane type suffix of t ("u8", "f64", "b32").
func (t DataType) Suffix() string {
	s := t.ToScalar()
	if t.IsBool() {
		return fmt.Sprintf("b%d", t.LaneSize()*8)
	}
	return s.String()
}

// laneIndex returns the position of t's lane type within a class block.
// Boolean vectors map to the unsigned lane of the same width.
func (t DataType) laneIndex() (int, bool) {
	switch t.Class() {
	case ClassScalar:
		return int(t - U8), true
	case ClassSequence:
		return int(t - QU8), true
	case ClassVector:
		if t.IsBool() {
			return 2 * int(t-VB8), true
		}
		return int(t - VU8), true
	case ClassVectorX2:
		return int(t - VU8x2), true
	case ClassVectorX3:
		return int(t - VU8x3), true
	default:
		return 0, false
	}
}

func fromBlock(first DataType, t DataType) DataType {
	idx, ok := t.laneIndex()
	if !ok || idx >= numLaneTypes {
		return Invalid
	}
	return first + DataType(idx)
}

// ToScalar maps any variant to its scalar lane type. Boolean vectors map to
// the unsigned scalar of the same lane width.
func (t DataType) ToScalar() DataType { return fromBlock(U8, t) }

// ToSequence maps any variant to its sequence kind.
func (t DataType) ToSequence() DataType { return fromBlock(QU8, t) }

// ToVector maps any variant to its single-register vector kind. Boolean
// vectors map to themselves.
func (t DataType) ToVector() DataType {
	if t.IsBool() {
		return t
	}
	return fromBlock(VU8, t)
}

// ToUnsigned maps a boolean vector to the unsigned vector of equal lane
// width; other types are returned unchanged.
func (t DataType) ToUnsigned() DataType {
	if !t.IsBool() {
		return t
	}
	return fromBlock(VU8, t)
}

// ToVectorX returns the vector kind holding n registers (1, 2 or 3) with
// t's lane type. Boolean lanes have no pair or triple kinds.
func (t DataType) ToVectorX(n int) DataType {
	if t.IsBool() {
		if n == 1 {
			return t
		}
		return Invalid
	}
	switch n {
	case 1:
		return fromBlock(VU8, t)
	case 2:
		return fromBlock(VU8x2, t)
	case 3:
		return fromBlock(VU8x3, t)
	default:
		return Invalid
	}
}

// BoolOf returns the boolean vector kind whose lanes match t's lane width.
func (t DataType) BoolOf() DataType {
	switch t.LaneSize() {
	case 1:
		return VB8
	case 2:
		return VB16
	case 4:
		return VB32
	case 8:
		return VB64
	default:
		return Invalid
	}
}

// Lookup finds a DataType by display name.
func Lookup(name string) (DataType, bool) {
	t, ok := byName[name]
	return t, ok
}

// All returns every defined DataType in identifier order.
func All() []DataType {
	out := make([]DataType, 0, numTypes-1)
	for t := DataType(1); t < numTypes; t++ {
		out = append(out, t)
	}
	return out
}

// LaneTypes returns the scalar kinds in table order.
func LaneTypes() []DataType {
	out := make([]DataType, numLaneTypes)
	for i := range out {
		out[i] = U8 + DataType(i)
	}
	return out
}
