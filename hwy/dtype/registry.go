package dtype

import (
	"errors"
	"fmt"
	"math/bits"
)

// ErrInvalidWidth is returned by NewRegistry for unusable register widths.
var ErrInvalidWidth = errors.New("dtype: register width must be a power of two between 8 and 256 bytes")

// Info is the per-DataType metadata resolved for one register width.
type Info struct {
	Type     DataType
	Name     string
	LaneSize int
	// NLanes is the register lane count for sequence and vector kinds and
	// 1 for scalars. For sequences it is the minimum accepted length.
	NLanes int
	Signed bool
	Float  bool
	Bool   bool
	Class  Class
}

// Registry resolves Info for every DataType at a fixed register width.
// It is immutable after NewRegistry and safe for concurrent reads.
type Registry struct {
	width int
	infos [numTypes]Info
}

// NewRegistry builds the registry for registers of width bytes.
func NewRegistry(width int) (*Registry, error) {
	if width < 8 || width > 256 || bits.OnesCount(uint(width)) != 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWidth, width)
	}
	r := &Registry{width: width}
	r.infos[Invalid] = Info{Type: Invalid, Name: table[Invalid].name}
	for t := DataType(1); t < numTypes; t++ {
		a := table[t]
		nlanes := 1
		if a.class != ClassScalar {
			nlanes = width / a.laneSize
		}
		r.infos[t] = Info{
			Type:     t,
			Name:     a.name,
			LaneSize: a.laneSize,
			NLanes:   nlanes,
			Signed:   a.signed,
			Float:    a.float,
			Bool:     a.boolean,
			Class:    a.class,
		}
	}
	return r, nil
}

// MustRegistry is like NewRegistry but panics on an invalid width.
func MustRegistry(width int) *Registry {
	r, err := NewRegistry(width)
	if err != nil {
		panic(err)
	}
	return r
}

// Width returns the register width in bytes.
func (r *Registry) Width() int {
	return r.width
}

// Info returns the metadata of t. Undefined identifiers yield the Info of
// Invalid, whose Class is ClassInvalid.
func (r *Registry) Info(t DataType) Info {
	if !t.Valid() {
		return r.infos[Invalid]
	}
	return r.infos[t]
}

// NLanes returns the register lane count of t.
func (r *Registry) NLanes(t DataType) int {
	return r.Info(t).NLanes
}
