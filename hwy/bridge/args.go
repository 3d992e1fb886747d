package bridge

import (
	"errors"
	"strings"

	"github.com/ajroetker/hwysimd/hwy/dtype"
)

// Signature is the ordered list of DataTypes a call accepts.
type Signature []dtype.DataType

func (s Signature) String() string {
	names := make([]string, len(s))
	for i, t := range s {
		names[i] = t.String()
	}
	return "(" + strings.Join(names, ", ") + ")"
}

// Arg is one bound argument slot.
type Arg struct {
	Type dtype.DataType
	// Obj is the host value the slot was bound from.
	Obj any
	// Data is nil until the slot decodes successfully, and again after
	// Clear.
	Data Data
}

// Args is the ordered set of slots bound for one call.
type Args struct {
	Slots []Arg
	m     *Marshaller
}

// Len returns the number of slots.
func (a *Args) Len() int { return len(a.Slots) }

// Data returns the decoded value of every slot.
func (a *Args) Data() []Data {
	out := make([]Data, len(a.Slots))
	for i, s := range a.Slots {
		out[i] = s.Data
	}
	return out
}

// Clear releases the data of every slot. It can be called any number of
// times; each buffer is released once.
func (a *Args) Clear() error {
	if a == nil {
		return nil
	}
	var errs []error
	for i := range a.Slots {
		if a.Slots[i].Data == nil {
			continue
		}
		errs = append(errs, a.m.Clear(a.Slots[i].Data))
		a.Slots[i].Data = nil
	}
	return errors.Join(errs...)
}

// Bind matches payload against sig and decodes every slot in order.
//
// The payload is nil for an empty signature, a Tuple holding exactly one
// element per slot, or a bare value for a single-slot signature. Binding
// stops at the first slot that fails to decode; the partially bound Args
// is returned with the error and must still be cleared by the caller.
func (m *Marshaller) Bind(payload any, sig Signature) (*Args, error) {
	args := &Args{m: m, Slots: make([]Arg, len(sig))}
	for i, t := range sig {
		args.Slots[i].Type = t
	}

	var objs []any
	switch x := payload.(type) {
	case nil:
		if len(sig) != 0 {
			return args, &ArityError{Expected: len(sig), Given: 0}
		}
	case Tuple:
		if len(x) != len(sig) {
			return args, &ArityError{Expected: len(sig), Given: len(x)}
		}
		objs = x
	default:
		if len(sig) != 1 {
			return args, &ArityError{Expected: len(sig), Given: 1}
		}
		objs = []any{payload}
	}

	for i, obj := range objs {
		args.Slots[i].Obj = obj
		d, err := m.Decode(obj, sig[i])
		if err != nil {
			return args, err
		}
		args.Slots[i].Data = d
	}
	return args, nil
}
