package bridge

import (
	"errors"
	"fmt"

	"github.com/ajroetker/hwysimd/hwy"
	"github.com/ajroetker/hwysimd/hwy/dtype"
	"github.com/ajroetker/hwysimd/hwy/mem"
)

// decodeSequence packs a host collection into a newly allocated buffer of
// t's lanes. The collection must hold at least one register of lanes; the
// buffer is sized to the whole collection.
func (m *Marshaller) decodeSequence(obj any, t dtype.DataType) (SeqData, error) {
	info := m.reg.Info(t)
	elems, ok := items(obj)
	if !ok {
		return SeqData{}, typeErrorf("a sequence %s is required, got %T", t, obj)
	}
	if len(elems) < info.NLanes {
		return SeqData{}, &LengthError{Min: info.NLanes, Given: len(elems)}
	}
	buf, err := m.alloc.Allocate(len(elems) * info.LaneSize)
	if err != nil {
		if errors.Is(err, mem.ErrOutOfMemory) {
			return SeqData{}, fmt.Errorf("%w: %w", ErrMemory, err)
		}
		return SeqData{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}
	scalar := t.ToScalar()
	b := buf.Bytes()
	for i, el := range elems {
		bits, err := decodeScalar(el, scalar)
		if err != nil {
			_ = m.alloc.Release(buf)
			return SeqData{}, fmt.Errorf("item %d: %w", i, err)
		}
		hwy.PutLane(b[i*info.LaneSize:], info.LaneSize, bits)
	}
	return SeqData{T: t, Buf: buf}, nil
}

// seqValues returns the lanes of d as host values.
func seqValues(d SeqData) []any {
	size := d.T.LaneSize()
	scalar := d.T.ToScalar()
	b := d.Buf.Bytes()
	out := make([]any, d.Len())
	for i := range out {
		out[i] = encodeScalar(hwy.GetLane(b[i*size:], size), scalar)
	}
	return out
}

func (m *Marshaller) encodeSequence(d SeqData) (List, error) {
	if d.Buf == nil || d.Buf.Released() {
		return nil, internalErrorf("sequence %s has no buffer", d.T)
	}
	return List(seqValues(d)), nil
}

// EncodeInto writes the lanes of a sequence value into an existing host
// collection, overwriting min(len(dst), lanes) elements by index. dst may
// be a List, a []any, a pointer to an array or a numeric slice.
//
// Every element is checked before any is written, so on error dst is left
// unchanged.
func (m *Marshaller) EncodeInto(dst any, d Data) error {
	apply, err := m.prepareEncodeInto(dst, d)
	if err != nil {
		return err
	}
	apply()
	return nil
}

// prepareEncodeInto validates a write-back of d into dst and returns the
// function that performs it.
func (m *Marshaller) prepareEncodeInto(dst any, d Data) (func(), error) {
	seq, ok := d.(SeqData)
	if !ok || seq.T.Class() != dtype.ClassSequence {
		t := typeOf(d)
		return nil, internalErrorf("expected a sequence data type, given(%s:%d)", t, uint8(t))
	}
	if seq.Buf == nil || seq.Buf.Released() {
		return nil, internalErrorf("sequence %s has no buffer", seq.T)
	}
	return prepareAssign(dst, seqValues(seq))
}

// Clear releases the buffer owned by a sequence value. It is a no-op for
// every other kind, for a nil buffer and for a buffer already released.
func (m *Marshaller) Clear(d Data) error {
	seq, ok := d.(SeqData)
	if !ok || seq.Buf == nil || seq.Buf.Released() {
		return nil
	}
	if err := m.alloc.Release(seq.Buf); err != nil {
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}
	return nil
}
