package intrin

import (
	"errors"

	"github.com/ajroetker/hwysimd/hwy"
	"github.com/ajroetker/hwysimd/hwy/bridge"
	"github.com/ajroetker/hwysimd/hwy/dtype"
)

// NewModule returns a module for target with the full intrinsic set
// registered. It satisfies bridge.ModuleFactory.
func NewModule(target hwy.Target) (*bridge.Module, error) {
	mod, err := bridge.NewModule(target)
	if err != nil {
		return nil, err
	}
	if err := Register(mod); err != nil {
		return nil, err
	}
	return mod, nil
}

// Register adds every intrinsic to mod. Double-precision intrinsics are
// only added when mod.HasF64 reports support.
func Register(mod *bridge.Module) error {
	errs := []error{
		registerInts(newLanes[uint8](mod, dtype.U8)),
		registerInts(newLanes[int8](mod, dtype.S8)),
		registerInts(newLanes[uint16](mod, dtype.U16)),
		registerInts(newLanes[int16](mod, dtype.S16)),
		registerInts(newLanes[uint32](mod, dtype.U32)),
		registerInts(newLanes[int32](mod, dtype.S32)),
		registerInts(newLanes[uint64](mod, dtype.U64)),
		registerInts(newLanes[int64](mod, dtype.S64)),
		registerFloats(newLanes[float32](mod, dtype.F32)),
	}
	if mod.HasF64() {
		errs = append(errs, registerFloats(newLanes[float64](mod, dtype.F64)))
	}
	return errors.Join(errs...)
}

// suffixes returns the lane suffixes available on mod.
func suffixes(mod *bridge.Module) []dtype.DataType {
	out := dtype.LaneTypes()
	if !mod.HasF64() {
		out = out[:len(out)-1]
	}
	return out
}

// lanes registers the intrinsics of one lane type T.
type lanes[T hwy.Lanes] struct {
	mod   *bridge.Module
	width int
	n     int
	sfx   string

	s, q, v, v2, v3, b dtype.DataType

	errs []error
}

func newLanes[T hwy.Lanes](mod *bridge.Module, s dtype.DataType) *lanes[T] {
	return &lanes[T]{
		mod:   mod,
		width: mod.Width(),
		n:     hwy.MaxLanesOf[T](mod.Target()),
		sfx:   s.String(),
		s:     s,
		q:     s.ToSequence(),
		v:     s.ToVector(),
		v2:    s.ToVectorX(2),
		v3:    s.ToVectorX(3),
		b:     s.BoolOf(),
	}
}

func (l *lanes[T]) err() error {
	return errors.Join(l.errs...)
}

func (l *lanes[T]) add(name string, in bridge.Signature, out []dtype.DataType, fn bridge.Kernel, writeBack ...int) {
	l.register(bridge.Intrinsic{
		Name:      name,
		In:        in,
		Out:       out,
		WriteBack: writeBack,
		Fn:        fn,
	})
}

func (l *lanes[T]) register(in bridge.Intrinsic) {
	if err := l.mod.Register(in); err != nil {
		l.errs = append(l.errs, err)
	}
}

func (l *lanes[T]) name(op string) string {
	return op + "_" + l.sfx
}

func (l *lanes[T]) vec(d bridge.Data) hwy.Vec[T] {
	return bridge.VecOf[T](d.(bridge.VecData).Reg, l.n)
}

func (l *lanes[T]) mask(d bridge.Data) hwy.Mask[T] {
	return bridge.MaskOf[T](d.(bridge.VecData).Reg, l.n)
}

func (l *lanes[T]) seq(d bridge.Data) []T {
	return bridge.SliceOf[T](d.(bridge.SeqData))
}

func (l *lanes[T]) scalar(d bridge.Data) T {
	return bridge.ScalarOf[T](d.(bridge.ScalarData))
}

func (l *lanes[T]) reg(v hwy.Vec[T]) bridge.Register {
	return bridge.RegisterOf(v, l.width)
}

func (l *lanes[T]) ret(v hwy.Vec[T]) []bridge.Data {
	return []bridge.Data{bridge.VecData{T: l.v, Reg: l.reg(v)}}
}

func (l *lanes[T]) retMask(m hwy.Mask[T]) []bridge.Data {
	return []bridge.Data{bridge.VecData{T: l.b, Reg: bridge.MaskRegister(m, l.width)}}
}

func (l *lanes[T]) ret2(a, b hwy.Vec[T]) []bridge.Data {
	return []bridge.Data{bridge.VecX2Data{T: l.v2, Regs: [2]bridge.Register{l.reg(a), l.reg(b)}}}
}

func (l *lanes[T]) unary(op string, fn func(hwy.Vec[T]) hwy.Vec[T]) {
	l.add(l.name(op), bridge.Signature{l.v}, []dtype.DataType{l.v}, func(args []bridge.Data) ([]bridge.Data, error) {
		return l.ret(fn(l.vec(args[0]))), nil
	})
}

func (l *lanes[T]) binary(op string, fn func(a, b hwy.Vec[T]) hwy.Vec[T]) {
	l.add(l.name(op), bridge.Signature{l.v, l.v}, []dtype.DataType{l.v}, func(args []bridge.Data) ([]bridge.Data, error) {
		return l.ret(fn(l.vec(args[0]), l.vec(args[1]))), nil
	})
}

func (l *lanes[T]) compare(op string, fn func(a, b hwy.Vec[T]) hwy.Mask[T]) {
	l.add(l.name(op), bridge.Signature{l.v, l.v}, []dtype.DataType{l.b}, func(args []bridge.Data) ([]bridge.Data, error) {
		return l.retMask(fn(l.vec(args[0]), l.vec(args[1]))), nil
	})
}

// registerCommon adds the intrinsics every lane type supports.
func registerCommon[T hwy.Lanes](l *lanes[T]) {
	registerMemory(l)
	registerInit(l)

	l.binary("add", hwy.Add[T])
	l.binary("sub", hwy.Sub[T])
	l.binary("min", hwy.Min[T])
	l.binary("max", hwy.Max[T])
	l.binary("and", hwy.And[T])
	l.binary("or", hwy.Or[T])
	l.binary("xor", hwy.Xor[T])
	l.unary("not", hwy.Not[T])

	l.compare("cmpeq", hwy.Equal[T])
	l.compare("cmpneq", hwy.NotEqual[T])
	l.compare("cmpgt", hwy.GreaterThan[T])
	l.compare("cmpge", hwy.GreaterEqual[T])
	l.compare("cmplt", hwy.LessThan[T])
	l.compare("cmple", hwy.LessEqual[T])

	registerReorder(l)
	registerConversion(l)
}

func registerInts[T hwy.Integers](l *lanes[T]) error {
	registerCommon(l)
	size := hwy.LaneSize[T]()
	if size < 8 {
		l.binary("mul", hwy.Mul[T])
	}
	if size <= 2 {
		l.binary("adds", hwy.SaturatedAdd[T])
		l.binary("subs", hwy.SaturatedSub[T])
	}
	if size >= 2 {
		registerShifts(l)
	}
	return l.err()
}

func registerFloats[T hwy.Floats](l *lanes[T]) error {
	registerCommon(l)
	l.binary("mul", hwy.Mul[T])
	l.binary("div", hwy.Div[T])
	return l.err()
}

func registerShifts[T hwy.Integers](l *lanes[T]) {
	shift := func(fn func(hwy.Vec[T], int) hwy.Vec[T]) bridge.Kernel {
		return func(args []bridge.Data) ([]bridge.Data, error) {
			count := int(bridge.ScalarOf[uint8](args[1].(bridge.ScalarData)))
			return l.ret(fn(l.vec(args[0]), count)), nil
		}
	}
	in := bridge.Signature{l.v, dtype.U8}
	out := []dtype.DataType{l.v}
	l.add(l.name("shl"), in, out, shift(hwy.ShiftLeft[T]))
	l.add(l.name("shr"), in, out, shift(hwy.ShiftRight[T]))
	l.add(l.name("shli"), in, out, shift(hwy.ShiftLeft[T]))
	l.add(l.name("shri"), in, out, shift(hwy.ShiftRight[T]))
}
