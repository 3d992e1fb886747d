package intrin

import (
	"github.com/ajroetker/hwysimd/hwy"
	"github.com/ajroetker/hwysimd/hwy/bridge"
	"github.com/ajroetker/hwysimd/hwy/dtype"
)

func registerReorder[T hwy.Lanes](l *lanes[T]) {
	l.add(l.name("select"), bridge.Signature{l.b, l.v, l.v}, []dtype.DataType{l.v}, func(args []bridge.Data) ([]bridge.Data, error) {
		return l.ret(hwy.IfThenElse(l.mask(args[0]), l.vec(args[1]), l.vec(args[2]))), nil
	})

	l.binary("combinel", hwy.ConcatLowerLower[T])
	l.binary("combineh", hwy.ConcatUpperUpper[T])

	pair := bridge.Signature{l.v, l.v}
	l.add(l.name("combine"), pair, []dtype.DataType{l.v2}, func(args []bridge.Data) ([]bridge.Data, error) {
		a, b := l.vec(args[0]), l.vec(args[1])
		return l.ret2(hwy.ConcatLowerLower(a, b), hwy.ConcatUpperUpper(a, b)), nil
	})
	l.add(l.name("zip"), pair, []dtype.DataType{l.v2}, func(args []bridge.Data) ([]bridge.Data, error) {
		a, b := l.vec(args[0]), l.vec(args[1])
		return l.ret2(hwy.InterleaveLower(a, b), hwy.InterleaveUpper(a, b)), nil
	})
}

func registerConversion[T hwy.Lanes](l *lanes[T]) {
	// Reinterpretation keeps the register image and relabels its lanes.
	for _, to := range suffixes(l.mod) {
		vt := to.ToVector()
		l.add("reinterpret_"+to.String()+"_"+l.sfx, bridge.Signature{l.v}, []dtype.DataType{vt}, func(args []bridge.Data) ([]bridge.Data, error) {
			return []bridge.Data{bridge.VecData{T: vt, Reg: args[0].(bridge.VecData).Reg.Clone()}}, nil
		})
	}

	bsfx := l.b.Suffix()
	l.add("cvt_"+bsfx+"_"+l.sfx, bridge.Signature{l.v}, []dtype.DataType{l.b}, func(args []bridge.Data) ([]bridge.Data, error) {
		return l.retMask(hwy.MaskFromVec(l.vec(args[0]))), nil
	})
	l.add("cvt_"+l.sfx+"_"+bsfx, bridge.Signature{l.b}, []dtype.DataType{l.v}, func(args []bridge.Data) ([]bridge.Data, error) {
		return l.ret(hwy.VecFromMask(l.mask(args[0]))), nil
	})
}
