package intrin

import (
	"slices"

	"github.com/ajroetker/hwysimd/hwy"
	"github.com/ajroetker/hwysimd/hwy/bridge"
	"github.com/ajroetker/hwysimd/hwy/dtype"
)

func registerMemory[T hwy.Lanes](l *lanes[T]) {
	load := func(args []bridge.Data) ([]bridge.Data, error) {
		return l.ret(hwy.Load(l.seq(args[0]), l.n)), nil
	}
	loadl := func(args []bridge.Data) ([]bridge.Data, error) {
		return l.ret(hwy.LowerHalf(hwy.Load(l.seq(args[0]), l.n))), nil
	}
	// Sequence buffers are aligned to the register width, so the aligned
	// and streaming forms share the unaligned kernel.
	loadIn := bridge.Signature{l.q}
	loadOut := []dtype.DataType{l.v}
	l.add(l.name("load"), loadIn, loadOut, load)
	l.add(l.name("loada"), loadIn, loadOut, load)
	l.add(l.name("loads"), loadIn, loadOut, load)
	l.add(l.name("loadl"), loadIn, loadOut, loadl)

	storeWith := func(lanes func(hwy.Vec[T]) []T) bridge.Kernel {
		return func(args []bridge.Data) ([]bridge.Data, error) {
			bridge.WriteSlice(args[0].(bridge.SeqData), lanes(l.vec(args[1])))
			return nil, nil
		}
	}
	all := func(v hwy.Vec[T]) []T { return v.Data() }
	lower := func(v hwy.Vec[T]) []T { return v.Data()[:l.n/2] }
	upper := func(v hwy.Vec[T]) []T { return hwy.UpperHalf(v).Data()[:l.n/2] }
	storeIn := bridge.Signature{l.q, l.v}
	l.add(l.name("store"), storeIn, nil, storeWith(all), 0)
	l.add(l.name("storea"), storeIn, nil, storeWith(all), 0)
	l.add(l.name("stores"), storeIn, nil, storeWith(all), 0)
	l.add(l.name("storel"), storeIn, nil, storeWith(lower), 0)
	l.add(l.name("storeh"), storeIn, nil, storeWith(upper), 0)

	l.add(l.name("loadx2"), loadIn, []dtype.DataType{l.v2}, func(args []bridge.Data) ([]bridge.Data, error) {
		a, b := hwy.LoadInterleaved2(l.seq(args[0]), l.n)
		return l.ret2(a, b), nil
	})
	l.add(l.name("loadx3"), loadIn, []dtype.DataType{l.v3}, func(args []bridge.Data) ([]bridge.Data, error) {
		a, b, c := hwy.LoadInterleaved3(l.seq(args[0]), l.n)
		return []bridge.Data{bridge.VecX3Data{T: l.v3, Regs: [3]bridge.Register{l.reg(a), l.reg(b), l.reg(c)}}}, nil
	})
	l.add(l.name("storex2"), bridge.Signature{l.q, l.v2}, nil, func(args []bridge.Data) ([]bridge.Data, error) {
		dst := args[0].(bridge.SeqData)
		regs := args[1].(bridge.VecX2Data).Regs
		buf := l.seq(dst)
		hwy.StoreInterleaved2(bridge.VecOf[T](regs[0], l.n), bridge.VecOf[T](regs[1], l.n), buf)
		bridge.WriteSlice(dst, buf)
		return nil, nil
	}, 0)
	l.add(l.name("storex3"), bridge.Signature{l.q, l.v3}, nil, func(args []bridge.Data) ([]bridge.Data, error) {
		dst := args[0].(bridge.SeqData)
		regs := args[1].(bridge.VecX3Data).Regs
		buf := l.seq(dst)
		hwy.StoreInterleaved3(
			bridge.VecOf[T](regs[0], l.n),
			bridge.VecOf[T](regs[1], l.n),
			bridge.VecOf[T](regs[2], l.n),
			buf,
		)
		bridge.WriteSlice(dst, buf)
		return nil, nil
	}, 0)
}

func registerInit[T hwy.Lanes](l *lanes[T]) {
	out := []dtype.DataType{l.v}
	l.add(l.name("zero"), nil, out, func([]bridge.Data) ([]bridge.Data, error) {
		return l.ret(hwy.Zero[T](l.n)), nil
	})
	l.add(l.name("setall"), bridge.Signature{l.s}, out, func(args []bridge.Data) ([]bridge.Data, error) {
		return l.ret(hwy.Set(l.n, l.scalar(args[0]))), nil
	})

	set := func(args []bridge.Data) ([]bridge.Data, error) {
		src := make([]T, len(args))
		for i, a := range args {
			src[i] = l.scalar(a)
		}
		return l.ret(hwy.Load(src, l.n)), nil
	}
	l.add(l.name("set"), slices.Repeat(bridge.Signature{l.s}, l.n), out, set)
	// setf takes the fill value first, then up to n leading lanes.
	l.register(bridge.Intrinsic{
		Name:     l.name("setf"),
		In:       slices.Repeat(bridge.Signature{l.s}, l.n+1),
		Out:      out,
		Optional: l.n,
		Fn: func(args []bridge.Data) ([]bridge.Data, error) {
			src := slices.Repeat([]T{l.scalar(args[0])}, l.n)
			for i, a := range args[1:] {
				src[i] = l.scalar(a)
			}
			return l.ret(hwy.Load(src, l.n)), nil
		},
	})
}
