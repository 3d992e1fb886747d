// Package bridge converts dynamic host values to the fixed-layout lane data
// consumed by SIMD kernels and back.
//
// # Values
//
// Host values are Go numbers, bools, *big.Int, ordered collections (List,
// Tuple, []any and any Go slice or array) and *Vector containers. Their
// lane-level counterpart is Data, a closed set of variants that each carry
// their dtype.DataType:
//
//	ScalarData  one lane
//	SeqData     an owned, aligned run of lanes
//	VecData     one register image
//	VecX2Data   two register images
//	VecX3Data   three register images
//
// # Marshalling
//
// A Marshaller is bound to one register width. Decode and Encode convert
// between host values and Data; Bind matches a call payload against a
// Signature. Sequence buffers come from a mem.Allocator and are released by
// Clear, which Args.Clear and Module.Call invoke on every path.
//
// # Modules
//
// A Module holds the intrinsics compiled for one hwy.Target:
//
//	mod, _ := bridge.NewModule(hwy.Baseline())
//	_ = mod.Register(bridge.Intrinsic{Name: "load_u8", ...})
//	v, err := mod.Call("load_u8", bridge.List{1, 2, 3, ...})
//
// Errors match one of ErrType, ErrSize, ErrIndex, ErrMemory or ErrInternal
// under errors.Is.
package bridge
