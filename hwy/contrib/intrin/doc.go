// Package intrin provides the reference intrinsic set registered into every
// bridge.Module.
//
// Intrinsic names follow the "<op>_<suffix>" scheme, where the suffix is the
// lane type: u8, s8, u16, s16, u32, s32, u64, s64, f32 and, when the target
// supports it, f64. Boolean conversions use "cvt_b<bits>_<suffix>" and
// "cvt_<suffix>_b<bits>", and reinterpretation uses
// "reinterpret_<to>_<from>".
//
// Every kernel is built on the portable lane operations of package hwy with
// the lane count of the module's register width, so a module built for a
// 64-byte target computes on 64-byte registers even when the process runs
// on narrower hardware.
//
// Groups:
//
//	memory      load loada loads loadl store storea stores storel storeh
//	            loadx2 loadx3 storex2 storex3
//	init        zero setall set setf
//	arithmetic  add sub mul div adds subs min max
//	shifts      shl shr shli shri
//	bitwise     and or xor not
//	compare     cmpeq cmpneq cmpgt cmpge cmplt cmple
//	reorder     select combinel combineh combine zip
//	conversion  reinterpret cvt
package intrin
