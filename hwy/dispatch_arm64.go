//go:build arm64

package hwy

import "golang.org/x/sys/cpu"

// ARM64 (AArch64) always has NEON (ASIMD) available.
// It's part of the ARMv8-A base architecture.
var baselineTarget = Target{
	ID:       BaselineName,
	Level:    DispatchNEON,
	Bytes:    16,
	Features: []string{"NEON", "NEON_FP16", "NEON_VFPV4", "ASIMD"},
}

func init() {
	// Check for HWY_NO_SIMD environment variable first
	if NoSimdEnv() {
		currentLevel = DispatchScalar
		currentWidth = 16
		return
	}
	selectCurrent(baselineTarget, detectTargets())
}

// The ASIMD extensions keep the 128-bit register width; SVE is not a
// dispatch target because its width is only known at run time.
func detectTargets() []Target {
	return []Target{
		{
			ID:        "ASIMDHP",
			Level:     DispatchNEON,
			Bytes:     16,
			Features:  []string{"ASIMDHP"},
			Supported: cpu.ARM64.HasASIMDHP,
		},
		{
			ID:        "ASIMDDP",
			Level:     DispatchNEON,
			Bytes:     16,
			Features:  []string{"ASIMDDP"},
			Supported: cpu.ARM64.HasASIMDDP,
		},
		{
			ID:        "ASIMDFHM",
			Level:     DispatchNEON,
			Bytes:     16,
			Features:  []string{"ASIMDFHM"},
			Supported: cpu.ARM64.HasASIMDFHM,
		},
	}
}
