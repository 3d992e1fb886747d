// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build amd64

package hwy

import "golang.org/x/sys/cpu"

// SSE2 is part of the x86-64 base architecture.
var baselineTarget = Target{
	ID:       BaselineName,
	Level:    DispatchSSE2,
	Bytes:    16,
	Features: []string{"SSE", "SSE2", "SSE3"},
}

func init() {
	// Check if SIMD is disabled via environment variable
	if NoSimdEnv() {
		setScalarMode()
		return
	}
	selectCurrent(baselineTarget, detectTargets())
}

func detectTargets() []Target {
	return []Target{
		{
			ID:        "SSE42",
			Level:     DispatchSSE42,
			Bytes:     16,
			Features:  []string{"SSE41", "POPCNT", "SSE42"},
			Supported: cpu.X86.HasSSE41 && cpu.X86.HasPOPCNT && cpu.X86.HasSSE42,
		},
		{
			ID:        "FMA3__AVX2",
			Level:     DispatchAVX2,
			Bytes:     32,
			Features:  []string{"FMA3", "AVX2"},
			Supported: cpu.X86.HasFMA && cpu.X86.HasAVX2,
		},
		{
			ID:        "AVX512F",
			Level:     DispatchAVX512,
			Bytes:     64,
			Features:  []string{"AVX512F"},
			Supported: cpu.X86.HasAVX512F,
		},
		{
			ID:       "AVX512_SKX",
			Level:    DispatchAVX512,
			Bytes:    64,
			Features: []string{"AVX512F", "AVX512CD", "AVX512BW", "AVX512DQ", "AVX512VL"},
			Supported: cpu.X86.HasAVX512F && cpu.X86.HasAVX512CD && cpu.X86.HasAVX512BW &&
				cpu.X86.HasAVX512DQ && cpu.X86.HasAVX512VL,
		},
	}
}

func setScalarMode() {
	currentLevel = DispatchScalar
	currentWidth = 16 // Use 16-byte vectors even in scalar mode for consistency
}
