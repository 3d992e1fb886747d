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

package hwy

import (
	"slices"
	"strings"
)

// BaselineName is the key under which the baseline target is published.
const BaselineName = "baseline"

// Target describes one hardware feature-set configuration for which a
// separate module instance is produced.
type Target struct {
	// ID is the raw target identifier, e.g. "AVX512_SKX" or "FMA3__AVX2".
	// A doubled separator joins the features of a multi-feature target.
	ID string

	// Level is the instruction set the target dispatches to.
	Level DispatchLevel

	// Bytes is the register width in bytes.
	Bytes int

	// Features lists the CPU features the target requires.
	Features []string

	// Supported reports whether the running CPU provides every feature.
	Supported bool
}

// Width returns the register width in bytes.
func (t Target) Width() int {
	return t.Bytes
}

// Name returns the display name of the target.
func (t Target) Name() string {
	return NormalizeTargetName(t.ID)
}

// IsBaseline reports whether t is the baseline target.
func (t Target) IsBaseline() bool {
	return t.ID == BaselineName
}

// NormalizeTargetName rewrites a multi-feature target identifier for
// display: every doubled separator becomes a single space, so
// "AVX2__FMA3" reads "AVX2 FMA3". Identifiers without a doubled separator
// are returned unchanged.
func NormalizeTargetName(id string) string {
	if !strings.Contains(id, "__") {
		return id
	}
	return strings.ReplaceAll(id, "__", " ")
}

// Baseline returns the target every build of this package supports.
func Baseline() Target {
	t := baselineTarget
	t.Features = slices.Clone(t.Features)
	if NoSimdEnv() {
		t.Level = DispatchScalar
	}
	t.Supported = true
	return t
}

// DispatchTargets returns the dispatch targets of this architecture in
// ascending order, each marked with whether the running CPU supports it.
func DispatchTargets() []Target {
	noSimd := NoSimdEnv()
	targets := detectTargets()
	for i := range targets {
		if noSimd {
			targets[i].Supported = false
		}
	}
	return targets
}

// LookupTarget finds a target by raw ID, display name or BaselineName.
func LookupTarget(name string) (Target, bool) {
	if name == BaselineName {
		return Baseline(), true
	}
	for _, t := range DispatchTargets() {
		if t.ID == name || t.Name() == name {
			return t, true
		}
	}
	return Target{}, false
}
