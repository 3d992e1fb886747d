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

// Package simdtest assembles one intrinsic module per dispatch target so
// that tests can run the same checks against every target the machine
// supports.
//
// Usage:
//
//	for name, mod := range simdtest.Default() {
//	    if mod == nil {
//	        t.Skipf("target %q isn't supported by current machine", name)
//	    }
//	    v, err := mod.Call("load_u8", data)
//	    ...
//	}
package simdtest

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/ajroetker/hwysimd/hwy"
	"github.com/ajroetker/hwysimd/hwy/bridge"
	"github.com/ajroetker/hwysimd/hwy/contrib/intrin"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// Targets maps a normalized target name to its module. Dispatch targets
// the running CPU does not support map to nil. The baseline module is
// stored under hwy.BaselineName.
type Targets map[string]*bridge.Module

// Names returns every target name in sorted order, baseline included.
func (ts Targets) Names() []string {
	names := lo.Keys(ts)
	slices.Sort(names)
	return names
}

// Supported returns the sorted names of targets that have a module.
func (ts Targets) Supported() []string {
	names := lo.Keys(lo.OmitBy(ts, func(_ string, mod *bridge.Module) bool { return mod == nil }))
	slices.Sort(names)
	return names
}

// Baseline returns the baseline module.
func (ts Targets) Baseline() *bridge.Module {
	return ts[hwy.BaselineName]
}

// Load builds the module of every supported dispatch target and of the
// baseline with factory. A factory error aborts assembly.
func Load(factory bridge.ModuleFactory) (Targets, error) {
	log := bridge.Logger()
	ts := make(Targets)
	for _, t := range hwy.DispatchTargets() {
		name := t.Name()
		if !t.Supported {
			log.Debug("target not supported by current machine", zap.String("target", name))
			ts[name] = nil
			continue
		}
		mod, err := build(factory, t)
		if err != nil {
			return nil, fmt.Errorf("target %s: %w", name, err)
		}
		ts[name] = mod
		log.Debug("loaded target", zap.String("target", name), zap.Int("simd", mod.SIMD()))
	}

	mod, err := build(factory, hwy.Baseline())
	if err != nil {
		return nil, fmt.Errorf("target %s: %w", hwy.BaselineName, err)
	}
	ts[hwy.BaselineName] = mod
	return ts, nil
}

func build(factory bridge.ModuleFactory, t hwy.Target) (*bridge.Module, error) {
	mod, err := factory(t)
	if err != nil {
		return nil, err
	}
	if mod == nil {
		return nil, errors.New("factory returned no module")
	}
	return mod, nil
}

var (
	defaultTargets Targets
	defaultErr     error
	defaultOnce    sync.Once
)

// Default returns the modules of the reference intrinsic set, built once
// per process. It panics if assembly fails.
func Default() Targets {
	defaultOnce.Do(func() {
		defaultTargets, defaultErr = Load(intrin.NewModule)
	})
	if defaultErr != nil {
		panic(defaultErr)
	}
	return defaultTargets
}
