package simdtest

import (
	"errors"
	"strings"
	"testing"

	"github.com/ajroetker/hwysimd/hwy"
	"github.com/ajroetker/hwysimd/hwy/bridge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	var calls []string
	factory := func(target hwy.Target) (*bridge.Module, error) {
		calls = append(calls, target.ID)
		return bridge.NewModule(target)
	}

	ts, err := Load(factory)
	require.NoError(t, err)

	dispatch := hwy.DispatchTargets()
	assert.Len(t, ts, len(dispatch)+1)
	require.NotNil(t, ts.Baseline())
	assert.True(t, ts.Baseline().Target().IsBaseline())

	for _, target := range dispatch {
		mod, ok := ts[target.Name()]
		require.True(t, ok, target.Name())
		assert.Equal(t, target.Supported, mod != nil, target.Name())
		if mod != nil {
			assert.Equal(t, target.Width(), mod.Width())
		}
	}
	for _, name := range ts.Names() {
		assert.NotContains(t, name, "__")
	}
	assert.Contains(t, ts.Supported(), hwy.BaselineName)
	assert.Equal(t, calls[len(calls)-1], hwy.BaselineName)
}

func TestLoadNoSimd(t *testing.T) {
	t.Setenv("HWY_NO_SIMD", "1")

	ts, err := Load(func(target hwy.Target) (*bridge.Module, error) {
		return bridge.NewModule(target)
	})
	require.NoError(t, err)
	assert.Equal(t, []string{hwy.BaselineName}, ts.Supported())
	assert.Zero(t, ts.Baseline().SIMD())
}

func TestLoadFactoryError(t *testing.T) {
	boom := errors.New("boom")
	_, err := Load(func(hwy.Target) (*bridge.Module, error) { return nil, boom })
	assert.ErrorIs(t, err, boom)
}

func TestLoadFactoryWithoutModule(t *testing.T) {
	ts, err := Load(func(hwy.Target) (*bridge.Module, error) { return nil, nil })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "factory returned no module")
	assert.Nil(t, ts)
}

// TestDefaultTargets runs a load/store round trip on every supported
// target.
func TestDefaultTargets(t *testing.T) {
	ts := Default()
	for _, name := range ts.Names() {
		t.Run(strings.ReplaceAll(name, " ", "__"), func(t *testing.T) {
			mod := ts[name]
			if mod == nil {
				t.Skipf("target %q isn't supported by current machine", name)
			}
			n := mod.Width() / 4
			data := make(bridge.List, n)
			for i := range data {
				data[i] = i + 1
			}
			v, err := mod.Call("load_u32", data)
			require.NoError(t, err)
			assert.True(t, v.(*bridge.Vector).Equal(data))

			store := make(bridge.List, n)
			for i := range store {
				store[i] = 0
			}
			_, err = mod.Call("store_u32", store, v)
			require.NoError(t, err)
			assert.True(t, v.(*bridge.Vector).Equal(store))
			assert.Zero(t, mod.Marshaller().Allocator().LiveBuffers())
		})
	}
	assert.Same(t, ts.Baseline(), Default().Baseline())
}
