package hwy

import (
	"math"
	"testing"
)

func TestSaturatedAdd(t *testing.T) {
	t.Run("uint8", func(t *testing.T) {
		got := SaturatedAdd(Load([]uint8{250, 1}, 2), Load([]uint8{10, 2}, 2)).Data()
		if got[0] != 255 || got[1] != 3 {
			t.Errorf("got %v, want [255 3]", got)
		}
	})
	t.Run("int8", func(t *testing.T) {
		got := SaturatedAdd(Load([]int8{100, -100, 5}, 3), Load([]int8{100, -100, -6}, 3)).Data()
		want := []int8{127, -128, -1}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("lane %d: got %v, want %v", i, got[i], want[i])
			}
		}
	})
	t.Run("int16", func(t *testing.T) {
		got := SaturatedAdd(Load([]int16{math.MaxInt16}, 1), Load([]int16{1}, 1)).Data()
		if got[0] != math.MaxInt16 {
			t.Errorf("got %v, want %v", got[0], math.MaxInt16)
		}
	})
	t.Run("int64", func(t *testing.T) {
		got := SaturatedAdd(Load([]int64{math.MinInt64}, 1), Load([]int64{-1}, 1)).Data()
		if got[0] != math.MinInt64 {
			t.Errorf("got %v, want %v", got[0], int64(math.MinInt64))
		}
	})
}

func TestSaturatedSub(t *testing.T) {
	t.Run("uint16", func(t *testing.T) {
		got := SaturatedSub(Load([]uint16{10, 30}, 2), Load([]uint16{20, 10}, 2)).Data()
		if got[0] != 0 || got[1] != 20 {
			t.Errorf("got %v, want [0 20]", got)
		}
	})
	t.Run("int8", func(t *testing.T) {
		got := SaturatedSub(Load([]int8{-100, 100, 3}, 3), Load([]int8{100, -100, 5}, 3)).Data()
		want := []int8{-128, 127, -2}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("lane %d: got %v, want %v", i, got[i], want[i])
			}
		}
	})
}
