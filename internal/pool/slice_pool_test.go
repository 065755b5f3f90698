package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetUint32Slice(t *testing.T) {
	t.Run("returns slice with correct size", func(t *testing.T) {
		slice, cleanup := GetUint32Slice(100)
		defer cleanup()

		require.Len(t, slice, 100)
		require.GreaterOrEqual(t, cap(slice), 100)
	})

	t.Run("recycled slice is zeroed", func(t *testing.T) {
		slice, cleanup := GetUint32Slice(64)
		for i := range slice {
			slice[i] = 0xFFFFFFFF
		}
		cleanup()

		again, cleanup2 := GetUint32Slice(32)
		defer cleanup2()
		for _, v := range again {
			require.Zero(t, v)
		}
	})

	t.Run("grows when capacity insufficient", func(t *testing.T) {
		_, cleanup1 := GetUint32Slice(10)
		cleanup1()

		slice, cleanup2 := GetUint32Slice(1000)
		defer cleanup2()
		require.Len(t, slice, 1000)
	})

	t.Run("zero size", func(t *testing.T) {
		slice, cleanup := GetUint32Slice(0)
		defer cleanup()
		require.Empty(t, slice)
	})
}

func TestGetUint64Slice(t *testing.T) {
	slice, cleanup := GetUint64Slice(257)
	defer cleanup()

	require.Len(t, slice, 257)
	for _, v := range slice {
		require.Zero(t, v)
	}
}

func TestGetIntSlice(t *testing.T) {
	slice, cleanup := GetIntSlice(33)
	slice[32] = 7
	cleanup()

	again, cleanup2 := GetIntSlice(33)
	defer cleanup2()
	require.Len(t, again, 33)
	require.Zero(t, again[32])
}

func BenchmarkGetUint64Slice(b *testing.B) {
	for b.Loop() {
		s, cleanup := GetUint64Slice(4096)
		s[0] = 1
		cleanup()
	}
}
