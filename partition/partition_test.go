package partition

import (
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	dpLens    = []int{1, 2, 4, 6, 8, 16, 32, 64}
	blockLens = []int{1, 2, 4, 6, 8, 16, 32, 64, 128, 256, 512, 1024, 2048, 4096, 8192, 16384}
)

func TestCostUnit(t *testing.T) {
	tests := []struct {
		v    uint32
		want uint8
	}{
		{0, 0},
		{1, 1},
		{2, 2},
		{255, 8},
		{4095, 12},
		{4096, 16},
		{65535, 16},
		{65536, 20},
		{1<<20 - 1, 20},
		{1 << 20, 32},
		{math.MaxUint32, 32},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, CostUnit(tt.v), "value %d", tt.v)
	}

	for bitLen := 0; bitLen <= 32; bitLen++ {
		require.Contains(t, CanonicalWidths[:], remap[bitLen])
		require.GreaterOrEqual(t, int(remap[bitLen]), bitLen)
	}
}

// randomSequence mixes zero runs, small values and occasional wide outliers.
func randomSequence(rng *rand.Rand, n int) []uint32 {
	values := make([]uint32, n)
	for i := range values {
		switch r := rng.Intn(10); {
		case r < 4:
			values[i] = 0
		case r < 8:
			values[i] = uint32(rng.Intn(16))
		case r < 9:
			values[i] = uint32(rng.Intn(1 << 14))
		default:
			values[i] = rng.Uint32() >> uint(rng.Intn(32))
		}
	}

	return values
}

func blockMax(values []uint32, start, end int) uint8 {
	var b uint8
	for _, v := range values[start:end] {
		b = max(b, CostUnit(v))
	}

	return b
}

// requireWellFormed checks the structural invariants shared by every partitioner.
func requireWellFormed(t *testing.T, p Partition, values []uint32) {
	t.Helper()

	require.NotEmpty(t, p.Lens)
	require.Len(t, p.Bounds, p.Blocks()+1)
	require.Len(t, p.Widths, p.Blocks())
	require.Equal(t, 0, p.Bounds[0])
	require.Equal(t, len(values), p.Bounds[p.Blocks()])

	for i, k := range p.Lens {
		require.Positive(t, k)
		require.Equal(t, p.Bounds[i+1]-p.Bounds[i], k)
		require.Equal(t, blockMax(values, p.Bounds[i], p.Bounds[i+1]), p.Widths[i], "block %d", i)
	}
}

func TestPartition_PayloadBits(t *testing.T) {
	p := Partition{
		Bounds: []int{0, 4, 12},
		Lens:   []int{4, 8},
		Widths: []uint8{3, 16},
	}
	require.Equal(t, 2, p.Blocks())
	require.Equal(t, uint64(4*3+8*16), p.PayloadBits())
}

func BenchmarkApproximate(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	values := randomSequence(rng, 1<<14)
	a, err := NewApproximate()
	require.NoError(b, err)

	for b.Loop() {
		_, _ = a.Partition(values)
	}
}

func BenchmarkExact(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	values := randomSequence(rng, 1<<14)
	e, err := NewExact(dpLens, nil, WithExactFixedCost(7))
	require.NoError(b, err)

	for b.Loop() {
		_, _ = e.Partition(values)
	}
}

func TestCostWindow_RunningMax(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	units := make([]uint32, 5000)
	for i := range units {
		units[i] = uint32(CanonicalWidths[rng.Intn(len(CanonicalWidths))])
	}

	w := newCostWindow(units, 0)
	for w.end < len(units) {
		// long growth phases let the deque compact after its head moves on
		for range rng.Intn(200) + 1 {
			if w.end < len(units) {
				w.advanceEnd()
			}
		}
		for range rng.Intn(200) {
			if w.start < len(units) {
				w.advanceStart()
			}
		}

		require.Equal(t, w.end-w.start, w.size())
		if w.size() == 0 {
			require.Zero(t, w.maxUnit(), "empty view at %d", w.start)
			continue
		}
		require.Equal(t, slices.Max(units[w.start:w.end]), w.maxUnit(), "view [%d,%d)", w.start, w.end)
		if w.end < len(units) {
			require.Equal(t, max(slices.Max(units[w.start:w.end]), units[w.end]), w.extendedMax())
		}
	}
}

func TestCostWindow_EmptyViewMovesAsWhole(t *testing.T) {
	w := newCostWindow([]uint32{3, 9, 1}, 0)

	w.advanceStart()
	require.Equal(t, 1, w.start)
	require.Equal(t, 1, w.end)
	require.Equal(t, uint32(9), w.extendedMax())

	w.advanceEnd()
	w.advanceEnd()
	require.Equal(t, uint32(9), w.maxUnit())

	w.advanceStart()
	require.Equal(t, uint32(1), w.maxUnit())
	w.advanceStart()
	require.Zero(t, w.size())
	require.Zero(t, w.maxUnit())
}
