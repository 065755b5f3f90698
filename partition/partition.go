package partition

import (
	"math/bits"
)

// CanonicalWidths lists every cost unit a value can map to, in ascending order.
var CanonicalWidths = [16]uint8{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 16, 20, 32}

// remap rounds a bit length up to its canonical width.
var remap = [33]uint8{
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12,
	16, 16, 16, 16,
	20, 20, 20, 20,
	32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32, 32,
}

// CostUnit returns the packed width of v.
func CostUnit(v uint32) uint8 {
	return remap[bits.Len32(v)]
}

// Partitioner chooses block boundaries for a sequence.
type Partitioner interface {
	// Partition returns the block layout for values.
	// It returns an error wrapping errs.ErrInvalidArgument when values is empty.
	Partition(values []uint32) (Partition, error)
}

// Partition describes the block layout of a sequence.
type Partition struct {
	// Bounds holds the m+1 block boundaries: Bounds[0] = 0 and Bounds[m] = n.
	Bounds []int
	// Lens holds the length K of each block.
	Lens []int
	// Widths holds the packed width B of each block, the largest cost unit it contains.
	Widths []uint8
	// Cost is the objective value of the layout under the partitioner's cost model.
	Cost uint64
}

// Blocks returns the number of blocks.
func (p Partition) Blocks() int {
	return len(p.Lens)
}

// PayloadBits returns the total number of bits needed by block payloads, excluding headers.
func (p Partition) PayloadBits() uint64 {
	var total uint64
	for i, k := range p.Lens {
		total += uint64(k) * uint64(p.Widths[i]) //nolint: gosec
	}

	return total
}

// Stats summarizes the work performed by one Partition call.
type Stats struct {
	// Positions is the length of the partitioned sequence.
	Positions int
	// Windows is the number of cost windows used. Zero for Exact.
	Windows int
	// Transitions is the number of candidate blocks evaluated.
	Transitions uint64
	// Blocks is the number of blocks in the result.
	Blocks int
	// Cost is the objective value of the result.
	Cost uint64
}

// Observer receives Stats after every successful Partition call.
type Observer func(Stats)

// buildPartition walks the predecessor array backward from n and returns the blocks in
// sequence order. widths[end] holds the width of the block ending at end.
func buildPartition(path []int, widths []uint32, n int, cost uint64) Partition {
	m := 0
	for end := n; end > 0; end = path[end] {
		m++
	}

	p := Partition{
		Bounds: make([]int, m+1),
		Lens:   make([]int, m),
		Widths: make([]uint8, m),
		Cost:   cost,
	}

	idx := m - 1
	for end := n; end > 0; end = path[end] {
		start := path[end]
		p.Bounds[idx+1] = end
		p.Lens[idx] = end - start
		p.Widths[idx] = uint8(widths[end]) //nolint: gosec
		idx--
	}

	return p
}

func costUnits(dst []uint32, values []uint32) {
	for i, v := range values {
		dst[i] = uint32(remap[bits.Len32(v)])
	}
}
