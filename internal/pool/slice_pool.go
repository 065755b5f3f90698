package pool

import "sync"

// Scratch slice pools used by the partitioners and codecs. Each partition call needs a few
// arrays sized n+1 (costs, predecessors, widths) that are dropped as soon as the
// partition is reconstructed, so they are recycled instead of reallocated per call.
var (
	uint32SlicePool = sync.Pool{
		New: func() any { return &[]uint32{} },
	}
	uint64SlicePool = sync.Pool{
		New: func() any { return &[]uint64{} },
	}
	intSlicePool = sync.Pool{
		New: func() any { return &[]int{} },
	}
)

func getSlice[T any](p *sync.Pool, size int) ([]T, func()) {
	ptr, _ := p.Get().(*[]T)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]T, size)
	} else {
		slice = slice[:size]
		clear(slice)
	}
	*ptr = slice

	return slice, func() { p.Put(ptr) }
}

// GetUint32Slice retrieves a zeroed uint32 slice of exactly size elements from the pool.
//
// The caller must call the returned cleanup function to return the slice to the pool,
// and must not use the slice afterwards.
//
// Example:
//
//	words, cleanup := pool.GetUint32Slice(1024)
//	defer cleanup()
func GetUint32Slice(size int) ([]uint32, func()) {
	return getSlice[uint32](&uint32SlicePool, size)
}

// GetUint64Slice retrieves a zeroed uint64 slice of exactly size elements from the pool.
func GetUint64Slice(size int) ([]uint64, func()) {
	return getSlice[uint64](&uint64SlicePool, size)
}

// GetIntSlice retrieves a zeroed int slice of exactly size elements from the pool.
func GetIntSlice(size int) ([]int, func()) {
	return getSlice[int](&intSlicePool, size)
}
