package section

import (
	"github.com/arloliu/intpack/endian"
	"github.com/arloliu/intpack/errs"
)

// ListIndexEntry locates one posting list inside the blob payload.
//
// A list of Count document IDs is stored as Base plus Count-1 codec values, so a
// single-element list has WordCount 0.
type ListIndexEntry struct {
	// Count is the number of document IDs in the list.
	//
	// Offset: 0, Size: 4 bytes
	Count uint32
	// Base is the first document ID of the list.
	//
	// Offset: 4, Size: 4 bytes
	Base uint32
	// WordOffset is the absolute word position of the list's stream in the uncompressed payload.
	//
	// Offset: 8, Size: 4 bytes
	WordOffset uint32
	// WordCount is the number of words in the list's stream.
	//
	// Offset: 12, Size: 4 bytes
	WordCount uint32
}

// NewListIndexEntry creates an entry for a list of count IDs starting at base.
// Word offsets are set by the encoder once the stream is placed.
func NewListIndexEntry(count, base uint32) ListIndexEntry {
	return ListIndexEntry{Count: count, Base: base}
}

// Bytes returns the 16-byte little-endian encoding of the entry.
func (e *ListIndexEntry) Bytes() []byte {
	var b [ListIndexEntrySize]byte // stack allocation
	e.WriteToSlice(b[:], 0)

	return b[:]
}

// WriteToSlice writes to a pre-allocated slice and returns the next position.
//
// Parameters:
//   - data: Pre-allocated byte slice (must have space for 16 bytes at offset)
//   - offset: Starting position in data slice
//
// Returns:
//   - int: Next write position (offset + 16)
func (e *ListIndexEntry) WriteToSlice(data []byte, offset int) int {
	engine := endian.GetLittleEndianEngine()

	engine.PutUint32(data[offset:offset+4], e.Count)
	engine.PutUint32(data[offset+4:offset+8], e.Base)
	engine.PutUint32(data[offset+8:offset+12], e.WordOffset)
	engine.PutUint32(data[offset+12:offset+16], e.WordCount)

	return offset + ListIndexEntrySize
}

// Values returns the number of codec values the list's stream holds.
func (e ListIndexEntry) Values() int {
	if e.Count == 0 {
		return 0
	}

	return int(e.Count) - 1
}

// ParseListIndexEntry parses a ListIndexEntry from a byte slice.
//
// Returns errs.ErrInvalidIndexEntrySize if data is shorter than 16 bytes.
func ParseListIndexEntry(data []byte) (ListIndexEntry, error) {
	if len(data) < ListIndexEntrySize {
		return ListIndexEntry{}, errs.ErrInvalidIndexEntrySize
	}

	engine := endian.GetLittleEndianEngine()

	return ListIndexEntry{
		Count:      engine.Uint32(data[0:4]),
		Base:       engine.Uint32(data[4:8]),
		WordOffset: engine.Uint32(data[8:12]),
		WordCount:  engine.Uint32(data[12:16]),
	}, nil
}
