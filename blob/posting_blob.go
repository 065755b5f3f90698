package blob

import (
	"github.com/arloliu/intpack/format"
	"github.com/arloliu/intpack/section"
)

// PostingBlob is an encoded posting blob as produced by PostingEncoder.Finish.
type PostingBlob struct {
	data   []byte
	header section.PostingHeader
}

// Bytes returns the serialized blob. The slice is shared, not copied.
func (b PostingBlob) Bytes() []byte {
	return b.data
}

// Len returns the size of the serialized blob in bytes.
func (b PostingBlob) Len() int {
	return len(b.data)
}

// Header returns a copy of the blob header.
func (b PostingBlob) Header() section.PostingHeader {
	return b.header
}

// ListCount returns the number of posting lists in the blob.
func (b PostingBlob) ListCount() int {
	return int(b.header.ListCount)
}

// Codec returns the integer codec the lists are encoded with.
func (b PostingBlob) Codec() format.CodecID {
	return b.header.Flag.Codec
}

// Compression returns the payload compression.
func (b PostingBlob) Compression() format.CompressionType {
	return b.header.Flag.Compression
}

// Stats returns size statistics for the blob.
func (b PostingBlob) Stats() PostingStats {
	return newPostingStats(b.header, len(b.data))
}

// PostingStats summarizes the size of a posting blob.
type PostingStats struct {
	Codec       format.CodecID
	Compression format.CompressionType
	// Lists is the number of posting lists.
	Lists int
	// Values is the number of document IDs across all lists.
	Values uint64
	// PayloadBytes is the uncompressed codec payload size.
	PayloadBytes uint64
	// StoredBytes is the payload size after compression.
	StoredBytes uint64
	// BlobBytes is the full blob size including header and index.
	BlobBytes uint64
}

func newPostingStats(h section.PostingHeader, blobSize int) PostingStats {
	return PostingStats{
		Codec:        h.Flag.Codec,
		Compression:  h.Flag.Compression,
		Lists:        int(h.ListCount),
		Values:       h.TotalValues,
		PayloadBytes: uint64(h.PayloadWords) * 4,
		StoredBytes:  uint64(h.PayloadSize),
		BlobBytes:    uint64(blobSize), //nolint: gosec
	}
}

// BitsPerInt returns the stored payload size in bits divided by the number of IDs.
// List bases live in the index and are not counted.
func (s PostingStats) BitsPerInt() float64 {
	if s.Values == 0 {
		return 0
	}

	return float64(s.StoredBytes*8) / float64(s.Values)
}

// CompressionRatio returns uncompressed payload bytes per stored byte.
func (s PostingStats) CompressionRatio() float64 {
	if s.StoredBytes == 0 {
		return 0
	}

	return float64(s.PayloadBytes) / float64(s.StoredBytes)
}
