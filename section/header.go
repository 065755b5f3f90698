package section

import (
	"github.com/arloliu/intpack/endian"
	"github.com/arloliu/intpack/errs"
	"github.com/arloliu/intpack/format"
)

// PostingHeader is the fixed-size header at the start of a posting blob.
type PostingHeader struct {
	// Flag carries magic, version, codec and compression.
	Flag PostingFlag // byte offset 0-3
	// ListCount is the number of posting lists in the blob.
	ListCount uint32 // byte offset 4-7
	// PayloadWords is the length of the uncompressed payload in 32-bit words.
	PayloadWords uint32 // byte offset 8-11
	// PayloadSize is the length of the payload as stored, after compression.
	PayloadSize uint32 // byte offset 12-15
	// TotalValues is the number of document IDs across all lists.
	TotalValues uint64 // byte offset 16-23
	// Checksum is the xxHash64 of the stored payload bytes.
	Checksum uint64 // byte offset 24-31
}

// NewPostingHeader creates a header for the given codec and compression.
// Counts, sizes and the checksum are filled in when the encoder finishes.
func NewPostingHeader(codec format.CodecID, compression format.CompressionType) *PostingHeader {
	return &PostingHeader{
		Flag: NewPostingFlag(codec, compression),
	}
}

// Parse parses the header from a byte slice.
//
// Parameters:
//   - data: Byte slice containing header (must be exactly 32 bytes)
//
// Returns:
//   - error: ErrInvalidHeaderSize if data is not 32 bytes, or flag validation errors
func (h *PostingHeader) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	engine := endian.GetLittleEndianEngine()

	h.Flag.Options = engine.Uint16(data[0:2])
	h.Flag.Codec = format.CodecID(data[2])
	h.Flag.Compression = format.CompressionType(data[3])
	h.ListCount = engine.Uint32(data[4:8])
	h.PayloadWords = engine.Uint32(data[8:12])
	h.PayloadSize = engine.Uint32(data[12:16])
	h.TotalValues = engine.Uint64(data[16:24])
	h.Checksum = engine.Uint64(data[24:32])

	return h.Flag.Validate()
}

// Bytes serializes the header into a new 32-byte slice.
func (h *PostingHeader) Bytes() []byte {
	b := make([]byte, HeaderSize)
	h.WriteToSlice(b)

	return b
}

// WriteToSlice serializes the header into the first 32 bytes of data.
func (h *PostingHeader) WriteToSlice(data []byte) {
	engine := endian.GetLittleEndianEngine()

	_ = data[HeaderSize-1]
	engine.PutUint16(data[0:2], h.Flag.Options)
	data[2] = uint8(h.Flag.Codec)
	data[3] = uint8(h.Flag.Compression)
	engine.PutUint32(data[4:8], h.ListCount)
	engine.PutUint32(data[8:12], h.PayloadWords)
	engine.PutUint32(data[12:16], h.PayloadSize)
	engine.PutUint64(data[16:24], h.TotalValues)
	engine.PutUint64(data[24:32], h.Checksum)
}

// IndexSize returns the byte length of the index section described by the header.
func (h *PostingHeader) IndexSize() int {
	return int(h.ListCount) * ListIndexEntrySize
}

// PayloadOffset returns the byte offset where the payload starts.
func (h *PostingHeader) PayloadOffset() int {
	return IndexOffset + h.IndexSize()
}

// ParsePostingHeader parses a PostingHeader from the start of data.
//
// Parameters:
//   - data: Byte slice containing header (must be at least 32 bytes)
//
// Returns:
//   - PostingHeader: Parsed header struct
//   - error: ErrInvalidHeaderSize or flag validation errors
func ParsePostingHeader(data []byte) (PostingHeader, error) {
	if len(data) < HeaderSize {
		return PostingHeader{}, errs.ErrInvalidHeaderSize
	}

	h := PostingHeader{}
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return PostingHeader{}, err
	}

	return h, nil
}
