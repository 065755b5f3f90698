package blob

import (
	"fmt"
	"iter"

	"github.com/arloliu/intpack/codec"
	"github.com/arloliu/intpack/compress"
	"github.com/arloliu/intpack/endian"
	"github.com/arloliu/intpack/errs"
	"github.com/arloliu/intpack/format"
	"github.com/arloliu/intpack/internal/hash"
	"github.com/arloliu/intpack/section"
)

// PostingDecoder gives random access to the lists of an encoded posting blob.
//
// The payload is verified and decompressed once, in NewPostingDecoder. Each List call
// decodes a single codec stream.
type PostingDecoder struct {
	header  section.PostingHeader
	entries []section.ListIndexEntry
	words   []uint32
	codec   codec.Codec
	size    int
}

// NewPostingDecoder parses and verifies an encoded posting blob.
//
// Parameters:
//   - data: Encoded blob byte slice
//
// Returns:
//   - *PostingDecoder: Decoder ready for List and All
//   - error: Header errors, ErrInvalidIndexEntrySize for a truncated index,
//     ErrPayloadSizeMismatch for a truncated payload, ErrChecksumMismatch when the
//     payload does not match the stored checksum, or decompression errors
func NewPostingDecoder(data []byte) (*PostingDecoder, error) {
	d := &PostingDecoder{size: len(data)}

	if err := d.parseHeader(data); err != nil {
		return nil, err
	}

	if err := d.parseIndexEntries(data); err != nil {
		return nil, err
	}

	if err := d.parsePayload(data); err != nil {
		return nil, err
	}

	return d, nil
}

func (d *PostingDecoder) parseHeader(data []byte) error {
	header, err := section.ParsePostingHeader(data)
	if err != nil {
		return err
	}
	d.header = header

	d.codec, err = codec.GetCodec(header.Flag.Codec)

	return err
}

func (d *PostingDecoder) parseIndexEntries(data []byte) error {
	if len(data) < d.header.PayloadOffset() {
		return fmt.Errorf("%w: index needs %d bytes, blob has %d",
			errs.ErrInvalidIndexEntrySize, d.header.IndexSize(), len(data)-section.IndexOffset)
	}

	d.entries = make([]section.ListIndexEntry, d.header.ListCount)
	offset := section.IndexOffset
	for i := range d.entries {
		entry, err := section.ParseListIndexEntry(data[offset:])
		if err != nil {
			return err
		}

		end := uint64(entry.WordOffset) + uint64(entry.WordCount)
		if end > uint64(d.header.PayloadWords) {
			return fmt.Errorf("%w: list %d spans words [%d, %d) of %d",
				errs.ErrFormatMismatch, i, entry.WordOffset, end, d.header.PayloadWords)
		}
		if entry.Count > 1 && entry.WordCount == 0 {
			return fmt.Errorf("%w: list %d has %d IDs and no stream", errs.ErrFormatMismatch, i, entry.Count)
		}

		d.entries[i] = entry
		offset += section.ListIndexEntrySize
	}

	return nil
}

func (d *PostingDecoder) parsePayload(data []byte) error {
	start := d.header.PayloadOffset()
	stored := data[start:]
	if len(stored) != int(d.header.PayloadSize) {
		return fmt.Errorf("%w: stored payload is %d bytes, header says %d",
			errs.ErrPayloadSizeMismatch, len(stored), d.header.PayloadSize)
	}

	if !hash.Verify(stored, d.header.Checksum) {
		return fmt.Errorf("%w: expected %016x, got %016x", errs.ErrChecksumMismatch, d.header.Checksum, hash.Checksum(stored))
	}

	decompressor, err := compress.GetCodec(d.header.Flag.Compression)
	if err != nil {
		return err
	}

	raw, err := decompressor.Decompress(stored, int(d.header.PayloadWords)*endian.WordSize)
	if err != nil {
		return fmt.Errorf("failed to decompress posting payload: %w", err)
	}

	d.words, err = endian.Words(endian.GetLittleEndianEngine(), raw)

	return err
}

// Header returns a copy of the parsed blob header.
func (d *PostingDecoder) Header() section.PostingHeader {
	return d.header
}

// ListCount returns the number of posting lists in the blob.
func (d *PostingDecoder) ListCount() int {
	return len(d.entries)
}

// Len returns the number of IDs in list i, or 0 when i is out of range.
func (d *PostingDecoder) Len(i int) int {
	if i < 0 || i >= len(d.entries) {
		return 0
	}

	return int(d.entries[i].Count)
}

// List decodes list i into a new slice.
//
// Returns:
//   - []uint32: The list's document IDs in increasing order
//   - error: ErrInvalidListIndex when i is out of range, or a codec error
func (d *PostingDecoder) List(i int) ([]uint32, error) {
	if i < 0 || i >= len(d.entries) {
		return nil, fmt.Errorf("%w: %d of %d", errs.ErrInvalidListIndex, i, len(d.entries))
	}

	return d.decodeEntry(d.entries[i], nil)
}

// AppendList decodes list i and appends its IDs to dst.
func (d *PostingDecoder) AppendList(dst []uint32, i int) ([]uint32, error) {
	if i < 0 || i >= len(d.entries) {
		return dst, fmt.Errorf("%w: %d of %d", errs.ErrInvalidListIndex, i, len(d.entries))
	}

	return d.decodeEntry(d.entries[i], dst)
}

func (d *PostingDecoder) decodeEntry(entry section.ListIndexEntry, dst []uint32) ([]uint32, error) {
	start := len(dst)
	dst = append(dst, make([]uint32, entry.Count)...)
	out := dst[start:]
	if len(out) == 0 {
		return dst, nil
	}

	out[0] = entry.Base
	if len(out) == 1 {
		return dst, nil
	}

	stream := d.words[entry.WordOffset : entry.WordOffset+entry.WordCount]
	if err := d.codec.DecodeArray(stream, out[1:]); err != nil {
		return dst[:start], err
	}

	if d.header.Flag.Codec != format.CodecBinaryInterpolative {
		for j := 1; j < len(out); j++ {
			out[j] += out[j-1] + 1
		}
	}

	return dst, nil
}

// All returns an iterator over every list in index order.
//
// Iteration stops at the first list that fails to decode; use List to observe the error.
func (d *PostingDecoder) All() iter.Seq2[int, []uint32] {
	return func(yield func(int, []uint32) bool) {
		for i, entry := range d.entries {
			list, err := d.decodeEntry(entry, nil)
			if err != nil {
				return
			}

			if !yield(i, list) {
				return
			}
		}
	}
}

// Stats returns size statistics for the decoded blob.
func (d *PostingDecoder) Stats() PostingStats {
	return newPostingStats(d.header, d.size)
}
