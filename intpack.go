// Package intpack compresses arrays of 32-bit integers, such as posting-list d-gaps,
// with the VSEncoding codec family and a set of classic integer codecs.
//
// VSEncoding splits a sequence into variable-length blocks, each packed at a single bit
// width chosen by dynamic programming. Three variants differ in how blocks are chosen and
// described:
//
//   - VSEncodingDP: exact partitioning over block lengths {1,2,4,6,8,16,32,64}
//   - VSEncodingBlocks: exact partitioning with all-zero runs of up to 16384 values
//   - VSEncodingOP: approximate partitioning with unrestricted block lengths, whose
//     lengths are stored separately with Simple-16
//
// Gamma, Delta, VariableByte, BinaryInterpolative, Simple9 and Simple16 share the
// same Codec interface.
//
// # Basic Usage
//
// Encoding a single sequence:
//
//	words, err := intpack.Encode(format.CodecVSEncodingOP, gaps)
//	gaps, err = intpack.Decode(format.CodecVSEncodingOP, words, len(gaps))
//
// Storing many posting lists in one blob:
//
//	encoder, _ := intpack.NewPostingEncoder(blob.WithCodec(format.CodecVSEncodingDP))
//	encoder.AddList([]uint32{3, 7, 8, 21})
//	posting, _ := encoder.Finish()
//
//	decoder, _ := intpack.NewPostingDecoder(posting.Bytes())
//	ids, _ := decoder.List(0)
//
// # Package Structure
//
// This package provides convenient top-level wrappers. For fine-grained control use the
// codec, partition and blob packages directly.
package intpack

import (
	"fmt"

	"github.com/arloliu/intpack/blob"
	"github.com/arloliu/intpack/codec"
	"github.com/arloliu/intpack/endian"
	"github.com/arloliu/intpack/errs"
	"github.com/arloliu/intpack/format"
)

// Encode encodes values with the built-in codec id and returns exactly the words written.
//
// Returns an error wrapping errs.ErrUnknownCodec for an unregistered id, or the codec's
// own error for input outside its domain.
func Encode(id format.CodecID, values []uint32) ([]uint32, error) {
	c, err := codec.GetCodec(id)
	if err != nil {
		return nil, err
	}

	out := make([]uint32, c.RequiredCapacity(len(values)))
	n, err := c.EncodeArray(values, out)
	if err != nil {
		return nil, err
	}

	return out[:n:n], nil
}

// Decode decodes n values from words with the built-in codec id.
func Decode(id format.CodecID, words []uint32, n int) ([]uint32, error) {
	c, err := codec.GetCodec(id)
	if err != nil {
		return nil, err
	}

	if n <= 0 {
		return nil, fmt.Errorf("%w: value count %d", errs.ErrInvalidArgument, n)
	}

	out := make([]uint32, n)
	if err := c.DecodeArray(words, out); err != nil {
		return nil, err
	}

	return out, nil
}

// EncodeBytes encodes values like Encode and serializes the words little-endian.
func EncodeBytes(id format.CodecID, values []uint32) ([]byte, error) {
	words, err := Encode(id, values)
	if err != nil {
		return nil, err
	}

	return endian.AppendWords(endian.GetLittleEndianEngine(), nil, words), nil
}

// DecodeBytes decodes n values from a little-endian byte stream produced by EncodeBytes.
func DecodeBytes(id format.CodecID, data []byte, n int) ([]uint32, error) {
	words, err := endian.Words(endian.GetLittleEndianEngine(), data)
	if err != nil {
		return nil, err
	}

	return Decode(id, words, n)
}

// NewPostingEncoder creates a posting blob encoder.
//
// Available options:
//   - blob.WithCodec(format.CodecID)
//   - blob.WithVSEncodingOptions(...codec.VSEncodingOption)
//   - blob.WithPayloadCompression(format.CompressionNone|Zstd|S2|LZ4)
//   - blob.WithConcurrency(n)
func NewPostingEncoder(opts ...blob.PostingEncoderOption) (*blob.PostingEncoder, error) {
	return blob.NewPostingEncoder(opts...)
}

// NewPostingDecoder parses and verifies a posting blob.
func NewPostingDecoder(data []byte) (*blob.PostingDecoder, error) {
	return blob.NewPostingDecoder(data)
}
