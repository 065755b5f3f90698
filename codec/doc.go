// Package codec implements integer-array codecs over 32-bit word streams.
//
// Every codec satisfies the same three-method Codec contract and is selected by a
// format.CodecID through CreateCodec or GetCodec:
//
//   - VSEncoding (DP, Blocks, OP): adaptive block partitioning plus bit packing. The
//     sequence is split into blocks with the partition package, and each block stores its
//     K values in B bits, where B is the block's widest value rounded to a canonical width.
//   - Simple9 and Simple16: a 4-bit selector per word chooses how many values share it.
//   - Gamma and Delta: Elias codes of v+1.
//   - VariableByte: 7 data bits per byte, with the high bit marking a value's last byte.
//   - BinaryInterpolative: recursive midpoint coding of non-decreasing sequences.
//
// # Buffers
//
// Callers own both buffers. EncodeArray computes the exact encoded size before it writes,
// so a too-small output fails with errs.ErrCapacityExceeded and is left untouched.
// RequiredCapacity returns a size that is always large enough. DecodeArray fills the
// whole output slice; the stream must have been produced by the same codec for the same
// number of values. A stream that ends early or describes more values than the output
// holds fails with errs.ErrFormatMismatch, and no codec reads past the end of its input.
//
// # Thread Safety
//
// Codecs are immutable after construction and safe for concurrent use.
package codec
