// Package compress provides the optional second-stage compression of posting payloads.
//
// Posting lists are first encoded by an integer codec from the codec package. The
// resulting word payload can then be compressed once more as a whole, which pays off
// for codecs that leave byte-level redundancy behind (Variable-Byte, Simple-9) and
// rarely for the bit-packed ones. The posting header records the algorithm and the raw
// payload size, so decompression always knows the exact output size.
//
// # Supported Algorithms
//
//   - None (format.CompressionNone): payload stored as-is
//   - Zstd (format.CompressionZstd): best ratio; pure Go by default, cgo bindings with
//     the gozstd build tag
//   - S2 (format.CompressionS2): balanced speed and ratio
//   - LZ4 (format.CompressionLZ4): fastest decompression, raw block format
//
// # Usage
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//		return err
//	}
//	compressed, err := codec.Compress(payload)
//	...
//	payload, err = codec.Decompress(compressed, rawSize)
//
// # Thread Safety
//
// All codecs are stateless values; encoders and decoders they use internally are taken
// from sync.Pools per call. They are safe for concurrent use.
package compress
