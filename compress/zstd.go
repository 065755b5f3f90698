package compress

// ZstdCompressor provides Zstandard compression, the best ratio of the built-in codecs.
//
// The default build uses the pure-Go klauspost/compress implementation. Building with
// the gozstd tag (and cgo enabled) switches to the valyala/gozstd bindings to the
// reference C library. Both produce standard zstd frames, so payloads are interchangeable.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
//
// Example:
//
//	compressor := NewZstdCompressor()
//	compressed, err := compressor.Compress(data)
//	if err != nil {
//		return err
//	}
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
