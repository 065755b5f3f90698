//go:build gozstd && cgo

package compress

import (
	"github.com/valyala/gozstd"

	"github.com/arloliu/intpack/format"
)

const zstdLevel = 3

// Compress compresses the input data using Zstandard compression.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, zstdLevel), nil
}

// Decompress decompresses Zstd-compressed data into a buffer sized for rawSize bytes.
func (c ZstdCompressor) Decompress(data []byte, rawSize int) ([]byte, error) {
	if len(data) == 0 {
		return nil, checkSize(format.CompressionZstd, 0, rawSize)
	}

	out, err := gozstd.Decompress(make([]byte, 0, rawSize), data)
	if err != nil {
		return nil, err
	}
	if err := checkSize(format.CompressionZstd, len(out), rawSize); err != nil {
		return nil, err
	}

	return out, nil
}
