// Package endian provides the byte order used for every persisted intpack field.
//
// Codec streams are produced as 32-bit words. Whenever those words, or any length and
// offset fields around them, are turned into bytes they go through an EndianEngine, so
// the on-disk representation does not depend on the host architecture.
//
// # Basic Usage
//
//	engine := endian.GetLittleEndianEngine()
//	buf := endian.AppendWords(engine, nil, words)
//	words, err := endian.Words(engine, buf)
//
// # Thread Safety
//
// All functions in this package are safe for concurrent use. The returned EndianEngine
// instances are immutable and stateless.
package endian

import (
	"encoding/binary"
	"fmt"

	"github.com/arloliu/intpack/errs"
)

// WordSize is the size in bytes of one encoded stream word.
const WordSize = 4

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine, the only on-disk order intpack writes.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// AppendWords appends words to dst, four bytes per word in the engine's byte order.
func AppendWords(engine EndianEngine, dst []byte, words []uint32) []byte {
	if cap(dst)-len(dst) < len(words)*WordSize {
		grown := make([]byte, len(dst), len(dst)+len(words)*WordSize)
		copy(grown, dst)
		dst = grown
	}

	for _, w := range words {
		dst = engine.AppendUint32(dst, w)
	}

	return dst
}

// PutWords stores words into dst, which must hold at least len(words)*WordSize bytes.
func PutWords(engine EndianEngine, dst []byte, words []uint32) {
	_ = dst[len(words)*WordSize-1]
	for i, w := range words {
		engine.PutUint32(dst[i*WordSize:], w)
	}
}

// Words decodes a byte slice produced by AppendWords back into words.
//
// Returns an error wrapping errs.ErrInvalidArgument if len(src) is not a multiple of WordSize.
func Words(engine EndianEngine, src []byte) ([]uint32, error) {
	if len(src)%WordSize != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a whole number of words", errs.ErrInvalidArgument, len(src))
	}

	words := make([]uint32, len(src)/WordSize)
	for i := range words {
		words[i] = engine.Uint32(src[i*WordSize:])
	}

	return words, nil
}
