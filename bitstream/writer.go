package bitstream

import (
	"fmt"
	"math/bits"

	"github.com/arloliu/intpack/errs"
)

// WordBits is the number of bits in one stream word.
const WordBits = 32

// Writer packs bit fields MSB-first into a fixed []uint32.
type Writer struct {
	out    []uint32
	bitBuf uint64 // pending bits, right-aligned
	count  int    // valid bits in bitBuf, always < 32 between calls
	pos    int    // index of the next word to emit
	err    error
}

// NewWriter creates a Writer that fills out from index 0.
func NewWriter(out []uint32) *Writer {
	return &Writer{out: out}
}

// Reset rewinds the writer onto a new output buffer.
func (w *Writer) Reset(out []uint32) {
	w.out = out
	w.bitBuf = 0
	w.count = 0
	w.pos = 0
	w.err = nil
}

// WriteBits appends the low width bits of v. width must be in [0, 32].
func (w *Writer) WriteBits(v uint32, width uint) {
	if width == 0 {
		return
	}

	w.bitBuf = w.bitBuf<<width | uint64(v)&mask(width)
	w.count += int(width) //nolint: gosec

	if w.count >= WordBits {
		w.count -= WordBits
		w.emit(uint32(w.bitBuf >> w.count)) //nolint: gosec
		w.bitBuf &= 1<<w.count - 1
	}
}

// WriteZeros appends n zero bits.
func (w *Writer) WriteZeros(n int) {
	for n > 0 {
		chunk := min(n, WordBits)
		w.WriteBits(0, uint(chunk)) //nolint: gosec
		n -= chunk
	}
}

// WriteGamma appends the Elias gamma code of v+1, so zero is representable.
func (w *Writer) WriteGamma(v uint32) {
	w.writeGammaX(uint64(v) + 1)
}

// WriteDelta appends the Elias delta code of v+1.
func (w *Writer) WriteDelta(v uint32) {
	x := uint64(v) + 1
	n := bits.Len64(x)
	w.writeGammaX(uint64(n))
	w.writeBits64(x, n-1)
}

func (w *Writer) writeGammaX(x uint64) {
	n := bits.Len64(x)
	w.WriteZeros(n - 1)
	w.writeBits64(x, n)
}

// writeBits64 appends the low width bits of x, width in [0, 64].
func (w *Writer) writeBits64(x uint64, width int) {
	if width > WordBits {
		w.WriteBits(uint32(x>>WordBits), uint(width-WordBits)) //nolint: gosec
		width = WordBits
	}
	w.WriteBits(uint32(x), uint(width)) //nolint: gosec
}

// Flush pads the pending partial word with zero bits and emits it.
//
// Returns:
//   - error: errs.ErrCapacityExceeded if any word did not fit in the output buffer
func (w *Writer) Flush() error {
	if w.count > 0 {
		w.emit(uint32(w.bitBuf << (WordBits - w.count))) //nolint: gosec
		w.bitBuf = 0
		w.count = 0
	}

	return w.err
}

// FlushOnes is Flush with the pending partial word padded with one bits instead.
//
// Streams whose all-zero field reads as a valid record use it, so trailing padding
// can never decode as data.
func (w *Writer) FlushOnes() error {
	if w.count > 0 {
		pad := WordBits - w.count
		w.emit(uint32(w.bitBuf<<pad | mask(uint(pad)))) //nolint: gosec
		w.bitBuf = 0
		w.count = 0
	}

	return w.err
}

// Size returns the number of words emitted so far, including words that did not fit.
func (w *Writer) Size() int {
	return w.pos
}

// BitsWritten returns the number of bits appended since the last Reset.
func (w *Writer) BitsWritten() uint64 {
	return uint64(w.pos)*WordBits + uint64(w.count) //nolint: gosec
}

// Err returns errs.ErrCapacityExceeded once a word could not be stored.
func (w *Writer) Err() error {
	return w.err
}

func (w *Writer) emit(word uint32) {
	if w.pos < len(w.out) {
		w.out[w.pos] = word
	} else if w.err == nil {
		w.err = fmt.Errorf("%w: bit stream needs more than %d words", errs.ErrCapacityExceeded, len(w.out))
	}
	w.pos++
}

func mask(width uint) uint64 {
	return 1<<width - 1
}

// WordsFor returns the number of words needed to hold nbits bits.
func WordsFor(nbits uint64) int {
	return int((nbits + WordBits - 1) / WordBits) //nolint: gosec
}

// GammaLen returns the length in bits of WriteGamma(v).
func GammaLen(v uint32) int {
	return 2*bits.Len64(uint64(v)+1) - 1
}

// DeltaLen returns the length in bits of WriteDelta(v).
func DeltaLen(v uint32) int {
	n := bits.Len64(uint64(v) + 1)
	return 2*bits.Len(uint(n)) - 1 + n - 1
}
