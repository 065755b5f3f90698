package bitstream

import (
	"fmt"

	"github.com/arloliu/intpack/errs"
)

// maxGammaZeros bounds the unary prefix of a gamma code: v+1 for a uint32 v has at most 33 bits.
const maxGammaZeros = 32

// Reader extracts bit fields written by Writer.
type Reader struct {
	in      []uint32
	bitBuf  uint64 // pending bits, right-aligned
	count   int    // valid bits in bitBuf
	pos     int    // index of the next word to load
	overrun bool
	corrupt bool
}

// NewReader creates a Reader positioned at the first bit of in.
func NewReader(in []uint32) *Reader {
	return &Reader{in: in}
}

// Reset rewinds the reader onto a new input buffer.
func (r *Reader) Reset(in []uint32) {
	*r = Reader{in: in}
}

// ReadBits reads width bits, width in [0, 32].
//
// Past the end of the input the reader supplies zero bits and marks the stream as overrun.
func (r *Reader) ReadBits(width uint) uint32 {
	if width == 0 {
		return 0
	}

	for r.count < int(width) { //nolint: gosec
		var word uint32
		if r.pos < len(r.in) {
			word = r.in[r.pos]
		} else {
			r.overrun = true
		}
		r.pos++
		r.bitBuf = r.bitBuf<<WordBits | uint64(word)
		r.count += WordBits
	}

	r.count -= int(width) //nolint: gosec
	v := uint32(r.bitBuf>>r.count) & uint32(mask(width)) //nolint: gosec
	r.bitBuf &= 1<<r.count - 1

	return v
}

// ReadGamma reads a value written by Writer.WriteGamma.
func (r *Reader) ReadGamma() uint32 {
	x, ok := r.readGammaX()
	if !ok || x > 1<<WordBits {
		r.corrupt = true
		return 0
	}

	return uint32(x - 1) //nolint: gosec
}

// ReadDelta reads a value written by Writer.WriteDelta.
func (r *Reader) ReadDelta() uint32 {
	n, ok := r.readGammaX()
	if !ok || n == 0 || n > WordBits+1 {
		r.corrupt = true
		return 0
	}

	x := uint64(1)<<(n-1) | r.readBits64(int(n-1)) //nolint: gosec
	if x > 1<<WordBits {
		r.corrupt = true
		return 0
	}

	return uint32(x - 1) //nolint: gosec
}

func (r *Reader) readGammaX() (uint64, bool) {
	zeros := 0
	for r.ReadBits(1) == 0 {
		zeros++
		if zeros > maxGammaZeros || r.overrun {
			return 0, false
		}
	}

	return uint64(1)<<zeros | r.readBits64(zeros), true
}

func (r *Reader) readBits64(width int) uint64 {
	var hi uint64
	if width > WordBits {
		hi = uint64(r.ReadBits(uint(width-WordBits))) << WordBits //nolint: gosec
		width = WordBits
	}

	return hi | uint64(r.ReadBits(uint(width))) //nolint: gosec
}

// Overrun reports whether any read went past the end of the input.
func (r *Reader) Overrun() bool {
	return r.overrun
}

// WordsConsumed returns the number of input words loaded so far, capped at len(in).
func (r *Reader) WordsConsumed() int {
	return min(r.pos, len(r.in))
}

// Err returns errs.ErrFormatMismatch when the stream ran past its input or held an
// impossible gamma/delta code.
func (r *Reader) Err() error {
	switch {
	case r.overrun:
		return fmt.Errorf("%w: bit stream ends after %d words", errs.ErrFormatMismatch, len(r.in))
	case r.corrupt:
		return fmt.Errorf("%w: invalid variable-length code", errs.ErrFormatMismatch)
	default:
		return nil
	}
}
