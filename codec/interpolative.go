package codec

import (
	"fmt"
	"math/bits"

	"github.com/arloliu/intpack/bitstream"
	"github.com/arloliu/intpack/errs"
)

// BinaryInterpolative codes a non-decreasing sequence by recursive bisection.
//
// The last value is stored in 32 bits. Every other value is stored relative to the
// range its already-coded neighbours allow: the middle element of a run whose values lie
// in [lo, hi] takes bits.Len32(hi-lo) bits, and a run squeezed to a single value costs
// nothing. This suits sorted document ids, which are stored directly rather than as gaps.
type BinaryInterpolative struct{}

var _ Codec = BinaryInterpolative{}

// NewBinaryInterpolative creates a binary interpolative codec.
func NewBinaryInterpolative() BinaryInterpolative {
	return BinaryInterpolative{}
}

func interpolativeBits(in []uint32, lo, hi uint32) uint64 {
	if len(in) == 0 {
		return 0
	}

	mid := len(in) / 2
	v := in[mid]

	return uint64(bits.Len32(hi-lo)) + //nolint: gosec
		interpolativeBits(in[:mid], lo, v) +
		interpolativeBits(in[mid+1:], v, hi)
}

func encodeInterpolative(w *bitstream.Writer, in []uint32, lo, hi uint32) {
	if len(in) == 0 {
		return
	}

	mid := len(in) / 2
	v := in[mid]
	w.WriteBits(v-lo, uint(bits.Len32(hi-lo))) //nolint: gosec
	encodeInterpolative(w, in[:mid], lo, v)
	encodeInterpolative(w, in[mid+1:], v, hi)
}

func decodeInterpolative(r *bitstream.Reader, out []uint32, lo, hi uint32) bool {
	if len(out) == 0 {
		return true
	}

	mid := len(out) / 2
	v := lo + r.ReadBits(uint(bits.Len32(hi-lo))) //nolint: gosec
	if v < lo || v > hi || r.Overrun() {
		return false
	}
	out[mid] = v

	return decodeInterpolative(r, out[:mid], lo, v) && decodeInterpolative(r, out[mid+1:], v, hi)
}

// EncodeArray implements Codec. in must be non-decreasing.
func (BinaryInterpolative) EncodeArray(in, out []uint32) (int, error) {
	if err := checkBuffers(in, out); err != nil {
		return 0, err
	}

	for i := 1; i < len(in); i++ {
		if in[i] < in[i-1] {
			return 0, fmt.Errorf("%w: interpolative input decreases at index %d", errs.ErrInvalidArgument, i)
		}
	}

	last := in[len(in)-1]
	nbits := bitstream.WordBits + interpolativeBits(in[:len(in)-1], 0, last)
	need := bitstream.WordsFor(nbits)
	if err := checkCapacity(need, out); err != nil {
		return 0, err
	}

	w := bitstream.NewWriter(out[:need])
	w.WriteBits(last, bitstream.WordBits)
	encodeInterpolative(w, in[:len(in)-1], 0, last)
	if err := w.Flush(); err != nil {
		return 0, err
	}

	return w.Size(), nil
}

// DecodeArray implements Codec.
func (BinaryInterpolative) DecodeArray(in, out []uint32) error {
	if err := checkBuffers(in, out); err != nil {
		return err
	}

	r := bitstream.NewReader(in)
	last := r.ReadBits(bitstream.WordBits)
	out[len(out)-1] = last

	if !decodeInterpolative(r, out[:len(out)-1], 0, last) {
		return fmt.Errorf("%w: interpolative stream too short or out of range", errs.ErrFormatMismatch)
	}

	return r.Err()
}

// RequiredCapacity implements Codec.
func (BinaryInterpolative) RequiredCapacity(n int) int {
	return bitstream.WordsFor(uint64(n) * bitstream.WordBits) //nolint: gosec
}
