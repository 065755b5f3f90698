package codec

import (
	"fmt"

	"github.com/arloliu/intpack/errs"
)

const maxVByteLen = 5

// VariableByte stores each value as 7-bit groups, least significant first. The high bit
// is set on a value's last byte. Bytes fill each word from its lowest byte upward.
type VariableByte struct{}

var _ Codec = VariableByte{}

// NewVariableByte creates a variable-byte codec.
func NewVariableByte() VariableByte {
	return VariableByte{}
}

func vbyteLen(v uint32) int {
	n := 1
	for v >= 1<<7 {
		v >>= 7
		n++
	}

	return n
}

// EncodeArray implements Codec.
func (VariableByte) EncodeArray(in, out []uint32) (int, error) {
	if err := checkBuffers(in, out); err != nil {
		return 0, err
	}

	nbytes := 0
	for _, v := range in {
		nbytes += vbyteLen(v)
	}
	need := (nbytes + 3) / 4
	if err := checkCapacity(need, out); err != nil {
		return 0, err
	}

	clear(out[:need])
	pos := 0
	put := func(b byte) {
		out[pos>>2] |= uint32(b) << (8 * (pos & 3))
		pos++
	}
	for _, v := range in {
		for v >= 1<<7 {
			put(byte(v & 0x7F))
			v >>= 7
		}
		put(byte(v) | 0x80)
	}

	return need, nil
}

// DecodeArray implements Codec.
func (VariableByte) DecodeArray(in, out []uint32) error {
	if err := checkBuffers(in, out); err != nil {
		return err
	}

	total := len(in) * 4
	pos := 0
	for i := range out {
		var v uint32
		for shift := 0; ; shift += 7 {
			if pos == total {
				return fmt.Errorf("%w: variable-byte stream holds %d of %d values", errs.ErrFormatMismatch, i, len(out))
			}
			if shift == 7*maxVByteLen {
				return fmt.Errorf("%w: variable-byte value longer than %d bytes", errs.ErrFormatMismatch, maxVByteLen)
			}

			b := byte(in[pos>>2] >> (8 * (pos & 3)))
			pos++
			v |= uint32(b&0x7F) << shift
			if b&0x80 != 0 {
				break
			}
		}
		out[i] = v
	}

	return nil
}

// RequiredCapacity implements Codec.
func (VariableByte) RequiredCapacity(n int) int {
	return (n*maxVByteLen + 3) / 4
}
