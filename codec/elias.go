package codec

import (
	"github.com/arloliu/intpack/bitstream"
)

// Elias codes each value independently as the Elias gamma or delta code of v+1.
type Elias struct {
	delta bool
}

var _ Codec = (*Elias)(nil)

// NewGamma creates an Elias gamma codec.
func NewGamma() *Elias {
	return &Elias{}
}

// NewDelta creates an Elias delta codec.
func NewDelta() *Elias {
	return &Elias{delta: true}
}

func (e *Elias) codeLen(v uint32) int {
	if e.delta {
		return bitstream.DeltaLen(v)
	}

	return bitstream.GammaLen(v)
}

// EncodeArray implements Codec.
func (e *Elias) EncodeArray(in, out []uint32) (int, error) {
	if err := checkBuffers(in, out); err != nil {
		return 0, err
	}

	var nbits uint64
	for _, v := range in {
		nbits += uint64(e.codeLen(v)) //nolint: gosec
	}
	need := bitstream.WordsFor(nbits)
	if err := checkCapacity(need, out); err != nil {
		return 0, err
	}

	w := bitstream.NewWriter(out[:need])
	if e.delta {
		for _, v := range in {
			w.WriteDelta(v)
		}
	} else {
		for _, v := range in {
			w.WriteGamma(v)
		}
	}
	if err := w.Flush(); err != nil {
		return 0, err
	}

	return w.Size(), nil
}

// DecodeArray implements Codec.
func (e *Elias) DecodeArray(in, out []uint32) error {
	if err := checkBuffers(in, out); err != nil {
		return err
	}

	r := bitstream.NewReader(in)
	for i := range out {
		if e.delta {
			out[i] = r.ReadDelta()
		} else {
			out[i] = r.ReadGamma()
		}

		if err := r.Err(); err != nil {
			return err
		}
	}

	return nil
}

// RequiredCapacity implements Codec.
func (e *Elias) RequiredCapacity(n int) int {
	worst := bitstream.GammaLen(^uint32(0))
	if e.delta {
		worst = bitstream.DeltaLen(^uint32(0))
	}

	return bitstream.WordsFor(uint64(n) * uint64(worst)) //nolint: gosec
}
