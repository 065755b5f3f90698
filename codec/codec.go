package codec

import (
	"fmt"

	"github.com/arloliu/intpack/errs"
	"github.com/arloliu/intpack/format"
)

// Codec encodes and decodes arrays of 32-bit integers into 32-bit word streams.
type Codec interface {
	// EncodeArray encodes in into out and returns the number of words written.
	//
	// Returns an error wrapping errs.ErrInvalidArgument when in or out is empty or in
	// holds a value the codec cannot represent, and errs.ErrCapacityExceeded when the
	// encoded stream does not fit in out. out is not modified on error.
	EncodeArray(in, out []uint32) (int, error)

	// DecodeArray decodes exactly len(out) values from in.
	//
	// Returns an error wrapping errs.ErrInvalidArgument when in or out is empty, and
	// errs.ErrFormatMismatch when in does not hold len(out) values.
	DecodeArray(in, out []uint32) error

	// RequiredCapacity returns the number of words that is always enough to encode n values.
	RequiredCapacity(n int) int
}

func checkBuffers(in, out []uint32) error {
	if len(in) == 0 {
		return fmt.Errorf("%w: empty input", errs.ErrInvalidArgument)
	}
	if len(out) == 0 {
		return fmt.Errorf("%w: empty output", errs.ErrInvalidArgument)
	}

	return nil
}

func checkCapacity(need int, out []uint32) error {
	if need > len(out) {
		return fmt.Errorf("%w: need %d words, have %d", errs.ErrCapacityExceeded, need, len(out))
	}

	return nil
}

// CreateCodec returns a new codec instance for id.
//
// Returns an error wrapping errs.ErrUnknownCodec when id is not registered.
func CreateCodec(id format.CodecID) (Codec, error) {
	switch id {
	case format.CodecGamma:
		return NewGamma(), nil
	case format.CodecDelta:
		return NewDelta(), nil
	case format.CodecVariableByte:
		return NewVariableByte(), nil
	case format.CodecBinaryInterpolative:
		return NewBinaryInterpolative(), nil
	case format.CodecSimple9:
		return NewSimple9(), nil
	case format.CodecSimple16:
		return NewSimple16(), nil
	case format.CodecVSEncodingDP:
		return NewVSEncodingDP()
	case format.CodecVSEncodingOP:
		return NewVSEncodingOP()
	case format.CodecVSEncodingBlocks:
		return NewVSEncodingBlocks()
	default:
		return nil, fmt.Errorf("%w: %d", errs.ErrUnknownCodec, id)
	}
}

var builtinCodecs = func() map[format.CodecID]Codec {
	m := make(map[format.CodecID]Codec, len(format.Codecs))
	for _, id := range format.Codecs {
		c, err := CreateCodec(id)
		if err != nil {
			panic(fmt.Sprintf("codec: default %s codec: %v", id, err))
		}
		m[id] = c
	}

	return m
}()

// GetCodec returns the shared built-in codec for id.
//
// Returns an error wrapping errs.ErrUnknownCodec when id is not registered.
func GetCodec(id format.CodecID) (Codec, error) {
	if c, ok := builtinCodecs[id]; ok {
		return c, nil
	}

	return nil, fmt.Errorf("%w: %d", errs.ErrUnknownCodec, id)
}
