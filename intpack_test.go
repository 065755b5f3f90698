package intpack

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/intpack/blob"
	"github.com/arloliu/intpack/errs"
	"github.com/arloliu/intpack/format"
)

func TestEncodeDecode(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	values := make([]uint32, 1000)
	for i := range values {
		values[i] = uint32(rng.Intn(1 << 12))
	}

	for _, id := range format.Codecs {
		t.Run(id.String(), func(t *testing.T) {
			in := values
			if id == format.CodecBinaryInterpolative {
				in = make([]uint32, len(values))
				for i := range in {
					in[i] = uint32(i * 3)
				}
			}

			words, err := Encode(id, in)
			require.NoError(t, err)
			require.Equal(t, len(words), cap(words))

			got, err := Decode(id, words, len(in))
			require.NoError(t, err)
			require.Equal(t, in, got)

			data, err := EncodeBytes(id, in)
			require.NoError(t, err)
			require.Len(t, data, len(words)*4)

			got, err = DecodeBytes(id, data, len(in))
			require.NoError(t, err)
			require.Equal(t, in, got)
		})
	}
}

func TestEncodeDecode_Errors(t *testing.T) {
	_, err := Encode(format.CodecID(0x7F), []uint32{1})
	require.ErrorIs(t, err, errs.ErrUnknownCodec)

	_, err = Encode(format.CodecGamma, nil)
	require.ErrorIs(t, err, errs.ErrInvalidArgument)

	_, err = Decode(format.CodecGamma, []uint32{0}, 0)
	require.ErrorIs(t, err, errs.ErrInvalidArgument)

	_, err = DecodeBytes(format.CodecGamma, []byte{1, 2, 3}, 1)
	require.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestPostingRoundTrip(t *testing.T) {
	lists := [][]uint32{{3, 7, 8, 21}, {1}, {100, 101, 102, 5000}}

	encoder, err := NewPostingEncoder(
		blob.WithCodec(format.CodecVSEncodingDP),
		blob.WithPayloadCompression(format.CompressionZstd),
	)
	require.NoError(t, err)
	for _, list := range lists {
		require.NoError(t, encoder.AddList(list))
	}

	posting, err := encoder.Finish()
	require.NoError(t, err)

	decoder, err := NewPostingDecoder(posting.Bytes())
	require.NoError(t, err)
	require.Equal(t, len(lists), decoder.ListCount())

	for i, want := range lists {
		got, err := decoder.List(i)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}
