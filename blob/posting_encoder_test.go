package blob

import (
	"context"
	"math/rand"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/intpack/codec"
	"github.com/arloliu/intpack/errs"
	"github.com/arloliu/intpack/format"
)

var compressions = []format.CompressionType{
	format.CompressionNone,
	format.CompressionZstd,
	format.CompressionS2,
	format.CompressionLZ4,
}

// samplePostingLists generates strictly increasing lists with a mix of dense runs,
// small gaps and occasional large jumps. Gaps stay below 2^20.
func samplePostingLists(rng *rand.Rand, count int) [][]uint32 {
	lists := make([][]uint32, count)
	for i := range lists {
		n := 1 + rng.Intn(500)
		if i%7 == 0 {
			n = 1
		}

		list := make([]uint32, n)
		id := uint32(rng.Intn(1000))
		for j := range list {
			list[j] = id
			switch r := rng.Intn(10); {
			case r < 4:
				id++
			case r < 9:
				id += 1 + uint32(rng.Intn(100))
			default:
				id += 1 + uint32(rng.Intn(1<<20))
			}
		}
		lists[i] = list
	}

	return lists
}

func encodeLists(t testing.TB, lists [][]uint32, opts ...PostingEncoderOption) PostingBlob {
	t.Helper()

	encoder, err := NewPostingEncoder(opts...)
	require.NoError(t, err)

	for _, list := range lists {
		require.NoError(t, encoder.AddList(list))
	}

	posting, err := encoder.Finish()
	require.NoError(t, err)

	return posting
}

func TestNewPostingEncoder_Defaults(t *testing.T) {
	encoder, err := NewPostingEncoder()
	require.NoError(t, err)

	require.Equal(t, DefaultCodec, encoder.CodecID())
	require.NotNil(t, encoder.Codec())
	require.Equal(t, runtime.GOMAXPROCS(0), encoder.Concurrency())
	require.Equal(t, 0, encoder.ListCount())
}

func TestNewPostingEncoder_Options(t *testing.T) {
	testCases := []struct {
		name    string
		opts    []PostingEncoderOption
		wantErr error
	}{
		{name: "unknown codec", opts: []PostingEncoderOption{WithCodec(format.CodecID(0x7F))}, wantErr: errs.ErrUnknownCodec},
		{name: "unknown compression", opts: []PostingEncoderOption{WithPayloadCompression(format.CompressionType(0))}, wantErr: errs.ErrInvalidArgument},
		{name: "zero concurrency", opts: []PostingEncoderOption{WithConcurrency(0)}, wantErr: errs.ErrInvalidArgument},
		{
			name:    "vsencoding options on gamma",
			opts:    []PostingEncoderOption{WithCodec(format.CodecGamma), WithVSEncodingOptions(codec.WithAlignedCost())},
			wantErr: errs.ErrInvalidArgument,
		},
		{
			name:    "aligned cost on op",
			opts:    []PostingEncoderOption{WithCodec(format.CodecVSEncodingOP), WithVSEncodingOptions(codec.WithAlignedCost())},
			wantErr: errs.ErrInvalidArgument,
		},
		{
			name: "valid",
			opts: []PostingEncoderOption{
				WithCodec(format.CodecVSEncodingDP),
				WithVSEncodingOptions(codec.WithAlignedCost()),
				WithPayloadCompression(format.CompressionS2),
				WithConcurrency(3),
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			encoder, err := NewPostingEncoder(tc.opts...)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				require.Nil(t, encoder)

				return
			}

			require.NoError(t, err)
			require.Equal(t, format.CodecVSEncodingDP, encoder.CodecID())
			require.Equal(t, 3, encoder.Concurrency())
		})
	}
}

func TestPostingEncoder_AddList_Validation(t *testing.T) {
	encoder, err := NewPostingEncoder(WithCodec(format.CodecSimple16))
	require.NoError(t, err)

	require.ErrorIs(t, encoder.AddList(nil), errs.ErrInvalidArgument)
	require.ErrorIs(t, encoder.AddList([]uint32{1, 5, 5}), errs.ErrListNotIncreasing)
	require.ErrorIs(t, encoder.AddList([]uint32{9, 4}), errs.ErrListNotIncreasing)
	require.Equal(t, 0, encoder.ListCount())

	require.NoError(t, encoder.AddList([]uint32{0, 1, 2}))
	require.Equal(t, 1, encoder.ListCount())
}

func TestPostingEncoder_AddList_CodecDomain(t *testing.T) {
	encoder, err := NewPostingEncoder(WithCodec(format.CodecSimple9))
	require.NoError(t, err)

	// a gap above 2^28-1 cannot be packed by Simple-9
	err = encoder.AddList([]uint32{0, 1 << 30})
	require.ErrorIs(t, err, errs.ErrInvalidArgument)
	require.Equal(t, 0, encoder.ListCount())
}

func TestPostingEncoder_Finished(t *testing.T) {
	encoder, err := NewPostingEncoder()
	require.NoError(t, err)
	require.NoError(t, encoder.AddList([]uint32{1, 2, 3}))

	_, err = encoder.Finish()
	require.NoError(t, err)

	require.ErrorIs(t, encoder.AddList([]uint32{4}), errs.ErrEncoderFinished)
	require.ErrorIs(t, encoder.AddLists(context.Background(), [][]uint32{{4}}), errs.ErrEncoderFinished)

	_, err = encoder.Finish()
	require.ErrorIs(t, err, errs.ErrEncoderFinished)
}

func TestPostingEncoder_AddLists_MatchesSequential(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	lists := samplePostingLists(rng, 64)

	for _, id := range format.Codecs {
		t.Run(id.String(), func(t *testing.T) {
			sequential := encodeLists(t, lists, WithCodec(id), WithPayloadCompression(format.CompressionZstd))

			encoder, err := NewPostingEncoder(
				WithCodec(id),
				WithPayloadCompression(format.CompressionZstd),
				WithConcurrency(4),
			)
			require.NoError(t, err)

			// split across two calls to check ordering between batches too
			require.NoError(t, encoder.AddLists(context.Background(), lists[:40]))
			require.NoError(t, encoder.AddLists(context.Background(), lists[40:]))
			require.Equal(t, len(lists), encoder.ListCount())

			parallel, err := encoder.Finish()
			require.NoError(t, err)

			require.Equal(t, sequential.Bytes(), parallel.Bytes())
		})
	}
}

func TestPostingEncoder_AddLists_Error(t *testing.T) {
	encoder, err := NewPostingEncoder(WithConcurrency(2))
	require.NoError(t, err)

	lists := [][]uint32{{1, 2, 3}, {4, 5}, {8, 7}, {10}}
	err = encoder.AddLists(context.Background(), lists)
	require.ErrorIs(t, err, errs.ErrListNotIncreasing)
	require.ErrorContains(t, err, "list 2")

	// nothing from the failed batch is appended
	require.Equal(t, 0, encoder.ListCount())
}

func TestPostingEncoder_AddLists_Cancelled(t *testing.T) {
	encoder, err := NewPostingEncoder()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = encoder.AddLists(ctx, [][]uint32{{1, 2, 3}, {4, 5, 6}})
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, 0, encoder.ListCount())
}

func TestPostingEncoder_Finish_Layout(t *testing.T) {
	lists := [][]uint32{{5}, {1, 2, 3, 4}, {100, 200}}
	posting := encodeLists(t, lists, WithCodec(format.CodecGamma))

	header := posting.Header()
	require.Equal(t, uint32(3), header.ListCount)
	require.Equal(t, uint64(7), header.TotalValues)
	require.Equal(t, format.CodecGamma, posting.Codec())
	require.Equal(t, format.CompressionNone, posting.Compression())
	require.Equal(t, 3, posting.ListCount())
	require.Equal(t, header.PayloadOffset()+int(header.PayloadSize), posting.Len())

	// uncompressed payload is stored as is
	require.Equal(t, header.PayloadWords*4, header.PayloadSize)

	stats := posting.Stats()
	require.Equal(t, 3, stats.Lists)
	require.Equal(t, uint64(7), stats.Values)
	require.Equal(t, uint64(posting.Len()), stats.BlobBytes)
	require.InDelta(t, 1.0, stats.CompressionRatio(), 1e-9)
	require.Greater(t, stats.BitsPerInt(), 0.0)
}

func BenchmarkPostingEncoder_AddLists(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	lists := samplePostingLists(rng, 256)

	for _, id := range []format.CodecID{format.CodecSimple16, format.CodecVSEncodingOP, format.CodecVSEncodingDP} {
		b.Run(id.String(), func(b *testing.B) {
			for b.Loop() {
				encoder, err := NewPostingEncoder(WithCodec(id))
				if err != nil {
					b.Fatal(err)
				}
				if err := encoder.AddLists(context.Background(), lists); err != nil {
					b.Fatal(err)
				}
				if _, err := encoder.Finish(); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
