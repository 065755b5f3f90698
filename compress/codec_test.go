package compress

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/intpack/errs"
	"github.com/arloliu/intpack/format"
)

func getAllCodecs() map[format.CompressionType]Codec {
	return map[format.CompressionType]Codec{
		format.CompressionNone: NewNoOpCompressor(),
		format.CompressionZstd: NewZstdCompressor(),
		format.CompressionS2:   NewS2Compressor(),
		format.CompressionLZ4:  NewLZ4Compressor(),
	}
}

// wordPayload mimics an encoded posting payload: little-endian words with small values.
func wordPayload(words int) []byte {
	rng := rand.New(rand.NewSource(int64(words)))
	buf := make([]byte, 0, words*4)
	for range words {
		buf = binary.LittleEndian.AppendUint32(buf, uint32(rng.Intn(1<<10)))
	}

	return buf
}

func TestCreateCodec(t *testing.T) {
	for cType := range getAllCodecs() {
		c, err := CreateCodec(cType, "payload")
		require.NoError(t, err)
		require.NotNil(t, c)

		shared, err := GetCodec(cType)
		require.NoError(t, err)
		require.IsType(t, shared, c)
	}

	_, err := CreateCodec(format.CompressionType(0), "payload")
	require.ErrorIs(t, err, errs.ErrInvalidArgument)
	require.ErrorContains(t, err, "invalid payload compression")

	_, err = GetCodec(format.CompressionType(99))
	require.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestAllCodecs_RoundTrip(t *testing.T) {
	sizes := []int{1, 16, 1000, 64 * 1024}

	for cType, c := range getAllCodecs() {
		for _, words := range sizes {
			t.Run(fmt.Sprintf("%s/%d", cType, words), func(t *testing.T) {
				data := wordPayload(words)
				original := bytes.Clone(data)

				compressed, err := c.Compress(data)
				require.NoError(t, err)
				require.Equal(t, original, data, "input must not be modified")

				restored, err := c.Decompress(compressed, len(data))
				require.NoError(t, err)
				require.Equal(t, original, restored)
			})
		}
	}
}

func TestAllCodecs_EmptyData(t *testing.T) {
	for cType, c := range getAllCodecs() {
		t.Run(cType.String(), func(t *testing.T) {
			compressed, err := c.Compress(nil)
			require.NoError(t, err)

			restored, err := c.Decompress(compressed, 0)
			require.NoError(t, err)
			require.Empty(t, restored)
		})
	}
}

func TestAllCodecs_SizeMismatch(t *testing.T) {
	data := wordPayload(256)

	for cType, c := range getAllCodecs() {
		t.Run(cType.String(), func(t *testing.T) {
			compressed, err := c.Compress(data)
			require.NoError(t, err)

			_, err = c.Decompress(compressed, len(data)+4)
			require.Error(t, err)
			if cType != format.CompressionLZ4 {
				require.ErrorIs(t, err, errs.ErrPayloadSizeMismatch)
			}
		})
	}
}

func TestAllCodecs_CompressesRedundantPayload(t *testing.T) {
	data := bytes.Repeat([]byte{1, 0, 0, 0}, 4096)

	for cType, c := range getAllCodecs() {
		if cType == format.CompressionNone {
			continue
		}
		compressed, err := c.Compress(data)
		require.NoError(t, err)
		require.Less(t, len(compressed), len(data)/10, cType.String())
	}
}

func TestAllCodecs_InvalidData(t *testing.T) {
	garbage := []byte{0xFF, 0xFE, 0xFD, 0xFC, 0x01, 0x02, 0x03}

	for cType, c := range getAllCodecs() {
		if cType == format.CompressionNone {
			continue
		}
		t.Run(cType.String(), func(t *testing.T) {
			_, err := c.Decompress(garbage, 1024)
			require.Error(t, err)
		})
	}
}

func TestAllCodecs_ConcurrentUsage(t *testing.T) {
	for cType, c := range getAllCodecs() {
		t.Run(cType.String(), func(t *testing.T) {
			var wg sync.WaitGroup
			errCh := make(chan error, 16)

			for g := range 16 {
				wg.Add(1)
				go func() {
					defer wg.Done()
					data := wordPayload(100 + g)
					compressed, err := c.Compress(data)
					if err != nil {
						errCh <- err
						return
					}
					restored, err := c.Decompress(compressed, len(data))
					if err != nil {
						errCh <- err
						return
					}
					if !bytes.Equal(data, restored) {
						errCh <- fmt.Errorf("goroutine %d: payload mismatch", g)
					}
				}()
			}
			wg.Wait()
			close(errCh)

			for err := range errCh {
				require.NoError(t, err)
			}
		})
	}
}

func BenchmarkAllCodecs_Compress(b *testing.B) {
	data := wordPayload(16 * 1024)

	for cType, c := range getAllCodecs() {
		b.Run(cType.String(), func(b *testing.B) {
			b.SetBytes(int64(len(data)))
			for b.Loop() {
				_, _ = c.Compress(data)
			}
		})
	}
}

func BenchmarkAllCodecs_Decompress(b *testing.B) {
	data := wordPayload(16 * 1024)

	for cType, c := range getAllCodecs() {
		compressed, err := c.Compress(data)
		require.NoError(b, err)

		b.Run(cType.String(), func(b *testing.B) {
			b.SetBytes(int64(len(data)))
			for b.Loop() {
				_, _ = c.Decompress(compressed, len(data))
			}
		})
	}
}
