package endian

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/intpack/errs"
)

func TestGetEngines(t *testing.T) {
	require.Equal(t, binary.LittleEndian, GetLittleEndianEngine())
	require.Equal(t, binary.BigEndian, GetBigEndianEngine())
}

func TestAppendWords_LittleEndianLayout(t *testing.T) {
	engine := GetLittleEndianEngine()

	buf := AppendWords(engine, nil, []uint32{0x04030201, 0xA0B0C0D0})

	require.Equal(t, []byte{0x01, 0x02, 0x03, 0x04, 0xD0, 0xC0, 0xB0, 0xA0}, buf)
}

func TestAppendWords_KeepsPrefix(t *testing.T) {
	engine := GetLittleEndianEngine()

	buf := AppendWords(engine, []byte{0xFF}, []uint32{1})

	require.Equal(t, []byte{0xFF, 0x01, 0x00, 0x00, 0x00}, buf)
}

func TestWords_RoundTrip(t *testing.T) {
	for _, engine := range []EndianEngine{GetLittleEndianEngine(), GetBigEndianEngine()} {
		words := []uint32{0, 1, 0xFFFFFFFF, 0x12345678, 42}

		buf := AppendWords(engine, nil, words)
		require.Len(t, buf, len(words)*WordSize)

		decoded, err := Words(engine, buf)
		require.NoError(t, err)
		require.Equal(t, words, decoded)
	}
}

func TestPutWords(t *testing.T) {
	engine := GetLittleEndianEngine()
	words := []uint32{7, 0xDEADBEEF}
	dst := make([]byte, len(words)*WordSize)

	PutWords(engine, dst, words)

	require.Equal(t, AppendWords(engine, nil, words), dst)
}

func TestWords_RejectsPartialWord(t *testing.T) {
	_, err := Words(GetLittleEndianEngine(), []byte{1, 2, 3})
	require.ErrorIs(t, err, errs.ErrInvalidArgument)
}
