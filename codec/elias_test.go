package codec

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/intpack/bitstream"
)

func TestElias_Sizes(t *testing.T) {
	values := []uint32{0, 1, 2, 3, 1000}

	gamma := NewGamma()
	out := make([]uint32, gamma.RequiredCapacity(len(values)))
	n, err := gamma.EncodeArray(values, out)
	require.NoError(t, err)
	// 1 + 3 + 3 + 5 + 19 bits
	require.Equal(t, bitstream.WordsFor(31), n)
	// v=0 is a lone one bit, v=1 is 010
	require.Equal(t, uint32(0b1010), out[0]>>28)

	delta := NewDelta()
	n, err = delta.EncodeArray(values, make([]uint32, delta.RequiredCapacity(len(values))))
	require.NoError(t, err)
	require.Equal(t, bitstream.WordsFor(1+4+4+5+16), n)
}

func TestElias_RequiredCapacity(t *testing.T) {
	require.Equal(t, bitstream.WordsFor(65*10), NewGamma().RequiredCapacity(10))
	require.Equal(t, bitstream.WordsFor(43*10), NewDelta().RequiredCapacity(10))
}
