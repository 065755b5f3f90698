package codec

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/intpack/errs"
)

func TestVariableByte_Layout(t *testing.T) {
	c := NewVariableByte()
	out := make([]uint32, c.RequiredCapacity(2))

	// 1 -> 0x81; 300 -> 0x2C, 0x82
	n, err := c.EncodeArray([]uint32{1, 300}, out)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Equal(t, uint32(0x00822C81), out[0])
}

func TestVariableByte_Lengths(t *testing.T) {
	tests := []struct {
		v    uint32
		want int
	}{
		{0, 1},
		{127, 1},
		{128, 2},
		{1<<14 - 1, 2},
		{1 << 14, 3},
		{1<<28 - 1, 4},
		{1 << 28, 5},
		{0xFFFFFFFF, 5},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, vbyteLen(tt.v), "value %d", tt.v)
	}
}

func TestVariableByte_RejectsOverlongValue(t *testing.T) {
	// six continuation bytes never terminate a value
	err := NewVariableByte().DecodeArray([]uint32{0, 0}, make([]uint32, 1))
	require.ErrorIs(t, err, errs.ErrFormatMismatch)
}
