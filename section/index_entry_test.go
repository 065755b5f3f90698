package section

import (
	"testing"

	"github.com/arloliu/intpack/errs"
	"github.com/stretchr/testify/require"
)

func TestListIndexEntry_RoundTrip(t *testing.T) {
	testCases := []struct {
		name  string
		entry ListIndexEntry
	}{
		{name: "zero", entry: ListIndexEntry{}},
		{name: "single element", entry: NewListIndexEntry(1, 42)},
		{name: "typical", entry: ListIndexEntry{Count: 1000, Base: 17, WordOffset: 4096, WordCount: 250}},
		{name: "max values", entry: ListIndexEntry{Count: ^uint32(0), Base: ^uint32(0), WordOffset: MaxWordOffset, WordCount: ^uint32(0)}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			data := tc.entry.Bytes()
			require.Len(t, data, ListIndexEntrySize)

			parsed, err := ParseListIndexEntry(data)
			require.NoError(t, err)
			require.Equal(t, tc.entry, parsed)
		})
	}
}

func TestListIndexEntry_WriteToSlice(t *testing.T) {
	entries := []ListIndexEntry{
		{Count: 3, Base: 10, WordOffset: 0, WordCount: 1},
		{Count: 5, Base: 99, WordOffset: 1, WordCount: 2},
	}

	buf := make([]byte, len(entries)*ListIndexEntrySize)
	offset := 0
	for i := range entries {
		offset = entries[i].WriteToSlice(buf, offset)
	}
	require.Equal(t, len(buf), offset)

	for i, want := range entries {
		require.Equal(t, want.Bytes(), buf[i*ListIndexEntrySize:(i+1)*ListIndexEntrySize])
	}

	// little-endian layout
	require.Equal(t, []byte{3, 0, 0, 0, 10, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0}, buf[:ListIndexEntrySize])
}

func TestListIndexEntry_Values(t *testing.T) {
	require.Equal(t, 0, ListIndexEntry{}.Values())
	require.Equal(t, 0, NewListIndexEntry(1, 5).Values())
	require.Equal(t, 9, NewListIndexEntry(10, 5).Values())
}

func TestParseListIndexEntry_TooShort(t *testing.T) {
	_, err := ParseListIndexEntry(make([]byte, ListIndexEntrySize-1))
	require.ErrorIs(t, err, errs.ErrInvalidIndexEntrySize)
}
