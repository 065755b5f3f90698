package codec

import (
	"fmt"

	"github.com/arloliu/intpack/errs"
)

const (
	selectorShift = 28
	maxSimpleBits = 28

	// MaxSimpleValue is the largest value Simple9 and Simple16 can store.
	MaxSimpleValue = 1<<maxSimpleBits - 1
)

// slots expands (count, width) runs into per-slot widths.
func slots(runs ...[2]uint8) []uint8 {
	var s []uint8
	for _, r := range runs {
		for range r[0] {
			s = append(s, r[1])
		}
	}

	return s
}

var simple9Layouts = [][]uint8{
	slots([2]uint8{28, 1}),
	slots([2]uint8{14, 2}),
	slots([2]uint8{9, 3}),
	slots([2]uint8{7, 4}),
	slots([2]uint8{5, 5}),
	slots([2]uint8{4, 7}),
	slots([2]uint8{3, 9}),
	slots([2]uint8{2, 14}),
	slots([2]uint8{1, 28}),
}

var simple16Layouts = [][]uint8{
	slots([2]uint8{28, 1}),
	slots([2]uint8{7, 2}, [2]uint8{14, 1}),
	slots([2]uint8{7, 1}, [2]uint8{7, 2}, [2]uint8{7, 1}),
	slots([2]uint8{14, 1}, [2]uint8{7, 2}),
	slots([2]uint8{14, 2}),
	slots([2]uint8{1, 4}, [2]uint8{8, 3}),
	slots([2]uint8{1, 3}, [2]uint8{4, 4}, [2]uint8{3, 3}),
	slots([2]uint8{7, 4}),
	slots([2]uint8{4, 5}, [2]uint8{2, 4}),
	slots([2]uint8{2, 4}, [2]uint8{4, 5}),
	slots([2]uint8{3, 6}, [2]uint8{2, 5}),
	slots([2]uint8{2, 5}, [2]uint8{3, 6}),
	slots([2]uint8{4, 7}),
	slots([2]uint8{1, 10}, [2]uint8{2, 9}),
	slots([2]uint8{2, 14}),
	slots([2]uint8{1, 28}),
}

// Simple packs as many values as fit into each 32-bit word. The top 4 bits of a word
// select a layout of slot widths that sum to at most 28; the first value sits in the
// lowest bits. The last word of a stream may leave trailing slots unused.
type Simple struct {
	name    string
	layouts [][]uint8
}

var _ Codec = (*Simple)(nil)

// NewSimple9 creates a Simple-9 codec: nine layouts of equal-width slots.
func NewSimple9() *Simple {
	return &Simple{name: "simple9", layouts: simple9Layouts}
}

// NewSimple16 creates a Simple-16 codec: sixteen layouts, including mixed-width ones.
func NewSimple16() *Simple {
	return &Simple{name: "simple16", layouts: simple16Layouts}
}

// pick returns the first selector whose layout fits the head of in, and how many values it takes.
func (s *Simple) pick(in []uint32) (int, int, bool) {
	for sel, layout := range s.layouts {
		n := min(len(layout), len(in))
		fits := true
		for i := range n {
			if in[i]>>layout[i] != 0 {
				fits = false
				break
			}
		}
		if fits {
			return sel, n, true
		}
	}

	return 0, 0, false
}

// packedWords returns the number of words EncodeArray would write for in.
func (s *Simple) packedWords(in []uint32) (int, error) {
	words := 0
	for pos := 0; pos < len(in); words++ {
		_, n, ok := s.pick(in[pos:])
		if !ok {
			return 0, fmt.Errorf("%w: %s value %d exceeds %d", errs.ErrInvalidArgument, s.name, in[pos], MaxSimpleValue)
		}
		pos += n
	}

	return words, nil
}

// EncodeArray implements Codec.
func (s *Simple) EncodeArray(in, out []uint32) (int, error) {
	if err := checkBuffers(in, out); err != nil {
		return 0, err
	}

	need, err := s.packedWords(in)
	if err != nil {
		return 0, err
	}
	if err := checkCapacity(need, out); err != nil {
		return 0, err
	}

	words := 0
	for pos := 0; pos < len(in); words++ {
		sel, n, _ := s.pick(in[pos:])
		layout := s.layouts[sel]

		word := uint32(sel) << selectorShift //nolint: gosec
		shift := uint8(0)
		for i := range n {
			word |= in[pos+i] << shift
			shift += layout[i]
		}
		out[words] = word
		pos += n
	}

	return words, nil
}

// DecodeArray implements Codec.
func (s *Simple) DecodeArray(in, out []uint32) error {
	if err := checkBuffers(in, out); err != nil {
		return err
	}

	pos := 0
	for _, word := range in {
		if pos == len(out) {
			return nil
		}

		sel := int(word >> selectorShift)
		if sel >= len(s.layouts) {
			return fmt.Errorf("%w: %s selector %d", errs.ErrFormatMismatch, s.name, sel)
		}
		layout := s.layouts[sel]

		n := min(len(layout), len(out)-pos)
		shift := uint8(0)
		for i := range n {
			out[pos+i] = word >> shift & (1<<layout[i] - 1)
			shift += layout[i]
		}
		pos += n
	}

	if pos < len(out) {
		return fmt.Errorf("%w: %s stream holds %d of %d values", errs.ErrFormatMismatch, s.name, pos, len(out))
	}

	return nil
}

// RequiredCapacity implements Codec. Every word carries at least one value.
func (s *Simple) RequiredCapacity(n int) int {
	return n
}
