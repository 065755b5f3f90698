package codec

import (
	"fmt"
	"slices"

	"github.com/arloliu/intpack/bitstream"
	"github.com/arloliu/intpack/errs"
	"github.com/arloliu/intpack/format"
	"github.com/arloliu/intpack/internal/options"
	"github.com/arloliu/intpack/partition"
)

const widthCodeBits = 4

// widthCodes maps a canonical width to its 4-bit header code, the index of the width in
// partition.CanonicalWidths.
var widthCodes = [33]uint32{
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12,
	13, 13, 13, 13,
	14, 14, 14, 14,
	15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15,
}

var (
	// dpLens is the block-length menu of the DP variant, indexed by its 3-bit K code.
	dpLens = []int{1, 2, 4, 6, 8, 16, 32, 64}
	// zeroRunLens extends dpLens with long lengths for runs of zeros, indexed by a 4-bit K code.
	zeroRunLens = []int{1, 2, 4, 6, 8, 16, 32, 64, 128, 256, 512, 1024, 2048, 4096, 8192, 16384}
)

type vsMode uint8

const (
	vsModeDP vsMode = iota
	vsModeBlocks
	vsModeOP
)

// opPrefixWords is the size of the OP stream prefix: Simple-16 length, then block count.
const opPrefixWords = 2

// VSEncoding is the adaptive block codec.
//
// The input is split into blocks by a partitioner. Each block stores a 4-bit code for its
// width B followed by its K values in B bits each; a block of zeros has B = 0 and stores
// no payload. The three variants differ in how K is chosen and stored:
//
//   - DP: exact partition over {1,2,4,6,8,16,32,64}; a 3-bit K code follows each B code.
//   - Blocks: as DP, but runs of zeros may also span 128..16384 values; 4-bit K code.
//   - OP: approximate partition over any length. The K list is Simple-16 coded up front:
//     [csize][nblocks][Simple16(K...)][B code, payload]...
type VSEncoding struct {
	id          format.CodecID
	mode        vsMode
	kMenu       []int
	kCodeBits   uint
	aligned     bool
	eps1        float64
	eps2        float64
	fixedCost   uint64
	observer    partition.Observer
	partitioner partition.Partitioner
}

var _ Codec = (*VSEncoding)(nil)

// VSEncodingOption configures a VSEncoding codec.
type VSEncodingOption = options.Option[*VSEncoding]

// WithAlignedCost makes the exact variants charge each block whole words, ceil(K*B/32),
// instead of bits when choosing the partition. The stream format is unchanged.
func WithAlignedCost() VSEncodingOption {
	return options.New(func(v *VSEncoding) error {
		if v.mode == vsModeOP {
			return fmt.Errorf("%w: aligned cost applies to exact partitioning only", errs.ErrInvalidArgument)
		}
		v.aligned = true

		return nil
	})
}

// WithApproximation sets the approximation parameters of the OP variant.
// eps1 must be in (0, 1) and eps2 positive.
func WithApproximation(eps1, eps2 float64) VSEncodingOption {
	return options.New(func(v *VSEncoding) error {
		if v.mode != vsModeOP {
			return fmt.Errorf("%w: approximation applies to the OP variant only", errs.ErrInvalidArgument)
		}
		v.eps1 = eps1
		v.eps2 = eps2

		return nil
	})
}

// WithBlockFixedCost sets the per-block cost, in bits, the OP partitioner charges for a
// block boundary. It defaults to 64; larger values favour fewer, longer blocks.
func WithBlockFixedCost(bits uint64) VSEncodingOption {
	return options.New(func(v *VSEncoding) error {
		if v.mode != vsModeOP {
			return fmt.Errorf("%w: block fixed cost applies to the OP variant only", errs.ErrInvalidArgument)
		}
		v.fixedCost = bits

		return nil
	})
}

// WithPartitionObserver registers a callback receiving partition statistics after each
// EncodeArray call.
func WithPartitionObserver(fn partition.Observer) VSEncodingOption {
	return options.NoError(func(v *VSEncoding) {
		v.observer = fn
	})
}

// NewVSEncodingDP creates the exact-partition variant with a 3-bit K code.
func NewVSEncodingDP(opts ...VSEncodingOption) (*VSEncoding, error) {
	v := &VSEncoding{
		id:        format.CodecVSEncodingDP,
		mode:      vsModeDP,
		kMenu:     dpLens,
		kCodeBits: 3,
	}

	return v.init(opts)
}

// NewVSEncodingBlocks creates the exact-partition variant that allows long zero runs,
// with a 4-bit K code.
func NewVSEncodingBlocks(opts ...VSEncodingOption) (*VSEncoding, error) {
	v := &VSEncoding{
		id:        format.CodecVSEncodingBlocks,
		mode:      vsModeBlocks,
		kMenu:     zeroRunLens,
		kCodeBits: 4,
	}

	return v.init(opts)
}

// NewVSEncodingOP creates the approximate-partition variant.
func NewVSEncodingOP(opts ...VSEncodingOption) (*VSEncoding, error) {
	v := &VSEncoding{
		id:        format.CodecVSEncodingOP,
		mode:      vsModeOP,
		eps1:      partition.DefaultEpsilon1,
		eps2:      partition.DefaultEpsilon2,
		fixedCost: partition.DefaultFixedCost,
	}

	return v.init(opts)
}

func (v *VSEncoding) init(opts []VSEncodingOption) (*VSEncoding, error) {
	if err := options.Apply(v, opts...); err != nil {
		return nil, err
	}

	var err error
	switch v.mode {
	case vsModeDP, vsModeBlocks:
		exactOpts := []partition.ExactOption{
			partition.WithExactFixedCost(uint64(v.headerBits())),
			partition.WithExactObserver(v.observer),
		}
		if v.aligned {
			exactOpts = append(exactOpts, partition.WithAligned())
		}

		var zlens []int
		if v.mode == vsModeBlocks {
			zlens = zeroRunLens
		}
		v.partitioner, err = partition.NewExact(dpLens, zlens, exactOpts...)
	case vsModeOP:
		v.partitioner, err = partition.NewApproximate(
			partition.WithEpsilon(v.eps1, v.eps2),
			partition.WithFixedCost(v.fixedCost),
			partition.WithObserver(v.observer),
		)
	}
	if err != nil {
		return nil, err
	}

	return v, nil
}

// ID returns the codec identifier of the variant.
func (v *VSEncoding) ID() format.CodecID {
	return v.id
}

func (v *VSEncoding) headerBits() uint {
	return widthCodeBits + v.kCodeBits
}

// block is one serialized block: its length and packed width.
type block struct {
	k uint32
	b uint8
}

// layout converts a partition into serialized blocks. OP blocks longer than Simple-16
// can describe are cut into MaxSimpleValue-sized pieces of the same width.
func (v *VSEncoding) layout(p partition.Partition) []block {
	blocks := make([]block, 0, p.Blocks())
	for i, k := range p.Lens {
		for v.mode == vsModeOP && k > MaxSimpleValue {
			blocks = append(blocks, block{k: MaxSimpleValue, b: p.Widths[i]})
			k -= MaxSimpleValue
		}
		blocks = append(blocks, block{k: uint32(k), b: p.Widths[i]}) //nolint: gosec
	}

	return blocks
}

func (v *VSEncoding) bodyBits(blocks []block) uint64 {
	header := uint64(v.headerBits())
	var total uint64
	for _, blk := range blocks {
		total += header + uint64(blk.k)*uint64(blk.b)
	}

	return total
}

// EncodeArray implements Codec.
func (v *VSEncoding) EncodeArray(in, out []uint32) (int, error) {
	if err := checkBuffers(in, out); err != nil {
		return 0, err
	}

	p, err := v.partitioner.Partition(in)
	if err != nil {
		return 0, err
	}
	blocks := v.layout(p)

	if v.mode == vsModeOP {
		return v.encodeOP(in, out, blocks)
	}

	need := bitstream.WordsFor(v.bodyBits(blocks))
	if err := checkCapacity(need, out); err != nil {
		return 0, err
	}

	w := bitstream.NewWriter(out[:need])
	pos := 0
	for _, blk := range blocks {
		w.WriteBits(widthCodes[blk.b], widthCodeBits)
		w.WriteBits(uint32(slices.Index(v.kMenu, int(blk.k))), v.kCodeBits) //nolint: gosec
		pos = writePayload(w, in, pos, blk)
	}
	// zero bits would decode as a block of one zero
	if err := w.FlushOnes(); err != nil {
		return 0, err
	}

	return w.Size(), nil
}

func (v *VSEncoding) encodeOP(in, out []uint32, blocks []block) (int, error) {
	ks := make([]uint32, len(blocks))
	for i, blk := range blocks {
		ks[i] = blk.k
	}

	csize, err := simple16.packedWords(ks)
	if err != nil {
		return 0, err
	}
	need := opPrefixWords + csize + bitstream.WordsFor(v.bodyBits(blocks))
	if err := checkCapacity(need, out); err != nil {
		return 0, err
	}

	out[0] = uint32(csize)       //nolint: gosec
	out[1] = uint32(len(blocks)) //nolint: gosec
	if _, err := simple16.EncodeArray(ks, out[opPrefixWords:opPrefixWords+csize]); err != nil {
		return 0, err
	}

	w := bitstream.NewWriter(out[opPrefixWords+csize : need])
	pos := 0
	for _, blk := range blocks {
		w.WriteBits(widthCodes[blk.b], widthCodeBits)
		pos = writePayload(w, in, pos, blk)
	}
	if err := w.Flush(); err != nil {
		return 0, err
	}

	return opPrefixWords + csize + w.Size(), nil
}

func writePayload(w *bitstream.Writer, in []uint32, pos int, blk block) int {
	end := pos + int(blk.k)
	if blk.b != 0 {
		for _, x := range in[pos:end] {
			w.WriteBits(x, uint(blk.b))
		}
	}

	return end
}

// DecodeArray implements Codec.
func (v *VSEncoding) DecodeArray(in, out []uint32) error {
	if err := checkBuffers(in, out); err != nil {
		return err
	}

	if v.mode == vsModeOP {
		return v.decodeOP(in, out)
	}

	r := bitstream.NewReader(in)
	pos := 0
	for pos < len(out) {
		b := partition.CanonicalWidths[r.ReadBits(widthCodeBits)]
		k := v.kMenu[r.ReadBits(v.kCodeBits)]
		if r.Overrun() {
			return fmt.Errorf("%w: stream ends after %d of %d values", errs.ErrFormatMismatch, pos, len(out))
		}

		if err := readPayload(r, out, pos, k, b); err != nil {
			return err
		}
		pos += k
	}

	return nil
}

func (v *VSEncoding) decodeOP(in, out []uint32) error {
	if len(in) < opPrefixWords {
		return fmt.Errorf("%w: stream shorter than its prefix", errs.ErrFormatMismatch)
	}

	csize, nblocks := uint64(in[0]), uint64(in[1])
	if opPrefixWords+csize > uint64(len(in)) || nblocks == 0 || nblocks > uint64(len(out)) {
		return fmt.Errorf("%w: invalid block list prefix (%d words, %d blocks)", errs.ErrFormatMismatch, csize, nblocks)
	}

	ks := make([]uint32, nblocks)
	body := in[opPrefixWords:]
	if err := simple16.DecodeArray(body[:csize], ks); err != nil {
		return fmt.Errorf("%w: block lengths: %w", errs.ErrFormatMismatch, err)
	}

	r := bitstream.NewReader(body[csize:])
	pos := 0
	for _, k := range ks {
		if pos == len(out) {
			break
		}

		b := partition.CanonicalWidths[r.ReadBits(widthCodeBits)]
		if r.Overrun() || k == 0 {
			return fmt.Errorf("%w: stream ends after %d of %d values", errs.ErrFormatMismatch, pos, len(out))
		}

		if err := readPayload(r, out, pos, int(k), b); err != nil {
			return err
		}
		pos += int(k)
	}

	if pos < len(out) {
		return fmt.Errorf("%w: stream holds %d of %d values", errs.ErrFormatMismatch, pos, len(out))
	}

	return nil
}

func readPayload(r *bitstream.Reader, out []uint32, pos, k int, b uint8) error {
	if k > len(out)-pos {
		return fmt.Errorf("%w: block of %d values overruns output at %d of %d", errs.ErrFormatMismatch, k, pos, len(out))
	}

	dst := out[pos : pos+k]
	if b == 0 {
		clear(dst)
		return nil
	}

	for i := range dst {
		dst[i] = r.ReadBits(uint(b))
	}
	if r.Overrun() {
		return fmt.Errorf("%w: stream ends inside a block at %d of %d values", errs.ErrFormatMismatch, pos, len(out))
	}

	return nil
}

// RequiredCapacity implements Codec.
//
// Any partition costs at most 32 payload bits plus one header per value; OP adds its
// prefix and at most one Simple-16 word per block.
func (v *VSEncoding) RequiredCapacity(n int) int {
	perValue := uint64(bitstream.WordBits) + uint64(v.headerBits())
	words := bitstream.WordsFor(uint64(n) * perValue) //nolint: gosec
	if v.mode == vsModeOP {
		words += opPrefixWords + n
	}

	return words
}

var simple16 = NewSimple16()
