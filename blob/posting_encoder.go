package blob

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/arloliu/intpack/endian"
	"github.com/arloliu/intpack/errs"
	"github.com/arloliu/intpack/format"
	"github.com/arloliu/intpack/internal/hash"
	"github.com/arloliu/intpack/internal/options"
	"github.com/arloliu/intpack/internal/pool"
	"github.com/arloliu/intpack/section"
)

// PostingEncoder encodes posting lists into the binary posting blob format.
//
// Note: The PostingEncoder is NOT thread-safe. AddLists encodes in parallel internally but
// the encoder itself must be used by a single goroutine.
//
// Note: The PostingEncoder is NOT reusable. After calling Finish, a new encoder must be created.
type PostingEncoder struct {
	*PostingEncoderConfig

	entries     []section.ListIndexEntry
	payload     *pool.ByteBuffer // uncompressed codec words, little-endian
	words       uint64
	totalValues uint64
	finished    bool
}

// encodedList is one list after codec encoding, ready to be placed in the payload.
type encodedList struct {
	entry section.ListIndexEntry
	words []uint32
}

// NewPostingEncoder creates a new PostingEncoder.
//
// Parameters:
//   - opts: Optional configuration (codec, payload compression, concurrency)
//
// Returns:
//   - *PostingEncoder: New encoder instance
//   - error: Invalid option value or codec construction error
func NewPostingEncoder(opts ...PostingEncoderOption) (*PostingEncoder, error) {
	config := NewPostingEncoderConfig()
	if err := options.Apply(config, opts...); err != nil {
		return nil, err
	}

	if err := config.setCodecs(); err != nil {
		return nil, err
	}

	return &PostingEncoder{
		PostingEncoderConfig: config,
		entries:              make([]section.ListIndexEntry, 0, 16),
		payload:              pool.GetPostingBuffer(),
	}, nil
}

// ListCount returns the number of lists added so far.
func (e *PostingEncoder) ListCount() int {
	return len(e.entries)
}

// AddList encodes one strictly increasing list of document IDs and appends it to the blob.
//
// Returns:
//   - error: ErrInvalidArgument for an empty list, ErrListNotIncreasing if the IDs are not
//     strictly increasing, ErrEncoderFinished after Finish, or a codec error
func (e *PostingEncoder) AddList(list []uint32) error {
	if e.finished {
		return errs.ErrEncoderFinished
	}

	enc, err := e.encodeList(list)
	if err != nil {
		return err
	}

	return e.appendList(enc)
}

// AddLists encodes lists concurrently, up to Concurrency at a time, and appends them in
// input order. The output is identical to calling AddList for each list in turn.
//
// On error nothing is appended. Cancelling ctx stops lists that have not started yet.
func (e *PostingEncoder) AddLists(ctx context.Context, lists [][]uint32) error {
	if e.finished {
		return errs.ErrEncoderFinished
	}

	encoded := make([]encodedList, len(lists))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)

	for i := range lists {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			enc, err := e.encodeList(lists[i])
			if err != nil {
				return fmt.Errorf("list %d: %w", i, err)
			}
			encoded[i] = enc

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	for i := range encoded {
		if err := e.appendList(encoded[i]); err != nil {
			return fmt.Errorf("list %d: %w", i, err)
		}
	}

	return nil
}

// encodeList turns list into codec values and encodes them. It only reads the shared
// configuration, so it may run on several goroutines at once.
func (e *PostingEncoder) encodeList(list []uint32) (encodedList, error) {
	if len(list) == 0 {
		return encodedList{}, fmt.Errorf("%w: empty posting list", errs.ErrInvalidArgument)
	}

	enc := encodedList{entry: section.NewListIndexEntry(uint32(len(list)), list[0])} //nolint: gosec
	if len(list) == 1 {
		return enc, nil
	}

	values, cleanupValues := pool.GetUint32Slice(len(list) - 1)
	defer cleanupValues()

	if err := listToValues(e.codecID, list, values); err != nil {
		return encodedList{}, err
	}

	out, cleanupOut := pool.GetUint32Slice(e.codec.RequiredCapacity(len(values)))
	defer cleanupOut()

	n, err := e.codec.EncodeArray(values, out)
	if err != nil {
		return encodedList{}, err
	}

	enc.words = make([]uint32, n)
	copy(enc.words, out[:n])
	enc.entry.WordCount = uint32(n) //nolint: gosec

	return enc, nil
}

// listToValues fills values with what the codec stores for list[1:].
func listToValues(codecID format.CodecID, list []uint32, values []uint32) error {
	prev := list[0]
	for i, id := range list[1:] {
		if id <= prev {
			return fmt.Errorf("%w: position %d holds %d after %d", errs.ErrListNotIncreasing, i+1, id, prev)
		}
		values[i] = id - prev - 1
		prev = id
	}

	if codecID == format.CodecBinaryInterpolative {
		copy(values, list[1:])
	}

	return nil
}

func (e *PostingEncoder) appendList(enc encodedList) error {
	if e.words+uint64(len(enc.words)) > section.MaxWordOffset {
		return fmt.Errorf("%w: payload exceeds %d words", errs.ErrCapacityExceeded, uint64(section.MaxWordOffset))
	}

	enc.entry.WordOffset = uint32(e.words) //nolint: gosec
	if len(enc.words) > 0 {
		endian.PutWords(endian.GetLittleEndianEngine(), e.payload.ExtendOrGrow(len(enc.words)*endian.WordSize), enc.words)
	}

	e.entries = append(e.entries, enc.entry)
	e.words += uint64(len(enc.words))
	e.totalValues += uint64(enc.entry.Count)

	return nil
}

// Finish compresses the payload and assembles the blob.
//
// After Finish the encoder releases its buffers and rejects further calls with
// ErrEncoderFinished, whether or not Finish succeeded.
//
// Returns:
//   - PostingBlob: Complete blob with header, index entries and payload
//   - error: ErrEncoderFinished or payload compression errors
func (e *PostingEncoder) Finish() (PostingBlob, error) {
	if e.finished {
		return PostingBlob{}, errs.ErrEncoderFinished
	}
	e.finished = true

	defer func() {
		pool.PutPostingBuffer(e.payload)
		e.payload = nil
	}()

	stored, err := e.compressor.Compress(e.payload.Bytes())
	if err != nil {
		return PostingBlob{}, fmt.Errorf("failed to compress posting payload: %w", err)
	}

	header := *e.header
	header.ListCount = uint32(len(e.entries))   //nolint: gosec
	header.PayloadWords = uint32(e.words)       //nolint: gosec
	header.PayloadSize = uint32(len(stored))    //nolint: gosec
	header.TotalValues = e.totalValues
	header.Checksum = hash.Checksum(stored)

	data := make([]byte, header.PayloadOffset()+len(stored))
	header.WriteToSlice(data)

	offset := section.IndexOffset
	for i := range e.entries {
		offset = e.entries[i].WriteToSlice(data, offset)
	}
	copy(data[offset:], stored)

	return PostingBlob{data: data, header: header}, nil
}
