package blob

import (
	"fmt"
	"runtime"

	"github.com/arloliu/intpack/codec"
	"github.com/arloliu/intpack/compress"
	"github.com/arloliu/intpack/errs"
	"github.com/arloliu/intpack/format"
	"github.com/arloliu/intpack/internal/options"
	"github.com/arloliu/intpack/section"
)

// DefaultCodec is the codec used when WithCodec is not given.
const DefaultCodec = format.CodecVSEncodingOP

// PostingEncoderConfig holds the settings of a PostingEncoder.
type PostingEncoderConfig struct {
	header      *section.PostingHeader
	codecID     format.CodecID
	vsOpts      []codec.VSEncodingOption
	concurrency int

	codec      codec.Codec
	compressor compress.Codec
}

// NewPostingEncoderConfig creates a config with the default codec, no payload compression
// and one worker per available CPU.
func NewPostingEncoderConfig() *PostingEncoderConfig {
	return &PostingEncoderConfig{
		header:      section.NewPostingHeader(DefaultCodec, format.CompressionNone),
		codecID:     DefaultCodec,
		concurrency: runtime.GOMAXPROCS(0),
	}
}

func (c *PostingEncoderConfig) setCodec(id format.CodecID) error {
	if !id.Valid() {
		return fmt.Errorf("%w: %d", errs.ErrUnknownCodec, id)
	}

	c.codecID = id
	c.header.Flag.Codec = id

	return nil
}

func (c *PostingEncoderConfig) setPayloadCompression(comp format.CompressionType) error {
	switch comp {
	case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
		c.header.Flag.Compression = comp
		return nil
	default:
		return fmt.Errorf("%w: invalid payload compression: %v", errs.ErrInvalidArgument, comp)
	}
}

func (c *PostingEncoderConfig) setConcurrency(n int) error {
	if n < 1 {
		return fmt.Errorf("%w: concurrency %d, must be at least 1", errs.ErrInvalidArgument, n)
	}

	c.concurrency = n

	return nil
}

// setCodecs resolves the integer codec and payload compressor once all options are applied.
func (c *PostingEncoderConfig) setCodecs() error {
	var err error

	if len(c.vsOpts) == 0 {
		c.codec, err = codec.GetCodec(c.codecID)
	} else {
		c.codec, err = newVSEncoding(c.codecID, c.vsOpts)
	}
	if err != nil {
		return err
	}

	c.compressor, err = compress.CreateCodec(c.header.Flag.Compression, "payload")

	return err
}

func newVSEncoding(id format.CodecID, opts []codec.VSEncodingOption) (codec.Codec, error) {
	switch id { //nolint: exhaustive
	case format.CodecVSEncodingDP:
		return codec.NewVSEncodingDP(opts...)
	case format.CodecVSEncodingOP:
		return codec.NewVSEncodingOP(opts...)
	case format.CodecVSEncodingBlocks:
		return codec.NewVSEncodingBlocks(opts...)
	default:
		return nil, fmt.Errorf("%w: %s does not accept VSEncoding options", errs.ErrInvalidArgument, id)
	}
}

// Codec returns the integer codec lists are encoded with.
func (c *PostingEncoderConfig) Codec() codec.Codec {
	return c.codec
}

// CodecID returns the identifier of the integer codec.
func (c *PostingEncoderConfig) CodecID() format.CodecID {
	return c.codecID
}

// Concurrency returns the maximum number of lists AddLists encodes at once.
func (c *PostingEncoderConfig) Concurrency() int {
	return c.concurrency
}

// PostingEncoderOption represents a functional option for configuring the PostingEncoderConfig.
type PostingEncoderOption = options.Option[*PostingEncoderConfig]

// WithCodec selects the integer codec for every list in the blob.
// The default is VSEncodingOP.
func WithCodec(id format.CodecID) PostingEncoderOption {
	return options.New(func(c *PostingEncoderConfig) error {
		return c.setCodec(id)
	})
}

// WithVSEncodingOptions passes options to the VSEncoding codec selected by WithCodec.
// Options only change how blocks are chosen, so the blob decodes with the default codec.
func WithVSEncodingOptions(opts ...codec.VSEncodingOption) PostingEncoderOption {
	return options.NoError(func(c *PostingEncoderConfig) {
		c.vsOpts = append(c.vsOpts, opts...)
	})
}

// WithPayloadCompression sets the compression applied to the whole payload.
func WithPayloadCompression(comp format.CompressionType) PostingEncoderOption {
	return options.New(func(c *PostingEncoderConfig) error {
		return c.setPayloadCompression(comp)
	})
}

// WithConcurrency limits how many lists AddLists encodes at the same time.
func WithConcurrency(n int) PostingEncoderOption {
	return options.New(func(c *PostingEncoderConfig) error {
		return c.setConcurrency(n)
	})
}
