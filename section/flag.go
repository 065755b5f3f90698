package section

import (
	"fmt"

	"github.com/arloliu/intpack/errs"
	"github.com/arloliu/intpack/format"
)

// PostingFlag is the packed first word of a PostingHeader.
type PostingFlag struct {
	// Options holds the magic number in bits 4-15 and the format version in bits 0-3.
	Options uint16
	// Codec is the integer codec every list in the blob is encoded with.
	Codec format.CodecID
	// Compression is the block compression applied to the whole payload.
	Compression format.CompressionType
}

// NewPostingFlag creates a v1 flag for the given codec and compression.
func NewPostingFlag(codec format.CodecID, compression format.CompressionType) PostingFlag {
	return PostingFlag{
		Options:     MagicPostingV1Opt,
		Codec:       codec,
		Compression: compression,
	}
}

// IsValidMagicNumber reports whether the magic bits identify a posting blob.
func (f PostingFlag) IsValidMagicNumber() bool {
	return f.Options&MagicNumberMask == MagicPosting
}

// Version returns the format version.
func (f PostingFlag) Version() uint8 {
	return uint8(f.Options & VersionMask)
}

// Validate checks magic, version, codec and compression.
func (f PostingFlag) Validate() error {
	if !f.IsValidMagicNumber() {
		return fmt.Errorf("%w: 0x%04x", errs.ErrInvalidMagic, f.Options)
	}

	if f.Version() != VersionV1 {
		return fmt.Errorf("%w: unsupported version %d", errs.ErrInvalidMagic, f.Version())
	}

	if !f.Codec.Valid() {
		return fmt.Errorf("%w: %d", errs.ErrUnknownCodec, f.Codec)
	}

	if !f.Compression.Valid() {
		return fmt.Errorf("%w: compression type %d", errs.ErrInvalidArgument, f.Compression)
	}

	return nil
}
