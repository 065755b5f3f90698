package section

import "math"

const (
	MagicNumberMask = 0xFFF0 // Mask for magic number (bits 4-15)
	VersionMask     = 0x000F // Mask for format version (bits 0-3)

	MagicPostingV1Opt = 0xC511 // MagicPostingV1Opt is the magic number plus version of posting blob format v1.
	MagicPosting      = MagicPostingV1Opt & MagicNumberMask
	VersionV1         = MagicPostingV1Opt & VersionMask
)

// offset and section sizes in the blob file
const (
	HeaderSize         = 32             // fixed header size in bytes
	ListIndexEntrySize = 16             // fixed index entry size in bytes
	IndexOffset        = HeaderSize     // byte offset where index section starts
	MaxWordOffset      = math.MaxUint32 // maximum word offset addressable by an index entry
)
