// Package section defines the fixed-size binary structures of a posting blob.
//
// A posting blob stores many posting lists, each encoded with the same integer codec,
// behind a fixed header and a fixed-size index so any list can be located in O(1).
//
// # Blob Structure
//
//	┌─────────────────────────────────────────────────────────┐
//	│ PostingHeader (32 bytes, fixed)                         │
//	│  - Flag (4 bytes): magic, version, codec, compression   │
//	│  - ListCount, PayloadWords, PayloadSize                 │
//	│  - TotalValues, Checksum                                │
//	├─────────────────────────────────────────────────────────┤
//	│ Index (ListCount × 16 bytes)                            │
//	│  - Count, Base, WordOffset, WordCount per list          │
//	├─────────────────────────────────────────────────────────┤
//	│ Payload (PayloadSize bytes)                             │
//	│  - Codec words, little-endian, optionally compressed    │
//	└─────────────────────────────────────────────────────────┘
//
// # Header Format
//
//	Bytes  | Field        | Type   | Description
//	-------|--------------|--------|------------------------------------------
//	0-1    | Options      | uint16 | Magic (bits 4-15), version (bits 0-3)
//	2      | Codec        | uint8  | format.CodecID of every list
//	3      | Compression  | uint8  | format.CompressionType of the payload
//	4-7    | ListCount    | uint32 | Number of posting lists
//	8-11   | PayloadWords | uint32 | Uncompressed payload length in words
//	12-15  | PayloadSize  | uint32 | Stored payload length in bytes
//	16-23  | TotalValues  | uint64 | Sum of all list lengths
//	24-31  | Checksum     | uint64 | xxHash64 of the stored payload
//
// # Index Entry Format
//
//	Bytes  | Field      | Type   | Description
//	-------|------------|--------|------------------------------------------
//	0-3    | Count      | uint32 | Number of document IDs in the list
//	4-7    | Base       | uint32 | First document ID
//	8-11   | WordOffset | uint32 | First word of the list's stream in the payload
//	12-15  | WordCount  | uint32 | Length of the list's stream in words
//
// All multi-byte fields are little-endian.
package section
