package format

type (
	CodecID         uint8
	CompressionType uint8
)

const (
	CodecGamma               CodecID = 0x0 // CodecGamma represents Elias gamma coding.
	CodecDelta               CodecID = 0x1 // CodecDelta represents Elias delta coding.
	CodecVariableByte        CodecID = 0x2 // CodecVariableByte represents 7-bit variable-byte coding.
	CodecBinaryInterpolative CodecID = 0x3 // CodecBinaryInterpolative represents binary interpolative coding.
	CodecSimple9             CodecID = 0x4 // CodecSimple9 represents Simple-9 word packing.
	CodecSimple16            CodecID = 0x5 // CodecSimple16 represents Simple-16 word packing.
	CodecVSEncodingDP        CodecID = 0x6 // CodecVSEncodingDP represents VSEncoding with exact partitioning.
	CodecVSEncodingOP        CodecID = 0x7 // CodecVSEncodingOP represents VSEncoding with approximate partitioning.
	CodecVSEncodingBlocks    CodecID = 0x8 // CodecVSEncodingBlocks represents VSEncoding with long zero-run blocks.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

// Codecs lists every codec identifier in ascending order.
var Codecs = []CodecID{
	CodecGamma,
	CodecDelta,
	CodecVariableByte,
	CodecBinaryInterpolative,
	CodecSimple9,
	CodecSimple16,
	CodecVSEncodingDP,
	CodecVSEncodingOP,
	CodecVSEncodingBlocks,
}

// Valid reports whether c names a known codec.
func (c CodecID) Valid() bool {
	return c <= CodecVSEncodingBlocks
}

func (c CodecID) String() string {
	switch c {
	case CodecGamma:
		return "Gamma"
	case CodecDelta:
		return "Delta"
	case CodecVariableByte:
		return "VariableByte"
	case CodecBinaryInterpolative:
		return "BinaryInterpolative"
	case CodecSimple9:
		return "Simple9"
	case CodecSimple16:
		return "Simple16"
	case CodecVSEncodingDP:
		return "VSEncodingDP"
	case CodecVSEncodingOP:
		return "VSEncodingOP"
	case CodecVSEncodingBlocks:
		return "VSEncodingBlocks"
	default:
		return "Unknown"
	}
}

// Suffix returns the conventional file extension for streams produced by the codec.
func (c CodecID) Suffix() string {
	switch c {
	case CodecGamma:
		return ".gamma"
	case CodecDelta:
		return ".delta"
	case CodecVariableByte:
		return ".vb"
	case CodecBinaryInterpolative:
		return ".bip"
	case CodecSimple9:
		return ".s9"
	case CodecSimple16:
		return ".s16"
	case CodecVSEncodingDP:
		return ".vser"
	case CodecVSEncodingOP:
		return ".vseop"
	case CodecVSEncodingBlocks:
		return ".vse"
	default:
		return ".bin"
	}
}

// Valid reports whether c names a known compression type.
func (c CompressionType) Valid() bool {
	return c >= CompressionNone && c <= CompressionLZ4
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
