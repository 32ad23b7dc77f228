package format

type (
	EncodingType    uint8
	CompressionType uint8
)

const (
	TypeLinear       EncodingType = 0x1 // TypeLinear represents linear-prediction fixed-point encoding.
	TypeCount        EncodingType = 0x2 // TypeCount represents direct non-negative integer encoding.
	TypeTwoByteFloat EncodingType = 0x3 // TypeTwoByteFloat represents 16-bit log fixed-point encoding.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (e EncodingType) String() string {
	switch e {
	case TypeLinear:
		return "Linear"
	case TypeCount:
		return "Count"
	case TypeTwoByteFloat:
		return "TwoByteFloat"
	default:
		return "Unknown"
	}
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
