package format

type (
	FieldType       uint8
	CompressionType uint8
)

const (
	TypeInteger FieldType = 0x0 // TypeInteger represents a fixed-width signed integer cell.
	TypeFloat   FieldType = 0x1 // TypeFloat represents an IEEE754 binary32 cell.
	TypeString  FieldType = 0x2 // TypeString represents a fixed-width byte buffer cell.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

// Element widths in bytes for a single instance of each field type.
//
// Integer cells are pinned to 8 bytes regardless of the host word size so that
// documents remain portable across hosts.
const (
	IntegerWidth = 8 // int64, little-endian
	FloatWidth   = 4 // IEEE754 binary32, little-endian
	StringWidth  = 1 // one byte per element
)

// ElementWidth returns the on-disk size in bytes of a single element of the
// given field type, or 0 for an unknown type.
func ElementWidth(t FieldType) uint16 {
	switch t {
	case TypeInteger:
		return IntegerWidth
	case TypeFloat:
		return FloatWidth
	case TypeString:
		return StringWidth
	default:
		return 0
	}
}

// IsValid reports whether t is one of the known field types.
func (t FieldType) IsValid() bool {
	return t == TypeInteger || t == TypeFloat || t == TypeString
}

func (t FieldType) String() string {
	switch t {
	case TypeInteger:
		return "Integer"
	case TypeFloat:
		return "Float"
	case TypeString:
		return "String"
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
