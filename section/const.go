package section

import "math"

// Magic signature and format version.
const (
	MagicByte0 = 'E'
	MagicByte1 = 'L'
	MagicByte2 = 'D'

	// FormatVersion is the current EntryLogger document format version.
	FormatVersion = 1

	// Marker bytes terminating the fixed header region.
	MarkerByte = '-'
)

// Offsets and section sizes in the document file.
const (
	HeaderSize     = 16 // fixed header size in bytes
	DescriptorSize = 24 // fixed field descriptor record size in bytes

	// FieldNameLength is the maximum byte length of a field name.
	FieldNameLength = 20

	// MaxFieldCount is the maximum number of field descriptors per document,
	// bounded by the uint8 DescCount header field.
	MaxFieldCount = math.MaxUint8

	// MaxRowLength is the maximum row stride in bytes, bounded by the uint16
	// RowLen header field.
	MaxRowLength = math.MaxUint16

	// MaxRowCount is the maximum number of rows per document, bounded by the
	// uint32 RowCount header field.
	MaxRowCount = math.MaxUint32
)

// HeaderLength returns the derived total header length in bytes for a document
// with the given number of field descriptors: the fixed header followed by one
// fixed-size record per descriptor. Row data starts at this offset.
func HeaderLength(descCount int) uint16 {
	return uint16(HeaderSize + descCount*DescriptorSize) //nolint:gosec
}
