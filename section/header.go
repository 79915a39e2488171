package section

import (
	"github.com/arloliu/eldoc/endian"
	"github.com/arloliu/eldoc/errs"
)

// Header represents the fixed-size header section at the start of an
// EntryLogger document.
//
// HeaderLen and RowLen are derived values: they must be recomputed whenever the
// descriptor list changes and re-validated whenever a document is loaded.
type Header struct {
	// Version is the document format version. // byte offset 3
	Version uint8
	// HeaderLen is the derived total length of the header region in bytes,
	// including all field descriptor records. Row data starts at this offset.
	HeaderLen uint16 // byte offset 4-5
	// RowLen is the derived fixed byte length of a single row.
	RowLen uint16 // byte offset 6-7
	// DescSize is the serialized size of one field descriptor record.
	DescSize uint8 // byte offset 8
	// DescCount is the number of field descriptors in the schema.
	DescCount uint8 // byte offset 9
	// RowCount is the number of rows stored after the header region.
	RowCount uint32 // byte offset 10-13
}

// NewHeader creates a new Header for an empty document: current format
// version, no descriptors, no rows. The derived lengths are consistent with
// the empty schema.
func NewHeader() Header {
	return Header{
		Version:   FormatVersion,
		HeaderLen: HeaderLength(0),
		RowLen:    0,
		DescSize:  DescriptorSize,
		DescCount: 0,
		RowCount:  0,
	}
}

// Parse parses the header from a byte slice.
//
// Parameters:
//   - data: Byte slice containing the header (must be exactly HeaderSize bytes)
//
// Returns:
//   - error: errs.ErrInvalidHeaderSize if data is not HeaderSize bytes, or
//     magic/structure validation errors
func (h *Header) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	if data[0] != MagicByte0 || data[1] != MagicByte1 || data[2] != MagicByte2 {
		return errs.ErrInvalidMagicNumber
	}
	h.Version = data[3]

	engine := endian.GetLittleEndianEngine()
	h.HeaderLen = engine.Uint16(data[4:6])
	h.RowLen = engine.Uint16(data[6:8])
	h.DescSize = data[8]
	h.DescCount = data[9]
	h.RowCount = engine.Uint32(data[10:14])

	return h.Validate()
}

// Bytes serializes the Header into a HeaderSize-byte slice.
func (h *Header) Bytes() []byte {
	b := make([]byte, HeaderSize)

	b[0] = MagicByte0
	b[1] = MagicByte1
	b[2] = MagicByte2
	b[3] = h.Version

	engine := endian.GetLittleEndianEngine()
	engine.PutUint16(b[4:6], h.HeaderLen)
	engine.PutUint16(b[6:8], h.RowLen)
	b[8] = h.DescSize
	b[9] = h.DescCount
	engine.PutUint32(b[10:14], h.RowCount)
	b[14] = MarkerByte
	b[15] = MarkerByte

	return b
}

// Validate checks the header's structural fields.
//
// It verifies the format version and the descriptor record size, and that the
// declared HeaderLen is consistent with the declared DescCount. It cannot
// verify RowLen, which depends on the descriptor contents; the document layer
// re-validates RowLen after parsing the descriptors.
func (h *Header) Validate() error {
	if h.Version != FormatVersion {
		return errs.ErrCorruptHeader
	}

	if h.DescSize != DescriptorSize {
		return errs.ErrInvalidDescriptorSize
	}

	if h.HeaderLen != HeaderLength(int(h.DescCount)) {
		return errs.ErrCorruptHeader
	}

	return nil
}

// ParseHeader parses a Header from a byte slice.
//
// Parameters:
//   - data: Byte slice containing the header (must be at least HeaderSize bytes)
//
// Returns:
//   - Header: Parsed header struct
//   - error: errs.ErrInvalidHeaderSize or validation errors
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, errs.ErrInvalidHeaderSize
	}

	h := Header{}
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return Header{}, err
	}

	return h, nil
}
