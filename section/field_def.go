package section

import (
	"github.com/arloliu/eldoc/endian"
	"github.com/arloliu/eldoc/errs"
	"github.com/arloliu/eldoc/format"
)

// FieldDescriptor represents one schema column: its cell type, the fixed byte
// width of its cells, and its display name.
//
// Descriptors are immutable once appended to a document's schema. Insertion
// order is on-disk order is column order. Names are bounded by FieldNameLength
// and are not required to be unique.
type FieldDescriptor struct {
	// Type is the cell type tag. // byte offset 0
	Type format.FieldType
	// SizeBytes is the fixed on-disk width of one cell of this field.
	SizeBytes uint16 // byte offset 1-2
	// Name is the field's display name, at most FieldNameLength bytes.
	// Serialized as a length byte at offset 3 followed by the name bytes.
	Name string // byte offset 4-23
}

// NewFieldDescriptor creates a field descriptor for the given type and name.
//
// The length parameter is the element count: it must be 1 for Integer and
// Float fields, and is the maximum string length for String fields. String
// cells reserve one extra byte of headroom for a terminator, so a String field
// of length 10 occupies 11 bytes on disk.
//
// Parameters:
//   - fieldType: Cell type (format.TypeInteger, TypeFloat, or TypeString)
//   - name: Field name, at most FieldNameLength bytes
//   - length: Element count (1 except for String fields)
//
// Returns:
//   - FieldDescriptor: Populated descriptor
//   - error: errs.ErrInvalidFieldType, errs.ErrInvalidFieldLength, or
//     errs.ErrFieldNameTooLong
func NewFieldDescriptor(fieldType format.FieldType, name string, length uint16) (FieldDescriptor, error) {
	if !fieldType.IsValid() {
		return FieldDescriptor{}, errs.ErrInvalidFieldType
	}

	if length == 0 || (fieldType != format.TypeString && length != 1) {
		return FieldDescriptor{}, errs.ErrInvalidFieldLength
	}

	if len(name) > FieldNameLength {
		return FieldDescriptor{}, errs.ErrFieldNameTooLong
	}

	size := format.ElementWidth(fieldType) * length
	if fieldType == format.TypeString {
		// One element of terminator headroom on top of the declared length.
		size += format.ElementWidth(fieldType)
	}

	return FieldDescriptor{
		Type:      fieldType,
		SizeBytes: size,
		Name:      name,
	}, nil
}

// Parse parses the field descriptor record from a byte slice.
//
// Parameters:
//   - data: Byte slice containing the record (must be exactly DescriptorSize bytes)
//
// Returns:
//   - error: errs.ErrInvalidDescriptorSize if data is not DescriptorSize bytes,
//     errs.ErrInvalidFieldType for an unknown type tag, or
//     errs.ErrInvalidFieldLength when the declared width disagrees with the type
func (fd *FieldDescriptor) Parse(data []byte) error {
	if len(data) != DescriptorSize {
		return errs.ErrInvalidDescriptorSize
	}

	fd.Type = format.FieldType(data[0])

	engine := endian.GetLittleEndianEngine()
	fd.SizeBytes = engine.Uint16(data[1:3])

	nameLen := int(data[3])
	if nameLen > FieldNameLength {
		nameLen = FieldNameLength
	}
	fd.Name = string(data[4 : 4+nameLen])

	return fd.Validate()
}

// Validate checks that the descriptor's type tag is known and its declared
// width is consistent with the type. Integer and Float cells have fixed
// widths; a disagreeing SizeBytes would make the cell codec read or write
// past its span, so such a descriptor is rejected before it can reach the
// codec. String fields accept any positive width.
func (fd *FieldDescriptor) Validate() error {
	if !fd.Type.IsValid() {
		return errs.ErrInvalidFieldType
	}
	if fd.SizeBytes == 0 {
		return errs.ErrInvalidFieldLength
	}

	switch fd.Type {
	case format.TypeInteger:
		if fd.SizeBytes != format.IntegerWidth {
			return errs.ErrInvalidFieldLength
		}
	case format.TypeFloat:
		if fd.SizeBytes != format.FloatWidth {
			return errs.ErrInvalidFieldLength
		}
	case format.TypeString:
		// Any positive width.
	}

	return nil
}

// Bytes serializes the FieldDescriptor into a DescriptorSize-byte record.
//
// Names longer than FieldNameLength are truncated; NewFieldDescriptor rejects
// them up front, so truncation only applies to hand-built descriptors.
func (fd *FieldDescriptor) Bytes() []byte {
	b := make([]byte, DescriptorSize)

	b[0] = uint8(fd.Type)

	engine := endian.GetLittleEndianEngine()
	engine.PutUint16(b[1:3], fd.SizeBytes)

	name := fd.Name
	if len(name) > FieldNameLength {
		name = name[:FieldNameLength]
	}
	b[3] = uint8(len(name))
	copy(b[4:4+FieldNameLength], name)

	return b
}

// ParseFieldDescriptor parses a FieldDescriptor from a byte slice.
//
// Parameters:
//   - data: Byte slice containing the record (must be at least DescriptorSize bytes)
//
// Returns:
//   - FieldDescriptor: Parsed descriptor
//   - error: errs.ErrInvalidDescriptorSize or errs.ErrInvalidFieldType
func ParseFieldDescriptor(data []byte) (FieldDescriptor, error) {
	if len(data) < DescriptorSize {
		return FieldDescriptor{}, errs.ErrInvalidDescriptorSize
	}

	fd := FieldDescriptor{}
	if err := fd.Parse(data[:DescriptorSize]); err != nil {
		return FieldDescriptor{}, err
	}

	return fd, nil
}
