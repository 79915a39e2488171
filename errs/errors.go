// Package errs defines the sentinel errors returned by the eldoc library.
//
// Every fallible operation returns an explicit error value; there is no
// process-wide last-error state. Errors that wrap an underlying I/O failure
// use fmt.Errorf with %w so callers can unwrap them with errors.Is/As.
package errs

import "errors"

// Header and schema errors.
var (
	// ErrInvalidHeaderSize is returned when a header buffer is not exactly the
	// fixed header size.
	ErrInvalidHeaderSize = errors.New("invalid header size")

	// ErrInvalidMagicNumber is returned when a document does not start with the
	// ELD magic signature.
	ErrInvalidMagicNumber = errors.New("invalid magic number")

	// ErrCorruptHeader is returned when a loaded header's declared lengths
	// disagree with the lengths recomputed from its schema, or when it carries
	// an unsupported format version.
	ErrCorruptHeader = errors.New("corrupt document header")

	// ErrInvalidDescriptorSize is returned when a field descriptor record buffer
	// is not exactly the fixed descriptor size, or a loaded header declares a
	// descriptor record size this library does not understand.
	ErrInvalidDescriptorSize = errors.New("invalid field descriptor size")

	// ErrInvalidFieldType is returned when a field descriptor carries an unknown
	// type tag.
	ErrInvalidFieldType = errors.New("invalid field type")

	// ErrFieldNameTooLong is returned when a field name exceeds the fixed
	// on-disk name capacity.
	ErrFieldNameTooLong = errors.New("field name too long")

	// ErrInvalidFieldLength is returned when a field is declared with a zero
	// element count.
	ErrInvalidFieldLength = errors.New("invalid field length")

	// ErrTooManyFields is returned when adding a field would exceed the
	// descriptor count representable in the header.
	ErrTooManyFields = errors.New("too many fields")

	// ErrRowTooLarge is returned when adding a field would push the row stride
	// past the length representable in the header.
	ErrRowTooLarge = errors.New("row length too large")

	// ErrSchemaFrozen is returned when adding a field to a document that
	// already holds rows. Changing the row stride would desynchronize the
	// written rows from the schema.
	ErrSchemaFrozen = errors.New("schema is frozen once rows exist")
)

// Document handle errors.
var (
	// ErrDocumentOpen is returned when opening a file on a handle that already
	// has one attached. A handle owns at most one open file at a time.
	ErrDocumentOpen = errors.New("document file already open")

	// ErrDocumentClosed is returned by operations that require an attached file
	// when none is open.
	ErrDocumentClosed = errors.New("document file not open")

	// ErrNoFilePath is returned when an operation needs a file path but neither
	// the call nor the handle provides one.
	ErrNoFilePath = errors.New("no document file path")
)

// Row storage errors.
var (
	// ErrEmptySchema is returned by row operations on a document with no
	// fields. A row-less schema has no stable storage addressing.
	ErrEmptySchema = errors.New("document schema is empty")

	// ErrRowOutOfRange is returned when a row index is not below the document's
	// row count.
	ErrRowOutOfRange = errors.New("row index out of range")

	// ErrSchemaMismatch is returned when a row's cell count or cell types do
	// not match the document schema.
	ErrSchemaMismatch = errors.New("row does not match document schema")

	// ErrTooManyRows is returned when appending a row would exceed the row
	// count representable in the header.
	ErrTooManyRows = errors.New("too many rows")
)

// Snapshot errors.
var (
	// ErrInvalidSnapshot is returned when snapshot data does not carry a valid
	// snapshot frame.
	ErrInvalidSnapshot = errors.New("invalid snapshot frame")

	// ErrSnapshotChecksum is returned when a snapshot's payload checksum does
	// not match the checksum recorded in its frame.
	ErrSnapshotChecksum = errors.New("snapshot checksum mismatch")
)

// ErrNotImplemented is returned by documented entry points that are not
// implemented in this format revision.
var ErrNotImplemented = errors.New("not implemented")
