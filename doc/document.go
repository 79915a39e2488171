package doc

import (
	"fmt"
	"io"
	"os"

	"github.com/arloliu/eldoc/endian"
	"github.com/arloliu/eldoc/errs"
	"github.com/arloliu/eldoc/internal/options"
	"github.com/arloliu/eldoc/section"
)

// OpenMode selects how a document file is opened.
type OpenMode int

const (
	// ModeRead opens an existing document file read-only.
	ModeRead OpenMode = iota
	// ModeReadWrite opens an existing document file for reading and writing.
	ModeReadWrite
	// ModeCreate creates the document file, truncating any existing content.
	ModeCreate
)

// defaultFileMode is the permission applied to newly created document files.
const defaultFileMode = os.FileMode(0o644)

// Document is an EntryLogger document handle.
//
// It owns the document header, the ordered field descriptor list (insertion
// order is on-disk order is column order), and the open file resource for the
// duration of any operation. The derived header lengths are recalculated after
// every schema mutation, so the header is consistent at all times.
//
// The schema is append-only through the public API: a field can be added but
// never removed or reordered, since recalculating the row stride would
// desynchronize already-written rows from the new schema.
type Document struct {
	path string
	file *os.File

	header section.Header
	fields []section.FieldDescriptor

	engine     endian.EndianEngine
	fileMode   os.FileMode
	syncWrites bool
}

// Option represents a functional option for configuring a Document.
// This is a type alias for the generic Option interface specialized for Document.
type Option = options.Option[*Document]

// WithFileMode sets the permission bits used when the document file is created.
func WithFileMode(mode os.FileMode) Option {
	return options.NoError(func(d *Document) {
		d.fileMode = mode
	})
}

// WithSyncWrites enables fsync after every row write, narrowing the window in
// which a crash can lose a just-written row at the cost of write latency.
func WithSyncWrites(enabled bool) Option {
	return options.NoError(func(d *Document) {
		d.syncWrites = enabled
	})
}

// New creates a new document handle with an empty schema, zero rows, the
// default magic signature, and consistent derived header lengths.
//
// Returns:
//   - *Document: The created document handle.
//   - error: An error if an option is invalid.
func New(opts ...Option) (*Document, error) {
	d := &Document{
		header:   section.NewHeader(),
		engine:   endian.GetLittleEndianEngine(),
		fileMode: defaultFileMode,
	}

	if err := options.Apply(d, opts...); err != nil {
		return nil, err
	}

	d.recalcLayout()

	return d, nil
}

// Load reads the header and field descriptors of the document file at path
// into a new handle. The file is only open for the duration of the call.
//
// Returns:
//   - *Document: Handle describing the loaded document.
//   - error: errs.ErrCorruptHeader and friends on structural mismatch, or a
//     wrapped I/O error.
func Load(path string, opts ...Option) (*Document, error) {
	d, err := New(opts...)
	if err != nil {
		return nil, err
	}

	if err := d.Load(path); err != nil {
		return nil, err
	}

	return d, nil
}

// Open attaches the document file at path to the handle.
//
// An empty path reuses the handle's stored path from a previous Open, Load or
// Save. A handle owns at most one open file: opening while another file is
// attached fails with errs.ErrDocumentOpen.
func (d *Document) Open(path string, mode OpenMode) error {
	if d.file != nil {
		return errs.ErrDocumentOpen
	}

	if path != "" {
		d.path = path
	}
	if d.path == "" {
		return errs.ErrNoFilePath
	}

	var flags int
	switch mode {
	case ModeRead:
		flags = os.O_RDONLY
	case ModeReadWrite:
		flags = os.O_RDWR
	case ModeCreate:
		flags = os.O_RDWR | os.O_CREATE | os.O_TRUNC
	default:
		return fmt.Errorf("unknown open mode: %d", mode)
	}

	file, err := os.OpenFile(d.path, flags, d.fileMode)
	if err != nil {
		return fmt.Errorf("open document file %q: %w", d.path, err)
	}
	d.file = file

	return nil
}

// Close releases the attached document file. Closing a handle with no open
// file is a no-op success.
func (d *Document) Close() error {
	if d.file == nil {
		return nil
	}

	if err := d.file.Close(); err != nil {
		return fmt.Errorf("close document file %q: %w", d.path, err)
	}
	d.file = nil

	return nil
}

// Load reads the header and field descriptors from the document file at path
// into the handle, replacing its current schema. The file is opened read-only
// and closed before returning.
//
// The persisted derived lengths are re-validated against the parsed schema:
// any disagreement fails with errs.ErrCorruptHeader.
func (d *Document) Load(path string) error {
	if err := d.Open(path, ModeRead); err != nil {
		return err
	}

	err := d.readHeader()
	cerr := d.Close()
	if err != nil {
		return err
	}

	return cerr
}

// readHeader parses the header and field descriptor records from the attached
// file and validates structural consistency.
func (d *Document) readHeader() error {
	buf := make([]byte, section.HeaderSize)
	if _, err := d.file.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("seek in document file %q: %w", d.path, err)
	}
	if _, err := io.ReadFull(d.file, buf); err != nil {
		return fmt.Errorf("read header of %q: %w", d.path, err)
	}

	var header section.Header
	if err := header.Parse(buf); err != nil {
		return err
	}

	fields := make([]section.FieldDescriptor, header.DescCount)
	record := make([]byte, section.DescriptorSize)
	for i := range fields {
		if _, err := io.ReadFull(d.file, record); err != nil {
			return fmt.Errorf("read field descriptor %d of %q: %w", i, d.path, err)
		}
		if err := fields[i].Parse(record); err != nil {
			return err
		}
	}

	// RowLen cannot be checked by Header.Validate alone; recompute it from the
	// parsed descriptors.
	var rowLen uint16
	for _, fd := range fields {
		rowLen += fd.SizeBytes
	}
	if rowLen != header.RowLen {
		return errs.ErrCorruptHeader
	}

	d.header = header
	d.fields = fields

	return nil
}

// Save writes the header and the full descriptor sequence to the document
// file at path, starting at position 0.
//
// An existing file is opened in place and only its header region rewritten;
// row data after the header region is untouched, which is safe because the
// header length is computed purely from the schema. When an in-place open
// fails the file is created from scratch.
func (d *Document) Save(path string) error {
	if d.file != nil {
		return errs.ErrDocumentOpen
	}

	if err := d.Open(path, ModeReadWrite); err != nil {
		if err := d.Open(path, ModeCreate); err != nil {
			return err
		}
	}

	err := d.writeHeader()
	cerr := d.Close()
	if err != nil {
		return err
	}

	return cerr
}

// writeHeader serializes the header and descriptor records to the attached
// file at position 0.
func (d *Document) writeHeader() error {
	if d.file == nil {
		return errs.ErrDocumentClosed
	}

	if _, err := d.file.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("seek in document file %q: %w", d.path, err)
	}

	if _, err := d.file.Write(d.header.Bytes()); err != nil {
		return fmt.Errorf("write header of %q: %w", d.path, err)
	}

	for i := range d.fields {
		if _, err := d.file.Write(d.fields[i].Bytes()); err != nil {
			return fmt.Errorf("write field descriptor %d of %q: %w", i, d.path, err)
		}
	}

	return nil
}

// AddField appends a field descriptor to the schema and recalculates the
// derived header lengths.
//
// Appending is the only schema mutation: existing descriptors cannot be
// edited, removed, or reordered. Once rows have been written the schema is
// frozen entirely; growing the row stride would desynchronize the stored rows.
func (d *Document) AddField(fd section.FieldDescriptor) error {
	if d.header.RowCount > 0 {
		return errs.ErrSchemaFrozen
	}
	if err := fd.Validate(); err != nil {
		return err
	}
	if len(d.fields) >= section.MaxFieldCount {
		return errs.ErrTooManyFields
	}
	if int(d.header.RowLen)+int(fd.SizeBytes) > section.MaxRowLength {
		return errs.ErrRowTooLarge
	}

	d.fields = append(d.fields, fd)
	d.recalcLayout()

	return nil
}

// recalcLayout recomputes the derived header lengths from the current schema.
// It must run after every schema mutation and before any offset computation.
//
// An empty schema has no stable storage addressing, so it forces the row
// count to zero as well.
func (d *Document) recalcLayout() {
	d.header.DescCount = uint8(len(d.fields)) //nolint:gosec
	d.header.HeaderLen = section.HeaderLength(len(d.fields))

	if len(d.fields) == 0 {
		d.header.RowLen = 0
		d.header.RowCount = 0

		return
	}

	var rowLen uint16
	for _, fd := range d.fields {
		rowLen += fd.SizeBytes
	}
	d.header.RowLen = rowLen
}

// Header returns a copy of the document's current header.
func (d *Document) Header() section.Header {
	return d.header
}

// Fields returns a copy of the document's field descriptors in schema order.
func (d *Document) Fields() []section.FieldDescriptor {
	fields := make([]section.FieldDescriptor, len(d.fields))
	copy(fields, d.fields)

	return fields
}

// FieldCount returns the number of fields in the schema.
func (d *Document) FieldCount() int {
	return len(d.fields)
}

// RowCount returns the number of rows in the document.
func (d *Document) RowCount() uint32 {
	return d.header.RowCount
}

// RowLength returns the fixed byte length of one row, derived from the schema.
func (d *Document) RowLength() uint16 {
	return d.header.RowLen
}

// HeaderLength returns the byte offset at which row data begins.
func (d *Document) HeaderLength() uint16 {
	return d.header.HeaderLen
}

// Path returns the document's file path, or an empty string when the handle
// has never been attached to a file.
func (d *Document) Path() string {
	return d.path
}
