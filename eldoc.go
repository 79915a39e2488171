// Package eldoc provides a library for reading, writing, and incrementally
// updating EntryLogger documents: binary files holding a typed column schema
// followed by fixed-width rows.
//
// An EntryLogger document is a single file with three fixed-size regions: a
// 16-byte header, one 24-byte descriptor record per schema column, and a
// contiguous array of fixed-stride rows. The fixed strides make every row
// addressable with a single positional seek, so rows can be fetched, appended,
// and updated in place without scanning the file.
//
// # Core Features
//
//   - Typed columns: fixed-width signed integers, IEEE754 binary32 floats,
//     and fixed-capacity strings
//   - O(1) positional row access via direct seeks
//   - In-place row updates without rewriting the file
//   - Append-only schema with derived, self-validating layout lengths
//   - Little-endian on-disk layout, portable across hosts
//   - Compressed, checksummed document snapshots (None, Zstd, S2, LZ4)
//
// # Basic Usage
//
// Creating a document:
//
//	import "github.com/arloliu/eldoc"
//
//	d, _ := eldoc.New()
//
//	intField, _ := eldoc.NewIntegerField("Integer")
//	fltField, _ := eldoc.NewFloatField("Float")
//	strField, _ := eldoc.NewStringField("String 10", 10)
//	_ = d.AddField(intField)
//	_ = d.AddField(fltField)
//	_ = d.AddField(strField)
//	_ = d.Save("entries.eld")
//
// Appending and updating rows:
//
//	row := d.NewRow()
//	row.Cells[0] = doc.IntegerCell(123)
//	row.Cells[1] = doc.FloatCell(1.1)
//	row.Cells[2] = doc.StringCell("Row 1")
//	_ = d.AppendRow(row)
//
//	row.Cells[0] = doc.IntegerCell(246)
//	_ = d.UpdateRow(row)
//
// Reading a document back:
//
//	d, _ := eldoc.Load("entries.eld")
//	row, _ := d.GetRow(0)
//	fmt.Println(row.Cells[0].Integer(), row.Cells[2].Text())
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the doc package,
// simplifying the most common use cases. For advanced usage and fine-grained
// control, use the doc, section, and format packages directly.
package eldoc

import (
	"io"

	"github.com/arloliu/eldoc/doc"
	"github.com/arloliu/eldoc/format"
	"github.com/arloliu/eldoc/section"
)

// New creates a new empty document handle.
//
// The handle starts with an empty schema, zero rows, and consistent derived
// header lengths. Add fields with AddField, then persist with Save.
//
// Available options:
//   - doc.WithFileMode(mode)
//   - doc.WithSyncWrites(true|false)
//
// Returns:
//   - *doc.Document: The created document handle.
//   - error: An error if an option is invalid.
func New(opts ...doc.Option) (*doc.Document, error) {
	return doc.New(opts...)
}

// Load reads the header and schema of the document file at path into a new
// handle. The file is only open for the duration of the call; rows are
// fetched on demand with GetRow.
//
// Returns:
//   - *doc.Document: Handle describing the loaded document.
//   - error: errs.ErrCorruptHeader and friends on structural mismatch, or a
//     wrapped I/O error.
func Load(path string, opts ...doc.Option) (*doc.Document, error) {
	return doc.Load(path, opts...)
}

// RestoreSnapshot reads a snapshot produced by Document.WriteSnapshot from r,
// verifies its checksum, rewrites the document file at path, and loads it.
func RestoreSnapshot(r io.Reader, path string, opts ...doc.Option) (*doc.Document, error) {
	return doc.RestoreSnapshot(r, path, opts...)
}

// NewIntegerField creates a field descriptor for a fixed-width signed integer
// column. Integer cells occupy 8 bytes regardless of the host word size.
func NewIntegerField(name string) (section.FieldDescriptor, error) {
	return section.NewFieldDescriptor(format.TypeInteger, name, 1)
}

// NewFloatField creates a field descriptor for an IEEE754 binary32 column.
func NewFloatField(name string) (section.FieldDescriptor, error) {
	return section.NewFieldDescriptor(format.TypeFloat, name, 1)
}

// NewStringField creates a field descriptor for a fixed-capacity string
// column holding up to length bytes. One extra byte of terminator headroom is
// reserved on disk, so the column occupies length+1 bytes per row.
func NewStringField(name string, length uint16) (section.FieldDescriptor, error) {
	return section.NewFieldDescriptor(format.TypeString, name, length)
}
