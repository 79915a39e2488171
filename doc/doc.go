// Package doc implements the EntryLogger document handle and its row storage
// engine.
//
// A Document owns the in-memory header and ordered field descriptor list of
// one EntryLogger document file, keeps the derived layout lengths consistent
// with the schema, and translates logical row indices into byte offsets for
// direct positional reads and writes.
//
// # Basic Usage
//
// Creating a document and appending a row:
//
//	d, _ := doc.New()
//	intField, _ := section.NewFieldDescriptor(format.TypeInteger, "Integer", 1)
//	strField, _ := section.NewFieldDescriptor(format.TypeString, "Name", 10)
//	_ = d.AddField(intField)
//	_ = d.AddField(strField)
//	_ = d.Save("entries.eld")
//
//	row := d.NewRow()
//	row.Cells[0] = doc.IntegerCell(123)
//	row.Cells[1] = doc.StringCell("Row 1")
//	_ = d.AppendRow(row)
//
// Reading it back:
//
//	d, _ := doc.Load("entries.eld")
//	row, _ := d.GetRow(0)
//
// # Resource Model
//
// A Document owns at most one open file at a time; opening a second file on
// the same handle fails. Row and header operations open the backing file,
// perform their reads or writes, and close it again, so a handle between
// operations holds no file descriptor.
//
// All operations are synchronous and single-goroutine; a Document must not be
// shared between goroutines without external synchronization.
package doc
