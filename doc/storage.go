package doc

import (
	"fmt"
	"io"

	"github.com/arloliu/eldoc/errs"
	"github.com/arloliu/eldoc/internal/pool"
	"github.com/arloliu/eldoc/section"
)

// rowOffset translates a logical row index to its byte offset in the file.
//
// Rows form a contiguous fixed-stride array immediately following the
// header+schema region, so the offset is HeaderLen + RowLen*index. This is
// the central addressing invariant of the format.
func (d *Document) rowOffset(index uint32) int64 {
	return int64(d.header.HeaderLen) + int64(d.header.RowLen)*int64(index)
}

// GetRow reads the row at the given index from the document file.
//
// The file is opened read-only for the duration of the call. On any seek,
// read, or decode failure the partially decoded row is discarded; a partial
// row is never returned.
//
// Returns:
//   - *Row: Materialized row with one cell per schema column.
//   - error: errs.ErrRowOutOfRange if index >= RowCount, errs.ErrEmptySchema
//     for a schema-less document, or a wrapped I/O error.
func (d *Document) GetRow(index uint32) (*Row, error) {
	if len(d.fields) == 0 {
		return nil, errs.ErrEmptySchema
	}
	if index >= d.header.RowCount {
		return nil, fmt.Errorf("%w: index %d, row count %d", errs.ErrRowOutOfRange, index, d.header.RowCount)
	}

	if err := d.Open("", ModeRead); err != nil {
		return nil, err
	}

	row, err := d.readRow(index)
	cerr := d.Close()
	if err != nil {
		return nil, err
	}
	if cerr != nil {
		return nil, cerr
	}

	return row, nil
}

// readRow seeks to the row's offset in the attached file and decodes one cell
// per descriptor in schema order.
func (d *Document) readRow(index uint32) (*Row, error) {
	if _, err := d.file.Seek(d.rowOffset(index), io.SeekStart); err != nil {
		return nil, fmt.Errorf("seek to row %d in %q: %w", index, d.path, err)
	}

	buf := pool.GetRowBuffer()
	defer pool.PutRowBuffer(buf)
	buf.ExtendOrGrow(int(d.header.RowLen))

	if _, err := io.ReadFull(d.file, buf.Bytes()); err != nil {
		return nil, fmt.Errorf("read row %d of %q: %w", index, d.path, err)
	}

	return d.decodeRow(buf.Bytes(), index)
}

// AppendRow appends a new row to the end of the document.
//
// The write is two-phase: the row's cells are written at the next row offset
// first, then the row count is bumped and the header region rewritten. A crash
// between the phases leaves trailing bytes the header does not advertise;
// it can never advertise a row whose bytes were not written.
//
// On success row.Index is set to the appended row's position.
//
// Returns:
//   - error: errs.ErrEmptySchema, errs.ErrSchemaMismatch, errs.ErrTooManyRows,
//     or a wrapped I/O error.
func (d *Document) AppendRow(row *Row) error {
	if len(d.fields) == 0 {
		return errs.ErrEmptySchema
	}
	if !d.matchesSchema(row) {
		return errs.ErrSchemaMismatch
	}
	if d.header.RowCount == section.MaxRowCount {
		return errs.ErrTooManyRows
	}

	buf := pool.GetRowBuffer()
	defer pool.PutRowBuffer(buf)
	buf.ExtendOrGrow(int(d.header.RowLen))
	if err := d.encodeRow(buf.Bytes(), row); err != nil {
		return err
	}

	// The file may not exist yet when the document was never saved; create it
	// in that case. ModeCreate truncation is harmless for a missing file.
	if err := d.Open("", ModeReadWrite); err != nil {
		if err := d.Open("", ModeCreate); err != nil {
			return err
		}
	}

	index := d.header.RowCount
	err := d.writeRowAt(buf.Bytes(), index)
	if err == nil {
		d.header.RowCount++
		if err = d.writeHeader(); err != nil {
			d.header.RowCount--
		}
	}
	if err == nil && d.syncWrites {
		if serr := d.file.Sync(); serr != nil {
			err = fmt.Errorf("sync document file %q: %w", d.path, serr)
		}
	}

	cerr := d.Close()
	if err != nil {
		return err
	}
	if cerr != nil {
		return cerr
	}

	row.Index = index

	return nil
}

// UpdateRow overwrites an existing row in place with the row's re-encoded
// cells. Exactly RowLen bytes are rewritten; neighboring rows are untouched.
//
// row.Index selects the target row and must address an existing row; updates
// past the current row region would silently extend the file without
// updating the row count, corrupting subsequent address calculations.
//
// Returns:
//   - error: errs.ErrEmptySchema, errs.ErrSchemaMismatch,
//     errs.ErrRowOutOfRange, or a wrapped I/O error.
func (d *Document) UpdateRow(row *Row) error {
	if len(d.fields) == 0 {
		return errs.ErrEmptySchema
	}
	if !d.matchesSchema(row) {
		return errs.ErrSchemaMismatch
	}
	if row.Index >= d.header.RowCount {
		return fmt.Errorf("%w: index %d, row count %d", errs.ErrRowOutOfRange, row.Index, d.header.RowCount)
	}

	buf := pool.GetRowBuffer()
	defer pool.PutRowBuffer(buf)
	buf.ExtendOrGrow(int(d.header.RowLen))
	if err := d.encodeRow(buf.Bytes(), row); err != nil {
		return err
	}

	if err := d.Open("", ModeReadWrite); err != nil {
		return err
	}

	err := d.writeRowAt(buf.Bytes(), row.Index)
	if err == nil && d.syncWrites {
		if serr := d.file.Sync(); serr != nil {
			err = fmt.Errorf("sync document file %q: %w", d.path, serr)
		}
	}

	cerr := d.Close()
	if err != nil {
		return err
	}

	return cerr
}

// writeRowAt seeks to the row offset for index and writes the encoded row
// bytes to the attached file.
func (d *Document) writeRowAt(data []byte, index uint32) error {
	if _, err := d.file.Seek(d.rowOffset(index), io.SeekStart); err != nil {
		return fmt.Errorf("seek to row %d in %q: %w", index, d.path, err)
	}

	if _, err := d.file.Write(data); err != nil {
		return fmt.Errorf("write row %d of %q: %w", index, d.path, err)
	}

	return nil
}
