package doc

import (
	"math"

	"github.com/arloliu/eldoc/endian"
	"github.com/arloliu/eldoc/errs"
	"github.com/arloliu/eldoc/format"
	"github.com/arloliu/eldoc/section"
)

// encodeCell serializes one cell into dst, which must be exactly the field's
// SizeBytes long. The codec trusts the descriptor's width: it never writes
// past dst, and string values longer than the span are truncated rather than
// overflowed.
func encodeCell(dst []byte, fd section.FieldDescriptor, cell Cell, engine endian.EndianEngine) error {
	if cell.kind != fd.Type || len(dst) != int(fd.SizeBytes) {
		return errs.ErrSchemaMismatch
	}

	switch fd.Type {
	case format.TypeInteger:
		engine.PutUint64(dst, uint64(cell.intVal)) //nolint:gosec
	case format.TypeFloat:
		engine.PutUint32(dst, math.Float32bits(cell.fltVal))
	case format.TypeString:
		n := copy(dst, cell.textVal)
		for i := n; i < len(dst); i++ {
			dst[i] = 0
		}
	default:
		return errs.ErrInvalidFieldType
	}

	return nil
}

// decodeCell deserializes one cell from src, which must be exactly the
// field's SizeBytes long.
//
// String cells are written NUL-padded, so decoding trims the value at the
// first NUL byte; a value occupying the full span decodes intact.
func decodeCell(src []byte, fd section.FieldDescriptor, engine endian.EndianEngine) (Cell, error) {
	if len(src) != int(fd.SizeBytes) {
		return Cell{}, errs.ErrSchemaMismatch
	}

	switch fd.Type {
	case format.TypeInteger:
		return IntegerCell(int64(engine.Uint64(src))), nil //nolint:gosec
	case format.TypeFloat:
		return FloatCell(math.Float32frombits(engine.Uint32(src))), nil
	case format.TypeString:
		end := len(src)
		for i, b := range src {
			if b == 0 {
				end = i
				break
			}
		}

		return StringCell(string(src[:end])), nil
	default:
		return Cell{}, errs.ErrInvalidFieldType
	}
}

// encodeRow serializes all of the row's cells in schema order into dst, which
// must be exactly the document's row stride long.
func (d *Document) encodeRow(dst []byte, row *Row) error {
	if !d.matchesSchema(row) {
		return errs.ErrSchemaMismatch
	}

	offset := 0
	for i, fd := range d.fields {
		span := dst[offset : offset+int(fd.SizeBytes)]
		if err := encodeCell(span, fd, row.Cells[i], d.engine); err != nil {
			return err
		}
		offset += int(fd.SizeBytes)
	}

	return nil
}

// decodeRow deserializes one row from src, which must be exactly the
// document's row stride long. On any cell error the partially decoded row is
// discarded.
func (d *Document) decodeRow(src []byte, index uint32) (*Row, error) {
	row := &Row{
		Index: index,
		Cells: make([]Cell, len(d.fields)),
	}

	offset := 0
	for i, fd := range d.fields {
		span := src[offset : offset+int(fd.SizeBytes)]
		cell, err := decodeCell(span, fd, d.engine)
		if err != nil {
			return nil, err
		}
		row.Cells[i] = cell
		offset += int(fd.SizeBytes)
	}

	return row, nil
}
