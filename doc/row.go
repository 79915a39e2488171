package doc

import "github.com/arloliu/eldoc/format"

// Cell is one typed value within a row. The type tag is inherited from the
// field descriptor the cell is encoded under; a Cell constructed with one type
// cannot be written to a field of another type.
//
// Cell is an explicit sum type: exactly one of the value fields is meaningful,
// selected by the type tag.
type Cell struct {
	kind    format.FieldType
	intVal  int64
	fltVal  float32
	textVal string
}

// IntegerCell creates a Cell holding a fixed-width signed integer value.
func IntegerCell(v int64) Cell {
	return Cell{kind: format.TypeInteger, intVal: v}
}

// FloatCell creates a Cell holding an IEEE754 binary32 value.
func FloatCell(v float32) Cell {
	return Cell{kind: format.TypeFloat, fltVal: v}
}

// StringCell creates a Cell holding a string value.
//
// The value is truncated to the field's on-disk width at encode time; it is
// the caller's responsibility to size values to the field if truncation is
// not acceptable.
func StringCell(v string) Cell {
	return Cell{kind: format.TypeString, textVal: v}
}

// Type returns the cell's type tag.
func (c Cell) Type() format.FieldType {
	return c.kind
}

// Integer returns the integer value of the cell. It is only meaningful for
// cells of type format.TypeInteger.
func (c Cell) Integer() int64 {
	return c.intVal
}

// Float returns the floating-point value of the cell. It is only meaningful
// for cells of type format.TypeFloat.
func (c Cell) Float() float32 {
	return c.fltVal
}

// Text returns the string value of the cell. It is only meaningful for cells
// of type format.TypeString.
func (c Cell) Text() string {
	return c.textVal
}

// Row is one fixed-width record: one cell per schema column, in schema order.
//
// A Row is a transient, caller-owned value materialized from storage or newly
// constructed; only its serialized bytes persist. Its cell count and per-cell
// types must exactly match the document schema when it is written.
type Row struct {
	// Index is the row's logical position in the document. AppendRow assigns
	// it; UpdateRow requires it to address an existing row.
	Index uint32
	// Cells holds one cell per field descriptor, in schema order.
	Cells []Cell
}

// NewRow materializes a zero-valued row matching the document's current
// schema: one zero cell of the right type per field, with Index set to the
// position the row would occupy if appended next.
func (d *Document) NewRow() *Row {
	cells := make([]Cell, len(d.fields))
	for i, fd := range d.fields {
		cells[i] = Cell{kind: fd.Type}
	}

	return &Row{
		Index: d.header.RowCount,
		Cells: cells,
	}
}

// matchesSchema reports whether the row's cells line up with the document's
// schema in count and type.
func (d *Document) matchesSchema(row *Row) bool {
	if row == nil || len(row.Cells) != len(d.fields) {
		return false
	}

	for i, fd := range d.fields {
		if row.Cells[i].kind != fd.Type {
			return false
		}
	}

	return true
}
