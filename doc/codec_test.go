package doc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/eldoc/endian"
	"github.com/arloliu/eldoc/errs"
	"github.com/arloliu/eldoc/format"
	"github.com/arloliu/eldoc/section"
)

var testEngine = endian.GetLittleEndianEngine()

func mustFieldDescriptor(t *testing.T, fieldType format.FieldType, name string, length uint16) section.FieldDescriptor {
	t.Helper()
	fd, err := section.NewFieldDescriptor(fieldType, name, length)
	require.NoError(t, err)

	return fd
}

// ==============================================================================
// Cell Round-Trip Tests
// ==============================================================================

func TestCellCodec_IntegerRoundTrip(t *testing.T) {
	fd := mustFieldDescriptor(t, format.TypeInteger, "Integer", 1)

	for _, v := range []int64{0, 1, -1, 123, -9_223_372_036_854_775_808, 9_223_372_036_854_775_807} {
		buf := make([]byte, fd.SizeBytes)
		require.NoError(t, encodeCell(buf, fd, IntegerCell(v), testEngine))

		cell, err := decodeCell(buf, fd, testEngine)
		require.NoError(t, err)
		require.Equal(t, format.TypeInteger, cell.Type())
		require.Equal(t, v, cell.Integer())
	}
}

func TestCellCodec_FloatRoundTrip(t *testing.T) {
	fd := mustFieldDescriptor(t, format.TypeFloat, "Float", 1)

	for _, v := range []float32{0, 1.1, -3.25, 1e-38, 3.4e38} {
		buf := make([]byte, fd.SizeBytes)
		require.NoError(t, encodeCell(buf, fd, FloatCell(v), testEngine))

		cell, err := decodeCell(buf, fd, testEngine)
		require.NoError(t, err)
		// Bit-exact within the fixed width.
		require.Equal(t, v, cell.Float())
	}
}

func TestCellCodec_StringRoundTrip(t *testing.T) {
	fd := mustFieldDescriptor(t, format.TypeString, "String 10", 10)
	require.Equal(t, uint16(11), fd.SizeBytes)

	for _, v := range []string{"", "Row 1", "exactly 10", "elevenchars"} {
		buf := make([]byte, fd.SizeBytes)
		require.NoError(t, encodeCell(buf, fd, StringCell(v), testEngine))

		cell, err := decodeCell(buf, fd, testEngine)
		require.NoError(t, err)
		require.Equal(t, v, cell.Text())
	}
}

func TestCellCodec_StringTruncatesNotOverflows(t *testing.T) {
	fd := mustFieldDescriptor(t, format.TypeString, "short", 4)
	require.Equal(t, uint16(5), fd.SizeBytes)

	// Guard bytes around the span must stay untouched.
	backing := []byte{0xAA, 0xAA, 0xAA, 0xAA, 0xAA, 0xAA, 0xAA}
	span := backing[1:6]

	long := strings.Repeat("z", 32)
	require.NoError(t, encodeCell(span, fd, StringCell(long), testEngine))
	require.Equal(t, byte(0xAA), backing[0])
	require.Equal(t, byte(0xAA), backing[6])

	cell, err := decodeCell(span, fd, testEngine)
	require.NoError(t, err)
	require.Equal(t, strings.Repeat("z", 5), cell.Text())
}

func TestCellCodec_StringZeroFillsPadding(t *testing.T) {
	fd := mustFieldDescriptor(t, format.TypeString, "pad", 6)

	buf := make([]byte, fd.SizeBytes)
	for i := range buf {
		buf[i] = 0xFF
	}

	require.NoError(t, encodeCell(buf, fd, StringCell("ab"), testEngine))
	require.Equal(t, []byte{'a', 'b', 0, 0, 0, 0, 0}, buf)
}

// ==============================================================================
// Error Cases
// ==============================================================================

func TestCellCodec_TypeMismatch(t *testing.T) {
	fd := mustFieldDescriptor(t, format.TypeInteger, "Integer", 1)
	buf := make([]byte, fd.SizeBytes)

	err := encodeCell(buf, fd, FloatCell(1.5), testEngine)
	require.ErrorIs(t, err, errs.ErrSchemaMismatch)
}

func TestCellCodec_SpanLengthMismatch(t *testing.T) {
	fd := mustFieldDescriptor(t, format.TypeInteger, "Integer", 1)

	err := encodeCell(make([]byte, 4), fd, IntegerCell(1), testEngine)
	require.ErrorIs(t, err, errs.ErrSchemaMismatch)

	_, err = decodeCell(make([]byte, 4), fd, testEngine)
	require.ErrorIs(t, err, errs.ErrSchemaMismatch)
}

// ==============================================================================
// Row Codec Tests
// ==============================================================================

func TestRowCodec_RoundTrip(t *testing.T) {
	d, err := New()
	require.NoError(t, err)
	require.NoError(t, d.AddField(mustFieldDescriptor(t, format.TypeInteger, "Integer", 1)))
	require.NoError(t, d.AddField(mustFieldDescriptor(t, format.TypeFloat, "Float", 1)))
	require.NoError(t, d.AddField(mustFieldDescriptor(t, format.TypeString, "String 10", 10)))

	row := d.NewRow()
	row.Cells[0] = IntegerCell(123)
	row.Cells[1] = FloatCell(1.1)
	row.Cells[2] = StringCell("Row 1")

	buf := make([]byte, d.RowLength())
	require.NoError(t, d.encodeRow(buf, row))

	decoded, err := d.decodeRow(buf, 7)
	require.NoError(t, err)
	require.Equal(t, uint32(7), decoded.Index)
	require.Equal(t, int64(123), decoded.Cells[0].Integer())
	require.Equal(t, float32(1.1), decoded.Cells[1].Float())
	require.Equal(t, "Row 1", decoded.Cells[2].Text())
}

func TestRowCodec_SchemaMismatch(t *testing.T) {
	d, err := New()
	require.NoError(t, err)
	require.NoError(t, d.AddField(mustFieldDescriptor(t, format.TypeInteger, "Integer", 1)))

	buf := make([]byte, d.RowLength())

	t.Run("wrong cell count", func(t *testing.T) {
		row := &Row{Cells: []Cell{IntegerCell(1), IntegerCell(2)}}
		require.ErrorIs(t, d.encodeRow(buf, row), errs.ErrSchemaMismatch)
	})

	t.Run("wrong cell type", func(t *testing.T) {
		row := &Row{Cells: []Cell{StringCell("oops")}}
		require.ErrorIs(t, d.encodeRow(buf, row), errs.ErrSchemaMismatch)
	})

	t.Run("nil row", func(t *testing.T) {
		require.ErrorIs(t, d.encodeRow(buf, nil), errs.ErrSchemaMismatch)
	})
}
