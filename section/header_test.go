package section

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/eldoc/errs"
)

func TestNewHeader(t *testing.T) {
	header := NewHeader()

	require.Equal(t, uint8(FormatVersion), header.Version)
	require.Equal(t, uint16(HeaderSize), header.HeaderLen)
	require.Equal(t, uint16(0), header.RowLen)
	require.Equal(t, uint8(DescriptorSize), header.DescSize)
	require.Equal(t, uint8(0), header.DescCount)
	require.Equal(t, uint32(0), header.RowCount)
	require.NoError(t, header.Validate())
}

func TestHeader_Parse(t *testing.T) {
	t.Run("valid header", func(t *testing.T) {
		original := NewHeader()
		original.DescCount = 3
		original.HeaderLen = HeaderLength(3)
		original.RowLen = 23
		original.RowCount = 10

		data := original.Bytes()

		parsed := &Header{}
		err := parsed.Parse(data)

		require.NoError(t, err)
		require.Equal(t, original, *parsed)
	})

	t.Run("invalid size", func(t *testing.T) {
		header := &Header{}
		err := header.Parse([]byte{1, 2, 3})

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)
	})

	t.Run("invalid magic", func(t *testing.T) {
		original := NewHeader()
		data := original.Bytes()
		data[0] = 'X'

		header := &Header{}
		require.ErrorIs(t, header.Parse(data), errs.ErrInvalidMagicNumber)
	})

	t.Run("unsupported version", func(t *testing.T) {
		original := NewHeader()
		data := original.Bytes()
		data[3] = FormatVersion + 1

		header := &Header{}
		require.ErrorIs(t, header.Parse(data), errs.ErrCorruptHeader)
	})

	t.Run("wrong descriptor record size", func(t *testing.T) {
		original := NewHeader()
		original.DescSize = DescriptorSize + 1
		data := original.Bytes()

		header := &Header{}
		require.ErrorIs(t, header.Parse(data), errs.ErrInvalidDescriptorSize)
	})

	t.Run("header length inconsistent with descriptor count", func(t *testing.T) {
		original := NewHeader()
		original.DescCount = 2 // HeaderLen still HeaderLength(0)
		data := original.Bytes()

		header := &Header{}
		require.ErrorIs(t, header.Parse(data), errs.ErrCorruptHeader)
	})
}

func TestHeader_Bytes(t *testing.T) {
	header := NewHeader()
	header.DescCount = 1
	header.HeaderLen = HeaderLength(1)
	header.RowLen = 8
	header.RowCount = 0x01020304

	data := header.Bytes()

	require.Len(t, data, HeaderSize)
	require.Equal(t, []byte{'E', 'L', 'D'}, data[0:3])
	require.Equal(t, uint8(FormatVersion), data[3])
	// little-endian derived lengths
	require.Equal(t, []byte{HeaderSize + DescriptorSize, 0x00}, data[4:6])
	require.Equal(t, []byte{0x08, 0x00}, data[6:8])
	require.Equal(t, uint8(DescriptorSize), data[8])
	require.Equal(t, uint8(1), data[9])
	require.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, data[10:14])
	require.Equal(t, []byte{'-', '-'}, data[14:16])
}

func TestParseHeader(t *testing.T) {
	t.Run("accepts trailing bytes", func(t *testing.T) {
		original := NewHeader()
		data := append(original.Bytes(), 0xAA, 0xBB)
		header, err := ParseHeader(data)

		require.NoError(t, err)
		require.Equal(t, NewHeader(), header)
	})

	t.Run("too short", func(t *testing.T) {
		_, err := ParseHeader(make([]byte, HeaderSize-1))
		require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)
	})
}

func TestHeaderLength(t *testing.T) {
	require.Equal(t, uint16(HeaderSize), HeaderLength(0))
	require.Equal(t, uint16(HeaderSize+5*DescriptorSize), HeaderLength(5))
}
