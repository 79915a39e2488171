package doc

import (
	"bytes"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/eldoc/errs"
	"github.com/arloliu/eldoc/format"
)

func newPopulatedDocument(t *testing.T, rows int) *Document {
	t.Helper()

	d, _ := newSavedDocument(t)
	for i := 0; i < rows; i++ {
		row := d.NewRow()
		row.Cells[0] = IntegerCell(int64(i))
		row.Cells[1] = FloatCell(float32(i) * 0.25)
		row.Cells[2] = StringCell(fmt.Sprintf("Row %d", i))
		require.NoError(t, d.AppendRow(row))
	}

	return d
}

// ==============================================================================
// Snapshot Round-Trip Tests
// ==============================================================================

func TestSnapshot_RoundTrip(t *testing.T) {
	compressions := []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	}

	for _, compression := range compressions {
		t.Run(compression.String(), func(t *testing.T) {
			d := newPopulatedDocument(t, 20)

			var snap bytes.Buffer
			require.NoError(t, d.WriteSnapshot(&snap, compression))

			restored, err := RestoreSnapshot(&snap, filepath.Join(t.TempDir(), "restored.eld"))
			require.NoError(t, err)
			require.Equal(t, d.Header(), restored.Header())
			require.Equal(t, d.Fields(), restored.Fields())

			for i := uint32(0); i < 20; i++ {
				want, err := d.GetRow(i)
				require.NoError(t, err)
				got, err := restored.GetRow(i)
				require.NoError(t, err)
				require.Equal(t, want, got)
			}
		})
	}
}

func TestSnapshot_CompressionShrinksRepetitiveRows(t *testing.T) {
	d := newPopulatedDocument(t, 200)

	var raw, packed bytes.Buffer
	require.NoError(t, d.WriteSnapshot(&raw, format.CompressionNone))
	require.NoError(t, d.WriteSnapshot(&packed, format.CompressionZstd))

	// Zero-padded fixed-stride rows compress well.
	require.Less(t, packed.Len(), raw.Len())
}

// ==============================================================================
// Frame Validation Tests
// ==============================================================================

func TestSnapshot_InvalidFrames(t *testing.T) {
	d := newPopulatedDocument(t, 5)

	var snap bytes.Buffer
	require.NoError(t, d.WriteSnapshot(&snap, format.CompressionS2))
	dir := t.TempDir()

	t.Run("truncated frame", func(t *testing.T) {
		_, err := RestoreSnapshot(bytes.NewReader(snap.Bytes()[:10]), filepath.Join(dir, "a.eld"))
		require.ErrorIs(t, err, errs.ErrInvalidSnapshot)
	})

	t.Run("bad magic", func(t *testing.T) {
		data := bytes.Clone(snap.Bytes())
		data[0] = 'X'
		_, err := RestoreSnapshot(bytes.NewReader(data), filepath.Join(dir, "b.eld"))
		require.ErrorIs(t, err, errs.ErrInvalidSnapshot)
	})

	t.Run("unknown compression tag", func(t *testing.T) {
		data := bytes.Clone(snap.Bytes())
		data[5] = 0x7F
		_, err := RestoreSnapshot(bytes.NewReader(data), filepath.Join(dir, "c.eld"))
		require.ErrorIs(t, err, errs.ErrInvalidSnapshot)
	})

	t.Run("payload length mismatch", func(t *testing.T) {
		data := bytes.Clone(snap.Bytes())
		_, err := RestoreSnapshot(bytes.NewReader(data[:len(data)-1]), filepath.Join(dir, "d.eld"))
		require.ErrorIs(t, err, errs.ErrInvalidSnapshot)
	})

	t.Run("corrupted payload checksum", func(t *testing.T) {
		var plain bytes.Buffer
		require.NoError(t, d.WriteSnapshot(&plain, format.CompressionNone))

		data := bytes.Clone(plain.Bytes())
		data[len(data)-1] ^= 0xFF
		_, err := RestoreSnapshot(bytes.NewReader(data), filepath.Join(dir, "e.eld"))
		require.ErrorIs(t, err, errs.ErrSnapshotChecksum)
	})
}

func TestWriteSnapshot_RequiresFile(t *testing.T) {
	d := newTestDocument(t)

	var snap bytes.Buffer
	require.ErrorIs(t, d.WriteSnapshot(&snap, format.CompressionNone), errs.ErrNoFilePath)
}
