package doc

import (
	"fmt"
	"io"
	"os"

	"github.com/arloliu/eldoc/compress"
	"github.com/arloliu/eldoc/endian"
	"github.com/arloliu/eldoc/errs"
	"github.com/arloliu/eldoc/format"
	"github.com/arloliu/eldoc/internal/hash"
	"github.com/arloliu/eldoc/internal/pool"
)

// Snapshot frame layout. A snapshot carries the raw bytes of a document file,
// optionally compressed, with an xxHash64 checksum for integrity verification.
//
//	offset 0   magic "ELSN" (4 bytes)
//	offset 4   version u8 (= 1)
//	offset 5   compression u8 (format.CompressionType)
//	offset 6   reserved u16 (0)
//	offset 8   raw length u32 (uncompressed document size)
//	offset 12  payload length u32 (compressed size)
//	offset 16  checksum u64 (xxHash64 of the raw document bytes)
//	offset 24  payload
const (
	snapshotHeaderSize = 24
	snapshotVersion    = 1
)

var snapshotMagic = [4]byte{'E', 'L', 'S', 'N'}

// WriteSnapshot frames the document file's raw bytes into a snapshot and
// writes it to w.
//
// The snapshot records the compression algorithm and an xxHash64 checksum of
// the raw bytes, so RestoreSnapshot can pick the matching decompressor and
// verify integrity. The document file itself is read through the handle's
// single-open discipline and closed before returning.
//
// Parameters:
//   - w: Destination for the framed snapshot
//   - compression: Payload compression (format.CompressionNone/Zstd/S2/LZ4)
//
// Returns:
//   - error: errs.ErrDocumentOpen, errs.ErrNoFilePath, an invalid compression
//     type error, or a wrapped I/O error.
func (d *Document) WriteSnapshot(w io.Writer, compression format.CompressionType) error {
	codec, err := compress.CreateCodec(compression, "snapshot")
	if err != nil {
		return err
	}

	if err := d.Open("", ModeRead); err != nil {
		return err
	}

	buf := pool.GetSnapshotBuffer()
	defer pool.PutSnapshotBuffer(buf)

	_, err = io.Copy(buf, d.file)
	cerr := d.Close()
	if err != nil {
		return fmt.Errorf("read document file %q: %w", d.path, err)
	}
	if cerr != nil {
		return cerr
	}

	raw := buf.Bytes()
	payload, err := codec.Compress(raw)
	if err != nil {
		return fmt.Errorf("compress snapshot of %q: %w", d.path, err)
	}

	engine := endian.GetLittleEndianEngine()
	frame := make([]byte, snapshotHeaderSize)
	copy(frame[0:4], snapshotMagic[:])
	frame[4] = snapshotVersion
	frame[5] = uint8(compression)
	engine.PutUint32(frame[8:12], uint32(len(raw)))      //nolint:gosec
	engine.PutUint32(frame[12:16], uint32(len(payload))) //nolint:gosec
	engine.PutUint64(frame[16:24], hash.Checksum(raw))

	if _, err := w.Write(frame); err != nil {
		return fmt.Errorf("write snapshot frame: %w", err)
	}
	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("write snapshot payload: %w", err)
	}

	return nil
}

// RestoreSnapshot reads a snapshot from r, verifies its integrity, rewrites
// the document file at path with the restored bytes, and loads it.
//
// Parameters:
//   - r: Source of a frame produced by WriteSnapshot
//   - path: Destination document file path (created or truncated)
//   - opts: Options for the returned handle
//
// Returns:
//   - *Document: Handle describing the restored document.
//   - error: errs.ErrInvalidSnapshot for a malformed frame,
//     errs.ErrSnapshotChecksum when the payload does not hash to the recorded
//     checksum, or a wrapped I/O error.
func RestoreSnapshot(r io.Reader, path string, opts ...Option) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	if len(data) < snapshotHeaderSize {
		return nil, errs.ErrInvalidSnapshot
	}
	if [4]byte(data[0:4]) != snapshotMagic || data[4] != snapshotVersion {
		return nil, errs.ErrInvalidSnapshot
	}

	codec, err := compress.CreateCodec(format.CompressionType(data[5]), "snapshot")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidSnapshot, err)
	}

	engine := endian.GetLittleEndianEngine()
	rawLen := engine.Uint32(data[8:12])
	payloadLen := engine.Uint32(data[12:16])
	checksum := engine.Uint64(data[16:24])

	if len(data) != snapshotHeaderSize+int(payloadLen) {
		return nil, errs.ErrInvalidSnapshot
	}

	raw, err := codec.Decompress(data[snapshotHeaderSize:])
	if err != nil {
		return nil, fmt.Errorf("decompress snapshot: %w", err)
	}
	if len(raw) != int(rawLen) {
		return nil, errs.ErrInvalidSnapshot
	}
	if hash.Checksum(raw) != checksum {
		return nil, errs.ErrSnapshotChecksum
	}

	d, err := New(opts...)
	if err != nil {
		return nil, err
	}

	if err := os.WriteFile(path, raw, d.fileMode); err != nil {
		return nil, fmt.Errorf("write restored document %q: %w", path, err)
	}

	if err := d.Load(path); err != nil {
		return nil, err
	}

	return d, nil
}
