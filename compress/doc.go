// Package compress provides compression and decompression codecs for eldoc
// document snapshots.
//
// Snapshots frame the raw bytes of an EntryLogger document for backup and
// transfer. The document file itself is never compressed, since fixed-stride
// row addressing requires raw bytes on disk; compression applies only at the
// snapshot boundary.
//
// # Architecture
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// # Supported Algorithms
//
//   - None (format.CompressionNone): bypasses data unchanged. Use when CPU
//     matters more than snapshot size.
//   - Zstd (format.CompressionZstd): best compression ratio, moderate speed.
//     Suited to archival snapshots.
//   - S2 (format.CompressionS2): balanced ratio and speed.
//   - LZ4 (format.CompressionLZ4): fastest decompression, moderate ratio.
//     Suited to snapshots restored frequently.
//
// Codecs are selected by their format.CompressionType tag, which is recorded
// in the snapshot frame so the restoring side picks the matching decompressor:
//
//	codec, err := compress.CreateCodec(format.CompressionZstd, "snapshot")
//	if err != nil {
//	    return err
//	}
//	compressed, err := codec.Compress(documentBytes)
package compress
