package compress

// ZstdCompressor provides Zstandard compression for document snapshots.
//
// This compressor is designed for scenarios where compression ratio is more
// important than compression speed, making it ideal for:
//   - Cold storage and archival of document snapshots
//   - Network transmission where bandwidth is limited
//   - Scenarios where restores happen infrequently
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
