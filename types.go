package zipmap

import "github.com/meigma/zipmap/internal/archive"

// --- Re-exports from internal/archive ---

// Compression identifies how record payloads are stored in the archive.
type Compression = archive.Compression

// RecordInfo describes one archive record as recorded in the central
// directory: name, compression method, stored and original sizes, and the
// checksum of the uncompressed payload.
type RecordInfo = archive.Info

// Compression constants.
const (
	CompressionNone    = archive.CompressionNone
	CompressionDeflate = archive.CompressionDeflate
)
