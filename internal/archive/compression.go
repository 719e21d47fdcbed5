package archive

import "github.com/klauspost/compress/zip"

// Compression identifies how a record's payload is stored in the archive.
type Compression uint8

const (
	CompressionNone Compression = iota
	CompressionDeflate
)

// compressionUnknown marks records written by foreign tools with a method
// this package does not produce.
const compressionUnknown Compression = 0xFF

// String returns the human-readable name of the compression method.
func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionDeflate:
		return "deflate"
	default:
		return "unknown"
	}
}

// method maps the compression to its zip method tag.
func (c Compression) method() uint16 {
	if c == CompressionNone {
		return zip.Store
	}
	return zip.Deflate
}

// compressionOf maps a zip method tag back to a Compression.
func compressionOf(method uint16) Compression {
	switch method {
	case zip.Store:
		return CompressionNone
	case zip.Deflate:
		return CompressionDeflate
	default:
		return compressionUnknown
	}
}
