package zipmap

// Option configures a Map at construction time.
type Option func(*Map)

// WithCompression sets how record payloads are stored when the map is
// serialized. Use CompressionNone to store payloads uncompressed,
// CompressionDeflate (the default) to compress them.
func WithCompression(c Compression) Option {
	return func(m *Map) {
		m.compression = c
	}
}
