package zipmap

import (
	"log/slog"

	"github.com/opencontainers/go-digest"
)

// readerConfig holds configuration for Reader construction.
type readerConfig struct {
	cache          bool
	logger         *slog.Logger
	expectedDigest digest.Digest
}

// ReaderOption configures a Reader.
type ReaderOption func(*readerConfig)

// ReaderWithCache enables in-memory caching of decompressed record content.
//
// When enabled, content is cached after first read and served from cache on
// subsequent reads. Concurrent requests for the same record are deduplicated.
func ReaderWithCache(enabled bool) ReaderOption {
	return func(cfg *readerConfig) {
		cfg.cache = enabled
	}
}

// ReaderWithLogger sets a logger for cache diagnostics at Debug level.
// A nil logger (the default) discards all output.
func ReaderWithLogger(logger *slog.Logger) ReaderOption {
	return func(cfg *readerConfig) {
		cfg.logger = logger
	}
}

// ReaderWithExpectedDigest verifies the archive bytes against the given
// digest before parsing. Construction fails with ErrDigestMismatch when the
// content does not match.
func ReaderWithExpectedDigest(d digest.Digest) ReaderOption {
	return func(cfg *readerConfig) {
		cfg.expectedDigest = d
	}
}
