package zipmap

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/opencontainers/go-digest"
	"golang.org/x/sync/singleflight"

	"github.com/meigma/zipmap/internal/archive"
)

// Reader provides read-only, record-at-a-time access to an archive.
//
// Records are located through the archive's central directory, so a single
// record can be read and verified without decompressing the whole stream.
// Unlike Map, a Reader never materializes entries it was not asked for.
//
// A Reader is safe for concurrent reads.
type Reader struct {
	a      *archive.Archive
	data   []byte
	logger *slog.Logger

	cacheEnabled bool
	mu           sync.RWMutex
	cache        map[string][]byte
	group        singleflight.Group // zero value is valid
}

// log returns the logger, falling back to a discard logger if nil.
func (r *Reader) log() *slog.Logger {
	if r.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return r.logger
}

// NewReader creates a Reader over an archive held in memory.
//
// Returns ErrMalformedArchive when data is not a well-formed archive, and
// ErrDigestMismatch when an expected digest was configured and the archive
// bytes do not match it.
func NewReader(data []byte, opts ...ReaderOption) (*Reader, error) {
	cfg := readerConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.expectedDigest != "" {
		if d := digest.FromBytes(data); d != cfg.expectedDigest {
			return nil, fmt.Errorf("%w: want %s, got %s", ErrDigestMismatch, cfg.expectedDigest, d)
		}
	}

	a, err := archive.Open(data)
	if err != nil {
		return nil, err
	}

	r := &Reader{
		a:            a,
		data:         data,
		logger:       cfg.logger,
		cacheEnabled: cfg.cache,
	}
	if r.cacheEnabled {
		r.cache = make(map[string][]byte)
	}
	return r, nil
}

// OpenReader creates a Reader over the archive file at path.
func OpenReader(path string, opts ...ReaderOption) (*Reader, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read archive file: %w", err)
	}
	return NewReader(data, opts...)
}

// Get reads, decompresses, and verifies the record stored under the
// stringified key, returning its payload.
//
// Returns ErrKeyNotFound when no record has that name, ErrChecksumMismatch
// when the payload fails verification, and ErrMalformedArchive for any
// other decode failure.
//
// When caching is enabled, content is cached after first read and
// concurrent calls for the same record are deduplicated.
func (r *Reader) Get(key any) ([]byte, error) {
	name := keyString(key)
	if !r.a.Contains(name) {
		return nil, fmt.Errorf("%w: %q", ErrKeyNotFound, name)
	}

	if !r.cacheEnabled {
		return r.a.Read(name)
	}

	r.mu.RLock()
	content, ok := r.cache[name]
	r.mu.RUnlock()
	if ok {
		r.log().Debug("record cache hit", "key", name)
		return bytes.Clone(content), nil
	}
	r.log().Debug("record cache miss", "key", name)

	result, err, _ := r.group.Do(name, func() (any, error) {
		// Double-check cache
		r.mu.RLock()
		content, ok := r.cache[name]
		r.mu.RUnlock()
		if ok {
			return content, nil
		}

		content, err := r.a.Read(name)
		if err != nil {
			return nil, err
		}

		r.mu.Lock()
		r.cache[name] = content
		r.mu.Unlock()
		return content, nil
	})
	if err != nil {
		return nil, err
	}
	return bytes.Clone(result.([]byte)), nil //nolint:errcheck // type assertion always succeeds when err is nil
}

// Contains reports whether a record exists under the stringified key.
func (r *Reader) Contains(key any) bool {
	return r.a.Contains(keyString(key))
}

// Entry returns directory metadata for the record stored under the
// stringified key, without reading its payload.
func (r *Reader) Entry(key any) (RecordInfo, bool) {
	return r.a.Lookup(keyString(key))
}

// Keys returns all record names in archive order.
// The returned slice must be treated as immutable.
func (r *Reader) Keys() []string {
	return r.a.Names()
}

// Len returns the number of records.
func (r *Reader) Len() int {
	return r.a.Len()
}

// Digest returns the sha256 digest of the raw archive bytes.
func (r *Reader) Digest() digest.Digest {
	return digest.FromBytes(r.data)
}

// Map reads every record and materializes the archive as a Map, like
// FromBytes on the underlying archive bytes.
func (r *Reader) Map(opts ...Option) (*Map, error) {
	return FromBytes(r.data, opts...)
}
