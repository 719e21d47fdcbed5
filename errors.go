package zipmap

import (
	"errors"

	"github.com/meigma/zipmap/internal/archive"
)

// Sentinel errors specific to the zipmap package.
var (
	// ErrKeyNotFound is returned when a key has no entry.
	ErrKeyNotFound = errors.New("zipmap: key not found")

	// ErrDigestMismatch is returned when archive content does not match its
	// expected digest.
	ErrDigestMismatch = errors.New("zipmap: digest mismatch")
)

// Errors re-exported from internal/archive.
var (
	// ErrMalformedArchive is returned when a byte stream is not a
	// structurally valid archive. Decoding aborts; no partial map is returned.
	ErrMalformedArchive = archive.ErrMalformedArchive

	// ErrChecksumMismatch is returned when a record's stored checksum does
	// not match its decompressed payload.
	ErrChecksumMismatch = archive.ErrChecksumMismatch
)
