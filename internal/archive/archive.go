// Package archive implements the zip container behind zipmap.
//
// Records are zip entries addressed through the central directory, so a
// single record can be read and verified without touching the rest of the
// stream.
package archive

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/klauspost/compress/zip"
)

// Sentinel errors surfaced by archive reads.
var (
	// ErrMalformedArchive is returned when a byte stream is not a
	// structurally valid archive.
	ErrMalformedArchive = errors.New("zipmap: malformed archive")

	// ErrChecksumMismatch is returned when a record's stored checksum does
	// not match its decompressed payload.
	ErrChecksumMismatch = errors.New("zipmap: checksum mismatch")
)

// Info describes one record as recorded in the central directory.
type Info struct {
	// Name is the record name.
	Name string

	// Compression is the method used to store the payload.
	Compression Compression

	// CompressedSize is the payload size as stored.
	CompressedSize uint64

	// UncompressedSize is the original payload size.
	UncompressedSize uint64

	// CRC32 is the IEEE checksum of the uncompressed payload.
	CRC32 uint32
}

// Archive provides record-level access to a parsed zip stream.
//
// Records keep central-directory order; when a foreign archive carries
// duplicate names, the last occurrence wins and the first position is kept.
type Archive struct {
	names  []string
	byName map[string]*zip.File
}

// Open parses an archive from memory.
//
// Only the central directory is read; payloads are decompressed and
// verified on demand by Read. Returns ErrMalformedArchive when the stream
// is not a well-formed archive.
func Open(data []byte) (*Archive, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedArchive, err)
	}

	a := &Archive{byName: make(map[string]*zip.File, len(zr.File))}
	for _, f := range zr.File {
		if _, ok := a.byName[f.Name]; !ok {
			a.names = append(a.names, f.Name)
		}
		a.byName[f.Name] = f
	}
	return a, nil
}

// Names returns record names in central-directory order.
// The returned slice aliases internal state and must be treated as immutable.
func (a *Archive) Names() []string {
	return a.names
}

// Len returns the number of records.
func (a *Archive) Len() int {
	return len(a.names)
}

// Contains reports whether a record with the given name exists.
func (a *Archive) Contains(name string) bool {
	_, ok := a.byName[name]
	return ok
}

// Lookup returns directory metadata for the named record.
func (a *Archive) Lookup(name string) (Info, bool) {
	f, ok := a.byName[name]
	if !ok {
		return Info{}, false
	}
	return Info{
		Name:             f.Name,
		Compression:      compressionOf(f.Method),
		CompressedSize:   f.CompressedSize64,
		UncompressedSize: f.UncompressedSize64,
		CRC32:            f.CRC32,
	}, true
}

// Read decompresses and returns the named record's payload, verifying its
// checksum. Returns ErrChecksumMismatch when the payload does not match the
// stored checksum and ErrMalformedArchive for any other decode failure.
func (a *Archive) Read(name string) ([]byte, error) {
	f, ok := a.byName[name]
	if !ok {
		return nil, fmt.Errorf("record %q: %w", name, fs.ErrNotExist)
	}

	rc, err := f.Open()
	if err != nil {
		return nil, readError(name, err)
	}
	defer rc.Close()

	content, err := io.ReadAll(rc)
	if err != nil {
		return nil, readError(name, err)
	}
	return content, nil
}

func readError(name string, err error) error {
	if errors.Is(err, zip.ErrChecksum) {
		return fmt.Errorf("record %q: %w", name, ErrChecksumMismatch)
	}
	return fmt.Errorf("record %q: %w: %v", name, ErrMalformedArchive, err)
}
