package zipmap

import (
	"fmt"
	"os"

	"github.com/meigma/zipmap/internal/archive"
)

// FromBytes parses an archive byte stream into a new Map. Every named
// record becomes one entry, keyed by record name, in archive order.
//
// Every record's checksum is verified against its decompressed payload.
// Any failure aborts the whole decode: ErrMalformedArchive for a
// structurally invalid stream, ErrChecksumMismatch for a corrupt record.
// No partial map is ever returned.
func FromBytes(data []byte, opts ...Option) (*Map, error) {
	a, err := archive.Open(data)
	if err != nil {
		return nil, err
	}

	m := New(opts...)
	for _, name := range a.Names() {
		content, err := a.Read(name)
		if err != nil {
			return nil, err
		}
		if _, ok := m.entries[name]; !ok {
			m.keys = append(m.keys, name)
		}
		m.entries[name] = content
	}
	return m, nil
}

// FromFile reads the archive file at path and parses it like FromBytes.
func FromFile(path string, opts ...Option) (*Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read archive file: %w", err)
	}
	return FromBytes(data, opts...)
}
