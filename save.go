package zipmap

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/opencontainers/go-digest"

	"github.com/meigma/zipmap/internal/archive"
)

// Bytes serializes all entries into one zip archive byte stream.
//
// Each entry becomes one named record, written in insertion order with the
// map's compression method. Records carry no timestamps, so repeated calls
// on an unmutated map return byte-identical output. Serializing does not
// mutate the map.
func (m *Map) Bytes() ([]byte, error) {
	records := make([]archive.Record, 0, len(m.keys))
	for _, k := range m.keys {
		records = append(records, archive.Record{Key: k, Value: m.entries[k]})
	}
	return archive.Encode(records, m.compression)
}

// Digest returns the sha256 digest of the serialized archive, suitable for
// content addressing. Equal maps with the same compression produce equal
// digests.
func (m *Map) Digest() (digest.Digest, error) {
	data, err := m.Bytes()
	if err != nil {
		return "", err
	}
	return digest.FromBytes(data), nil
}

// Save writes the serialized archive to path, creating or replacing the
// file. The file content equals the output of Bytes exactly.
//
// Uses an atomic write (temp file + rename) to prevent partial writes on
// failure. Parent directories are created as needed.
func (m *Map) Save(path string) error {
	data, err := m.Bytes()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("create archive directory: %w", err)
	}
	if err := writeFileAtomic(path, data); err != nil {
		return fmt.Errorf("write archive file: %w", err)
	}
	return nil
}

// writeFileAtomic writes data to a temp file then renames to target,
// ensuring atomic replacement of the target file.
func writeFileAtomic(target string, data []byte) error {
	dir := filepath.Dir(target)
	tmp, err := os.CreateTemp(dir, ".zipmap-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, target); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}
