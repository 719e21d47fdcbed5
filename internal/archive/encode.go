package archive

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zip"
)

// Record is one named payload to be written into an archive.
type Record struct {
	// Key is the record name, stored verbatim as the zip entry name.
	Key string

	// Value is the uncompressed payload.
	Value []byte
}

// Encode serializes records into a single zip archive, in the order given.
//
// Records carry no modification time, so encoding the same records with the
// same compression yields byte-identical output.
func Encode(records []Record, c Compression) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	zw.RegisterCompressor(zip.Deflate, func(w io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(w, flate.BestCompression)
	})

	for _, rec := range records {
		w, err := zw.CreateHeader(&zip.FileHeader{
			Name:   rec.Key,
			Method: c.method(),
		})
		if err != nil {
			zw.Close()
			return nil, fmt.Errorf("create record %q: %w", rec.Key, err)
		}
		if _, err := w.Write(rec.Value); err != nil {
			zw.Close()
			return nil, fmt.Errorf("write record %q: %w", rec.Key, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("finalize archive: %w", err)
	}
	return buf.Bytes(), nil
}
