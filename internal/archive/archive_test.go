package archive

import (
	"bytes"
	"io"
	"io/fs"
	"testing"

	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	t.Parallel()

	records := []Record{
		{Key: "first", Value: bytes.Repeat([]byte("abc"), 500)},
		{Key: "second", Value: []byte{0x00, 0x01, 0xFF}},
		{Key: "third", Value: []byte("hola")},
	}

	for _, c := range []Compression{CompressionDeflate, CompressionNone} {
		t.Run(c.String(), func(t *testing.T) {
			t.Parallel()

			data, err := Encode(records, c)
			require.NoError(t, err)

			a, err := Open(data)
			require.NoError(t, err)
			require.Equal(t, []string{"first", "second", "third"}, a.Names())
			require.Equal(t, 3, a.Len())

			for _, rec := range records {
				assert.True(t, a.Contains(rec.Key))
				got, err := a.Read(rec.Key)
				require.NoError(t, err)
				assert.Equal(t, rec.Value, got)
			}
		})
	}
}

func TestEncodeIsDeterministic(t *testing.T) {
	t.Parallel()

	records := []Record{{Key: "k", Value: bytes.Repeat([]byte("xy"), 1000)}}

	first, err := Encode(records, CompressionDeflate)
	require.NoError(t, err)
	second, err := Encode(records, CompressionDeflate)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestOpenMalformed(t *testing.T) {
	t.Parallel()

	_, err := Open([]byte("garbage"))
	require.ErrorIs(t, err, ErrMalformedArchive)
}

func TestReadUnknownRecord(t *testing.T) {
	t.Parallel()

	data, err := Encode(nil, CompressionDeflate)
	require.NoError(t, err)
	a, err := Open(data)
	require.NoError(t, err)

	_, err = a.Read("absent")
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestLookup(t *testing.T) {
	t.Parallel()

	payload := bytes.Repeat([]byte("abc"), 500)
	data, err := Encode([]Record{{Key: "k", Value: payload}}, CompressionDeflate)
	require.NoError(t, err)

	a, err := Open(data)
	require.NoError(t, err)

	info, ok := a.Lookup("k")
	require.True(t, ok)
	assert.Equal(t, "k", info.Name)
	assert.Equal(t, CompressionDeflate, info.Compression)
	assert.Equal(t, uint64(len(payload)), info.UncompressedSize)
	assert.NotZero(t, info.CRC32)

	_, ok = a.Lookup("absent")
	assert.False(t, ok)
}

func TestDuplicateNamesLastWins(t *testing.T) {
	t.Parallel()

	// Foreign tools can produce archives with duplicate entry names.
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, payload := range []string{"old", "padding", "new"} {
		name := "dup"
		if payload == "padding" {
			name = "other"
		}
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(payload))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())

	a, err := Open(buf.Bytes())
	require.NoError(t, err)

	// Last occurrence wins, first position is kept.
	require.Equal(t, []string{"dup", "other"}, a.Names())
	got, err := a.Read("dup")
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), got)
}

// passthrough writes payloads verbatim under a method tag this package
// cannot decode.
type passthrough struct{ w io.Writer }

func (p passthrough) Write(b []byte) (int, error) { return p.w.Write(b) }
func (p passthrough) Close() error                { return nil }

func TestUnsupportedMethod(t *testing.T) {
	t.Parallel()

	const methodBzip2 = 12

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	zw.RegisterCompressor(methodBzip2, func(w io.Writer) (io.WriteCloser, error) {
		return passthrough{w: w}, nil
	})
	w, err := zw.CreateHeader(&zip.FileHeader{Name: "k", Method: methodBzip2})
	require.NoError(t, err)
	_, err = w.Write([]byte("payload"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	a, err := Open(buf.Bytes())
	require.NoError(t, err)

	info, ok := a.Lookup("k")
	require.True(t, ok)
	assert.Equal(t, "unknown", info.Compression.String())

	_, err = a.Read("k")
	require.ErrorIs(t, err, ErrMalformedArchive)
}
