package metadata

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lidario/potree/errs"
	"github.com/lidario/potree/format"
	"github.com/stretchr/testify/require"
)

const sampleMetadata = `{
	"version": "2.0",
	"encoding": "BROTLI",
	"points": 1000,
	"scale": [0.001, 0.001, 0.001],
	"offset": [0, 0, 0],
	"attributes": [
		{"name": "position", "type": "int32", "size": 12},
		{"name": "rgb", "type": "uint16", "size": 6},
		{"name": "intensity", "type": "uint16", "size": 2}
	]
}`

func writeMetadata(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "metadata.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadValid(t *testing.T) {
	path := writeMetadata(t, sampleMetadata)

	meta, err := Load(path, format.EncodingBrotli)
	require.NoError(t, err)
	require.Equal(t, format.EncodingBrotli, meta.Encoding)
	require.Equal(t, 1000, meta.Points)
	require.Equal(t, [3]float64{0.001, 0.001, 0.001}, meta.Scale)
	require.Len(t, meta.Schema, 3)
}

func TestLoadUnsupportedVersion(t *testing.T) {
	path := writeMetadata(t, `{"version": "1.8", "encoding": "BROTLI", "attributes": []}`)

	_, err := Load(path, format.EncodingBrotli)
	require.ErrorIs(t, err, errs.ErrUnsupportedVersion)
}

func TestLoadUnsupportedEncoding(t *testing.T) {
	path := writeMetadata(t, sampleMetadata)

	_, err := Load(path, format.EncodingDefault)
	require.ErrorIs(t, err, errs.ErrUnsupportedEncoding)
}

func TestLoadBadAttributeType(t *testing.T) {
	path := writeMetadata(t, `{
		"version": "2.0",
		"encoding": "BROTLI",
		"attributes": [{"name": "weird", "type": "nonsense", "size": 4}]
	}`)

	_, err := Load(path, format.EncodingBrotli)
	require.ErrorIs(t, err, errs.ErrSchemaMismatch)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"), format.EncodingBrotli)
	require.Error(t, err)
}

func TestPeekEncoding(t *testing.T) {
	path := writeMetadata(t, sampleMetadata)

	encoding, err := PeekEncoding(path)
	require.NoError(t, err)
	require.Equal(t, format.EncodingBrotli, encoding)
}
