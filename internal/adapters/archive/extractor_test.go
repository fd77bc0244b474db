package archive_test

import (
	"archive/tar"
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/courierbuild/courier/internal/adapters/archive"
	"github.com/courierbuild/courier/internal/core/domain"
	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	name string
	data string
}

func buildArchive(t *testing.T, entries []entry) string {
	t.Helper()

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(zw)
	for _, e := range entries {
		require.NoError(t, tw.WriteHeader(&tar.Header{
			Name:     e.name,
			Mode:     0o644,
			Size:     int64(len(e.data)),
			Typeflag: tar.TypeReg,
		}))
		_, err := tw.Write([]byte(e.data))
		require.NoError(t, err)
	}
	require.NoError(t, tw.Close())
	require.NoError(t, zw.Close())

	path := filepath.Join(t.TempDir(), "package.tar.gz")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return path
}

func archiveResource(path string) domain.FetchedResource {
	return domain.FetchedResource{Path: path, Archive: true}
}

func TestExtract_PrimaryAndAuxiliaries(t *testing.T) {
	path := buildArchive(t, []entry{
		{"libbytes-f6610c9d61c318a7.rlib", "aux one"},
		{"export.rlib", "the real library"},
		{"libcfg_if-8132ccc150e6610a.rlib", "aux two"},
	})

	staging := t.TempDir()
	manifest, err := archive.NewExtractor().Extract(archiveResource(path), staging)
	require.NoError(t, err)

	content, err := os.ReadFile(manifest.PrimaryPath)
	require.NoError(t, err)
	assert.Equal(t, "the real library", string(content))

	require.Len(t, manifest.Auxiliaries, 2)
	assert.Equal(t, "libbytes-f6610c9d61c318a7.rlib", manifest.Auxiliaries[0].Name)
	assert.Equal(t, "libcfg_if-8132ccc150e6610a.rlib", manifest.Auxiliaries[1].Name)
	for _, aux := range manifest.Auxiliaries {
		assert.Equal(t, filepath.Join(staging, aux.Name), aux.Path)
	}
}

func TestExtract_NestedEntryNamesFlatten(t *testing.T) {
	path := buildArchive(t, []entry{
		{"target/release/export.rlib", "nested primary"},
	})

	manifest, err := archive.NewExtractor().Extract(archiveResource(path), t.TempDir())
	require.NoError(t, err)

	content, err := os.ReadFile(manifest.PrimaryPath)
	require.NoError(t, err)
	assert.Equal(t, "nested primary", string(content))
}

func TestExtract_MissingPrimary(t *testing.T) {
	path := buildArchive(t, []entry{
		{"libbytes-f6610c9d61c318a7.rlib", "aux"},
	})

	_, err := archive.NewExtractor().Extract(archiveResource(path), t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrMissingPrimaryArtifact))
}

func TestExtract_AmbiguousPrimary(t *testing.T) {
	path := buildArchive(t, []entry{
		{"export.rlib", "first"},
		{"a/export.rlib", "second"},
	})

	_, err := archive.NewExtractor().Extract(archiveResource(path), t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrAmbiguousPrimaryArtifact))
}

func TestExtract_CorruptArchive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.tar.gz")
	// Valid gzip signature followed by garbage.
	require.NoError(t, os.WriteFile(path, []byte{0x1f, 0x8b, 0xff, 0x01, 0x02, 0x03}, 0o644))

	_, err := archive.NewExtractor().Extract(archiveResource(path), t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCorruptArchive))
}

func TestExtract_PassthroughRawArtifact(t *testing.T) {
	path := filepath.Join(t.TempDir(), "libplain.rlib")
	require.NoError(t, os.WriteFile(path, []byte("plain"), 0o644))

	manifest, err := archive.NewExtractor().Extract(domain.FetchedResource{Path: path}, t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, path, manifest.PrimaryPath)
	assert.Empty(t, manifest.Auxiliaries)
}
