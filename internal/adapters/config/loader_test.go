package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/courierbuild/courier/internal/adapters/config"
	"github.com/courierbuild/courier/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "courier.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write manifest: %v", err)
	}
	return path
}

func TestLoad_FullManifest(t *testing.T) {
	path := writeManifest(t, `
substitutions:
  channel: beta
  token:
    env: COURIER_TOKEN
packages:
  secretlib:
    source: "https://dl.example.com/{{target}}/{{profile}}/secretlib.tar.gz"
    version: "1.2.0"
  locallib:
    source: "lib/liblocal.rlib"
    link: hard
`)

	manifest, err := config.NewLoader().Load(path)
	require.NoError(t, err)

	require.Len(t, manifest.Packages, 2)
	// Packages are sorted by name.
	assert.Equal(t, "locallib", manifest.Packages[0].Name)
	assert.Equal(t, domain.LinkHard, manifest.Packages[0].Link)
	assert.Equal(t, "secretlib", manifest.Packages[1].Name)
	assert.Equal(t, "1.2.0", manifest.Packages[1].Version)
	assert.Equal(t, domain.LinkCopy, manifest.Packages[1].Link, "link defaults to copy")

	require.Len(t, manifest.Substitutions, 2)
	assert.Equal(t, domain.Substitution{Value: "beta"}, manifest.Substitutions["channel"])
	assert.Equal(t, domain.Substitution{Value: "COURIER_TOKEN", Env: true}, manifest.Substitutions["token"])
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.NewLoader().Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoad_UnsupportedScheme(t *testing.T) {
	path := writeManifest(t, `
packages:
  badlib:
    source: "ftp://example.com/lib.tar.gz"
`)

	_, err := config.NewLoader().Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnsupportedScheme))
}

func TestLoad_RemoteLinkRejected(t *testing.T) {
	// A remote source combined with a link strategy must fail during load,
	// long before any network call could happen.
	path := writeManifest(t, `
packages:
  remotelib:
    source: "https://example.com/lib.tar.gz"
    link: hard
`)

	_, err := config.NewLoader().Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrRemoteLinkStrategy))
}

func TestLoad_InvalidLinkStrategy(t *testing.T) {
	path := writeManifest(t, `
packages:
  lib:
    source: "lib/a.rlib"
    link: reflink
`)

	_, err := config.NewLoader().Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidLinkStrategy))
}

func TestLoad_EmptySource(t *testing.T) {
	path := writeManifest(t, `
packages:
  lib: {}
`)

	_, err := config.NewLoader().Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrEmptyPackageSource))
}

func TestLoad_InvalidSubstitutionMapping(t *testing.T) {
	path := writeManifest(t, `
substitutions:
  broken:
    value: something
packages:
  lib:
    source: "lib/a.rlib"
`)

	_, err := config.NewLoader().Load(path)
	require.Error(t, err)
}
