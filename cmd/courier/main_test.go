package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courierbuild/courier/internal/core/domain"
)

func setupProject(t *testing.T) (root, placeholder string) {
	t.Helper()
	root = t.TempDir()
	outDir := filepath.Join(root, "target", "debug", "build", "script", "out")
	depsDir := filepath.Join(root, "target", "debug", "deps")
	require.NoError(t, os.MkdirAll(outDir, 0o750))
	require.NoError(t, os.MkdirAll(depsDir, 0o750))

	placeholder = filepath.Join(depsDir, "libsecretlib-0123abcd.rlib")
	require.NoError(t, os.WriteFile(placeholder, []byte("placeholder"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "prebuilt.rlib"), []byte("prebuilt"), 0o644))

	t.Setenv(domain.EnvTarget, "x86_64-unknown-linux-gnu")
	t.Setenv(domain.EnvProfile, "debug")
	t.Setenv(domain.EnvOutDir, outDir)
	t.Setenv(domain.EnvProjectRoot, root)
	return root, placeholder
}

func TestRun_Deliver(t *testing.T) {
	originalArgs := os.Args
	defer func() { os.Args = originalArgs }()

	root, placeholder := setupProject(t)

	configPath := filepath.Join(root, "courier.yaml")
	configContent := `packages:
  secretlib:
    source: prebuilt.rlib
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0o600))

	os.Args = []string{"courier", "deliver", "-c", configPath}
	assert.Equal(t, 0, run())

	got, err := os.ReadFile(placeholder)
	require.NoError(t, err)
	assert.Equal(t, "prebuilt", string(got))
}

func TestRun_MissingManifest(t *testing.T) {
	originalArgs := os.Args
	defer func() { os.Args = originalArgs }()

	root, _ := setupProject(t)

	os.Args = []string{"courier", "deliver", "-c", filepath.Join(root, "absent.yaml")}
	assert.Equal(t, 1, run())
}

func TestRun_FailedDelivery(t *testing.T) {
	originalArgs := os.Args
	defer func() { os.Args = originalArgs }()

	root, placeholder := setupProject(t)

	configPath := filepath.Join(root, "courier.yaml")
	configContent := `packages:
  secretlib:
    source: missing.rlib
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0o600))

	os.Args = []string{"courier", "deliver", "-c", configPath}
	assert.Equal(t, 1, run())

	// The placeholder stays untouched when the source is missing.
	got, err := os.ReadFile(placeholder)
	require.NoError(t, err)
	assert.Equal(t, "placeholder", string(got))
}
