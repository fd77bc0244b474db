package fs_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/courierbuild/courier/internal/adapters/fs"
	"github.com/courierbuild/courier/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSource(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "libpayload.rlib")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestInject_Copy(t *testing.T) {
	source := writeSource(t, "prebuilt payload")
	target := domain.InjectionTarget{Dir: t.TempDir(), Filename: "libpayload-cafe.rlib"}

	require.NoError(t, fs.NewInjector().Inject(source, target, domain.LinkCopy))

	got, err := os.ReadFile(target.Path())
	require.NoError(t, err)
	assert.Equal(t, "prebuilt payload", string(got))

	// Copies are independent of the source.
	require.NoError(t, os.Remove(source))
	_, err = os.Stat(target.Path())
	assert.NoError(t, err)
}

func TestInject_CopyReplacesPlaceholder(t *testing.T) {
	source := writeSource(t, "real artifact")
	dir := t.TempDir()
	target := domain.InjectionTarget{Dir: dir, Filename: "libpayload-cafe.rlib"}
	require.NoError(t, os.WriteFile(target.Path(), []byte("dummy"), 0o644))

	require.NoError(t, fs.NewInjector().Inject(source, target, domain.LinkCopy))

	got, err := os.ReadFile(target.Path())
	require.NoError(t, err)
	assert.Equal(t, "real artifact", string(got))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not survive the rename")
}

func TestInject_Hard(t *testing.T) {
	source := writeSource(t, "shared inode")
	target := domain.InjectionTarget{Dir: t.TempDir(), Filename: "libpayload-cafe.rlib"}
	require.NoError(t, os.WriteFile(target.Path(), []byte("dummy"), 0o644))

	require.NoError(t, fs.NewInjector().Inject(source, target, domain.LinkHard))

	sourceInfo, err := os.Stat(source)
	require.NoError(t, err)
	targetInfo, err := os.Stat(target.Path())
	require.NoError(t, err)
	assert.True(t, os.SameFile(sourceInfo, targetInfo))
}

func TestInject_Symbolic(t *testing.T) {
	source := writeSource(t, "linked payload")
	target := domain.InjectionTarget{Dir: t.TempDir(), Filename: "libpayload-cafe.rlib"}
	require.NoError(t, os.WriteFile(target.Path(), []byte("dummy"), 0o644))

	require.NoError(t, fs.NewInjector().Inject(source, target, domain.LinkSymbolic))

	resolved, err := os.Readlink(target.Path())
	require.NoError(t, err)
	assert.Equal(t, source, resolved)

	got, err := os.ReadFile(target.Path())
	require.NoError(t, err)
	assert.Equal(t, "linked payload", string(got))
}

func TestInject_MissingSource(t *testing.T) {
	target := domain.InjectionTarget{Dir: t.TempDir(), Filename: "libpayload-cafe.rlib"}

	err := fs.NewInjector().Inject(filepath.Join(t.TempDir(), "absent.rlib"), target, domain.LinkCopy)
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestInject_UnknownStrategy(t *testing.T) {
	source := writeSource(t, "payload")
	target := domain.InjectionTarget{Dir: t.TempDir(), Filename: "libpayload-cafe.rlib"}

	err := fs.NewInjector().Inject(source, target, domain.LinkStrategy("clone"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidLinkStrategy))
}
