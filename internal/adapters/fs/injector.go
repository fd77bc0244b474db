package fs

import (
	"errors"
	"io"
	"os"
	"syscall"

	"github.com/courierbuild/courier/internal/core/domain"
	"github.com/courierbuild/courier/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Injector = (*Injector)(nil)

// Injector implements ports.Injector. Copies are staged as a temporary
// sibling and renamed over the target, so a crash mid-write never leaves a
// truncated file under the name the linker will read.
type Injector struct{}

// NewInjector creates a new Injector.
func NewInjector() *Injector {
	return &Injector{}
}

// Inject places sourcePath at the target using the given strategy.
func (i *Injector) Inject(sourcePath string, target domain.InjectionTarget, strategy domain.LinkStrategy) error {
	targetPath := target.Path()

	switch strategy {
	case domain.LinkCopy:
		if err := copyAtomic(sourcePath, target); err != nil {
			return zerr.With(err, "target", targetPath)
		}
		return nil

	case domain.LinkHard:
		if err := removeExisting(targetPath); err != nil {
			return err
		}
		if err := os.Link(sourcePath, targetPath); err != nil {
			if errors.Is(err, syscall.EXDEV) {
				err := zerr.With(domain.ErrCrossDeviceLink, "source", sourcePath)
				return zerr.With(err, "target", targetPath)
			}
			return zerr.With(zerr.Wrap(err, "failed to hard link artifact"), "target", targetPath)
		}
		return nil

	case domain.LinkSymbolic:
		if err := removeExisting(targetPath); err != nil {
			return err
		}
		if err := os.Symlink(sourcePath, targetPath); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to symlink artifact"), "target", targetPath)
		}
		return nil

	default:
		return zerr.With(domain.ErrInvalidLinkStrategy, "value", string(strategy))
	}
}

func removeExisting(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, "failed to remove existing artifact"), "target", path)
	}
	return nil
}

func copyAtomic(sourcePath string, target domain.InjectionTarget) error {
	source, err := os.Open(sourcePath) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return zerr.Wrap(err, "failed to open artifact")
	}
	defer source.Close() //nolint:errcheck // Best effort close in defer

	tmp, err := os.CreateTemp(target.Dir, ".courier-tmp-*")
	if err != nil {
		return zerr.Wrap(err, "failed to create temporary artifact")
	}

	if err := writeAndRename(source, tmp, target.Path()); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	return nil
}

func writeAndRename(source io.Reader, tmp *os.File, targetPath string) error {
	if _, err := io.Copy(tmp, source); err != nil {
		_ = tmp.Close()
		return zerr.Wrap(err, "failed to write artifact")
	}
	if err := tmp.Chmod(0o644); err != nil {
		_ = tmp.Close()
		return zerr.Wrap(err, "failed to set artifact permissions")
	}
	// Flush before rename: the rename must never expose partially
	// persisted content under the final name.
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return zerr.Wrap(err, "failed to sync artifact")
	}
	if err := tmp.Close(); err != nil {
		return zerr.Wrap(err, "failed to finalize artifact")
	}
	if err := os.Rename(tmp.Name(), targetPath); err != nil {
		return zerr.Wrap(err, "failed to move artifact into place")
	}
	return nil
}
