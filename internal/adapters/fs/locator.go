// Package fs implements artifact location and injection on the local filesystem.
package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/courierbuild/courier/internal/core/domain"
	"github.com/courierbuild/courier/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.OutputLocator = (*Locator)(nil)

const (
	artifactPrefix = "lib"
	artifactSuffix = ".rlib"
	depsDirName    = "deps"
)

// Locator implements ports.OutputLocator by scanning the orchestrator's
// dependency artifact directory for the placeholder the dummy compilation
// produced. The compiler appends a content fingerprint to the filename, so
// the exact name can only be discovered, never computed.
type Locator struct {
	logger ports.Logger
}

// NewLocator creates a new Locator.
func NewLocator(logger ports.Logger) *Locator {
	return &Locator{logger: logger}
}

// DepsDir derives the shared dependency artifact directory from the build
// output directory. The output directory sits three levels below the
// per-profile root that also holds "deps".
func DepsDir(outDir string) (string, error) {
	dir := filepath.Clean(outDir)
	for i := 0; i < 3; i++ {
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", zerr.With(domain.ErrInvalidArtifactDir, "out_dir", outDir)
		}
		dir = parent
	}
	return filepath.Join(dir, depsDirName), nil
}

// Locate finds the placeholder artifact for the package.
func (l *Locator) Locate(packageName string, env domain.BuildEnv) (domain.InjectionTarget, error) {
	depsDir, err := DepsDir(env.OutDir)
	if err != nil {
		return domain.InjectionTarget{}, err
	}

	entries, err := os.ReadDir(depsDir)
	if err != nil {
		return domain.InjectionTarget{}, zerr.With(zerr.Wrap(err, "failed to scan artifact directory"), "dir", depsDir)
	}

	// The compiler normalizes dashes in package names to underscores.
	stem := strings.ReplaceAll(packageName, "-", "_")

	var (
		chosen      string
		chosenMtime time.Time
	)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !matchesStem(name, stem) {
			continue
		}

		mtime := time.Time{}
		if info, err := entry.Info(); err == nil {
			mtime = info.ModTime()
		}

		if chosen == "" {
			chosen, chosenMtime = name, mtime
			continue
		}
		// Duplicate placeholders happen when stale fingerprints linger from
		// earlier builds. The newest one is what the linker will consume.
		if mtime.After(chosenMtime) {
			l.logger.Warn(fmt.Sprintf("duplicate placeholder for %s: %q replaced with %q", packageName, chosen, name))
			chosen, chosenMtime = name, mtime
		} else {
			l.logger.Warn(fmt.Sprintf("duplicate placeholder for %s: %q ignored", packageName, name))
		}
	}

	if chosen == "" {
		err := zerr.With(domain.ErrDummyArtifactNotFound, "package", packageName)
		return domain.InjectionTarget{}, zerr.With(err, "dir", depsDir)
	}

	return domain.InjectionTarget{Dir: depsDir, Filename: chosen}, nil
}

// AuxiliaryTarget returns the target for an archive companion under its
// preserved filename. Auxiliaries carry their own fingerprints and have no
// placeholder to find.
func (l *Locator) AuxiliaryTarget(filename string, env domain.BuildEnv) (domain.InjectionTarget, error) {
	depsDir, err := DepsDir(env.OutDir)
	if err != nil {
		return domain.InjectionTarget{}, err
	}
	return domain.InjectionTarget{Dir: depsDir, Filename: filename}, nil
}

// matchesStem reports whether a directory entry is a placeholder for the
// given package stem: lib<stem>-<fingerprint>.rlib.
func matchesStem(filename, stem string) bool {
	name, ok := strings.CutPrefix(filename, artifactPrefix)
	if !ok {
		return false
	}
	name, ok = strings.CutSuffix(name, artifactSuffix)
	if !ok {
		return false
	}
	candidate, _, ok := strings.Cut(name, "-")
	return ok && candidate == stem
}
