// Package archive unpacks gzip-compressed tar archives of pre-built artifacts.
package archive

import (
	"archive/tar"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/courierbuild/courier/internal/core/domain"
	"github.com/courierbuild/courier/internal/core/ports"
	"github.com/klauspost/compress/gzip"
	"go.trai.ch/zerr"
)

var _ ports.Extractor = (*Extractor)(nil)

// DefaultPrimaryEntry is the canonical name of the primary artifact entry
// inside a package archive. Every other entry is an auxiliary pre-built
// dependency whose filename is preserved exactly.
const DefaultPrimaryEntry = "export.rlib"

// Extractor implements ports.Extractor for gzip-compressed tar archives.
type Extractor struct {
	// PrimaryEntry overrides the canonical primary entry name.
	PrimaryEntry string
}

// NewExtractor creates an Extractor using the default primary entry name.
func NewExtractor() *Extractor {
	return &Extractor{PrimaryEntry: DefaultPrimaryEntry}
}

// Extract unpacks an archive resource into stagingDir and splits its entries
// into the primary artifact and the auxiliaries. Non-archive resources pass
// through as the sole primary artifact.
func (e *Extractor) Extract(resource domain.FetchedResource, stagingDir string) (domain.ArchiveManifest, error) {
	if !resource.Archive {
		return domain.ArchiveManifest{PrimaryPath: resource.Path}, nil
	}

	file, err := os.Open(resource.Path) //nolint:gosec // Path is produced by the fetcher
	if err != nil {
		return domain.ArchiveManifest{}, zerr.With(zerr.Wrap(err, "failed to open archive"), "path", resource.Path)
	}
	defer file.Close() //nolint:errcheck // Best effort close in defer

	zr, err := gzip.NewReader(file)
	if err != nil {
		return domain.ArchiveManifest{}, zerr.With(zerr.Wrap(domain.ErrCorruptArchive, err.Error()), "path", resource.Path)
	}
	defer zr.Close() //nolint:errcheck // Best effort close in defer

	manifest := domain.ArchiveManifest{}
	tr := tar.NewReader(zr)
	for {
		header, err := tr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return domain.ArchiveManifest{}, zerr.With(zerr.Wrap(domain.ErrCorruptArchive, err.Error()), "path", resource.Path)
		}

		switch header.Typeflag {
		case tar.TypeReg, tar.TypeRegA: //nolint:staticcheck // Old-style builders still emit TypeRegA
		default:
			continue
		}

		// Entry paths are flattened: only the file name matters, and the
		// compiler's fingerprinted names must survive unchanged.
		name := filepath.Base(filepath.FromSlash(header.Name))
		if name == "." || name == string(filepath.Separator) || strings.Contains(name, "..") {
			err := zerr.With(domain.ErrCorruptArchive, "entry", header.Name)
			return domain.ArchiveManifest{}, zerr.With(err, "reason", "entry has no usable file name")
		}

		dest := filepath.Join(stagingDir, name)
		if err := writeEntry(dest, tr); err != nil {
			return domain.ArchiveManifest{}, zerr.With(err, "entry", name)
		}

		if name == e.PrimaryEntry {
			if manifest.PrimaryPath != "" {
				return domain.ArchiveManifest{}, zerr.With(domain.ErrAmbiguousPrimaryArtifact, "entry", name)
			}
			manifest.PrimaryPath = dest
			continue
		}
		manifest.Auxiliaries = append(manifest.Auxiliaries, domain.AuxiliaryArtifact{Name: name, Path: dest})
	}

	if manifest.PrimaryPath == "" {
		return domain.ArchiveManifest{}, zerr.With(domain.ErrMissingPrimaryArtifact, "expected_entry", e.PrimaryEntry)
	}

	return manifest, nil
}

func writeEntry(dest string, r io.Reader) error {
	out, err := os.Create(dest) //nolint:gosec // dest is confined to the staging directory
	if err != nil {
		return zerr.Wrap(err, "failed to create staged entry")
	}

	_, copyErr := io.Copy(out, r) //nolint:gosec // Archive size is bounded by the fetched resource
	closeErr := out.Close()
	if copyErr != nil {
		return zerr.Wrap(domain.ErrCorruptArchive, copyErr.Error())
	}
	if closeErr != nil {
		return zerr.Wrap(closeErr, "failed to finalize staged entry")
	}
	return nil
}
