package domain

import "path/filepath"

// FetchedResource is a fully materialized local copy of a package source.
// Remote resources are staged to disk before they reach this type, so Path
// always points at a readable file.
type FetchedResource struct {
	// Path is the local path of the materialized resource.
	Path string

	// Digest is the xxhash of the resource content, rendered as 16 hex digits.
	Digest string

	// Archive marks the resource as a recognized container archive, detected
	// from its content signature rather than its name or scheme.
	Archive bool

	// Remote marks the resource as fetched over the network. Remote resources
	// have no stable backing path outside the staging directory.
	Remote bool
}

// AuxiliaryArtifact is a pre-built companion artifact recovered from an
// archive. Its name is preserved exactly: fingerprinted filenames are how the
// compiler disambiguates dependency versions.
type AuxiliaryArtifact struct {
	Name string
	Path string
}

// ArchiveManifest is the result of extracting (or passing through) a fetched
// resource: one primary artifact plus zero or more auxiliaries in archive
// order.
type ArchiveManifest struct {
	// PrimaryPath is the local path of the artifact that replaces the
	// package's placeholder.
	PrimaryPath string

	// Auxiliaries are placed alongside the primary under their own names.
	Auxiliaries []AuxiliaryArtifact
}

// InjectionTarget is the output location for one artifact inside the
// orchestrator's dependency artifact directory. It is computed fresh each run
// and never cached.
type InjectionTarget struct {
	Dir      string
	Filename string
}

// Path returns the absolute target path.
func (t InjectionTarget) Path() string {
	return filepath.Join(t.Dir, t.Filename)
}
