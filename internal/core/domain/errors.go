package domain

import "go.trai.ch/zerr"

var (
	// ErrUnknownVariable is returned when a source template references a
	// substitution variable that is not declared.
	ErrUnknownVariable = zerr.New("unknown substitution variable")

	// ErrMalformedTemplate is returned on unbalanced or invalid placeholder syntax.
	ErrMalformedTemplate = zerr.New("malformed source template")

	// ErrMissingEnvVariable is returned when an environment-backed substitution
	// or a required build context variable is unset.
	ErrMissingEnvVariable = zerr.New("environment variable is not set")

	// ErrUnsupportedScheme is returned when a source locator uses a scheme
	// other than file, http or https.
	ErrUnsupportedScheme = zerr.New("unsupported locator scheme")

	// ErrInvalidLinkStrategy is returned when a package declares an unrecognized
	// placement strategy.
	ErrInvalidLinkStrategy = zerr.New("invalid link strategy, expected 'copy', 'hard' or 'symbolic'")

	// ErrRemoteLinkStrategy is returned when a package combines a remote source
	// with a hard or symbolic link strategy. A fetched resource has no stable
	// backing path to link against.
	ErrRemoteLinkStrategy = zerr.New("link strategy requires a local file source")

	// ErrEmptyPackageSource is returned when a package declares no source locator.
	ErrEmptyPackageSource = zerr.New("package has no source locator")

	// ErrSourceNotFound is returned when a local source path does not exist.
	ErrSourceNotFound = zerr.New("source artifact not found")

	// ErrTransport is returned when a remote fetch fails at the connection level.
	ErrTransport = zerr.New("transport failure")

	// ErrUnexpectedStatus is returned when a remote fetch receives a non-success
	// HTTP status code.
	ErrUnexpectedStatus = zerr.New("unexpected response status")

	// ErrCorruptArchive is returned when a package archive fails to decode.
	ErrCorruptArchive = zerr.New("corrupt package archive")

	// ErrMissingPrimaryArtifact is returned when an archive contains no entry
	// with the canonical export name.
	ErrMissingPrimaryArtifact = zerr.New("archive is missing the primary artifact entry")

	// ErrAmbiguousPrimaryArtifact is returned when an archive contains more than
	// one entry with the canonical export name.
	ErrAmbiguousPrimaryArtifact = zerr.New("archive contains multiple primary artifact entries")

	// ErrInvalidArtifactDir is returned when the dependency artifact directory
	// cannot be derived from the build output directory.
	ErrInvalidArtifactDir = zerr.New("cannot derive dependency artifact directory")

	// ErrDummyArtifactNotFound is returned when no placeholder artifact for a
	// package exists in the artifact directory. This signals that the build
	// orchestrator never compiled the package stand-in, an ordering problem
	// outside courier's control.
	ErrDummyArtifactNotFound = zerr.New("placeholder artifact not found")

	// ErrCrossDeviceLink is returned when a hard link would cross filesystem
	// boundaries.
	ErrCrossDeviceLink = zerr.New("hard link across filesystems")

	// ErrDeliveryFailed is the aggregate failure reported when at least one
	// package could not be delivered.
	ErrDeliveryFailed = zerr.New("package delivery failed")
)
