package ports

import "github.com/courierbuild/courier/internal/core/domain"

// ManifestLoader parses the delivery manifest into its typed configuration.
// Misconfiguration (unsupported scheme, invalid or remote-incompatible link
// strategy) is rejected here, before any network activity begins.
//
//go:generate go run go.uber.org/mock/mockgen -source=manifest_loader.go -destination=mocks/mock_manifest_loader.go -package=mocks
type ManifestLoader interface {
	// Load reads and validates the manifest at the given path.
	Load(path string) (*domain.Manifest, error)
}
