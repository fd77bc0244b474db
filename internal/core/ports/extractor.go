package ports

import "github.com/courierbuild/courier/internal/core/domain"

// Extractor recovers the injectable artifacts from a fetched resource.
//
//go:generate go run go.uber.org/mock/mockgen -source=extractor.go -destination=mocks/mock_extractor.go -package=mocks
type Extractor interface {
	// Extract unpacks a container archive into stagingDir and identifies the
	// primary artifact plus any auxiliary pre-built dependencies. A
	// non-archive resource passes through as the sole primary artifact.
	Extract(resource domain.FetchedResource, stagingDir string) (domain.ArchiveManifest, error)
}
