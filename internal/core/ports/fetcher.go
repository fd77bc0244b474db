package ports

import (
	"context"

	"github.com/courierbuild/courier/internal/core/domain"
)

// Fetcher materializes a resolved source locator as a local resource.
//
//go:generate go run go.uber.org/mock/mockgen -source=fetcher.go -destination=mocks/mock_fetcher.go -package=mocks
type Fetcher interface {
	// Fetch retrieves the resource behind the locator. Remote bodies are
	// streamed into stagingDir rather than buffered in memory. The returned
	// resource is tagged with its content digest and whether it is a
	// container archive, detected by signature.
	Fetch(ctx context.Context, locator domain.ResolvedLocator, stagingDir string) (domain.FetchedResource, error)
}
