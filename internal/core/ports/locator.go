package ports

import "github.com/courierbuild/courier/internal/core/domain"

// OutputLocator determines where artifacts land inside the orchestrator's
// dependency artifact directory.
//
//go:generate go run go.uber.org/mock/mockgen -source=locator.go -destination=mocks/mock_locator.go -package=mocks
type OutputLocator interface {
	// Locate finds the placeholder artifact the orchestrator compiled for the
	// package and returns its path as the injection target. The placeholder's
	// fingerprinted filename is discovered by scanning, never computed.
	Locate(packageName string, env domain.BuildEnv) (domain.InjectionTarget, error)

	// AuxiliaryTarget returns the target for a companion artifact under its
	// preserved filename. Auxiliaries have no placeholder precondition.
	AuxiliaryTarget(filename string, env domain.BuildEnv) (domain.InjectionTarget, error)
}
