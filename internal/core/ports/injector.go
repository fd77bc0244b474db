package ports

import "github.com/courierbuild/courier/internal/core/domain"

// Injector places an artifact at its target path, replacing whatever the
// orchestrator compiled there.
//
//go:generate go run go.uber.org/mock/mockgen -source=injector.go -destination=mocks/mock_injector.go -package=mocks
type Injector interface {
	// Inject places sourcePath at the target using the given strategy.
	// Injection is idempotent and atomic at single-file granularity: a crash
	// mid-write never leaves a truncated artifact at the target name.
	Inject(sourcePath string, target domain.InjectionTarget, strategy domain.LinkStrategy) error
}
