package fs

import (
	"context"

	"github.com/courierbuild/courier/internal/adapters/logger"
	"github.com/courierbuild/courier/internal/core/ports"
	"github.com/grindlemire/graft"
)

const (
	// LocatorNodeID is the unique identifier for the output locator Graft node.
	LocatorNodeID graft.ID = "adapter.output_locator"
	// InjectorNodeID is the unique identifier for the injector Graft node.
	InjectorNodeID graft.ID = "adapter.injector"
)

func init() {
	graft.Register(graft.Node[ports.OutputLocator]{
		ID:        LocatorNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.OutputLocator, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLocator(log), nil
		},
	})

	graft.Register(graft.Node[ports.Injector]{
		ID:        InjectorNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Injector, error) {
			return NewInjector(), nil
		},
	})
}
