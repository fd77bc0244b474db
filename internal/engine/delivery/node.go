package delivery

import (
	"context"

	"github.com/courierbuild/courier/internal/adapters/archive"
	"github.com/courierbuild/courier/internal/adapters/fetch"
	"github.com/courierbuild/courier/internal/adapters/fs"
	"github.com/courierbuild/courier/internal/adapters/logger"
	"github.com/courierbuild/courier/internal/adapters/telemetry"
	"github.com/courierbuild/courier/internal/adapters/template"
	"github.com/courierbuild/courier/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the deliverer Graft node.
const NodeID graft.ID = "engine.deliverer"

func init() {
	graft.Register(graft.Node[*Deliverer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			template.NodeID,
			fetch.NodeID,
			archive.NodeID,
			fs.LocatorNodeID,
			fs.InjectorNodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*Deliverer, error) {
			resolver, err := graft.Dep[ports.TemplateResolver](ctx)
			if err != nil {
				return nil, err
			}
			fetcher, err := graft.Dep[ports.Fetcher](ctx)
			if err != nil {
				return nil, err
			}
			extractor, err := graft.Dep[ports.Extractor](ctx)
			if err != nil {
				return nil, err
			}
			locator, err := graft.Dep[ports.OutputLocator](ctx)
			if err != nil {
				return nil, err
			}
			injector, err := graft.Dep[ports.Injector](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}
			return NewDeliverer(resolver, fetcher, extractor, locator, injector, log, tel), nil
		},
	})
}
