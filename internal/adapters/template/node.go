package template

import (
	"context"

	"github.com/courierbuild/courier/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the template resolver Graft node.
const NodeID graft.ID = "adapter.template_resolver"

func init() {
	graft.Register(graft.Node[ports.TemplateResolver]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.TemplateResolver, error) {
			return NewResolver(), nil
		},
	})
}
