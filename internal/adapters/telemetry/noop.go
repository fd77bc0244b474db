package telemetry

import (
	"context"

	"github.com/courierbuild/courier/internal/core/ports"
)

// NoOp is a no-op implementation of ports.Telemetry.
type NoOp struct{}

// NewNoOp creates a new NoOp recorder.
func NewNoOp() *NoOp {
	return &NoOp{}
}

// Record returns a vertex that discards everything.
func (n *NoOp) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	return ctx, &NoOpVertex{}
}

// Close does nothing.
func (n *NoOp) Close() error {
	return nil
}

// NoOpVertex is a no-op implementation of ports.Vertex.
type NoOpVertex struct{}

// Write does nothing and returns the length of p.
func (v *NoOpVertex) Write(p []byte) (n int, err error) {
	return len(p), nil
}

// Done does nothing.
func (v *NoOpVertex) Done(_ error) {}
