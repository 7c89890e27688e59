// Package telemetry provides telemetry implementations that are not tied
// to a specific backend.
package telemetry

import (
	"context"
	"io"

	"go.trai.ch/pydep/internal/core/ports"
)

// NoOp is a no-op implementation of ports.Telemetry.
type NoOp struct{}

// NewNoOp creates a new NoOp telemetry.
func NewNoOp() *NoOp {
	return &NoOp{}
}

// Record returns a no-op vertex.
func (t *NoOp) Record(_ context.Context, _ string) ports.Vertex {
	return &NoOpVertex{}
}

// Close does nothing.
func (t *NoOp) Close() error { return nil }

// NoOpVertex is a no-op implementation of ports.Vertex.
type NoOpVertex struct{}

// Stdout returns a writer that discards everything.
func (v *NoOpVertex) Stdout() io.Writer { return io.Discard }

// Done does nothing.
func (v *NoOpVertex) Done(_ error) {}
