package ports

import (
	"context"
	"io"
)

// Telemetry records provisioning steps on a progress tape.
type Telemetry interface {
	// Record starts a new vertex for the named step.
	Record(ctx context.Context, name string) Vertex

	// Close flushes and closes the recording session.
	Close() error
}

// Vertex represents one recorded step.
type Vertex interface {
	// Stdout returns a writer capturing the step's output.
	Stdout() io.Writer

	// Done marks the step finished; a non-nil error is recorded on it.
	Done(err error)
}
