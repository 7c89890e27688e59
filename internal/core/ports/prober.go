package ports

import (
	"context"

	"go.trai.ch/pydep/internal/core/domain"
)

// Prober checks whether a module is importable by the given interpreter.
//
//go:generate mockgen -source=prober.go -destination=mocks/mock_prober.go -package=mocks
type Prober interface {
	// Probe returns true when the module imports cleanly. Any import
	// failure counts as absent; an error is returned only when the
	// interpreter itself could not be invoked.
	Probe(ctx context.Context, interpreter string, module domain.Module) (bool, error)
}
