// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/pydep/internal/core/domain"
)

// Executor defines the interface for running subprocesses.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs the command and streams its output to the logger.
	// A nonzero exit surfaces as a *domain.ExitError in the chain.
	Execute(ctx context.Context, cmd *domain.Command) error

	// Capture runs the command and returns its combined output, for
	// probes that inspect the result instead of streaming it.
	Capture(ctx context.Context, cmd *domain.Command) (string, error)
}
