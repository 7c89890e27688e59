package ports

import (
	"context"

	"go.trai.ch/pydep/internal/core/domain"
)

// PackageManager handles presence checks, bootstrap and installs for pip.
//
//go:generate mockgen -source=package_manager.go -destination=mocks/mock_package_manager.go -package=mocks
type PackageManager interface {
	// Available reports whether the package manager executable resolves
	// on the search path. This is a pure existence check, not a health
	// check. Returns the resolved path when found.
	Available(pip domain.PipConfig) (string, bool)

	// Bootstrap installs the package manager itself via the configured
	// legacy installer.
	Bootstrap(ctx context.Context, pip domain.PipConfig) error

	// Install installs the module. A nonzero exit from the package
	// manager surfaces as a *domain.ExitError so callers can propagate
	// the status unmodified.
	Install(ctx context.Context, pip domain.PipConfig, module domain.Module) error
}
