// Package pip implements the package manager adapter.
package pip

import (
	"context"
	"os/exec"

	"go.trai.ch/pydep/internal/core/domain"
	"go.trai.ch/pydep/internal/core/ports"
	"go.trai.ch/zerr"
)

// Manager implements ports.PackageManager using the pip CLI.
type Manager struct {
	executor ports.Executor
	logger   ports.Logger
	lookPath func(string) (string, error)
}

// NewManager creates a new Manager.
func NewManager(executor ports.Executor, logger ports.Logger) *Manager {
	return &Manager{
		executor: executor,
		logger:   logger,
		lookPath: exec.LookPath,
	}
}

// Available reports whether the pip executable resolves on PATH.
func (m *Manager) Available(pip domain.PipConfig) (string, bool) {
	path, err := m.lookPath(pip.Binary)
	if err != nil {
		return "", false
	}
	return path, true
}

// Bootstrap installs pip itself via the configured legacy installer.
func (m *Manager) Bootstrap(ctx context.Context, pip domain.PipConfig) error {
	if len(pip.Bootstrap) == 0 {
		return zerr.New("no bootstrap command configured")
	}

	m.logger.Info("installing " + pip.Binary + " via " + pip.Bootstrap[0])
	if err := m.executor.Execute(ctx, &domain.Command{Argv: pip.Bootstrap}); err != nil {
		return zerr.With(zerr.Wrap(err, "pip bootstrap failed"), "installer", pip.Bootstrap[0])
	}
	return nil
}

// Install installs the module with pip. The error chain of a failed
// install carries the pip exit code unmodified.
func (m *Manager) Install(ctx context.Context, pip domain.PipConfig, module domain.Module) error {
	argv := make([]string, 0, 2+len(pip.Args)+1)
	argv = append(argv, pip.Binary, "install")
	argv = append(argv, pip.Args...)
	argv = append(argv, module.String())

	return m.executor.Execute(ctx, &domain.Command{Argv: argv})
}
