// Package app implements the application layer for pydep.
package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.trai.ch/pydep/internal/core/domain"
	"go.trai.ch/pydep/internal/core/ports"
	"go.trai.ch/pydep/internal/engine/provisioner"
	"go.trai.ch/zerr"
)

// DefaultConfigPath is the config file read when no flag overrides it.
const DefaultConfigPath = "pydep.yaml"

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	provisioner  *provisioner.Provisioner
	store        ports.ReportStore
	logger       ports.Logger

	configPath string
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	prov *provisioner.Provisioner,
	store ports.ReportStore,
	logger ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		provisioner:  prov,
		store:        store,
		logger:       logger,
		configPath:   DefaultConfigPath,
	}
}

// SetConfigPath overrides the configuration file path.
func (a *App) SetConfigPath(path string) {
	if path != "" {
		a.configPath = path
	}
}

// Ensure runs the full provisioning sequence.
func (a *App) Ensure(ctx context.Context) error {
	cfg, err := a.configLoader.Load(a.configPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}
	return a.provisioner.Ensure(ctx, cfg)
}

// Check probes the configured modules without installing anything.
// Probing needs no privilege, so the gate is skipped.
func (a *App) Check(ctx context.Context) error {
	cfg, err := a.configLoader.Load(a.configPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	results, err := a.provisioner.Probe(ctx, cfg)
	if err != nil {
		return err
	}

	missing := 0
	for _, r := range results {
		if r.Present {
			a.logger.Info(fmt.Sprintf("module %s: present", r.Module))
		} else {
			a.logger.Warn(fmt.Sprintf("module %s: missing", r.Module))
			missing++
		}
	}
	if missing > 0 {
		return zerr.With(domain.ErrModulesMissing, "missing", missing)
	}
	return nil
}

// Status writes the recorded provisioning reports to w.
func (a *App) Status(w io.Writer) error {
	reports := a.store.List()
	if len(reports) == 0 {
		_, err := fmt.Fprintln(w, "no provisioning reports recorded")
		return err
	}

	for _, r := range reports {
		_, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			r.Module, r.Action, r.Interpreter, r.Timestamp.Format(time.RFC3339))
		if err != nil {
			return err
		}
	}
	return nil
}
