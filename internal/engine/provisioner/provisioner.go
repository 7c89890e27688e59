// Package provisioner implements the linear provisioning sequence.
package provisioner

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"go.trai.ch/pydep/internal/core/domain"
	"go.trai.ch/pydep/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

// ProbeResult pairs a module with its probe outcome.
type ProbeResult struct {
	Module  domain.Module
	Present bool
}

// Provisioner runs the fail-fast sequence: privilege gate, presence probe,
// package manager bootstrap, module installation. Every step is terminal
// on failure; there are no retries and no compensating actions.
type Provisioner struct {
	gate      ports.PrivilegeGate
	prober    ports.Prober
	pm        ports.PackageManager
	store     ports.ReportStore
	telemetry ports.Telemetry
	logger    ports.Logger
}

// New creates a new Provisioner.
func New(
	gate ports.PrivilegeGate,
	prober ports.Prober,
	pm ports.PackageManager,
	store ports.ReportStore,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *Provisioner {
	return &Provisioner{
		gate:      gate,
		prober:    prober,
		pm:        pm,
		store:     store,
		telemetry: telemetry,
		logger:    logger,
	}
}

// Ensure makes every configured module importable, installing missing ones.
func (p *Provisioner) Ensure(ctx context.Context, cfg *domain.Config) error {
	if err := p.gate.Check(); err != nil {
		return err
	}

	results, err := p.Probe(ctx, cfg)
	if err != nil {
		return err
	}

	missing := missingOf(results)
	if len(missing) == 0 {
		p.logger.Info("all modules already present, nothing to do")
		p.record(cfg, results, nil)
		return nil
	}

	if err := p.ensurePip(ctx, cfg.Pip); err != nil {
		return err
	}

	installed := make(map[domain.Module]bool, len(missing))
	for _, m := range missing {
		p.logger.Info(fmt.Sprintf("installing module %s", m))
		v := p.telemetry.Record(ctx, "install "+m.String())
		err := p.pm.Install(ctx, cfg.Pip, m)
		v.Done(err)
		if err != nil {
			// The install exit status propagates unmodified.
			return err
		}
		installed[m] = true
	}

	p.record(cfg, results, installed)
	return nil
}

// Probe checks every configured module concurrently. Probing is read-only,
// so the fan-out cannot reorder side effects; results come back in config
// order regardless of completion order.
func (p *Provisioner) Probe(ctx context.Context, cfg *domain.Config) ([]ProbeResult, error) {
	results := make([]ProbeResult, len(cfg.Modules))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, m := range cfg.Modules {
		g.Go(func() error {
			v := p.telemetry.Record(ctx, "probe "+m.String())
			present, err := p.prober.Probe(ctx, cfg.Python, m)
			v.Done(err)
			if err != nil {
				return err
			}
			results[i] = ProbeResult{Module: m, Present: present}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// ensurePip makes sure the package manager resolves on PATH, bootstrapping
// it via the legacy installer when absent. Only the re-check after the
// bootstrap attempt decides; a failed installer run with pip appearing
// anyway still counts as bootstrapped.
func (p *Provisioner) ensurePip(ctx context.Context, pip domain.PipConfig) error {
	if path, ok := p.pm.Available(pip); ok {
		p.logger.Info("pip found at " + path)
		return nil
	}

	p.logger.Warn("pip not found, attempting bootstrap")
	v := p.telemetry.Record(ctx, "bootstrap pip")
	err := p.pm.Bootstrap(ctx, pip)
	v.Done(err)
	if err != nil {
		p.logger.Error(err)
	}

	if _, ok := p.pm.Available(pip); !ok {
		return domain.ErrPipUnavailable
	}
	return nil
}

// record persists one report per module. Store failures do not fail the
// run; the modules are installed either way.
func (p *Provisioner) record(cfg *domain.Config, results []ProbeResult, installed map[domain.Module]bool) {
	now := time.Now().UTC()
	for _, r := range results {
		action := domain.ActionPresent
		if installed[r.Module] {
			action = domain.ActionInstalled
		}
		report := domain.Report{
			Module:      r.Module.String(),
			Action:      action,
			Interpreter: cfg.Python,
			Timestamp:   now,
		}
		if err := p.store.Put(report); err != nil {
			p.logger.Warn("failed to record report: " + err.Error())
		}
	}
}

func missingOf(results []ProbeResult) []domain.Module {
	var missing []domain.Module
	for _, r := range results {
		if !r.Present {
			missing = append(missing, r.Module)
		}
	}
	return missing
}
