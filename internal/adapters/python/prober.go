// Package python implements the import presence probe.
package python

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.trai.ch/pydep/internal/core/domain"
	"go.trai.ch/pydep/internal/core/ports"
	"go.trai.ch/zerr"
)

// Prober implements ports.Prober via a nested interpreter invocation.
type Prober struct {
	executor ports.Executor
	logger   ports.Logger
}

// NewProber creates a new Prober.
func NewProber(executor ports.Executor, logger ports.Logger) *Prober {
	return &Prober{
		executor: executor,
		logger:   logger,
	}
}

// Probe attempts to import the module with the given interpreter.
// Any import failure counts as absent; no distinction is made between a
// missing module and one that is present but broken. The interpreter's
// output is logged so an operator can tell the two apart.
func (p *Prober) Probe(ctx context.Context, interpreter string, module domain.Module) (bool, error) {
	cmd := &domain.Command{
		Argv: []string{interpreter, "-c", fmt.Sprintf("import %s", module)},
	}

	out, err := p.executor.Capture(ctx, cmd)
	if err == nil {
		return true, nil
	}

	var exitErr *domain.ExitError
	if errors.As(err, &exitErr) {
		if msg := strings.TrimSpace(out); msg != "" {
			p.logger.Warn(fmt.Sprintf("import %s failed: %s", module, lastLine(msg)))
		}
		return false, nil
	}

	// The interpreter itself could not be invoked. That is fatal, not a
	// signal to install.
	return false, zerr.With(zerr.Wrap(err, "failed to invoke interpreter"), "interpreter", interpreter)
}

func lastLine(s string) string {
	lines := strings.Split(s, "\n")
	return strings.TrimSpace(lines[len(lines)-1])
}
