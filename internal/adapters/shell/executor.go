// Package shell provides the shell executor adapter.
package shell

import (
	"context"
	"os"
	"os/exec"
	"strings"

	"go.trai.ch/pydep/internal/core/domain"
	"go.trai.ch/pydep/internal/core/ports"
	"go.trai.ch/zerr"
)

// Executor implements ports.Executor using os/exec.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
	}
}

// Execute runs the command and streams stdout/stderr to the logger.
// Extra environment entries from cmd.Env are layered over os.Environ().
func (e *Executor) Execute(ctx context.Context, cmd *domain.Command) error {
	c, err := e.build(ctx, cmd)
	if err != nil {
		return err
	}

	c.Stdout = &logWriter{logger: e.logger, level: "info"}
	c.Stderr = &logWriter{logger: e.logger, level: "error"}

	return wrapRunError(c.Run(), cmd.Argv)
}

// Capture runs the command and returns its combined output.
func (e *Executor) Capture(ctx context.Context, cmd *domain.Command) (string, error) {
	c, err := e.build(ctx, cmd)
	if err != nil {
		return "", err
	}

	out, runErr := c.CombinedOutput()
	return string(out), wrapRunError(runErr, cmd.Argv)
}

func (e *Executor) build(ctx context.Context, cmd *domain.Command) (*exec.Cmd, error) {
	if len(cmd.Argv) == 0 {
		return nil, zerr.New("empty command")
	}

	name := cmd.Argv[0]
	args := cmd.Argv[1:]

	c := exec.CommandContext(ctx, name, args...) //nolint:gosec // argv comes from validated config
	c.Env = append(os.Environ(), cmd.Env...)
	return c, nil
}

// wrapRunError converts a nonzero exit into a *domain.ExitError so the code
// can be propagated unmodified as the process exit status.
func wrapRunError(err error, argv []string) error {
	if err == nil {
		return nil
	}

	if exitErr, ok := err.(*exec.ExitError); ok {
		wrapped := zerr.With(zerr.Wrap(err, "command failed"), "command", strings.Join(argv, " "))
		return &domain.ExitError{Code: exitErr.ExitCode(), Err: wrapped}
	}

	return zerr.With(zerr.Wrap(err, "command could not be started"), "command", strings.Join(argv, " "))
}

// logWriter forwards subprocess output to the logger line by line.
type logWriter struct {
	logger ports.Logger
	level  string
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	lines := strings.Split(strings.TrimSuffix(string(p), "\n"), "\n")
	for _, line := range lines {
		if w.level == "info" {
			w.logger.Info(line)
		} else {
			w.logger.Error(zerr.New(line))
		}
	}
	return len(p), nil
}
