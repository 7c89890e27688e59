package wiring_test

import (
	"context"
	"os"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pydep/internal/app"
	_ "go.trai.ch/pydep/internal/wiring"
)

// TestGraftResolution ensures the full dependency graph resolves. Note that
// graft.AssertDepsValid is not used here: it infers dependency IDs from the
// package name of the interface in Dep[T], which breaks down when multiple
// distinct nodes implement interfaces from the shared ports package.
func TestGraftResolution(t *testing.T) {
	cwd, err := os.Getwd()
	require.NoError(t, err)
	defer func() { _ = os.Chdir(cwd) }()

	// The report store opens a file relative to the working directory.
	require.NoError(t, os.Chdir(t.TempDir()))

	components, _, err := graft.ExecuteFor[*app.Components](context.Background())
	require.NoError(t, err)
	require.NotNil(t, components)
	require.NotNil(t, components.App)
	require.NotNil(t, components.Logger)
	require.NotNil(t, components.Telemetry)
}
