package commands_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pydep/cmd/pydep/commands"
	"go.trai.ch/pydep/internal/adapters/telemetry"
	"go.trai.ch/pydep/internal/app"
	"go.trai.ch/pydep/internal/core/domain"
	"go.trai.ch/pydep/internal/core/ports/mocks"
	"go.trai.ch/pydep/internal/engine/provisioner"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	loader *mocks.MockConfigLoader
	gate   *mocks.MockPrivilegeGate
	prober *mocks.MockProber
	pm     *mocks.MockPackageManager
	store  *mocks.MockReportStore
	cli    *commands.CLI
	out    *bytes.Buffer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warn(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Error(gomock.Any()).AnyTimes()

	f := &fixture{
		loader: mocks.NewMockConfigLoader(ctrl),
		gate:   mocks.NewMockPrivilegeGate(ctrl),
		prober: mocks.NewMockProber(ctrl),
		pm:     mocks.NewMockPackageManager(ctrl),
		store:  mocks.NewMockReportStore(ctrl),
		out:    &bytes.Buffer{},
	}
	prov := provisioner.New(f.gate, f.prober, f.pm, f.store, telemetry.NewNoOp(), mockLogger)
	f.cli = commands.New(app.New(f.loader, prov, f.store, mockLogger))
	f.cli.SetOutput(f.out)
	return f
}

func TestVersionCommand(t *testing.T) {
	f := newFixture(t)

	f.cli.SetArgs([]string{"version"})
	require.NoError(t, f.cli.Execute(context.Background()))
	assert.Contains(t, f.out.String(), "dev")
}

func TestCheckCommand_AllPresent(t *testing.T) {
	f := newFixture(t)

	f.loader.EXPECT().Load(app.DefaultConfigPath).Return(domain.DefaultConfig(), nil)
	f.prober.EXPECT().Probe(gomock.Any(), "python", domain.Module("bcrypt")).Return(true, nil)

	f.cli.SetArgs([]string{"check"})
	require.NoError(t, f.cli.Execute(context.Background()))
}

func TestCheckCommand_Missing(t *testing.T) {
	f := newFixture(t)

	f.loader.EXPECT().Load(app.DefaultConfigPath).Return(domain.DefaultConfig(), nil)
	f.prober.EXPECT().Probe(gomock.Any(), "python", domain.Module("bcrypt")).Return(false, nil)

	f.cli.SetArgs([]string{"check"})
	err := f.cli.Execute(context.Background())
	require.ErrorIs(t, err, domain.ErrModulesMissing)
}

func TestEnsureCommand_NotRoot(t *testing.T) {
	f := newFixture(t)

	f.loader.EXPECT().Load(app.DefaultConfigPath).Return(domain.DefaultConfig(), nil)
	f.gate.EXPECT().Check().Return(domain.ErrNotRoot)

	f.cli.SetArgs([]string{"ensure"})
	err := f.cli.Execute(context.Background())
	require.ErrorIs(t, err, domain.ErrNotRoot)
}

func TestEnsureCommand_ConfigFlag(t *testing.T) {
	f := newFixture(t)

	f.loader.EXPECT().Load("/tmp/custom.yaml").Return(domain.DefaultConfig(), nil)
	f.gate.EXPECT().Check().Return(nil)
	f.prober.EXPECT().Probe(gomock.Any(), "python", domain.Module("bcrypt")).Return(true, nil)
	f.store.EXPECT().Put(gomock.Any()).Return(nil)

	f.cli.SetArgs([]string{"ensure", "--config", "/tmp/custom.yaml"})
	require.NoError(t, f.cli.Execute(context.Background()))
}

func TestRootCommand_RunsEnsure(t *testing.T) {
	f := newFixture(t)

	f.loader.EXPECT().Load(app.DefaultConfigPath).Return(domain.DefaultConfig(), nil)
	f.gate.EXPECT().Check().Return(nil)
	f.prober.EXPECT().Probe(gomock.Any(), "python", domain.Module("bcrypt")).Return(true, nil)
	f.store.EXPECT().Put(gomock.Any()).Return(nil)

	f.cli.SetArgs([]string{})
	require.NoError(t, f.cli.Execute(context.Background()))
}

func TestStatusCommand(t *testing.T) {
	f := newFixture(t)

	f.store.EXPECT().List().Return(nil)

	f.cli.SetArgs([]string{"status"})
	require.NoError(t, f.cli.Execute(context.Background()))
	assert.Contains(t, f.out.String(), "no provisioning reports recorded")
}
