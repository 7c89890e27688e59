package provisioner_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pydep/internal/adapters/telemetry"
	"go.trai.ch/pydep/internal/core/domain"
	"go.trai.ch/pydep/internal/core/ports/mocks"
	"go.trai.ch/pydep/internal/engine/provisioner"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	gate   *mocks.MockPrivilegeGate
	prober *mocks.MockProber
	pm     *mocks.MockPackageManager
	store  *mocks.MockReportStore
	prov   *provisioner.Provisioner
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warn(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Error(gomock.Any()).AnyTimes()

	f := &fixture{
		gate:   mocks.NewMockPrivilegeGate(ctrl),
		prober: mocks.NewMockProber(ctrl),
		pm:     mocks.NewMockPackageManager(ctrl),
		store:  mocks.NewMockReportStore(ctrl),
	}
	f.prov = provisioner.New(f.gate, f.prober, f.pm, f.store, telemetry.NewNoOp(), mockLogger)
	return f
}

func config(modules ...domain.Module) *domain.Config {
	cfg := domain.DefaultConfig()
	cfg.Modules = modules
	return cfg
}

func TestEnsure_NotRootFailsImmediately(t *testing.T) {
	f := newFixture(t)

	// No probe, bootstrap or install expectations: the gate is terminal.
	f.gate.EXPECT().Check().Return(domain.ErrNotRoot)

	err := f.prov.Ensure(context.Background(), config("bcrypt"))
	require.ErrorIs(t, err, domain.ErrNotRoot)
}

func TestEnsure_AllPresentSkipsInstallation(t *testing.T) {
	f := newFixture(t)

	f.gate.EXPECT().Check().Return(nil)
	f.prober.EXPECT().Probe(gomock.Any(), "python", domain.Module("bcrypt")).Return(true, nil)
	f.prober.EXPECT().Probe(gomock.Any(), "python", domain.Module("pyasn1")).Return(true, nil)

	var recorded []domain.Report
	f.store.EXPECT().Put(gomock.Any()).Times(2).
		DoAndReturn(func(r domain.Report) error {
			recorded = append(recorded, r)
			return nil
		})

	err := f.prov.Ensure(context.Background(), config("bcrypt", "pyasn1"))
	require.NoError(t, err)

	for _, r := range recorded {
		assert.Equal(t, domain.ActionPresent, r.Action)
	}
}

func TestEnsure_InstallsMissingModule(t *testing.T) {
	f := newFixture(t)
	cfg := config("bcrypt", "pyasn1")

	f.gate.EXPECT().Check().Return(nil)
	f.prober.EXPECT().Probe(gomock.Any(), "python", domain.Module("bcrypt")).Return(true, nil)
	f.prober.EXPECT().Probe(gomock.Any(), "python", domain.Module("pyasn1")).Return(false, nil)
	f.pm.EXPECT().Available(cfg.Pip).Return("/usr/bin/pip", true)
	f.pm.EXPECT().Install(gomock.Any(), cfg.Pip, domain.Module("pyasn1")).Return(nil).Times(1)

	var recorded []domain.Report
	f.store.EXPECT().Put(gomock.Any()).Times(2).
		DoAndReturn(func(r domain.Report) error {
			recorded = append(recorded, r)
			return nil
		})

	err := f.prov.Ensure(context.Background(), cfg)
	require.NoError(t, err)

	actions := map[string]domain.Action{}
	for _, r := range recorded {
		actions[r.Module] = r.Action
	}
	assert.Equal(t, domain.ActionPresent, actions["bcrypt"])
	assert.Equal(t, domain.ActionInstalled, actions["pyasn1"])
}

func TestEnsure_InstallFailurePropagatesExitStatus(t *testing.T) {
	f := newFixture(t)
	cfg := config("bcrypt")

	f.gate.EXPECT().Check().Return(nil)
	f.prober.EXPECT().Probe(gomock.Any(), "python", domain.Module("bcrypt")).Return(false, nil)
	f.pm.EXPECT().Available(cfg.Pip).Return("/usr/bin/pip", true)
	f.pm.EXPECT().Install(gomock.Any(), cfg.Pip, domain.Module("bcrypt")).
		Return(&domain.ExitError{Code: 3, Err: zerr.New("pip install failed")})

	// No reports on a failed run.
	err := f.prov.Ensure(context.Background(), cfg)
	require.Error(t, err)

	code, ok := domain.ExitCode(err)
	require.True(t, ok)
	assert.Equal(t, 3, code)
}

func TestEnsure_BootstrapsPipWhenMissing(t *testing.T) {
	f := newFixture(t)
	cfg := config("bcrypt")

	f.gate.EXPECT().Check().Return(nil)
	f.prober.EXPECT().Probe(gomock.Any(), "python", domain.Module("bcrypt")).Return(false, nil)

	// Exactly one bootstrap attempt between the two existence checks.
	first := f.pm.EXPECT().Available(cfg.Pip).Return("", false)
	boot := f.pm.EXPECT().Bootstrap(gomock.Any(), cfg.Pip).Return(nil).Times(1)
	second := f.pm.EXPECT().Available(cfg.Pip).Return("/usr/local/bin/pip", true)
	install := f.pm.EXPECT().Install(gomock.Any(), cfg.Pip, domain.Module("bcrypt")).Return(nil)
	gomock.InOrder(first, boot, second, install)

	f.store.EXPECT().Put(gomock.Any()).Return(nil)

	require.NoError(t, f.prov.Ensure(context.Background(), cfg))
}

func TestEnsure_UnbootstrappablePipNeverInstalls(t *testing.T) {
	f := newFixture(t)
	cfg := config("bcrypt")

	f.gate.EXPECT().Check().Return(nil)
	f.prober.EXPECT().Probe(gomock.Any(), "python", domain.Module("bcrypt")).Return(false, nil)
	f.pm.EXPECT().Available(cfg.Pip).Return("", false).Times(2)
	f.pm.EXPECT().Bootstrap(gomock.Any(), cfg.Pip).Return(zerr.New("easy_install failed")).Times(1)

	// Install must never be invoked; no expectation is registered for it.
	err := f.prov.Ensure(context.Background(), cfg)
	require.ErrorIs(t, err, domain.ErrPipUnavailable)
}

func TestEnsure_FailedBootstrapCommandButPipAppears(t *testing.T) {
	f := newFixture(t)
	cfg := config("bcrypt")

	f.gate.EXPECT().Check().Return(nil)
	f.prober.EXPECT().Probe(gomock.Any(), "python", domain.Module("bcrypt")).Return(false, nil)

	// The re-check decides, not the installer's exit status.
	first := f.pm.EXPECT().Available(cfg.Pip).Return("", false)
	boot := f.pm.EXPECT().Bootstrap(gomock.Any(), cfg.Pip).Return(zerr.New("exit 1"))
	second := f.pm.EXPECT().Available(cfg.Pip).Return("/usr/local/bin/pip", true)
	gomock.InOrder(first, boot, second)

	f.pm.EXPECT().Install(gomock.Any(), cfg.Pip, domain.Module("bcrypt")).Return(nil)
	f.store.EXPECT().Put(gomock.Any()).Return(nil)

	require.NoError(t, f.prov.Ensure(context.Background(), cfg))
}

func TestEnsure_ProbeErrorIsFatal(t *testing.T) {
	f := newFixture(t)

	f.gate.EXPECT().Check().Return(nil)
	f.prober.EXPECT().Probe(gomock.Any(), "python", domain.Module("bcrypt")).
		Return(false, zerr.New("failed to invoke interpreter"))

	err := f.prov.Ensure(context.Background(), config("bcrypt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to invoke interpreter")
}

func TestEnsure_InstallOrderFollowsConfig(t *testing.T) {
	f := newFixture(t)
	cfg := config("zmodule", "amodule")

	f.gate.EXPECT().Check().Return(nil)
	f.prober.EXPECT().Probe(gomock.Any(), "python", domain.Module("zmodule")).Return(false, nil)
	f.prober.EXPECT().Probe(gomock.Any(), "python", domain.Module("amodule")).Return(false, nil)
	f.pm.EXPECT().Available(cfg.Pip).Return("/usr/bin/pip", true)

	firstInstall := f.pm.EXPECT().Install(gomock.Any(), cfg.Pip, domain.Module("zmodule")).Return(nil)
	secondInstall := f.pm.EXPECT().Install(gomock.Any(), cfg.Pip, domain.Module("amodule")).Return(nil)
	gomock.InOrder(firstInstall, secondInstall)

	f.store.EXPECT().Put(gomock.Any()).Return(nil).Times(2)

	require.NoError(t, f.prov.Ensure(context.Background(), cfg))
}

func TestEnsure_StoreFailureDoesNotFailRun(t *testing.T) {
	f := newFixture(t)
	cfg := config("bcrypt")

	f.gate.EXPECT().Check().Return(nil)
	f.prober.EXPECT().Probe(gomock.Any(), "python", domain.Module("bcrypt")).Return(true, nil)
	f.store.EXPECT().Put(gomock.Any()).Return(zerr.New("disk full"))

	require.NoError(t, f.prov.Ensure(context.Background(), cfg))
}

func TestProbe_CollectsResultsInConfigOrder(t *testing.T) {
	f := newFixture(t)
	cfg := config("bcrypt", "pyasn1", "pymongo")

	f.prober.EXPECT().Probe(gomock.Any(), "python", domain.Module("bcrypt")).Return(true, nil)
	f.prober.EXPECT().Probe(gomock.Any(), "python", domain.Module("pyasn1")).Return(false, nil)
	f.prober.EXPECT().Probe(gomock.Any(), "python", domain.Module("pymongo")).Return(true, nil)

	results, err := f.prov.Probe(context.Background(), cfg)
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, domain.Module("bcrypt"), results[0].Module)
	assert.True(t, results[0].Present)
	assert.Equal(t, domain.Module("pyasn1"), results[1].Module)
	assert.False(t, results[1].Present)
	assert.Equal(t, domain.Module("pymongo"), results[2].Module)
	assert.True(t, results[2].Present)
}
