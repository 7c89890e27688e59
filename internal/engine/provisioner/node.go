package provisioner

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pydep/internal/adapters/logger"      //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pydep/internal/adapters/pip"         //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pydep/internal/adapters/privilege"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pydep/internal/adapters/python"      //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pydep/internal/adapters/state"       //nolint:depguard // Wired in engine wiring
	progrocktel "go.trai.ch/pydep/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pydep/internal/core/ports"
)

// NodeID is the unique identifier for the provisioner Graft node.
const NodeID graft.ID = "engine.provisioner"

func init() {
	graft.Register(graft.Node[*Provisioner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			privilege.NodeID,
			python.NodeID,
			pip.NodeID,
			state.NodeID,
			progrocktel.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Provisioner, error) {
			gate, err := graft.Dep[ports.PrivilegeGate](ctx)
			if err != nil {
				return nil, err
			}

			prober, err := graft.Dep[ports.Prober](ctx)
			if err != nil {
				return nil, err
			}

			pm, err := graft.Dep[ports.PackageManager](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.ReportStore](ctx)
			if err != nil {
				return nil, err
			}

			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(gate, prober, pm, store, telemetry, log), nil
		},
	})
}
