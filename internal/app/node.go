package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pydep/internal/adapters/config" //nolint:depguard // Wired in app layer
	"go.trai.ch/pydep/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.trai.ch/pydep/internal/adapters/state"  //nolint:depguard // Wired in app layer
	progrocktel "go.trai.ch/pydep/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/pydep/internal/core/ports"
	"go.trai.ch/pydep/internal/engine/provisioner"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			provisioner.NodeID,
			state.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}

			prov, err := graft.Dep[*provisioner.Provisioner](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.ReportStore](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(loader, prov, store, log), nil
		},
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			progrocktel.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{
				App:       application,
				Logger:    log,
				Telemetry: telemetry,
			}, nil
		},
	})
}
