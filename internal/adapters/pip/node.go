package pip

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pydep/internal/adapters/logger"
	"go.trai.ch/pydep/internal/adapters/shell"
	"go.trai.ch/pydep/internal/core/ports"
)

// NodeID is the unique identifier for the package manager Graft node.
const NodeID graft.ID = "adapter.package_manager"

func init() {
	graft.Register(graft.Node[ports.PackageManager]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.PackageManager, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewManager(executor, log), nil
		},
	})
}
