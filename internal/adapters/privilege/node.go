package privilege

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pydep/internal/core/ports"
)

// NodeID is the unique identifier for the privilege gate Graft node.
const NodeID graft.ID = "adapter.privilege_gate"

func init() {
	graft.Register(graft.Node[ports.PrivilegeGate]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PrivilegeGate, error) {
			return NewGate(), nil
		},
	})
}
