// Package privilege implements the root privilege gate.
package privilege

import (
	"os"

	"go.trai.ch/pydep/internal/core/domain"
	"go.trai.ch/zerr"
)

// Gate implements ports.PrivilegeGate via the effective user id.
type Gate struct {
	euid func() int
}

// NewGate creates a new Gate.
func NewGate() *Gate {
	return &Gate{euid: os.Geteuid}
}

// Check returns domain.ErrNotRoot when the effective user is not root.
func (g *Gate) Check() error {
	if id := g.euid(); id != 0 {
		return zerr.With(domain.ErrNotRoot, "euid", id)
	}
	return nil
}
