// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/pydep/internal/adapters/config"
	_ "go.trai.ch/pydep/internal/adapters/logger"
	_ "go.trai.ch/pydep/internal/adapters/pip"
	_ "go.trai.ch/pydep/internal/adapters/privilege"
	_ "go.trai.ch/pydep/internal/adapters/python"
	_ "go.trai.ch/pydep/internal/adapters/shell"
	_ "go.trai.ch/pydep/internal/adapters/state"
	_ "go.trai.ch/pydep/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/pydep/internal/app"
	_ "go.trai.ch/pydep/internal/engine/provisioner"
)
