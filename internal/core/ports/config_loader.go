package ports

import "go.trai.ch/pydep/internal/core/domain"

// ConfigLoader defines the interface for loading the provisioning configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration from the given path. A missing file is
	// not an error; built-in defaults are returned instead.
	Load(path string) (*domain.Config, error)
}
