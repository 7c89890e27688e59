// Package config provides the configuration loader for pydep.
package config

import (
	"errors"
	"io/fs"
	"os"

	"go.trai.ch/pydep/internal/core/domain"
	"go.trai.ch/pydep/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the configuration from the given path. A missing file falls
// back to built-in defaults so the zero-flag invocation still works.
func (l *Loader) Load(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			l.logger.Info("no config file found, using defaults")
			return domain.DefaultConfig(), nil
		}
		return nil, zerr.Wrap(err, "failed to read config file")
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, "failed to parse config file")
	}

	cfg := toDomain(&file)
	if err := cfg.Validate(); err != nil {
		return nil, zerr.Wrap(err, "invalid configuration")
	}
	return cfg, nil
}

// toDomain maps the DTO onto the domain config, filling defaults for
// omitted fields. An explicitly empty module list is kept so validation
// can reject it; an absent key falls back to the default module set.
func toDomain(file *File) *domain.Config {
	cfg := domain.DefaultConfig()

	if file.Python != "" {
		cfg.Python = file.Python
	}
	if file.Modules != nil {
		cfg.Modules = make([]domain.Module, 0, len(file.Modules))
		for _, m := range file.Modules {
			cfg.Modules = append(cfg.Modules, domain.Module(m))
		}
	}
	if file.Pip.Binary != "" {
		cfg.Pip.Binary = file.Pip.Binary
	}
	if file.Pip.Bootstrap != nil {
		cfg.Pip.Bootstrap = file.Pip.Bootstrap
	}
	if file.Pip.Args != nil {
		cfg.Pip.Args = file.Pip.Args
	}

	return cfg
}
