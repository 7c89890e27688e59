package domain

import "go.trai.ch/zerr"

// PipConfig describes how to find, bootstrap and invoke the package manager.
type PipConfig struct {
	// Binary is the package manager executable looked up on PATH.
	Binary string

	// Bootstrap is the legacy installer invocation used to install the
	// package manager itself when it is not on PATH.
	Bootstrap []string

	// Args are extra arguments appended to every install invocation.
	Args []string
}

// Config is the full provisioning configuration.
type Config struct {
	// Python is the interpreter binary used for import probes.
	Python string

	// Modules are the target modules to ensure, in install order.
	Modules []Module

	// Pip configures the package manager.
	Pip PipConfig
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Python:  "python",
		Modules: []Module{"bcrypt"},
		Pip: PipConfig{
			Binary:    "pip",
			Bootstrap: []string{"easy_install", "pip"},
		},
	}
}

// Validate checks the configuration invariants.
func (c *Config) Validate() error {
	if len(c.Modules) == 0 {
		return ErrNoModules
	}
	for _, m := range c.Modules {
		if !m.Valid() {
			return zerr.With(ErrInvalidModuleName, "module", m.String())
		}
	}
	if c.Python == "" {
		return zerr.New("python interpreter binary must not be empty")
	}
	if c.Pip.Binary == "" {
		return zerr.New("pip binary must not be empty")
	}
	return nil
}
