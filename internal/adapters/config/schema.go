package config

// File represents the structure of the pydep.yaml configuration file.
type File struct {
	Version string   `yaml:"version"`
	Python  string   `yaml:"python"`
	Modules []string `yaml:"modules"`
	Pip     PipDTO   `yaml:"pip"`
}

// PipDTO represents the package manager settings in the configuration.
type PipDTO struct {
	Binary    string   `yaml:"binary"`
	Bootstrap []string `yaml:"bootstrap"`
	Args      []string `yaml:"args"`
}
