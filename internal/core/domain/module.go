package domain

import "regexp"

// moduleNameRE matches the package identifiers pip accepts on the command line.
var moduleNameRE = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// Module is the name of a Python module to ensure on the host.
type Module string

// String returns the module name.
func (m Module) String() string { return string(m) }

// Valid reports whether the name is a package identifier the package
// manager can be handed without quoting or escaping concerns.
func (m Module) Valid() bool {
	return moduleNameRE.MatchString(string(m))
}
