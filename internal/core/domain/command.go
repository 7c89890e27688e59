package domain

// Command is a subprocess invocation.
type Command struct {
	// Argv is the command and its arguments. Argv[0] is resolved on PATH
	// unless it is an absolute path.
	Argv []string

	// Env contains extra "KEY=VALUE" entries layered over the process
	// environment.
	Env []string
}
