package domain

import "time"

// Action describes how a module came to be satisfied during an ensure run.
type Action string

const (
	// ActionPresent means the import probe succeeded and nothing was installed.
	ActionPresent Action = "present"
	// ActionInstalled means the module was installed by the package manager.
	ActionInstalled Action = "installed"
)

// Report records the outcome of an ensure run for a single module.
type Report struct {
	Module      string    `json:"module"`
	Action      Action    `json:"action"`
	Interpreter string    `json:"interpreter"`
	Timestamp   time.Time `json:"timestamp"`
}
