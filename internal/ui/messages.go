package ui

import (
	"groupgrip/internal/loader"
)

// loadDueMsg fires once the initial load delay has passed
type loadDueMsg struct{}

// groupsLoadedMsg carries the outcome of the single payload load
type groupsLoadedMsg struct {
	result loader.Result
	err    error
}
