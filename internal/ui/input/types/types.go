package types

import (
	tea "github.com/charmbracelet/bubbletea"

	"groupgrip/internal/ui/state"
)

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to model state needed for input handling
type Context interface {
	Focus() state.Focus
	HasSelection() bool // a group is under the cursor
	SelectedHasFriends() bool
}

// KeyHandler turns a key press into actions
type KeyHandler interface {
	// HandleKey processes a key message and returns actions and whether the key was consumed
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)
}
