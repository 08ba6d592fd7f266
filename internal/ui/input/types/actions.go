package types

import "groupgrip/internal/domain"

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Focus actions
type FocusAction struct {
	Delta int // +1 next control, -1 previous
}

func (a FocusAction) Type() string { return "focus" }

type FocusGroupsAction struct{}

func (a FocusGroupsAction) Type() string { return "focus_groups" }

// Filter actions
type CycleFilterAction struct {
	Field domain.FilterField
	Delta int
}

func (a CycleFilterAction) Type() string { return "cycle_filter" }

type SetFilterAction struct {
	Field domain.FilterField
	Value string
}

func (a SetFilterAction) Type() string { return "set_filter" }

type ResetFiltersAction struct{}

func (a ResetFiltersAction) Type() string { return "reset_filters" }

// Group actions
type ToggleFriendsAction struct{}

func (a ToggleFriendsAction) Type() string { return "toggle_friends" }

// UI actions
type ShowHelpAction struct{}

func (a ShowHelpAction) Type() string { return "show_help" }

type QuitAction struct{}

func (a QuitAction) Type() string { return "quit" }
