package input

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"groupgrip/internal/domain"
	"groupgrip/internal/ui/input/types"
)

// Handler maps key presses to actions depending on which control has focus
type Handler struct {
	keys KeyMap
}

var _ types.KeyHandler = (*Handler)(nil)

func New() *Handler {
	return &Handler{keys: DefaultKeyMap}
}

// KeyMap returns the active bindings, used for the help footer
func (h *Handler) KeyMap() KeyMap {
	return h.keys
}

// HandleKey returns the actions for a key and whether the key meant anything
// for the focused control
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	// Global keys
	switch {
	case key.Matches(msg, h.keys.Quit):
		return []types.Action{types.QuitAction{}}, true
	case key.Matches(msg, h.keys.Help):
		return []types.Action{types.ShowHelpAction{}}, true
	case key.Matches(msg, h.keys.NextControl):
		return []types.Action{types.FocusAction{Delta: 1}}, true
	case key.Matches(msg, h.keys.PrevControl):
		return []types.Action{types.FocusAction{Delta: -1}}, true
	case key.Matches(msg, h.keys.Reset):
		return []types.Action{types.ResetFiltersAction{}}, true
	}

	if field, ok := ctx.Focus().Field(); ok {
		return h.handleSelectKey(msg, field)
	}
	return h.handleListKey(msg, ctx)
}

// handleSelectKey handles keys while a filter control is focused
func (h *Handler) handleSelectKey(msg tea.KeyMsg, field domain.FilterField) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, h.keys.PrevValue):
		return []types.Action{types.CycleFilterAction{Field: field, Delta: -1}}, true
	case key.Matches(msg, h.keys.NextValue), key.Matches(msg, h.keys.Toggle):
		return []types.Action{types.CycleFilterAction{Field: field, Delta: 1}}, true
	case key.Matches(msg, h.keys.Down):
		// leave the filter row for the list
		return []types.Action{types.FocusGroupsAction{}}, true
	}

	// 1-9 pick a value directly
	if s := msg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
		values := field.Values()
		if idx := int(s[0] - '1'); idx < len(values) {
			return []types.Action{types.SetFilterAction{Field: field, Value: values[idx]}}, true
		}
		return nil, true
	}

	return nil, false
}

// handleListKey handles keys while the group list is focused
func (h *Handler) handleListKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, h.keys.Up):
		return []types.Action{types.NavigateAction{Direction: "up"}}, true
	case key.Matches(msg, h.keys.Down):
		return []types.Action{types.NavigateAction{Direction: "down"}}, true
	case key.Matches(msg, h.keys.PageUp):
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true
	case key.Matches(msg, h.keys.PageDown):
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true
	case key.Matches(msg, h.keys.Home):
		return []types.Action{types.NavigateAction{Direction: "home"}}, true
	case key.Matches(msg, h.keys.End):
		return []types.Action{types.NavigateAction{Direction: "end"}}, true
	case key.Matches(msg, h.keys.Toggle):
		if ctx.HasSelection() && ctx.SelectedHasFriends() {
			return []types.Action{types.ToggleFriendsAction{}}, true
		}
		return nil, true
	}
	return nil, false
}
