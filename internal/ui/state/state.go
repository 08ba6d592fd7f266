package state

import (
	"fmt"

	"groupgrip/internal/domain"
	"groupgrip/internal/filter"
)

// Focus identifies which control receives key presses
type Focus int

const (
	FocusPrivacy Focus = iota
	FocusAvatarColor
	FocusHasFriends
	FocusGroups
)

const focusCount = 4

// Field returns the filter field behind a select control, if any
func (f Focus) Field() (domain.FilterField, bool) {
	switch f {
	case FocusPrivacy:
		return domain.FieldPrivacy, true
	case FocusAvatarColor:
		return domain.FieldAvatarColor, true
	case FocusHasFriends:
		return domain.FieldHasFriends, true
	default:
		return "", false
	}
}

// AppState contains all the application state
type AppState struct {
	// Group data
	Groups   []domain.Group // unfiltered, written only by SetGroups
	Filtered []domain.Group // always filter.Apply(Groups, Options)
	Loaded   bool           // the payload has been applied

	Options        domain.FilterOptions
	ExpandedGroups map[int]bool // group id -> friends list expanded

	// UI state
	Focus          Focus
	Cursor         int // index into Filtered
	ViewportOffset int // first visible line of the group list
	ViewportHeight int
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		Groups:         []domain.Group{},
		Filtered:       []domain.Group{},
		Options:        domain.DefaultFilterOptions(),
		ExpandedGroups: make(map[int]bool),
		Focus:          FocusPrivacy,
		ViewportHeight: 20,
	}
}

// SetGroups replaces the whole group list and re-derives the filtered view
func (s *AppState) SetGroups(groups []domain.Group) {
	if groups == nil {
		groups = []domain.Group{}
	}
	s.Groups = groups
	s.Loaded = true
	s.recompute()
}

// SetOption replaces a single filter field and re-derives the filtered view
func (s *AppState) SetOption(field domain.FilterField, value string) error {
	next, err := s.Options.With(field, value)
	if err != nil {
		return err
	}
	s.Options = next
	s.recompute()
	return nil
}

// CycleOption moves a filter field delta steps through its values, wrapping around
func (s *AppState) CycleOption(field domain.FilterField, delta int) (string, error) {
	values := field.Values()
	current := 0
	for i, v := range values {
		if v == s.Options.Get(field) {
			current = i
			break
		}
	}

	n := len(values)
	if n == 0 {
		return "", fmt.Errorf("unknown filter field %q", field)
	}
	next := values[((current+delta)%n+n)%n]
	if err := s.SetOption(field, next); err != nil {
		return "", err
	}
	return next, nil
}

// ToggleExpanded flips the friends list of one group and returns the new value
func (s *AppState) ToggleExpanded(groupID int) bool {
	expanded := !s.ExpandedGroups[groupID]
	s.ExpandedGroups[groupID] = expanded
	return expanded
}

// IsExpanded reports whether a group's friends list is open
func (s *AppState) IsExpanded(groupID int) bool {
	return s.ExpandedGroups[groupID]
}

// SelectedGroup returns the group under the cursor
func (s *AppState) SelectedGroup() (domain.Group, bool) {
	if s.Cursor < 0 || s.Cursor >= len(s.Filtered) {
		return domain.Group{}, false
	}
	return s.Filtered[s.Cursor], true
}

// MoveCursor moves the cursor within the filtered list, clamping at both ends
func (s *AppState) MoveCursor(delta int) {
	s.Cursor += delta
	s.clampCursor()
}

// CursorTo places the cursor at an absolute index, clamped
func (s *AppState) CursorTo(index int) {
	s.Cursor = index
	s.clampCursor()
}

// CycleFocus moves focus through the controls in display order
func (s *AppState) CycleFocus(delta int) {
	s.Focus = Focus(((int(s.Focus)+delta)%focusCount + focusCount) % focusCount)
}

func (s *AppState) recompute() {
	s.Filtered = filter.Apply(s.Groups, s.Options)
	s.clampCursor()
}

func (s *AppState) clampCursor() {
	if s.Cursor >= len(s.Filtered) {
		s.Cursor = len(s.Filtered) - 1
	}
	if s.Cursor < 0 {
		s.Cursor = 0
	}
}
