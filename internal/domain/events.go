package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventGroupsLoaded     EventType = "GroupsLoaded"
	EventGroupsLoadFailed EventType = "GroupsLoadFailed"
	EventFilterChanged    EventType = "FilterChanged"
	EventFriendsToggled   EventType = "FriendsToggled"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// GroupsLoadedEvent is emitted once the payload has replaced the group list
type GroupsLoadedEvent struct {
	Source string
	Count  int
}

func (e GroupsLoadedEvent) Type() EventType { return EventGroupsLoaded }

// GroupsLoadFailedEvent is emitted when the payload could not be loaded
type GroupsLoadFailedEvent struct {
	Source string
	Err    error
}

func (e GroupsLoadFailedEvent) Type() EventType { return EventGroupsLoadFailed }

// FilterChangedEvent is emitted when one filter control changes value
type FilterChangedEvent struct {
	Field   FilterField
	Value   string
	Options FilterOptions
	Visible int // groups left after filtering
}

func (e FilterChangedEvent) Type() EventType { return EventFilterChanged }

// FriendsToggledEvent is emitted when a group's friends list is expanded or collapsed
type FriendsToggledEvent struct {
	GroupID  int
	Expanded bool
}

func (e FriendsToggledEvent) Type() EventType { return EventFriendsToggled }
