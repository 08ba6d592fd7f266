package domain

import "fmt"

// Group represents a social group as delivered by the groups payload
type Group struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Closed       bool    `json:"closed"`
	AvatarColor  string  `json:"avatar_color,omitempty"` // "" when absent
	MembersCount int     `json:"members_count"`
	Friends      *[]User `json:"friends,omitempty"` // nil when the field is absent
}

// User is a friend of the viewer who is also a member of a group
type User struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// FullName returns the name shown in the friends list
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// HasFriendsField reports whether the payload carried a friends sequence at all.
// The toggle is rendered whenever the field is present, even when it is empty.
func (g Group) HasFriendsField() bool {
	return g.Friends != nil
}

// FriendList returns the friends sequence, or nil when absent
func (g Group) FriendList() []User {
	if g.Friends == nil {
		return nil
	}
	return *g.Friends
}

// FriendCount returns the number of friends in the group
func (g Group) FriendCount() int {
	return len(g.FriendList())
}

// Envelope is the {result, data} wrapper some payloads use
type Envelope struct {
	Result int     `json:"result"` // 1 on success, 0 on failure
	Data   []Group `json:"data,omitempty"`
}

// AvatarPalette lists the avatar colours in display order
var AvatarPalette = []string{"red", "green", "blue", "yellow", "purple", "white", "orange"}

// Option values shared by all three filters
const (
	OptionAll = "all"

	PrivacyClosed = "closed"
	PrivacyOpen   = "open"

	FriendsYes = "yes"
	FriendsNo  = "no"
)

// FilterField names one of the three filter controls
type FilterField string

const (
	FieldPrivacy     FilterField = "privacy"
	FieldAvatarColor FilterField = "avatarColor"
	FieldHasFriends  FilterField = "hasFriends"
)

// FilterFields lists the filter controls in display order
var FilterFields = []FilterField{FieldPrivacy, FieldAvatarColor, FieldHasFriends}

// Values returns the allowed values for the field, "all" first
func (f FilterField) Values() []string {
	switch f {
	case FieldPrivacy:
		return []string{OptionAll, PrivacyClosed, PrivacyOpen}
	case FieldAvatarColor:
		return append([]string{OptionAll}, AvatarPalette...)
	case FieldHasFriends:
		return []string{OptionAll, FriendsYes, FriendsNo}
	default:
		return nil
	}
}

// Accepts reports whether value is valid for the field
func (f FilterField) Accepts(value string) bool {
	for _, v := range f.Values() {
		if v == value {
			return true
		}
	}
	return false
}

// FilterOptions holds the current value of every filter control
type FilterOptions struct {
	Privacy     string `json:"privacy"`
	AvatarColor string `json:"avatarColor"`
	HasFriends  string `json:"hasFriends"`
}

// DefaultFilterOptions returns options that let every group through
func DefaultFilterOptions() FilterOptions {
	return FilterOptions{
		Privacy:     OptionAll,
		AvatarColor: OptionAll,
		HasFriends:  OptionAll,
	}
}

// Get returns the value of a single field
func (o FilterOptions) Get(field FilterField) string {
	switch field {
	case FieldPrivacy:
		return o.Privacy
	case FieldAvatarColor:
		return o.AvatarColor
	case FieldHasFriends:
		return o.HasFriends
	default:
		return ""
	}
}

// With returns a copy of o with exactly one field replaced.
// On error o is returned unchanged.
func (o FilterOptions) With(field FilterField, value string) (FilterOptions, error) {
	if field.Values() == nil {
		return o, fmt.Errorf("unknown filter field %q", field)
	}
	if !field.Accepts(value) {
		return o, fmt.Errorf("invalid value %q for filter %s", value, field)
	}

	next := o
	switch field {
	case FieldPrivacy:
		next.Privacy = value
	case FieldAvatarColor:
		next.AvatarColor = value
	case FieldHasFriends:
		next.HasFriends = value
	}
	return next, nil
}
