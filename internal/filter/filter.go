package filter

import (
	"groupgrip/internal/domain"
)

// Apply returns the groups that pass every filter, in their original order.
// The result never aliases the input slice.
func Apply(groups []domain.Group, opts domain.FilterOptions) []domain.Group {
	filtered := make([]domain.Group, 0, len(groups))
	for _, group := range groups {
		if Matches(group, opts) {
			filtered = append(filtered, group)
		}
	}
	return filtered
}

// Matches checks if a group satisfies all three filters
func Matches(group domain.Group, opts domain.FilterOptions) bool {
	return MatchesPrivacy(group, opts.Privacy) &&
		MatchesAvatarColor(group, opts.AvatarColor) &&
		MatchesHasFriends(group, opts.HasFriends)
}

// MatchesPrivacy checks the closed/open flag
func MatchesPrivacy(group domain.Group, privacy string) bool {
	switch privacy {
	case domain.OptionAll:
		return true
	case domain.PrivacyClosed:
		return group.Closed
	case domain.PrivacyOpen:
		return !group.Closed
	default:
		return false
	}
}

// MatchesAvatarColor compares colours exactly; a group without a colour only passes "all"
func MatchesAvatarColor(group domain.Group, color string) bool {
	if color == domain.OptionAll {
		return true
	}
	return group.AvatarColor != "" && group.AvatarColor == color
}

// MatchesHasFriends treats an absent friends field the same as an empty one
func MatchesHasFriends(group domain.Group, hasFriends string) bool {
	switch hasFriends {
	case domain.OptionAll:
		return true
	case domain.FriendsYes:
		return group.FriendCount() > 0
	case domain.FriendsNo:
		return group.FriendCount() == 0
	default:
		return false
	}
}
