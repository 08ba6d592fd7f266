package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"groupgrip/internal/domain"
)

// GroupRenderer handles rendering of group items
type GroupRenderer struct {
	styles *Styles
}

// NewGroupRenderer creates a new group renderer
func NewGroupRenderer(styles *Styles) *GroupRenderer {
	return &GroupRenderer{
		styles: styles,
	}
}

// RenderGroup renders one group item as a block of lines.
// The friends toggle appears whenever the payload carried a friends field.
func (g *GroupRenderer) RenderGroup(group domain.Group, isExpanded bool, isSelected bool, width int) []string {
	marker := "  "
	if isSelected {
		marker = "▸ "
	}

	header := marker + g.styles.GroupName.Render(group.Name)
	if swatch := AvatarSwatch(group.AvatarColor); swatch != "" {
		header += " " + swatch
	}

	privacy := OpenText
	if group.Closed {
		privacy = ClosedText
	}

	lines := []string{
		header,
		"  " + g.styles.Dim.Render(TypeLabel) + privacy,
		fmt.Sprintf("  %s%d", g.styles.Dim.Render(MembersLabel), group.MembersCount),
	}

	if group.HasFriendsField() {
		toggleStyle := g.styles.Toggle
		if isExpanded {
			toggleStyle = g.styles.ToggleActive
		}
		lines = append(lines, fmt.Sprintf("  %s %s", g.styles.Dim.Render(FriendsLabel), toggleStyle.Render(fmt.Sprintf("[%d]", group.FriendCount()))))

		if isExpanded {
			for _, friend := range group.FriendList() {
				lines = append(lines, g.styles.Friend.Render("    • "+friend.FullName()))
			}
		}
	}

	if isSelected {
		for i, line := range lines {
			lines[i] = g.highlight(line, width)
		}
	}

	return lines
}

// highlight pads a line to full width and applies the cursor background
func (g *GroupRenderer) highlight(line string, width int) string {
	if width > 0 {
		if lineLen := lipgloss.Width(line); lineLen < width {
			line += strings.Repeat(" ", width-lineLen)
		}
	}
	return g.styles.Cursor.Render(line)
}
