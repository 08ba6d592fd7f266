package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"groupgrip/internal/domain"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width          int
	Height         int
	Options        domain.FilterOptions
	FocusedField   domain.FilterField // "" when the group list has focus
	ListFocused    bool
	Groups         []domain.Group // already filtered
	Cursor         int
	ExpandedGroups map[int]bool
	ViewportOffset int
	ViewportHeight int // lines available for the group list, <= 0 means unlimited
	HelpView       string
}

// Renderer handles all view rendering
type Renderer struct {
	styles       *Styles
	groupRender  *GroupRenderer
	filterRender *FilterRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:       styles,
		groupRender:  NewGroupRenderer(styles),
		filterRender: NewFilterRenderer(styles),
	}
}

// ContentWidth is the usable width inside the main padding
func ContentWidth(width int) int {
	if width <= 0 {
		return 0
	}
	if w := width - 4; w > 0 {
		return w
	}
	return width
}

// GroupLines renders every filtered group, separated by blank lines, and
// reports which lines belong to the cursor's group
func (r *Renderer) GroupLines(state ViewState) (lines []string, cursorStart, cursorEnd int) {
	width := ContentWidth(state.Width)
	for i, group := range state.Groups {
		if i > 0 {
			lines = append(lines, "")
		}

		selected := state.ListFocused && i == state.Cursor
		block := r.groupRender.RenderGroup(group, state.ExpandedGroups[group.ID], selected, width)

		if i == state.Cursor {
			cursorStart = len(lines)
			cursorEnd = len(lines) + len(block)
		}
		lines = append(lines, block...)
	}
	return lines, cursorStart, cursorEnd
}

// ChromeHeight is the number of lines everything but the group list takes
// for this state. The filter row grows when it wraps on narrow terminals.
func (r *Renderer) ChromeHeight(state ViewState) int {
	state.Groups = nil
	// an empty list still occupies one line
	return lipgloss.Height(r.Render(state)) - 1
}

// listHeight is how many group lines fit once the scroll hints have their rows
func listHeight(height int) int {
	if height < 3 {
		return height
	}
	return height - 2
}

// ClampOffset returns a viewport offset that keeps [start, end) visible where possible
func ClampOffset(offset, height, start, end, total int) int {
	if height <= 0 || total <= height {
		return 0
	}
	height = listHeight(height)
	if end-start > height {
		// block taller than the viewport: show its top
		return start
	}
	if start < offset {
		offset = start
	}
	if end > offset+height {
		offset = end - height
	}
	if offset > total-height {
		offset = total - height
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.styles.Title.Render(TitleText))
	content.WriteString("\n")

	content.WriteString(r.filterRender.RenderFilters(state.Options, state.FocusedField, ContentWidth(state.Width)))
	content.WriteString("\n\n")

	lines, _, _ := r.GroupLines(state)
	content.WriteString(r.window(lines, state.ViewportOffset, state.ViewportHeight))

	if state.HelpView != "" {
		content.WriteString("\n")
		content.WriteString(r.styles.Help.Render(state.HelpView))
	}

	return r.styles.Main.Render(content.String())
}

// window cuts the visible slice of the group list. Scroll hints get rows of
// their own so they never cover a group line.
func (r *Renderer) window(lines []string, offset, height int) string {
	total := len(lines)
	if height <= 0 || total <= height {
		return strings.Join(lines, "\n")
	}

	body := listHeight(height)
	if offset > total-body {
		offset = total - body
	}
	if offset < 0 {
		offset = 0
	}
	end := offset + body
	hints := body < height

	visible := make([]string, 0, height)
	if hints && offset > 0 {
		visible = append(visible, r.styles.Scroll.Render(fmt.Sprintf("↑ (%d more)", offset)))
	}
	visible = append(visible, lines[offset:end]...)
	if hints && end < total {
		visible = append(visible, r.styles.Scroll.Render(fmt.Sprintf("↓ (%d more)", total-end)))
	}
	return strings.Join(visible, "\n")
}
