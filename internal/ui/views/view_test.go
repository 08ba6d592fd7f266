package views

import (
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"groupgrip/internal/domain"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func testGroups() []domain.Group {
	friends := []domain.User{{FirstName: "Ann", LastName: "Lee"}, {FirstName: "Bob", LastName: "Ray"}}
	return []domain.Group{
		{ID: 1, Name: "Hikers", Closed: true, AvatarColor: "red", MembersCount: 5, Friends: &friends},
		{ID: 2, Name: "Chess", Closed: false, MembersCount: 2},
	}
}

func baseState() ViewState {
	return ViewState{
		Width:          100,
		Options:        domain.DefaultFilterOptions(),
		FocusedField:   domain.FieldPrivacy,
		Groups:         testGroups(),
		ExpandedGroups: map[int]bool{},
	}
}

func TestRenderShowsLabelsAndGroups(t *testing.T) {
	out := NewRenderer().Render(baseState())

	for _, want := range []string{
		"Группы",
		"Приватность", "‹ Все ›",
		"Цвет аватара:", "‹ All ›",
		"Друзья в группе:",
		"Hikers", "Тип:Closed", "Участники:5", "Друзья: [2]",
		"Chess", "Тип:Open", "Участники:2",
	} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "Ann Lee", "friends are collapsed by default")
	assert.Equal(t, 1, strings.Count(out, "Друзья:"), "group without friends field has no toggle")
}

func TestRenderExpandedFriendsInOrder(t *testing.T) {
	state := baseState()
	state.ExpandedGroups[1] = true

	out := NewRenderer().Render(state)

	ann := strings.Index(out, "Ann Lee")
	bob := strings.Index(out, "Bob Ray")
	require.NotEqual(t, -1, ann)
	require.NotEqual(t, -1, bob)
	assert.Less(t, ann, bob)
}

func TestRenderOptionLabels(t *testing.T) {
	state := baseState()
	state.Options = domain.FilterOptions{Privacy: "closed", AvatarColor: "purple", HasFriends: "no"}

	out := NewRenderer().Render(state)

	assert.Contains(t, out, "‹ Закрытая ›")
	assert.Contains(t, out, "‹ Фиолетовый ›")
	assert.Contains(t, out, "‹ Нет ›")
}

func TestFiltersWrapOnNarrowTerminal(t *testing.T) {
	r := NewFilterRenderer(NewStyles())

	wide := r.RenderFilters(domain.DefaultFilterOptions(), "", 200)
	assert.Equal(t, 0, strings.Count(wide, "\n"))

	narrow := r.RenderFilters(domain.DefaultFilterOptions(), "", 30)
	assert.Equal(t, 2, strings.Count(narrow, "\n"))
}

func TestGroupLinesTracksCursorBlock(t *testing.T) {
	state := baseState()
	state.ListFocused = true
	state.Cursor = 1

	lines, start, end := NewRenderer().GroupLines(state)

	// group 1: header, type, members, friends + blank separator
	assert.Equal(t, 5, start)
	assert.Equal(t, 8, end)
	assert.Contains(t, lines[start], "▸ Chess")
}

func TestClampOffset(t *testing.T) {
	tests := []struct {
		name                                   string
		offset, height, start, end, total, want int
	}{
		{"fits", 3, 20, 0, 4, 10, 0},
		{"block above viewport", 6, 5, 2, 4, 30, 2},
		{"block below viewport", 0, 5, 8, 10, 30, 7},
		{"tall block shows top", 0, 3, 10, 20, 30, 10},
		{"clamped to end", 40, 5, 28, 30, 30, 27},
		{"no room for hints", 0, 2, 5, 6, 10, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClampOffset(tt.offset, tt.height, tt.start, tt.end, tt.total))
		})
	}
}

func TestWindowAddsScrollHints(t *testing.T) {
	lines := make([]string, 10)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %d", i)
	}

	out := NewRenderer().window(lines, 3, 4)
	rows := strings.Split(out, "\n")
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"↑ (3 more)", "line 3", "line 4", "↓ (5 more)"}, rows)
}

func TestSelectedToggleVisibleAtViewportBottom(t *testing.T) {
	friends := []domain.User{{FirstName: "Ann", LastName: "Lee"}}
	var groups []domain.Group
	for i := 1; i <= 5; i++ {
		groups = append(groups, domain.Group{ID: i, Name: fmt.Sprintf("Chess %d", i), MembersCount: i})
	}
	groups = append(groups, domain.Group{ID: 6, Name: "Hikers", Closed: true, MembersCount: 9, Friends: &friends})

	state := baseState()
	state.Groups = groups
	state.ListFocused = true
	state.Cursor = 5
	state.ViewportHeight = 8

	r := NewRenderer()
	lines, start, end := r.GroupLines(state)
	state.ViewportOffset = ClampOffset(0, state.ViewportHeight, start, end, len(lines))

	out := r.window(lines, state.ViewportOffset, state.ViewportHeight)
	rows := strings.Split(out, "\n")
	assert.LessOrEqual(t, len(rows), state.ViewportHeight)
	assert.Contains(t, out, "▸ Hikers")
	assert.Contains(t, out, "Друзья: [1]")
}

func TestChromeHeightGrowsWhenFiltersWrap(t *testing.T) {
	r := NewRenderer()

	wide := baseState()
	wide.Width = 120
	narrow := baseState()
	narrow.Width = 40

	assert.Equal(t, r.ChromeHeight(wide)+2, r.ChromeHeight(narrow))

	// chrome plus the list is the whole screen
	lines, _, _ := r.GroupLines(wide)
	assert.Equal(t, lipgloss.Height(r.Render(wide)), r.ChromeHeight(wide)+len(lines))
}

func TestAvatarSwatchOnlyForPalette(t *testing.T) {
	assert.NotEmpty(t, AvatarSwatch("red"))
	assert.Empty(t, AvatarSwatch(""))
	assert.Empty(t, AvatarSwatch("black"))
}
