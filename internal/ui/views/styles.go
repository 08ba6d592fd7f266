package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Dim           lipgloss.Style
	Label         lipgloss.Style
	Select        lipgloss.Style
	SelectFocused lipgloss.Style
	GroupName     lipgloss.Style
	Cursor        lipgloss.Style
	Toggle        lipgloss.Style
	ToggleActive  lipgloss.Style
	Friend        lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	Scroll        lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Dim:    lipgloss.NewStyle().Faint(true),
		Label:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Select: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		SelectFocused: lipgloss.NewStyle().
			Foreground(lipgloss.Color("16")).
			Background(lipgloss.Color("214")).
			Bold(true),
		GroupName:    lipgloss.NewStyle().Bold(true),
		Cursor:       lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Toggle:       lipgloss.NewStyle().Foreground(lipgloss.Color("33")), // blue
		ToggleActive: lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		Friend:       lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Help:         lipgloss.NewStyle().Faint(true).MarginTop(1),
		Main:         lipgloss.NewStyle().Padding(1, 2),
		Scroll:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
	}
}

// avatarColors maps palette names to swatch colours
var avatarColors = map[string]lipgloss.Color{
	"red":    lipgloss.Color("#ff0000"),
	"green":  lipgloss.Color("#008000"),
	"blue":   lipgloss.Color("#0000ff"),
	"yellow": lipgloss.Color("#ffff00"),
	"purple": lipgloss.Color("#800080"),
	"white":  lipgloss.Color("#ffffff"),
	"orange": lipgloss.Color("#ffa500"),
}

// AvatarSwatch renders a small block in the group's avatar colour.
// Colours outside the palette render nothing.
func AvatarSwatch(color string) string {
	c, ok := avatarColors[color]
	if !ok {
		return ""
	}
	return lipgloss.NewStyle().Background(c).Render("  ")
}
