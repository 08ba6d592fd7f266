package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"groupgrip/internal/domain"
)

// FilterRenderer renders the row of select controls
type FilterRenderer struct {
	styles *Styles
}

// NewFilterRenderer creates a new filter renderer
func NewFilterRenderer(styles *Styles) *FilterRenderer {
	return &FilterRenderer{styles: styles}
}

// RenderControl renders one labelled select
func (f *FilterRenderer) RenderControl(field domain.FilterField, value string, focused bool) string {
	valueText := fmt.Sprintf("‹ %s ›", OptionLabel(field, value))
	style := f.styles.Select
	if focused {
		style = f.styles.SelectFocused
	}
	return f.styles.Label.Render(FieldLabel(field)) + " " + style.Render(valueText)
}

// RenderFilters lays the controls out on one line, or one per line when they do not fit
func (f *FilterRenderer) RenderFilters(opts domain.FilterOptions, focused domain.FilterField, width int) string {
	controls := make([]string, 0, len(domain.FilterFields))
	for _, field := range domain.FilterFields {
		controls = append(controls, f.RenderControl(field, opts.Get(field), field == focused))
	}

	line := strings.Join(controls, "   ")
	if width <= 0 || lipgloss.Width(line) <= width {
		return line
	}
	return strings.Join(controls, "\n")
}
