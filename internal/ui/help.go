package ui

import (
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/noborus/ov/oviewer"
)

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

const helpMarkdown = `# groupgrip

Browse groups and the friends you have in them.

## Filters

| Key | Action |
|-----|--------|
| Tab / Shift+Tab | Move between Приватность, Цвет аватара, Друзья в группе and the list |
| ← → / h l | Previous / next value of the focused filter |
| 1-9 | Pick a value of the focused filter directly |
| r | Reset all filters to their first value |

## Group list

| Key | Action |
|-----|--------|
| ↑ ↓ / k j | Move between groups |
| PgUp PgDn / C-u C-d | Page up / down |
| g / G | First / last group |
| Enter / Space | Show or hide the friends of the group |

## Other

| Key | Action |
|-----|--------|
| ? | This help |
| q / Ctrl+C | Quit |

Filters combine: a group is listed only when it passes all three.
`

// HelpRenderer turns the help text into terminal output
type HelpRenderer struct {
	width int
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer(width int) *HelpRenderer {
	if width <= 0 {
		width = 80
	}
	return &HelpRenderer{width: width}
}

// Render returns the help as styled text, falling back to raw markdown
func (r *HelpRenderer) Render() string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(r.width),
	)
	if err != nil {
		return helpMarkdown
	}
	out, err := renderer.Render(helpMarkdown)
	if err != nil {
		return helpMarkdown
	}
	return out
}

// pagerCommand runs ov over a string; it satisfies tea.ExecCommand so
// Bubble Tea releases and restores the terminal around it
type pagerCommand struct {
	content string
}

func (c *pagerCommand) Run() error {
	root, err := oviewer.NewRoot(strings.NewReader(c.content))
	if err != nil {
		return err
	}

	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// ov drives the tty itself
func (c *pagerCommand) SetStdin(io.Reader)  {}
func (c *pagerCommand) SetStdout(io.Writer) {}
func (c *pagerCommand) SetStderr(io.Writer) {}

// showHelpPager returns a command that shows the help in the ov pager
func showHelpPager(width int) tea.Cmd {
	content := NewHelpRenderer(width).Render()
	return tea.Exec(&pagerCommand{content: content}, func(err error) tea.Msg {
		return helpPagerMsg{err: err}
	})
}
