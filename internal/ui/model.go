package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"groupgrip/internal/config"
	"groupgrip/internal/domain"
	"groupgrip/internal/eventbus"
	"groupgrip/internal/loader"
	"groupgrip/internal/ui/input"
	inputtypes "groupgrip/internal/ui/input/types"
	"groupgrip/internal/ui/state"
	"groupgrip/internal/ui/views"
)

// Model represents the UI state
type Model struct {
	ctx    context.Context // cancelled when the model shuts down
	cancel context.CancelFunc

	config *config.Config
	loader *loader.Loader
	bus    eventbus.EventBus
	logger *zap.Logger
	state  *state.AppState // centralized state

	// UI-specific state not in AppState
	width  int
	height int
	help   help.Model

	renderer     *views.Renderer
	inputHandler *input.Handler

	loadStarted bool // the delayed load runs once per model
	closed      bool
}

// NewModel creates a new UI model. bus and logger may be nil.
func NewModel(ctx context.Context, cfg *config.Config, ldr *loader.Loader, bus eventbus.EventBus, logger *zap.Logger) *Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	ctx, cancel := context.WithCancel(ctx)

	return &Model{
		ctx:          ctx,
		cancel:       cancel,
		config:       cfg,
		loader:       ldr,
		bus:          bus,
		logger:       logger.Named("ui"),
		state:        state.NewAppState(),
		help:         help.New(),
		renderer:     views.NewRenderer(),
		inputHandler: input.New(),
	}
}

// Init schedules the single delayed load
func (m *Model) Init() tea.Cmd {
	return tea.Tick(m.config.LoadDelay.Std(), func(time.Time) tea.Msg {
		return loadDueMsg{}
	})
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = views.ContentWidth(msg.Width)
		m.syncViewport()

	case tea.KeyMsg:
		actions, consumed := m.inputHandler.HandleKey(msg, m)
		if !consumed {
			return m, nil
		}
		var cmds []tea.Cmd
		for _, action := range actions {
			if cmd := m.processAction(action); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		m.syncViewport()
		return m, tea.Batch(cmds...)

	case loadDueMsg:
		if m.loadStarted || m.closed {
			return m, nil
		}
		m.loadStarted = true
		return m, m.loadGroups()

	case groupsLoadedMsg:
		m.applyLoadResult(msg)

	case helpPagerMsg:
		if msg.err != nil {
			m.logger.Warn("help pager failed", zap.Error(msg.err))
		}
	}

	return m, nil
}

// View renders the whole screen
func (m *Model) View() string {
	return m.renderer.Render(m.viewState())
}

// Focus implements input types.Context
func (m *Model) Focus() state.Focus {
	return m.state.Focus
}

// HasSelection implements input types.Context
func (m *Model) HasSelection() bool {
	_, ok := m.state.SelectedGroup()
	return ok
}

// SelectedHasFriends implements input types.Context
func (m *Model) SelectedHasFriends() bool {
	group, ok := m.state.SelectedGroup()
	return ok && group.HasFriendsField()
}

// loadGroups returns the command performing the fetch. It only captures
// values, never the model, since it runs off the update loop.
func (m *Model) loadGroups() tea.Cmd {
	ctx, ldr := m.ctx, m.loader
	return func() tea.Msg {
		result, err := ldr.Load(ctx)
		return groupsLoadedMsg{result: result, err: err}
	}
}

// applyLoadResult replaces the groups on success; failures are logged once and otherwise ignored
func (m *Model) applyLoadResult(msg groupsLoadedMsg) {
	if m.closed || m.ctx.Err() != nil {
		return
	}

	if msg.err != nil {
		m.logger.Error("failed to load groups",
			zap.String("source", m.loader.Source()),
			zap.Error(msg.err))
		m.publish(eventbus.GroupsLoadFailedEvent{Source: m.loader.Source(), Err: msg.err})
		return
	}

	for _, warning := range msg.result.Warnings {
		m.logger.Warn("suspicious group payload", zap.String("warning", warning))
	}

	m.state.SetGroups(msg.result.Groups)
	m.syncViewport()
	m.publish(eventbus.GroupsLoadedEvent{Source: m.loader.Source(), Count: len(msg.result.Groups)})
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.QuitAction:
		m.shutdown()
		return tea.Quit

	case inputtypes.ShowHelpAction:
		return showHelpPager(m.width)

	case inputtypes.FocusAction:
		m.state.CycleFocus(a.Delta)

	case inputtypes.FocusGroupsAction:
		m.state.Focus = state.FocusGroups

	case inputtypes.CycleFilterAction:
		value, err := m.state.CycleOption(a.Field, a.Delta)
		if err != nil {
			m.logger.Warn("filter change rejected", zap.String("field", string(a.Field)), zap.Error(err))
			return nil
		}
		m.publishFilterChange(a.Field, value)

	case inputtypes.SetFilterAction:
		if m.state.Options.Get(a.Field) == a.Value {
			return nil
		}
		if err := m.state.SetOption(a.Field, a.Value); err != nil {
			m.logger.Warn("filter change rejected", zap.String("field", string(a.Field)), zap.Error(err))
			return nil
		}
		m.publishFilterChange(a.Field, a.Value)

	case inputtypes.ResetFiltersAction:
		defaults := domain.DefaultFilterOptions()
		for _, field := range domain.FilterFields {
			if m.state.Options.Get(field) == defaults.Get(field) {
				continue
			}
			if err := m.state.SetOption(field, defaults.Get(field)); err == nil {
				m.publishFilterChange(field, defaults.Get(field))
			}
		}

	case inputtypes.NavigateAction:
		m.navigate(a.Direction)

	case inputtypes.ToggleFriendsAction:
		group, ok := m.state.SelectedGroup()
		if !ok || !group.HasFriendsField() {
			return nil
		}
		expanded := m.state.ToggleExpanded(group.ID)
		m.publish(eventbus.FriendsToggledEvent{GroupID: group.ID, Expanded: expanded})
	}

	return nil
}

func (m *Model) navigate(direction string) {
	switch direction {
	case "up":
		m.state.MoveCursor(-1)
	case "down":
		m.state.MoveCursor(1)
	case "pageup":
		m.state.MoveCursor(-m.pageSize())
	case "pagedown":
		m.state.MoveCursor(m.pageSize())
	case "home":
		m.state.CursorTo(0)
	case "end":
		m.state.CursorTo(len(m.state.Filtered) - 1)
	}
}

// pageSize approximates how many group items fit on screen
func (m *Model) pageSize() int {
	if size := m.state.ViewportHeight / 5; size > 1 {
		return size
	}
	return 1
}

// shutdown cancels the pending load so a late result is dropped
func (m *Model) shutdown() {
	m.closed = true
	m.cancel()
}

func (m *Model) publishFilterChange(field domain.FilterField, value string) {
	m.publish(eventbus.FilterChangedEvent{
		Field:   field,
		Value:   value,
		Options: m.state.Options,
		Visible: len(m.state.Filtered),
	})
}

func (m *Model) publish(event eventbus.DomainEvent) {
	if m.bus != nil {
		m.bus.Publish(event)
	}
}

// updateViewportHeight gives the group list whatever the rest of the screen leaves
func (m *Model) updateViewportHeight() {
	if m.height <= 0 {
		return
	}
	m.state.ViewportHeight = m.height - m.renderer.ChromeHeight(m.viewState())
	if m.state.ViewportHeight < 1 {
		m.state.ViewportHeight = 1
	}
}

// syncViewport resizes the list and scrolls so the group under the cursor stays visible
func (m *Model) syncViewport() {
	m.updateViewportHeight()
	vs := m.viewState()
	lines, start, end := m.renderer.GroupLines(vs)
	m.state.ViewportOffset = views.ClampOffset(m.state.ViewportOffset, vs.ViewportHeight, start, end, len(lines))
}

func (m *Model) viewState() views.ViewState {
	field, _ := m.state.Focus.Field()

	vs := views.ViewState{
		Width:          m.width,
		Height:         m.height,
		Options:        m.state.Options,
		FocusedField:   field,
		ListFocused:    m.state.Focus == state.FocusGroups,
		Groups:         m.state.Filtered,
		Cursor:         m.state.Cursor,
		ExpandedGroups: m.state.ExpandedGroups,
		ViewportOffset: m.state.ViewportOffset,
	}
	// no size yet: render everything
	if m.height > 0 {
		vs.ViewportHeight = m.state.ViewportHeight
	}
	if m.config.UI.ShowHelpFooter {
		vs.HelpView = m.help.View(m.inputHandler.KeyMap())
	}
	return vs
}
