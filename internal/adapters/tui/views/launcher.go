package views

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"quicklaunch/internal/adapters/tui/styles"
	"quicklaunch/internal/domain"
	"quicklaunch/internal/ports"
)

// LauncherKeyMap defines key bindings for the launcher view
type LauncherKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Run      key.Binding
	New      key.Binding
	Edit     key.Binding
	Delete   key.Binding
	Copy     key.Binding
	Filter   key.Binding
	Search   key.Binding
	Settings key.Binding
	Help     key.Binding
	Quit     key.Binding
}

var LauncherKeys = LauncherKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Run: key.NewBinding(
		key.WithKeys("enter", "r"),
		key.WithHelp("enter/r", "run"),
	),
	New: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy target"),
	),
	Filter: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "cycle filter"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	Settings: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "settings"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// LauncherModel is the model for the shortcut list view
type LauncherModel struct {
	store    ports.ShortcutStore
	launcher ports.Launcher

	shortcuts []domain.Shortcut
	visible   []domain.Shortcut
	cursor    int
	filter    domain.Filter

	searching bool
	search    textinput.Model

	width      int
	height     int
	message    string
	messageErr bool
}

// NewLauncherModel creates a new launcher view model. The type filter
// starts from the persisted lastFilter setting.
func NewLauncherModel(store ports.ShortcutStore, launcher ports.Launcher) *LauncherModel {
	search := textinput.New()
	search.Placeholder = "type to filter..."
	search.CharLimit = 64

	return &LauncherModel{
		store:    store,
		launcher: launcher,
		filter:   domain.ParseFilter(store.Setting(domain.SettingLastFilter, domain.FilterAll.String())),
		search:   search,
	}
}

// Init initializes the launcher view
func (m *LauncherModel) Init() tea.Cmd {
	return m.loadShortcuts
}

func (m *LauncherModel) loadShortcuts() tea.Msg {
	shortcuts, err := m.store.List(domain.FilterAll)
	if err != nil {
		return errMsg{err}
	}
	return shortcutsLoadedMsg{shortcuts}
}

type shortcutsLoadedMsg struct {
	shortcuts []domain.Shortcut
}

type errMsg struct {
	err error
}

type launchedMsg struct {
	message string
}

// Update handles messages for the launcher view
func (m *LauncherModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case shortcutsLoadedMsg:
		m.shortcuts = msg.shortcuts
		m.refreshVisible()
		return m, nil

	case errMsg:
		m.message = msg.err.Error()
		m.messageErr = true
		return m, nil

	case launchedMsg:
		m.message = msg.message
		m.messageErr = false
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}

		m.message = "" // Clear message on key press

		switch {
		case key.Matches(msg, LauncherKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, LauncherKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, LauncherKeys.Down):
			if m.cursor < len(m.visible)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, LauncherKeys.Run):
			if sc := m.selected(); sc != nil {
				return m, m.run(*sc)
			}
			return m, nil

		case key.Matches(msg, LauncherKeys.New):
			return m, func() tea.Msg {
				return SwitchToFormMsg{}
			}

		case key.Matches(msg, LauncherKeys.Edit):
			if sc := m.selected(); sc != nil {
				edit := *sc
				return m, func() tea.Msg {
					return SwitchToFormMsg{Shortcut: &edit}
				}
			}
			return m, nil

		case key.Matches(msg, LauncherKeys.Delete):
			if sc := m.selected(); sc != nil {
				target := *sc
				return m, func() tea.Msg {
					return SwitchToDeleteMsg{Shortcut: target}
				}
			}
			return m, nil

		case key.Matches(msg, LauncherKeys.Copy):
			if sc := m.selected(); sc != nil {
				if err := clipboard.WriteAll(sc.Target); err != nil {
					m.message = err.Error()
					m.messageErr = true
				} else {
					m.message = fmt.Sprintf("Copied target of %s", sc.Name)
				}
			}
			return m, nil

		case key.Matches(msg, LauncherKeys.Filter):
			m.filter = m.filter.Next()
			if err := m.store.SetSetting(domain.SettingLastFilter, m.filter.String()); err != nil {
				m.message = err.Error()
				m.messageErr = true
			}
			m.refreshVisible()
			return m, nil

		case key.Matches(msg, LauncherKeys.Search):
			m.searching = true
			m.search.Focus()
			return m, textinput.Blink

		case key.Matches(msg, LauncherKeys.Settings):
			return m, func() tea.Msg {
				return SwitchToSettingsMsg{}
			}

		case key.Matches(msg, LauncherKeys.Help):
			return m, func() tea.Msg {
				return SwitchToHelpMsg{}
			}
		}

		// Unbound keys dispatch shortcuts by gesture
		if cmd := m.matchGesture(msg.String()); cmd != nil {
			return m, cmd
		}
	}

	return m, nil
}

func (m *LauncherModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		m.refreshVisible()
		return m, nil
	case "enter":
		m.searching = false
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.refreshVisible()
	return m, cmd
}

// matchGesture returns a run command when a shortcut claims the key
func (m *LauncherModel) matchGesture(pressed string) tea.Cmd {
	for _, sc := range m.shortcuts {
		if sc.Gesture != "" && sc.Gesture == pressed {
			return m.run(sc)
		}
	}
	return nil
}

func (m *LauncherModel) run(sc domain.Shortcut) tea.Cmd {
	return func() tea.Msg {
		message, err := m.launcher.Launch(sc)
		if err != nil {
			return errMsg{err}
		}
		return launchedMsg{message}
	}
}

func (m *LauncherModel) selected() *domain.Shortcut {
	if m.cursor >= 0 && m.cursor < len(m.visible) {
		return &m.visible[m.cursor]
	}
	return nil
}

func (m *LauncherModel) refreshVisible() {
	m.visible = domain.FilterShortcuts(m.shortcuts, m.filter)

	if query := strings.ToLower(strings.TrimSpace(m.search.Value())); query != "" {
		var matched []domain.Shortcut
		for _, sc := range m.visible {
			if strings.Contains(strings.ToLower(sc.Name), query) ||
				strings.Contains(strings.ToLower(sc.Target), query) {
				matched = append(matched, sc)
			}
		}
		m.visible = matched
	}

	// Clamp cursor
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// View renders the launcher view
func (m *LauncherModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Quicklaunch"))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render("Shortcut launcher"))
	b.WriteString("\n\n")

	b.WriteString(m.renderFilterBar())
	b.WriteString("\n\n")

	if m.searching || m.search.Value() != "" {
		b.WriteString(m.search.View())
		b.WriteString("\n\n")
	}

	if len(m.visible) == 0 {
		b.WriteString(styles.MutedText.Render("No shortcuts. Press n to add one."))
		b.WriteString("\n")
	}

	for i, sc := range m.visible {
		b.WriteString(m.renderRow(sc, i == m.cursor))
		b.WriteString("\n")
	}

	if m.message != "" {
		b.WriteString("\n")
		if m.messageErr {
			b.WriteString(styles.ErrorMsg.Render(m.message))
		} else {
			b.WriteString(styles.Success.Render(m.message))
		}
	}

	b.WriteString("\n")
	b.WriteString(m.renderHelpLine())

	return styles.App.Render(b.String())
}

func (m *LauncherModel) renderFilterBar() string {
	var parts []string
	for _, f := range domain.Filters {
		if f == m.filter {
			parts = append(parts, styles.FilterActive.Render(f.String()))
		} else {
			parts = append(parts, styles.FilterInactive.Render(f.String()))
		}
	}
	return strings.Join(parts, " ")
}

func (m *LauncherModel) renderRow(sc domain.Shortcut, selected bool) string {
	name := sc.Name
	if selected {
		name = styles.RowSelected.Render(name)
	} else {
		name = lipgloss.NewStyle().Foreground(styles.TypeColor(sc.Type)).Render(name)
	}

	line := name
	if sc.Gesture != "" {
		line += " " + styles.RowGesture.Render("["+sc.Gesture+"]")
	}
	line += "  " + styles.RowTarget.Render(sc.Target)

	return line
}

func (m *LauncherModel) renderHelpLine() string {
	keys := []struct {
		key  string
		desc string
	}{
		{"enter", "run"},
		{"n", "new"},
		{"e", "edit"},
		{"d", "delete"},
		{"f", "filter"},
		{"/", "search"},
		{"s", "settings"},
		{"?", "help"},
		{"q", "quit"},
	}

	var parts []string
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s %s",
			styles.HelpKey.Render(k.key),
			styles.HelpDesc.Render(k.desc),
		))
	}

	return strings.Join(parts, styles.HelpSeparator.String())
}

// SetStatus sets the status line shown under the list
func (m *LauncherModel) SetStatus(message string, isErr bool) {
	m.message = message
	m.messageErr = isErr
}

// SetSize updates the view dimensions
func (m *LauncherModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Reload reloads the shortcut list from the store
func (m *LauncherModel) Reload() tea.Cmd {
	if err := m.store.Reload(); err != nil {
		return func() tea.Msg { return errMsg{err} }
	}
	return m.loadShortcuts
}

// Messages for view switching
type SwitchToFormMsg struct {
	// Shortcut is the shortcut being edited, nil when creating
	Shortcut *domain.Shortcut
}

type SwitchToDeleteMsg struct {
	Shortcut domain.Shortcut
}

type SwitchToSettingsMsg struct{}

type SwitchToHelpMsg struct{}

type SwitchToLauncherMsg struct{}
