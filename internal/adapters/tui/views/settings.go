package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"quicklaunch/internal/adapters/browser"
	"quicklaunch/internal/adapters/tui/styles"
	"quicklaunch/internal/domain"
	"quicklaunch/internal/ports"
)

// SettingsKeyMap defines key bindings for the settings view
type SettingsKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Close  key.Binding
}

var SettingsKeys = SettingsKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	Close: key.NewBinding(
		key.WithKeys("esc", "q"),
		key.WithHelp("esc/q", "back"),
	),
}

// browserOption is one row in the default-browser picker
type browserOption struct {
	id    string
	label string
}

// SettingsModel is the model for the settings view
type SettingsModel struct {
	ViewState
	store   ports.ShortcutStore
	locator ports.BrowserLocator

	options []browserOption
	cursor  int

	editingPath bool
	pathInput   textinput.Model
}

// NewSettingsModel creates a new settings view model
func NewSettingsModel(store ports.ShortcutStore, locator ports.BrowserLocator) *SettingsModel {
	input := textinput.New()
	input.Placeholder = "/path/to/browser"
	input.CharLimit = 256

	return &SettingsModel{
		store:     store,
		locator:   locator,
		pathInput: input,
	}
}

// Refresh rebuilds the browser options and selects the current setting
func (m *SettingsModel) Refresh() {
	m.options = []browserOption{{id: domain.BrowserAuto, label: "System default"}}
	for _, b := range m.locator.Detect() {
		m.options = append(m.options, browserOption{id: b.ID, label: b.Name})
	}
	m.options = append(m.options, browserOption{id: domain.BrowserCustom, label: "Custom path"})

	m.cursor = 0
	current := m.store.Setting(domain.SettingDefaultBrowser, domain.BrowserAuto)
	for i, opt := range m.options {
		if opt.id == current {
			m.cursor = i
			break
		}
	}

	m.editingPath = false
	m.pathInput.Blur()
	m.pathInput.SetValue(m.store.Setting(domain.SettingCustomBrowserPath, ""))
	m.ClearMessage()
}

// Init initializes the settings view
func (m *SettingsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the settings view
func (m *SettingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.editingPath {
			return m.updatePathInput(msg)
		}

		switch {
		case key.Matches(msg, SettingsKeys.Close):
			return m, func() tea.Msg {
				return SwitchToLauncherMsg{}
			}

		case key.Matches(msg, SettingsKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, SettingsKeys.Down):
			if m.cursor < len(m.options)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, SettingsKeys.Select):
			return m, m.selectOption()
		}
	}

	return m, nil
}

func (m *SettingsModel) selectOption() tea.Cmd {
	if m.cursor < 0 || m.cursor >= len(m.options) {
		return nil
	}
	opt := m.options[m.cursor]

	if opt.id == domain.BrowserCustom {
		m.editingPath = true
		m.pathInput.Focus()
		return textinput.Blink
	}

	if err := m.store.SetSetting(domain.SettingDefaultBrowser, opt.id); err != nil {
		m.SetMessage(err.Error(), true)
		return nil
	}
	m.SetMessage(fmt.Sprintf("Default browser: %s", opt.label), false)
	return nil
}

func (m *SettingsModel) updatePathInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editingPath = false
		m.pathInput.Blur()
		return m, nil

	case "enter":
		path := strings.TrimSpace(m.pathInput.Value())
		if !browser.ValidatePath(path) {
			m.SetMessage(fmt.Sprintf("not a browser executable: %s", path), true)
			return m, nil
		}
		if err := m.store.SetSetting(domain.SettingCustomBrowserPath, path); err != nil {
			m.SetMessage(err.Error(), true)
			return m, nil
		}
		if err := m.store.SetSetting(domain.SettingDefaultBrowser, domain.BrowserCustom); err != nil {
			m.SetMessage(err.Error(), true)
			return m, nil
		}
		m.editingPath = false
		m.pathInput.Blur()
		m.SetMessage(fmt.Sprintf("Default browser: %s", path), false)
		return m, nil
	}

	var cmd tea.Cmd
	m.pathInput, cmd = m.pathInput.Update(msg)
	return m, cmd
}

// View renders the settings view
func (m *SettingsModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Settings"))
	b.WriteString("\n\n")

	b.WriteString(styles.InputLabel.Render("Default browser for url shortcuts"))
	b.WriteString("\n\n")

	current := m.store.Setting(domain.SettingDefaultBrowser, domain.BrowserAuto)
	for i, opt := range m.options {
		marker := "  "
		if opt.id == current {
			marker = styles.Success.Render("* ")
		}
		label := opt.label
		if i == m.cursor {
			label = styles.RowSelected.Render(label)
		}
		b.WriteString(marker + label + "\n")
	}

	if m.editingPath {
		b.WriteString("\n")
		b.WriteString(styles.InputLabel.Render("Browser executable path"))
		b.WriteString("\n")
		b.WriteString(styles.InputFocused.Render(m.pathInput.View()))
		b.WriteString("\n")
	}

	if m.Message != "" {
		b.WriteString("\n")
		if m.MessageErr {
			b.WriteString(styles.ErrorMsg.Render(m.Message))
		} else {
			b.WriteString(styles.Success.Render(m.Message))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.HelpKey.Render("enter") + " " + styles.HelpDesc.Render("select"))
	b.WriteString(styles.HelpSeparator.String())
	b.WriteString(styles.HelpKey.Render("esc") + " " + styles.HelpDesc.Render("back"))

	return styles.App.Render(b.String())
}
