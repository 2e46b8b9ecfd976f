package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"quicklaunch/internal/adapters/tui/views"
	"quicklaunch/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewLauncher ViewState = iota
	ViewForm
	ViewDelete
	ViewSettings
	ViewHelp
)

// App is the main TUI application model
type App struct {
	store ports.ShortcutStore

	state    ViewState
	launcher *views.LauncherModel
	form     *views.FormModel
	delete   *views.DeleteModel
	settings *views.SettingsModel
	help     *views.HelpModel

	width  int
	height int
}

// NewApp creates a new TUI application
func NewApp(store ports.ShortcutStore, launcher ports.Launcher, locator ports.BrowserLocator) *App {
	return &App{
		store:    store,
		state:    ViewLauncher,
		launcher: views.NewLauncherModel(store, launcher),
		form:     views.NewFormModel(store),
		delete:   views.NewDeleteModel(store),
		settings: views.NewSettingsModel(store, locator),
		help:     views.NewHelpModel(),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.launcher.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.launcher.SetSize(msg.Width, msg.Height)
		a.form.SetSize(msg.Width, msg.Height)
		a.delete.SetSize(msg.Width, msg.Height)
		a.settings.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	// View switching messages
	case views.SwitchToFormMsg:
		a.state = ViewForm
		a.form.SetShortcut(msg.Shortcut)
		return a, a.form.Init()

	case views.SwitchToDeleteMsg:
		a.state = ViewDelete
		target := msg.Shortcut
		a.delete.SetTarget(&target)
		return a, nil

	case views.SwitchToSettingsMsg:
		a.state = ViewSettings
		a.settings.Refresh()
		return a, nil

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToLauncherMsg:
		a.state = ViewLauncher
		return a, a.launcher.Reload()

	// Form view messages
	case views.FormSuccessMsg:
		a.state = ViewLauncher
		a.launcher.SetStatus(msg.Message, false)
		return a, a.launcher.Reload()

	case views.FormErrMsg:
		a.form.SetMessage(msg.Err.Error(), true)
		return a, nil

	// Delete view messages
	case views.DeleteSuccessMsg:
		a.state = ViewLauncher
		a.launcher.SetStatus(msg.Message, false)
		return a, a.launcher.Reload()

	case views.DeleteErrMsg:
		a.state = ViewLauncher
		a.launcher.SetStatus(msg.Err.Error(), true)
		return a, nil
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewLauncher:
		_, cmd = a.launcher.Update(msg)
	case ViewForm:
		_, cmd = a.form.Update(msg)
	case ViewDelete:
		_, cmd = a.delete.Update(msg)
	case ViewSettings:
		_, cmd = a.settings.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewForm:
		return a.form.View()
	case ViewDelete:
		return a.delete.View()
	case ViewSettings:
		return a.settings.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.launcher.View()
	}
}
