package views

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"quicklaunch/internal/adapters/tui/styles"
	"quicklaunch/internal/application/commands"
	"quicklaunch/internal/domain"
	"quicklaunch/internal/ports"
)

// Form field indexes
const (
	fieldName = iota
	fieldType
	fieldTarget
	fieldGesture
)

// FormModel is the model for the create/edit shortcut view
type FormModel struct {
	ViewState
	store   ports.ShortcutStore
	form    *InputForm
	editing *domain.Shortcut
}

// NewFormModel creates a new form view model
func NewFormModel(store ports.ShortcutStore) *FormModel {
	return &FormModel{
		store: store,
		form:  newShortcutForm(),
	}
}

func newShortcutForm() *InputForm {
	return NewInputForm(
		NewInputField("Name", "My editor", 64),
		NewInputField("Type", "program, folder or url", 16),
		NewInputField("Target", "/usr/bin/vim", 256),
		NewInputField("Gesture", "ctrl+1 (optional)", 32),
	)
}

// SetShortcut prepares the form for editing sc, or for creating a new
// shortcut when sc is nil.
func (m *FormModel) SetShortcut(sc *domain.Shortcut) {
	m.editing = sc
	m.form.Reset()
	m.ClearMessage()

	if sc != nil {
		m.form.SetValue(fieldName, sc.Name)
		m.form.SetValue(fieldType, sc.Type.String())
		m.form.SetValue(fieldTarget, sc.Target)
		m.form.SetValue(fieldGesture, sc.Gesture)
	}
}

// Init initializes the form view
func (m *FormModel) Init() tea.Cmd {
	return m.form.Init()
}

// Update handles messages for the form view
func (m *FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.form.Keys.Cancel):
			return m, func() tea.Msg {
				return SwitchToLauncherMsg{}
			}

		case key.Matches(msg, m.form.Keys.Submit):
			return m, m.submit
		}
	}

	handled, cmd := m.form.Update(msg)
	if handled {
		return m, nil
	}
	return m, cmd
}

func (m *FormModel) submit() tea.Msg {
	name := m.form.Value(fieldName)
	typ := domain.ParseType(strings.ToLower(m.form.Value(fieldType)))
	target := m.form.Value(fieldTarget)
	gesture := m.form.Value(fieldGesture)

	ctx := context.Background()

	if m.editing == nil {
		cmd := commands.NewAddCommand(m.store, name, typ, target, gesture)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return FormErrMsg{Err: err}
		}
		return FormSuccessMsg{Message: result.Message}
	}

	cmd := commands.NewUpdateCommand(m.store, m.editing.ID, ports.ShortcutFields{
		Name:    &name,
		Type:    &typ,
		Target:  &target,
		Gesture: &gesture,
	})
	result, err := cmd.Execute(ctx)
	if err != nil {
		return FormErrMsg{Err: err}
	}
	return FormSuccessMsg{Message: result.Message}
}

// FormSuccessMsg indicates the shortcut was saved
type FormSuccessMsg struct {
	Message string
}

// FormErrMsg indicates a validation or save error
type FormErrMsg struct {
	Err error
}

// View renders the form view
func (m *FormModel) View() string {
	var b strings.Builder

	if m.editing == nil {
		b.WriteString(styles.Title.Render("New Shortcut"))
	} else {
		b.WriteString(styles.Title.Render("Edit Shortcut"))
	}
	b.WriteString("\n\n")

	for i := range m.form.Fields {
		b.WriteString(m.form.RenderField(i))
		b.WriteString("\n\n")
	}

	if m.Message != "" {
		if m.MessageErr {
			b.WriteString(styles.ErrorMsg.Render(m.Message))
		} else {
			b.WriteString(styles.Success.Render(m.Message))
		}
		b.WriteString("\n\n")
	}

	b.WriteString(m.form.RenderHelp("save"))

	return styles.App.Render(b.String())
}
