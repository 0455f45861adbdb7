package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"cinemax-cli/auth"
)

var fieldLabels = map[auth.Field]string{
	auth.FieldName:            "Full Name",
	auth.FieldEmail:           "Email Address",
	auth.FieldPassword:        "Password",
	auth.FieldConfirmPassword: "Confirm Password",
}

var fieldPlaceholders = map[auth.Field]string{
	auth.FieldName:            "Enter your full name",
	auth.FieldEmail:           "Enter your email",
	auth.FieldPassword:        "Enter your password",
	auth.FieldConfirmPassword: "Confirm your password",
}

func loginFields(mode auth.Mode) []auth.Field {
	if mode == auth.ModeSignUp {
		return []auth.Field{auth.FieldName, auth.FieldEmail, auth.FieldPassword, auth.FieldConfirmPassword}
	}
	return []auth.Field{auth.FieldEmail, auth.FieldPassword}
}

func isSecret(field auth.Field) bool {
	return field == auth.FieldPassword || field == auth.FieldConfirmPassword
}

func (m *appModel) resetInputs() {
	m.inputs = make(map[auth.Field]textinput.Model, 4)
	for _, field := range loginFields(auth.ModeSignUp) {
		input := textinput.New()
		input.Prompt = "› "
		input.Placeholder = fieldPlaceholders[field]
		input.CharLimit = 128
		input.Width = 40
		if isSecret(field) {
			input.EchoMode = textinput.EchoPassword
			input.EchoCharacter = '•'
		}
		m.inputs[field] = input
	}
	m.applyEchoMode()
	m.focusIndex = 0
	m.focusInput()
}

func (m *appModel) applyEchoMode() {
	for field, input := range m.inputs {
		if !isSecret(field) {
			continue
		}
		if m.showPassword {
			input.EchoMode = textinput.EchoNormal
		} else {
			input.EchoMode = textinput.EchoPassword
		}
		m.inputs[field] = input
	}
}

func (m *appModel) focusInput() tea.Cmd {
	fields := loginFields(m.gate.Mode())
	m.focusIndex = clampIndex(m.focusIndex, len(fields))
	var cmd tea.Cmd
	for field, input := range m.inputs {
		if field == fields[m.focusIndex] {
			cmd = input.Focus()
		} else {
			input.Blur()
		}
		m.inputs[field] = input
	}
	return cmd
}

func (m *appModel) focusedField() auth.Field {
	fields := loginFields(m.gate.Mode())
	return fields[clampIndex(m.focusIndex, len(fields))]
}

func (m appModel) handleLoginKey(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	fields := loginFields(m.gate.Mode())
	switch msg.String() {
	case "tab", "down":
		m.focusIndex = (m.focusIndex + 1) % len(fields)
		return m, m.focusInput(), true
	case "shift+tab", "up":
		m.focusIndex = (m.focusIndex - 1 + len(fields)) % len(fields)
		return m, m.focusInput(), true
	case "ctrl+s":
		m.gate.ToggleMode()
		m.resetInputs()
		return m, textinput.Blink, true
	case "ctrl+r":
		m.showPassword = !m.showPassword
		m.applyEchoMode()
		return m, nil, true
	case "enter":
		m.submitLogin()
		return m, nil, true
	}
	return m, m.updateFocusedInput(msg), true
}

// updateFocusedInput forwards msg to the focused input and mirrors any value
// change into the gate, which clears that field's error.
func (m *appModel) updateFocusedInput(msg tea.Msg) tea.Cmd {
	field := m.focusedField()
	input, ok := m.inputs[field]
	if !ok {
		return nil
	}
	input, cmd := input.Update(msg)
	m.inputs[field] = input
	if value := input.Value(); value != m.gate.Form().Value(field) {
		m.gate.Set(field, value)
	}
	return cmd
}

func (m *appModel) submitLogin() {
	identity, ok := m.gate.Submit()
	if !ok {
		errs := m.gate.Errors()
		m.logger.Debug("login rejected", zap.Int("errors", len(errs)))
		for i, field := range loginFields(m.gate.Mode()) {
			if errs.Has(field) {
				m.focusIndex = i
				break
			}
		}
		m.focusInput()
		return
	}

	m.session.Start(identity)
	m.resetInputs()
	m.movieList.ResetFilter()
	m.movieList.Select(0)
	m.state = stateMovies
}

func (m appModel) loginView() string {
	mode := m.gate.Mode()
	subtitle := "Welcome back! Sign in to continue"
	if mode == auth.ModeSignUp {
		subtitle = "Create your account to start booking"
	}

	label := lipgloss.NewStyle().Bold(true)
	fieldErr := lipgloss.NewStyle().Foreground(lipgloss.Color("203"))

	rows := []string{
		lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("141")).Render(mode.String()),
		hint(subtitle),
		"",
	}
	for _, field := range loginFields(mode) {
		rows = append(rows, label.Render(fieldLabels[field]), m.inputs[field].View())
		if msg := m.gate.Error(field); msg != "" {
			rows = append(rows, fieldErr.Render(msg))
		}
		rows = append(rows, "")
	}

	toggle := "Don't have an account? Press ctrl+s to sign up"
	if mode == auth.ModeSignUp {
		toggle = "Already have an account? Press ctrl+s to sign in"
	}
	rows = append(rows, hint(toggle))
	if m.showPassword {
		rows = append(rows, hint("Passwords are visible (ctrl+r to hide)"))
	}

	panel := lipgloss.NewStyle().
		Padding(1, 3).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Render(strings.Join(rows, "\n"))
	if m.width > 0 {
		panel = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, panel)
	}
	return panel
}
